package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"soul-tracker/pkg/i18n"
	"soul-tracker/pkg/souls"
)

// StatsView shows the derived statistics: player share, total kills and
// milestones reached.
type StatsView struct {
	container   *fyne.Container
	playerShare *widget.Label
	totalKills  *widget.Label
	milestones  *widget.Label
}

// NewStatsView creates a StatsView for the zero state.
func NewStatsView(printer *i18n.Printer) *StatsView {
	s := &StatsView{
		playerShare: statValue(),
		totalKills:  statValue(),
		milestones:  statValue(),
	}
	s.container = container.NewGridWithColumns(3,
		statCard(theme.RadioButtonCheckedIcon(), s.playerShare, printer.T(i18n.StatPlayerShare)),
		statCard(theme.WarningIcon(), s.totalKills, printer.T(i18n.StatTotalKills)),
		statCard(theme.ConfirmIcon(), s.milestones, printer.T(i18n.StatMilestones)),
	)
	s.Update(souls.New())
	return s
}

func statValue() *widget.Label {
	return widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func statCard(icon fyne.Resource, value *widget.Label, caption string) fyne.CanvasObject {
	return widget.NewCard("", "", container.NewVBox(
		container.NewCenter(widget.NewIcon(icon)),
		value,
		widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{}),
	))
}

// Content is the row of stat cards.
func (s *StatsView) Content() fyne.CanvasObject {
	return s.container
}

// Update shows the statistics derived from state.
func (s *StatsView) Update(state souls.State) {
	s.playerShare.SetText(state.PlayerPercentageText())
	s.totalKills.SetText(strconv.Itoa(state.TotalKills()))
	s.milestones.SetText(strconv.Itoa(state.MilestonesReached()))
}
