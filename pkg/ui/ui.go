package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"soul-tracker/pkg/config"
	"soul-tracker/pkg/i18n"
	"soul-tracker/pkg/log"
	"soul-tracker/pkg/souls"
	"soul-tracker/pkg/tracker"
)

// Run opens the tracker window and blocks until it is closed.
func Run(cfg config.Config) error {
	printer, err := i18n.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("display locale: %w", err)
	}

	a := app.NewWithID(cfg.AppID)
	window := a.NewWindow(printer.T(i18n.Title))

	tr := tracker.New(printer, &appNotifier{app: a}, tracker.WithScheduler(mainThreadScheduler))
	view := NewTrackerView(tr, printer)

	window.SetContent(view.Content())
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	log.Info("window ready", "locale", printer.Tag().String(), "app_id", cfg.AppID)
	window.ShowAndRun()
	return nil
}

// mainThreadScheduler fires callbacks on the Fyne main goroutine.
var mainThreadScheduler = tracker.SchedulerFunc(func(d time.Duration, f func()) {
	time.AfterFunc(d, func() { fyne.Do(f) })
})

// TrackerView renders a Tracker and forwards button taps to it.
type TrackerView struct {
	tracker *tracker.Tracker
	printer *i18n.Printer

	totalText    *canvas.Text
	remaining    *widget.Label
	progress     *widget.ProgressBar
	sparkle      *canvas.Text
	mobCount     *widget.Label
	playerCount  *widget.Label
	mobTotal     *widget.Label
	playerTotal  *widget.Label
	mobButton    *widget.Button
	playerButton *widget.Button

	history *HistoryView
	stats   *StatsView
	content fyne.CanvasObject
}

// NewTrackerView builds the widgets and subscribes to tracker changes.
func NewTrackerView(tr *tracker.Tracker, printer *i18n.Printer) *TrackerView {
	v := &TrackerView{
		tracker: tr,
		printer: printer,
		history: NewHistoryView(printer),
		stats:   NewStatsView(printer),
	}
	v.build()
	tr.OnChange(v.refresh)
	v.refresh()
	return v
}

// Content is the root object to place in a window.
func (v *TrackerView) Content() fyne.CanvasObject {
	return v.content
}

func (v *TrackerView) build() {
	p := v.printer

	title := canvas.NewText(p.T(i18n.Title), theme.Color(theme.ColorNamePrimary))
	title.TextSize = 48
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	subtitle := widget.NewLabelWithStyle(p.T(i18n.Subtitle), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	header := container.NewVBox(title, subtitle)

	v.totalText = canvas.NewText("0", theme.Color(theme.ColorNamePrimary))
	v.totalText.TextSize = 72
	v.totalText.TextStyle = fyne.TextStyle{Bold: true}
	v.totalText.Alignment = fyne.TextAlignCenter
	v.remaining = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	v.progress = widget.NewProgressBar()
	v.progress.Min = 0
	v.progress.Max = 100

	v.sparkle = canvas.NewText("✨", color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff})
	v.sparkle.TextSize = 56
	v.sparkle.Alignment = fyne.TextAlignCenter
	v.sparkle.Hide()

	v.mobCount = widget.NewLabelWithStyle("0", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.playerCount = widget.NewLabelWithStyle("0", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.mobTotal = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	v.playerTotal = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	v.mobButton = widget.NewButtonWithIcon(p.T(i18n.MobButton), theme.ContentAddIcon(), func() {
		v.tracker.RecordKill(souls.Mob)
	})
	v.mobButton.Importance = widget.HighImportance
	v.playerButton = widget.NewButtonWithIcon(p.T(i18n.PlayerButton), theme.ContentAddIcon(), func() {
		v.tracker.RecordKill(souls.Player)
	})
	v.playerButton.Importance = widget.DangerImportance

	mobCard := killCard(kindIcon(souls.Mob), p.T(i18n.MobCaption), v.mobCount, v.mobButton, v.mobTotal)
	playerCard := killCard(kindIcon(souls.Player), p.T(i18n.PlayerCaption), v.playerCount, v.playerButton, v.playerTotal)

	soulCard := widget.NewCard("", "", container.NewStack(
		container.NewVBox(
			widget.NewLabelWithStyle(p.T(i18n.SoulsCollected), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			v.totalText,
			v.remaining,
			v.progress,
			container.NewGridWithColumns(2, mobCard, playerCard),
		),
		container.NewCenter(v.sparkle),
	))

	historyCard := widget.NewCard("", "", container.NewVBox(
		container.NewHBox(
			widget.NewIcon(theme.HistoryIcon()),
			widget.NewLabelWithStyle(p.T(i18n.HistoryTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		),
		widget.NewSeparator(),
		v.history.Content(),
	))

	footer := widget.NewLabelWithStyle(p.T(i18n.Footer), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	v.content = container.NewVScroll(container.NewVBox(
		header,
		soulCard,
		historyCard,
		v.stats.Content(),
		footer,
	))
}

func killCard(icon fyne.Resource, caption string, count *widget.Label, button *widget.Button, total *widget.Label) fyne.CanvasObject {
	return widget.NewCard("", "", container.NewVBox(
		container.NewHBox(
			widget.NewIcon(icon),
			container.NewVBox(
				widget.NewLabelWithStyle(caption, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				count,
			),
		),
		button,
		total,
	))
}

// refresh copies the tracker state into the widgets. It must run on the
// Fyne main goroutine.
func (v *TrackerView) refresh() {
	s := v.tracker.Snapshot()
	p := v.printer

	v.totalText.Text = strconv.Itoa(s.TotalSouls)
	v.totalText.Refresh()
	v.remaining.SetText(p.T(i18n.SoulsToMilestone, s.SoulsToMilestone()))
	v.progress.SetValue(s.ProgressToMilestone())

	v.mobCount.SetText(strconv.Itoa(s.MobKills))
	v.playerCount.SetText(strconv.Itoa(s.PlayerKills))
	v.mobTotal.SetText(p.SoulsTotal(souls.Mob, s.MobSoulsTotal()))
	v.playerTotal.SetText(p.SoulsTotal(souls.Player, s.PlayerSoulsTotal()))

	if v.tracker.CueActive() {
		v.sparkle.Show()
	} else {
		v.sparkle.Hide()
	}

	v.history.Update(s.History)
	v.stats.Update(s)
}
