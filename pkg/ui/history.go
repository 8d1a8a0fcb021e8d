package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"soul-tracker/pkg/i18n"
	"soul-tracker/pkg/souls"
)

// HistoryView lists recent kills, newest first.
type HistoryView struct {
	container *fyne.Container
	printer   *i18n.Printer
	empty     *widget.Label
}

// NewHistoryView creates a HistoryView showing the empty-history placeholder.
func NewHistoryView(printer *i18n.Printer) *HistoryView {
	empty := widget.NewLabelWithStyle(printer.T(i18n.HistoryEmpty), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	return &HistoryView{
		container: container.NewVBox(empty),
		printer:   printer,
		empty:     empty,
	}
}

// Content is the list container.
func (h *HistoryView) Content() fyne.CanvasObject {
	return h.container
}

// Update replaces the rows with events.
func (h *HistoryView) Update(events []souls.KillEvent) {
	if len(events) == 0 {
		h.container.Objects = []fyne.CanvasObject{h.empty}
		h.container.Refresh()
		return
	}
	rows := make([]fyne.CanvasObject, 0, len(events))
	for _, ev := range events {
		rows = append(rows, h.row(ev))
	}
	h.container.Objects = rows
	h.container.Refresh()
}

func (h *HistoryView) row(ev souls.KillEvent) fyne.CanvasObject {
	left := container.NewHBox(
		widget.NewIcon(kindIcon(ev.Kind)),
		widget.NewLabel(h.printer.KillLabel(ev.Kind)),
	)
	right := container.NewHBox(
		widget.NewLabelWithStyle(h.printer.Delta(ev.SoulsGained), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		widget.NewLabel(h.printer.TimeOfDay(ev.Timestamp)),
	)
	return container.NewBorder(nil, nil, left, right)
}

func kindIcon(kind souls.Kind) fyne.Resource {
	if kind == souls.Player {
		return theme.AccountIcon()
	}
	return theme.VisibilityOffIcon()
}
