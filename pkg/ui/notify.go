package ui

import (
	"fyne.io/fyne/v2"

	"soul-tracker/pkg/log"
)

// appNotifier routes kill toasts to native Fyne notifications.
type appNotifier struct {
	app fyne.App
}

func (n *appNotifier) Notify(title, body string) {
	log.Debug("toast", "title", title, "body", body)
	n.app.SendNotification(fyne.NewNotification(title, body))
}
