package notice

import "fyne.io/fyne/v2"

// SystemNotifier posts the countdown-finished alert to the desktop
// notification service.
type SystemNotifier struct {
	app fyne.App
}

// NewSystemNotifier creates a notifier bound to app.
func NewSystemNotifier(app fyne.App) *SystemNotifier {
	return &SystemNotifier{app: app}
}

// NotifyExpired sends the notification.
func (notifier *SystemNotifier) NotifyExpired() error {
	notifier.app.SendNotification(fyne.NewNotification(Title, Message))
	return nil
}
