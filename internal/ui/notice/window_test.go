package notice

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestShowAndDismiss(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	dismissed := 0
	notice := New(app, Config{Opacity: 220})
	notice.SetOnDismiss(func() { dismissed++ })

	notice.Show("00:00:00")
	assert.True(t, notice.Visible())
	assert.Equal(t, Title, notice.titleLabel.Text)
	assert.Equal(t, Message, notice.subtitleLabel.Text)
	assert.Equal(t, "00:00:00", notice.timeLabel.Text)

	test.Tap(notice.dismissButton)
	assert.False(t, notice.Visible())
	assert.Equal(t, 1, dismissed)

	notice.Dismiss()
	assert.Equal(t, 1, dismissed)
}

func TestTextPanelLayoutPinsFooter(t *testing.T) {
	title := &fixedObject{size: fyne.NewSize(100, 20)}
	message := &fixedObject{size: fyne.NewSize(120, 10)}
	footer := &fixedObject{size: fyne.NewSize(50, 10)}
	layout := &textPanelLayout{}

	layout.Layout([]fyne.CanvasObject{title, message, footer}, fyne.NewSize(200, 100))

	assert.Equal(t, float32(5), title.Position().Y)
	assert.Equal(t, float32(5+20+textGap), message.Position().Y)
	assert.Equal(t, float32(100-5-10), footer.Position().Y)
	assert.Equal(t, fyne.NewSize(120+textMargin, 40+3*textGap+textMargin), layout.MinSize([]fyne.CanvasObject{title, message, footer}))
}

type fixedObject struct {
	size     fyne.Size
	position fyne.Position
	resized  fyne.Size
	hidden   bool
}

func (object *fixedObject) MinSize() fyne.Size        { return object.size }
func (object *fixedObject) Move(position fyne.Position) { object.position = position }
func (object *fixedObject) Position() fyne.Position   { return object.position }
func (object *fixedObject) Resize(size fyne.Size)     { object.resized = size }
func (object *fixedObject) Size() fyne.Size           { return object.resized }
func (object *fixedObject) Hide()                     { object.hidden = true }
func (object *fixedObject) Visible() bool             { return !object.hidden }
func (object *fixedObject) Show()                     { object.hidden = false }
func (object *fixedObject) Refresh()                  {}

func TestSystemNotifierSendsNotification(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	notifier := NewSystemNotifier(app)
	test.AssertNotificationSent(t, fyne.NewNotification(Title, Message), func() {
		assert.NoError(t, notifier.NotifyExpired())
	})
}
