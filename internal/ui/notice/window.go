package notice

import (
	"image/color"

	"tickwatch/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Title and Message are the texts shown when a countdown finishes.
const (
	Title   = model.ExpiredTitle
	Message = model.ExpiredMessage
)

// Config defines notice visuals.
type Config struct {
	Opacity uint8
	Image   fyne.Resource
}

// Window shows the countdown-finished notice.
type Window struct {
	window        fyne.Window
	config        Config
	image         *canvas.Image
	titleLabel    *canvas.Text
	subtitleLabel *canvas.Text
	timeLabel     *canvas.Text
	dismissButton *widget.Button
	background    *canvas.Rectangle
	onDismiss     func()
	visible       bool
}

const (
	noticeWidthFraction  = float32(0.2)
	noticeHeightFraction = float32(0.18)
	defaultScreenWidth   = float32(1920)
	defaultScreenHeight  = float32(1080)
)

var (
	accentColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the notice window. It stays hidden until Show.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: config.Opacity})

	image := canvas.NewImageFromResource(config.Image)
	image.FillMode = canvas.ImageFillContain

	titleLabel := canvas.NewText(Title, textColor)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 21

	subtitleLabel := canvas.NewText(Message, textColor)
	subtitleLabel.TextSize = 14

	timeLabel := canvas.NewText("00:00:00", accentColor)
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 16

	dismissButton := widget.NewButton("Dismiss", nil)

	leftContent := container.New(&textPanelLayout{}, titleLabel, subtitleLabel, timeLabel)
	rightContent := container.New(&imagePanelLayout{}, image, dismissButton)
	content := container.NewGridWithColumns(2, leftContent, rightContent)
	window.SetContent(container.NewStack(background, content))

	notice := &Window{
		window:        window,
		config:        config,
		image:         image,
		titleLabel:    titleLabel,
		subtitleLabel: subtitleLabel,
		timeLabel:     timeLabel,
		dismissButton: dismissButton,
		background:    background,
	}
	dismissButton.OnTapped = notice.Dismiss
	window.SetCloseIntercept(notice.Dismiss)

	return notice
}

// Show displays the notice with the time the countdown finished at.
func (notice *Window) Show(finishedAt string) {
	notice.timeLabel.Text = finishedAt
	notice.timeLabel.Refresh()
	notice.resizeToScreenFraction()
	notice.visible = true
	notice.window.Show()
	notice.window.RequestFocus()
}

// Dismiss hides the notice and runs the dismiss handler.
func (notice *Window) Dismiss() {
	if !notice.visible {
		return
	}
	notice.visible = false
	notice.window.Hide()
	if notice.onDismiss != nil {
		notice.onDismiss()
	}
}

// Visible reports whether the notice is showing.
func (notice *Window) Visible() bool {
	return notice.visible
}

// SetOnDismiss sets the dismiss handler.
func (notice *Window) SetOnDismiss(handler func()) {
	notice.onDismiss = handler
}

// UpdateConfig updates notice visuals.
func (notice *Window) UpdateConfig(config Config) {
	notice.config = config
	notice.background.FillColor = color.NRGBA{A: config.Opacity}
	canvas.Refresh(notice.background)
	if config.Image != nil {
		notice.image.Resource = config.Image
		notice.image.Refresh()
	}
}

func (notice *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := notice.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * noticeWidthFraction
	height := screenSize.Height * noticeHeightFraction
	minSize := notice.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	notice.window.Resize(fyne.NewSize(width, height))
	notice.window.CenterOnScreen()
}
