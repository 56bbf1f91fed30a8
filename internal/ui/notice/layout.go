package notice

import "fyne.io/fyne/v2"

// imagePanelLayout places a square image above a right-aligned button.
type imagePanelLayout struct{}

func (layout *imagePanelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	button := objects[1]

	buttonSize := button.MinSize()
	buttonHeight := buttonSize.Height
	if buttonHeight > size.Height*0.25 {
		buttonHeight = size.Height * 0.25
	}
	imageAreaHeight := max(size.Height-buttonHeight, 0)

	margin := imageAreaHeight * 0.05
	side := min(imageAreaHeight*0.90, size.Width-margin)
	side = max(side, 0)
	x := max(size.Width-margin-side, 0)
	image.Move(fyne.NewPos(x, margin))
	image.Resize(fyne.NewSize(side, side))

	buttonWidth := min(buttonSize.Width*1.4, size.Width)
	buttonX := max(x+side-buttonWidth, 0)
	buttonY := max(imageAreaHeight+(buttonHeight-buttonSize.Height)/2, 0)
	button.Move(fyne.NewPos(buttonX, buttonY))
	button.Resize(fyne.NewSize(buttonWidth, buttonSize.Height))
}

func (layout *imagePanelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	imageMin := objects[0].MinSize()
	buttonMin := objects[1].MinSize()
	return fyne.NewSize(max(imageMin.Width, buttonMin.Width), imageMin.Height+buttonMin.Height)
}

// textPanelLayout stacks title and message at the top and pins the last
// object to the bottom.
type textPanelLayout struct{}

const (
	textGap    = 6
	textMargin = 20
)

func (layout *textPanelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	pad := size.Height * 0.05
	availableWidth := max(size.Width-pad*2, 0)

	y := pad
	last := len(objects) - 1
	for _, object := range objects[:last] {
		objectSize := object.MinSize()
		object.Move(fyne.NewPos(pad, y))
		object.Resize(fyne.NewSize(availableWidth, objectSize.Height))
		y += objectSize.Height + textGap
	}

	footer := objects[last]
	footerSize := footer.MinSize()
	footer.Move(fyne.NewPos(pad, max(size.Height-pad-footerSize.Height, 0)))
	footer.Resize(footerSize)
}

func (layout *textPanelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		objectSize := object.MinSize()
		width = max(width, objectSize.Width)
		height += objectSize.Height + textGap
	}
	return fyne.NewSize(width+textMargin, height+textMargin)
}
