package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Display text sizes
const (
	DisplayTitleTextSize  float32 = 16
	DisplayStatusTextSize float32 = 11
)

// DisplayPanel is the green-on-black now-playing readout at the top of the
// window. It shows the current song or station on the first line and the
// player status (and recording timer) on the second.
type DisplayPanel struct {
	widget.BaseWidget

	background *canvas.Rectangle
	titleText  *canvas.Text
	statusText *canvas.Text
}

// NewDisplayPanel creates the display with placeholder text
func NewDisplayPanel() *DisplayPanel {
	d := &DisplayPanel{}
	d.ExtendBaseWidget(d)

	d.background = canvas.NewRectangle(DisplayBackgroundColor)

	d.titleText = canvas.NewText(DashPlaceholder, DisplayTextColor)
	d.titleText.TextSize = DisplayTitleTextSize
	d.titleText.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}

	d.statusText = canvas.NewText("", DisplayTextColor)
	d.statusText.TextSize = DisplayStatusTextSize
	d.statusText.TextStyle = fyne.TextStyle{Monospace: true}

	return d
}

// SetTitle updates the first display line
func (d *DisplayPanel) SetTitle(text string) {
	if text == "" {
		text = DashPlaceholder
	}
	d.titleText.Text = text
	d.titleText.Refresh()
}

// SetStatus updates the second display line
func (d *DisplayPanel) SetStatus(text string) {
	d.statusText.Text = text
	d.statusText.Refresh()
}

// SetRecordingIndicator switches the status line color between the normal
// display green and the recording red
func (d *DisplayPanel) SetRecordingIndicator(recording bool) {
	if recording {
		d.statusText.Color = RecordingActiveColor
	} else {
		d.statusText.Color = DisplayTextColor
	}
	d.statusText.Refresh()
}

// CreateRenderer creates the widget renderer
func (d *DisplayPanel) CreateRenderer() fyne.WidgetRenderer {
	lines := container.NewVBox(d.titleText, d.statusText)
	content := container.NewStack(d.background, container.NewPadded(lines))
	return &displayPanelRenderer{panel: d, content: content}
}

// displayPanelRenderer renders the display panel
type displayPanelRenderer struct {
	panel   *DisplayPanel
	content *fyne.Container
}

// Layout arranges the components
func (r *displayPanelRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

// MinSize returns the minimum size
func (r *displayPanelRenderer) MinSize() fyne.Size {
	min := r.content.MinSize()
	if min.Height < DisplayMinHeight {
		min.Height = DisplayMinHeight
	}
	return min
}

// Refresh redraws the panel
func (r *displayPanelRenderer) Refresh() {
	r.content.Refresh()
}

// Objects returns all canvas objects
func (r *displayPanelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

// Destroy cleans up resources
func (r *displayPanelRenderer) Destroy() {}
