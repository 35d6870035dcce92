package plotter

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
)

var disabledColor = color.RGBA{128, 128, 128, 255}

// TappableText is a legend entry. Tapping toggles the series, secondary tap
// opens a colour picker and hovering highlights the series in the plot.
type TappableText struct {
	widget.BaseWidget
	text          *canvas.Text
	value         *canvas.Text
	enabled       bool
	precision     int
	onTapped      func(bool)
	onColorUpdate func(col color.Color)
	onHover       func(bool)
	color         color.Color

	oldSize fyne.Size
}

func NewTappableText(text string, col color.Color, onTapped func(enabled bool), onColorUpdate func(col color.Color), onHover func(bool)) *TappableText {
	tt := &TappableText{
		text:          canvas.NewText(text, col),
		value:         canvas.NewText("0", col),
		enabled:       true,
		onTapped:      onTapped,
		onColorUpdate: onColorUpdate,
		onHover:       onHover,
		color:         col,
	}

	if tt.onTapped == nil {
		tt.onTapped = func(bool) {}
	}
	if tt.onColorUpdate == nil {
		tt.onColorUpdate = func(color.Color) {}
	}
	if tt.onHover == nil {
		tt.onHover = func(bool) {}
	}

	tt.text.TextSize = 14
	tt.value.TextSize = 14

	tt.ExtendBaseWidget(tt)
	return tt
}

func (tt *TappableText) Refresh() {
	tt.value.Refresh()
	tt.text.Refresh()
}

func (tt *TappableText) MouseIn(*desktop.MouseEvent) {
	tt.onHover(true)
}

func (tt *TappableText) MouseMoved(*desktop.MouseEvent) {
}

func (tt *TappableText) MouseOut() {
	tt.onHover(false)
}

func (tt *TappableText) Enable() {
	tt.enabled = true
	tt.text.Color = tt.color
	tt.value.Color = tt.color
	tt.text.TextStyle.Italic = false
	tt.value.TextStyle.Italic = false
	tt.Refresh()
}

func (tt *TappableText) Disable() {
	tt.enabled = false
	tt.text.TextStyle.Italic = true
	tt.value.TextStyle.Italic = true
	tt.text.Color = disabledColor
	tt.value.Color = disabledColor
	tt.Refresh()
}

func (tt *TappableText) Tapped(*fyne.PointEvent) {
	if tt.enabled {
		tt.Disable()
	} else {
		tt.Enable()
	}
	tt.onTapped(tt.enabled)
}

func (tt *TappableText) TappedSecondary(*fyne.PointEvent) {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		tt.color = c
		if tt.enabled {
			tt.text.Color = c
			tt.value.Color = c
			tt.Refresh()
		}
		tt.onColorUpdate(c)
	})

	c := fyne.CurrentApp().Driver().CanvasForObject(tt)
	if c == nil {
		return
	}

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), c)
	modal.Show()
}

func (tt *TappableText) CreateRenderer() fyne.WidgetRenderer {
	return &tappableTextRenderer{tt}
}

type tappableTextRenderer struct {
	t *TappableText
}

func (tr *tappableTextRenderer) Layout(size fyne.Size) {
	if tr.t.oldSize == size {
		return
	}
	tr.t.oldSize = size
	tr.t.value.Move(fyne.NewPos(0, 0))
	tr.t.text.Move(fyne.NewPos(70, 0))
}

func (tr *tappableTextRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 18)
}

func (tr *tappableTextRenderer) Refresh() {
	tr.t.value.Refresh()
	tr.t.text.Refresh()
}

func (tr *tappableTextRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{tr.t.value, tr.t.text}
}

func (tr *tappableTextRenderer) Destroy() {
}
