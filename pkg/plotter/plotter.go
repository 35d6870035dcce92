package plotter

import (
	"image"
	"image/color"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/readoutplot/pkg/readout"
)

var _ fyne.Widget = (*Plotter)(nil)
var _ fyne.Scrollable = (*Plotter)(nil)
var _ desktop.Hoverable = (*Plotter)(nil)
var _ readout.Surface = (*Plotter)(nil)

const legendWidth = 220

type Plotter struct {
	widget.BaseWidget

	cursor       *canvas.Line
	canvasImage  *canvas.Image
	legend       *fyne.Container
	legendScroll *container.Scroll
	legendTexts  []*TappableText
	zoom         *widget.Slider

	ts               []*TimeSeries
	plotStartPos     int
	cursorPos        int
	values           map[string][]float64
	valueOrder       []string
	dataPointsToShow int
	dataLength       int
	precision        int

	plotPos              fyne.Position
	plotSize             fyne.Size
	plotResolution       fyne.Size
	plotResolutionFactor float32

	hilightLine int

	pointerHooks []func(x, y int)
}

type PlotterOpt func(*Plotter)

func WithPlotResolutionFactor(factor float32) PlotterOpt {
	return func(p *Plotter) {
		p.plotResolutionFactor = factor
	}
}

func WithOrder(order []string) PlotterOpt {
	return func(p *Plotter) {
		p.valueOrder = order
	}
}

// WithPrecision sets the number of decimals shown in the legend.
func WithPrecision(precision int) PlotterOpt {
	return func(p *Plotter) {
		p.precision = precision
	}
}

func NewPlotter(values map[string][]float64, opts ...PlotterOpt) *Plotter {
	p := &Plotter{
		values:               values,
		legend:               container.NewVBox(),
		zoom:                 widget.NewSlider(1, 100),
		canvasImage:          canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 400, 200))),
		cursor:               canvas.NewLine(color.White),
		plotResolutionFactor: 1.0,
		precision:            2,
		hilightLine:          -1,
	}
	p.ExtendBaseWidget(p)

	p.canvasImage.FillMode = canvas.ImageFillStretch
	p.canvasImage.ScaleMode = canvas.ImageScaleFastest
	p.cursor.Hide()

	p.zoom.Orientation = widget.Vertical
	p.zoom.Value = 10

	for _, opt := range opts {
		opt(p)
	}

	if len(p.valueOrder) == 0 {
		for k := range values {
			p.valueOrder = append(p.valueOrder, k)
		}
		sort.Slice(p.valueOrder, func(i, j int) bool { return lessCaseInsensitive(p.valueOrder[i], p.valueOrder[j]) })
	}

	for _, k := range p.valueOrder {
		v, ok := values[k]
		if !ok || len(v) == 0 {
			continue
		}
		p.dataLength = max(p.dataLength, len(v)-1)

		n := len(p.ts)
		p.ts = append(p.ts, NewTimeSeries(k, v))

		onTapped := func(enabled bool) {
			p.ts[n].Enabled = enabled
			p.refreshImage()
		}

		onColorUpdate := func(col color.Color) {
			r, g, b, a := col.RGBA()
			p.ts[n].Color = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
			p.refreshImage()
		}

		onHover := func(hover bool) {
			p.legendTexts[n].text.TextStyle.Bold = hover
			p.legendTexts[n].value.TextStyle.Bold = hover
			p.legendTexts[n].Refresh()
			if hover {
				p.hilightLine = n
			} else {
				p.hilightLine = -1
			}
			p.refreshImage()
		}

		labelText := NewTappableText(k, p.ts[n].Color, onTapped, onColorUpdate, onHover)
		labelText.precision = p.precision
		p.legendTexts = append(p.legendTexts, labelText)
		p.legend.Add(labelText)
	}

	p.dataPointsToShow = max(min(p.dataLength, 250), 1)
	p.zoom.OnChanged = p.onZoom
	p.legendScroll = container.NewVScroll(p.legend)

	return p
}

func lessCaseInsensitive(s, t string) bool {
	for {
		if len(t) == 0 {
			return false
		}
		if len(s) == 0 {
			return true
		}
		c, sizec := utf8.DecodeRuneInString(s)
		d, sized := utf8.DecodeRuneInString(t)

		lowerc := unicode.ToLower(c)
		lowerd := unicode.ToLower(d)

		if lowerc < lowerd {
			return true
		}
		if lowerc > lowerd {
			return false
		}

		s = s[sizec:]
		t = t[sized:]
	}
}

func (p *Plotter) CreateRenderer() fyne.WidgetRenderer {
	return &plotterRenderer{p}
}

// Region reports the pixel bounds of the plot image within the widget and the
// data window currently drawn in it. X is the sample index, Y follows the
// highlighted series or the first enabled one.
func (p *Plotter) Region() readout.Region {
	left, top := int(p.plotPos.X), int(p.plotPos.Y)
	right, bottom := int(p.plotPos.X+p.plotSize.Width), int(p.plotPos.Y+p.plotSize.Height)
	yMin, yMax := p.yRange()
	return readout.NewRegion(
		left, top, right, bottom,
		float64(p.plotStartPos), float64(p.plotStartPos+p.dataPointsToShow),
		yMin, yMax,
	)
}

func (p *Plotter) yRange() (float64, float64) {
	if p.hilightLine >= 0 && p.hilightLine < len(p.ts) {
		ts := p.ts[p.hilightLine]
		return ts.Min, ts.Max
	}
	for _, ts := range p.ts {
		if ts.Enabled {
			return ts.Min, ts.Max
		}
	}
	return 0, 1
}

// OnPointerMoved adds fn to the functions called with the local pointer
// position whenever the mouse moves over the plotter.
func (p *Plotter) OnPointerMoved(fn func(x, y int)) {
	p.pointerHooks = append(p.pointerHooks, fn)
}

// Seek centers the visible window around pos and moves the legend values there.
func (p *Plotter) Seek(pos int) {
	halfDataPointsToShow := p.dataPointsToShow / 2
	offsetPosition := pos - halfDataPointsToShow
	if pos <= p.dataLength-halfDataPointsToShow {
		p.plotStartPos = min(max(offsetPosition, 0), p.dataLength)
	} else {
		p.plotStartPos = max(p.dataLength-p.dataPointsToShow, 0)
	}
	p.UpdateLegend(float64(pos))
	p.refreshImage()
}

// UpdateLegend shows the values found at sample position pos in the legend.
func (p *Plotter) UpdateLegend(pos float64) {
	p.cursorPos = min(max(int(pos+0.5), 0), p.dataLength)
	for i, ts := range p.ts {
		data := p.values[ts.Name]
		if len(data) == 0 {
			continue
		}
		obj := p.legendTexts[i]
		newValue := strconv.FormatFloat(data[min(p.cursorPos, len(data)-1)], 'f', obj.precision, 64)
		if obj.value.Text == newValue {
			continue
		}
		obj.value.Text = newValue
		obj.Refresh()
	}
}

func (p *Plotter) refreshImage() {
	w, h := int(p.plotResolution.Width), int(p.plotResolution.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w > 1 && h > 1 {
		for n, ts := range p.ts {
			if !ts.Enabled || p.hilightLine == n {
				continue
			}
			ts.PlotImage(img, p.values, p.plotStartPos, p.dataPointsToShow, 1)
		}
		if p.hilightLine >= 0 && p.ts[p.hilightLine].Enabled {
			p.ts[p.hilightLine].PlotImage(img, p.values, p.plotStartPos, p.dataPointsToShow, 4)
		}
	}
	p.canvasImage.Image = img
	p.canvasImage.Refresh()
}

// moveCursor places the vertical cursor line at x, kept inside the plot area.
func (p *Plotter) moveCursor(x float32) {
	x = min(max(x, p.plotPos.X), p.plotPos.X+p.plotSize.Width)
	p.cursor.Position1 = fyne.NewPos(x, p.plotPos.Y)
	p.cursor.Position2 = fyne.NewPos(x, p.plotPos.Y+p.plotSize.Height)
	p.cursor.Refresh()
}
