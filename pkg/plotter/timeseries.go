package plotter

import (
	"image"
	"image/color"

	"github.com/roffe/readoutplot/pkg/colors"
)

type TimeSeries struct {
	Name       string
	Min        float64
	Max        float64
	valueRange float64
	Color      color.RGBA
	Enabled    bool
}

func NewTimeSeries(name string, data []float64) *TimeSeries {
	ts := &TimeSeries{
		Name:    name,
		Color:   colors.GetColor(name),
		Enabled: true,
	}
	if len(data) == 0 {
		ts.Max = 1
	} else {
		ts.Min, ts.Max = findMinMaxFloat64(data)
	}
	// a flat line still needs a range to be scaled against
	if ts.Max == ts.Min {
		ts.Min -= 0.5
		ts.Max += 0.5
	}
	ts.valueRange = ts.Max - ts.Min
	return ts
}

// PlotImage draws numPoints samples starting at start across the full width of img.
func (ts *TimeSeries) PlotImage(img *image.RGBA, values map[string][]float64, start, numPoints, thickness int) {
	data := values[ts.Name]
	dl := len(data) - 1
	if dl < 1 || numPoints < 1 {
		return
	}
	startN, endN := min(max(start, 0), dl), min(start+numPoints, dl)
	s := img.Bounds().Size()
	hh := s.Y - 1
	heightFactor := float64(hh) / ts.valueRange
	widthFactor := float64(s.X) / float64(numPoints)

	// start one in since we need to draw a line from the previous point
	for n := startN + 1; n <= endN; n++ {
		x0 := int(float64(n-1-start) * widthFactor)
		y0 := int(float64(hh) - (data[n-1]-ts.Min)*heightFactor)
		x1 := int(float64(n-start) * widthFactor)
		y1 := int(float64(hh) - (data[n]-ts.Min)*heightFactor)
		BresenhamThick(img, x0, y0, x1, y1, thickness, ts.Color)
	}
}

func findMinMaxFloat64(data []float64) (float64, float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
