package readout_test

import (
	"testing"

	"github.com/roffe/readoutplot/pkg/readout"
	"github.com/stretchr/testify/assert"
)

func testRegion() readout.Region {
	return readout.NewRegion(10, 10, 110, 60, 0, 100, 0, 50)
}

func TestNewRegion(t *testing.T) {
	r := testRegion()
	assert.Equal(t, 1.0, r.XScale)
	assert.Equal(t, 1.0, r.YScale)

	r = readout.NewRegion(0, 0, 400, 200, 0, 100, -1, 3)
	assert.Equal(t, 4.0, r.XScale)
	assert.Equal(t, 50.0, r.YScale)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		wantX float64
		wantY float64
	}{
		{name: "center", x: 60, y: 35, wantX: 50, wantY: 25},
		{name: "upper left", x: 10, y: 10, wantX: 0, wantY: 50},
		{name: "lower right", x: 110, y: 60, wantX: 100, wantY: 0},
		{name: "outside upper left", x: 5, y: 5, wantX: 0, wantY: 50},
		{name: "outside lower right", x: 500, y: 500, wantX: 100, wantY: 0},
		{name: "negative", x: -20, y: 35, wantX: 0, wantY: 25},
	}
	r := testRegion()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.Transform(tt.x, tt.y)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestTransformClampsBeforeConversion(t *testing.T) {
	r := testRegion()
	for y := 0; y < 80; y += 7 {
		x1, y1 := r.Transform(r.Left-5, y)
		x2, y2 := r.Transform(r.Left, y)
		assert.Equal(t, x2, x1)
		assert.Equal(t, y2, y1)
	}
	for x := 0; x < 130; x += 9 {
		x1, y1 := r.Transform(x, r.Bottom+5)
		x2, y2 := r.Transform(x, r.Bottom)
		assert.Equal(t, x2, x1)
		assert.Equal(t, y2, y1)
	}
}

func TestTransformMonotonic(t *testing.T) {
	r := readout.NewRegion(37, 12, 611, 389, -3.5, 12.25, 800, 6500)
	prevX, _ := r.Transform(r.Left+1, 100)
	for x := r.Left + 2; x < r.Right; x++ {
		xv, _ := r.Transform(x, 100)
		assert.Greater(t, xv, prevX)
		prevX = xv
	}
	_, prevY := r.Transform(100, r.Top+1)
	for y := r.Top + 2; y < r.Bottom; y++ {
		_, yv := r.Transform(100, y)
		assert.Less(t, yv, prevY)
		prevY = yv
	}
}

func TestTransformCornersStayInBounds(t *testing.T) {
	r := readout.NewRegion(3, 7, 333, 217, 0.1, 0.7, -0.3, 0.9)
	x, y := r.Transform(r.Left, r.Top)
	assert.Equal(t, r.XMin, x)
	assert.Equal(t, r.YMax, y)

	x, y = r.Transform(r.Right, r.Bottom)
	assert.GreaterOrEqual(t, x, r.XMin)
	assert.LessOrEqual(t, x, r.XMax)
	assert.InDelta(t, r.XMax, x, 1e-12)
	assert.GreaterOrEqual(t, y, r.YMin)
	assert.InDelta(t, r.YMin, y, 1e-12)
}
