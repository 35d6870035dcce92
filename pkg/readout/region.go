package readout

// Region is a snapshot of a plot's drawable area in pixels together with the
// data bounds currently shown in it. Pixel bounds are inclusive.
type Region struct {
	Left, Top, Right, Bottom int

	XMin, XMax float64
	YMin, YMax float64

	// pixels per data unit
	XScale float64
	YScale float64
}

// NewRegion derives the per axis scale factors from the pixel and data bounds.
func NewRegion(left, top, right, bottom int, xMin, xMax, yMin, yMax float64) Region {
	return Region{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
		XMin:   xMin,
		XMax:   xMax,
		YMin:   yMin,
		YMax:   yMax,
		XScale: float64(right-left) / (xMax - xMin),
		YScale: float64(bottom-top) / (yMax - yMin),
	}
}

// Transform converts a pixel position to data space. Positions outside the
// region are pulled to the nearest edge. Pixel rows grow downwards while data y
// grows upwards.
func (r Region) Transform(x, y int) (xValue, yValue float64) {
	x = min(max(x, r.Left), r.Right)
	y = min(max(y, r.Top), r.Bottom)

	xValue = r.XMin + float64(x-r.Left)/r.XScale
	xValue = min(max(xValue, r.XMin), r.XMax)

	yValue = r.YMax - float64(y-r.Top)/r.YScale
	yValue = min(max(yValue, r.YMin), r.YMax)
	return
}
