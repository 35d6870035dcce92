package plotter

import (
	"image/color"
	"math"
)

// RGBASetter is implemented by *image.RGBA.
type RGBASetter interface {
	SetRGBA(x int, y int, c color.RGBA)
}

// BresenhamThick draws a line with the given thickness by stroking parallel
// one pixel lines along the normal.
func BresenhamThick(p RGBASetter, x1, y1, x2, y2 int, thickness int, col color.RGBA) {
	if thickness <= 1 {
		bresenham(p, x1, y1, x2, y2, col)
		return
	}

	halfThick := thickness / 2

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		fillCircle(p, x1, y1, halfThick, col)
		return
	}

	perpX := -dy / length
	perpY := dx / length

	for i := -halfThick; i <= halfThick; i++ {
		offsetX := int(math.Round(float64(i) * perpX))
		offsetY := int(math.Round(float64(i) * perpY))
		bresenham(p,
			x1+offsetX, y1+offsetY,
			x2+offsetX, y2+offsetY,
			col)
	}
}

func bresenham(p RGBASetter, x1, y1, x2, y2 int, col color.RGBA) {
	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := abs(y2 - y1)
	err := dx / 2
	y := y1
	ystep := 1
	if y1 >= y2 {
		ystep = -1
	}

	for x := x1; x <= x2; x++ {
		if steep {
			p.SetRGBA(y, x, col)
		} else {
			p.SetRGBA(x, y, col)
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
}

func fillCircle(p RGBASetter, centerX, centerY, radius int, col color.RGBA) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				p.SetRGBA(centerX+x, centerY+y, col)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
