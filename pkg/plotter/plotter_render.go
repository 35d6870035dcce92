package plotter

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type plotterRenderer struct {
	*Plotter
}

func (p *plotterRenderer) MinSize() fyne.Size {
	return fyne.NewSize(p.zoom.MinSize().Width+400+legendWidth, 100)
}

// Layout puts the zoom slider on the left, the legend on the right and gives
// the plot image everything in between.
func (p *plotterRenderer) Layout(size fyne.Size) {
	pad := theme.Padding()
	zw := p.zoom.MinSize().Width
	lw := min(float32(legendWidth), size.Width/3)

	p.zoom.Move(fyne.NewPos(0, 0))
	p.zoom.Resize(fyne.NewSize(zw, size.Height))

	p.legendScroll.Move(fyne.NewPos(size.Width-lw, 0))
	p.legendScroll.Resize(fyne.NewSize(lw, size.Height))

	p.plotPos = fyne.NewPos(zw+pad, 0)
	p.plotSize = fyne.NewSize(max(size.Width-zw-lw-2*pad, 0), size.Height)
	p.canvasImage.Move(p.plotPos)
	p.canvasImage.Resize(p.plotSize)

	p.plotResolution = fyne.NewSize(p.plotSize.Width*p.plotResolutionFactor, p.plotSize.Height*p.plotResolutionFactor)
	p.refreshImage()
	p.moveCursor(p.cursor.Position1.X)
}

func (p *plotterRenderer) Refresh() {
	p.canvasImage.Refresh()
	p.cursor.Refresh()
}

func (p *plotterRenderer) Destroy() {
}

func (p *plotterRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		p.zoom,
		p.canvasImage,
		p.cursor,
		p.legendScroll,
	}
}
