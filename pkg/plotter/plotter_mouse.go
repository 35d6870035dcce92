package plotter

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (p *Plotter) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY > 0 {
		p.zoom.SetValue(p.zoom.Value - 2)
	} else {
		p.zoom.SetValue(p.zoom.Value + 2)
	}
}

func (p *Plotter) onZoom(value float64) {
	old := p.dataPointsToShow
	p.dataPointsToShow = max(min(p.dataLength, 25*int(value)), 1)
	p.plotStartPos += int(float64(old-p.dataPointsToShow) * 0.5)
	p.plotStartPos = min(max(p.plotStartPos, 0), max(p.dataLength-p.dataPointsToShow, 0))
	p.refreshImage()
}

func (p *Plotter) MouseIn(*desktop.MouseEvent) {
	p.cursor.Show()
}

// MouseMoved follows the pointer with the cursor line and passes the local
// position on to everyone listening for pointer movement.
func (p *Plotter) MouseMoved(event *desktop.MouseEvent) {
	if p.plotSize.Width < 1 || p.plotSize.Height < 1 {
		return
	}
	p.moveCursor(event.Position.X)
	x, y := int(event.Position.X), int(event.Position.Y)
	for _, fn := range p.pointerHooks {
		fn(x, y)
	}
}

func (p *Plotter) MouseOut() {
	p.cursor.Hide()
}
