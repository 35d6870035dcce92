package eventbus

import (
	"log"

	"github.com/roffe/readoutplot/pkg/readout"
)

type readoutPublisher struct {
	bus    *Controller
	xTopic string
	yTopic string
}

// ReadoutListener returns a readout listener that publishes every reading on
// xTopic and yTopic.
func (e *Controller) ReadoutListener(xTopic, yTopic string) readout.Listener {
	return &readoutPublisher{bus: e, xTopic: xTopic, yTopic: yTopic}
}

func (r *readoutPublisher) ReadoutData(_ readout.Surface, xValue, yValue float64) {
	if err := r.bus.Publish(r.xTopic, xValue); err != nil {
		log.Println(err)
	}
	if err := r.bus.Publish(r.yTopic, yValue); err != nil {
		log.Println(err)
	}
}
