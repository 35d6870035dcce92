// Package readout turns pointer movement over a plot into data space readings
// and hands them to registered listeners.
package readout

import (
	"log"
	"reflect"
	"sync"
)

// Surface is the plot the controller is attached to.
type Surface interface {
	// Region returns the current plot geometry. It is called once per event.
	Region() Region
	// OnPointerMoved registers fn to be called with local pixel coordinates
	// every time the pointer moves over the surface.
	OnPointerMoved(fn func(x, y int))
}

// Listener receives readouts. Registration is keyed on identity, so
// implementations must be comparable; others are refused by AddListener.
type Listener interface {
	ReadoutData(src Surface, xValue, yValue float64)
}

type funcListener struct {
	fn func(src Surface, xValue, yValue float64)
}

func (f *funcListener) ReadoutData(src Surface, xValue, yValue float64) {
	f.fn(src, xValue, yValue)
}

// Func wraps fn in a new Listener. Keep the returned value around to remove it later.
func Func(fn func(src Surface, xValue, yValue float64)) Listener {
	return &funcListener{fn: fn}
}

// Controller converts pointer movement over its surface into readouts and
// passes them on to the registered listeners.
type Controller struct {
	surface Surface

	mu        sync.Mutex
	listeners []Listener

	onPanic func(l Listener, r any)
}

// Opt configures a Controller in New.
type Opt func(*Controller)

// WithPanicHandler sets the function called when a listener panics. The
// remaining listeners are notified regardless.
func WithPanicHandler(fn func(l Listener, r any)) Opt {
	return func(c *Controller) {
		if fn != nil {
			c.onPanic = fn
		}
	}
}

// New attaches a controller to surface.
func New(surface Surface, opts ...Opt) *Controller {
	c := &Controller{
		surface: surface,
		onPanic: func(l Listener, r any) {
			log.Printf("readout listener %T panicked: %v", l, r)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	surface.OnPointerMoved(c.Readout)
	return c
}

// Surface returns the plot the controller is attached to.
func (c *Controller) Surface() Surface {
	return c.surface
}

// AddListener registers l. Adding a listener that is already registered does nothing.
func (c *Controller) AddListener(l Listener) {
	if l == nil {
		return
	}
	if !isComparable(l) {
		log.Printf("readout listener %T is not comparable, ignoring", l)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ll := range c.listeners {
		if ll == l {
			return
		}
	}
	listeners := make([]Listener, len(c.listeners), len(c.listeners)+1)
	copy(listeners, c.listeners)
	c.listeners = append(listeners, l)
}

// RemoveListener unregisters l. If l was never registered, nothing happens.
func (c *Controller) RemoveListener(l Listener) {
	if !isComparable(l) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ll := range c.listeners {
		if ll == l {
			listeners := make([]Listener, 0, len(c.listeners)-1)
			listeners = append(listeners, c.listeners[:i]...)
			c.listeners = append(listeners, c.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// isComparable reports whether l can be used with ==. Comparing two
// interface values holding the same uncomparable type panics.
func isComparable(l Listener) bool {
	return l == nil || reflect.TypeOf(l).Comparable()
}

// Readout converts the pixel position to data space using the surface's
// current region and notifies all listeners.
func (c *Controller) Readout(x, y int) {
	xValue, yValue := c.surface.Region().Transform(x, y)
	c.notifyListeners(xValue, yValue)
}

func (c *Controller) notifyListeners(xValue, yValue float64) {
	c.mu.Lock()
	listeners := c.listeners
	c.mu.Unlock()
	for _, l := range listeners {
		c.notify(l, xValue, yValue)
	}
}

func (c *Controller) notify(l Listener, xValue, yValue float64) {
	defer func() {
		if r := recover(); r != nil {
			c.onPanic(l, r)
		}
	}()
	l.ReadoutData(c.surface, xValue, yValue)
}
