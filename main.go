package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/roffe/readoutplot/pkg/eventbus"
	"github.com/roffe/readoutplot/pkg/logfile"
	"github.com/roffe/readoutplot/pkg/plotter"
	"github.com/roffe/readoutplot/pkg/readout"
	"github.com/roffe/readoutplot/pkg/theme"
)

const (
	prefPrecision = "readoutPrecision"
	prefPublish   = "readoutPublish"

	topicX = "readout.x"
	topicY = "readout.y"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.readoutplot")
	a.Settings().SetTheme(theme.PlotTheme{})
	w := a.NewWindow("Readout")

	values, order, err := loadValues(os.Args[1:])
	if err != nil {
		log.Println(err)
		dialog.ShowError(err, w)
		values, order = sampleValues(2000)
	}

	precision := a.Preferences().IntWithFallback(prefPrecision, 2)

	plot := plotter.NewPlotter(values,
		plotter.WithOrder(order),
		plotter.WithPrecision(precision),
	)
	ro := readout.New(plot)

	status := widget.NewLabel("move the pointer over the plot")
	ro.AddListener(readout.Func(func(_ readout.Surface, x, y float64) {
		status.SetText("x: " + formatValue(x, precision) + "  y: " + formatValue(y, precision))
	}))
	ro.AddListener(readout.Func(func(_ readout.Surface, x, _ float64) {
		plot.UpdateLegend(x)
	}))

	bottom := container.NewVBox(newPositionSlider(plot, values, order), status)

	if a.Preferences().BoolWithFallback(prefPublish, true) {
		bus := eventbus.New(eventbus.DefaultConfig)
		defer bus.Close()
		ro.AddListener(bus.ReadoutListener(topicX, topicY))

		published := widget.NewLabel("")
		cancel := bus.SubscribeFunc(topicY, func(v float64) {
			fyne.Do(func() {
				published.SetText(topicY + " " + formatValue(v, precision))
			})
		})
		defer cancel()
		bottom.Add(published)
	}

	w.SetContent(container.NewBorder(nil, bottom, nil, nil, plot))
	w.Resize(fyne.NewSize(1024, 600))
	w.ShowAndRun()
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func loadValues(args []string) (map[string][]float64, []string, error) {
	if len(args) == 0 {
		values, order := sampleValues(2000)
		return values, order, nil
	}
	lf, err := logfile.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	defer lf.Close()
	values, order := logfile.Series(lf)
	if len(order) == 0 {
		return nil, nil, fmt.Errorf("%s contains no values", args[0])
	}
	return values, order, nil
}

func newPositionSlider(plot *plotter.Plotter, values map[string][]float64, order []string) *widget.Slider {
	var length int
	for _, k := range order {
		length = max(length, len(values[k])-1)
	}
	pos := widget.NewSlider(0, float64(max(length, 1)))
	pos.OnChanged = func(v float64) {
		plot.Seek(int(v))
	}
	return pos
}

// sampleValues generates a frequency sweep and its power so there is something
// to look at without a log file.
func sampleValues(n int) (map[string][]float64, []string) {
	freq := make([]float64, n)
	power := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq[i] = 1400 + 20*t
		power[i] = -90 + 12*math.Sin(t*40*math.Pi)*math.Exp(-3*t)
	}
	return map[string][]float64{
		"Frequency": freq,
		"Power":     power,
	}, []string{"Power", "Frequency"}
}
