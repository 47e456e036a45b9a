package sink

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// writeInteractiveSpectrum renders the power spectrum as a standalone HTML
// line chart over the display frequency axis.
func writeInteractiveSpectrum(path string, freqs, powerDB []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Interactive Power Spectrum"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frequency (Hz)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Power (dB)"}),
	)

	xAxis := make([]string, len(freqs))
	series := make([]opts.LineData, len(powerDB))
	for i := range powerDB {
		xAxis[i] = fmt.Sprintf("%.3f", freqs[i])
		series[i] = opts.LineData{Value: powerDB[i]}
	}
	line.SetXAxis(xAxis).AddSeries("Power Spectrum", series)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := line.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
