package sink

import (
	"fmt"
	"path/filepath"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spectralab/autofft/pkg/logging"
	"github.com/spectralab/autofft/pkg/spectrum"
)

// Render produces the visual artifacts for one sub-function: a PNG of the
// centered autocorrelation over lag, a PNG of the power spectrum over DFT
// bins, and an interactive HTML chart of the power spectrum over the
// frequency axis derived from the sample rate.
func (s *FileSink) Render(prefix string, index int, centered, powerDB []float64, sampleRateHz int) (*ArtifactRefs, error) {
	autocorrPNG := prefix + "_autocorr.png"
	if err := writeLinePlot(autocorrPNG, "Autocorrelation Function", "Lag", "Value", "Autocorrelation", nil, centered); err != nil {
		return nil, NewSinkError(StageRender, autocorrPNG, "failed to render autocorrelation plot", err)
	}
	s.logger.Info("Autocorrelation plot saved", logging.Fields{"path": autocorrPNG})

	spectrumPNG := prefix + ".png"
	if err := writeLinePlot(spectrumPNG, "Power Spectrum", "Frequency (Hz)", "Power (dB)", "Power Spectrum", nil, powerDB); err != nil {
		return nil, NewSinkError(StageRender, spectrumPNG, "failed to render power spectrum plot", err)
	}
	s.logger.Info("Power spectrum plot saved", logging.Fields{"path": spectrumPNG})

	interactiveHTML := prefix + "_interactive.html"
	freqs := spectrum.FrequencyBins(len(powerDB), float64(sampleRateHz))
	if err := writeInteractiveSpectrum(interactiveHTML, freqs, powerDB); err != nil {
		return nil, NewSinkError(StageRender, interactiveHTML, "failed to render interactive chart", err)
	}
	s.logger.Info("Interactive power spectrum saved", logging.Fields{"path": interactiveHTML})

	if s.preview {
		s.previewSpectrum(prefix, powerDB)
	}

	s.logger.Debug("Rendering completed", logging.Fields{
		"prefix":   prefix,
		"function": index,
	})

	// The report embeds artifacts by base name so the output directory
	// stays relocatable.
	return &ArtifactRefs{
		AutocorrPNG:     filepath.Base(autocorrPNG),
		SpectrumPNG:     filepath.Base(spectrumPNG),
		InteractiveHTML: filepath.Base(interactiveHTML),
	}, nil
}

// writeLinePlot saves a single-series line plot as a PNG. When xs is nil
// the sample index is used as the x coordinate.
func writeLinePlot(path, title, xLabel, yLabel, seriesName string, xs, ys []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		x := float64(i)
		if xs != nil {
			x = xs[i]
		}
		pts[i] = plotter.XY{X: x, Y: y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build line series: %w", err)
	}
	p.Add(line)
	p.Legend.Add(seriesName, line)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func (s *FileSink) previewSpectrum(prefix string, powerDB []float64) {
	chart := asciigraph.Plot(powerDB,
		asciigraph.Height(12),
		asciigraph.Width(100),
		asciigraph.Caption(filepath.Base(prefix)+" power spectrum (dB)"),
	)
	fmt.Println(chart)
}
