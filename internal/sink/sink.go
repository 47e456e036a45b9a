// Package sink persists transform outputs and renders them into plots and
// an HTML summary report. It is a pure I/O layer: the transform chain hands
// it finished arrays and stays agnostic to what happens with them.
package sink

import (
	"github.com/spectralab/autofft/pkg/spectrum"
)

// ArtifactRefs holds the file names of the rendered artifacts for one
// sub-function, relative to the output directory
type ArtifactRefs struct {
	AutocorrPNG     string `json:"autocorr_png"`
	SpectrumPNG     string `json:"spectrum_png"`
	InteractiveHTML string `json:"interactive_html"`
}

// FileResult is the per-file batch outcome handed to the reporting layer:
// the input file's base name plus artifact references per sub-function,
// indexed 0..3 for sub-functions 1..4. A slot is nil when rendering that
// sub-function failed.
type FileResult struct {
	FileName  string          `json:"file_name"`
	Artifacts []*ArtifactRefs `json:"artifacts"`
}

// Sink receives transform outputs. Persist writes the raw numeric arrays;
// Render produces the visual artifacts and returns references to them.
type Sink interface {
	Persist(prefix string, index int, res *spectrum.Result) error
	Render(prefix string, index int, centered, powerDB []float64, sampleRateHz int) (*ArtifactRefs, error)
}
