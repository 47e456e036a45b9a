package sink

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"

	"github.com/spectralab/autofft/pkg/logging"
	"github.com/spectralab/autofft/pkg/spectrum"
)

// FileSink writes artifacts under a prefix derived by the orchestrator.
// npy persistence keeps the raw arrays loadable by the numpy-based tooling
// that consumed the analyzer's output historically.
type FileSink struct {
	logger  logging.Logger
	preview bool
}

// FileSinkConfig contains configuration for the file sink
type FileSinkConfig struct {
	// Preview renders each power spectrum as an ASCII chart on stdout
	Preview bool
	Logger  logging.Logger
}

// NewFileSink creates a new file sink
func NewFileSink(cfg FileSinkConfig) *FileSink {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &FileSink{
		logger:  logger,
		preview: cfg.Preview,
	}
}

// Persist writes every stage of the transform chain as a NumPy .npy file
// under the given prefix.
func (s *FileSink) Persist(prefix string, index int, res *spectrum.Result) error {
	arrays := []struct {
		suffix string
		data   []float64
	}{
		{"_autocorr.npy", res.Autocorrelation},
		{"_sym_autocorr.npy", res.Symmetrized},
		{"_cleaned_autocorr.npy", res.Centered},
		{"_fft_result.npy", res.Magnitude},
		{"_power_spectrum.npy", res.PowerDB},
	}

	for _, a := range arrays {
		if err := writeNpy(prefix+a.suffix, a.data); err != nil {
			return NewSinkError(StagePersist, prefix+a.suffix, "failed to write array", err)
		}
	}

	s.logger.Info("Intermediate results saved", logging.Fields{
		"prefix":   prefix,
		"function": index,
	})
	return nil
}

func writeNpy(path string, data []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := npyio.Write(f, data); err != nil {
		f.Close()
		return fmt.Errorf("npy encode: %w", err)
	}
	return f.Close()
}
