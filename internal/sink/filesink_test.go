package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectralab/autofft/pkg/logging"
	"github.com/spectralab/autofft/pkg/spectrum"
)

func TestPersistWritesAllStages(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "scan_pcal1")

	res, err := spectrum.Transform([]float64{1, 2, 3, 4, 3, 2, 1, 0})
	require.NoError(t, err)

	s := NewFileSink(FileSinkConfig{Logger: logging.NewNopLogger()})
	require.NoError(t, s.Persist(prefix, 1, res))

	suffixes := []string{
		"_autocorr.npy",
		"_sym_autocorr.npy",
		"_cleaned_autocorr.npy",
		"_fft_result.npy",
		"_power_spectrum.npy",
	}
	for _, suffix := range suffixes {
		path := prefix + suffix
		info, err := os.Stat(path)
		require.NoError(t, err, "expected artifact %s", path)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestPersistRoundTrip(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "scan_pcal2")

	res, err := spectrum.Transform([]float64{0.5, -1.5, 2.5, -3.5})
	require.NoError(t, err)

	s := NewFileSink(FileSinkConfig{Logger: logging.NewNopLogger()})
	require.NoError(t, s.Persist(prefix, 2, res))

	f, err := os.Open(prefix + "_power_spectrum.npy")
	require.NoError(t, err)
	defer f.Close()

	var got []float64
	require.NoError(t, npyio.Read(f, &got))
	assert.Equal(t, res.PowerDB, got)
}

func TestPersistBadDirectory(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "missing", "scan_pcal1")

	res, err := spectrum.Transform([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	s := NewFileSink(FileSinkConfig{Logger: logging.NewNopLogger()})
	err = s.Persist(prefix, 1, res)

	require.Error(t, err)
	var sinkErr *SinkError
	assert.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, StagePersist, sinkErr.Stage)
}

func TestRenderProducesArtifacts(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "scan_pcal1")

	res, err := spectrum.Transform([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	s := NewFileSink(FileSinkConfig{Logger: logging.NewNopLogger()})
	refs, err := s.Render(prefix, 1, res.Centered, res.PowerDB, 1000)
	require.NoError(t, err)

	// References are base names so the report stays relocatable
	assert.Equal(t, "scan_pcal1_autocorr.png", refs.AutocorrPNG)
	assert.Equal(t, "scan_pcal1.png", refs.SpectrumPNG)
	assert.Equal(t, "scan_pcal1_interactive.html", refs.InteractiveHTML)

	for _, name := range []string{refs.AutocorrPNG, refs.SpectrumPNG, refs.InteractiveHTML} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected artifact %s", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}
