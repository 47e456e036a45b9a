package autocorr

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRecordFile writes a well-formed two-column record with the given
// number of rows. Values follow a recognizable pattern so segment splits
// can be checked.
func writeRecordFile(t *testing.T, rows int) string {
	t.Helper()

	var sb strings.Builder
	for i := range rows {
		fmt.Fprintf(&sb, "%d %.6f\n", i%64, float64(i)*0.5)
	}

	path := filepath.Join(t.TempDir(), "pcal_test.dat")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()

	assert.Equal(t, SegmentLayout{4097, 4097, 4097, 4096}, layout)
	assert.Equal(t, 16387, layout.Total())
	assert.NoError(t, layout.Validate())
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  SegmentLayout
		wantErr bool
	}{
		{"default", DefaultLayout(), false},
		{"single segment", SegmentLayout{100}, false},
		{"empty", SegmentLayout{}, true},
		{"zero segment", SegmentLayout{100, 0}, true},
		{"negative segment", SegmentLayout{-1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadRecordSplitsSegments(t *testing.T) {
	layout := DefaultLayout()
	path := writeRecordFile(t, layout.Total())

	functions, err := ReadRecord(path, layout)
	require.NoError(t, err)
	require.Len(t, functions, 4)

	offset := 0
	for i, fn := range functions {
		assert.Equal(t, i+1, fn.Index)
		assert.Len(t, fn.Values, layout[i])
		assert.Equal(t, float64(offset)*0.5, fn.Values[0], "segment %d start", i+1)
		offset += layout[i]
	}
	assert.Equal(t, float64(16386)*0.5, functions[3].Values[4095])
}

func TestReadRecordIdempotent(t *testing.T) {
	path := writeRecordFile(t, DefaultLayout().Total())

	first, err := ReadRecord(path, DefaultLayout())
	require.NoError(t, err)
	second, err := ReadRecord(path, DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReadRecordIgnoresExtraRows(t *testing.T) {
	path := writeRecordFile(t, DefaultLayout().Total()+50)

	functions, err := ReadRecord(path, DefaultLayout())
	require.NoError(t, err)
	assert.Len(t, functions, 4)
}

func TestReadRecordShortFile(t *testing.T) {
	path := writeRecordFile(t, 100)

	_, err := ReadRecord(path, DefaultLayout())
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
	assert.Contains(t, parseErr.Message, "16387")
}

func TestReadRecordNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(path, []byte("1 2.0\n2 not-a-number\n"), 0o644))

	_, err := ReadRecord(path, SegmentLayout{2})
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
}

func TestReadRecordMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(path, []byte("1 2.0\n3\n"), 0o644))

	_, err := ReadRecord(path, SegmentLayout{2})
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Message, "2 columns")
}

func TestReadRecordMissingFile(t *testing.T) {
	_, err := ReadRecord(filepath.Join(t.TempDir(), "absent.dat"), DefaultLayout())

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadRecordSkipsBlankLines(t *testing.T) {
	content := "0 1.0\n\n  \n1 2.0\n\n2 3.0\n"
	path := filepath.Join(t.TempDir(), "blanks.dat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	functions, err := ReadRecord(path, SegmentLayout{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, functions[0].Values)
}

func TestReadRecordScientificNotation(t *testing.T) {
	content := "0 1.5e-3\n1 -2.25E+2\n"
	path := filepath.Join(t.TempDir(), "sci.dat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	functions, err := ReadRecord(path, SegmentLayout{2})
	require.NoError(t, err)
	assert.InDelta(t, 1.5e-3, functions[0].Values[0], math.SmallestNonzeroFloat64)
	assert.InDelta(t, -225.0, functions[0].Values[1], math.SmallestNonzeroFloat64)
}
