// Package autocorr reads lag-domain autocorrelation records from the
// instrument's plain-text dump format: a whitespace-delimited two-column
// table of (channel, value) pairs holding four concatenated autocorrelation
// functions.
package autocorr

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SegmentLayout is the ordered list of lag-domain function lengths packed
// into one record. The default 4097/4097/4097/4096 framing is a convention
// of the source instrument and must not be changed without confirming the
// originating data format.
type SegmentLayout []int

// DefaultLayout returns the instrument's standard framing.
func DefaultLayout() SegmentLayout {
	return SegmentLayout{4097, 4097, 4097, 4096}
}

// Total returns the number of data rows one record occupies.
func (l SegmentLayout) Total() int {
	total := 0
	for _, n := range l {
		total += n
	}
	return total
}

// Validate checks that the layout describes at least one non-empty segment.
func (l SegmentLayout) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("segment layout is empty")
	}
	for i, n := range l {
		if n <= 0 {
			return fmt.Errorf("segment %d has non-positive length %d", i+1, n)
		}
	}
	return nil
}

// Record holds one input file's raw (channel, value) pairs in file order.
// The channel column is informational only; nothing downstream uses it.
type Record struct {
	Channels []int
	Values   []float64
}

// Function is one named lag-domain segment of a record. Values are never
// mutated after creation; every pipeline stage allocates its own output.
type Function struct {
	Index  int // 1-based sub-function index
	Values []float64
}

// ReadRecord parses the file at path and splits it into the layout's
// lag-domain functions. It fails with a *ParseError when the file is
// unreadable, contains non-numeric content, or holds fewer rows than the
// layout requires. Rows beyond the layout total are ignored.
func ReadRecord(path string, layout SegmentLayout) ([]Function, error) {
	if err := layout.Validate(); err != nil {
		return nil, NewParseError(path, 0, "invalid segment layout", err)
	}

	record, err := readTable(path)
	if err != nil {
		return nil, err
	}

	total := layout.Total()
	if len(record.Values) < total {
		return nil, NewParseError(path, 0,
			fmt.Sprintf("expected at least %d data rows, got %d", total, len(record.Values)), nil)
	}

	functions := make([]Function, 0, len(layout))
	offset := 0
	for i, length := range layout {
		functions = append(functions, Function{
			Index:  i + 1,
			Values: record.Values[offset : offset+length],
		})
		offset += length
	}

	return functions, nil
}

// readTable reads the whole two-column numeric table. Blank lines are
// skipped; any malformed row fails the whole file.
func readTable(path string) (*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewParseError(path, 0, "failed to open file", err)
	}
	defer file.Close()

	record := &Record{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, NewParseError(path, lineNo,
				fmt.Sprintf("expected 2 columns, got %d", len(fields)), nil)
		}

		// The instrument writes channel numbers as integers but some
		// exporters re-emit them in float notation, so parse as float
		// and truncate.
		channel, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, NewParseError(path, lineNo, "non-numeric channel column", err)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, NewParseError(path, lineNo, "non-numeric value column", err)
		}

		record.Channels = append(record.Channels, int(channel))
		record.Values = append(record.Values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, NewParseError(path, lineNo, "failed to read file", err)
	}

	return record, nil
}
