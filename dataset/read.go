package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Option configures reading. The zero configuration expects a bin-label
// comment on the second physical line of the source.
type Option func(*options)

type options struct {
	labels bool
}

// WithoutLabels disables bin-label extraction for sources whose second line
// is ordinary data. Bin indices then stand in as labels.
func WithoutLabels() Option {
	return func(o *options) { o.labels = false }
}

func gatherOptions(opts []Option) options {
	o := options{labels: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Read parses a whitespace-delimited numeric matrix and transposes it into a
// Dataset, one row per file column.
//
// Parsing rules:
//   - text after a '#' is discarded; lines left blank are skipped;
//   - every remaining line must carry the same number of float64 columns;
//   - unless WithoutLabels is given, the second physical line must be a
//     comment holding one float64 label per column.
//
// Errors: ErrNoData, ErrRaggedMatrix, ErrBadValue, ErrNoLabels,
// ErrLabelMismatch, or a wrapped scanner error.
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	o := gatherOptions(opts)

	var (
		fileRows [][]float64 // samples × bins, file orientation
		lineNos  []int       // physical line per parsed row, for error reports
		labels   []float64
		lineNo   int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20) // wide sample lines
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if o.labels && lineNo == 2 {
			parsed, err := parseLabelLine(line)
			if err != nil {
				return nil, err
			}
			labels = parsed

			continue // the label line is itself a comment
		}

		fields := numericFields(line)
		if fields == nil {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q on line %d", ErrBadValue, field, lineNo)
			}
			row[i] = v
		}
		fileRows = append(fileRows, row)
		lineNos = append(lineNos, lineNo)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	if len(fileRows) == 0 {
		return nil, ErrNoData
	}
	if o.labels && labels == nil {
		return nil, ErrNoLabels
	}

	// Shape check before transposing, so the report can name the bad line.
	cols := len(fileRows[0])
	for i, row := range fileRows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d",
				ErrRaggedMatrix, lineNos[i], len(row), cols)
		}
	}

	// Transpose: file columns become dataset rows.
	binRows := make([][]float64, cols)
	for i := range binRows {
		row := make([]float64, len(fileRows))
		for j := range fileRows {
			row[j] = fileRows[j][i]
		}
		binRows[i] = row
	}

	return New(binRows, labels)
}

// Load reads path in one shot: open, consume, close.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	ds, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// parseLabelLine extracts bin labels from a comment line of the form
// "# 0.10 0.35 0.60". The comment marker and surrounding padding are
// stripped from both ends before splitting.
func parseLabelLine(line string) ([]float64, error) {
	if !strings.HasPrefix(strings.TrimSpace(line), "#") {
		return nil, ErrNoLabels
	}
	content := strings.Trim(line, "# \t\r")
	fields := strings.Fields(content)
	labels := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bin label %q", ErrBadValue, field)
		}
		labels = append(labels, v)
	}

	return labels, nil
}

// numericFields strips the comment tail and splits the remainder on
// whitespace. Returns nil for lines with no numeric payload.
func numericFields(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	return strings.Fields(line)
}
