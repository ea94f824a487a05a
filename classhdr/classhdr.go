package classhdr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrNoHeader indicates that no leading comment line matches the
// "digits followed by colon" column pattern.
var ErrNoHeader = errors.New("classhdr: no column header found")

// columnPattern splits a header line at each "N:" column marker.
var columnPattern = regexp.MustCompile(`[0-9]+:`)

// ListVariables scans the leading comment block of a CLASS output file and
// returns the column variable names in file order.
//
// Only the last comment line of the block is parsed; CLASS places the column
// catalogue there, after any free-form description lines. Scanning stops at
// the first non-comment line, so later comments never shadow the catalogue.
//
// Errors: ErrNoHeader when the block is absent or carries no "N:" markers,
// or a wrapped reader error.
func ListVariables(r io.Reader) ([]string, error) {
	var header string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20) // headers can name hundreds of columns
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "#") {
			break
		}
		header = line
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("classhdr: read: %w", err)
	}

	parts := columnPattern.Split(header, -1)
	if len(parts) < 2 {
		return nil, ErrNoHeader
	}

	// parts[0] is the comment marker and padding ahead of the first column.
	names := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		names = append(names, strings.TrimSpace(part))
	}

	return names, nil
}

// ListFile opens path and lists its column variables in one shot.
func ListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("classhdr: open: %w", err)
	}
	defer f.Close()

	names, err := ListVariables(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return names, nil
}

// Fprint writes the catalogue in its fixed report layout: a header tuple,
// one (index, name) pair per line, and the closing reminder.
func Fprint(w io.Writer, names []string) error {
	if _, err := fmt.Fprintf(w, "('Column', 'Variable')\n\n"); err != nil {
		return err
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "(%d, '%s')\n", i, name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nRecall that (.) = 8piG/3\n")

	return err
}
