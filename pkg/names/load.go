package names

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"colorclass/pkg/color"

	"golang.org/x/xerrors"
)

//go:embed colornames.csv
var bundled string

// ErrMalformedRow is wrapped by a LoadError for rows that don't have a name
// and a hex value.
var ErrMalformedRow = xerrors.New("row needs a name and a hex color")

// LoadError reports the line of the table that could not be loaded.
type LoadError struct {
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("color table line %d: %v", e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadDataset reads a delimited table of name and hex color columns. The
// first line is a header and is skipped; blank lines are ignored. Quoting is
// not supported. Extra columns are ignored. When several rows share a key
// the last one wins.
func LoadDataset(r io.Reader, delim string) (*Dataset, error) {
	if delim == "" {
		return nil, xerrors.New("empty delimiter")
	}
	d := EmptyDataset()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, delim)
		if len(fields) < 2 || fields[0] == "" {
			return nil, &LoadError{Line: line, Err: ErrMalformedRow}
		}
		c, err := color.ParseHex(fields[1])
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		d.add(fields[0], c)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("reading color table: %w", err)
	}
	return d, nil
}

// LoadDatasetFile loads a table from path. See LoadDataset.
func LoadDatasetFile(path, delim string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("opening color table: %w", err)
	}
	defer f.Close()

	d, err := LoadDataset(f, delim)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Bundled loads the color table compiled into the binary.
func Bundled() (*Dataset, error) {
	return LoadDataset(strings.NewReader(bundled), ",")
}
