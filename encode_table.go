package supply

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// delimiter separates the columns of every tabular file.
const delimiter = '|'

// row is a line of a tabular file, with its line number for error messages.
type row struct {
	line   int
	fields []string
}

// newTableReader returns a reader of "|" delimited rows. A leading UTF-8 byte
// order mark is dropped.
func newTableReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	return cr
}

func newTableWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	return cw
}

// readTable reads all rows of a tabular file, header included. Blank rows
// are skipped.
//
// A missing file is reported with an error wrapping fs.ErrNotExist.
func readTable(filename string) ([]row, error) { return scanTable(filename, false) }

// readTableLazy is readTable accepting bare quotes in unquoted fields, as
// left by hand edits.
func readTableLazy(filename string) ([]row, error) { return scanTable(filename, true) }

func scanTable(filename string, lazy bool) ([]row, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := newTableReader(bufio.NewReader(f))
	cr.LazyQuotes = lazy
	var rows []row
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, filename, err)
		}
		if blank(fields) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{line: line, fields: fields})
	}
	return rows, nil
}

// blank reports whether a row holds nothing but spaces.
func blank(fields []string) bool {
	return strings.TrimSpace(strings.Join(fields, "")) == ""
}

// writeTable writes a header and rows.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	cw := newTableWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// staged is a file fully written under a temporary name, waiting to replace
// its target.
type staged struct {
	tmp, path string
}

// stage writes a temporary sibling of path. Nothing is visible at path until
// commit.
func stage(path string, write func(io.Writer) error) (staged, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return staged{}, fmt.Errorf("cannot create a temporary file for %q: %w", path, err)
	}
	tmp := f.Name()

	w := bufio.NewWriter(f)
	err = write(w)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return staged{}, fmt.Errorf("cannot write %q: %w", path, err)
	}
	return staged{tmp: tmp, path: path}, nil
}

// commit renames every staged file onto its target, in order.
func commit(files ...staged) error {
	for i, s := range files {
		if err := os.Rename(s.tmp, s.path); err != nil {
			discard(files[i:]...)
			return fmt.Errorf("cannot replace %q: %w", s.path, err)
		}
	}
	return nil
}

// discard removes staged files that will not be committed.
func discard(files ...staged) {
	for _, s := range files {
		os.Remove(s.tmp)
	}
}

// fileWrite is the full content of a file to write.
type fileWrite struct {
	path  string
	write func(io.Writer) error
}

// writeFiles replaces several files so that either all of them or none of
// them are updated, short of a crash between two renames.
func writeFiles(writes ...fileWrite) error {
	files := make([]staged, 0, len(writes))
	for _, fw := range writes {
		s, err := stage(fw.path, fw.write)
		if err != nil {
			discard(files...)
			return err
		}
		files = append(files, s)
	}
	return commit(files...)
}
