package supply

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// codec converts records of type T to and from the rows of a tabular log.
type codec[T any] interface {
	header() []string
	encode(T) []string
	decode([]string) (T, error)
	withID(T, int) T
}

// Log is an append-only file of records of type T.
//
// Records are never updated nor deleted. IDs are allocated from the last row
// of the file, assuming rows were written in increasing ID order: a manually
// edited log can make allocation fail or produce a wrong ID.
type Log[T any] struct {
	path  string
	codec codec[T]
}

// NewPurchaseLog returns the purchase log stored in path.
func NewPurchaseLog(path string) *Log[Purchase] {
	return &Log[Purchase]{path: path, codec: purchaseCodec{}}
}

// NewSaleLog returns the sale log stored in path.
func NewSaleLog(path string) *Log[Sale] {
	return &Log[Sale]{path: path, codec: saleCodec{}}
}

// isHeader reports whether fields are the header row of the log.
func (l *Log[T]) isHeader(fields []string) bool {
	return len(fields) > 0 && strings.TrimSpace(fields[0]) == l.codec.header()[0]
}

// NextID returns the ID the next appended record gets: the first column of
// the last non blank row plus one, or 1 if the log holds no record. Only
// that row has to be well formed.
func (l *Log[T]) NextID() (int, error) {
	rows, err := readTableLazy(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		if l.isHeader(r.fields) {
			continue
		}
		last, err := strconv.Atoi(strings.TrimSpace(r.fields[0]))
		if err != nil {
			return 0, fmt.Errorf("%w: %s:%d: last id %q: %w", ErrMalformedRecord, l.path, r.line, r.fields[0], err)
		}
		return last + 1, nil
	}
	return 1, nil
}

// Append allocates the ID of rec, writes it as the last row of the log, and
// returns it with its ID.
//
// The file and its header are created if needed.
func (l *Log[T]) Append(rec T) (T, error) {
	id, err := l.NextID()
	if err != nil {
		return rec, fmt.Errorf("cannot allocate id in %q: %w", l.path, err)
	}
	rec = l.codec.withID(rec, id)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return rec, fmt.Errorf("cannot open log %q: %w", l.path, err)
	}
	defer f.Close()

	cw := newTableWriter(f)
	switch end, err := endOf(f); {
	case err != nil:
		return rec, fmt.Errorf("cannot read log %q: %w", l.path, err)
	case end == noContent:
		cw.Write(l.codec.header())
	case end == unterminated:
		// a hand edited file may lack its final newline.
		if _, err := f.WriteString("\n"); err != nil {
			return rec, fmt.Errorf("cannot write to log %q: %w", l.path, err)
		}
	}
	cw.Write(l.codec.encode(rec))
	cw.Flush()
	if err := cw.Error(); err != nil {
		return rec, fmt.Errorf("cannot write to log %q: %w", l.path, err)
	}
	return rec, nil
}

// ReadAll returns every record of the log in file order. A missing log has
// no record.
//
// Rows that cannot be parsed are reported with ErrMalformedRecord: guessing
// the fields of a financial record is not an option.
func (l *Log[T]) ReadAll() ([]T, error) {
	rows, err := readTable(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(rows))
	for _, r := range rows {
		if l.isHeader(r.fields) {
			continue
		}
		rec, err := l.codec.decode(r.fields)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %w", ErrMalformedRecord, l.path, r.line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

type fileEnd int

const (
	noContent fileEnd = iota
	terminated
	unterminated
)

// endOf tells how the content of f ends.
func endOf(f *os.File) (fileEnd, error) {
	info, err := f.Stat()
	if err != nil {
		return noContent, err
	}
	if info.Size() == 0 {
		return noContent, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return noContent, err
	}
	if last[0] != '\n' {
		return unterminated, nil
	}
	return terminated, nil
}
