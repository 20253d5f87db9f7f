package supply

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Kind selects one of the running totals.
type Kind int

const (
	// Cost is the total paid for all purchases.
	Cost Kind = iota
	// Revenue is the total earned by all sales.
	Revenue
)

func (k Kind) String() string {
	switch k {
	case Cost:
		return "cost"
	case Revenue:
		return "revenue"
	default:
		return "unknown"
	}
}

// Totals holds the running totals, one plain text number per file.
//
// Totals are a cache: they are updated by addition on every transaction and
// are not guaranteed to agree with the record logs if those are edited by
// hand. See Store.Check.
type Totals struct {
	files  map[Kind]string
	logger *zap.Logger
}

// NewTotals returns the running totals stored in costFile and revenueFile.
func NewTotals(costFile, revenueFile string, logger *zap.Logger) *Totals {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Totals{
		files:  map[Kind]string{Cost: costFile, Revenue: revenueFile},
		logger: logger,
	}
}

func (t *Totals) file(k Kind) (string, error) {
	f, ok := t.files[k]
	if !ok {
		return "", fmt.Errorf("unknown total kind %d", k)
	}
	return f, nil
}

// Get returns the running total of kind k.
//
// A missing file or a content that is not a number is recovered as zero: the
// file is reset to 0 and the recovery is logged. Other I/O errors are
// returned.
func (t *Totals) Get(k Kind) (Money, error) {
	filename, err := t.file(k)
	if err != nil {
		return Money{}, err
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		t.logger.Info("running total file not found, creating it", zap.Stringer("kind", k), zap.String("file", filename))
		return Money{}, t.Set(k, Money{})
	}
	if err != nil {
		return Money{}, fmt.Errorf("cannot read total %s from %q: %w", k, filename, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	value, err := ParseMoney(line)
	if err != nil {
		t.logger.Warn("invalid running total, resetting it to 0",
			zap.Stringer("kind", k),
			zap.String("file", filename),
			zap.String("content", line),
			zap.Error(err),
		)
		return Money{}, t.Set(k, Money{})
	}
	return value, nil
}

// Set overwrites the running total of kind k.
func (t *Totals) Set(k Kind, value Money) error {
	filename, err := t.file(k)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(value.Plain()), 0644); err != nil {
		return fmt.Errorf("cannot write total %s to %q: %w", k, filename, err)
	}
	return nil
}

// Add adds delta to the running total of kind k and returns the new total.
//
// delta is the rounded amount of a transaction, never a raw product of a
// quantity and a price.
func (t *Totals) Add(k Kind, delta Money) (Money, error) {
	current, err := t.Get(k)
	if err != nil {
		return Money{}, err
	}
	updated := current.Add(delta)
	if err := t.Set(k, updated); err != nil {
		return Money{}, err
	}
	t.logger.Debug("running total updated", zap.Stringer("kind", k), zap.String("delta", delta.Plain()), zap.String("total", updated.Plain()))
	return updated, nil
}

// Profit returns the total revenue minus the total cost. It is negative when
// more was spent than earned.
func (t *Totals) Profit() (Money, error) {
	revenue, err := t.Get(Revenue)
	if err != nil {
		return Money{}, err
	}
	cost, err := t.Get(Cost)
	if err != nil {
		return Money{}, err
	}
	return revenue.Sub(cost), nil
}
