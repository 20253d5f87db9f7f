package supply

import (
	"os"
	"testing"

	"github.com/etnz/supply/date"
)

// testClock is a clock the tests can move.
type testClock struct{ day date.Date }

func (c *testClock) Today() date.Date { return c.day }

// newTestStore opens an empty store in a temporary directory, on the given day.
func newTestStore(t *testing.T, today string) (*Store, *testClock) {
	t.Helper()
	clock := &testClock{day: date.MustParse(today)}
	s, err := Open(DefaultConfig(t.TempDir()), clock, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, clock
}

// readFile returns the content of a file of the store.
func readFile(t *testing.T, s *Store, name string) string {
	t.Helper()
	data, err := os.ReadFile(s.Config().Path(name))
	if err != nil {
		t.Fatalf("cannot read %s: %v", name, err)
	}
	return string(data)
}

// writeFile replaces the content of a file of the store.
func writeFile(t *testing.T, s *Store, name, content string) {
	t.Helper()
	if err := os.WriteFile(s.Config().Path(name), []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", name, err)
	}
}

// USD is a helper for test to create money from a decimal literal.
func USD(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}
