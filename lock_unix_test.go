//go:build unix

package supply

import (
	"errors"
	"testing"
)

func TestStore_MutationsFailWhileLocked(t *testing.T) {
	s, _ := newTestStore(t, "2024-01-01")

	lock, err := acquireLock(s.Config().Path(s.Config().LockFile))
	if err != nil {
		t.Fatalf("acquireLock() error = %v", err)
	}
	if _, err := s.Buy("Apples", 1, USD("1"), 1); !errors.Is(err, ErrLocked) {
		t.Errorf("Buy() error = %v, want ErrLocked", err)
	}
	if err := lock.release(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Buy("Apples", 1, USD("1"), 1); err != nil {
		t.Errorf("Buy() after release error = %v", err)
	}
}
