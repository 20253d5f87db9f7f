package supply

import "go.uber.org/zap"

// replayed is the state the record logs lead to.
type replayed struct {
	inventory     Inventory
	cost, revenue Money
}

// Check compares the running totals and both inventory mirrors to a replay of
// the record logs. It changes nothing, except resetting an unreadable total
// to zero as Totals.Get does.
func (s *Store) Check() (Drift, error) {
	d, _, err := s.check()
	return d, err
}

func (s *Store) check() (d Drift, want replayed, err error) {
	purchases, err := s.purchases.ReadAll()
	if err != nil {
		return d, want, err
	}
	sales, err := s.sales.ReadAll()
	if err != nil {
		return d, want, err
	}
	if want.inventory, want.cost, want.revenue, err = Replay(purchases, sales); err != nil {
		return d, want, err
	}
	d.ReplayedCost, d.ReplayedRevenue = want.cost, want.revenue

	if d.RecordedCost, err = s.totals.Get(Cost); err != nil {
		return d, want, err
	}
	if d.RecordedRevenue, err = s.totals.Get(Revenue); err != nil {
		return d, want, err
	}

	table, err := s.inventory.load()
	if err != nil {
		return d, want, err
	}
	mirror, err := s.inventory.loadMirror()
	if err != nil {
		return d, want, err
	}
	d.Inventory = diffStock(table, want.inventory)
	d.Mirror = diffStock(mirror, table)
	return d, want, nil
}

// Recompute rebuilds the running totals and both inventory mirrors from the
// record logs, and returns the drift that was repaired.
func (s *Store) Recompute() (Drift, error) {
	var d Drift
	err := s.locked(func() error {
		var want replayed
		var err error
		if d, want, err = s.check(); err != nil || d.OK() {
			return err
		}
		if err := s.inventory.persist(want.inventory); err != nil {
			return err
		}
		if err := s.totals.Set(Cost, want.cost); err != nil {
			return err
		}
		return s.totals.Set(Revenue, want.revenue)
	})
	if err != nil {
		return d, err
	}
	if !d.OK() {
		s.logger.Warn("caches rebuilt from the record logs", zap.Error(d.Err()))
	}
	return d, nil
}
