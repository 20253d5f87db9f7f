package supply

import (
	"errors"
	"fmt"
)

// Replay rebuilds the inventory and the running totals from the record logs.
//
// The logs only hold days, not the order of purchases and sales within a
// day, so the stock of a product is the net of all its purchases and sales.
// A product sold more than it was bought is reported with ErrMalformedRecord.
func Replay(purchases []Purchase, sales []Sale) (inv Inventory, cost, revenue Money, err error) {
	inv = make(Inventory)
	for _, p := range purchases {
		inv.Increase(p.Product, p.Amount)
		cost = cost.Add(p.TotalCost)
	}
	for _, s := range sales {
		inv[s.Product] -= s.Amount
		revenue = revenue.Add(s.TotalEarnings)
	}
	for _, product := range inv.Products() {
		if inv[product] < 0 {
			err = errors.Join(err, fmt.Errorf("%w: %q sold %d more than bought", ErrMalformedRecord, product, -inv[product]))
		}
	}
	return inv, cost, revenue, err
}

// StockDrift is a product whose stock differs between two sources.
type StockDrift struct {
	Product  string
	Recorded int // in the persisted file
	Expected int // from the other source
}

// Drift describes how the caches of a store differ from the record logs.
type Drift struct {
	RecordedCost, ReplayedCost       Money
	RecordedRevenue, ReplayedRevenue Money

	// Inventory lists the entries of inventory.csv that differ from the replay.
	Inventory []StockDrift
	// Mirror lists the entries of inventory.json that differ from inventory.csv.
	Mirror []StockDrift
}

// OK reports whether there is no drift at all.
func (d Drift) OK() bool {
	return d.RecordedCost.Equal(d.ReplayedCost) &&
		d.RecordedRevenue.Equal(d.ReplayedRevenue) &&
		len(d.Inventory) == 0 &&
		len(d.Mirror) == 0
}

// Err returns one error per drift, joined, or nil.
func (d Drift) Err() error {
	var err error
	if !d.RecordedCost.Equal(d.ReplayedCost) {
		err = errors.Join(err, fmt.Errorf("total cost is %s, records sum to %s", d.RecordedCost.Plain(), d.ReplayedCost.Plain()))
	}
	if !d.RecordedRevenue.Equal(d.ReplayedRevenue) {
		err = errors.Join(err, fmt.Errorf("total revenue is %s, records sum to %s", d.RecordedRevenue.Plain(), d.ReplayedRevenue.Plain()))
	}
	for _, s := range d.Inventory {
		err = errors.Join(err, fmt.Errorf("inventory stock of %q is %d, records give %d", s.Product, s.Recorded, s.Expected))
	}
	for _, s := range d.Mirror {
		err = errors.Join(err, fmt.Errorf("inventory mirror stock of %q is %d, table has %d", s.Product, s.Recorded, s.Expected))
	}
	return err
}

// diffStock lists the products whose stock in recorded differs from expected.
// A product missing on one side counts as a stock of 0 there.
func diffStock(recorded, expected Inventory) []StockDrift {
	all := recorded.Clone()
	for p := range expected {
		all[p] = 0
	}
	var drifts []StockDrift
	for _, p := range all.Products() {
		r, inRecorded := recorded[p]
		e, inExpected := expected[p]
		if r != e || inRecorded != inExpected {
			drifts = append(drifts, StockDrift{Product: p, Recorded: r, Expected: e})
		}
	}
	return drifts
}
