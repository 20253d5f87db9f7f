package supply

import "github.com/etnz/supply/date"

// Aggregations are pure functions of the records: they never read the
// running totals, and the order of the records does not matter.
//
// Profit sums the revenue of the sales and the cost of the purchases that fall
// in the same range, independently. Sold units are not matched back to the
// purchase they came from.

// CostOf returns the sum of the total cost of the purchases made in r.
func CostOf(purchases []Purchase, r date.Range) Money {
	var total Money
	for _, p := range purchases {
		if r.Contains(p.Date) {
			total = total.Add(p.TotalCost)
		}
	}
	return total
}

// RevenueOf returns the sum of the total earnings of the sales made in r.
func RevenueOf(sales []Sale, r date.Range) Money {
	var total Money
	for _, s := range sales {
		if r.Contains(s.Date) {
			total = total.Add(s.TotalEarnings)
		}
	}
	return total
}

// ProfitOf returns RevenueOf(sales, r) - CostOf(purchases, r).
func ProfitOf(purchases []Purchase, sales []Sale, r date.Range) Money {
	return RevenueOf(sales, r).Sub(CostOf(purchases, r))
}
