package supply

import (
	"testing"

	"github.com/etnz/supply/date"
)

func aggregateFixture() ([]Purchase, []Sale) {
	d1 := date.MustParse("2024-01-01")
	d2 := date.MustParse("2024-01-02")
	d3 := date.MustParse("2024-01-03")
	purchases := []Purchase{
		NewPurchase("Apples", 5, USD("1.25"), d1, d1.Add(10)),
		NewPurchase("Bread", 1, USD("3"), d3, d3.Add(2)),
	}
	sales := []Sale{
		NewSale("Apples", 3, USD("2.00"), d1),
		NewSale("Apples", 1, USD("3.25"), d2),
	}
	return purchases, sales
}

func TestAggregate(t *testing.T) {
	purchases, sales := aggregateFixture()
	d := date.MustParse
	testCases := []struct {
		name                  string
		r                     date.Range
		cost, revenue, profit string
	}{
		{"day one", date.On(d("2024-01-01")), "6.25", "6.00", "-0.25"},
		{"day two", date.On(d("2024-01-02")), "0.00", "3.25", "3.25"},
		{"first two days", date.Between(d("2024-01-01"), d("2024-01-02")), "6.25", "9.25", "3.00"},
		{"all", date.Between(d("2023-12-31"), d("2024-01-03")), "9.25", "9.25", "0.00"},
		{"nothing", date.On(d("2023-06-01")), "0.00", "0.00", "0.00"},
		{"reversed", date.Between(d("2024-01-03"), d("2024-01-01")), "0.00", "0.00", "0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CostOf(purchases, tc.r).Fixed(); got != tc.cost {
				t.Errorf("CostOf() = %s, want %s", got, tc.cost)
			}
			if got := RevenueOf(sales, tc.r).Fixed(); got != tc.revenue {
				t.Errorf("RevenueOf() = %s, want %s", got, tc.revenue)
			}
			if got := ProfitOf(purchases, sales, tc.r).Fixed(); got != tc.profit {
				t.Errorf("ProfitOf() = %s, want %s", got, tc.profit)
			}
		})
	}
}

func TestAggregate_WideningNeverDecreases(t *testing.T) {
	purchases, sales := aggregateFixture()
	from := date.MustParse("2024-01-01")
	var lastCost, lastRevenue Money
	for days := range 5 {
		r := date.Between(from, from.Add(days))
		cost, revenue := CostOf(purchases, r), RevenueOf(sales, r)
		if cost.LessThan(lastCost) || revenue.LessThan(lastRevenue) {
			t.Errorf("range %s: cost %s, revenue %s after %s, %s", r, cost.Plain(), revenue.Plain(), lastCost.Plain(), lastRevenue.Plain())
		}
		lastCost, lastRevenue = cost, revenue
	}
}

func TestReportLine(t *testing.T) {
	d := date.MustParse
	testCases := []struct {
		m      Metric
		r      date.Range
		amount Money
		want   string
	}{
		{MetricCost, date.On(d("2024-01-01")), USD("6.25"), "Total cost for 2024-01-01: $6.25"},
		{MetricRevenue, date.Between(d("2024-01-01"), d("2024-01-05")), USD("9.25"), "Total revenue between 2024-01-01 and 2024-01-05: $9.25"},
		{MetricProfit, date.On(d("2024-01-01")), USD("-0.25"), "Total profit for 2024-01-01: $-0.25"},
		{MetricProfit, date.On(d("2024-02-01")), Money{}, "Total profit for 2024-02-01: $0.00"},
		{MetricCost, date.Between(d("2024-02-01"), d("2024-02-01")), USD("1"), "Total cost between 2024-02-01 and 2024-02-01: $1.00"},
	}
	for _, tc := range testCases {
		if got := ReportLine(tc.m, tc.r, tc.amount); got != tc.want {
			t.Errorf("ReportLine(%v, %v) = %q, want %q", tc.m, tc.r, got, tc.want)
		}
	}
}
