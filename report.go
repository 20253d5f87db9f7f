package supply

import (
	"fmt"
	"os"

	"github.com/etnz/supply/date"
)

// Metric names a date range query.
type Metric int

const (
	MetricCost Metric = iota
	MetricRevenue
	MetricProfit
)

func (m Metric) String() string {
	switch m {
	case MetricCost:
		return "cost"
	case MetricRevenue:
		return "revenue"
	case MetricProfit:
		return "profit"
	default:
		return "unknown"
	}
}

// ReportLine formats the result of a query. A range built with an end date
// reads "between", even when the end is the start day:
//
//	Total cost for 2024-01-01: $6.25
//	Total profit between 2024-01-01 and 2024-01-05: $-0.25
func ReportLine(m Metric, r date.Range, amount Money) string {
	label := fmt.Sprintf(" for %s", r.From)
	if !r.IsDay() {
		label = fmt.Sprintf(" between %s and %s", r.From, r.To)
	}
	return fmt.Sprintf("Total %s%s: $%s", m, label, amount.Fixed())
}

// reportFile returns the report file of the metric.
func (c Config) reportFile(m Metric) (string, error) {
	switch m {
	case MetricCost:
		return c.Path(c.CostReportFile), nil
	case MetricRevenue:
		return c.Path(c.RevenueReportFile), nil
	case MetricProfit:
		return c.Path(c.ProfitReportFile), nil
	default:
		return "", fmt.Errorf("unknown metric %d", m)
	}
}

// appendReport appends line to filename. Report files are write only: the
// store never reads them back.
func appendReport(filename, line string) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open report %q: %w", filename, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("cannot write report %q: %w", filename, err)
	}
	return nil
}
