// Package renderer formats the data of a supply store as markdown, for the
// terminal.
package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/supply"
	"github.com/etnz/supply/date"
	md "github.com/nao1215/markdown"
)

// InventoryMarkdown renders the stock of every product, in alphabetical order.
func InventoryMarkdown(inv supply.Inventory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Inventory")
	if len(inv) == 0 {
		doc.PlainText("No product bought yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Product", "Current stock"},
		Rows:      [][]string{},
	}
	for _, product := range inv.Products() {
		table.Rows = append(table.Rows, []string{product, strconv.Itoa(inv[product])})
	}
	doc.Table(table)
	return doc.String()
}

// SalesMarkdown renders the sale records.
func SalesMarkdown(sales []supply.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sales")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"ID", "Product", "Amount", "Date", "Price", "Total earnings"},
		Rows:      [][]string{},
	}
	var total supply.Money
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(s.ID),
			s.Product,
			strconv.Itoa(s.Amount),
			s.Date.String(),
			s.Price.String(),
			s.TotalEarnings.String(),
		})
		total = total.Add(s.TotalEarnings)
	}
	table.Rows = append(table.Rows, []string{"", md.Bold("Total"), "", "", "", md.Bold(total.String())})
	doc.Table(table)
	return doc.String()
}

// PurchasesMarkdown renders the purchase records.
func PurchasesMarkdown(purchases []supply.Purchase) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Purchases")
	doc.Table(purchaseTable(purchases, true))
	return doc.String()
}

// ExpiredMarkdown renders the purchases expired on the given day.
func ExpiredMarkdown(on date.Date, purchases []supply.Purchase) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Expired on " + on.String())
	if len(purchases) == 0 {
		doc.PlainText("Nothing in stock has expired.")
		return doc.String()
	}
	doc.Table(purchaseTable(purchases, false))
	return doc.String()
}

func purchaseTable(purchases []supply.Purchase, withTotal bool) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Product", "Amount", "Date", "Price", "Expiration", "Total cost"},
		Rows:      [][]string{},
	}
	var total supply.Money
	for _, p := range purchases {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.ID),
			p.Product,
			strconv.Itoa(p.Amount),
			p.Date.String(),
			p.Price.String(),
			p.Expiration.String(),
			p.TotalCost.String(),
		})
		total = total.Add(p.TotalCost)
	}
	if withTotal {
		table.Rows = append(table.Rows, []string{"", md.Bold("Total"), "", "", "", "", md.Bold(total.String())})
	}
	return table
}

// DriftMarkdown renders the result of a consistency check.
func DriftMarkdown(d supply.Drift) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Consistency Check")
	if d.OK() {
		doc.PlainText("Running totals and inventory agree with the record logs.")
		return doc.String()
	}

	doc.H2("Running Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Total", "Recorded", "From records"},
		Rows: [][]string{
			{"Cost", d.RecordedCost.String(), d.ReplayedCost.String()},
			{"Revenue", d.RecordedRevenue.String(), d.ReplayedRevenue.String()},
		},
	})

	if len(d.Inventory) > 0 {
		doc.H2("Inventory")
		doc.Table(stockTable(d.Inventory, "From records"))
	}
	if len(d.Mirror) > 0 {
		doc.H2("Inventory Mirror")
		doc.Table(stockTable(d.Mirror, "Table"))
	}
	return doc.String()
}

func stockTable(drifts []supply.StockDrift, expected string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Product", "Recorded", expected},
		Rows:      [][]string{},
	}
	for _, s := range drifts {
		table.Rows = append(table.Rows, []string{s.Product, strconv.Itoa(s.Recorded), strconv.Itoa(s.Expected)})
	}
	return table
}
