package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/supply"
	"github.com/etnz/supply/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tables parses markdown and returns, for every table, its rows of cell
// texts, header first.
func tables(t *testing.T, markdown string) [][][]string {
	t.Helper()
	source := []byte(markdown)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var found [][][]string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			found = append(found, nil)
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, cellText(c, source))
			}
			found[len(found)-1] = append(found[len(found)-1], cells)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

func cellText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func TestInventoryMarkdown(t *testing.T) {
	got := tables(t, InventoryMarkdown(supply.Inventory{"Pears": 0, "Apples": 5}))
	if len(got) != 1 {
		t.Fatalf("got %d tables, want 1", len(got))
	}
	want := [][]string{{"Product", "Current stock"}, {"Apples", "5"}, {"Pears", "0"}}
	if strings.Join(flatten(got[0]), ",") != strings.Join(flatten(want), ",") {
		t.Errorf("table = %v, want %v", got[0], want)
	}

	empty := InventoryMarkdown(supply.Inventory{})
	if len(tables(t, empty)) != 0 || !strings.Contains(empty, "No product bought yet.") {
		t.Errorf("empty inventory = %q", empty)
	}
}

func TestSalesMarkdown(t *testing.T) {
	on := date.MustParse("2024-01-01")
	sales := []supply.Sale{
		supply.NewSale("Apples", 3, supply.M(2), on),
		supply.NewSale("Apples", 1, supply.M(3.25), on.Add(1)),
	}
	sales[0].ID, sales[1].ID = 1, 2

	got := tables(t, SalesMarkdown(sales))
	if len(got) != 1 || len(got[0]) != 4 {
		t.Fatalf("tables = %v", got)
	}
	if row := got[0][1]; row[0] != "1" || row[1] != "Apples" || row[5] != "$6.00" {
		t.Errorf("first row = %v", row)
	}
	if total := got[0][3]; total[1] != "Total" || total[5] != "$9.25" {
		t.Errorf("total row = %v", total)
	}
}

func TestExpiredMarkdown(t *testing.T) {
	on := date.MustParse("2024-01-10")
	p := supply.NewPurchase("Milk", 2, supply.M(1), on.Add(-5), on.Add(-1))
	p.ID = 4

	got := tables(t, ExpiredMarkdown(on, []supply.Purchase{p}))
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("tables = %v", got)
	}
	if row := got[0][1]; row[1] != "Milk" || row[5] != "2024-01-09" {
		t.Errorf("row = %v", row)
	}

	if none := ExpiredMarkdown(on, nil); len(tables(t, none)) != 0 {
		t.Errorf("no expired purchase rendered a table: %q", none)
	}
}

func TestDriftMarkdown(t *testing.T) {
	if got := DriftMarkdown(supply.Drift{}); len(tables(t, got)) != 0 {
		t.Errorf("no drift rendered a table: %q", got)
	}

	d := supply.Drift{
		RecordedCost: supply.M(100),
		ReplayedCost: supply.M(6.25),
		Inventory:    []supply.StockDrift{{Product: "Apples", Recorded: 9, Expected: 2}},
	}
	got := tables(t, DriftMarkdown(d))
	if len(got) != 2 {
		t.Fatalf("got %d tables, want 2", len(got))
	}
	if row := got[0][1]; row[1] != "$100.00" || row[2] != "$6.25" {
		t.Errorf("cost row = %v", row)
	}
	if row := got[1][1]; row[0] != "Apples" || row[1] != "9" || row[2] != "2" {
		t.Errorf("stock row = %v", row)
	}
}

func flatten(rows [][]string) []string {
	var all []string
	for _, r := range rows {
		all = append(all, r...)
	}
	return all
}
