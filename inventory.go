package supply

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

var inventoryHeader = []string{"Product", "Current stock"}

// Inventory maps a product name to its current stock.
//
// It is a projection of the record logs: purchases increase it and sales
// decrease it. Stock is never negative.
type Inventory map[string]int

// Increase adds amount to the stock of product, creating the entry if absent.
func (inv Inventory) Increase(product string, amount int) {
	inv[product] += amount
}

// Decrease subtracts amount from the stock of product.
//
// It fails with ErrProductNotFound if the product has no entry and with
// ErrInsufficientStock if amount exceeds the stock. On failure inv is left
// unchanged.
func (inv Inventory) Decrease(product string, amount int) error {
	stock, exists := inv[product]
	if !exists {
		return fmt.Errorf("%w: %q", ErrProductNotFound, product)
	}
	if amount > stock {
		return fmt.Errorf("%w for %q: available stock %d, requested %d", ErrInsufficientStock, product, stock, amount)
	}
	inv[product] = stock - amount
	return nil
}

// Products returns the product names in alphabetical order.
func (inv Inventory) Products() []string {
	return slices.Sorted(maps.Keys(inv))
}

// Clone returns a copy of inv.
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return Inventory{}
	}
	return maps.Clone(inv)
}

// Equal reports whether inv and other have the same entries.
func (inv Inventory) Equal(other Inventory) bool {
	return maps.Equal(inv, other)
}

// inventoryFiles persists an Inventory as a table and mirrors it as a JSON object.
type inventoryFiles struct {
	table  string // authoritative
	mirror string
}

// load reads the tabular inventory. A missing file is an empty inventory.
func (f inventoryFiles) load() (Inventory, error) {
	inv := make(Inventory)
	rows, err := readTable(f.table)
	if errors.Is(err, fs.ErrNotExist) {
		return inv, nil
	}
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if i == 0 && len(r.fields) > 0 && strings.TrimSpace(r.fields[0]) == inventoryHeader[0] {
			continue
		}
		if len(r.fields) != len(inventoryHeader) {
			return nil, fmt.Errorf("%w: %s:%d: want %d columns, got %d", ErrMalformedRecord, f.table, r.line, len(inventoryHeader), len(r.fields))
		}
		stock, err := strconv.Atoi(strings.TrimSpace(r.fields[1]))
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("%w: %s:%d: invalid stock %q", ErrMalformedRecord, f.table, r.line, r.fields[1])
		}
		inv[ProductName(r.fields[0])] += stock
	}
	return inv, nil
}

// loadMirror reads the structured mirror. A missing file is an empty inventory.
func (f inventoryFiles) loadMirror() (Inventory, error) {
	data, err := os.ReadFile(f.mirror)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Inventory), nil
	}
	if err != nil {
		return nil, err
	}
	var raw Inventory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, f.mirror, err)
	}
	inv := make(Inventory, len(raw))
	for name, stock := range raw {
		inv[ProductName(name)] += stock
	}
	return inv, nil
}

// persist rewrites both the table and the mirror with the full inventory.
//
// Both files are staged then renamed one after the other, so that a failure
// to write either leaves both untouched.
func (f inventoryFiles) persist(inv Inventory) error {
	products := inv.Products()
	return writeFiles(
		fileWrite{f.table, func(w io.Writer) error {
			rows := make([][]string, 0, len(products))
			for _, p := range products {
				rows = append(rows, []string{p, strconv.Itoa(inv[p])})
			}
			return writeTable(w, inventoryHeader, rows)
		}},
		fileWrite{f.mirror, func(w io.Writer) error {
			if inv == nil {
				inv = Inventory{}
			}
			return json.NewEncoder(w).Encode(inv)
		}},
	)
}
