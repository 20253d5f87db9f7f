package supply

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestInventory_Decrease(t *testing.T) {
	testCases := []struct {
		name    string
		product string
		amount  int
		wantErr error
		want    Inventory
	}{
		{"partial", "Apples", 3, nil, Inventory{"Apples": 2}},
		{"all", "Apples", 5, nil, Inventory{"Apples": 0}},
		{"too many", "Apples", 6, ErrInsufficientStock, Inventory{"Apples": 5}},
		{"unknown", "Pears", 1, ErrProductNotFound, Inventory{"Apples": 5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Inventory{"Apples": 5}
			err := inv.Decrease(tc.product, tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Decrease() error = %v, want %v", err, tc.wantErr)
			}
			if !reflect.DeepEqual(inv, tc.want) {
				t.Errorf("Decrease() inventory = %v, want %v", inv, tc.want)
			}
		})
	}
}

func TestInventory_InsufficientStockMessage(t *testing.T) {
	inv := Inventory{"Apples": 2}
	err := inv.Decrease("Apples", 10)
	want := `not enough stock for "Apples": available stock 2, requested 10`
	if err == nil || err.Error() != want {
		t.Errorf("Decrease() error = %v, want %q", err, want)
	}
}

func TestInventory_Increase(t *testing.T) {
	inv := make(Inventory)
	inv.Increase("Apples", 5)
	inv.Increase("Apples", 2)
	inv.Increase("Pears", 1)
	want := Inventory{"Apples": 7, "Pears": 1}
	if !reflect.DeepEqual(inv, want) {
		t.Errorf("got %v, want %v", inv, want)
	}
	if got := inv.Products(); !reflect.DeepEqual(got, []string{"Apples", "Pears"}) {
		t.Errorf("Products() = %v", got)
	}
}

func TestInventoryFiles_PersistAndLoad(t *testing.T) {
	dir := t.TempDir()
	f := inventoryFiles{table: filepath.Join(dir, "inventory.csv"), mirror: filepath.Join(dir, "inventory.json")}

	empty, err := f.load()
	if err != nil || len(empty) != 0 {
		t.Fatalf("load() of a missing file = %v, %v", empty, err)
	}

	// A product named like the header column must survive.
	inv := Inventory{"Pears": 0, "Apples": 5, "Product": 1}
	if err := f.persist(inv); err != nil {
		t.Fatalf("persist() error = %v", err)
	}

	table, err := os.ReadFile(f.table)
	if err != nil {
		t.Fatal(err)
	}
	wantTable := "Product|Current stock\nApples|5\nPears|0\nProduct|1\n"
	if string(table) != wantTable {
		t.Errorf("table = %q, want %q", table, wantTable)
	}

	got, err := f.load()
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if !got.Equal(inv) {
		t.Errorf("load() = %v, want %v", got, inv)
	}
	mirror, err := f.loadMirror()
	if err != nil {
		t.Fatalf("loadMirror() error = %v", err)
	}
	if !mirror.Equal(got) {
		t.Errorf("mirror = %v, table = %v", mirror, got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("persist() left %d files, want 2", len(entries))
	}
}

func TestInventoryFiles_LoadMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"negative", "Product|Current stock\nApples|-1\n"},
		{"not a number", "Product|Current stock\nApples|many\n"},
		{"missing column", "Product|Current stock\nApples\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inventory.csv")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := (inventoryFiles{table: path}).load(); !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("load() error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestInventoryFiles_LoadNormalizesNames(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    Inventory
	}{
		{"trailing space", "Product|Current stock\nApples |3\n", Inventory{"Apples": 3}},
		{"combining accent", "Product|Current stock\nCafe\u0301|1\n", Inventory{"Caf\u00e9": 1}},
		{"same product twice", "Product|Current stock\n Apples|1\nApples|2\n", Inventory{"Apples": 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			f := inventoryFiles{table: filepath.Join(dir, "inventory.csv"), mirror: filepath.Join(dir, "inventory.json")}
			if err := os.WriteFile(f.table, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := f.load()
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("load() = %v, want %v", got, tc.want)
			}
		})
	}

	dir := t.TempDir()
	f := inventoryFiles{mirror: filepath.Join(dir, "inventory.json")}
	if err := os.WriteFile(f.mirror, []byte(`{"Apples ":3}`), 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := f.loadMirror(); err != nil || !reflect.DeepEqual(got, Inventory{"Apples": 3}) {
		t.Errorf("loadMirror() = %v, %v", got, err)
	}
}
