package supply

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// purchasesExportHeader is the header of the purchase export table, named for
// people rather than for the log.
var purchasesExportHeader = []string{"ID", "Amount", "Product", "Date of purchase", "Price", "Expiration date", "Total Cost"}

// ExportSales writes all sale records to the sales snapshot, a JSON array.
//
// Snapshots are exports: the store never reads them back as data.
func (s *Store) ExportSales() ([]Sale, error) {
	sales, err := s.sales.ReadAll()
	if err != nil {
		return nil, err
	}
	filename := s.cfg.Path(s.cfg.SalesSnapshotFile)
	if err := writeFiles(fileWrite{filename, jsonArray(sales)}); err != nil {
		return nil, err
	}
	ids := make([]int, len(sales))
	for i, sale := range sales {
		ids[i] = sale.ID
	}
	return sales, VerifySnapshot(filename, ids)
}

// ExportPurchases writes all purchase records to the purchases snapshot (a
// JSON array) and to the purchase export table.
func (s *Store) ExportPurchases() ([]Purchase, error) {
	purchases, err := s.purchases.ReadAll()
	if err != nil {
		return nil, err
	}
	filename := s.cfg.Path(s.cfg.PurchasesSnapshotFile)
	err = writeFiles(
		fileWrite{filename, jsonArray(purchases)},
		fileWrite{s.cfg.Path(s.cfg.PurchasesExportFile), func(w io.Writer) error {
			rows := make([][]string, len(purchases))
			for i, p := range purchases {
				rows[i] = purchaseCodec{}.encode(p)
			}
			return writeTable(w, purchasesExportHeader, rows)
		}},
	)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
	}
	return purchases, VerifySnapshot(filename, ids)
}

// jsonArray writes records as an indented JSON array, never null.
func jsonArray[T any](records []T) func(io.Writer) error {
	return func(w io.Writer) error {
		if records == nil {
			records = []T{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(records)
	}
}

// VerifySnapshot checks that the JSON array in filename holds records with
// exactly the given ids, in order.
func VerifySnapshot(filename string, ids []int) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: snapshot %q: %w", ErrMalformedRecord, filename, err)
	}
	got, err := jsonpath.Get("$[*].id", v)
	if err != nil {
		return fmt.Errorf("%w: snapshot %q: %w", ErrMalformedRecord, filename, err)
	}
	values, _ := got.([]any)
	if len(values) != len(ids) {
		return fmt.Errorf("%w: snapshot %q holds %d records, want %d", ErrMalformedRecord, filename, len(values), len(ids))
	}
	for i, value := range values {
		id, ok := value.(float64)
		if !ok || id != float64(ids[i]) {
			return fmt.Errorf("%w: snapshot %q record %d has id %v, want %s", ErrMalformedRecord, filename, i, value, strconv.Itoa(ids[i]))
		}
	}
	return nil
}
