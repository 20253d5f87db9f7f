package supply

import "path/filepath"

// Config locates every file of a supply store.
//
// File names are relative to Dir.
type Config struct {
	Dir string

	PurchasesFile       string // purchase record log
	SalesFile           string // sale record log
	InventoryFile       string // tabular inventory
	InventoryMirrorFile string // structured inventory mirror
	CostFile            string // running total cost
	RevenueFile         string // running total revenue

	CostReportFile    string
	RevenueReportFile string
	ProfitReportFile  string

	SalesSnapshotFile     string
	PurchasesSnapshotFile string
	PurchasesExportFile   string

	LockFile string
}

// DefaultConfig returns the configuration of a store in dir with the usual
// file names.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:                   dir,
		PurchasesFile:         "bought.csv",
		SalesFile:             "sold.csv",
		InventoryFile:         "inventory.csv",
		InventoryMirrorFile:   "inventory.json",
		CostFile:              "total_cost.txt",
		RevenueFile:           "total_revenue.txt",
		CostReportFile:        "cost.txt",
		RevenueReportFile:     "revenue.txt",
		ProfitReportFile:      "profit.txt",
		SalesSnapshotFile:     "sales.json",
		PurchasesSnapshotFile: "purchases.json",
		PurchasesExportFile:   "purchases.csv",
		LockFile:              ".lock",
	}
}

// Path returns the full path of a file of the store.
func (c Config) Path(name string) string { return filepath.Join(c.Dir, name) }
