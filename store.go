package supply

import (
	"fmt"
	"os"

	"github.com/etnz/supply/date"
	"go.uber.org/zap"
)

// Store is a supply ledger kept in a directory.
//
// A Store holds no file open between operations. It is meant for one process
// at a time: mutations take an advisory lock on the directory, but nothing
// coordinates a process that ignores it.
type Store struct {
	cfg       Config
	clock     date.Clock
	logger    *zap.Logger
	purchases *Log[Purchase]
	sales     *Log[Sale]
	inventory inventoryFiles
	totals    *Totals
}

// Open returns the store configured by cfg, creating its directory if
// needed. A nil clock is the system clock, a nil logger discards everything.
func Open(cfg Config, clock date.Clock, logger *zap.Logger) (*Store, error) {
	if clock == nil {
		clock = date.System
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", cfg.Dir, err)
	}
	return &Store{
		cfg:       cfg,
		clock:     clock,
		logger:    logger,
		purchases: NewPurchaseLog(cfg.Path(cfg.PurchasesFile)),
		sales:     NewSaleLog(cfg.Path(cfg.SalesFile)),
		inventory: inventoryFiles{
			table:  cfg.Path(cfg.InventoryFile),
			mirror: cfg.Path(cfg.InventoryMirrorFile),
		},
		totals: NewTotals(cfg.Path(cfg.CostFile), cfg.Path(cfg.RevenueFile), logger.Named("totals")),
	}, nil
}

// Config returns the configuration of the store.
func (s *Store) Config() Config { return s.cfg }

// Today returns the current date of the store's clock.
func (s *Store) Today() date.Date { return s.clock.Today() }

// locked runs fn while holding the directory lock.
func (s *Store) locked(fn func() error) error {
	lock, err := acquireLock(s.cfg.Path(s.cfg.LockFile))
	if err != nil {
		return err
	}
	defer lock.release()
	return fn()
}

// Buy records the purchase of amount units of product at unitPrice each,
// expiring expirationDays from today.
//
// The purchase is appended to its log, then the inventory and the total cost
// are updated.
func (s *Store) Buy(product string, amount int, unitPrice Money, expirationDays int) (Purchase, error) {
	today := s.clock.Today()
	p := NewPurchase(product, amount, unitPrice, today, today.Add(expirationDays))
	if err := p.Validate(); err != nil {
		return Purchase{}, err
	}

	err := s.locked(func() error {
		inv, err := s.inventory.load()
		if err != nil {
			return err
		}
		if p, err = s.purchases.Append(p); err != nil {
			return err
		}
		inv.Increase(p.Product, p.Amount)
		if err := s.inventory.persist(inv); err != nil {
			return err
		}
		_, err = s.totals.Add(Cost, p.TotalCost)
		return err
	})
	if err != nil {
		return Purchase{}, fmt.Errorf("cannot buy %q: %w", p.Product, err)
	}
	s.logger.Debug("purchase recorded",
		zap.Int("id", p.ID),
		zap.String("product", p.Product),
		zap.Int("amount", p.Amount),
		zap.String("total_cost", p.TotalCost.Plain()),
	)
	return p, nil
}

// Sell records the sale of amount units of product at unitPrice each.
//
// The stock is checked before anything is written: a sale of an unknown
// product fails with ErrProductNotFound, a sale above the stock with
// ErrInsufficientStock, and neither leaves a record behind.
func (s *Store) Sell(product string, amount int, unitPrice Money) (Sale, error) {
	sale := NewSale(product, amount, unitPrice, s.clock.Today())
	if err := sale.Validate(); err != nil {
		return Sale{}, err
	}

	err := s.locked(func() error {
		inv, err := s.inventory.load()
		if err != nil {
			return err
		}
		if err := inv.Decrease(sale.Product, sale.Amount); err != nil {
			return err
		}
		if sale, err = s.sales.Append(sale); err != nil {
			return err
		}
		if err := s.inventory.persist(inv); err != nil {
			return err
		}
		_, err = s.totals.Add(Revenue, sale.TotalEarnings)
		return err
	})
	if err != nil {
		return Sale{}, fmt.Errorf("cannot sell %q: %w", sale.Product, err)
	}
	s.logger.Debug("sale recorded",
		zap.Int("id", sale.ID),
		zap.String("product", sale.Product),
		zap.Int("amount", sale.Amount),
		zap.String("total_earnings", sale.TotalEarnings.Plain()),
	)
	return sale, nil
}

// Inventory returns the current stock of every product ever bought.
func (s *Store) Inventory() (Inventory, error) { return s.inventory.load() }

// Purchases returns all purchase records.
func (s *Store) Purchases() ([]Purchase, error) { return s.purchases.ReadAll() }

// Sales returns all sale records.
func (s *Store) Sales() ([]Sale, error) { return s.sales.ReadAll() }

// TotalCost returns the running total cost.
func (s *Store) TotalCost() (Money, error) { return s.totals.Get(Cost) }

// TotalRevenue returns the running total revenue.
func (s *Store) TotalRevenue() (Money, error) { return s.totals.Get(Revenue) }

// TotalProfit returns the running total revenue minus the running total cost.
func (s *Store) TotalProfit() (Money, error) { return s.totals.Profit() }

// CostByDate returns the cost of the purchases made in r, computed from the
// purchase log.
func (s *Store) CostByDate(r date.Range) (Money, error) {
	purchases, err := s.purchases.ReadAll()
	if err != nil {
		return Money{}, err
	}
	return CostOf(purchases, r), nil
}

// RevenueByDate returns the revenue of the sales made in r, computed from the
// sale log.
func (s *Store) RevenueByDate(r date.Range) (Money, error) {
	sales, err := s.sales.ReadAll()
	if err != nil {
		return Money{}, err
	}
	return RevenueOf(sales, r), nil
}

// ProfitByDate returns the revenue minus the cost of the records in r.
func (s *Store) ProfitByDate(r date.Range) (Money, error) {
	purchases, err := s.purchases.ReadAll()
	if err != nil {
		return Money{}, err
	}
	sales, err := s.sales.ReadAll()
	if err != nil {
		return Money{}, err
	}
	return ProfitOf(purchases, sales, r), nil
}

// Query computes metric m over r and appends the result to the metric's
// report file. It returns the amount and the report line.
func (s *Store) Query(m Metric, r date.Range) (Money, string, error) {
	var amount Money
	var err error
	switch m {
	case MetricCost:
		amount, err = s.CostByDate(r)
	case MetricRevenue:
		amount, err = s.RevenueByDate(r)
	case MetricProfit:
		amount, err = s.ProfitByDate(r)
	default:
		err = fmt.Errorf("unknown metric %d", m)
	}
	if err != nil {
		return Money{}, "", err
	}
	line := ReportLine(m, r, amount)
	filename, err := s.cfg.reportFile(m)
	if err != nil {
		return Money{}, "", err
	}
	if err := appendReport(filename, line); err != nil {
		return amount, line, err
	}
	return amount, line, nil
}

// Expired returns the purchases whose expiration date is before on, for the
// products still in stock.
//
// Sales are not matched to purchases, so a purchase whose units were all sold
// is reported as long as its product has stock from any other purchase.
func (s *Store) Expired(on date.Date) ([]Purchase, error) {
	purchases, err := s.purchases.ReadAll()
	if err != nil {
		return nil, err
	}
	inv, err := s.inventory.load()
	if err != nil {
		return nil, err
	}
	var expired []Purchase
	for _, p := range purchases {
		if p.Expiration.Before(on) && inv[p.Product] > 0 {
			expired = append(expired, p)
		}
	}
	return expired, nil
}
