package supply

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/supply/date"
	"golang.org/x/text/unicode/norm"
)

var (
	purchaseHeader = []string{"id", "amount", "product_name", "purchase_date", "price", "expiration_date", "total_cost"}
	saleHeader     = []string{"id", "product_name", "amount", "sell_date", "price", "total_earnings"}
)

// ProductName returns the inventory key of a product name: trimmed and in
// Unicode normal form C.
func ProductName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Purchase is an immutable record of products bought.
type Purchase struct {
	ID         int
	Amount     int
	Product    string
	Date       date.Date
	Price      Money // per unit
	Expiration date.Date
	TotalCost  Money
}

// NewPurchase creates a purchase of amount products at unitPrice, TotalCost included.
// The ID is allocated when the purchase is appended to its log.
func NewPurchase(product string, amount int, unitPrice Money, on, expiration date.Date) Purchase {
	return Purchase{
		Amount:     amount,
		Product:    ProductName(product),
		Date:       on,
		Price:      unitPrice,
		Expiration: expiration,
		TotalCost:  Total(amount, unitPrice),
	}
}

// Validate checks the domain rules of a new purchase.
func (p Purchase) Validate() error {
	return validate(p.Product, p.Amount, p.Price)
}

func (p Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("amount", p.Amount)
	w.Append("product_name", p.Product)
	w.Append("purchase_date", p.Date)
	w.Append("price", p.Price)
	w.Append("expiration_date", p.Expiration)
	w.Append("total_cost", p.TotalCost)
	return w.MarshalJSON()
}

// Sale is an immutable record of products sold.
type Sale struct {
	ID            int
	Product       string
	Amount        int
	Date          date.Date
	Price         Money // per unit
	TotalEarnings Money
}

// NewSale creates a sale of amount products at unitPrice, TotalEarnings included.
func NewSale(product string, amount int, unitPrice Money, on date.Date) Sale {
	return Sale{
		Product:       ProductName(product),
		Amount:        amount,
		Date:          on,
		Price:         unitPrice,
		TotalEarnings: Total(amount, unitPrice),
	}
}

// Validate checks the domain rules of a new sale.
func (s Sale) Validate() error {
	return validate(s.Product, s.Amount, s.Price)
}

func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("product_name", s.Product)
	w.Append("amount", s.Amount)
	w.Append("sell_date", s.Date)
	w.Append("price", s.Price)
	w.Append("total_earnings", s.TotalEarnings)
	return w.MarshalJSON()
}

func validate(product string, amount int, price Money) error {
	if product == "" {
		return fmt.Errorf("%w: product name is empty", ErrInvalid)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive whole number, got %d", ErrInvalid, amount)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative, got %s", ErrInvalid, price.Plain())
	}
	return nil
}

// purchaseCodec maps purchases to the rows of bought.csv.
type purchaseCodec struct{}

func (purchaseCodec) header() []string { return purchaseHeader }

func (purchaseCodec) withID(p Purchase, id int) Purchase { p.ID = id; return p }

func (purchaseCodec) encode(p Purchase) []string {
	return []string{
		strconv.Itoa(p.ID),
		strconv.Itoa(p.Amount),
		p.Product,
		p.Date.String(),
		p.Price.Plain(),
		p.Expiration.String(),
		p.TotalCost.Fixed(),
	}
}

func (purchaseCodec) decode(fields []string) (p Purchase, err error) {
	if len(fields) != len(purchaseHeader) {
		return p, fmt.Errorf("want %d columns, got %d", len(purchaseHeader), len(fields))
	}
	var f fieldParser
	p.ID = f.integer("id", fields[0])
	p.Amount = f.integer("amount", fields[1])
	p.Product = ProductName(fields[2])
	p.Date = f.day("purchase_date", fields[3])
	p.Price = f.amount("price", fields[4])
	p.Expiration = f.day("expiration_date", fields[5])
	p.TotalCost = f.amount("total_cost", fields[6])
	return p, f.err
}

// saleCodec maps sales to the rows of sold.csv.
type saleCodec struct{}

func (saleCodec) header() []string { return saleHeader }

func (saleCodec) withID(s Sale, id int) Sale { s.ID = id; return s }

func (saleCodec) encode(s Sale) []string {
	return []string{
		strconv.Itoa(s.ID),
		s.Product,
		strconv.Itoa(s.Amount),
		s.Date.String(),
		s.Price.Plain(),
		s.TotalEarnings.Fixed(),
	}
}

func (saleCodec) decode(fields []string) (s Sale, err error) {
	if len(fields) != len(saleHeader) {
		return s, fmt.Errorf("want %d columns, got %d", len(saleHeader), len(fields))
	}
	var f fieldParser
	s.ID = f.integer("id", fields[0])
	s.Product = ProductName(fields[1])
	s.Amount = f.integer("amount", fields[2])
	s.Date = f.day("sell_date", fields[3])
	s.Price = f.amount("price", fields[4])
	s.TotalEarnings = f.amount("total_earnings", fields[5])
	return s, f.err
}

// fieldParser parses the columns of a row and keeps the first error.
type fieldParser struct {
	err error
}

func (f *fieldParser) integer(column, value string) int {
	if f.err != nil {
		return 0
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		f.err = fmt.Errorf("column %q: %w", column, err)
	}
	return i
}

func (f *fieldParser) amount(column, value string) Money {
	if f.err != nil {
		return Money{}
	}
	m, err := ParseMoney(value)
	if err != nil {
		f.err = fmt.Errorf("column %q: %w", column, err)
	}
	return m
}

func (f *fieldParser) day(column, value string) date.Date {
	if f.err != nil {
		return date.Date{}
	}
	d, err := date.Parse(strings.TrimSpace(value))
	if err != nil {
		f.err = fmt.Errorf("column %q: %w", column, err)
	}
	return d
}
