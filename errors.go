package supply

import "errors"

var (
	// ErrProductNotFound is returned when selling a product that has never been bought.
	ErrProductNotFound = errors.New("product not found in inventory")
	// ErrInsufficientStock is returned when selling more than the current stock.
	ErrInsufficientStock = errors.New("not enough stock")
	// ErrMalformedRecord is returned when a persisted row cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalid is returned for transaction inputs that break a domain rule.
	ErrInvalid = errors.New("invalid transaction")
	// ErrLocked is returned when another process holds the data directory lock.
	ErrLocked = errors.New("data directory is locked by another process")
)
