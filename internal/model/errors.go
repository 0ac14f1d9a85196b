package model

import "fmt"

// ValidationError reports a product field that is missing or out of range.
// It is returned both at construction time and by stock/price mutations that
// would break a product invariant.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for field %s: %s", e.Value, e.Field, e.Reason)
}

// InsufficientStockError is returned when a sale requests more items than
// are currently in stock. It is distinct from ValidationError so callers can
// offer a different recovery path (e.g. suggest the available quantity).
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
