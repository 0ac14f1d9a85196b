package inventory

import "fmt"

// DuplicateIDError is returned by Add when a product with the same
// identifier is already held.
type DuplicateIDError struct {
	ProductID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("product with ID %s already exists in inventory", e.ProductID)
}

// NotFoundError is returned when an operation names an identifier that is
// not in the inventory.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found in inventory", e.ProductID)
}
