package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category identifies a concrete product variant. Category values double as
// the type discriminator in the persisted JSON document.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryGrocery     Category = "Grocery"
	CategoryClothing    Category = "Clothing"
)

// Categories returns all known product categories.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryGrocery, CategoryClothing}
}

// Product is the capability set shared by every variant. Concrete types are
// *Electronics, *Grocery and *Clothing; callers that need variant-specific
// fields type-switch on those.
type Product interface {
	ID() string
	Name() string
	Price() decimal.Decimal
	Quantity() int
	Category() Category

	// Describe returns a multi-line human-readable summary including the
	// identifier, name, price, quantity and every variant-specific field.
	Describe() string

	// TotalValue returns price multiplied by quantity in stock.
	TotalValue() decimal.Decimal

	// Validate checks every field invariant and returns a *ValidationError
	// describing the first violation found. Constructors run it, so a
	// product obtained from a New* function is always valid.
	Validate() error

	// Restock adds amount items to stock. Fails if amount is negative.
	Restock(amount int) error

	// Sell removes count items from stock and returns the sale total.
	// Fails with *InsufficientStockError if count exceeds the stock.
	Sell(count int) (decimal.Decimal, error)

	// AdjustQuantity applies a signed delta to the stock and returns the
	// new quantity. Fails if the result would be negative; the quantity
	// is left unchanged in that case.
	AdjustQuantity(delta int) (int, error)

	// SetPrice replaces the unit price. Fails if the price is negative.
	SetPrice(price decimal.Decimal) error
}

// base carries the fields and stock behavior common to all variants.
type base struct {
	id       string
	name     string
	price    decimal.Decimal
	quantity int
}

func (b *base) ID() string             { return b.id }
func (b *base) Name() string           { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) Quantity() int          { return b.quantity }

func (b *base) TotalValue() decimal.Decimal {
	return b.price.Mul(decimal.NewFromInt(int64(b.quantity)))
}

func (b *base) Restock(amount int) error {
	if amount < 0 {
		return &ValidationError{Field: "amount", Value: amount, Reason: "restock amount cannot be negative"}
	}
	b.quantity += amount
	return nil
}

func (b *base) Sell(count int) (decimal.Decimal, error) {
	if count < 0 {
		return decimal.Zero, &ValidationError{Field: "count", Value: count, Reason: "sale quantity cannot be negative"}
	}
	if count > b.quantity {
		return decimal.Zero, &InsufficientStockError{ProductID: b.id, Requested: count, Available: b.quantity}
	}
	b.quantity -= count
	return b.price.Mul(decimal.NewFromInt(int64(count))), nil
}

func (b *base) AdjustQuantity(delta int) (int, error) {
	next := b.quantity + delta
	if next < 0 {
		return b.quantity, &ValidationError{Field: "quantity", Value: next, Reason: "quantity cannot go negative"}
	}
	b.quantity = next
	return next, nil
}

func (b *base) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return &ValidationError{Field: "price", Value: price, Reason: "price cannot be negative"}
	}
	b.price = price
	return nil
}

func (b *base) validateBase() error {
	if b.id == "" {
		return &ValidationError{Field: "product_id", Value: b.id, Reason: "must not be empty"}
	}
	if b.name == "" {
		return &ValidationError{Field: "name", Value: b.name, Reason: "must not be empty"}
	}
	if b.price.IsNegative() {
		return &ValidationError{Field: "price", Value: b.price, Reason: "cannot be negative"}
	}
	if b.quantity < 0 {
		return &ValidationError{Field: "quantity_in_stock", Value: b.quantity, Reason: "cannot be negative"}
	}
	return nil
}

func (b *base) describeBase() string {
	return fmt.Sprintf("Product ID: %s\nName: %s\nPrice: $%s\nQuantity in Stock: %d",
		b.id, b.name, b.price.StringFixed(2), b.quantity)
}
