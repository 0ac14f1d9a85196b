package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Grocery is a perishable product with an expiry date and a unit of measure.
type Grocery struct {
	base
	expiryDate time.Time
	unit       string
}

// NewGrocery validates the fields and returns a new Grocery product. The
// expiry date is given as a YYYY-MM-DD string; an unparsable date fails with
// a *ValidationError.
func NewGrocery(id, name string, price decimal.Decimal, quantity int, expiryDate, unit string) (*Grocery, error) {
	parsed, err := time.Parse(time.DateOnly, expiryDate)
	if err != nil {
		return nil, &ValidationError{Field: "expiry_date", Value: expiryDate, Reason: "must be a date in YYYY-MM-DD format"}
	}
	g := &Grocery{
		base:       base{id: id, name: name, price: price, quantity: quantity},
		expiryDate: parsed,
		unit:       unit,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grocery) Category() Category { return CategoryGrocery }

// ExpiryDate returns the expiry date (midnight UTC of the expiry day).
func (g *Grocery) ExpiryDate() time.Time { return g.expiryDate }

// Unit returns the unit of measure, e.g. "kg" or "pcs".
func (g *Grocery) Unit() string { return g.unit }

// IsExpired reports whether the expiry date lies strictly before the day of
// ref. The expiry day itself still counts as valid.
func (g *Grocery) IsExpired(ref time.Time) bool {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return g.expiryDate.Before(refDay)
}

func (g *Grocery) Validate() error {
	if err := g.validateBase(); err != nil {
		return err
	}
	if g.expiryDate.IsZero() {
		return &ValidationError{Field: "expiry_date", Value: g.expiryDate, Reason: "must be set"}
	}
	if g.unit == "" {
		return &ValidationError{Field: "unit", Value: g.unit, Reason: "must not be empty"}
	}
	return nil
}

func (g *Grocery) Describe() string {
	status := "Valid"
	if g.IsExpired(time.Now()) {
		status = "EXPIRED"
	}
	return fmt.Sprintf("%s\nExpiry Date: %s\nUnit: %s\nStatus: %s",
		g.describeBase(), g.expiryDate.Format(time.DateOnly), g.unit, status)
}
