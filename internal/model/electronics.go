package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Electronics is a product with a warranty period and a brand.
type Electronics struct {
	base
	warrantyMonths int
	brand          string
}

// NewElectronics validates the fields and returns a new Electronics product.
func NewElectronics(id, name string, price decimal.Decimal, quantity, warrantyMonths int, brand string) (*Electronics, error) {
	e := &Electronics{
		base:           base{id: id, name: name, price: price, quantity: quantity},
		warrantyMonths: warrantyMonths,
		brand:          brand,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Electronics) Category() Category { return CategoryElectronics }

// WarrantyMonths returns the warranty period in months.
func (e *Electronics) WarrantyMonths() int { return e.warrantyMonths }

// Brand returns the brand name.
func (e *Electronics) Brand() string { return e.brand }

func (e *Electronics) Validate() error {
	if err := e.validateBase(); err != nil {
		return err
	}
	if e.warrantyMonths < 0 {
		return &ValidationError{Field: "warranty_months", Value: e.warrantyMonths, Reason: "cannot be negative"}
	}
	if e.brand == "" {
		return &ValidationError{Field: "brand", Value: e.brand, Reason: "must not be empty"}
	}
	return nil
}

func (e *Electronics) Describe() string {
	return fmt.Sprintf("%s\nBrand: %s\nWarranty: %d months", e.describeBase(), e.brand, e.warrantyMonths)
}
