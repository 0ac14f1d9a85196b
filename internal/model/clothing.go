package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Standard clothing sizes. Any other non-empty string is accepted as a
// custom size (e.g. "38W 32L").
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Clothing is a product with a size and a color.
type Clothing struct {
	base
	size  string
	color string
}

// NewClothing validates the fields and returns a new Clothing product.
func NewClothing(id, name string, price decimal.Decimal, quantity int, size, color string) (*Clothing, error) {
	c := &Clothing{
		base:  base{id: id, name: name, price: price, quantity: quantity},
		size:  size,
		color: color,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Clothing) Category() Category { return CategoryClothing }

// Size returns the size, one of the Size* constants or a custom string.
func (c *Clothing) Size() string { return c.size }

// Color returns the color.
func (c *Clothing) Color() string { return c.color }

func (c *Clothing) Validate() error {
	if err := c.validateBase(); err != nil {
		return err
	}
	if c.size == "" {
		return &ValidationError{Field: "size", Value: c.size, Reason: "must not be empty"}
	}
	if c.color == "" {
		return &ValidationError{Field: "color", Value: c.color, Reason: "must not be empty"}
	}
	return nil
}

func (c *Clothing) Describe() string {
	return fmt.Sprintf("%s\nSize: %s\nColor: %s", c.describeBase(), c.size, c.color)
}
