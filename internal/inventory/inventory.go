package inventory

import (
	"log/slog"
	"strings"
	"time"

	"github.com/iyhunko/inventory-tracker/internal/model"
	"github.com/shopspring/decimal"
)

// Inventory holds products in insertion order. Identifier uniqueness is
// enforced here, not by the products themselves. The collection is small, so
// lookups are linear scans.
type Inventory struct {
	products []model.Product
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{}
}

// Add appends a product, preserving insertion order. Fails with
// *DuplicateIDError if a product with the same identifier is already held.
func (inv *Inventory) Add(p model.Product) error {
	if inv.indexOf(p.ID()) >= 0 {
		return &DuplicateIDError{ProductID: p.ID()}
	}
	inv.products = append(inv.products, p)
	return nil
}

// Remove deletes the product with the given identifier and returns it.
// Fails with *NotFoundError if it is absent.
func (inv *Inventory) Remove(id string) (model.Product, error) {
	i := inv.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{ProductID: id}
	}
	p := inv.products[i]
	inv.products = append(inv.products[:i], inv.products[i+1:]...)
	return p, nil
}

// Find returns the product with the given identifier or *NotFoundError.
func (inv *Inventory) Find(id string) (model.Product, error) {
	i := inv.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{ProductID: id}
	}
	return inv.products[i], nil
}

// Criteria filters Search results. The zero value matches every product;
// each set field narrows the match.
type Criteria struct {
	// Name matches case-insensitively as a substring of the product name.
	Name string

	// Category matches the product variant exactly when non-empty.
	Category model.Category

	// MinPrice and MaxPrice bound the unit price inclusively when set.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

func (c Criteria) matches(p model.Product) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(p.Name()), strings.ToLower(c.Name)) {
		return false
	}
	if c.Category != "" && p.Category() != c.Category {
		return false
	}
	if c.MinPrice != nil && p.Price().LessThan(*c.MinPrice) {
		return false
	}
	if c.MaxPrice != nil && p.Price().GreaterThan(*c.MaxPrice) {
		return false
	}
	return true
}

// Search returns the products matching the criteria in insertion order. An
// empty result is not an error.
func (inv *Inventory) Search(c Criteria) []model.Product {
	var out []model.Product
	for _, p := range inv.products {
		if c.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateQuantity applies a signed delta to the product's stock and returns
// the new quantity. Fails with *NotFoundError if the identifier is absent
// and with *model.ValidationError if the result would be negative; the
// quantity is unchanged on failure.
func (inv *Inventory) UpdateQuantity(id string, delta int) (int, error) {
	p, err := inv.Find(id)
	if err != nil {
		return 0, err
	}
	return p.AdjustQuantity(delta)
}

// RecordSale removes count items from the product's stock and returns the
// sale total. Fails with *model.InsufficientStockError when count exceeds
// the available quantity; stock is unchanged on failure.
func (inv *Inventory) RecordSale(id string, count int) (decimal.Decimal, error) {
	p, err := inv.Find(id)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Sell(count)
}

// Restock adds count items to the product's stock.
func (inv *Inventory) Restock(id string, count int) error {
	p, err := inv.Find(id)
	if err != nil {
		return err
	}
	return p.Restock(count)
}

// TotalValue returns the sum of price x quantity over all held products,
// expired stock included.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// ListExpired returns the grocery products expired relative to ref, in
// insertion order.
func (inv *Inventory) ListExpired(ref time.Time) []*model.Grocery {
	var expired []*model.Grocery
	for _, p := range inv.products {
		if g, ok := p.(*model.Grocery); ok && g.IsExpired(ref) {
			expired = append(expired, g)
		}
	}
	return expired
}

// RemoveExpired deletes every grocery product expired relative to ref and
// returns the removed identifiers.
func (inv *Inventory) RemoveExpired(ref time.Time) []string {
	var removed []string
	kept := make([]model.Product, 0, len(inv.products))
	for _, p := range inv.products {
		if g, ok := p.(*model.Grocery); ok && g.IsExpired(ref) {
			removed = append(removed, g.ID())
			continue
		}
		kept = append(kept, p)
	}
	inv.products = kept
	if len(removed) > 0 {
		slog.Info("removed expired products", slog.Int("count", len(removed)), slog.Any("ids", removed))
	}
	return removed
}

// Products returns a copy of the held products in insertion order.
func (inv *Inventory) Products() []model.Product {
	out := make([]model.Product, len(inv.products))
	copy(out, inv.products)
	return out
}

// Len returns the number of held products.
func (inv *Inventory) Len() int {
	return len(inv.products)
}

func (inv *Inventory) indexOf(id string) int {
	for i, p := range inv.products {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
