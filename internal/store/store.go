package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/iyhunko/inventory-tracker/internal/inventory"
	"github.com/iyhunko/inventory-tracker/internal/model"
	"github.com/shopspring/decimal"
)

// Store persists an inventory as a single JSON document at a fixed path.
// The document is an object with a "products" array; each entry carries a
// "type" discriminator naming the variant plus that variant's fields.
type Store struct {
	path string
}

// NewStore returns a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path the store reads and writes.
func (s *Store) Path() string { return s.path }

type document struct {
	Products []productRecord `json:"products"`
}

// productRecord is the persisted shape of a product, the union of all
// variant fields. Pointer fields distinguish a missing field from a zero
// value during decode.
type productRecord struct {
	Type            string           `json:"type"`
	ProductID       *string          `json:"product_id"`
	Name            *string          `json:"name"`
	Price           *decimal.Decimal `json:"price"`
	QuantityInStock *int             `json:"quantity_in_stock"`

	// Electronics
	WarrantyMonths *int    `json:"warranty_months,omitempty"`
	Brand          *string `json:"brand,omitempty"`

	// Grocery
	ExpiryDate *string `json:"expiry_date,omitempty"`
	Unit       *string `json:"unit,omitempty"`

	// Clothing
	Size  *string `json:"size,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Save writes the full inventory, replacing any prior contents. The document
// is written to a temporary file in the same directory and renamed into
// place, so a crash mid-write never truncates a valid prior file. Fails with
// *PersistenceError on any I/O failure.
func (s *Store) Save(inv *inventory.Inventory) error {
	products := inv.Products()
	doc := document{Products: make([]productRecord, 0, len(products))}
	for _, p := range products {
		rec, err := recordFor(p)
		if err != nil {
			return &PersistenceError{Op: "save", Path: s.path, Err: err}
		}
		doc.Products = append(doc.Products, rec)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	slog.Info("inventory saved", slog.String("path", s.path), slog.Int("products", len(products)))
	return nil
}

// Load reads the JSON document and reconstructs each entry into the correct
// product variant, re-running validation. Fails with *PersistenceError if
// the file is missing, unreadable or not valid JSON, and with
// *CorruptDataError if any entry cannot be reconstructed. The load is
// all-or-nothing: no partial inventory is ever returned.
func (s *Store) Load() (*inventory.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	// Split the document into raw entries first so a malformed entry is a
	// data error on that entry, not a failure of the whole file syntax.
	var doc struct {
		Products []json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: fmt.Errorf("not a valid JSON document: %w", err)}
	}

	inv := inventory.New()
	for i, raw := range doc.Products {
		var rec productRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &CorruptDataError{Index: i, Err: err}
		}
		p, err := rec.toProduct()
		if err != nil {
			return nil, &CorruptDataError{Index: i, Err: err}
		}
		if err := inv.Add(p); err != nil {
			return nil, &CorruptDataError{Index: i, Err: err}
		}
	}

	slog.Info("inventory loaded", slog.String("path", s.path), slog.Int("products", inv.Len()))
	return inv, nil
}

func recordFor(p model.Product) (productRecord, error) {
	rec := productRecord{
		Type:            string(p.Category()),
		ProductID:       ptr(p.ID()),
		Name:            ptr(p.Name()),
		Price:           ptr(p.Price()),
		QuantityInStock: ptr(p.Quantity()),
	}
	switch v := p.(type) {
	case *model.Electronics:
		rec.WarrantyMonths = ptr(v.WarrantyMonths())
		rec.Brand = ptr(v.Brand())
	case *model.Grocery:
		rec.ExpiryDate = ptr(v.ExpiryDate().Format(time.DateOnly))
		rec.Unit = ptr(v.Unit())
	case *model.Clothing:
		rec.Size = ptr(v.Size())
		rec.Color = ptr(v.Color())
	default:
		return productRecord{}, fmt.Errorf("unknown product variant %T", p)
	}
	return rec, nil
}

func (r productRecord) toProduct() (model.Product, error) {
	if field := r.missingBaseField(); field != "" {
		return nil, missingField(field)
	}
	switch model.Category(r.Type) {
	case model.CategoryElectronics:
		if r.WarrantyMonths == nil {
			return nil, missingField("warranty_months")
		}
		if r.Brand == nil {
			return nil, missingField("brand")
		}
		return model.NewElectronics(*r.ProductID, *r.Name, *r.Price, *r.QuantityInStock, *r.WarrantyMonths, *r.Brand)
	case model.CategoryGrocery:
		if r.ExpiryDate == nil {
			return nil, missingField("expiry_date")
		}
		if r.Unit == nil {
			return nil, missingField("unit")
		}
		return model.NewGrocery(*r.ProductID, *r.Name, *r.Price, *r.QuantityInStock, *r.ExpiryDate, *r.Unit)
	case model.CategoryClothing:
		if r.Size == nil {
			return nil, missingField("size")
		}
		if r.Color == nil {
			return nil, missingField("color")
		}
		return model.NewClothing(*r.ProductID, *r.Name, *r.Price, *r.QuantityInStock, *r.Size, *r.Color)
	default:
		return nil, fmt.Errorf("unknown product type %q", r.Type)
	}
}

func (r productRecord) missingBaseField() string {
	switch {
	case r.ProductID == nil:
		return "product_id"
	case r.Name == nil:
		return "name"
	case r.Price == nil:
		return "price"
	case r.QuantityInStock == nil:
		return "quantity_in_stock"
	}
	return ""
}

func missingField(name string) error {
	return errors.New("missing required field " + name)
}

func ptr[T any](v T) *T { return &v }
