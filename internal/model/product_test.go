package model_test

import (
	"testing"
	"time"

	"github.com/iyhunko/inventory-tracker/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElectronics(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(500), 2, 12, "X")
	require.NoError(t, err)

	assert.Equal(t, "E1", e.ID())
	assert.Equal(t, "Phone", e.Name())
	assert.True(t, decimal.NewFromInt(500).Equal(e.Price()))
	assert.Equal(t, 2, e.Quantity())
	assert.Equal(t, model.CategoryElectronics, e.Category())
	assert.Equal(t, 12, e.WarrantyMonths())
	assert.Equal(t, "X", e.Brand())
}

func TestNewProduct_ValidationFailures(t *testing.T) {
	price := decimal.NewFromInt(10)

	tests := []struct {
		name  string
		build func() (model.Product, error)
		field string
	}{
		{
			name: "empty id",
			build: func() (model.Product, error) {
				return model.NewElectronics("", "Phone", price, 1, 12, "X")
			},
			field: "product_id",
		},
		{
			name: "empty name",
			build: func() (model.Product, error) {
				return model.NewElectronics("E1", "", price, 1, 12, "X")
			},
			field: "name",
		},
		{
			name: "negative price",
			build: func() (model.Product, error) {
				return model.NewElectronics("E1", "Phone", decimal.NewFromInt(-1), 1, 12, "X")
			},
			field: "price",
		},
		{
			name: "negative quantity",
			build: func() (model.Product, error) {
				return model.NewElectronics("E1", "Phone", price, -1, 12, "X")
			},
			field: "quantity_in_stock",
		},
		{
			name: "negative warranty",
			build: func() (model.Product, error) {
				return model.NewElectronics("E1", "Phone", price, 1, -3, "X")
			},
			field: "warranty_months",
		},
		{
			name: "empty brand",
			build: func() (model.Product, error) {
				return model.NewElectronics("E1", "Phone", price, 1, 12, "")
			},
			field: "brand",
		},
		{
			name: "unparsable expiry date",
			build: func() (model.Product, error) {
				return model.NewGrocery("G1", "Milk", price, 1, "not-a-date", "l")
			},
			field: "expiry_date",
		},
		{
			name: "empty unit",
			build: func() (model.Product, error) {
				return model.NewGrocery("G1", "Milk", price, 1, "2030-01-01", "")
			},
			field: "unit",
		},
		{
			name: "empty size",
			build: func() (model.Product, error) {
				return model.NewClothing("C1", "Shirt", price, 1, "", "blue")
			},
			field: "size",
		},
		{
			name: "empty color",
			build: func() (model.Product, error) {
				return model.NewClothing("C1", "Shirt", price, 1, model.SizeMedium, "")
			},
			field: "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.build()
			assert.Nil(t, p, "no partially-constructed product may be returned")

			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestDescribe_ContainsAllFields(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromFloat(499.5), 2, 12, "X")
	require.NoError(t, err)
	desc := e.Describe()
	assert.Contains(t, desc, "E1")
	assert.Contains(t, desc, "Phone")
	assert.Contains(t, desc, "$499.50")
	assert.Contains(t, desc, "Quantity in Stock: 2")
	assert.Contains(t, desc, "Brand: X")
	assert.Contains(t, desc, "Warranty: 12 months")

	g, err := model.NewGrocery("G1", "Milk", decimal.NewFromInt(2), 10, "2030-06-15", "l")
	require.NoError(t, err)
	desc = g.Describe()
	assert.Contains(t, desc, "G1")
	assert.Contains(t, desc, "Milk")
	assert.Contains(t, desc, "Expiry Date: 2030-06-15")
	assert.Contains(t, desc, "Unit: l")
	assert.Contains(t, desc, "Status: Valid")

	cl, err := model.NewClothing("C1", "Shirt", decimal.NewFromInt(25), 5, model.SizeLarge, "blue")
	require.NoError(t, err)
	desc = cl.Describe()
	assert.Contains(t, desc, "C1")
	assert.Contains(t, desc, "Shirt")
	assert.Contains(t, desc, "Size: large")
	assert.Contains(t, desc, "Color: blue")
}

func TestDescribe_ExpiredGrocery(t *testing.T) {
	g, err := model.NewGrocery("G1", "Milk", decimal.NewFromInt(2), 10, "2020-01-01", "l")
	require.NoError(t, err)
	assert.Contains(t, g.Describe(), "Status: EXPIRED")
}

func TestGrocery_IsExpired(t *testing.T) {
	g, err := model.NewGrocery("G1", "Milk", decimal.NewFromInt(2), 10, "2026-06-15", "l")
	require.NoError(t, err)

	tests := []struct {
		name string
		ref  time.Time
		want bool
	}{
		{"day before expiry", time.Date(2026, 6, 14, 23, 0, 0, 0, time.UTC), false},
		{"expiry day", time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC), false},
		{"day after expiry", time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsExpired(tt.ref))
		})
	}
}

func TestTotalValue(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 3, 12, "X")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(e.TotalValue()), "expected 300, got %s", e.TotalValue())
}

func TestSell(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 3, 12, "X")
	require.NoError(t, err)

	total, err := e.Sell(2)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(total), "expected 200, got %s", total)
	assert.Equal(t, 1, e.Quantity())
}

func TestSell_InsufficientStock(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 3, 12, "X")
	require.NoError(t, err)

	_, err = e.Sell(5)
	var stockErr *model.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "E1", stockErr.ProductID)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 3, e.Quantity(), "quantity must be unchanged after a failed sale")
}

func TestSell_NegativeCount(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 3, 12, "X")
	require.NoError(t, err)

	_, err = e.Sell(-1)
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 3, e.Quantity())
}

func TestRestock(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 3, 12, "X")
	require.NoError(t, err)

	require.NoError(t, e.Restock(7))
	assert.Equal(t, 10, e.Quantity())

	var vErr *model.ValidationError
	require.ErrorAs(t, e.Restock(-1), &vErr)
	assert.Equal(t, 10, e.Quantity())
}

func TestAdjustQuantity(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 2, 12, "X")
	require.NoError(t, err)

	got, err := e.AdjustQuantity(-1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = e.AdjustQuantity(-5)
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 1, got, "failed adjustment must report the unchanged quantity")
	assert.Equal(t, 1, e.Quantity())
}

func TestSetPrice(t *testing.T) {
	e, err := model.NewElectronics("E1", "Phone", decimal.NewFromInt(100), 2, 12, "X")
	require.NoError(t, err)

	require.NoError(t, e.SetPrice(decimal.NewFromInt(80)))
	assert.True(t, decimal.NewFromInt(80).Equal(e.Price()))

	var vErr *model.ValidationError
	require.ErrorAs(t, e.SetPrice(decimal.NewFromInt(-5)), &vErr)
	assert.True(t, decimal.NewFromInt(80).Equal(e.Price()))
}
