package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoiciz-api/internal/domain"
	"github.com/jhoicas/invoiciz-api/internal/domain/billing"
)

func TestDraft_AddItemCalculaTotal(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddItem("Widget", 3, decimal.RequireFromString("10.00")))

	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	assert.EqualValues(t, 3, items[0].Quantity)
	assert.True(t, items[0].Total.Equal(decimal.RequireFromString("30.00")),
		"total de línea: %s", items[0].Total)
}

func TestDraft_AddItemValidaciones(t *testing.T) {
	cases := []struct {
		name     string
		itemName string
		quantity int64
		price    string
	}{
		{"nombre vacío", "", 1, "10.00"},
		{"cantidad cero", "Widget", 0, "10.00"},
		{"cantidad negativa", "Widget", -2, "10.00"},
		{"precio negativo", "Widget", 1, "-0.01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := billing.NewDraft()
			err := d.AddItem(tc.itemName, tc.quantity, decimal.RequireFromString(tc.price))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, d.Len(), "una línea inválida no debe agregarse")
		})
	}
}

// Precio cero es válido (línea de cortesía).
func TestDraft_PrecioCeroPermitido(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddItem("muestra", 2, decimal.Zero))
	assert.Equal(t, 1, d.Len())
}

func TestDraft_RemoveAll(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddItem("A", 1, decimal.NewFromInt(1)))
	require.NoError(t, d.AddItem("B", 2, decimal.NewFromInt(2)))
	require.Equal(t, 2, d.Len())

	d.RemoveAll()
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Items())
}

// Items devuelve una copia: mutar el slice no afecta al borrador.
func TestDraft_ItemsEsCopia(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddItem("A", 1, decimal.NewFromInt(5)))

	items := d.Items()
	items[0].Name = "mutado"
	assert.Equal(t, "A", d.Items()[0].Name)
}

// El orden de inserción se conserva.
func TestDraft_OrdenDeInsercion(t *testing.T) {
	d := billing.NewDraft()
	names := []string{"primero", "segundo", "tercero"}
	for _, n := range names {
		require.NoError(t, d.AddItem(n, 1, decimal.NewFromInt(1)))
	}
	items := d.Items()
	require.Len(t, items, 3)
	for i, n := range names {
		assert.Equal(t, n, items[i].Name)
	}
}
