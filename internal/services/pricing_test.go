package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

func TestComputeTotals(t *testing.T) {
	items := []models.SelectedItem{
		{ItemID: "1", Quantity: 2, Rate: 50},
		{ItemID: "2", Quantity: 1, Rate: 100},
	}

	totals := ComputeTotals(items)

	assert.InDelta(t, 200.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 36.0, totals.GSTAmount, 0.001)
	assert.InDelta(t, 236.0, totals.TotalWithGST, 0.001)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.GSTAmount)
	assert.Zero(t, totals.TotalWithGST)
}

func TestReconcileMatchLeavesRatesUntouched(t *testing.T) {
	items := []models.SelectedItem{
		{ItemID: "1", Quantity: 3, Rate: 33.33},
	}
	totals := ComputeTotals(items)

	// Feeding the calculated total back must always be a match.
	outcome := Reconcile(items, totals.TotalWithGST)

	assert.Equal(t, ReconcileMatch, outcome)
	assert.InDelta(t, 33.33, items[0].Rate, 0.0001)
}

func TestReconcileRescalesProportionally(t *testing.T) {
	items := []models.SelectedItem{
		{ItemID: "1", Quantity: 2, Rate: 50},
	}
	// subtotal = 100, total = 118; asking for 236 doubles every rate.
	outcome := Reconcile(items, 236)

	require.Equal(t, ReconcileRescaled, outcome)
	assert.InDelta(t, 100.0, items[0].Rate, 0.01)

	rescaled := ComputeTotals(items)
	assert.InDelta(t, 236.0, rescaled.TotalWithGST, 0.01)
}

func TestReconcileZeroSubtotal(t *testing.T) {
	var items []models.SelectedItem

	outcome := Reconcile(items, 500)

	assert.Equal(t, ReconcileZeroSubtotal, outcome)
}

func TestReconcileZeroSubtotalKeepsRates(t *testing.T) {
	items := []models.SelectedItem{
		{ItemID: "1", Quantity: 4, Rate: 0},
	}

	outcome := Reconcile(items, 118)

	assert.Equal(t, ReconcileZeroSubtotal, outcome)
	assert.Zero(t, items[0].Rate)
}
