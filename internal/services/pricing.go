package services

import (
	"github.com/shopspring/decimal"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// GSTRate is the single flat tax rate applied on top of the item subtotal.
const GSTRate = "0.18"

// AmountTolerance is how far a user-provided total may drift from the
// calculated total and still count as a match.
const AmountTolerance = "0.01"

// Totals holds the three derived amounts shown before asking for the final
// total.
type Totals struct {
	Subtotal     float64
	GSTAmount    float64
	TotalWithGST float64
}

// ComputeTotals sums quantity*rate over the selected items and applies GST.
// All three amounts are rounded to 2 decimal places.
func ComputeTotals(items []models.SelectedItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromInt(int64(item.Quantity)).Mul(decimal.NewFromFloat(item.Rate))
		subtotal = subtotal.Add(line)
	}

	gst := subtotal.Mul(decimal.RequireFromString(GSTRate))
	total := subtotal.Add(gst)

	return Totals{
		Subtotal:     subtotal.Round(2).InexactFloat64(),
		GSTAmount:    gst.Round(2).InexactFloat64(),
		TotalWithGST: total.Round(2).InexactFloat64(),
	}
}

// ReconcileOutcome distinguishes the three exit branches of the total-amount
// step.
type ReconcileOutcome int

const (
	// ReconcileMatch means the provided total agrees with the calculation
	// within tolerance; rates are untouched.
	ReconcileMatch ReconcileOutcome = iota
	// ReconcileZeroSubtotal means rates could not be rescaled because the
	// subtotal was zero; the provided total overrides the invoice total.
	ReconcileZeroSubtotal
	// ReconcileRescaled means every rate was proportionally adjusted so the
	// items sum to the provided total after GST.
	ReconcileRescaled
)

// Reconcile compares the user's expected total with the calculated one and,
// when they differ, rescales the item rates in place so that
// sum(qty*rate)*(1+GST) equals the provided total. Rescaled rates are rounded
// to 4 decimal places.
func Reconcile(items []models.SelectedItem, providedTotal float64) ReconcileOutcome {
	totals := ComputeTotals(items)

	provided := decimal.NewFromFloat(providedTotal)
	calculated := decimal.NewFromFloat(totals.TotalWithGST)
	if provided.Sub(calculated).Abs().LessThan(decimal.RequireFromString(AmountTolerance)) {
		return ReconcileMatch
	}

	subtotal := decimal.NewFromFloat(totals.Subtotal)
	if subtotal.IsZero() {
		return ReconcileZeroSubtotal
	}

	one := decimal.NewFromInt(1)
	gstRate := decimal.RequireFromString(GSTRate)
	targetSubtotal := provided.Div(one.Add(gstRate))
	factor := targetSubtotal.Div(subtotal)

	for i := range items {
		rescaled := decimal.NewFromFloat(items[i].Rate).Mul(factor)
		items[i].Rate = rescaled.Round(4).InexactFloat64()
	}
	return ReconcileRescaled
}
