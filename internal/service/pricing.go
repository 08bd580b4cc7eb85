package service

import (
	"errors"
	"math"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/shopspring/decimal"
)

var taxRate = decimal.RequireFromString("0.08")

var ErrTotalsOutOfRange = errors.New("order totals are out of range")

type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals prices a list of order items. Tax and total are derived from
// the unrounded subtotal; every returned amount is rounded to cents.
func ComputeTotals(items []domain.OrderItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return Totals{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

// Finite reports whether every amount can be stored and encoded as JSON.
func (t Totals) Finite() bool {
	for _, v := range []float64{t.Subtotal, t.Tax, t.Total} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
