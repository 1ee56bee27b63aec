package service

import (
	"github.com/shopspring/decimal"

	"markethub/internal/domain"
)

// itemsSubtotal sums price×quantity over cart lines. Decimal arithmetic
// keeps currency exact; floats appear only at the JSON boundary.
func itemsSubtotal(items []domain.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

func toAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
