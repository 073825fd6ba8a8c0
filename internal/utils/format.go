package utils

import "github.com/dustin/go-humanize"

// PesoSymbol is the currency symbol used for all prices
const PesoSymbol = "₱"

// FormatPeso formats an amount as whole pesos with thousands separators.
// Negative amounts are invalid and render as zero.
func FormatPeso(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	return PesoSymbol + humanize.Comma(amount)
}
