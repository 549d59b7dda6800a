// Package stats holds the percentage rules shared by dashboard and reports.
package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// UsagePercent: ceil(100 * stock / capacity); kapasite 0 veya negatifse 0.
// Tüm ekranlarda aynı (tam sayıya yukarı yuvarlama) kural kullanılır.
func UsagePercent(stock, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(stock)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(capacity))).
		Ceil().
		IntPart())
}

// Percent returns 100 * part / total rounded to places decimals, or 0 when total is 0.
func Percent(part, total int64, places int32) float64 {
	if total <= 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(part).
		Mul(hundred).
		DivRound(decimal.NewFromInt(total), places).
		Float64()
	return f
}
