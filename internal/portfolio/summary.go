// Package portfolio computes aggregate figures over account holdings.
package portfolio

import (
	"strings"

	"github.com/shopspring/decimal"

	"kitebot/internal/kite"
)

// Summary is the aggregate view of the holdings list. Monetary fields are
// pre-formatted currency strings for direct display.
type Summary struct {
	TotalStocks     int    `json:"total_stocks"`
	TotalInvestment string `json:"total_investment"`
	CurrentValue    string `json:"current_value"`
	TotalPnL        string `json:"total_pnl"`
	PnLPercentage   string `json:"pnl_percentage"`
}

// Summarize runs a single pass over the holdings and totals the invested
// amount (quantity x average price), the current value (quantity x last
// price) and the P&L. The P&L percentage is relative to the invested
// amount, 0% when nothing is invested.
func Summarize(holdings []kite.Holding) Summary {
	investment := decimal.Zero
	current := decimal.Zero
	pnl := decimal.Zero

	for _, h := range holdings {
		qty := decimal.NewFromInt(h.Quantity)
		investment = investment.Add(qty.Mul(decimal.NewFromFloat(h.AveragePrice)))
		current = current.Add(qty.Mul(decimal.NewFromFloat(h.LastPrice)))
		pnl = pnl.Add(decimal.NewFromFloat(h.PnL))
	}

	pctStr := "0%"
	if investment.IsPositive() {
		pct := pnl.Div(investment).Mul(decimal.NewFromInt(100))
		pctStr = pct.StringFixed(2) + "%"
	}

	return Summary{
		TotalStocks:     len(holdings),
		TotalInvestment: FormatINR(investment),
		CurrentValue:    FormatINR(current),
		TotalPnL:        FormatINR(pnl),
		PnLPercentage:   pctStr,
	}
}

// FormatINR renders an amount as a rupee string with two decimals and
// thousands grouping, e.g. ₹1,234,567.89.
func FormatINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("₹")
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(digit)
	}
	b.WriteString(".")
	b.WriteString(fracPart)
	return b.String()
}
