package tradeledger

import (
	"github.com/etnz/tradeledger/date"
	"github.com/google/go-cmp/cmp"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// trade is a helper to create a row of the trade sheet.
func trade(profit any, closed string) Row {
	return Row{"Profit(USD)": profit, "Close Date": closed, "Symbol": "EURUSD"}
}

// snapshot is a helper to create a row of the equity sheet.
func snapshot(on string, balance, equity any) Row {
	return Row{"Date": on, "Balance": balance, "Realized Equity": equity}
}

// cmpOptions compares money, percent and dates by value.
var cmpOptions = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Percent) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}
