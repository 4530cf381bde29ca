package tradeledger

import (
	"github.com/etnz/tradeledger/date"
)

// Sheet names used when reporting skipped rows.
const (
	TradeSheet  = "trades"
	EquitySheet = "equity"
)

// Trade is a closed position.
type Trade struct {
	Profit    Money
	CloseDate string    // as found in the ledger
	Day       date.Date // zero when CloseDate is not recognized
}

// Dated reports whether the close date was recognized.
func (t Trade) Dated() bool { return !t.Day.IsZero() }

// ParseTrades keeps the rows with a numeric profit.
//
// Rows without a numeric profit are skipped. Rows with an unrecognized close
// date are kept, they count in the statistics but not in the series, and are
// reported as skipped from the series.
func ParseTrades(rows []Row, columns Columns, currency string) ([]Trade, []Skip) {
	columns = columns.withDefaults()
	trades := make([]Trade, 0, len(rows))
	var skipped []Skip
	for i, row := range rows {
		profit, ok := row.Number(columns.Profit)
		if !ok {
			skipped = append(skipped, Skip{Sheet: TradeSheet, Row: i, Column: columns.Profit, Reason: "missing or not numeric"})
			continue
		}
		t := Trade{Profit: M(profit, currency)}
		t.CloseDate, _ = row.Text(columns.CloseDate)
		if day, err := date.ParseLedger(t.CloseDate); err == nil {
			t.Day = day
		} else {
			skipped = append(skipped, Skip{Sheet: TradeSheet, Row: i, Column: columns.CloseDate, Reason: "unrecognized date, left out of the series"})
		}
		trades = append(trades, t)
	}
	return trades, skipped
}
