package tradeledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one decoded sheet row: column name to raw cell value.
// Values are expected to be strings or numbers, anything else is treated as missing.
type Row map[string]any

// Columns holds the column names used to read the trade and equity sheets.
type Columns struct {
	Profit         string `mapstructure:"profit" json:"profit"`
	CloseDate      string `mapstructure:"close_date" json:"close_date"`
	Date           string `mapstructure:"date" json:"date"`
	Balance        string `mapstructure:"balance" json:"balance"`
	RealizedEquity string `mapstructure:"realized_equity" json:"realized_equity"`
}

// DefaultColumns are the column names of the broker's ledger export.
var DefaultColumns = Columns{
	Profit:         "Profit(USD)",
	CloseDate:      "Close Date",
	Date:           "Date",
	Balance:        "Balance",
	RealizedEquity: "Realized Equity",
}

// withDefaults fills empty names from DefaultColumns.
func (c Columns) withDefaults() Columns {
	fill := func(s *string, def string) {
		if strings.TrimSpace(*s) == "" {
			*s = def
		}
	}
	fill(&c.Profit, DefaultColumns.Profit)
	fill(&c.CloseDate, DefaultColumns.CloseDate)
	fill(&c.Date, DefaultColumns.Date)
	fill(&c.Balance, DefaultColumns.Balance)
	fill(&c.RealizedEquity, DefaultColumns.RealizedEquity)
	return c
}

// Number returns the decimal value of a column.
// It reports false when the column is absent, empty or not numeric.
func (r Row) Number(column string) (decimal.Decimal, bool) {
	raw, ok := r[column]
	if !ok || raw == nil {
		return decimal.Zero, false
	}
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return moneyFromFloat(v)
	case float32:
		return moneyFromFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case int32:
		return decimal.NewFromInt(int64(v)), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// Text returns the textual value of a column. Numbers are formatted.
func (r Row) Text(column string) (string, bool) {
	raw, ok := r[column]
	if !ok || raw == nil {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Skip records a row left out of a computation.
type Skip struct {
	Sheet  string `json:"sheet"`
	Row    int    `json:"row"` // zero based position in the sheet
	Column string `json:"column"`
	Reason string `json:"reason"`
}

func (s Skip) String() string {
	return fmt.Sprintf("%s row %d: %s %s", s.Sheet, s.Row, s.Column, s.Reason)
}
