package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tradeledger"
	"github.com/etnz/tradeledger/date"
)

// Summary is the data rendered by the summary report.
type Summary struct {
	Title       string             `json:"title"`
	Stats       *tradeledger.Stats `json:"stats"`
	Daily       *Series            `json:"daily"`
	Monthly     *Series            `json:"monthly"`
	Skipped     []tradeledger.Skip `json:"skipped"`
	ShowSkipped bool               `json:"showSkipped"`
}

// NewSummary prepares the summary of s for rendering.
func NewSummary(s *tradeledger.Stats, opts SummaryOptions) *Summary {
	return &Summary{
		Title:       "Trade Ledger Summary",
		Stats:       s,
		Daily:       NewSeries(s, date.Daily),
		Monthly:     NewSeries(s, date.Monthly),
		Skipped:     s.Skipped,
		ShowSkipped: opts.ShowSkipped,
	}
}

// Series is a table of buckets.
type Series struct {
	Title     string               `json:"title"`
	Period    string               `json:"period"`
	Buckets   []tradeledger.Bucket `json:"buckets"`
	HasEquity bool                 `json:"hasEquity"`
}

// NewSeries prepares the buckets of period p.
func NewSeries(s *tradeledger.Stats, p date.Period) *Series {
	return &Series{
		Title:     fmt.Sprintf("%s Series", titleOf(p)),
		Period:    p.String(),
		Buckets:   s.Series(p),
		HasEquity: s.HasEquity(),
	}
}

// Equity is the data rendered by the equity report.
type Equity struct {
	Title    string                    `json:"title"`
	Currency string                    `json:"currency"`
	Initial  tradeledger.Money         `json:"initial"`
	Points   []tradeledger.EquityPoint `json:"points"`
}

// NewEquity prepares the equity series of s.
func NewEquity(s *tradeledger.Stats) *Equity {
	return &Equity{
		Title:    "Realized Equity",
		Currency: s.Currency,
		Initial:  s.InitialBalance,
		Points:   s.Equity,
	}
}

func titleOf(p date.Period) string {
	name := p.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
