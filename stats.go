package tradeledger

import (
	"fmt"
	"slices"

	"github.com/etnz/tradeledger/date"
)

// Source tells which method produced a bucket's percent change.
type Source int

const (
	// FromTrades is the bucket profit over the previous bucket balance.
	FromTrades Source = iota
	// FromEquity is the change of the realized equity between two periods.
	FromEquity
)

func (s Source) String() string {
	switch s {
	case FromTrades:
		return "trades"
	case FromEquity:
		return "equity"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Bucket aggregates the trades closed within one period.
type Bucket struct {
	Key              string    `json:"key" yaml:"key"` // "2006-01-02" for days, "2006-01" for months
	Start            date.Date `json:"start" yaml:"start"`
	Trades           int       `json:"trades" yaml:"trades"`
	Profit           Money     `json:"profit" yaml:"profit"`
	CumulativeProfit Money     `json:"cumulativeProfit" yaml:"cumulativeProfit"`
	Balance          Money     `json:"balance" yaml:"balance"`
	Change           Percent   `json:"change" yaml:"change"`
	Source           Source    `json:"source" yaml:"source"`
}

// EquityPoint is the last realized equity known for a day.
type EquityPoint struct {
	Day    date.Date `json:"day" yaml:"day"`
	Equity Money     `json:"equity" yaml:"equity"`
	Change Percent   `json:"change" yaml:"change"` // day-over-day
}

// Stats is the outcome of a ledger analysis.
type Stats struct {
	Currency       string `json:"currency" yaml:"currency"`
	InitialBalance Money  `json:"initialBalance" yaml:"initialBalance"`
	DaysPerYear    int    `json:"daysPerYear" yaml:"daysPerYear"`

	TotalTrades      int     `json:"totalTrades" yaml:"totalTrades"`
	ProfitableTrades int     `json:"profitableTrades" yaml:"profitableTrades"`
	LosingTrades     int     `json:"losingTrades" yaml:"losingTrades"`
	BreakEvenTrades  int     `json:"breakEvenTrades" yaml:"breakEvenTrades"`
	WinRate          Percent `json:"winRate" yaml:"winRate"`

	TotalProfit  Money `json:"totalProfit" yaml:"totalProfit"`
	MaxProfit    Money `json:"maxProfit" yaml:"maxProfit"`
	MinProfit    Money `json:"minProfit" yaml:"minProfit"`
	AvgProfit    Money `json:"avgProfit" yaml:"avgProfit"`
	MedianProfit Money `json:"medianProfit" yaml:"medianProfit"`
	StdDevProfit Money `json:"stdDevProfit" yaml:"stdDevProfit"` // population

	AvgWin       Money   `json:"avgWin" yaml:"avgWin"`
	AvgLoss      Money   `json:"avgLoss" yaml:"avgLoss"`
	ProfitFactor float64 `json:"profitFactor" yaml:"profitFactor"` // 0 without losses

	AvgDailyProfit        Money `json:"avgDailyProfit" yaml:"avgDailyProfit"`
	ProjectedAnnualIncome Money `json:"projectedAnnualIncome" yaml:"projectedAnnualIncome"`

	MaxDrawdown        Money   `json:"maxDrawdown" yaml:"maxDrawdown"`
	MaxDrawdownPercent Percent `json:"maxDrawdownPercent" yaml:"maxDrawdownPercent"`
	BestDay            Bucket  `json:"bestDay" yaml:"bestDay"`
	WorstDay           Bucket  `json:"worstDay" yaml:"worstDay"`

	Range   date.Range    `json:"-" yaml:"-"`
	Daily   []Bucket      `json:"daily" yaml:"daily"`
	Monthly []Bucket      `json:"monthly" yaml:"monthly"`
	Equity  []EquityPoint `json:"equity" yaml:"equity"`
	Skipped []Skip        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Series returns the buckets for any period.
//
// Daily and monthly series are the ones computed by the analysis, other
// periods are rolled up from the daily series and patched with the equity
// changes of the same period.
func (s *Stats) Series(p date.Period) []Bucket {
	switch p {
	case date.Daily:
		return s.Daily
	case date.Monthly:
		return s.Monthly
	}
	buckets := Rollup(s.Daily, p, s.InitialBalance)
	patch(buckets, EquityChanges(s.Equity, p))
	return buckets
}

// HasEquity reports whether equity snapshots took part in the analysis.
func (s *Stats) HasEquity() bool { return len(s.Equity) > 0 }

// Final returns the balance after the last bucket.
func (s *Stats) Final() Money {
	if len(s.Daily) == 0 {
		return s.InitialBalance
	}
	return s.Daily[len(s.Daily)-1].Balance
}

// clone returns a copy that shares nothing mutable with s.
func (s *Stats) clone() *Stats {
	c := *s
	c.Daily = slices.Clone(s.Daily)
	c.Monthly = slices.Clone(s.Monthly)
	c.Equity = slices.Clone(s.Equity)
	c.Skipped = slices.Clone(s.Skipped)
	return &c
}

// settle computes the fields derived from the daily series.
func (s *Stats) settle() {
	zero := Money{cur: s.Currency}
	s.AvgDailyProfit, s.ProjectedAnnualIncome = zero, zero
	s.MaxDrawdown, s.MaxDrawdownPercent = zero, 0
	s.BestDay, s.WorstDay = Bucket{}, Bucket{}
	s.Range = date.Range{}
	if len(s.Daily) == 0 {
		return
	}

	s.Range = date.Range{From: s.Daily[0].Start, To: s.Daily[len(s.Daily)-1].Start}

	sum := zero
	s.BestDay, s.WorstDay = s.Daily[0], s.Daily[0]
	peak := s.InitialBalance
	for _, b := range s.Daily {
		sum = sum.Add(b.Profit)
		if b.Profit.GreaterThan(s.BestDay.Profit) {
			s.BestDay = b
		}
		if b.Profit.LessThan(s.WorstDay.Profit) {
			s.WorstDay = b
		}
		if b.Balance.GreaterThan(peak) {
			peak = b.Balance
		}
		if dd := peak.Sub(b.Balance); dd.GreaterThan(s.MaxDrawdown) {
			s.MaxDrawdown = dd
			if peak.IsPositive() {
				s.MaxDrawdownPercent = percentOf(dd, peak)
			}
		}
	}
	s.AvgDailyProfit = sum.DivInt(len(s.Daily))
	s.ProjectedAnnualIncome = s.AvgDailyProfit.MulInt(s.DaysPerYear)
}
