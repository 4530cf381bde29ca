package tradeledger

import (
	"slices"

	"github.com/etnz/tradeledger/date"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// Aggregate computes the trade statistics and the daily and monthly series.
//
// Trades with an unrecognized close date count in the statistics but are
// left out of the series. The equity series is left empty, see Reconcile.
// Unless WithCurrency is given, the currency is the one of the amounts.
func Aggregate(trades []Trade, initialBalance Money, opts ...Option) *Stats {
	cfg := newConfig(append([]Option{WithCurrency(currencyOf(trades, initialBalance))}, opts...)...)
	zero := Money{cur: cfg.currency}
	s := &Stats{
		Currency:       cfg.currency,
		InitialBalance: initialBalance,
		DaysPerYear:    cfg.daysPerYear,
		TotalProfit:    zero,
		MaxProfit:      zero,
		MinProfit:      zero,
		AvgProfit:      zero,
		MedianProfit:   zero,
		StdDevProfit:   zero,
		AvgWin:         zero,
		AvgLoss:        zero,
		Daily:          []Bucket{},
		Monthly:        []Bucket{},
		Equity:         []EquityPoint{},
	}
	s.TotalTrades = len(trades)
	if s.TotalTrades == 0 {
		s.settle()
		return s
	}

	profits := make([]Money, 0, len(trades))
	wins, losses := zero, zero
	s.MaxProfit, s.MinProfit = trades[0].Profit, trades[0].Profit
	for _, t := range trades {
		p := t.Profit
		profits = append(profits, p)
		s.TotalProfit = s.TotalProfit.Add(p)
		switch {
		case p.IsPositive():
			s.ProfitableTrades++
			wins = wins.Add(p)
		case p.IsNegative():
			s.LosingTrades++
			losses = losses.Add(p)
		default:
			s.BreakEvenTrades++
		}
		if p.GreaterThan(s.MaxProfit) {
			s.MaxProfit = p
		}
		if p.LessThan(s.MinProfit) {
			s.MinProfit = p
		}
	}

	s.WinRate = Percent(100 * float64(s.ProfitableTrades) / float64(s.TotalTrades))
	s.AvgProfit = s.TotalProfit.DivInt(s.TotalTrades)
	s.MedianProfit = median(profits)
	s.StdDevProfit = stdDev(profits, cfg.currency)
	s.AvgWin = wins.DivInt(s.ProfitableTrades)
	s.AvgLoss = losses.DivInt(s.LosingTrades)
	if !losses.IsZero() {
		s.ProfitFactor = wins.Ratio(losses.Abs())
	}

	s.Daily = Rollup(dailyTotals(trades), date.Daily, initialBalance)
	s.Monthly = Rollup(s.Daily, date.Monthly, initialBalance)
	s.settle()
	return s
}

// currencyOf returns the first non empty currency of the amounts.
func currencyOf(trades []Trade, initialBalance Money) string {
	if c := initialBalance.Currency(); c != "" {
		return c
	}
	for _, t := range trades {
		if c := t.Profit.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// median returns the middle value, or the mean of the two middle values.
func median(values []Money) Money {
	if len(values) == 0 {
		return Money{}
	}
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b Money) int { return a.value.Cmp(b.value) })
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).DivInt(2)
}

// stdDev returns the population standard deviation.
func stdDev(values []Money, currency string) Money {
	data := make(stats.Float64Data, len(values))
	for i, v := range values {
		data[i] = v.AsFloat()
	}
	sd, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		// only on empty input
		return Money{cur: currency}
	}
	return Money{value: decimal.NewFromFloat(sd), cur: currency}
}

// dailyTotals groups the dated trades by day, in chronological order.
// The buckets only carry the profit and the trade count.
func dailyTotals(trades []Trade) []Bucket {
	days := new(date.History[Bucket])
	for _, t := range trades {
		if !t.Dated() {
			continue
		}
		days.Merge(t.Day, Bucket{Trades: 1, Profit: t.Profit}, func(a, b Bucket) Bucket {
			a.Trades += b.Trades
			a.Profit = a.Profit.Add(b.Profit)
			return a
		})
	}
	totals := make([]Bucket, 0, days.Len())
	for on, b := range days.Values() {
		b.Start = on
		totals = append(totals, b)
	}
	return totals
}

// Rollup groups chronologically sorted buckets by period and recomputes the
// running totals from initialBalance.
//
// Only Start, Trades and Profit are read from the input buckets.
func Rollup(buckets []Bucket, p date.Period, initialBalance Money) []Bucket {
	grouped := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		key := p.Key(b.Start)
		if n := len(grouped); n > 0 && grouped[n-1].Key == key {
			grouped[n-1].Trades += b.Trades
			grouped[n-1].Profit = grouped[n-1].Profit.Add(b.Profit)
			continue
		}
		grouped = append(grouped, Bucket{Key: key, Start: b.Start.StartOf(p), Trades: b.Trades, Profit: b.Profit})
	}
	return scan(grouped, initialBalance)
}

// running is the state threaded through the bucket series.
type running struct {
	cumulative Money // profit since the start of the series
	balance    Money // balance at the end of the previous bucket
}

// next folds one bucket into the running state.
func (r running) next(b Bucket) (Bucket, running) {
	b.CumulativeProfit = r.cumulative.Add(b.Profit)
	b.Balance = r.balance.Add(b.Profit)
	b.Change = percentOf(b.Profit, r.balance)
	b.Source = FromTrades
	return b, running{cumulative: b.CumulativeProfit, balance: b.Balance}
}

// scan computes the running totals of sorted buckets.
func scan(buckets []Bucket, initialBalance Money) []Bucket {
	state := running{cumulative: Money{cur: initialBalance.cur}, balance: initialBalance}
	out := make([]Bucket, len(buckets))
	for i, b := range buckets {
		out[i], state = state.next(b)
	}
	return out
}
