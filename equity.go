package tradeledger

import (
	"slices"
	"time"

	"github.com/etnz/tradeledger/date"
)

// Snapshot is one account activity row.
type Snapshot struct {
	Instant        time.Time
	Day            date.Date
	Balance        Money
	RealizedEquity Money
}

// ParseSnapshots reads the equity rows and sorts them chronologically.
//
// Rows with an unrecognized date are skipped. Missing or non numeric balance
// and equity are read as zero. Rows sharing the same instant keep their
// sheet order.
func ParseSnapshots(rows []Row, columns Columns, currency string) ([]Snapshot, []Skip) {
	columns = columns.withDefaults()
	snaps := make([]Snapshot, 0, len(rows))
	var skipped []Skip
	for i, row := range rows {
		text, _ := row.Text(columns.Date)
		instant, err := date.ParseInstant(text)
		if err != nil {
			skipped = append(skipped, Skip{Sheet: EquitySheet, Row: i, Column: columns.Date, Reason: "unrecognized date"})
			continue
		}
		balance, _ := row.Number(columns.Balance)
		equity, _ := row.Number(columns.RealizedEquity)
		snaps = append(snaps, Snapshot{
			Instant:        instant,
			Day:            date.New(instant.Date()),
			Balance:        M(balance, currency),
			RealizedEquity: M(equity, currency),
		})
	}
	slices.SortStableFunc(snaps, func(a, b Snapshot) int { return a.Instant.Compare(b.Instant) })
	return snaps, skipped
}

// InitialBalance returns the balance of the first snapshot, or zero.
func InitialBalance(snaps []Snapshot, currency string) Money {
	if len(snaps) == 0 {
		return Money{cur: currency}
	}
	return snaps[0].Balance
}

// EquitySeries reduces chronologically sorted snapshots to the last realized
// equity of each day, with its day-over-day change.
func EquitySeries(snaps []Snapshot) []EquityPoint {
	days := new(date.History[Money])
	for _, s := range snaps {
		days.Append(s.Day, s.RealizedEquity)
	}
	points := make([]EquityPoint, 0, days.Len())
	for on, equity := range days.Values() {
		points = append(points, EquityPoint{Day: on, Equity: equity})
	}
	changes := EquityChanges(points, date.Daily)
	for i := range points {
		points[i].Change = changes[date.Daily.Key(points[i].Day)]
	}
	return points
}

// EquityChanges returns the percent change of the equity from one period to
// the next, keyed by period. The first period has a zero change. The value of
// a period is the one of its last day.
func EquityChanges(points []EquityPoint, p date.Period) map[string]Percent {
	type level struct {
		key    string
		equity Money
	}
	levels := make([]level, 0, len(points))
	for _, pt := range points {
		key := p.Key(pt.Day)
		if n := len(levels); n > 0 && levels[n-1].key == key {
			levels[n-1].equity = pt.Equity
			continue
		}
		levels = append(levels, level{key: key, equity: pt.Equity})
	}

	changes := make(map[string]Percent, len(levels))
	for i, l := range levels {
		if i == 0 {
			changes[l.key] = 0
			continue
		}
		prev := levels[i-1].equity
		changes[l.key] = percentOf(l.equity.Sub(prev), prev)
	}
	return changes
}

// Reconcile returns a copy of stats with the equity series set and the
// percent change of the daily and monthly buckets replaced by the equity
// change of the same day or month. Buckets without equity data keep the
// trade based change. stats is left untouched.
func Reconcile(stats *Stats, snaps []Snapshot) *Stats {
	r := stats.clone()
	r.Equity = EquitySeries(snaps)
	patch(r.Daily, EquityChanges(r.Equity, date.Daily))
	patch(r.Monthly, EquityChanges(r.Equity, date.Monthly))
	r.settle()
	return r
}

// patch overwrites the change of the buckets found in changes.
func patch(buckets []Bucket, changes map[string]Percent) {
	for i := range buckets {
		if c, ok := changes[buckets[i].Key]; ok {
			buckets[i].Change = c
			buckets[i].Source = FromEquity
		}
	}
}
