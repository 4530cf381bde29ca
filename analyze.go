package tradeledger

// DefaultDaysPerYear is the number of days used to project the annual income.
const DefaultDaysPerYear = 365

// DefaultCurrency is the currency of the ledger's profit column.
const DefaultCurrency = "USD"

type config struct {
	columns     Columns
	currency    string
	daysPerYear int
}

// Option configures an analysis.
type Option func(*config)

// WithColumns sets the column names to read. Empty names keep their default.
func WithColumns(c Columns) Option { return func(cfg *config) { cfg.columns = c.withDefaults() } }

// WithCurrency sets the currency used to display amounts.
func WithCurrency(currency string) Option {
	return func(cfg *config) {
		if currency != "" {
			cfg.currency = currency
		}
	}
}

// WithDaysPerYear sets the number of days used for the annual projection.
func WithDaysPerYear(days int) Option {
	return func(cfg *config) {
		if days > 0 {
			cfg.daysPerYear = days
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		columns:     DefaultColumns,
		currency:    DefaultCurrency,
		daysPerYear: DefaultDaysPerYear,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Analyze computes the statistics of a trade ledger.
//
// The earliest equity snapshot seeds the initial balance (zero without
// equity rows), the trades are aggregated, and the equity changes replace
// the trade based percent changes wherever they exist.
// Malformed rows are never fatal, they are listed in Stats.Skipped.
func Analyze(tradeRows, equityRows []Row, opts ...Option) *Stats {
	cfg := newConfig(opts...)

	snaps, equitySkips := ParseSnapshots(equityRows, cfg.columns, cfg.currency)
	initial := InitialBalance(snaps, cfg.currency)

	trades, tradeSkips := ParseTrades(tradeRows, cfg.columns, cfg.currency)
	stats := Reconcile(Aggregate(trades, initial, opts...), snaps)
	stats.Skipped = append(tradeSkips, equitySkips...)
	return stats
}
