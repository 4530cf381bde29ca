package tradeledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAnalyze_InvalidProfitIsSkipped(t *testing.T) {
	rows := []Row{
		trade(100.0, "01/01/2024 10:00:00"),
		trade("", "01/01/2024 11:00:00"),
		trade(-40.0, "02/01/2024 10:00:00"),
	}
	s := Analyze(rows, nil)

	if s.TotalTrades != 2 {
		t.Errorf("TotalTrades = %d, want 2", s.TotalTrades)
	}
	if !s.TotalProfit.Equal(USD(60)) {
		t.Errorf("TotalProfit = %v, want 60", s.TotalProfit.Decimal())
	}
	if len(s.Daily) != 2 || s.Daily[0].Trades != 1 {
		t.Errorf("Daily = %+v, want two days with one trade each", s.Daily)
	}
	if len(s.Skipped) != 1 || s.Skipped[0].Row != 1 || s.Skipped[0].Column != "Profit(USD)" {
		t.Errorf("Skipped = %v, want row 1 profit", s.Skipped)
	}
}

func TestAnalyze_InvalidRowsDoNotChangeStats(t *testing.T) {
	valid := []Row{
		trade(12.0, "01/01/2024 10:00:00"),
		trade(-7.5, "01/01/2024 11:00:00"),
		trade(3.0, "05/02/2024 10:00:00"),
		trade(8.0, "06/02/2024 10:00:00"),
	}
	invalid := []Row{
		trade("", "01/01/2024 10:00:00"),
		trade("abc", "01/01/2024 10:00:00"),
		trade(nil, "01/01/2024 10:00:00"),
		{"Close Date": "02/02/2024 10:00:00"},
		{"Profit": 1000.0, "Close Date": "02/02/2024 10:00:00"},
		trade(true, "03/02/2024 10:00:00"),
	}

	base := Analyze(valid, nil)
	mixed := Analyze(append(append([]Row{}, invalid[:3]...), append(valid, invalid[3:]...)...), nil)

	if diff := cmp.Diff(base, mixed, cmpOptions, cmpopts.IgnoreFields(Stats{}, "Skipped")); diff != "" {
		t.Errorf("invalid rows changed the statistics (-valid +mixed):\n%s", diff)
	}
	if len(mixed.Skipped) != len(invalid) {
		t.Errorf("len(Skipped) = %d, want %d", len(mixed.Skipped), len(invalid))
	}
}

func TestAnalyze_EquityScenario(t *testing.T) {
	trades := []Row{
		trade(60.0, "01/01/2024 15:00:00"),
		trade(40.0, "02/01/2024 15:00:00"),
		trade(5.0, "05/01/2024 15:00:00"),
	}
	equity := []Row{
		snapshot("01/01/2024 00:00:00", 1000.0, 1000.0),
		snapshot("02/01/2024 00:00:00", 1000.0, 1100.0),
	}
	s := Analyze(trades, equity)

	if !s.InitialBalance.Equal(USD(1000)) {
		t.Errorf("InitialBalance = %v, want 1000", s.InitialBalance.Decimal())
	}
	wantChanges := []Percent{0, 10, Percent(100.0 * 5 / 1100)}
	wantSources := []Source{FromEquity, FromEquity, FromTrades}
	for i, b := range s.Daily {
		if !b.Change.Equal(wantChanges[i]) || b.Source != wantSources[i] {
			t.Errorf("Daily[%d] change = %v from %v, want %v from %v", i, b.Change, b.Source, wantChanges[i], wantSources[i])
		}
	}
}

func TestAnalyze_Empty(t *testing.T) {
	s := Analyze([]Row{}, []Row{})
	if s.TotalTrades != 0 || s.ProfitableTrades != 0 || s.LosingTrades != 0 || s.BreakEvenTrades != 0 {
		t.Errorf("counts = %d/%d/%d/%d, want all zero", s.TotalTrades, s.ProfitableTrades, s.LosingTrades, s.BreakEvenTrades)
	}
	if s.WinRate != 0 || !s.TotalProfit.IsZero() || !s.InitialBalance.IsZero() {
		t.Errorf("WinRate, TotalProfit, InitialBalance = %v, %v, %v, want zeros", s.WinRate, s.TotalProfit.Decimal(), s.InitialBalance.Decimal())
	}
	if len(s.Daily) != 0 || len(s.Monthly) != 0 || len(s.Equity) != 0 || len(s.Skipped) != 0 {
		t.Errorf("series = %v, %v, %v, %v, want empty", s.Daily, s.Monthly, s.Equity, s.Skipped)
	}
}

func TestAnalyze_Options(t *testing.T) {
	rows := []Row{{"P&L": "10", "Closed": "01/01/2024"}}
	s := Analyze(rows, nil,
		WithColumns(Columns{Profit: "P&L", CloseDate: "Closed"}),
		WithCurrency("EUR"),
		WithDaysPerYear(252),
	)
	if s.TotalTrades != 1 || len(s.Daily) != 1 {
		t.Fatalf("TotalTrades, len(Daily) = %d, %d, want 1, 1", s.TotalTrades, len(s.Daily))
	}
	if s.Currency != "EUR" || s.TotalProfit.Currency() != "EUR" {
		t.Errorf("Currency = %q, %q, want EUR", s.Currency, s.TotalProfit.Currency())
	}
	if !s.ProjectedAnnualIncome.Equal(M(2520, "EUR")) {
		t.Errorf("ProjectedAnnualIncome = %v, want 2520", s.ProjectedAnnualIncome.Decimal())
	}
}
