package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tradeledger"
	"github.com/etnz/tradeledger/workbook"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

const ledger = `{
  "trades": [
    {"Profit(USD)": 100, "Close Date": "01/01/2024 10:00:00"},
    {"Profit(USD)": "", "Close Date": "01/01/2024 11:00:00"},
    {"Profit(USD)": -40, "Close Date": "02/01/2024 10:00:00"}
  ],
  "equity": [
    {"Date": "01/01/2024 00:00:00", "Balance": 1000, "Realized Equity": 1000},
    {"Date": "02/01/2024 00:00:00", "Balance": 1000, "Realized Equity": 1100}
  ]
}`

// setup writes the ledger in a temporary directory, used as the current directory.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return writeFile(t, dir, "ledger.json", ledger)
}

func flags(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestAnalyze(t *testing.T) {
	path := setup(t)
	s, err := analyze(flags(t, path))
	if err != nil {
		t.Fatalf("analyze() error = %v", err)
	}
	if s.TotalTrades != 2 || len(s.Skipped) != 1 || !s.HasEquity() {
		t.Errorf("analyze() = %d trades, %d skipped, equity %v, want 2, 1, true", s.TotalTrades, len(s.Skipped), s.HasEquity())
	}
}

func TestAnalyze_WorkbookFromConfig(t *testing.T) {
	path := setup(t)
	writeFile(t, filepath.Dir(path), "tstat.yaml", "workbook: ledger.json\ncurrency: EUR\n")
	s, err := analyze(flags(t))
	if err != nil {
		t.Fatalf("analyze() error = %v", err)
	}
	if s.Currency != "EUR" || s.TotalTrades != 2 {
		t.Errorf("analyze() = %s, %d trades, want EUR, 2", s.Currency, s.TotalTrades)
	}
}

func TestAnalyze_LoneCSV(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "ledger.csv", "Profit(USD),Close Date\n10,01/01/2024 10:00:00\n-4,02/01/2024 9:05:00 AM\n")
	s, err := analyze(flags(t, path))
	if err != nil {
		t.Fatalf("analyze() error = %v", err)
	}
	if s.TotalTrades != 2 || len(s.Daily) != 2 || s.HasEquity() {
		t.Errorf("analyze() = %d trades, %d days, equity %v, want 2, 2, false", s.TotalTrades, len(s.Daily), s.HasEquity())
	}
}

func TestAnalyze_Errors(t *testing.T) {
	path := setup(t)
	if _, err := analyze(flags(t)); err == nil {
		t.Error("analyze() without workbook error = nil, want an error")
	}
	writeFile(t, filepath.Dir(path), "tstat.yaml", "sheets:\n  trades: Closed\n")
	if _, err := analyze(flags(t, path)); !errors.Is(err, workbook.ErrMissingSheet) {
		t.Errorf("analyze() error = %v, want ErrMissingSheet", err)
	}
}

func TestLogSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logSkipped(zap.New(core), []tradeledger.Skip{
		{Sheet: tradeledger.TradeSheet, Row: 1, Column: "Profit(USD)", Reason: "missing or not numeric"},
		{Sheet: tradeledger.EquitySheet, Row: 4, Column: "Date", Reason: "unrecognized date"},
	})
	if got := logs.FilterMessage("row skipped").Len(); got != 2 {
		t.Errorf("debug entries = %d, want 2", got)
	}
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warns) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(warns))
	}
	fields := warns[0].ContextMap()
	if fields["trades"] != int64(1) || fields["equity"] != int64(1) {
		t.Errorf("warn fields = %v, want one skip per sheet", fields)
	}

	core, logs = observer.New(zapcore.DebugLevel)
	logSkipped(zap.New(core), nil)
	if logs.Len() != 0 {
		t.Errorf("logSkipped(nil) logged %d entries, want none", logs.Len())
	}
}

func TestEncode(t *testing.T) {
	path := setup(t)
	s, err := analyze(flags(t, path))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, "json", s); err != nil {
		t.Fatalf("encode(json) error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("encode(json) is not json: %v", err)
	}
	if decoded["totalTrades"] != 2.0 || decoded["totalProfit"] != 60.0 {
		t.Errorf("encode(json) = %v, want totalTrades 2, totalProfit 60", decoded)
	}
	daily, _ := decoded["daily"].([]any)
	if len(daily) != 2 {
		t.Fatalf("encode(json) daily = %v, want 2 buckets", decoded["daily"])
	}
	if first, _ := daily[0].(map[string]any); first["source"] != "equity" || first["start"] != "2024-01-01" {
		t.Errorf("encode(json) first bucket = %v, want source equity on 2024-01-01", first)
	}

	buf.Reset()
	if err := encode(&buf, "yaml", s); err != nil {
		t.Fatalf("encode(yaml) error = %v", err)
	}
	var y map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &y); err != nil {
		t.Fatalf("encode(yaml) is not yaml: %v", err)
	}
	if y["totalTrades"] != 2 || y["currency"] != "USD" {
		t.Errorf("encode(yaml) = %v, want totalTrades 2 in USD", y)
	}
}

func TestExportCmd(t *testing.T) {
	path := setup(t)
	out := filepath.Join(filepath.Dir(path), "stats.yaml")
	c := &exportCmd{format: "yaml", output: out}
	if got := c.Execute(context.Background(), flags(t, path)); got != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want success", got)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "totalTrades: 2") {
		t.Errorf("export output does not contain the trade count:\n%s", content)
	}

	c = &exportCmd{format: "xml"}
	if got := c.Execute(context.Background(), flags(t, path)); got != subcommands.ExitUsageError {
		t.Errorf("Execute(xml) = %v, want usage error", got)
	}
}

func TestSummaryCmd_HTML(t *testing.T) {
	path := setup(t)
	out := filepath.Join(filepath.Dir(path), "summary.html")
	c := &summaryCmd{html: out}
	if got := c.Execute(context.Background(), flags(t, path)); got != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want success", got)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "<table>") || !strings.Contains(string(content), "Trade Ledger Summary") {
		t.Errorf("summary HTML misses the report:\n%s", content)
	}
}

func TestSeriesCmd_UnknownPeriod(t *testing.T) {
	path := setup(t)
	c := &seriesCmd{period: "hourly"}
	if got := c.Execute(context.Background(), flags(t, path)); got != subcommands.ExitUsageError {
		t.Errorf("Execute(hourly) = %v, want usage error", got)
	}
}

func TestRenderMarkdown_NotTerminal(t *testing.T) {
	if got := renderMarkdown("# title\n", false); got != "# title\n" {
		t.Errorf("renderMarkdown() = %q, want the raw markdown", got)
	}
}
