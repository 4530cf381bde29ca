package workbook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const nestedJSON = `{
  "account": {"id": "demo"},
  "report": {
    "closed": [
      {"Profit(USD)": 10, "Close Date": "01/01/2024"},
      {"Profit(USD)": -4, "Close Date": "02/01/2024"}
    ],
    "activity": [
      {"Date": "01/01/2024", "Balance": 500, "Realized Equity": 500}
    ]
  }
}`

func decodeDoc(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestSelectJSON(t *testing.T) {
	doc := decodeDoc(t, nestedJSON)
	tests := []struct {
		expr    string
		want    int
		wantErr bool
	}{
		{"$.report.closed", 2, false},
		{"$.report.closed[*]", 2, false},
		{"$.report.activity[0]", 1, false},
		{"$.account.id", 0, true},
		{"$.report.missing", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			rows, err := SelectJSON(doc, tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SelectJSON(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if len(rows) != tt.want {
				t.Errorf("SelectJSON(%q) = %d rows, want %d", tt.expr, len(rows), tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(nestedJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Select(path, map[string]string{
		"trades": "$.report.closed",
		"equity": "$.report.activity",
	})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	trades, err := w.Sheet("trades")
	if err != nil || len(trades) != 2 {
		t.Errorf("Sheet(trades) = %d rows, %v, want 2 rows", len(trades), err)
	}
	if got := w.Optional("equity"); len(got) != 1 {
		t.Errorf("Optional(equity) = %d rows, want 1", len(got))
	}
}
