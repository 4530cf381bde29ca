package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/tradeledger"
	"google.golang.org/genai"
)

func stats() *tradeledger.Stats {
	return tradeledger.Analyze(
		[]tradeledger.Row{
			{"Profit(USD)": 100.0, "Close Date": "01/01/2024 10:00:00"},
			{"Profit(USD)": -40.0, "Close Date": "02/01/2024 10:00:00"},
		},
		[]tradeledger.Row{
			{"Date": "01/01/2024 00:00:00", "Balance": 1000.0, "Realized Equity": 1000.0},
		},
	)
}

func TestTools(t *testing.T) {
	lib := NewLibrary(Tools(stats()))
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"get_summary", nil, "| Total trades | 2 |"},
		{"get_series", map[string]any{"period": "weekly"}, "## Weekly Series"},
		{"get_series", map[string]any{"period": "month"}, "| 2024-01 |"},
		{"get_equity", nil, "| 2024-01-01 | $1,000.00 |"},
		{"get_topic", map[string]any{"topic": "dates"}, "# Dates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: tt.name, Args: tt.args})
			if resp.ID != "1" || resp.Name != tt.name {
				t.Errorf("response = %s/%s, want 1/%s", resp.ID, resp.Name, tt.name)
			}
			got, _ := resp.Response["output"].(string)
			if !strings.Contains(got, tt.want) {
				t.Errorf("%s(%v) = %v, want it to contain %q", tt.name, tt.args, resp.Response, tt.want)
			}
		})
	}
}

func TestTools_Errors(t *testing.T) {
	lib := NewLibrary(Tools(stats()))
	tests := []struct {
		name string
		args map[string]any
	}{
		{"get_series", map[string]any{"period": "hourly"}},
		{"get_series", map[string]any{"period": 3}},
		{"get_topic", map[string]any{"topic": "nothing"}},
		{"get_weather", nil},
	}
	for _, tt := range tests {
		resp := lib(context.Background(), &genai.FunctionCall{Name: tt.name, Args: tt.args})
		if _, ok := resp.Response["error"].(string); !ok {
			t.Errorf("%s(%v) = %v, want an error", tt.name, tt.args, resp.Response)
		}
	}
}

func TestDeclarations(t *testing.T) {
	a := New(nil, strings.NewReader(""), NewAnalyst(stats()), NewTrader())
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Analyst" || decls[1].Name != "Trader" {
		t.Errorf("facilitator declarations = %v, want Analyst and Trader", decls)
	}
	resp := a.Facilitator.Library(context.Background(), &genai.FunctionCall{Name: "Analyst", Args: map[string]any{"question": 3}})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("asking a non string question = %v, want an error", resp.Response)
	}
}

func TestPrompts_NeutralPronouns(t *testing.T) {
	analyst := NewAnalyst(stats())
	experts := []*Expert{newFacilitator(analyst), NewTrader(), analyst}
	for _, e := range experts {
		text := e.Description
		for _, p := range e.Config.SystemInstruction.Parts {
			text += " " + p.Text
		}
		for _, w := range strings.Fields(strings.ToLower(text)) {
			switch strings.Trim(w, ".,:;'\"`") {
			case "he", "his", "him", "she", "her", "hers":
				t.Errorf("%s prompt uses %q", e.Name, w)
			}
		}
	}
}
