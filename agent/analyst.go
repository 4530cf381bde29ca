package agent

import (
	"context"
	"fmt"

	"github.com/etnz/tradeledger"
	"github.com/etnz/tradeledger/date"
	"github.com/etnz/tradeledger/docs"
	"github.com/etnz/tradeledger/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a trader reviewing the results of their trading account.
			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Never make up figures: every amount you give comes from the Analyst.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search for market context.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		very well aware of the markets, the instruments and the trading practices.
		Ask the Trader whenever you need recent news or a judgment on a trading performance.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in Trading, you can search and find about anything related to
			markets, instruments, brokers and trading practices. You leverage Google Search to
			ground your assertions in a solid truth.
			You know what good and bad figures are for a win rate, a profit factor or a drawdown.
			`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the computed statistics s.
func NewAnalyst(s *tradeledger.Stats) *Expert {
	lib := Tools(s)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. The Analyst knows the statistics computed from the user's trade ledger:
		counts, win rate, profits, daily, weekly, monthly, quarterly and yearly series, the realized equity.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst of the user's trade ledger.
				You know how to use the Tools to extract the relevant figures about the user's trading.
				You are part of a team of experts, yours is everything about the user's results. They might ask
				you questions in an approximative language, figure out what they meant.

				Quote the figures as the Tools return them, and explain how they are computed when asked,
				the "statistics" and "equity" documentation topics describe it.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions answering questions about s.
func Tools(s *tradeledger.Stats) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "get_summary",
				Description: "get_summary returns the statistics of the trade ledger: counts, win rate, profits, drawdown, best and worst days.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown document with the statistics tables.",
				},
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				return success(id, "get_summary", renderer.RenderSummary(s, renderer.SummaryOptions{SkipSeries: true, ShowSkipped: true}))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "get_series",
				Description: "get_series returns the profit, cumulative profit, balance and change of each period with trades.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"period": {
							Type:        genai.TypeString,
							Description: "The period of the series.\n\n" + must(docs.GetTopic("periods")),
							Enum:        []string{"daily", "weekly", "monthly", "quarterly", "yearly"},
						},
					},
					Required: []string{"period"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table with one row per period.",
				},
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				p, err := parsePeriod(args)
				if err != nil {
					return failure(id, "get_series", err)
				}
				return success(id, "get_series", renderer.RenderSeries(s, p))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "get_equity",
				Description: "get_equity returns the realized equity at the end of each day with snapshots, and its day-over-day change.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table with one row per day.",
				},
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				return success(id, "get_equity", renderer.RenderEquity(s))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "get_topic",
				Description: "get_topic returns a topic of the user manual, \"readme\" lists them.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"topic": {Type: genai.TypeString, Description: "The topic name."},
					},
					Required: []string{"topic"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The markdown content of the topic.",
				},
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				topic, _ := args["topic"].(string)
				content, err := docs.GetTopic(topic)
				if err != nil {
					return failure(id, "get_topic", err)
				}
				return success(id, "get_topic", content)
			},
		},
	}
}

func parsePeriod(args map[string]any) (date.Period, error) {
	iperiod, ok := args["period"]
	if !ok {
		return date.Daily, nil
	}
	speriod, ok := iperiod.(string)
	if !ok {
		return date.Daily, fmt.Errorf("argument 'period' is not a string as expected but %T", iperiod)
	}
	return date.ParsePeriod(speriod)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
