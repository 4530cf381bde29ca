package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tradeledger"
	"github.com/etnz/tradeledger/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates, _ = fs.Sub(templateFS, "templates")

// SummaryOptions holds configuration for rendering a summary report.
type SummaryOptions struct {
	SkipSeries  bool // Do not render the daily and monthly tables.
	ShowSkipped bool // List every skipped row instead of their count.
}

// RenderSummary renders the statistics, the daily and the monthly series to a markdown string.
func RenderSummary(s *tradeledger.Stats, opts SummaryOptions) string {
	partials := map[string]string{
		"summary_title":   "summary_title.md",
		"summary_trades":  "summary_trades.md",
		"summary_income":  "summary_income.md",
		"summary_skipped": "summary_skipped.md",
		"series_table":    "series_table.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipSeries {
		partials["series_table"] = ""
	}
	return renderTemplate("summary", "summary.md", partials, NewSummary(s, opts))
}

// RenderSeries renders the buckets of any period to a markdown string.
func RenderSeries(s *tradeledger.Stats, p date.Period) string {
	partials := map[string]string{
		"series_table": "series_table.md",
	}
	return renderTemplate("series", "series.md", partials, NewSeries(s, p))
}

// RenderEquity renders the equity series to a markdown string.
func RenderEquity(s *tradeledger.Stats) string {
	return renderTemplate("equity", "equity.md", nil, NewEquity(s))
}

// HTML converts a markdown document into an HTML fragment.
// Tables and strikethrough follow GitHub flavored markdown.
func HTML(md string) (string, error) {
	conv := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := conv.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("could not convert markdown: %w", err)
	}
	return buf.String(), nil
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcs = template.FuncMap{
	"ratio": func(f float64) string { return fmt.Sprintf("%.2f", f) },
}
