package workbook

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tradeledger"
)

// SelectJSON returns the rows found at a JSONPath expression in a decoded
// JSON document, e.g. "$.report.closed[*]".
func SelectJSON(doc any, expr string) ([]tradeledger.Row, error) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", expr, err)
	}
	// a path to an array of rows can be returned wrapped in a list of one answer
	if list, ok := v.([]any); ok && len(list) == 1 {
		if inner, ok := list[0].([]any); ok {
			v = inner
		}
	}
	rows, err := toRows(v)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", expr, err)
	}
	return rows, nil
}

// Select builds a workbook out of a nested JSON export. Each sheet is
// selected by its JSONPath expression.
func Select(path string, exprs map[string]string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	w := New()
	for name, expr := range exprs {
		rows, err := SelectJSON(doc, expr)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		w.Add(name, rows)
	}
	return w, nil
}
