// Package workbook decodes spreadsheet exports into named sheets of rows.
//
// A workbook is either a JSON document mapping sheet names to arrays of row
// objects, as written by most sheet-to-json exporters, or a set of CSV files,
// one per sheet.
package workbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/tradeledger"
	"github.com/gocarina/gocsv"
)

var (
	// ErrMissingSheet is returned when a required sheet is absent.
	ErrMissingSheet = errors.New("missing sheet")
	// ErrUnknownFormat is returned for files that are neither JSON nor CSV.
	ErrUnknownFormat = errors.New("unknown workbook format")
)

// Format is a workbook encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
)

// FormatOf returns the format of a file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".csv":
		return CSV, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Workbook is a set of named sheets.
type Workbook struct {
	sheets map[string][]tradeledger.Row
}

// New returns an empty workbook.
func New() *Workbook {
	return &Workbook{sheets: make(map[string][]tradeledger.Row)}
}

// Add sets the rows of a sheet, replacing any previous sheet of that name.
func (w *Workbook) Add(name string, rows []tradeledger.Row) {
	w.sheets[name] = rows
}

// Names returns the sheet names in alphabetical order.
func (w *Workbook) Names() []string {
	names := make([]string, 0, len(w.sheets))
	for name := range w.sheets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sheet returns the rows of a required sheet.
func (w *Workbook) Sheet(name string) ([]tradeledger.Row, error) {
	rows, ok := w.sheets[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingSheet)
	}
	return rows, nil
}

// Optional returns the rows of a sheet, or nil if it is absent.
func (w *Workbook) Optional(name string) []tradeledger.Row {
	return w.sheets[name]
}

// Decode reads a workbook from r.
//
// JSON documents hold every sheet, numbers are kept exact. A CSV document
// holds a single sheet stored under name.
func Decode(r io.Reader, format Format, name string) (*Workbook, error) {
	switch format {
	case JSON:
		return decodeJSON(r)
	case CSV:
		rows, err := decodeCSV(r)
		if err != nil {
			return nil, err
		}
		w := New()
		w.Add(name, rows)
		return w, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func decodeJSON(r io.Reader) (*Workbook, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode json workbook: %w", err)
	}
	w := New()
	for name, sheet := range doc {
		rows, err := toRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		w.Add(name, rows)
	}
	return w, nil
}

func decodeCSV(r io.Reader) ([]tradeledger.Row, error) {
	records, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode csv sheet: %w", err)
	}
	rows := make([]tradeledger.Row, len(records))
	for i, rec := range records {
		row := make(tradeledger.Row, len(rec))
		for k, v := range rec {
			row[k] = v
		}
		rows[i] = row
	}
	return rows, nil
}

// toRows converts a decoded JSON array into rows.
// Elements that are not objects become empty rows so that row positions are kept.
func toRows(v any) ([]tradeledger.Row, error) {
	switch v := v.(type) {
	case []any:
		rows := make([]tradeledger.Row, len(v))
		for i, e := range v {
			obj, _ := e.(map[string]any)
			rows[i] = tradeledger.Row(obj)
			if rows[i] == nil {
				rows[i] = tradeledger.Row{}
			}
		}
		return rows, nil
	case map[string]any:
		return []tradeledger.Row{v}, nil
	default:
		return nil, fmt.Errorf("not an array of rows but %T", v)
	}
}

// Open reads a workbook file.
//
// A JSON file holds every sheet. A CSV file becomes a single sheet named after
// the file. A directory is read as one sheet per CSV file it contains.
func Open(path string) (*Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	if info.IsDir() {
		return openDir(path)
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	w, err := Decode(f, format, sheetName(path))
	if err != nil {
		return nil, fmt.Errorf("could not read workbook %q: %w", path, err)
	}
	return w, nil
}

// OpenSheet reads a single CSV file as the sheet name. Other paths are read
// by Open.
func OpenSheet(path, name string) (*Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	if format, err := FormatOf(path); err != nil || format != CSV || info.IsDir() {
		return Open(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	w, err := Decode(f, CSV, name)
	if err != nil {
		return nil, fmt.Errorf("could not read workbook %q: %w", path, err)
	}
	return w, nil
}

func openDir(dir string) (*Workbook, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("could not list sheets in %q: %w", dir, err)
	}
	w := New()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open sheet: %w", err)
		}
		rows, err := decodeCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("could not read sheet %q: %w", path, err)
		}
		w.Add(sheetName(path), rows)
	}
	return w, nil
}

// sheetName is the file name without its extension.
func sheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
