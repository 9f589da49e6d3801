package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/commissions/internal/encoding"
)

// Format is the container a statement was uploaded in.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var zipMagic = []byte("PK\x03\x04")

// Statement is a parsed upload: its header and every data row in file order.
type Statement struct {
	Format        Format
	Header        []string
	CarrierColumn string
	Rows          []Row
}

// DetectFormat decides how to read an upload from its bytes and, failing that, its name.
func DetectFormat(data []byte, filename string) (Format, error) {
	if bytes.HasPrefix(data, zipMagic) {
		return FormatXLSX, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return "", fmt.Errorf("%w: legacy .xls workbooks", ErrUnsupportedFormat)
	}

	return FormatCSV, nil
}

// Read parses raw upload bytes. The first record is the header and must contain a column
// named "carrier" (trimmed, any case); otherwise the whole upload is rejected with
// ErrMissingCarrierColumn before anything is persisted. Header names are made unique so
// every cell of every row keeps a key.
func Read(data []byte, filename string) (*Statement, error) {
	format, err := DetectFormat(data, filename)
	if err != nil {
		return nil, err
	}

	var records [][]string

	switch format {
	case FormatXLSX:
		records, err = readXLSX(data)
	default:
		records, err = readCSV(data)
	}

	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrMissingCarrierColumn
	}

	header := uniqueHeader(records[0])

	carrierCol := ""

	for _, h := range header {
		if strings.EqualFold(h, "carrier") {
			carrierCol = h
			break
		}
	}

	if carrierCol == "" {
		return nil, ErrMissingCarrierColumn
	}

	stmt := &Statement{
		Format:        format,
		Header:        header,
		CarrierColumn: carrierCol,
		Rows:          make([]Row, 0, len(records)-1),
	}

	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}

		stmt.Rows = append(stmt.Rows, toRow(header, rec, i+2))
	}

	return stmt, nil
}

func readCSV(data []byte) ([][]string, error) {
	text, err := encoding.Decode(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return records, nil
}

// uniqueHeader trims header names and makes them distinct: a repeated "note" becomes
// "note_2", a blank name becomes "column_<position>".
func uniqueHeader(cells []string) []string {
	header := make([]string, len(cells))
	seen := make(map[string]bool, len(cells))

	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			name = positional(i)
		}

		header[i] = distinct(name, seen)
	}

	return header
}

func distinct(name string, seen map[string]bool) string {
	candidate := name
	for n := 2; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d", name, n)
	}

	seen[candidate] = true

	return candidate
}

func positional(i int) string {
	return fmt.Sprintf("column_%d", i+1)
}

// toRow pairs cells with header names. Short records leave trailing columns absent; cells
// beyond the header are kept under positional names added to that row's header.
func toRow(header, rec []string, line int) Row {
	row := Row{
		Line:   line,
		Header: header,
		Values: make(map[string]string, len(rec)),
	}

	for i, h := range header {
		if i >= len(rec) {
			break
		}

		row.Values[h] = rec[i]
	}

	if len(rec) <= len(header) {
		return row
	}

	seen := make(map[string]bool, len(rec))
	for _, h := range header {
		seen[h] = true
	}

	row.Header = make([]string, len(header), len(rec))
	copy(row.Header, header)

	for i := len(header); i < len(rec); i++ {
		name := distinct(positional(i), seen)
		row.Header = append(row.Header, name)
		row.Values[name] = rec[i]
	}

	return row
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
