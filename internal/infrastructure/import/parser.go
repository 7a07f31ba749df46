// Package xlsximport parses uploaded Excel workbooks into rows keyed by
// canonical field names, tolerating the header spellings that real
// supplier sheets arrive with.
package xlsximport

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Canonical field names resolved from header synonyms
const (
	FieldCode        = "code"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldHeightCM    = "height_cm"
	FieldDepthCM     = "depth_cm"
	FieldWidthCM     = "width_cm"
	FieldCBM         = "cbm"
	FieldColor       = "color"
	FieldImage       = "image"
	FieldLocation    = "location"
	FieldContact     = "contact"
)

// headerSynonyms maps normalized header spellings to canonical fields.
// Unknown headers are ignored rather than rejected.
var headerSynonyms = map[string]string{
	"code":         FieldCode,
	"item code":    FieldCode,
	"product code": FieldCode,
	"sku":          FieldCode,

	"name":      FieldName,
	"item name": FieldName,

	"description": FieldDescription,
	"desc":        FieldDescription,
	"item":        FieldDescription,

	"category": FieldCategory,
	"type":     FieldCategory,

	"h":           FieldHeightCM,
	"height":      FieldHeightCM,
	"height (cm)": FieldHeightCM,
	"height cm":   FieldHeightCM,
	"h (cm)":      FieldHeightCM,

	"d":          FieldDepthCM,
	"depth":      FieldDepthCM,
	"depth (cm)": FieldDepthCM,
	"depth cm":   FieldDepthCM,
	"d (cm)":     FieldDepthCM,

	"w":          FieldWidthCM,
	"width":      FieldWidthCM,
	"width (cm)": FieldWidthCM,
	"width cm":   FieldWidthCM,
	"w (cm)":     FieldWidthCM,

	"cbm":    FieldCBM,
	"volume": FieldCBM,

	"color":  FieldColor,
	"colour": FieldColor,

	"image":     FieldImage,
	"image url": FieldImage,
	"photo":     FieldImage,
	"picture":   FieldImage,

	"location": FieldLocation,
	"address":  FieldLocation,

	"contact":        FieldContact,
	"contact person": FieldContact,
	"phone":          FieldContact,
}

// spreadsheetExtensions are the accepted upload file extensions
var spreadsheetExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// ValidExtension reports whether the filename has a spreadsheet extension
func ValidExtension(filename string) bool {
	return spreadsheetExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Row is one data row with cells keyed by canonical field name
type Row struct {
	// Line is the 1-based row number in the sheet, for error reporting
	Line   int
	values map[string]string
}

// Get returns the trimmed cell value for a field, empty when absent
func (r Row) Get(field string) string {
	return r.values[field]
}

// Has reports whether the sheet carried a column for the field at all
func (r Row) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Float parses a numeric cell tolerantly. Blank cells, NaN and anything
// unparseable come back as zero; supplier sheets are full of junk cells
// and a bad number must not fail the row.
func (r Row) Float(field string) float64 {
	raw := strings.TrimSpace(r.values[field])
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Parser holds the parsed workbook: resolved headers and data rows
type Parser struct {
	fields []string // canonical field per column, "" when ignored
	rows   []Row
}

// NewParser reads the first sheet of a workbook and resolves its header
// row. When the first row resolves no known header (a merged-cell title
// row is common) row 2 is promoted to headers and row 1 is dropped.
func NewParser(r io.Reader) (*Parser, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFile
	}

	fields := resolveHeaders(raw[0])
	dataStart := 1
	if countKnown(fields) == 0 {
		if len(raw) < 2 {
			return nil, ErrMissingHeader
		}
		fields = resolveHeaders(raw[1])
		if countKnown(fields) == 0 {
			return nil, ErrMissingHeader
		}
		dataStart = 2
	}

	p := &Parser{fields: fields}
	for i := dataStart; i < len(raw); i++ {
		row := Row{Line: i + 1, values: make(map[string]string)}
		for col, field := range fields {
			if field == "" {
				continue
			}
			value := ""
			if col < len(raw[i]) {
				value = strings.TrimSpace(raw[i][col])
			}
			row.values[field] = value
		}
		p.rows = append(p.rows, row)
	}
	return p, nil
}

// Rows returns the data rows in sheet order
func (p *Parser) Rows() []Row {
	return p.rows
}

// HasColumn reports whether the sheet carried a column for the field
func (p *Parser) HasColumn(field string) bool {
	for _, f := range p.fields {
		if f == field {
			return true
		}
	}
	return false
}

func resolveHeaders(cells []string) []string {
	fields := make([]string, len(cells))
	for i, cell := range cells {
		normalized := strings.ToLower(strings.Join(strings.Fields(cell), " "))
		fields[i] = headerSynonyms[normalized]
	}
	return fields
}

func countKnown(fields []string) int {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n
}
