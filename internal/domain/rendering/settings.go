// Package rendering holds the document-rendering domain types: the
// singleton template settings controlling document styling, and the
// append-only export ledger.
package rendering

import (
	"github.com/google/uuid"

	"github.com/prodsheet/backend/internal/domain/production"
)

// SettingsID is the fixed id of the singleton template settings document
const SettingsID = "default"

// TemplateSettings controls the visual styling of rendered documents.
// A single document with id "default" exists per installation; it is
// upserted with defaults on first read.
type TemplateSettings struct {
	ID             string `bson:"id" json:"id"`
	CompanyName    string `bson:"company_name" json:"company_name"`
	LogoText       string `bson:"logo_text" json:"logo_text"`
	PrimaryColor   string `bson:"primary_color" json:"primary_color"`
	AccentColor    string `bson:"accent_color" json:"accent_color"`
	FontFamily     string `bson:"font_family" json:"font_family"`
	BodyFont       string `bson:"body_font" json:"body_font"`
	PageMarginMM   int    `bson:"page_margin_mm" json:"page_margin_mm"`
	ShowBorders    bool   `bson:"show_borders" json:"show_borders"`
	HeaderHeightMM int    `bson:"header_height_mm" json:"header_height_mm"`
	FooterHeightMM int    `bson:"footer_height_mm" json:"footer_height_mm"`
}

// DefaultTemplateSettings returns the settings seeded on first read
func DefaultTemplateSettings() *TemplateSettings {
	return &TemplateSettings{
		ID:             SettingsID,
		CompanyName:    "JAIPUR – A fine wood furniture company",
		LogoText:       "JAIPUR",
		PrimaryColor:   "#3d2c1e",
		AccentColor:    "#d4622e",
		FontFamily:     "Playfair Display, serif",
		BodyFont:       "Manrope, sans-serif",
		PageMarginMM:   15,
		ShowBorders:    true,
		HeaderHeightMM: 25,
		FooterHeightMM: 20,
	}
}

// ExportType identifies the output container of a render
type ExportType string

const (
	ExportTypePDF ExportType = "pdf"
	ExportTypePPT ExportType = "ppt"
)

// ExportRecord is one append-only ledger entry per completed render.
// Records are never updated or deleted.
type ExportRecord struct {
	ID         string     `bson:"id" json:"id"`
	OrderID    string     `bson:"order_id" json:"order_id"`
	ExportType ExportType `bson:"export_type" json:"export_type"`
	Filename   string     `bson:"filename" json:"filename"`
	CreatedAt  string     `bson:"created_at" json:"created_at"`
}

// NewExportRecord creates a ledger entry with a server-generated id
func NewExportRecord(orderID string, exportType ExportType, filename string) *ExportRecord {
	return &ExportRecord{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		ExportType: exportType,
		Filename:   filename,
		CreatedAt:  production.Now(),
	}
}
