// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// StripStatus indicates the outcome of processing one document.
type StripStatus string

const (
	// StatusStripped means cleaned text was produced.
	StatusStripped StripStatus = "stripped"

	// StatusEmpty means the document opened but nothing survived cleaning
	// (e.g. an all-boilerplate cover sheet). Distinct from StatusFailed so
	// callers can report "nothing left" rather than "couldn't open".
	StatusEmpty StripStatus = "empty"

	// StatusFailed means the document could not be opened or read.
	StatusFailed StripStatus = "failed"
)

// StripResult holds the outcome of processing one document.
type StripResult struct {
	// InputPath is the source PDF path.
	InputPath string `json:"input_path" yaml:"input_path"`

	// Text is the cleaned, TTS-formatted output, including the citation
	// header when one was rendered. Empty unless Status is StatusStripped.
	Text string `json:"-" yaml:"-"`

	// Citation is the best-effort bibliographic guess for the document.
	// May be zero even on success.
	Citation Citation `json:"citation" yaml:"citation"`

	// Status records how processing ended.
	Status StripStatus `json:"status" yaml:"status"`

	// Err describes the failure when Status is StatusFailed.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`

	// Pages is the number of pages extracted from the document.
	Pages int `json:"pages" yaml:"pages"`

	// OCRPages lists 1-based page numbers that went through OCR.
	OCRPages []int `json:"ocr_pages,omitempty" yaml:"ocr_pages,omitempty"`

	// ScannedPages lists 1-based page numbers that looked scanned but could
	// not be OCR'd (capability missing or per-page OCR failure).
	ScannedPages []int `json:"scanned_pages,omitempty" yaml:"scanned_pages,omitempty"`
}

// Run is one recorded processing run in the history store.
type Run struct {
	// ID is the autoincremented row identifier.
	ID int64 `json:"id" yaml:"id"`

	// InputPath is the source PDF path.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is where the stripped text was written. Empty for preview
	// runs and for documents that produced no output.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Status records how processing ended.
	Status StripStatus `json:"status" yaml:"status"`

	// Pages is the number of pages extracted.
	Pages int `json:"pages" yaml:"pages"`

	// OCRPages is the number of pages that went through OCR.
	OCRPages int `json:"ocr_pages" yaml:"ocr_pages"`

	// CreatedAt is when the run was recorded, in UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
