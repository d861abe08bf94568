// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionConfig holds settings for the text extraction stage.
type ExtractionConfig struct {
	// MinTextLen is the minimum stripped text length for a page to count as
	// having embedded text; shorter pages are treated as scanned and sent
	// through OCR (default 50).
	MinTextLen int `json:"min_text_len" yaml:"min_text_len"`

	// OCRDPI is the render resolution for rasterizing a page before OCR
	// (default 300).
	OCRDPI float64 `json:"ocr_dpi" yaml:"ocr_dpi"`

	// OCRLanguage is the Tesseract language string, "+"-separated for
	// multiple languages (default "eng").
	OCRLanguage string `json:"ocr_language" yaml:"ocr_language"`
}

// CleaningConfig holds settings for the document cleaning stage.
type CleaningConfig struct {
	// PatternsFile is an optional YAML file of additional boilerplate
	// patterns appended after the built-in library.
	PatternsFile string `json:"patterns_file,omitempty" yaml:"patterns_file,omitempty"`
}

// FormatConfig holds settings for the TTS formatting stage.
type FormatConfig struct {
	// Faithful disables abbreviation expansion, keeping the source text
	// verbatim apart from heading framing.
	Faithful bool `json:"faithful" yaml:"faithful"`

	// NoHeader suppresses the citation header even when one could be rendered.
	NoHeader bool `json:"no_header" yaml:"no_header"`
}

// OutputConfig holds settings for where stripped text is written.
type OutputConfig struct {
	// Dir is the directory for stripped .txt files (default "StrippedText").
	Dir string `json:"dir" yaml:"dir"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// Dir is the directory containing the history database
	// (default "~/.robostripper").
	Dir string `json:"dir" yaml:"dir"`

	// MaxList is the default number of runs shown by history listing
	// (default 20).
	MaxList int `json:"max_list" yaml:"max_list"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Cleaning   CleaningConfig   `json:"cleaning" yaml:"cleaning"`
	Format     FormatConfig     `json:"format" yaml:"format"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	History    HistoryConfig    `json:"history" yaml:"history"`
}
