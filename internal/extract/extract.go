// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns one PDF document into an ordered list of per-page
// text strings, invoking OCR for pages with too little embedded text.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// Source is one open document. Implementations provide per-page text,
// per-page rasterization, and the embedded metadata map. Pages are 0-based.
type Source interface {
	NumPages() int
	PageText(n int) (string, error)
	PageImagePNG(n int, dpi float64) ([]byte, error)
	Metadata() map[string]string
	Close() error
}

// Opener opens a document at a filesystem path. Production code uses Open
// (go-fitz); tests supply fakes.
type Opener func(path string) (Source, error)

// Recognizer turns an encoded page image into text. Implemented by
// internal/ocr; a nil Recognizer means OCR is unavailable.
type Recognizer interface {
	RecognizeImage(image []byte) (string, error)
}

// Result is the extraction output for one document. Pages is immutable
// input for every downstream stage; page order carries the sequencing
// signal the repetition and page-number detectors rely on.
type Result struct {
	// Pages holds the per-page text in page order.
	Pages []string

	// Metadata is the document's embedded key/value metadata (keys like
	// "title", "author"). May be empty, never nil.
	Metadata map[string]string

	// OCRPages lists 1-based page numbers whose text came from OCR.
	OCRPages []int

	// ScannedPages lists 1-based page numbers that looked scanned but kept
	// their (near-empty) embedded text because OCR was unavailable or
	// failed. Reported once per document, never fatal.
	ScannedPages []int
}

// Extractor runs the extraction stage.
type Extractor struct {
	cfg  types.ExtractionConfig
	open Opener
	ocr  Recognizer
}

// New creates an Extractor. open must be non-nil; ocr may be nil when OCR
// support is not compiled in or failed to initialize. Zero config fields
// get defaults: MinTextLen 50, OCRDPI 300.
func New(cfg types.ExtractionConfig, open Opener, ocr Recognizer) *Extractor {
	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = 50
	}
	if cfg.OCRDPI <= 0 {
		cfg.OCRDPI = 300
	}
	return &Extractor{cfg: cfg, open: open, ocr: ocr}
}

// ExtractFile extracts all pages of the document at path. A document that
// cannot be opened returns an error and no pages; any per-page problem
// (unreadable text, failed render, failed OCR) degrades to keeping what was
// extracted and recording the page, so one bad page never fails a document.
func (e *Extractor) ExtractFile(path string) (Result, error) {
	src, err := e.open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	result := Result{Metadata: map[string]string{}}
	for k, v := range src.Metadata() {
		result.Metadata[k] = v
	}

	total := src.NumPages()
	for n := 0; n < total; n++ {
		text, err := src.PageText(n)
		if err != nil {
			text = ""
		}

		if len(strings.TrimSpace(text)) < e.cfg.MinTextLen {
			ocrText, ok := e.recognizePage(src, n)
			if ok {
				text = ocrText
				result.OCRPages = append(result.OCRPages, n+1)
			} else {
				result.ScannedPages = append(result.ScannedPages, n+1)
			}
		}

		result.Pages = append(result.Pages, norm.NFC.String(text))
	}

	return result, nil
}

// recognizePage rasterizes page n and runs it through OCR. The bool result
// reports whether OCR produced usable text.
func (e *Extractor) recognizePage(src Source, n int) (string, bool) {
	if e.ocr == nil {
		return "", false
	}
	image, err := src.PageImagePNG(n, e.cfg.OCRDPI)
	if err != nil {
		return "", false
	}
	text, err := e.ocr.RecognizeImage(image)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
