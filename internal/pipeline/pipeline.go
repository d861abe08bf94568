// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires extraction, citation guessing, cleaning and TTS
// formatting into the end-to-end stripping flow.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grouchyseafowl/robostripper/internal/citation"
	"github.com/grouchyseafowl/robostripper/internal/clean"
	"github.com/grouchyseafowl/robostripper/internal/extract"
	"github.com/grouchyseafowl/robostripper/internal/patterns"
	"github.com/grouchyseafowl/robostripper/internal/tts"
	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// Pipeline runs the full stripping flow for one or more documents.
type Pipeline struct {
	cfg       types.PipelineConfig
	extractor *extract.Extractor
	citations *citation.Extractor
	cleaner   *clean.Cleaner
}

// New builds a Pipeline from config, loading the boilerplate pattern library
// (plus any custom patterns file named in the config). open provides document
// access; ocr may be nil when OCR support is unavailable.
func New(cfg types.PipelineConfig, open extract.Opener, ocr extract.Recognizer) (*Pipeline, error) {
	lib, err := patterns.Load(cfg.Cleaning.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("loading patterns: %w", err)
	}
	return &Pipeline{
		cfg:       cfg,
		extractor: extract.New(cfg.Extraction, open, ocr),
		citations: citation.New(lib),
		cleaner:   clean.New(lib),
	}, nil
}

// Strip processes one document end to end: text extraction (with OCR
// fallback for scanned pages), citation guessing, boilerplate removal, then
// TTS formatting. A document that cannot be opened comes back StatusFailed;
// one whose pages are all boilerplate comes back StatusEmpty.
func (p *Pipeline) Strip(path string) types.StripResult {
	result := types.StripResult{InputPath: path}

	extracted, err := p.extractor.ExtractFile(path)
	if err != nil {
		result.Status = types.StatusFailed
		result.Err = err.Error()
		return result
	}
	result.Pages = len(extracted.Pages)
	result.OCRPages = extracted.OCRPages
	result.ScannedPages = extracted.ScannedPages

	// Citation works on the raw first page, before cleaning can strip the
	// platform lines it reads.
	result.Citation = p.citations.Extract(extracted.Metadata, extracted.Pages)

	cleaned := p.cleaner.CleanDocument(extracted.Pages)
	if cleaned == "" {
		result.Status = types.StatusEmpty
		return result
	}

	text := tts.Format(cleaned, p.cfg.Format.Faithful)
	if !p.cfg.Format.NoHeader {
		text = citation.Header(result.Citation) + text
	}
	result.Text = text
	result.Status = types.StatusStripped
	return result
}

// BatchResult holds the outcome of a batch stripping run.
type BatchResult struct {
	Stripped int
	Empty    int
	Failed   int

	// Results holds the per-document outcomes in input order.
	Results []types.StripResult
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Stripped + r.Empty + r.Failed
}

// HasFailures reports whether any documents failed stripping.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// StripBatch processes paths in order, printing per-file status to w and
// returning a summary. When outDir is non-empty each stripped document is
// written there as <stem>.txt; a write failure counts the document as
// failed. One bad document never stops the batch.
func (p *Pipeline) StripBatch(paths []string, outDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, path := range paths {
		res := p.Strip(path)
		base := filepath.Base(path)
		if res.Status == types.StatusStripped && outDir != "" {
			if _, err := WriteOutput(outDir, res); err != nil {
				res.Status = types.StatusFailed
				res.Err = err.Error()
			}
		}
		switch res.Status {
		case types.StatusStripped:
			fmt.Fprintf(w, "stripped: %s (%d pages", base, res.Pages)
			if n := len(res.OCRPages); n > 0 {
				fmt.Fprintf(w, ", %d via OCR", n)
			}
			fmt.Fprintln(w, ")")
			result.Stripped++
		case types.StatusEmpty:
			fmt.Fprintf(w, "empty:    %s (nothing left after cleaning)\n", base)
			result.Empty++
		case types.StatusFailed:
			fmt.Fprintf(w, "failed:   %s (%s)\n", base, res.Err)
			result.Failed++
		}
		result.Results = append(result.Results, res)
	}
	fmt.Fprintf(w, "\nBatch summary: %d stripped, %d empty, %d failed (total: %d)\n",
		result.Stripped, result.Empty, result.Failed, result.Total())
	return result
}

// OutputPath returns the destination text file for an input document:
// the input's base name with its extension swapped for .txt, under dir.
func OutputPath(dir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, base+".txt")
}

// WriteOutput writes a stripped result's text under dir, creating the
// directory if needed, and returns the written path.
func WriteOutput(dir string, res types.StripResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	out := OutputPath(dir, res.InputPath)
	if err := os.WriteFile(out, []byte(res.Text), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}
