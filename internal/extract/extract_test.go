// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// --- fakes ---

type fakeSource struct {
	pages    []string
	meta     map[string]string
	textErr  map[int]error // page → forced PageText error
	imageErr map[int]error // page → forced render error
	closed   bool
}

func (f *fakeSource) NumPages() int { return len(f.pages) }

func (f *fakeSource) PageText(n int) (string, error) {
	if err := f.textErr[n]; err != nil {
		return "", err
	}
	return f.pages[n], nil
}

func (f *fakeSource) PageImagePNG(n int, dpi float64) ([]byte, error) {
	if err := f.imageErr[n]; err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("png:%d@%g", n, dpi)), nil
}

func (f *fakeSource) Metadata() map[string]string { return f.meta }

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

func openerFor(src *fakeSource) Opener {
	return func(string) (Source, error) { return src, nil }
}

// fakeOCR maps page-image payloads to recognized text.
type fakeOCR struct {
	text  map[string]string
	err   error
	calls int
}

func (f *fakeOCR) RecognizeImage(image []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text[string(image)], nil
}

func longPage(marker string) string {
	return marker + " " + strings.Repeat("body text ", 10)
}

// --- tests ---

func TestExtractFileKeepsPageOrder(t *testing.T) {
	src := &fakeSource{
		pages: []string{longPage("one"), longPage("two"), longPage("three")},
		meta:  map[string]string{"title": "A Study", "author": "B. Author"},
	}
	e := New(types.ExtractionConfig{}, openerFor(src), nil)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if len(result.Pages) != 3 {
		t.Fatalf("len(Pages) = %d, want 3", len(result.Pages))
	}
	for i, marker := range []string{"one", "two", "three"} {
		if !strings.HasPrefix(result.Pages[i], marker) {
			t.Errorf("page %d = %q, want prefix %q", i, result.Pages[i][:10], marker)
		}
	}
	if result.Metadata["title"] != "A Study" {
		t.Errorf("Metadata[title] = %q", result.Metadata["title"])
	}
	if !src.closed {
		t.Error("source not closed")
	}
	if len(result.OCRPages) != 0 || len(result.ScannedPages) != 0 {
		t.Errorf("unexpected OCR bookkeeping: %v / %v", result.OCRPages, result.ScannedPages)
	}
}

func TestExtractFileOCRFallback(t *testing.T) {
	src := &fakeSource{
		pages: []string{longPage("one"), "  \n ", longPage("three")},
		meta:  map[string]string{},
	}
	recognizer := &fakeOCR{text: map[string]string{"png:1@300": "recovered scan text"}}
	e := New(types.ExtractionConfig{}, openerFor(src), recognizer)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if result.Pages[1] != "recovered scan text" {
		t.Errorf("page 1 = %q, want OCR text", result.Pages[1])
	}
	if !reflect.DeepEqual(result.OCRPages, []int{2}) {
		t.Errorf("OCRPages = %v, want [2]", result.OCRPages)
	}
	if len(result.ScannedPages) != 0 {
		t.Errorf("ScannedPages = %v, want none", result.ScannedPages)
	}
	if recognizer.calls != 1 {
		t.Errorf("recognizer calls = %d, want 1", recognizer.calls)
	}
}

func TestExtractFileOCRUnavailable(t *testing.T) {
	src := &fakeSource{
		pages: []string{"short", longPage("two"), "also short"},
		meta:  map[string]string{},
	}
	e := New(types.ExtractionConfig{}, openerFor(src), nil)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	// Original text is kept when OCR cannot run.
	if result.Pages[0] != "short" || result.Pages[2] != "also short" {
		t.Errorf("pages = %q, %q; original text should be kept", result.Pages[0], result.Pages[2])
	}
	if !reflect.DeepEqual(result.ScannedPages, []int{1, 3}) {
		t.Errorf("ScannedPages = %v, want [1 3]", result.ScannedPages)
	}
}

func TestExtractFileOCRFailureContinues(t *testing.T) {
	src := &fakeSource{
		pages: []string{"x", longPage("two")},
		meta:  map[string]string{},
	}
	recognizer := &fakeOCR{err: errors.New("tesseract exploded")}
	e := New(types.ExtractionConfig{}, openerFor(src), recognizer)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile should not fail on per-page OCR errors: %v", err)
	}
	if result.Pages[0] != "x" {
		t.Errorf("page 0 = %q, want original text kept", result.Pages[0])
	}
	if !reflect.DeepEqual(result.ScannedPages, []int{1}) {
		t.Errorf("ScannedPages = %v, want [1]", result.ScannedPages)
	}
}

func TestExtractFileRenderFailureContinues(t *testing.T) {
	src := &fakeSource{
		pages:    []string{"x", longPage("two")},
		meta:     map[string]string{},
		imageErr: map[int]error{0: errors.New("render failed")},
	}
	recognizer := &fakeOCR{text: map[string]string{}}
	e := New(types.ExtractionConfig{}, openerFor(src), recognizer)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if !reflect.DeepEqual(result.ScannedPages, []int{1}) {
		t.Errorf("ScannedPages = %v, want [1]", result.ScannedPages)
	}
}

func TestExtractFilePageTextErrorKeepsGoing(t *testing.T) {
	src := &fakeSource{
		pages:   []string{longPage("one"), longPage("two")},
		meta:    map[string]string{},
		textErr: map[int]error{0: errors.New("bad xref")},
	}
	e := New(types.ExtractionConfig{}, openerFor(src), nil)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if len(result.Pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(result.Pages))
	}
	if result.Pages[0] != "" {
		t.Errorf("unreadable page should extract as empty, got %q", result.Pages[0])
	}
	if !strings.HasPrefix(result.Pages[1], "two") {
		t.Errorf("page 1 = %q", result.Pages[1])
	}
}

func TestExtractFileOpenFailure(t *testing.T) {
	open := func(string) (Source, error) { return nil, errors.New("corrupt file") }
	e := New(types.ExtractionConfig{}, open, nil)

	result, err := e.ExtractFile("bad.pdf")
	if err == nil {
		t.Fatal("expected error for unopenable document")
	}
	if len(result.Pages) != 0 {
		t.Errorf("Pages = %v, want empty on open failure", result.Pages)
	}
}

func TestExtractFileThresholdConfig(t *testing.T) {
	// With a tiny threshold, a short page is accepted without OCR.
	src := &fakeSource{pages: []string{"tiny"}, meta: map[string]string{}}
	e := New(types.ExtractionConfig{MinTextLen: 3}, openerFor(src), nil)

	result, err := e.ExtractFile("doc.pdf")
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if len(result.ScannedPages) != 0 {
		t.Errorf("ScannedPages = %v, want none with MinTextLen 3", result.ScannedPages)
	}
}
