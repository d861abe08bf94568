// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grouchyseafowl/robostripper/internal/extract"
	"github.com/grouchyseafowl/robostripper/pkg/types"
)

type fakeSource struct {
	pages []string
	meta  map[string]string
}

func (s *fakeSource) NumPages() int                    { return len(s.pages) }
func (s *fakeSource) PageText(n int) (string, error)   { return s.pages[n], nil }
func (s *fakeSource) Metadata() map[string]string      { return s.meta }
func (s *fakeSource) Close() error                     { return nil }
func (s *fakeSource) PageImagePNG(n int, dpi float64) ([]byte, error) {
	return nil, errors.New("no renderer")
}

// fakeOpener serves canned documents by path; unknown paths fail to open.
func fakeOpener(docs map[string]*fakeSource) extract.Opener {
	return func(path string) (extract.Source, error) {
		src, ok := docs[path]
		if !ok {
			return nil, errors.New("cannot open document")
		}
		return src, nil
	}
}

const footer = "Journal of Example Studies"

// testPages builds a three-page document with a repeated footer on every
// page and body text unique to each page.
func testPages() []string {
	bodies := [][]string{
		{
			"The committee reviewed the submitted manuscripts over the course of three separate meetings.",
			"Attendance at the first meeting was unusually high and the discussion ran well past the hour.",
		},
		{
			"Each reviewer recorded detailed notes on methodology and on the strength of the evidence presented.",
			"Several submissions were returned to their authors with requests for additional clarification.",
		},
		{
			"The final recommendations were circulated to all members before the closing session of the year.",
			"A short summary of the decisions was archived alongside the minutes of the earlier meetings.",
		},
	}
	pages := make([]string, len(bodies))
	for i, body := range bodies {
		pages[i] = strings.Join(body, "\n") + "\n\n" + footer
	}
	return pages
}

func newTestPipeline(t *testing.T, cfg types.PipelineConfig, docs map[string]*fakeSource) *Pipeline {
	t.Helper()
	p, err := New(cfg, fakeOpener(docs), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestStripDocument(t *testing.T) {
	docs := map[string]*fakeSource{
		"a.pdf": {
			pages: testPages(),
			meta:  map[string]string{"title": "Machine Learning Foundations", "author": "Jane Smith"},
		},
	}
	p := newTestPipeline(t, types.PipelineConfig{}, docs)

	res := p.Strip("a.pdf")
	if res.Status != types.StatusStripped {
		t.Fatalf("Status = %q (err %q), want stripped", res.Status, res.Err)
	}
	if res.Pages != 3 {
		t.Errorf("Pages = %d, want 3", res.Pages)
	}

	wantHeader := "Machine Learning Foundations\nBy Jane Smith\n\n" + strings.Repeat("—", 40) + "\n\n"
	if !strings.HasPrefix(res.Text, wantHeader) {
		t.Errorf("Text does not start with citation header:\n%q", res.Text[:min(len(res.Text), 120)])
	}
	if strings.Contains(res.Text, footer) {
		t.Errorf("repeated footer survived cleaning:\n%s", res.Text)
	}
	if !strings.Contains(res.Text, "The committee reviewed the submitted manuscripts") {
		t.Error("body text missing from output")
	}
}

func TestStripNoHeader(t *testing.T) {
	docs := map[string]*fakeSource{
		"a.pdf": {
			pages: testPages(),
			meta:  map[string]string{"title": "Machine Learning Foundations", "author": "Jane Smith"},
		},
	}
	cfg := types.PipelineConfig{Format: types.FormatConfig{NoHeader: true}}
	p := newTestPipeline(t, cfg, docs)

	res := p.Strip("a.pdf")
	if res.Status != types.StatusStripped {
		t.Fatalf("Status = %q, want stripped", res.Status)
	}
	if strings.Contains(res.Text, strings.Repeat("—", 40)) {
		t.Error("citation header present despite NoHeader")
	}
	if res.Citation.Title != "Machine Learning Foundations" {
		t.Errorf("Citation.Title = %q, citation should still be extracted", res.Citation.Title)
	}
}

func TestStripOpenFailure(t *testing.T) {
	p := newTestPipeline(t, types.PipelineConfig{}, nil)

	res := p.Strip("missing.pdf")
	if res.Status != types.StatusFailed {
		t.Fatalf("Status = %q, want failed", res.Status)
	}
	if res.Err == "" {
		t.Error("Err should describe the open failure")
	}
}

func TestStripEmptyDocument(t *testing.T) {
	docs := map[string]*fakeSource{
		"cover.pdf": {
			pages: []string{"This content downloaded from 128.103.149.52 on Mon, 02 Mar 2020"},
			meta:  map[string]string{},
		},
	}
	p := newTestPipeline(t, types.PipelineConfig{}, docs)

	res := p.Strip("cover.pdf")
	if res.Status != types.StatusEmpty {
		t.Fatalf("Status = %q, want empty", res.Status)
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty", res.Text)
	}
}

func TestStripBatch(t *testing.T) {
	docs := map[string]*fakeSource{
		"papers/a.pdf": {pages: testPages(), meta: map[string]string{"title": "A Long Enough Title"}},
	}
	p := newTestPipeline(t, types.PipelineConfig{}, docs)

	outDir := t.TempDir()
	var out bytes.Buffer
	result := p.StripBatch([]string{"papers/a.pdf", "papers/b.pdf"}, outDir, &out)

	if result.Stripped != 1 || result.Failed != 1 || result.Empty != 0 {
		t.Fatalf("summary = %+v, want 1 stripped, 1 failed", result)
	}
	if result.Total() != 2 {
		t.Errorf("Total() = %d, want 2", result.Total())
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if len(result.Results) != 2 {
		t.Fatalf("Results length = %d, want 2", len(result.Results))
	}

	written, err := os.ReadFile(filepath.Join(outDir, "a.txt"))
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(written) != result.Results[0].Text {
		t.Error("output file content does not match result text")
	}

	output := out.String()
	if !strings.Contains(output, "stripped: a.pdf") {
		t.Errorf("missing stripped status line:\n%s", output)
	}
	if !strings.Contains(output, "failed:   b.pdf") {
		t.Errorf("missing failed status line:\n%s", output)
	}
	if !strings.Contains(output, "Batch summary: 1 stripped, 0 empty, 1 failed (total: 2)") {
		t.Errorf("missing batch summary:\n%s", output)
	}
}

func TestStripBatchPreview(t *testing.T) {
	docs := map[string]*fakeSource{
		"a.pdf": {pages: testPages(), meta: map[string]string{"title": "A Long Enough Title"}},
	}
	p := newTestPipeline(t, types.PipelineConfig{}, docs)

	var out bytes.Buffer
	result := p.StripBatch([]string{"a.pdf"}, "", &out)
	if result.Stripped != 1 {
		t.Fatalf("summary = %+v, want 1 stripped", result)
	}
	if result.Results[0].Text == "" {
		t.Error("result text should be populated even without an output directory")
	}
}

func TestNewBadPatternsFile(t *testing.T) {
	cfg := types.PipelineConfig{
		Cleaning: types.CleaningConfig{PatternsFile: filepath.Join(t.TempDir(), "absent.yaml")},
	}
	if _, err := New(cfg, fakeOpener(nil), nil); err == nil {
		t.Error("New should fail on an unreadable patterns file")
	}
}

func TestCollectPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "notes.txt", "C.PDF"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	loose := filepath.Join(dir, "notes.txt")

	paths, err := CollectPDFs([]string{dir, loose})
	if err != nil {
		t.Fatalf("CollectPDFs: %v", err)
	}
	want := []string{
		filepath.Join(dir, "C.PDF"),
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
		loose,
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestCollectPDFsMissing(t *testing.T) {
	if _, err := CollectPDFs([]string{"no/such/path.pdf"}); err == nil {
		t.Error("CollectPDFs should fail on a missing argument")
	}
}
