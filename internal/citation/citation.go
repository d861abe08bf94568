// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation makes a conservative best-effort guess at a document's
// bibliographic record from embedded PDF metadata and first-page text. Each
// source format (ProQuest, journal headers, publisher lines) has its own
// named rule so one platform's format drift can be fixed or disabled
// without touching the others. Rules run in precedence order and never
// overwrite a field an earlier rule set; uncertainty collapses to absent
// fields, never an error.
package citation

import (
	"strings"
	"unicode/utf8"

	"github.com/grouchyseafowl/robostripper/internal/patterns"
	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// rule inspects the first page's non-blank lines and fills unset fields.
type rule func(lines []string, c *types.Citation)

// textRules are the first-page text rules in precedence order, applied
// after embedded metadata.
var textRules = []rule{
	parseProQuestCitation,
	parseJournalHeader,
	parsePublisherLine,
}

// Extractor runs citation extraction for one pattern library.
type Extractor struct {
	lib []patterns.Pattern
}

// New creates an Extractor. The pattern library is consulted by the title
// fallback so a boilerplate line is never mistaken for a title.
func New(lib []patterns.Pattern) *Extractor {
	return &Extractor{lib: lib}
}

// Extract builds a Citation from the document's metadata map and its raw
// (pre-clean) pages. The pages must be the uncleaned text: several source
// formats live in exactly the lines the cleaner is about to remove.
func (e *Extractor) Extract(meta map[string]string, pages []string) types.Citation {
	var c types.Citation
	applyMetadata(meta, &c)

	if len(pages) == 0 {
		return c
	}

	lines := firstPageLines(pages[0])
	for _, r := range textRules {
		r(lines, &c)
	}

	if c.Title == "" {
		c.Title = guessTitle(lines, e.lib)
	}

	// Author is deliberately never guessed from unstructured text: a wrong
	// author costs more than a missing one.
	return c
}

// junkMetadataValues are placeholder strings PDF producers leave in
// metadata fields, matched case-insensitively.
var junkMetadataValues = map[string]bool{
	"untitled":       true,
	"sometitle":      true,
	"someauthor":     true,
	"unknown":        true,
	"none":           true,
	"microsoft word": true,
}

// applyMetadata fills title and author from embedded metadata, rejecting
// empty, too-short, and placeholder values.
func applyMetadata(meta map[string]string, c *types.Citation) {
	title := strings.TrimSpace(meta["title"])
	if utf8.RuneCountInString(title) > 3 && !junkMetadataValues[strings.ToLower(title)] {
		c.Title = title
	}

	author := strings.TrimSpace(meta["author"])
	if utf8.RuneCountInString(author) > 1 && !junkMetadataValues[strings.ToLower(author)] {
		c.Author = author
	}
}

// firstPageLines returns the trimmed non-blank lines of the first page.
func firstPageLines(page string) []string {
	var lines []string
	for _, line := range strings.Split(page, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
