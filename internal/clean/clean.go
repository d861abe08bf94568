// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/grouchyseafowl/robostripper/internal/patterns"
)

var (
	// hyphenBreakRe matches a line-wrap hyphenation: word, hyphen, newline,
	// continuation word.
	hyphenBreakRe = regexp.MustCompile(`([\p{L}\p{N}_]+)-\n([\p{L}\p{N}_]+)`)

	// excessNewlinesRe matches runs of 3+ newlines, collapsed to a blank line.
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// Cleaner filters platform noise out of a document's pages. One Cleaner can
// be reused across documents; the removal sets are per-document state built
// inside CleanDocument.
type Cleaner struct {
	lib []patterns.Pattern
}

// New creates a Cleaner over the given pattern library.
func New(lib []patterns.Pattern) *Cleaner {
	return &Cleaner{lib: lib}
}

// CleanDocument removes front matter, boilerplate lines, repeating
// headers/footers, and sequential page numbers from the document, then
// repairs hyphenation and normalizes whitespace. Pages are never mutated;
// the result is a single new string, empty when nothing survives.
func (c *Cleaner) CleanDocument(pages []string) string {
	if len(pages) == 0 {
		return ""
	}

	pages = pages[DetectFrontMatter(pages):]
	if len(pages) == 0 {
		return ""
	}

	remove := DetectRepeatingLines(pages)
	for line := range DetectPageNumbers(pages) {
		remove[normalizeLine(line)] = true
	}

	cleaned := make([]string, len(pages))
	for i, page := range pages {
		cleaned[i] = c.cleanPage(page, remove)
	}

	text := strings.Join(cleaned, "\n\n")
	text = repairHyphenation(text)
	text = excessNewlinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// cleanPage drops every line that matches a library pattern or normalizes
// to a member of the removal set, preserving the order of survivors.
func (c *Cleaner) cleanPage(page string, remove map[string]bool) string {
	lines := strings.Split(page, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if patterns.MatchLine(c.lib, line) != "" {
			continue
		}
		if remove[normalizeLine(line)] {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// repairHyphenation joins words split across lines by a wrap hyphen. A
// lower-case continuation ("inter-\nnational") is a wrap artifact and gets
// joined; an upper-case continuation ("Mary-\nJane") is a real compound and
// is left alone.
func repairHyphenation(text string) string {
	return hyphenBreakRe.ReplaceAllStringFunc(text, func(match string) string {
		m := hyphenBreakRe.FindStringSubmatch(match)
		first, _ := utf8.DecodeRuneInString(m[2])
		if unicode.IsLower(first) {
			return m[1] + m[2]
		}
		return match
	})
}
