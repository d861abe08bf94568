// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tts post-processes cleaned document text for spoken and braille
// consumption: headings get breathing room and a terminal period so the
// voice pauses, and scholarly abbreviations are expanded to words a
// listener can follow.
package tts

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxHeadingLen is the longest line considered a heading candidate.
const maxHeadingLen = 100

// upperRatio is the minimum share of upper-case characters for a
// mixed-case line to count as a heading.
const upperRatio = 0.3

// abbreviation pairs a source pattern with its spoken replacement. The
// replacements are chosen so their output no longer matches any source
// pattern, which makes a second formatting pass a no-op.
type abbreviation struct {
	re          *regexp.Regexp
	replacement string
}

var abbreviations = []abbreviation{
	{regexp.MustCompile(`(?i)\bet al\.`), "and others"},
	{regexp.MustCompile(`(?i)\bibid\.`), "same source"},
	{regexp.MustCompile(`(?i)\bcf\.`), "compare"},
	{regexp.MustCompile(`(?i)\be\.g\.`), "for example"},
	{regexp.MustCompile(`(?i)\bi\.e\.`), "that is"},
	{regexp.MustCompile(`(?i)\bp\.\s*(\d+)`), "page ${1}"},
	{regexp.MustCompile(`(?i)\bpp\.\s*(\d+)`), "pages ${1}"},
}

var excessNewlinesRe = regexp.MustCompile(`\n{3,}`)

// Format prepares cleaned text for TTS reading. When faithful is true the
// abbreviation expansion is skipped and only heading framing is applied.
func Format(text string, faithful bool) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if isHeading(stripped) {
			out = append(out, "", stripped+".", "")
		} else {
			out = append(out, line)
		}
	}
	text = strings.Join(out, "\n")

	if !faithful {
		for _, a := range abbreviations {
			text = a.re.ReplaceAllString(text, a.replacement)
		}
	}

	text = excessNewlinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// isHeading reports whether a trimmed line reads as a heading: short,
// either fully upper-case or upper-heavy with an upper-case start, and not
// ending in sentence punctuation (which marks a sentence-case clause, not
// a title).
func isHeading(stripped string) bool {
	if stripped == "" || utf8.RuneCountInString(stripped) >= maxHeadingLen {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(stripped)
	switch last {
	case '.', '!', '?', ':', ';', ',':
		return false
	}
	if isUpperLine(stripped) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(stripped)
	if !unicode.IsUpper(first) {
		return false
	}
	total := 0
	upper := 0
	for _, r := range stripped {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) > float64(total)*upperRatio
}

// isUpperLine reports whether the line has at least one cased letter and
// no lower-case letters.
func isUpperLine(line string) bool {
	cased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
