// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/grouchyseafowl/robostripper/internal/patterns"
)

const (
	// titleScanWindow is how many first-page lines the fallback examines.
	titleScanWindow = 10

	// minTitleLen rejects short lines; they are usually fragments of a
	// multi-line title or a drop-cap artifact.
	minTitleLen = 20
)

// titleDenyRes are structural phrases that disqualify a line as a title.
var titleDenyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(Chapter|Part|Section)\s+\w+`),
	regexp.MustCompile(`(?i)^OTHER\s+WORKS`),
	regexp.MustCompile(`(?i)^PUBLISHED\s+BY`),
	regexp.MustCompile(`(?i)^(Also|See)\s+`),
	regexp.MustCompile(`(?i)also appears`),
	regexp.MustCompile(`(?i)^(Edited|Translated|With|Foreword)`),
	regexp.MustCompile(`^\d{4}\.`),
}

var bareNumberRe = regexp.MustCompile(`^\d+$`)

// guessTitle scans the first lines of the page for a plausible title. The
// rules are deliberately strict: a line must be substantial, start with an
// uppercase letter, not end like a sentence fragment, avoid the structural
// deny-list, and not be boilerplate by the pattern library. First
// qualifying line wins; better no title than a wrong one.
func guessTitle(lines []string, lib []patterns.Pattern) string {
	for i, line := range lines {
		if i >= titleScanWindow {
			break
		}
		if utf8.RuneCountInString(line) < minTitleLen || bareNumberRe.MatchString(line) {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if !unicode.IsUpper(first) {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(strings.TrimRight(line, " "))
		if last == ',' || last == ';' || last == '-' {
			continue
		}
		if matchesDenyList(line) {
			continue
		}
		if patterns.MatchLine(lib, line) != "" {
			continue
		}
		return line
	}
	return ""
}

func matchesDenyList(line string) bool {
	for _, re := range titleDenyRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
