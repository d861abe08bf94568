// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// volIssueRe matches a journal volume header like "2024, VOL. 23, NO. 2".
var volIssueRe = regexp.MustCompile(`(?i)^(\d{4}),\s*VOL\.\s*(\d+),\s*NO\.\s*(\d+)`)

// parseJournalHeader fills source and date from a journal masthead: an
// all-uppercase line containing "JOURNAL" becomes the source, and a
// volume/issue line supplies the year and is appended to the source when
// one is already known.
func parseJournalHeader(lines []string, c *types.Citation) {
	for _, line := range lines {
		if c.Source == "" && isUpperLine(line) && strings.Contains(line, "JOURNAL") {
			if n := utf8.RuneCountInString(line); n > 15 && n < 100 {
				c.Source = line
			}
		}
		if m := volIssueRe.FindStringSubmatch(line); m != nil {
			if c.Date == "" {
				c.Date = m[1]
			}
			if c.Source != "" {
				c.Source += fmt.Sprintf(" Vol. %s, No. %s", m[2], m[3])
			}
		}
	}
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
