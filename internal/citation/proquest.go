// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"regexp"
	"strings"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

var (
	// proquestLineRe identifies a ProQuest citation line by its tail.
	proquestLineRe = regexp.MustCompile(`\.\s*ProQuest\s*(Ebook Central)?\.?\s*$`)

	// proquestCiteRe parses "Last, First. Title : Subtitle, Publisher,
	// Year. ProQuest...": the first comma-bearing segment before ". " is
	// the author, the next segment up to ", Publisher," is the title, and
	// the trailing 4-digit group is the year.
	proquestCiteRe = regexp.MustCompile(`^([^.]+,\s*[^.]+)\.\s+(.+),\s+.+,\s+(\d{4})\.\s*ProQuest`)
)

// parseProQuestCitation fills author/title/date from the first ProQuest
// citation line on the page. Scanning stops at the first line with the
// ProQuest tail whether or not the full parse succeeds; a second such line
// would be a duplicate stamp, not better data.
func parseProQuestCitation(lines []string, c *types.Citation) {
	for _, line := range lines {
		if !proquestLineRe.MatchString(line) {
			continue
		}
		if m := proquestCiteRe.FindStringSubmatch(line); m != nil {
			if c.Author == "" {
				c.Author = strings.TrimSpace(m[1])
			}
			if c.Title == "" {
				c.Title = strings.TrimRight(strings.TrimSpace(m[2]), ",")
			}
			if c.Date == "" {
				c.Date = m[3]
			}
		}
		return
	}
}
