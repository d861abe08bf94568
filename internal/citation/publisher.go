// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"regexp"
	"strings"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// publisherLineRe matches an EBSCO/Duke-style publisher line:
// "2017. Durham: Duke University Press. ..." ending in a period.
var publisherLineRe = regexp.MustCompile(`^(\d{4})\.\s+(.+(?:Press|Books|Publishing|Publishers).+)\.\s*$`)

// parsePublisherLine fills date and source from a publisher line when they
// are still unset.
func parsePublisherLine(lines []string, c *types.Citation) {
	for _, line := range lines {
		m := publisherLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if c.Date == "" {
			c.Date = m[1]
		}
		if c.Source == "" {
			c.Source = strings.TrimSpace(m[2])
		}
	}
}
