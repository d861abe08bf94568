// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"strings"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

// headerRuleWidth is the width of the divider under the citation header.
const headerRuleWidth = 40

// Header renders the citation as a TTS-friendly block to prepend to the
// document text: title, "By author", then source and date on one line,
// followed by a divider. Returns "" unless the citation is renderable
// (title plus at least one corroborating field), so a lone, possibly-wrong
// title is never shown.
func Header(c types.Citation) string {
	if !c.Renderable() {
		return ""
	}

	parts := []string{c.Title}
	if c.Author != "" {
		parts = append(parts, "By "+c.Author)
	}

	var sourceDate []string
	if c.Source != "" {
		sourceDate = append(sourceDate, c.Source)
	}
	if c.Date != "" {
		sourceDate = append(sourceDate, c.Date)
	}
	if len(sourceDate) > 0 {
		parts = append(parts, strings.Join(sourceDate, ", "))
	}

	return strings.Join(parts, "\n") + "\n\n" + strings.Repeat("—", headerRuleWidth) + "\n\n"
}
