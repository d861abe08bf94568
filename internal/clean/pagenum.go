// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"regexp"
	"sort"
	"strconv"
)

const (
	// pageNumWindow is how many non-blank lines at each end of a page are
	// checked for standalone numbers.
	pageNumWindow = 3

	// minCandidates is the minimum data points before page numbers are
	// believed at all, and per position group before it is evaluated.
	minCandidates = 3

	// maxGap tolerates a missing page or two between consecutive numbers.
	maxGap = 5

	// sequentialRatio is the fraction of adjacent candidate pairs that must
	// be strictly increasing for a position group to qualify.
	sequentialRatio = 0.6
)

// standaloneNumRe matches a line that is nothing but 1-4 digits.
var standaloneNumRe = regexp.MustCompile(`^\d{1,4}$`)

// numCandidate is one standalone number seen near the edge of a page.
type numCandidate struct {
	page     int
	value    int
	original string
}

// DetectPageNumbers finds standalone 1-4 digit lines that sit in a
// consistent position across pages and increment with page order. Position
// groups are keyed by offset from the top (0,1,2) or from the bottom
// (-1,-2,-3), so "always the last line" groups together even when pages
// have different line counts. A group needs at least 3 candidates and a 60%
// strictly-increasing pair ratio, which keeps incidental numbers (years,
// section numbers) out of the removal set.
func DetectPageNumbers(pages []string) map[string]bool {
	byPosition := make(map[int][]numCandidate)
	total := 0

	for pageIdx, page := range pages {
		lines := nonBlankLines(page)
		if len(lines) < pageNumWindow {
			continue
		}

		checked := make(map[int]bool)
		record := func(lineIdx, posKey int) {
			if checked[lineIdx] {
				return
			}
			checked[lineIdx] = true
			line := lines[lineIdx]
			if !standaloneNumRe.MatchString(line) {
				return
			}
			value, err := strconv.Atoi(line)
			if err != nil {
				return
			}
			byPosition[posKey] = append(byPosition[posKey], numCandidate{
				page:     pageIdx,
				value:    value,
				original: line,
			})
			total++
		}

		for i := 0; i < pageNumWindow && i < len(lines); i++ {
			record(i, i)
		}
		for i := 0; i < pageNumWindow && i < len(lines); i++ {
			record(len(lines)-1-i, -(i + 1))
		}
	}

	if total < minCandidates {
		return map[string]bool{}
	}

	remove := make(map[string]bool)
	for _, candidates := range byPosition {
		if len(candidates) < minCandidates {
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].page < candidates[j].page
		})

		sequential := 0
		for i := 0; i < len(candidates)-1; i++ {
			gap := candidates[i+1].value - candidates[i].value
			if gap > 0 && gap <= maxGap {
				sequential++
			}
		}

		pairs := len(candidates) - 1
		if float64(sequential) >= sequentialRatio*float64(pairs) {
			for _, c := range candidates {
				remove[c.original] = true
			}
		}
	}
	return remove
}
