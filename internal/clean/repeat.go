// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean separates document content from platform noise: it detects
// running headers/footers, sequential page numbers, and front-matter pages,
// then filters every page through those findings and the pattern library.
package clean

import "strings"

const (
	// headerFooterWindow is how many non-blank lines at each end of a page
	// are considered header/footer candidates.
	headerFooterWindow = 5

	// maxCandidateLen caps candidate length; genuinely repeating stamps are
	// short, and long lines inflate the counter with near-misses.
	maxCandidateLen = 200

	// repeatAbsoluteFloor is the minimum page count for a line to qualify,
	// so short documents still catch a stamp on 3 of 5 pages.
	repeatAbsoluteFloor = 3

	// repeatPageFraction is the relative floor for long documents, keeping
	// incidental repeats of common words out of the removal set.
	repeatPageFraction = 0.4
)

// nonBlankLines returns the trimmed, non-empty lines of a page in order.
func nonBlankLines(page string) []string {
	var lines []string
	for _, line := range strings.Split(page, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// normalizeLine produces the case-insensitive, trimmed form used for
// removal-set membership.
func normalizeLine(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// DetectRepeatingLines finds normalized header/footer lines that appear on
// enough distinct pages to be running boilerplate. A line qualifies when its
// page count reaches max(3, 40% of total pages).
func DetectRepeatingLines(pages []string) map[string]bool {
	counts := make(map[string]int)

	for _, page := range pages {
		lines := nonBlankLines(page)
		if len(lines) == 0 {
			continue
		}

		candidates := lines[:min(headerFooterWindow, len(lines))]
		if len(lines) > headerFooterWindow {
			candidates = append(candidates, lines[len(lines)-headerFooterWindow:]...)
		}

		seenThisPage := make(map[string]bool)
		for _, line := range candidates {
			normalized := normalizeLine(line)
			if normalized == "" || len(normalized) >= maxCandidateLen || seenThisPage[normalized] {
				continue
			}
			seenThisPage[normalized] = true
			counts[normalized]++
		}
	}

	threshold := repeatAbsoluteFloor
	if relative := int(float64(len(pages)) * repeatPageFraction); relative > threshold {
		threshold = relative
	}

	repeating := make(map[string]bool)
	for line, count := range counts {
		if count >= threshold {
			repeating[line] = true
		}
	}
	return repeating
}
