// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"strings"
	"unicode/utf8"
)

// frontMatterMarkers are phrases that identify a repository cover/terms
// page. Matched against the lower-cased text of page 0 only.
var frontMatterMarkers = []string{
	"jstor is a not-for-profit",
	"escholarship.org",
	"chicago unbound",
	"follow this and additional works",
	"stable url:",
	"recommended citation",
}

// maxFrontMatterLen bounds the length of a page that can be classified as
// pure front matter; a real content page that mentions a marker phrase in
// passing is longer than this.
const maxFrontMatterLen = 500

// DetectFrontMatter returns how many leading pages are repository cover
// pages to drop wholesale: currently 0 or 1. Only page 0 is examined, and
// only a short page containing a marker phrase qualifies.
func DetectFrontMatter(pages []string) int {
	if len(pages) == 0 {
		return 0
	}
	if utf8.RuneCountInString(pages[0]) >= maxFrontMatterLen {
		return 0
	}
	first := strings.ToLower(pages[0])
	for _, marker := range frontMatterMarkers {
		if strings.Contains(first, marker) {
			return 1
		}
	}
	return 0
}
