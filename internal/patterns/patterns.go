// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package patterns holds the library of repository and publisher boilerplate
// patterns. Each pattern is data (name, regex, scope), not a code branch, so
// a new platform's stamps can be covered by adding a table entry without
// touching the detectors or the cleaner.
package patterns

import "regexp"

// Scope describes the unit of text a pattern applies to. Only line scope
// exists today; the field is carried so block-level patterns can be added
// without changing the table shape.
type Scope string

// ScopeLine applies a pattern to a single line with search-anywhere
// semantics; patterns anchor themselves with ^ and $ where needed.
const ScopeLine Scope = "line"

// Pattern is one boilerplate matcher tagged with the platform it came from.
type Pattern struct {
	Name  string
	Re    *regexp.Regexp
	Scope Scope
}

// library is the built-in pattern table, grouped by originating platform.
// Order does not affect which lines are dropped (first match short-circuits)
// so cheap, frequent patterns sit near their platform group rather than
// being globally sorted.
var library = []Pattern{
	// JSTOR
	{"jstor_download", regexp.MustCompile(`This content downloaded from .+`), ScopeLine},
	{"jstor_terms", regexp.MustCompile(`All use subject to https?://about\.jstor\.org/terms`), ScopeLine},
	{"jstor_boilerplate", regexp.MustCompile(`JSTOR is a not-for-profit service`), ScopeLine},
	{"jstor_stable_url", regexp.MustCompile(`Stable URL:\s*https?://`), ScopeLine},
	{"jstor_accessed", regexp.MustCompile(`Accessed:\s+\d{2}-\d{2}-\d{4}`), ScopeLine},
	{"jstor_collab", regexp.MustCompile(`is collaborating with JSTOR`), ScopeLine},
	{"jstor_linked_refs", regexp.MustCompile(`Linked references are available on JSTOR`), ScopeLine},
	{"jstor_your_use", regexp.MustCompile(`Your use of the JSTOR archive indicates`), ScopeLine},

	// ProQuest Ebook Central
	{"proquest_copyright", regexp.MustCompile(`Copyright\s*©\s*\d{4}\.\s*.+\.\s*All rights reserved\.?`), ScopeLine},
	{"proquest_page_range", regexp.MustCompile(`Ebook pages \d+-\d+\s*\|\s*Printed page \d+ of \d+`), ScopeLine},
	{"proquest_url", regexp.MustCompile(`https?://ebookcentral\.proquest\.com/lib/.+`), ScopeLine},
	{"proquest_created", regexp.MustCompile(`Created from \w+ on \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`), ScopeLine},
	{"proquest_citation", regexp.MustCompile(`^.{10,}\.\s*ProQuest\s*(Ebook Central)?\.?\s*$`), ScopeLine},

	// EBSCO
	{"ebsco_header", regexp.MustCompile(`(?i)EBSCO Publishing:\s*eBook Collection.+`), ScopeLine},
	{"ebsco_terms", regexp.MustCompile(`All use subject to https?://www\.ebsco\.com/terms-of-use`), ScopeLine},
	{"ebsco_rights", regexp.MustCompile(`All rights reserved\.\s*May not be reproduced`), ScopeLine},
	{"ebsco_account", regexp.MustCompile(`(?i)Account:\s*\w+`), ScopeLine},
	{"ebsco_printed_on", regexp.MustCompile(`(?i)printed on \d{4}-\d{2}-\d{2}.*via\b`), ScopeLine},
	{"ebsco_copyright_block", regexp.MustCompile(`Copyright of .+ is the property of .+`), ScopeLine},
	{"ebsco_content_may_not", regexp.MustCompile(`content may not be copied or emailed`), ScopeLine},
	{"ebsco_express_written", regexp.MustCompile(`copyright holder's express written permission`), ScopeLine},
	{"ebsco_users_may_print", regexp.MustCompile(`users may print, download, or email`), ScopeLine},

	// Duke University Press
	{"duke_download", regexp.MustCompile(`Downloaded from https?://read\.dukeupress\.edu/.+`), ScopeLine},
	{"duke_user", regexp.MustCompile(`by [A-Z\s]+ user$`), ScopeLine},
	{"publisher_year_line", regexp.MustCompile(`^\d{4}\.\s+.+(?:Press|Books|Publishing|Publishers)\b.+\.\s*$`), ScopeLine},

	// Taylor & Francis and journal headers
	{"tf_url_footer", regexp.MustCompile(`(?i)WWW\.TANDFONLINE\.COM/\w+`), ScopeLine},
	{"tf_vol_issue", regexp.MustCompile(`(?i)^\d{4},\s*VOL\.\s*\d+,\s*NO\.\s*\d+`), ScopeLine},
	{"tf_copyright", regexp.MustCompile(`(?i)^\s*©\s*\d{4}\s+Taylor\s*&\s*Francis`), ScopeLine},
	{"doi_line", regexp.MustCompile(`^\s*https?://doi\.org/.+$`), ScopeLine},
	{"contact_line", regexp.MustCompile(`(?i)^CONTACT\s+.+@.+$`), ScopeLine},

	// eScholarship front matter
	{"eschol_powered", regexp.MustCompile(`eScholarship\.org\s*/?\s*Powered by the California Digital Library`), ScopeLine},
	{"eschol_permalink", regexp.MustCompile(`Permalink:\s*https?://escholarship\.org/.+`), ScopeLine},

	// Chicago Unbound
	{"chicago_unbound", regexp.MustCompile(`This Article is brought to you for free and open access by Chicago Unbound`), ScopeLine},
	{"chicago_follow", regexp.MustCompile(`Follow this and additional works at:\s*https?://`), ScopeLine},

	// Generic
	{"standalone_url", regexp.MustCompile(`^\s*https?://\S+\s*$`), ScopeLine},
	{"creative_commons_line", regexp.MustCompile(`Creative Commons Attribution.+License`), ScopeLine},
	{"rights_reserved", regexp.MustCompile(`^\s*©\s*\d{4}.+All rights reserved\.?\s*$`), ScopeLine},
}

// Library returns the built-in pattern table. Callers must not mutate the
// returned slice; append custom patterns to a copy.
func Library() []Pattern {
	return library
}

// MatchLine returns the name of the first pattern in lib that matches line,
// or "" if none match.
func MatchLine(lib []Pattern, line string) string {
	for _, p := range lib {
		if p.Scope != ScopeLine {
			continue
		}
		if p.Re.MatchString(line) {
			return p.Name
		}
	}
	return ""
}
