// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Citation holds a best-effort bibliographic guess for one document. Each
// field is either a validated value or empty; a field is never populated
// with a low-confidence guess, so downstream rendering can trust what is
// present.
type Citation struct {
	// Title is the document title, from PDF metadata or first-page text.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author is the author line. Only structured sources (PDF metadata, a
	// parsed ProQuest citation line) set this; it is never guessed from
	// free text.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Date is the publication year as a 4-digit string.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Source is the journal or publisher line.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// IsZero reports whether no field was extracted.
func (c Citation) IsZero() bool {
	return c.Title == "" && c.Author == "" && c.Date == "" && c.Source == ""
}

// Renderable reports whether the citation is confident enough to show to a
// reader: a title plus at least one corroborating field. A lone title is
// suppressed because PDF metadata titles are wrong too often to stand alone.
func (c Citation) Renderable() bool {
	return c.Title != "" && (c.Author != "" || c.Source != "" || c.Date != "")
}
