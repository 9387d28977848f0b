// Package catalog loads the wellness content catalog from flat CSV
// tables into read-only in-memory tables, one per content type.
package catalog

import "strings"

// ContentType identifies which catalog table an item came from.
type ContentType string

const (
	Music      ContentType = "music"
	Meditation ContentType = "meditation"
	Podcast    ContentType = "podcast"
	Reading    ContentType = "reading"
)

// Types lists all content types in display order.
var Types = []ContentType{Music, Meditation, Podcast, Reading}

// Display returns the human-facing name of a content type.
func (t ContentType) Display() string {
	switch t {
	case Music:
		return "Music"
	case Meditation:
		return "Meditation"
	case Podcast:
		return "Podcast"
	case Reading:
		return "Reading"
	}
	return string(t)
}

// ParseContentType resolves a user-supplied name to a content type.
func ParseContentType(s string) (ContentType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "music":
		return Music, true
	case "meditation":
		return Meditation, true
	case "podcast", "podcasts":
		return Podcast, true
	case "reading":
		return Reading, true
	}
	return "", false
}

// Item is one recommendable piece of content. Items are created at
// load time and never mutated afterwards.
type Item struct {
	Type        ContentType
	Title       string
	Creator     string
	URL         string
	MoodHint    string
	FeatureText string
	Tags        string
}

// CombinedText is the unit of similarity comparison: every descriptive
// field concatenated in a fixed order. Any of these fields may carry
// mood-relevant vocabulary, so the ranker looks at all of them rather
// than FeatureText alone.
func (it Item) CombinedText() string {
	parts := []string{it.Title, it.Creator, it.Tags, it.MoodHint, it.FeatureText}
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, " ")
}

// Catalog holds the four loaded tables. Tables are read-only after
// load and safe to share across sessions.
type Catalog struct {
	tables map[ContentType][]Item
}

// NewCatalog builds a catalog from pre-loaded tables. Used by the
// loader and by the sqlite snapshot reader.
func NewCatalog(tables map[ContentType][]Item) *Catalog {
	if tables == nil {
		tables = make(map[ContentType][]Item)
	}
	return &Catalog{tables: tables}
}

// Table returns the items of one content type. Missing tables yield
// an empty slice, not an error.
func (c *Catalog) Table(t ContentType) []Item {
	return c.tables[t]
}

// Len returns the total number of items across all tables.
func (c *Catalog) Len() int {
	n := 0
	for _, items := range c.tables {
		n += len(items)
	}
	return n
}
