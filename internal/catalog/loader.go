package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/emilyvoss/uplift/internal/logging"
)

// csvRow mirrors one CSV record. The creator-name column is named
// differently per source (artist for music, host for podcasts,
// creator for reading), so all three are decoded and normalized
// afterwards. Columns absent from a source decode to empty strings.
type csvRow struct {
	Title       string `csv:"title"`
	Artist      string `csv:"artist"`
	Host        string `csv:"host"`
	Creator     string `csv:"creator"`
	URL         string `csv:"url"`
	MoodHint    string `csv:"mood_hint"`
	FeatureText string `csv:"feature_text"`
	Tags        string `csv:"tags"`
}

// creator resolves the creator-name column via a fixed priority list.
func (r csvRow) creator() string {
	for _, name := range []string{r.Creator, r.Artist, r.Host} {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return ""
}

// fileNames maps each content type to its CSV file name.
var fileNames = map[ContentType]string{
	Music:      "music_catalog.csv",
	Meditation: "meditation_catalog.csv",
	Podcast:    "podcast_catalog.csv",
	Reading:    "reading_catalog.csv",
}

// FileName returns the CSV file name for a content type.
func FileName(t ContentType) string {
	return fileNames[t]
}

// missingWarn throttles repeated missing-source warnings. Every user
// interaction reruns the load, so an absent file would otherwise spam
// the log once per keypress.
var missingWarn = rate.Sometimes{First: 1, Interval: time.Minute}

// Load reads one CSV source into a table. A missing or unreadable
// source is non-fatal: it yields an empty table and a warning.
func Load(path string, typ ContentType) []Item {
	items, err := LoadFile(path, typ)
	if err != nil {
		missingWarn.Do(func() {
			logging.Warn("catalog source unavailable, using empty table",
				"type", string(typ), "path", path, "err", err)
		})
		return []Item{}
	}
	return items
}

// LoadFile reads one CSV source, returning an error instead of
// substituting an empty table. Used by Load and by `upliftctl import`,
// which wants the failure surfaced.
func LoadFile(path string, typ ContentType) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var rows []csvRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{
			Type:        typ,
			Title:       strings.TrimSpace(r.Title),
			Creator:     r.creator(),
			URL:         strings.TrimSpace(r.URL),
			MoodHint:    strings.TrimSpace(r.MoodHint),
			FeatureText: strings.TrimSpace(r.FeatureText),
			Tags:        strings.TrimSpace(r.Tags),
		})
	}
	return items, nil
}

// LoadDir loads all four catalog tables from a directory. Sources are
// independent: any subset may be missing, and the corresponding table
// is simply empty.
func LoadDir(dir string) *Catalog {
	tables := make(map[ContentType][]Item, len(Types))

	var g errgroup.Group
	results := make([][]Item, len(Types))
	for i, typ := range Types {
		i, typ := i, typ
		g.Go(func() error {
			results[i] = Load(filepath.Join(dir, fileNames[typ]), typ)
			return nil
		})
	}
	g.Wait() // loaders never return errors, only empty tables

	for i, typ := range Types {
		tables[typ] = results[i]
	}

	c := NewCatalog(tables)
	logging.Debug("catalog loaded", "dir", dir, "items", c.Len())
	return c
}
