package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "music_catalog.csv",
		"title,artist,url,mood_hint,feature_text\n"+
			"Ocean Waves,Drift,https://example.com/1,\"calm, relaxed\",gentle ambient sounds\n"+
			"Morning Run,Pulse,https://example.com/2,motivated,upbeat tempo\n")

	items, err := LoadFile(filepath.Join(dir, "music_catalog.csv"), Music)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first := items[0]
	if first.Type != Music {
		t.Errorf("expected type music, got %q", first.Type)
	}
	if first.Title != "Ocean Waves" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Creator != "Drift" {
		t.Errorf("expected artist column normalized to creator, got %q", first.Creator)
	}
	if first.MoodHint != "calm, relaxed" {
		t.Errorf("unexpected mood hint %q", first.MoodHint)
	}
}

func TestLoadFileCreatorPriority(t *testing.T) {
	dir := t.TempDir()

	// Podcast sources name the creator column "host"
	writeCSV(t, dir, "podcast_catalog.csv",
		"title,host,url\nCalm Talks,Ira,https://example.com/p\n")
	items, err := LoadFile(filepath.Join(dir, "podcast_catalog.csv"), Podcast)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if items[0].Creator != "Ira" {
		t.Errorf("expected host column normalized to creator, got %q", items[0].Creator)
	}

	// Reading sources name it "creator"
	writeCSV(t, dir, "reading_catalog.csv",
		"title,creator,url\nQuiet Mind,Jon,https://example.com/r\n")
	items, err = LoadFile(filepath.Join(dir, "reading_catalog.csv"), Reading)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if items[0].Creator != "Jon" {
		t.Errorf("expected creator column kept, got %q", items[0].Creator)
	}
}

func TestLoadFileMissingOptionalColumns(t *testing.T) {
	dir := t.TempDir()

	// Meditation source with only the required columns
	writeCSV(t, dir, "meditation_catalog.csv",
		"title,url\nBody Scan,https://example.com/m\n")

	items, err := LoadFile(filepath.Join(dir, "meditation_catalog.csv"), Meditation)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	it := items[0]
	if it.Creator != "" || it.MoodHint != "" || it.FeatureText != "" || it.Tags != "" {
		t.Errorf("expected missing optional columns to be empty strings, got %+v", it)
	}
}

func TestLoadMissingSource(t *testing.T) {
	items := Load(filepath.Join(t.TempDir(), "nope.csv"), Music)
	if items == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected empty table for missing source, got %d items", len(items))
	}
}

func TestLoadDirPartial(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "music_catalog.csv",
		"title,artist,url\nOcean Waves,Drift,https://example.com/1\n")

	cat := LoadDir(dir)

	if got := len(cat.Table(Music)); got != 1 {
		t.Errorf("expected 1 music item, got %d", got)
	}
	for _, typ := range []ContentType{Meditation, Podcast, Reading} {
		if got := len(cat.Table(typ)); got != 0 {
			t.Errorf("expected empty %s table, got %d", typ, got)
		}
	}
	if cat.Len() != 1 {
		t.Errorf("expected catalog length 1, got %d", cat.Len())
	}
}

func TestCombinedText(t *testing.T) {
	it := Item{
		Title:       "Ocean Waves",
		Creator:     "Drift",
		Tags:        "ambient",
		MoodHint:    "calm",
		FeatureText: "gentle sounds",
	}
	want := "Ocean Waves Drift ambient calm gentle sounds"
	if got := it.CombinedText(); got != want {
		t.Errorf("CombinedText = %q, want %q", got, want)
	}

	// Absent fields contribute nothing, order is preserved
	it = Item{Title: "Ocean Waves", FeatureText: "gentle sounds"}
	if got := it.CombinedText(); got != "Ocean Waves gentle sounds" {
		t.Errorf("CombinedText = %q", got)
	}
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
		ok   bool
	}{
		{"music", Music, true},
		{" Podcasts ", Podcast, true},
		{"READING", Reading, true},
		{"video", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseContentType(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseContentType(%q) = %q, %v", tt.in, got, ok)
		}
	}
}
