package session

import (
	"math/rand"
	"testing"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/match"
)

func testCatalog() *catalog.Catalog {
	return catalog.NewCatalog(map[catalog.ContentType][]catalog.Item{
		catalog.Music: {
			{Type: catalog.Music, Title: "Ocean Waves", FeatureText: "calm ocean sounds"},
			{Type: catalog.Music, Title: "Morning Run", FeatureText: "energetic workout tracks"},
			{Type: catalog.Music, Title: "Rainy Window", FeatureText: "gentle piano evenings"},
		},
	})
}

func resultTitles(rec match.Recommendation) []string {
	titles := make([]string, len(rec.Results))
	for i, r := range rec.Results {
		titles[i] = r.Item.Title
	}
	return titles
}

func TestRecommendCachesUnchangedKey(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	cat := testCatalog()

	first := s.Recommend(cat, "calm", catalog.Music, 2)
	second := s.Recommend(cat, "calm", catalog.Music, 2)

	a, b := resultTitles(first), resultTitles(second)
	if len(a) != len(b) {
		t.Fatalf("cached result differs in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("cached result differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestRecommendRecomputesOnKeyChange(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	cat := testCatalog()

	s.Recommend(cat, "calm", catalog.Music, 2)
	key, ok := s.LastKey()
	if !ok || key.Mood != "calm" {
		t.Fatalf("unexpected key after recommend: %+v %v", key, ok)
	}

	s.Recommend(cat, "motivated", catalog.Music, 2)
	key, _ = s.LastKey()
	if key.Mood != "motivated" {
		t.Errorf("expected key to track the new mood, got %q", key.Mood)
	}
}

func TestShufflePreservesResultSet(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	cat := testCatalog()

	before := resultTitles(s.Recommend(cat, "calm", catalog.Music, 3))
	after := resultTitles(s.Shuffle())

	if len(before) != len(after) {
		t.Fatalf("shuffle changed result count: %d vs %d", len(before), len(after))
	}
	want := map[string]bool{}
	for _, title := range before {
		want[title] = true
	}
	for _, title := range after {
		if !want[title] {
			t.Errorf("shuffle introduced item %q", title)
		}
	}
}

func TestShuffleWithoutRecommend(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))

	rec := s.Shuffle()
	if rec.Results == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(rec.Results) != 0 {
		t.Errorf("expected no results, got %d", len(rec.Results))
	}
}

func TestInvalidate(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	cat := testCatalog()

	s.Recommend(cat, "calm", catalog.Music, 2)
	s.Invalidate()

	if _, ok := s.LastKey(); ok {
		t.Error("expected no cached key after Invalidate")
	}
}
