package match

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/logging"
)

// Mode tags how a recommendation was produced. Callers must know
// which ordering contract they received: similarity results are
// ranked, tag-match results are a random unranked subset.
type Mode int

const (
	// RankedBySimilarity: results sorted descending by TF-IDF cosine
	// similarity, deterministic for an unchanged (table, mood, topN).
	RankedBySimilarity Mode = iota

	// RandomFromTagMatch: a random subset of the items whose mood
	// hint contained the query mood. Unranked.
	RandomFromTagMatch
)

func (m Mode) String() string {
	if m == RandomFromTagMatch {
		return "tag-match"
	}
	return "similarity"
}

// Result pairs a catalog item with its display similarity. Similarity
// is a percentage in [0,100]; it is meaningful only for
// RankedBySimilarity results.
type Result struct {
	Item       catalog.Item
	Similarity float64
}

// Recommendation is the output of one match call.
type Recommendation struct {
	Mode    Mode
	Results []Result
}

// Matcher produces recommendations for a mood over one catalog table.
// The rand source drives only the tag-match sampling; the similarity
// path is fully deterministic.
type Matcher struct {
	rng *rand.Rand
}

// NewMatcher creates a Matcher with the given rand source. A nil rng
// falls back to the global source.
func NewMatcher(rng *rand.Rand) *Matcher {
	return &Matcher{rng: rng}
}

// Match recommends up to topN items from the table for the mood.
//
// Exact mood-tag hits short-circuit the ranking: if any item's mood
// hint contains the mood label, the result is a random sample of the
// filtered set. Otherwise every item is ranked by TF-IDF cosine
// similarity against the mood, rescaled for display, and truncated to
// topN. A nonempty table always yields a nonempty result.
func (m *Matcher) Match(items []catalog.Item, mood string, topN int) Recommendation {
	if len(items) == 0 || topN <= 0 {
		return Recommendation{Mode: RankedBySimilarity, Results: []Result{}}
	}

	if tagged := filterByMoodHint(items, mood); len(tagged) > 0 {
		logging.Debug("mood tag hit", "mood", mood, "candidates", len(tagged))
		return Recommendation{
			Mode:    RandomFromTagMatch,
			Results: m.sample(tagged, topN),
		}
	}

	return Recommendation{
		Mode:    RankedBySimilarity,
		Results: rankBySimilarity(items, mood, topN),
	}
}

// filterByMoodHint keeps items whose mood hint contains the mood as a
// case-insensitive substring.
func filterByMoodHint(items []catalog.Item, mood string) []catalog.Item {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if mood == "" {
		return nil
	}

	var matched []catalog.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.MoodHint), mood) {
			matched = append(matched, item)
		}
	}
	return matched
}

// sample returns min(n, len(items)) items drawn without replacement.
func (m *Matcher) sample(items []catalog.Item, n int) []Result {
	if n > len(items) {
		n = len(items)
	}

	var perm []int
	if m.rng != nil {
		perm = m.rng.Perm(len(items))
	} else {
		perm = rand.Perm(len(items))
	}

	results := make([]Result, 0, n)
	for _, idx := range perm[:n] {
		results = append(results, Result{Item: items[idx]})
	}
	return results
}

// rankBySimilarity scores every item against the mood and returns the
// topN, sorted descending. The sort is stable on catalog order, so
// tied scores (including the all-zero case) resolve deterministically.
func rankBySimilarity(items []catalog.Item, mood string, topN int) []Result {
	docs := make([]string, len(items))
	for i, item := range items {
		docs[i] = item.CombinedText()
	}

	vectorizer := Fit(docs)
	moodVec := vectorizer.Transform(mood)

	results := make([]Result, len(items))
	maxSim := 0.0
	for i, item := range items {
		sim := Cosine(moodVec, vectorizer.Transform(docs[i])) * 100
		results[i] = Result{Item: item, Similarity: sim}
		if sim > maxSim {
			maxSim = sim
		}
	}

	// Rescale into the 60-100 display band when anything matched at
	// all. This is a positive affine transform, so ordering is
	// preserved; the displayed number is a confidence band, not an
	// absolute similarity.
	if maxSim > 0 {
		for i := range results {
			results[i].Similarity = 60 + 40*results[i].Similarity/maxSim
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if topN < len(results) {
		results = results[:topN]
	}
	return results
}
