// Package session holds per-session recommendation state. Each user
// session owns one Session; the catalog itself is read-only and
// shared.
package session

import (
	"math/rand"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/match"
)

// Key is the cache-invalidation key for a session's cached result
// set. Recomputation happens only when the key changes.
type Key struct {
	Mood string
	Type catalog.ContentType
	TopN int
}

// Session caches the last recommendation so that repeated
// interactions with an unchanged (mood, type) pair do not refit the
// TF-IDF vectorizer. Not safe for concurrent use; one Session per
// user session.
type Session struct {
	matcher *match.Matcher
	rng     *rand.Rand

	key    Key
	cached match.Recommendation
	valid  bool
}

// New creates a session around the given rand source. The source
// drives tag-match sampling and shuffling; tests pass a seeded one.
func New(rng *rand.Rand) *Session {
	return &Session{
		matcher: match.NewMatcher(rng),
		rng:     rng,
	}
}

// Recommend returns recommendations for the mood and content type,
// serving the cached result set when the key is unchanged.
func (s *Session) Recommend(c *catalog.Catalog, mood string, typ catalog.ContentType, topN int) match.Recommendation {
	key := Key{Mood: mood, Type: typ, TopN: topN}
	if s.valid && key == s.key {
		return s.cached
	}

	s.cached = s.matcher.Match(c.Table(typ), mood, topN)
	s.key = key
	s.valid = true
	return s.cached
}

// Shuffle permutes the cached result set in place and returns it. A
// pure in-memory permutation: no requery, no refit. Shuffling with
// nothing cached returns an empty recommendation.
func (s *Session) Shuffle() match.Recommendation {
	if !s.valid {
		return match.Recommendation{Results: []match.Result{}}
	}

	results := s.cached.Results
	if s.rng != nil {
		s.rng.Shuffle(len(results), func(i, j int) {
			results[i], results[j] = results[j], results[i]
		})
	} else {
		rand.Shuffle(len(results), func(i, j int) {
			results[i], results[j] = results[j], results[i]
		})
	}
	return s.cached
}

// Invalidate drops the cached result set. The next Recommend call
// recomputes regardless of key.
func (s *Session) Invalidate() {
	s.valid = false
}

// LastKey returns the cache key of the cached result set, if any.
func (s *Session) LastKey() (Key, bool) {
	return s.key, s.valid
}
