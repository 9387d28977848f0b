// Package match ranks catalog items against a mood query, either by
// mood-tag filtering or by TF-IDF cosine similarity.
package match

import (
	"math"
	"strings"

	"github.com/bbalet/stopwords"
)

// Vectorizer converts texts into sparse TF-IDF vectors over a
// vocabulary fitted on one table. It is fitted per query on the
// target table only; the catalog is small enough that refitting is
// cheaper than keeping cross-table state coherent.
type Vectorizer struct {
	vocab map[string]int // term -> vector index
	idf   []float64
	docs  int
}

// tokenize lower-cases, strips stop words and punctuation, and splits
// into terms.
func tokenize(text string) []string {
	cleaned := stopwords.CleanString(strings.ToLower(text), "en", false)

	return strings.FieldsFunc(cleaned, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		}
		return true
	})
}

// Fit builds a vocabulary and IDF weights from the given documents.
func Fit(docs []string) *Vectorizer {
	v := &Vectorizer{
		vocab: make(map[string]int),
		docs:  len(docs),
	}

	// Document frequency per term
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range tokenize(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
			if _, ok := v.vocab[term]; !ok {
				v.vocab[term] = len(v.vocab)
			}
		}
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1, so terms present in every
	// document still carry a small positive weight.
	v.idf = make([]float64, len(v.vocab))
	for term, idx := range v.vocab {
		v.idf[idx] = math.Log(float64(1+v.docs)/float64(1+df[term])) + 1
	}

	return v
}

// Transform converts a text into a sparse TF-IDF vector using the
// fitted vocabulary. Terms outside the vocabulary are dropped, which
// is what keeps the query comparable to the documents.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	terms := tokenize(text)
	if len(terms) == 0 {
		return map[int]float64{}
	}

	counts := make(map[int]int)
	total := 0
	for _, term := range terms {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
			total++
		}
	}

	vec := make(map[int]float64, len(counts))
	for idx, count := range counts {
		tf := float64(count) / float64(total)
		vec[idx] = tf * v.idf[idx]
	}
	return vec
}

// VocabSize returns the number of distinct terms in the fitted
// vocabulary.
func (v *Vectorizer) VocabSize() int {
	return len(v.vocab)
}

// Cosine computes similarity between two sparse vectors.
// Returns 0.0 if either vector is empty or zero.
func Cosine(a, b map[int]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	// Iterate the smaller map for the dot product
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, normA, normB float64
	for idx, av := range a {
		normA += av * av
		if bv, ok := b[idx]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
