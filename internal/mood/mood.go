// Package mood maps user input to one of the canonical mood labels.
package mood

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Label is one of the canonical moods the recommender understands.
type Label string

const (
	Happy       Label = "happy"
	Stressed    Label = "stressed"
	Anxious     Label = "anxious"
	Calm        Label = "calm"
	Sad         Label = "sad"
	Motivated   Label = "motivated"
	Tired       Label = "tired"
	Lonely      Label = "lonely"
	Angry       Label = "angry"
	Relaxed     Label = "relaxed"
	Overwhelmed Label = "overwhelmed"
	Bored       Label = "bored"
	Grateful    Label = "grateful"
)

// Labels lists the canonical moods in priority order. The order is
// significant: keyword detection walks it front to back and the first
// mood with a keyword hit wins.
var Labels = []Label{
	Happy, Stressed, Anxious, Calm, Sad, Motivated, Tired,
	Lonely, Angry, Relaxed, Overwhelmed, Bored, Grateful,
}

// keywords associates each mood with the words that signal it in free
// text. Matching is by substring on the lower-cased input.
var keywords = map[Label][]string{
	Happy:       {"happy", "joy", "glad", "cheerful", "excited", "delighted", "wonderful"},
	Stressed:    {"stress", "pressure", "deadline", "tense", "frazzled", "overload"},
	Anxious:     {"anxious", "anxiety", "worried", "worry", "nervous", "panic", "uneasy"},
	Calm:        {"calm", "peaceful", "at peace", "serene", "centered", "tranquil"},
	Sad:         {"sad", "unhappy", "down", "blue", "crying", "heartbroken", "miserable"},
	Motivated:   {"motivated", "driven", "ambitious", "productive", "determined", "pumped"},
	Tired:       {"tired", "exhausted", "sleepy", "fatigued", "drained", "weary"},
	Lonely:      {"lonely", "alone", "isolated", "disconnected", "left out"},
	Angry:       {"angry", "mad", "furious", "irritated", "annoyed", "frustrated"},
	Relaxed:     {"relaxed", "chill", "unwind", "mellow", "laid back", "easygoing"},
	Overwhelmed: {"overwhelmed", "too much", "swamped", "buried", "drowning"},
	Bored:       {"bored", "boring", "nothing to do", "restless", "dull"},
	Grateful:    {"grateful", "thankful", "appreciative", "blessed", "gratitude"},
}

// Parse resolves a user-supplied label to a canonical mood.
func Parse(s string) (Label, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Labels {
		if s == string(l) {
			return l, true
		}
	}
	return "", false
}

// Detect maps free text to a canonical mood. Keyword matching is
// tried first in priority order; when no keyword hits, sentiment
// polarity picks a coarse three-way fallback. Detect never fails.
func Detect(text string) Label {
	lowered := strings.ToLower(text)

	for _, label := range Labels {
		for _, kw := range keywords[label] {
			if strings.Contains(lowered, kw) {
				return label
			}
		}
	}

	// Sentiment fallback. Most moods are unreachable here; only the
	// keyword path can produce the full label set.
	polarity := sentitext.PolarityScore(sentitext.Parse(text, lexicon.DefaultLexicon))
	switch {
	case polarity.Compound > 0.4:
		return Happy
	case polarity.Compound < -0.3:
		return Sad
	default:
		return Calm
	}
}
