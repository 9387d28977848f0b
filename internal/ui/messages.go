// Package ui provides the Bubble Tea TUI for Uplift.
package ui

import (
	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/match"
	"github.com/emilyvoss/uplift/internal/mood"
)

// RecsLoaded is sent when a recommendation has been computed.
type RecsLoaded struct {
	Mood mood.Label
	Type catalog.ContentType
	Rec  match.Recommendation
	Err  error
}

// Shuffled is sent when the cached result set has been re-ordered.
type Shuffled struct {
	Rec match.Recommendation
}
