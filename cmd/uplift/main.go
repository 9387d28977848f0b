// Command uplift is the interactive mood-based wellness recommender.
package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/config"
	"github.com/emilyvoss/uplift/internal/logging"
	"github.com/emilyvoss/uplift/internal/mood"
	"github.com/emilyvoss/uplift/internal/session"
	"github.com/emilyvoss/uplift/internal/store"
	"github.com/emilyvoss/uplift/internal/ui"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Warning: logging unavailable: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Catalog: CSV sources first, sqlite snapshot as fallback. Tables
	// are loaded once and shared read-only for the whole session.
	cat := catalog.LoadDir(cfg.Catalog.Dir)
	if cat.Len() == 0 {
		if st, err := store.Open(cfg.DBPath()); err == nil {
			if snap, err := st.LoadCatalog(); err == nil && snap.Len() > 0 {
				logging.Info("using sqlite snapshot", "path", cfg.DBPath(), "items", snap.Len())
				cat = snap
			}
			st.Close()
		}
	}

	sess := session.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	topN := cfg.UI.TopN

	app := ui.NewApp(ui.AppConfig{
		Recommend: func(m mood.Label, t catalog.ContentType) tea.Cmd {
			return func() tea.Msg {
				rec := sess.Recommend(cat, string(m), t, topN)
				return ui.RecsLoaded{Mood: m, Type: t, Rec: rec}
			}
		},
		Shuffle: func() tea.Cmd {
			return func() tea.Msg {
				return ui.Shuffled{Rec: sess.Shuffle()}
			}
		},
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
