package main

import (
	"log"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/config"
	"github.com/emilyvoss/uplift/internal/store"
)

// loadConfig loads the application config or fatals.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// openDB opens the sqlite snapshot or fatals.
func openDB(cfg *config.Config) *store.Store {
	st, err := store.Open(cfg.DBPath())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	return st
}

// loadCatalog prefers the sqlite snapshot when it has content, falling
// back to the CSV sources.
func loadCatalog(cfg *config.Config) *catalog.Catalog {
	if _, err := os.Stat(cfg.DBPath()); err == nil {
		st, err := store.Open(cfg.DBPath())
		if err == nil {
			defer st.Close()
			if snap, err := st.LoadCatalog(); err == nil && snap.Len() > 0 {
				return snap
			}
		}
	}
	return catalog.LoadDir(cfg.Catalog.Dir)
}

// truncate shortens a string to a display width, appending "..." if
// truncated. Width-aware so wide runes don't break the table columns.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
