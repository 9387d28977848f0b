package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/mood"
)

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	hints := fs.Bool("hints", false, "Include mood-hint coverage per canonical mood")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	cat := loadCatalog(cfg)

	fmt.Printf("Total items:     %d\n\n", cat.Len())
	for _, typ := range catalog.Types {
		items := cat.Table(typ)
		hinted := 0
		for _, item := range items {
			if item.MoodHint != "" {
				hinted++
			}
		}
		fmt.Printf("%-12s %4d items, %d with mood hints\n", typ.Display(), len(items), hinted)
	}

	if !*hints {
		return
	}

	// Which canonical moods have direct tag coverage, per table.
	// Moods with no coverage always take the similarity path.
	fmt.Println("\nMood-hint coverage:")
	for _, label := range mood.Labels {
		fmt.Printf("  %-12s", label)
		for _, typ := range catalog.Types {
			count := 0
			for _, item := range cat.Table(typ) {
				if strings.Contains(strings.ToLower(item.MoodHint), string(label)) {
					count++
				}
			}
			fmt.Printf(" %s:%-3d", typ.Display()[:3], count)
		}
		fmt.Println()
	}
}
