package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/emilyvoss/uplift/internal/catalog"
	"github.com/emilyvoss/uplift/internal/match"
	"github.com/emilyvoss/uplift/internal/mood"
)

func runRecommend() {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	typeName := fs.String("type", "music", "Content type: music, meditation, podcast, reading")
	topN := fs.Int("n", 5, "Number of recommendations")
	fs.Parse(os.Args[1:])

	typ, ok := catalog.ParseContentType(*typeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown content type %q\n", *typeName)
		fmt.Fprintln(os.Stderr, "valid types: music, meditation, podcast, reading")
		return
	}

	// Mood from the first positional arg, or an interactive prompt.
	var input string
	if fs.NArg() > 0 {
		input = strings.Join(fs.Args(), " ")
	} else {
		fmt.Print("Enter your mood (happy, sad, stressed, anxious, calm, ...): ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			input = scanner.Text()
		}
	}

	label, ok := mood.Parse(input)
	if !ok {
		label = mood.Detect(input)
		fmt.Printf("Detected mood: %s\n", label)
	}

	cfg := loadConfig()
	cat := loadCatalog(cfg)

	matcher := match.NewMatcher(rand.New(rand.NewSource(time.Now().UnixNano())))
	rec := matcher.Match(cat.Table(typ), string(label), *topN)

	fmt.Printf("\nTop %s recommendations for feeling %s (%s):\n\n",
		typ.Display(), label, rec.Mode)

	if len(rec.Results) == 0 {
		fmt.Println("  (catalog is empty)")
		return
	}

	for i, r := range rec.Results {
		score := ""
		if rec.Mode == match.RankedBySimilarity {
			score = fmt.Sprintf("%3.0f%%", r.Similarity)
		}
		fmt.Printf("  %d. %-45s %-25s %s\n", i+1,
			truncate(r.Item.Title, 45), truncate(r.Item.Creator, 25), score)
		if r.Item.URL != "" {
			fmt.Printf("     %s\n", r.Item.URL)
		}
	}
}
