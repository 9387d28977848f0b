package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emilyvoss/uplift/internal/catalog"
)

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dir := fs.String("dir", "", "Catalog CSV directory (default: configured dir)")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	if *dir == "" {
		*dir = cfg.Catalog.Dir
	}

	st := openDB(cfg)
	defer st.Close()

	total := 0
	for _, typ := range catalog.Types {
		path := filepath.Join(*dir, catalog.FileName(typ))
		items, err := catalog.LoadFile(path, typ)
		if err != nil {
			fmt.Printf("%-12s skipped (%v)\n", typ.Display(), err)
			continue
		}

		saved, err := st.SaveItems(items)
		if err != nil {
			fmt.Fprintf(os.Stderr, "import %s: %v\n", typ, err)
			os.Exit(1)
		}
		total += saved
		fmt.Printf("%-12s %d rows, %d new\n", typ.Display(), len(items), saved)
	}

	fmt.Printf("\nImported %d new items into %s\n", total, cfg.DBPath())
}
