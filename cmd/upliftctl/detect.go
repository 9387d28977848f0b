package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/emilyvoss/uplift/internal/mood"
)

func runDetect() {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: upliftctl detect <free text>")
		return
	}

	text := strings.Join(fs.Args(), " ")
	fmt.Printf("%s\n", mood.Detect(text))
}
