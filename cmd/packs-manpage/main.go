package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/bwillis/packs/internal/cli"
	"github.com/bwillis/packs/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PACKS",
		Section: "1",
		Source:  "packs " + version.Version,
		Manual:  "packs manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
