package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/suparena/registrystore"
	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/tagdata"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := registrystore.GetVersionInfo()
		fmt.Printf("RegistryStore tagcheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := run(dir); err != nil {
		fmt.Fprintf(os.Stderr, "tagcheck: %v\n", err)
		os.Exit(1)
	}
}

// run loads every tag definition under dir and validates the values
// as identifiers. Binding against a registry is out of scope here; the
// check catches malformed files before they reach a reload.
func run(dir string) error {
	src := tagdata.NewFSSource(os.DirFS(dir))

	defs, err := src.Load(context.Background())
	if err != nil {
		return err
	}

	ids := make([]identifier.Identifier, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	problems := 0
	for _, id := range ids {
		def := defs[id]
		for _, v := range def.Values {
			if _, err := identifier.Parse(v); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
				problems++
			}
		}

		marker := ""
		if def.Replace {
			marker = " (replace)"
		}
		fmt.Printf("%s: %d values%s\n", id, len(def.Values), marker)
	}

	if problems > 0 {
		return fmt.Errorf("%d invalid tag values in %s", problems, dir)
	}

	fmt.Printf("%d tag definitions OK in %s\n", len(defs), dir)
	return nil
}
