package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"scrapefeed/domain"
	"scrapefeed/internal/htmltree"
)

func Search(args []string) error {
	fset := flag.NewFlagSet("search", flag.ContinueOnError)
	var cfg domain.Source
	sourceFlags(fset, &cfg)
	if err := fset.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.SearchWord) == "" {
		return fmt.Errorf("--word is required")
	}
	src, cleanup, err := buildSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	matches, err := src.Search(context.Background())
	if err != nil {
		return err
	}
	for i, n := range matches {
		text := strings.Join(strings.Fields(htmltree.Text(n)), " ")
		fmt.Printf("%d. <%s> %s\n", i+1, n.Data, text)
	}
	return nil
}
