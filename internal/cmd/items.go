package cmd

import (
	"context"
	"flag"
	"fmt"

	"scrapefeed/domain"
)

func Items(args []string) error {
	fset := flag.NewFlagSet("items", flag.ContinueOnError)
	var cfg domain.Source
	sourceFlags(fset, &cfg)
	if err := fset.Parse(args); err != nil {
		return err
	}
	src, cleanup, err := buildSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	items, err := src.Items(context.Background())
	if err != nil {
		return err
	}
	for i, it := range items {
		fmt.Printf("%d. %s\n   link:  %s\n", i+1, it.Title, it.Link)
		if it.Image != "" {
			fmt.Printf("   image: %s\n", it.Image)
		}
	}
	return nil
}
