package cmd

import (
	"context"
	"flag"
	"fmt"

	"scrapefeed/domain"
)

func Feed(args []string) error {
	fset := flag.NewFlagSet("feed", flag.ContinueOnError)
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

	rss, err := src.Feed(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(rss)
	return nil
}
