package cmd

import (
	"context"
	"flag"
	"fmt"

	"scrapefeed/domain"
)

func Title(args []string) error {
	fset := flag.NewFlagSet("title", flag.ContinueOnError)
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

	title, err := src.Title(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(title)
	return nil
}
