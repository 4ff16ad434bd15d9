package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"scrapefeed/internal/cmd"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "--help", "-h", "help":
		printHelp()
		return
	case "feed":
		if err := cmd.Feed(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	case "items":
		if err := cmd.Items(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	case "search":
		if err := cmd.Search(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	case "title":
		if err := cmd.Title(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown command: %s\n\n", command)
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`Usage:
  scrapefeed COMMAND [OPTIONS]

Commands:
   feed       scrape a page and print it as an RSS 2.0 document
   items      print the extracted items (--url, --list, --title, --link, --image)
   search     print elements whose text contains a word (--url, --word)
   title      print the page title
   help       show this help

Selectors are raw XPath (starting with "/" or "id(") or CSS expressions.
Configuration comes from the environment (STORE_DRIVER, POSTGRES_*,
CACHE_TTL, FETCH_TIMEOUT, LOG_LEVEL, LOG_FILE); a .env file is honored.
`)
}
