// Command fulf performs a parallel fuzzy line search across a
// directory tree and prints the top matches as "path:line:1text".
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
	log15 "gopkg.in/inconshreveable/log15.v2"

	"github.com/keegancsmith/fulf/fzyalgo"
	"github.com/keegancsmith/fulf/search"
	"github.com/keegancsmith/fulf/walk"
)

func main() {
	flag.Usage = usage
	resultsCap := flag.Int("results-cap", search.DefaultResultsCap, "maximum number of results retained in memory")
	bonusThreads := flag.Int("bonus-threads", -1, "extra worker goroutines beyond the first (-1: pick a default)")
	maxLineLen := flag.Int("max-line-len", search.DefaultMaxLineLen, "lines longer than this are never scored")
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	root, needle := flag.Arg(0), flag.Arg(1)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("fulf: failed to load .env: %s", err)
	}
	if _, err := maxprocs.Set(); err != nil {
		log.Printf("fulf: automaxprocs: failed to set GOMAXPROCS: %s", err)
	}

	logger := log15.New("cmd", "fulf")

	rules := search.NewRules()
	rules.ResultsCap = *resultsCap
	if *bonusThreads >= 0 {
		rules.BonusThreads = uint8(*bonusThreads)
	}

	w := walk.New(root)
	w.Logger = logger

	opts := search.FindOptions{
		Rules:        rules,
		MaxLineLen:   *maxLineLen,
		SortAndPrint: sortDescending,
		Logger:       logger,
	}

	matches, total := search.FindWithOptions(context.Background(), root, needle, w, fzyalgo.AsciiScore, fzyalgo.Utf8Score, opts)

	for _, m := range matches {
		fmt.Println(m.Display)
	}
	logger.Info("search complete", "matches", len(matches), "total", total)
}

func sortDescending(buffer []search.Match, total int) {
	sort.Slice(buffer, func(i, j int) bool {
		return buffer[i].Score > buffer[j].Score
	})
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fulf [flags] <root> <needle>\n\n")
	flag.PrintDefaults()
}
