package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/skim/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	prefsPath := flag.String("prefs", "", "override preferences file path (optional)")
	debugLog := flag.String("debug", "", "write debug log to this file (optional)")
	follow := flag.Bool("f", false, "follow the active source, like tail -f")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: skim [flags] [file ...]\n")
		fmt.Fprintf(flag.CommandLine.Output(), "With no files, skim pages standard input.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Paths:     flag.Args(),
		PrefsPath: *prefsPath,
		DebugLog:  *debugLog,
		Follow:    *follow,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "skim: %v\n", err)
		return 1
	}
	return 0
}
