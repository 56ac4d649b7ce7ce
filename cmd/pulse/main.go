package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lysyi3m/news-pulse/app/cfg"
	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/pipeline"
)

type options struct {
	DateRange  string `short:"r" long:"date-range" default:"1d" choice:"1d" choice:"3d" choice:"1w" choice:"1m" description:"How far back to look for news"`
	JSON       bool   `long:"json" description:"Print the report as JSON"`
	Concurrent bool   `long:"concurrent" description:"Query news search and RSS feeds concurrently"`
	Verbose    bool   `short:"v" long:"verbose" description:"Log provider activity to stderr"`

	Args struct {
		Company string `positional-arg-name:"company" description:"Company name or ticker"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.LoadEnvFiles(".env"); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return 1
	}

	// Service settings come from the environment only; flags above are the CLI's own.
	appConfig, err := cfg.Parse([]string{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return 1
	}
	appConfig.ConcurrentFetch = appConfig.ConcurrentFetch || opts.Concurrent

	components, err := pipeline.Setup(appConfig, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := components.Service.Analyze(ctx, opts.Args.Company, news.ParseDateRange(opts.DateRange))
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return 1
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
			return 1
		}
		return 0
	}

	fmt.Println(Render(report))
	return 0
}
