package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"visa-route-checker/internal/app"
	"visa-route-checker/internal/config"
	"visa-route-checker/internal/platform/obs"
	"visa-route-checker/internal/presenter"
	"visa-route-checker/internal/services"

	"go.uber.org/zap"
)

// visacheck asks for a trip and a traveler, searches flight offers and
// reports which routes need a transit or Schengen visa.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("visacheck", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var defaults answers
	fs.StringVar(&defaults.Origin, "from", "BOM", "origin IATA code")
	fs.StringVar(&defaults.Destination, "to", "JFK", "destination IATA code")
	fs.StringVar(&defaults.Date, "date", "today", "departure date (YYYY-MM-DD or today)")
	fs.StringVar(&defaults.Passport, "passport", "IND", "passport country code or name")
	fs.StringVar(&defaults.USVisa, "us-visa", "no", "holds a valid US visa (yes/no)")
	maxResults := fs.Int("max", 0, "maximum offers to check (default MAX_RESULTS or 3)")
	yes := fs.Bool("yes", false, "use the flag values without prompting")
	demo := fs.Bool("demo", false, "use canned demo offers instead of calling Amadeus")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	out := presenter.NewTextPresenter(stdout)

	cfg, err := config.Load()
	if err != nil {
		out.RenderError(err)
		return 1
	}

	// Keep the terminal for results; only warnings reach stderr.
	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	logger, err := obs.Init(cfg.Env, level)
	if err != nil {
		out.RenderError(err)
		return 1
	}
	defer logger.Sync()

	provider, _, err := app.NewOfferProvider(cfg, *demo)
	if err != nil {
		out.RenderError(err)
		return 1
	}

	ctx := context.Background()
	recorder, closeRecorder, err := app.OpenRecorder(ctx, cfg)
	if err != nil {
		logger.Warn("search history disabled", zap.Error(err))
		closeRecorder = func() error { return nil }
	}
	defer closeRecorder()

	a := defaults
	if !*yes {
		fmt.Fprintln(stdout, "🧳 Traveler info")
		a, err = newPrompter(stdin, stdout).collect(defaults)
		if err != nil {
			out.RenderError(err)
			return 1
		}
		fmt.Fprintln(stdout)
	}

	if *maxResults == 0 {
		*maxResults = cfg.MaxResults
	}
	req, err := toRequest(a, *maxResults)
	if err != nil {
		out.RenderError(err)
		return 1
	}

	res, err := services.CheckRoutes(ctx, req, provider, recorder)
	if err != nil {
		out.RenderError(err)
		return 1
	}

	if err := out.Render(res); err != nil {
		logger.Error("render results", zap.Error(err))
		return 1
	}
	return 0
}
