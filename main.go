package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/domain/elo"
	"wrestler_elo/internal/graphql"
	"wrestler_elo/internal/processing"
	"wrestler_elo/internal/server"
	"wrestler_elo/internal/sheets"
	"wrestler_elo/internal/tui"

	"github.com/rs/zerolog/log"
)

// Run modes
const (
	modeTUI   = "tui"
	modeServe = "serve"
	modePrint = "print"
)

func main() {
	// Parse command line flags
	mode := flag.String("mode", modeTUI, "Run mode: tui (interactive table), serve (JSON API) or print (one frame to stdout)")
	name := flag.String("name", "", "Initial name filter")
	brands := flag.String("brand", "", "Comma separated brands to show (default all; pass -brand= for none)")
	sortFlag := flag.String("sort", elo.FormatSort(elo.DefaultSort()), "Sort columns, e.g. -currentEloValue,name")
	flag.Parse()

	brandSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "brand" {
			brandSet = true
		}
	})

	switch *mode {
	case modeTUI:
		logFile, err := app.SetupEnvironmentWithLogFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logFile.Close()
	case modeServe, modePrint:
		app.SetupEnvironment()
	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q (expected %s, %s or %s)\n", *mode, modeTUI, modeServe, modePrint)
		os.Exit(2)
	}

	log.Info().
		Str("mode", *mode).
		Msg("Starting Wrestler Elo application")

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	columns := elo.NewColumnModel(config.DisplayLocation)

	state, err := initialState(columns, *name, *brands, brandSet, *sortFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid command line flags")
	}

	// Initialize stats source
	source, err := newStatsSource(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("source", config.Source).Msg("Failed to create stats source")
	}

	tracker := processing.NewCallTracker()
	cached := processing.NewCachedStatsSource(source, config.CacheTTL, tracker)
	binding := processing.NewQueryBinding(cached, config.FetchTimeout)

	switch *mode {
	case modePrint:
		result := binding.Fetch(ctx)
		fmt.Println(tui.RenderTableView(elo.Render(columns, result, state)))
	case modeTUI:
		err = tui.Run(ctx, binding, columns, state)
	case modeServe:
		err = server.New(binding, columns, config.CORSAllowedOrigins).ListenAndServe(ctx, config.ListenAddr)
	}

	cached.LogSummary(ctx)
	if counter, ok := source.(interface{ GetAPICallCount() int64 }); ok {
		log.Info().Int64("http_requests", counter.GetAPICallCount()).Msg("GraphQL request count")
	}

	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("Application stopped with error")
	}
}

// newStatsSource builds the configured upstream source
func newStatsSource(ctx context.Context, config *app.Config) (processing.StatsSource, error) {
	switch config.Source {
	case app.SourceSheets:
		sheetsClient, err := sheets.NewClient(ctx, config.CredentialsFile)
		if err != nil {
			return nil, err
		}
		reader := sheets.NewStatsReader(sheetsClient, config.SpreadsheetID, config.SheetRange)
		if err := reader.Verify(ctx); err != nil {
			return nil, err
		}
		return reader, nil
	default:
		return graphql.NewClient(config.GraphQLURL), nil
	}
}

// initialState applies the command line flags to the initial view state
func initialState(columns elo.ColumnModel, name, brands string, brandSet bool, sortValue string) (elo.ViewState, error) {
	state := elo.InitialViewState().OnNameInput(name)

	if brandSet {
		selected, err := elo.ParseBrands(strings.Split(brands, ","))
		if err != nil {
			return elo.ViewState{}, err
		}
		state = state.OnBrandSelectionChange(selected)
	}

	sorted, err := elo.ParseSort(columns, sortValue)
	if err != nil {
		return elo.ViewState{}, err
	}
	state.Sorted = sorted

	return state, nil
}
