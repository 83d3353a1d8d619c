package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reelgrid/reelgrid/catalog"
	"github.com/reelgrid/reelgrid/config"
)

var (
	cfgFile       string
	cfg           *config.Config
	logger        zerolog.Logger
	catalogClient *catalog.Client

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reelgrid",
	Short: "Browse and filter a movie catalog",
	Long: `reelgrid fetches a movie catalog from its web API and lets you filter it
by release-year range and genre, either as a terminal listing or as a
local web UI with a card grid.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion wires the build-time version info into the root command
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the catalog client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	catalogClient, err = catalog.NewClient(cfg.Catalog.URL, time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; disable color when configured off or when stderr
	// is not a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the catalog endpoint",
	Long:  `Fetch the catalog once and display basic statistics about it.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Fetching catalog from %s...\n", cfg.Catalog.URL)

	ctx := context.Background()
	movies, err := catalogClient.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}

	fmt.Println("✓ Catalog fetched successfully!")

	genres := make(map[string]bool)
	earliest, latest := 0, 0
	for _, m := range movies {
		for _, g := range m.Genres {
			genres[g] = true
		}
		if earliest == 0 || m.Year < earliest {
			earliest = m.Year
		}
		if m.Year > latest {
			latest = m.Year
		}
	}

	fmt.Printf("\nCatalog statistics:\n")
	fmt.Printf("- Total movies: %d\n", len(movies))
	fmt.Printf("- Distinct genres: %d\n", len(genres))
	if len(movies) > 0 {
		fmt.Printf("- Release years: %d-%d\n", earliest, latest)
	}

	return nil
}
