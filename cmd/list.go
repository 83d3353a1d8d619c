package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reelgrid/reelgrid/filter"
	"github.com/reelgrid/reelgrid/session"
)

var (
	minYear    int
	maxYear    int
	genreFlags []string
	filterExpr string
	preset     string
	showDetail bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies matching the filter criteria",
	Long: `Fetch the catalog and list the movies that match the year range and
genre selection. An expr filter expression can narrow the result further,
e.g. --filter 'Year > 2000 and hasGenre("Drama")'.`,
	RunE: runList,
}

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres available in the catalog",
	RunE:  runGenres,
}

func init() {
	listCmd.Flags().IntVar(&minYear, "min-year", 0, "minimum release year (inclusive)")
	listCmd.Flags().IntVar(&maxYear, "max-year", 0, "maximum release year (inclusive)")
	listCmd.Flags().StringSliceVarP(&genreFlags, "genre", "g", nil, "genre to select (repeatable)")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter expression from config")
	listCmd.Flags().BoolVar(&showDetail, "details", false, "show genres, runtime, rating and description")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genresCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := fetchSession(cmd)
	if err != nil {
		return err
	}

	shown := sess.View().Shown

	// Optional expression filter on top of the structured criteria
	expression, err := expressionToUse()
	if err != nil {
		return err
	}
	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Debug().Str("filter", expression).Msg("Applying filter expression")
		shown = f.Apply(shown)
	}

	if len(shown) == 0 {
		fmt.Println("No movies found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d movies:\n", len(shown))
	fmt.Println(strings.Repeat("-", 80))

	for _, movie := range shown {
		fmt.Printf("• %s (%d)\n", movie.Title, movie.Year)
		if showDetail {
			if len(movie.Genres) > 0 {
				fmt.Printf("  Genres: %s\n", strings.Join(movie.Genres, ", "))
			}
			if movie.Runtime != "" {
				fmt.Printf("  Runtime: %s\n", movie.Runtime)
			}
			if movie.Rating != "" {
				fmt.Printf("  Rating: %s\n", movie.Rating)
			}
			if movie.Description != "" {
				fmt.Printf("  %s\n", movie.Description)
			}
		}
	}

	return nil
}

func runGenres(cmd *cobra.Command, args []string) error {
	sess, err := fetchSession(cmd)
	if err != nil {
		return err
	}

	genres := sess.View().GenresAvailable
	if len(genres) == 0 {
		fmt.Println("The catalog carries no genre labels.")
		return nil
	}

	fmt.Printf("\nAvailable genres (%d):\n", len(genres))
	for _, g := range genres {
		fmt.Printf("  • %s\n", g)
	}

	return nil
}

// fetchSession fetches the catalog and seeds a session with it, applying
// criteria from flags over config defaults.
func fetchSession(cmd *cobra.Command) (*session.Session, error) {
	ctx := context.Background()

	logger.Info().Str("endpoint", cfg.Catalog.URL).Msg("Fetching catalog")

	movies, err := catalogClient.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	sess.OnDataLoaded(movies)

	applyCriteria(cmd, sess)
	return sess, nil
}

// applyCriteria layers command-line criteria over the config defaults
func applyCriteria(cmd *cobra.Command, sess *session.Session) {
	lower, upper := cfg.Filter.MinYear, cfg.Filter.MaxYear
	if cmd.Flags().Changed("min-year") {
		lower = minYear
	}
	if cmd.Flags().Changed("max-year") {
		upper = maxYear
	}
	if lower != 0 {
		sess.SetMinYear(&lower)
	}
	if upper != 0 {
		sess.SetMaxYear(&upper)
	}

	genres := cfg.Filter.Genres
	if cmd.Flags().Changed("genre") {
		genres = genreFlags
	}
	for _, g := range genres {
		sess.AddGenre(g)
	}
}

// expressionToUse picks the expression source: flag, then preset, then
// config default
func expressionToUse() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}
	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}
	return cfg.Filter.DefaultExpression, nil
}
