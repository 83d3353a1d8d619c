package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reelgrid/reelgrid/session"
	"github.com/reelgrid/reelgrid/web"
)

var listenAddr string

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Serve the catalog browser UI",
	Long: `Start a local web server with the movie grid and filter controls.
The catalog is fetched once at startup; while the fetch is outstanding the
page shows a loading state, and a failed fetch shows the error until the
tool is restarted.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address (overrides server.listen)")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Listen
	if listenAddr != "" {
		addr = listenAddr
	}

	sess := session.New()
	server := web.NewServer(addr, sess, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start()
	})

	// The one startup fetch; its outcome flows into the session through
	// the server so updates never interleave with filter changes.
	g.Go(func() error {
		movies, err := catalogClient.Fetch(ctx)
		server.OnCatalogResult(movies, err)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
