package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/runboard/pkg/cli/config"
	"github.com/secmon-lab/runboard/pkg/controller/server"
	"github.com/secmon-lab/runboard/pkg/infra"
	"github.com/secmon-lab/runboard/pkg/usecase"
	"github.com/secmon-lab/runboard/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		refreshInterval int64

		github  config.GitHub
		catalog config.Catalog
		fetcher config.Fetcher
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("RUNBOARD_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "refresh-interval",
			Usage:       "Seconds between page reloads while workflow runs are loading (0 disables)",
			Value:       server.DefaultRefreshInterval,
			Sources:     cli.EnvVars("RUNBOARD_REFRESH_INTERVAL"),
			Destination: &refreshInterval,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			catalog.Flags(),
			fetcher.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Catalog", &catalog),
				slog.Any("Fetcher", &fetcher),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			repo, err := catalog.NewRepository(ctx)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHubActions(ghClient),
				infra.WithEntityRepository(repo),
			)

			uc, err := usecase.New(clients, fetcher.Options()...)
			if err != nil {
				return err
			}
			s := server.New(uc,
				server.WithGitHubSecret(github.Secret()),
				server.WithRefreshInterval(int(refreshInterval)),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
