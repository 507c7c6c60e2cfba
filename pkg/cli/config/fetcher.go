package config

import (
	"log/slog"

	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Fetcher struct {
	pageSize  int64
	cacheSize int64
}

func (x *Fetcher) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "runs-page-size",
			Usage:       "Initial number of workflow runs per page",
			Category:    "Workflow Runs",
			Sources:     cli.EnvVars("RUNBOARD_RUNS_PAGE_SIZE"),
			Value:       model.DefaultPageSize,
			Destination: &x.pageSize,
		},
		&cli.Int64Flag{
			Name:        "runs-cache-size",
			Usage:       "Number of workflow runs queries kept in memory",
			Category:    "Workflow Runs",
			Sources:     cli.EnvVars("RUNBOARD_RUNS_CACHE_SIZE"),
			Value:       usecase.DefaultCacheSize,
			Destination: &x.cacheSize,
		},
	}
}

func (x *Fetcher) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithPageSize(int(x.pageSize)),
		usecase.WithCacheSize(int(x.cacheSize)),
	}
}

func (x *Fetcher) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("pageSize", x.pageSize),
		slog.Int64("cacheSize", x.cacheSize),
	)
}
