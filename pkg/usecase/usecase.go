package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/infra"
)

const DefaultCacheSize = 256

type UseCase struct {
	clients   *infra.Clients
	pageSize  int
	cacheSize int
	runs      *lru.Cache[string, *runsFetcher]
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithPageSize sets the initial page size of every workflow runs query.
func WithPageSize(pageSize int) Option {
	return func(x *UseCase) {
		x.pageSize = pageSize
	}
}

// WithCacheSize sets the number of workflow runs queries kept in memory.
func WithCacheSize(size int) Option {
	return func(x *UseCase) {
		x.cacheSize = size
	}
}

func New(clients *infra.Clients, options ...Option) (*UseCase, error) {
	uc := &UseCase{
		clients:   clients,
		pageSize:  model.DefaultPageSize,
		cacheSize: DefaultCacheSize,
	}

	for _, opt := range options {
		opt(uc)
	}

	if uc.pageSize <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "page size must be positive", goerr.V("pageSize", uc.pageSize))
	}

	runs, err := lru.New[string, *runsFetcher](uc.cacheSize)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to create workflow runs cache",
			goerr.V("cacheSize", uc.cacheSize),
			goerr.V("error", err),
		)
	}
	uc.runs = runs

	return uc, nil
}
