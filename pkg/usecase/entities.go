package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
)

func (x *UseCase) GetEntity(ctx context.Context, ref model.EntityRef) (*model.Entity, error) {
	repo := x.clients.EntityRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "entity repository is not configured")
	}

	entity, err := repo.GetEntity(ctx, ref)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get entity", goerr.V("ref", ref.String()))
	}

	return entity, nil
}

func (x *UseCase) ListEntities(ctx context.Context) ([]*model.Entity, error) {
	repo := x.clients.EntityRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "entity repository is not configured")
	}

	entities, err := repo.ListEntities(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list entities")
	}

	return entities, nil
}
