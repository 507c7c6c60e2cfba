package interfaces

import (
	"context"

	"github.com/secmon-lab/runboard/pkg/domain/model"
)

//go:generate moq -out ../mock/entity_repository_mock.go -pkg mock . EntityRepository

// EntityRepository stores software catalog entities
type EntityRepository interface {
	PutEntity(ctx context.Context, entity *model.Entity) error
	GetEntity(ctx context.Context, ref model.EntityRef) (*model.Entity, error)
	ListEntities(ctx context.Context) ([]*model.Entity, error)
}
