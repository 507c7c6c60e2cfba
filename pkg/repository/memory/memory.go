package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/repository"
)

type entityRepository struct {
	mu       sync.RWMutex
	entities map[model.EntityRef]*model.Entity
}

// New creates a new in-memory repository
func New() interfaces.EntityRepository {
	return &entityRepository{
		entities: make(map[model.EntityRef]*model.Entity),
	}
}

func (r *entityRepository) PutEntity(ctx context.Context, entity *model.Entity) error {
	if err := entity.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid entity", goerr.V("error", err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities[entity.Ref()] = copyEntity(entity)
	return nil
}

func (r *entityRepository) GetEntity(ctx context.Context, ref model.EntityRef) (*model.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.entities[ref]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "entity not found",
			goerr.V("ref", ref.String()),
		)
	}

	return copyEntity(entity), nil
}

func (r *entityRepository) ListEntities(ctx context.Context) ([]*model.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]*model.Entity, 0, len(r.entities))
	for _, entity := range r.entities {
		entities = append(entities, copyEntity(entity))
	}

	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Ref().String() < entities[j].Ref().String()
	})

	return entities, nil
}

func copyEntity(entity *model.Entity) *model.Entity {
	copied := *entity
	if entity.Metadata.Annotations != nil {
		copied.Metadata.Annotations = make(map[string]string, len(entity.Metadata.Annotations))
		for k, v := range entity.Metadata.Annotations {
			copied.Metadata.Annotations[k] = v
		}
	}
	return &copied
}
