package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/repository"
)

// TestAll runs all test cases for EntityRepository
// This is the main entry point for testing any EntityRepository implementation
func TestAll(t *testing.T, repo interfaces.EntityRepository) {
	t.Run("EntityCRUD", func(t *testing.T) {
		TestEntityCRUD(t, repo)
	})
	t.Run("EntityNotFound", func(t *testing.T) {
		TestEntityNotFound(t, repo)
	})
	t.Run("ListEntities", func(t *testing.T) {
		TestListEntities(t, repo)
	})
	t.Run("InvalidEntity", func(t *testing.T) {
		TestInvalidEntity(t, repo)
	})
}

func newTestEntity(namespace string) *model.Entity {
	name := fmt.Sprintf("component-%s", uuid.New().String()[:8])
	return &model.Entity{
		APIVersion: "backstage.io/v1alpha1",
		Kind:       "Component",
		Metadata: model.EntityMetadata{
			Name:      name,
			Namespace: namespace,
			Annotations: map[string]string{
				model.AnnotationProjectSlug: "acme/" + name,
			},
		},
	}
}

// TestEntityCRUD tests put and get of an entity, including overwrite
func TestEntityCRUD(t *testing.T, repo interfaces.EntityRepository) {
	ctx := context.Background()
	entity := newTestEntity("")

	gt.NoError(t, repo.PutEntity(ctx, entity))

	retrieved, err := repo.GetEntity(ctx, entity.Ref())
	gt.NoError(t, err)
	gt.V(t, retrieved.Kind).Equal(entity.Kind)
	gt.V(t, retrieved.Metadata.Name).Equal(entity.Metadata.Name)
	gt.V(t, retrieved.Annotation(model.AnnotationProjectSlug)).Equal(entity.Annotation(model.AnnotationProjectSlug))

	// Kind is case-insensitive in reference
	retrieved, err = repo.GetEntity(ctx, model.NewEntityRef("COMPONENT", "default", entity.Metadata.Name))
	gt.NoError(t, err)
	gt.V(t, retrieved.Metadata.Name).Equal(entity.Metadata.Name)

	// Modifying returned entity does not affect stored one
	retrieved.Metadata.Annotations[model.AnnotationProjectSlug] = "modified/modified"
	again, err := repo.GetEntity(ctx, entity.Ref())
	gt.NoError(t, err)
	gt.V(t, again.Annotation(model.AnnotationProjectSlug)).Equal(entity.Annotation(model.AnnotationProjectSlug))

	// Overwrite
	entity.Metadata.Annotations[model.AnnotationProjectSlug] = "acme/renamed"
	gt.NoError(t, repo.PutEntity(ctx, entity))
	again, err = repo.GetEntity(ctx, entity.Ref())
	gt.NoError(t, err)
	gt.V(t, again.Annotation(model.AnnotationProjectSlug)).Equal("acme/renamed")
}

// TestEntityNotFound tests that missing entity returns ErrNotFound
func TestEntityNotFound(t *testing.T, repo interfaces.EntityRepository) {
	ctx := context.Background()
	_, err := repo.GetEntity(ctx, model.NewEntityRef("component", "default", "missing-"+uuid.NewString()[:8]))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestListEntities tests that put entities appear in the list
func TestListEntities(t *testing.T, repo interfaces.EntityRepository) {
	ctx := context.Background()
	e1 := newTestEntity("default")
	e2 := newTestEntity("team-" + uuid.NewString()[:8])
	gt.NoError(t, repo.PutEntity(ctx, e1))
	gt.NoError(t, repo.PutEntity(ctx, e2))

	entities, err := repo.ListEntities(ctx)
	gt.NoError(t, err)

	found := map[string]bool{}
	for _, e := range entities {
		found[e.Ref().String()] = true
	}
	gt.True(t, found[e1.Ref().String()])
	gt.True(t, found[e2.Ref().String()])
}

// TestInvalidEntity tests that entity without kind or name is rejected
func TestInvalidEntity(t *testing.T, repo interfaces.EntityRepository) {
	ctx := context.Background()

	err := repo.PutEntity(ctx, &model.Entity{Metadata: model.EntityMetadata{Name: "no-kind"}})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.PutEntity(ctx, &model.Entity{Kind: "Component"})
	gt.Error(t, err)
}
