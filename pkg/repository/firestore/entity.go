package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type entityRepository struct {
	client     *firestore.Client
	collection string
}

// ToFirestoreID converts an entity reference to a Firestore-safe document ID.
// Uses colon (:) as separator since entity names cannot contain colons.
func ToFirestoreID(ref model.EntityRef) (string, error) {
	if ref.Kind == "" || ref.Namespace == "" || ref.Name == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "entity reference has empty part",
			goerr.V("ref", ref.String()),
		)
	}

	for _, part := range []string{ref.Kind, ref.Namespace, ref.Name} {
		if strings.ContainsAny(part, ":/") {
			return "", goerr.Wrap(repository.ErrInvalidInput, "entity reference contains invalid character",
				goerr.V("ref", ref.String()),
			)
		}
	}

	return ref.Kind + ":" + ref.Namespace + ":" + ref.Name, nil
}

func (r *entityRepository) PutEntity(ctx context.Context, entity *model.Entity) error {
	if err := entity.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid entity", goerr.V("error", err))
	}

	docID, err := ToFirestoreID(entity.Ref())
	if err != nil {
		return err
	}

	if _, err := r.entities().Doc(docID).Set(ctx, entity); err != nil {
		return goerr.Wrap(err, "failed to put entity",
			goerr.V("ref", entity.Ref().String()),
		)
	}

	return nil
}

func (r *entityRepository) GetEntity(ctx context.Context, ref model.EntityRef) (*model.Entity, error) {
	docID, err := ToFirestoreID(ref)
	if err != nil {
		return nil, err
	}

	snap, err := r.entities().Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "entity not found",
				goerr.V("ref", ref.String()),
			)
		}
		return nil, goerr.Wrap(err, "failed to get entity",
			goerr.V("ref", ref.String()),
		)
	}

	var entity model.Entity
	if err := snap.DataTo(&entity); err != nil {
		return nil, goerr.Wrap(err, "failed to decode entity",
			goerr.V("ref", ref.String()),
		)
	}

	return &entity, nil
}

func (r *entityRepository) ListEntities(ctx context.Context) ([]*model.Entity, error) {
	iter := r.entities().OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var entities []*model.Entity
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate entities")
		}

		var entity model.Entity
		if err := snap.DataTo(&entity); err != nil {
			return nil, goerr.Wrap(err, "failed to decode entity", goerr.V("docID", snap.Ref.ID))
		}
		entities = append(entities, &entity)
	}

	return entities, nil
}
