package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
)

// DefaultCollection stores catalog entities.
const DefaultCollection = "entity"

type Option func(*entityRepository)

// WithCollection changes the collection of entities, e.g. to isolate test runs.
func WithCollection(name string) Option {
	return func(r *entityRepository) {
		r.collection = name
	}
}

// New creates a new Firestore-based repository. Empty databaseID means the
// default database of the project.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.EntityRepository, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &entityRepository{
		client:     client,
		collection: DefaultCollection,
	}
	for _, opt := range options {
		opt(repo)
	}

	return repo, nil
}

func (r *entityRepository) entities() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}
