package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/repository/firestore"
	"github.com/secmon-lab/runboard/pkg/repository/memory"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Catalog struct {
	files      []string
	projectID  string
	databaseID string
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "catalog-file",
			Usage:       "Catalog file (catalog-info.yaml), multiple documents are allowed",
			Category:    "Catalog",
			Aliases:     []string{"c"},
			Sources:     cli.EnvVars("RUNBOARD_CATALOG_FILE"),
			Destination: &x.files,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID to store catalog entities (optional)",
			Category:    "Catalog",
			Sources:     cli.EnvVars("RUNBOARD_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Catalog",
			Sources:     cli.EnvVars("RUNBOARD_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Catalog) FirestoreEnabled() bool {
	return x.projectID != ""
}

func (x *Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("files", x.files),
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

// NewRepository returns Firestore repository if project ID is set, memory
// repository otherwise. Entities of catalog files are put into it.
func (x *Catalog) NewRepository(ctx context.Context) (interfaces.EntityRepository, error) {
	var repo interfaces.EntityRepository
	if x.FirestoreEnabled() {
		r, err := firestore.New(ctx, x.projectID, x.databaseID)
		if err != nil {
			return nil, err
		}
		repo = r
	} else {
		repo = memory.New()
	}

	for _, file := range x.files {
		n, err := memory.LoadCatalogFile(ctx, repo, file)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load catalog")
		}
		logging.From(ctx).Info("catalog loaded", "file", file, "entities", n)
	}

	return repo, nil
}
