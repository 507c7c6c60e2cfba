package memory

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/utils/safe"
	"gopkg.in/yaml.v3"
)

// DecodeCatalog reads catalog-info.yaml style documents separated by "---".
// Empty documents are skipped.
func DecodeCatalog(r io.Reader) ([]*model.Entity, error) {
	decoder := yaml.NewDecoder(r)

	var entities []*model.Entity
	for i := 0; ; i++ {
		var entity model.Entity
		if err := decoder.Decode(&entity); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, goerr.Wrap(err, "failed to decode catalog document", goerr.V("index", i))
		}
		if entity.Kind == "" && entity.Metadata.Name == "" {
			continue
		}
		entities = append(entities, &entity)
	}

	return entities, nil
}

// LoadCatalogFile puts all entities of a catalog file into repo.
func LoadCatalogFile(ctx context.Context, repo interfaces.EntityRepository, path string) (int, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open catalog file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	entities, err := DecodeCatalog(fd)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	for _, entity := range entities {
		if err := repo.PutEntity(ctx, entity); err != nil {
			return 0, goerr.Wrap(err, "failed to put entity", goerr.V("path", path), goerr.V("name", entity.Metadata.Name))
		}
	}

	return len(entities), nil
}
