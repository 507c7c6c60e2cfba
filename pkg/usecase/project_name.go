package usecase

import (
	"context"
	"strings"

	"github.com/secmon-lab/runboard/pkg/domain/model"
)

// ProjectName returns "owner/repo" from the github.com/project-slug
// annotation. Annotations are already loaded, so it is never loading.
func (x *UseCase) ProjectName(ctx context.Context, entity *model.Entity) model.ProjectName {
	return model.ProjectName{
		Value: strings.TrimSpace(entity.Annotation(model.AnnotationProjectSlug)),
	}
}
