package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/runboard/pkg/domain/model"
)

// ProjectNameResolver resolves "owner/repo" of an entity.
type ProjectNameResolver interface {
	ProjectName(ctx context.Context, entity *model.Entity) model.ProjectName
}

// WorkflowRunsFetcher returns the current state of a query and the handlers
// to change it.
type WorkflowRunsFetcher interface {
	WorkflowRuns(ctx context.Context, query model.WorkflowRunsQuery) (*model.WorkflowRunsState, *model.WorkflowRunsActions)
}

type UseCase interface {
	ProjectNameResolver
	WorkflowRunsFetcher

	GetEntity(ctx context.Context, ref model.EntityRef) (*model.Entity, error)
	ListEntities(ctx context.Context) ([]*model.Entity, error)
	RefreshWorkflowRuns(ctx context.Context, owner, repo string) int
}
