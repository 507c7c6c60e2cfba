package view

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
)

// Container resolves the project of an entity, fetches its workflow runs and
// decides between the empty state and the runs table.
type Container struct {
	projectName interfaces.ProjectNameResolver
	runs        interfaces.WorkflowRunsFetcher
}

func NewContainer(projectName interfaces.ProjectNameResolver, runs interfaces.WorkflowRunsFetcher) *Container {
	return &Container{
		projectName: projectName,
		runs:        runs,
	}
}

// Build returns the view for the entity. Runs are filtered by branch if it is
// not empty. basePath is the entity CI/CD page used for run detail links.
func (x *Container) Build(ctx context.Context, entity *model.Entity, branch, basePath string) *model.RunsView {
	projectName := x.projectName.ProjectName(ctx, entity)
	owner, repo := projectName.Split()

	state, actions := x.runs.WorkflowRuns(ctx, model.WorkflowRunsQuery{
		Owner:  owner,
		Repo:   repo,
		Branch: branch,
	})

	if !state.HasRuns() {
		return &model.RunsView{Empty: newEmptyState(projectName)}
	}

	return &model.RunsView{
		Table: NewRunsTable(RunsTableProps{
			Loading:          projectName.Loading || state.Loading,
			Retry:            actions.Retry,
			Runs:             state.Runs,
			ProjectName:      projectName.Value,
			Page:             state.Page,
			OnChangePage:     actions.SetPage,
			Total:            state.Total,
			PageSize:         state.PageSize,
			OnChangePageSize: actions.SetPageSize,
			BasePath:         basePath,
		}),
	}
}

// Render builds the view and draws it with renderer.
func (x *Container) Render(ctx context.Context, w io.Writer, renderer interfaces.Renderer, entity *model.Entity, branch, basePath string) error {
	return RenderView(w, renderer, x.Build(ctx, entity, branch, basePath))
}

// RenderView draws an already built view.
func RenderView(w io.Writer, renderer interfaces.Renderer, v *model.RunsView) error {
	if v.Empty != nil {
		if err := renderer.RenderEmptyState(w, v.Empty); err != nil {
			return goerr.Wrap(err, "failed to render empty state")
		}
		return nil
	}

	if err := renderer.RenderTable(w, v.Table); err != nil {
		return goerr.Wrap(err, "failed to render runs table")
	}
	return nil
}

func newEmptyState(projectName model.ProjectName) *model.EmptyState {
	return &model.EmptyState{
		Missing: "data",
		Title:   "No Workflow Data",
		Description: "This component has GitHub Actions enabled, but no data was found. " +
			"Have you created any Workflows? Click the button below to create a new Workflow.",
		Action: &model.LinkAction{
			Label: "Create new Workflow",
			Href:  projectName.NewWorkflowURL(),
		},
	}
}
