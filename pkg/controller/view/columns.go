package view

import (
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/utils/route"
)

// RunDetailRoute is the path of a run detail page relative to the entity CI/CD page.
const RunDetailRoute = "/ci-cd/:id"

const (
	ActionReload      = "reload"
	actionRerunPrefix = "rerun:"
)

// RerunActionID returns the action ID of the re-run button of a run.
func RerunActionID(runID string) string {
	return actionRerunPrefix + runID
}

type column struct {
	model.Column
	render func(run *model.WorkflowRun, basePath string) model.Cell
}

var runColumns = []column{
	{
		Column: model.Column{Title: "ID", Field: "id", Type: model.ColumnTypeNumeric, Width: "150px", TermWidth: 10},
		render: func(run *model.WorkflowRun, _ string) model.Cell {
			return model.Cell{Kind: model.CellText, Text: run.ID}
		},
	},
	{
		Column: model.Column{Title: "Message", Field: "message", Type: model.ColumnTypeString},
		render: func(run *model.WorkflowRun, basePath string) model.Cell {
			return model.Cell{
				Kind: model.CellLink,
				Text: run.Message,
				Href: route.Join(basePath, route.Build(RunDetailRoute, map[string]string{"id": run.ID})),
			}
		},
	},
	{
		Column: model.Column{Title: "Source", Field: "source", Type: model.ColumnTypeString, NoWrap: true},
		render: func(run *model.WorkflowRun, _ string) model.Cell {
			return model.Cell{
				Kind:  model.CellLines,
				Lines: []string{run.Source.BranchName, run.Source.CommitHash()},
			}
		},
	},
	{
		Column: model.Column{Title: "Status", Field: "status", Type: model.ColumnTypeString},
		render: func(run *model.WorkflowRun, _ string) model.Cell {
			return model.Cell{
				Kind:       model.CellStatus,
				Status:     run.Status,
				Conclusion: run.Conclusion,
				Badge:      model.NewStatusBadge(run.Status, run.Conclusion),
			}
		},
	},
	{
		Column: model.Column{Title: "Actions", Field: "actions", Type: model.ColumnTypeString, Width: "10%", TermWidth: 8},
		render: func(run *model.WorkflowRun, _ string) model.Cell {
			return model.Cell{
				Kind: model.CellAction,
				Action: &model.Action{
					ID:      RerunActionID(run.ID),
					Icon:    "retry",
					Label:   "Rerun",
					Tooltip: "Rerun workflow",
					OnClick: run.OnReRunClick,
				},
			}
		},
	},
}
