package view

import "github.com/secmon-lab/runboard/pkg/domain/model"

var DefaultPageSizeOptions = []int{5, 10, 20, 50}

// RunsTableProps is the input of the runs table. Callbacks are forwarded
// verbatim to the table.
type RunsTableProps struct {
	Loading          bool
	Retry            func()
	Runs             []*model.WorkflowRun
	ProjectName      string
	Page             int
	OnChangePage     func(page int)
	Total            int
	PageSize         int
	OnChangePageSize func(pageSize int)

	// BasePath is the entity CI/CD page that run detail links are relative to.
	BasePath string
}

// NewRunsTable builds the table of workflow runs. Pagination values are
// passed through as given; no clamping or validation happens here.
func NewRunsTable(props RunsTableProps) *model.Table {
	columns := make([]model.Column, len(runColumns))
	for i, c := range runColumns {
		columns[i] = c.Column
	}

	rows := make([]model.TableRow, 0, len(props.Runs))
	for _, run := range props.Runs {
		cells := make([]model.Cell, len(runColumns))
		for i, c := range runColumns {
			cells[i] = c.render(run, props.BasePath)
		}
		rows = append(rows, model.TableRow{Key: run.ID, Cells: cells})
	}

	return &model.Table{
		Title:           props.ProjectName,
		Subtitle:        "GitHub Actions",
		Columns:         columns,
		Rows:            rows,
		Loading:         props.Loading,
		Page:            props.Page,
		PageSize:        props.PageSize,
		TotalCount:      props.Total,
		PageSizeOptions: DefaultPageSizeOptions,
		Actions: []*model.Action{
			{
				ID:      ActionReload,
				Icon:    "sync",
				Label:   "Reload",
				Tooltip: "Reload workflow runs",
				OnClick: props.Retry,
			},
		},
		OnChangePage:        props.OnChangePage,
		OnChangeRowsPerPage: props.OnChangePageSize,
	}
}
