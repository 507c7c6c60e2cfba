package html_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/runboard/pkg/controller/render/html"
	"github.com/secmon-lab/runboard/pkg/controller/view"
	"github.com/secmon-lab/runboard/pkg/domain/model"
)

const entityPath = "/catalog/default/component/widgets"

func newTable(runs []*model.WorkflowRun, page, total int) *model.Table {
	return view.NewRunsTable(view.RunsTableProps{
		Runs:        runs,
		ProjectName: "acme/widgets",
		Page:        page,
		Total:       total,
		PageSize:    5,
		BasePath:    entityPath,
	})
}

func render(t *testing.T, r *html.Renderer, table *model.Table) string {
	t.Helper()
	var buf bytes.Buffer
	gt.NoError(t, r.RenderTable(&buf, table))
	return buf.String()
}

func TestRenderTable(t *testing.T) {
	runs := []*model.WorkflowRun{
		{
			ID:      "1001",
			Message: "fix <build>",
			Source: model.WorkflowRunSource{
				BranchName: "main",
				Commit:     &model.WorkflowRunCommit{Hash: "abc123"},
			},
			Status:     "completed",
			Conclusion: "timed_out",
		},
		{ID: "1002", Message: "pending run"},
	}

	r := html.New(html.WithActionPath(entityPath+"/ci-cd"), html.WithHiddenValue("branch", "main"))
	out := render(t, r, newTable(runs, 0, 2))

	gt.S(t, out).Contains("acme/widgets")
	gt.S(t, out).Contains("GitHub Actions")
	gt.S(t, out).Contains(`<a href="/catalog/default/component/widgets/ci-cd/1001">fix &lt;build&gt;</a>`)
	gt.S(t, out).Contains("<div>main</div><div>abc123</div>")
	gt.S(t, out).Contains(`<span class="status status-warning">Timed out</span>`)
	gt.S(t, out).Contains(`action="/catalog/default/component/widgets/ci-cd/actions/rerun:1001"`)
	gt.S(t, out).Contains(`action="/catalog/default/component/widgets/ci-cd/actions/reload"`)
	gt.S(t, out).Contains(`action="/catalog/default/component/widgets/ci-cd/page"`)
	gt.S(t, out).Contains(`<input type="hidden" name="branch" value="main">`)
	gt.S(t, out).Contains(`<option value="5" selected>5</option>`)
	gt.S(t, out).Contains("Page 1 of 1 (2 runs)")
	gt.S(t, out).NotContains("No records to display")
	gt.S(t, out).NotContains("runs-progress")

	// Run without status has no badge
	gt.V(t, strings.Count(out, `class="status `)).Equal(1)
	gt.V(t, strings.Count(out, "<tr data-key=")).Equal(2)
}

func TestRenderTableZeroRows(t *testing.T) {
	table := newTable([]*model.WorkflowRun{}, 0, 0)
	table.Loading = true
	out := render(t, html.New(), table)

	gt.V(t, strings.Count(out, "<tr data-key=")).Equal(0)
	gt.S(t, out).Contains("No records to display")
	gt.S(t, out).Contains("runs-progress")
	gt.S(t, out).Contains(`class="runs-table loading"`)
	gt.S(t, out).NotContains(`name="branch"`)
}

func TestRenderTablePagination(t *testing.T) {
	out := render(t, html.New(), newTable([]*model.WorkflowRun{{ID: "1"}}, 1, 12))

	gt.S(t, out).Contains("Page 2 of 3 (12 runs)")
	gt.S(t, out).Contains(`<input type="hidden" name="page" value="0">`)
	gt.S(t, out).Contains(`<input type="hidden" name="page" value="2">`)
	gt.V(t, strings.Count(out, " disabled")).Equal(0)

	out = render(t, html.New(), newTable([]*model.WorkflowRun{{ID: "1"}}, 0, 3))
	// all of first, previous, next and last are disabled on a single page
	gt.V(t, strings.Count(out, " disabled")).Equal(4)
}

func TestRenderEmptyState(t *testing.T) {
	state := &model.EmptyState{
		Missing:     "data",
		Title:       "No Workflow Data",
		Description: "Have you created any Workflows?",
		Action: &model.LinkAction{
			Label: "Create new Workflow",
			Href:  "https://github.com/acme/widgets/actions/new",
		},
	}

	var buf bytes.Buffer
	gt.NoError(t, html.New().RenderEmptyState(&buf, state))
	out := buf.String()

	gt.S(t, out).Contains(`data-missing="data"`)
	gt.S(t, out).Contains("<h2>No Workflow Data</h2>")
	gt.S(t, out).Contains("Have you created any Workflows?")
	gt.S(t, out).Contains(`<a class="button" href="https://github.com/acme/widgets/actions/new">Create new Workflow</a>`)
}
