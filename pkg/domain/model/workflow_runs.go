package model

import (
	"fmt"
	"strings"
)

const DefaultPageSize = 5

// WorkflowRunsQuery selects the runs of one repository, optionally filtered by branch.
type WorkflowRunsQuery struct {
	Owner  string
	Repo   string
	Branch string
}

func (x WorkflowRunsQuery) Key() string {
	return fmt.Sprintf("%s/%s@%s", x.Owner, x.Repo, x.Branch)
}

// WorkflowRunsState is the current result of a WorkflowRunsQuery.
//
// Runs is nil when there is no data for the query (not fetched, not
// applicable or failed). A non-nil empty slice means the fetch succeeded with
// zero results. The two cases are rendered differently and must not be
// conflated.
type WorkflowRunsState struct {
	Runs     []*WorkflowRun
	Loading  bool
	Page     int
	PageSize int
	Total    int
}

func (x *WorkflowRunsState) HasRuns() bool {
	return x != nil && x.Runs != nil
}

// WorkflowRunsActions are the handlers that mutate the state of a query.
// All of them return immediately; re-fetching happens in background.
type WorkflowRunsActions struct {
	Retry       func()
	SetPage     func(page int)
	SetPageSize func(pageSize int)
}

// ProjectName is the "owner/repo" resolved from an entity. Empty Value means
// the entity has no project.
type ProjectName struct {
	Value   string
	Loading bool
}

// Split returns owner and repo. An absent name is split as "/", so both are
// empty. Missing parts are empty as well.
func (x ProjectName) Split() (owner, repo string) {
	name := x.Value
	if name == "" {
		name = "/"
	}
	parts := strings.Split(name, "/")
	owner = parts[0]
	if len(parts) > 1 {
		repo = parts[1]
	}
	return owner, repo
}

// NewWorkflowURL returns the page on GitHub to create a new workflow for the project.
func (x ProjectName) NewWorkflowURL() string {
	return fmt.Sprintf("https://github.com/%s/actions/new", x.Value)
}
