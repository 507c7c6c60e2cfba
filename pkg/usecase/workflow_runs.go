package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/utils/errutil"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
)

// WorkflowRuns returns the current state of the query and the handlers to
// change it. A query without owner or repo has no data and its handlers do
// nothing.
//
// The state of a query is kept between calls. If there is no data yet, and
// no fetch is running, runs are fetched synchronously with ctx.
func (x *UseCase) WorkflowRuns(ctx context.Context, query model.WorkflowRunsQuery) (*model.WorkflowRunsState, *model.WorkflowRunsActions) {
	if query.Owner == "" || query.Repo == "" {
		return &model.WorkflowRunsState{PageSize: x.pageSize}, noopActions()
	}

	gh := x.clients.GitHubActions()
	if gh == nil {
		logging.From(ctx).Warn("GitHub client is not configured, no workflow runs", "query", query.Key())
		return &model.WorkflowRunsState{PageSize: x.pageSize}, noopActions()
	}

	fetcher := x.runsFetcher(gh, query)
	if fetcher.startIfEmpty() {
		fetcher.fetch(ctx)
	}

	bgCtx := logging.Detach(ctx)
	return fetcher.snapshot(bgCtx), &model.WorkflowRunsActions{
		Retry: func() {
			fetcher.refresh(bgCtx)
		},
		SetPage: func(page int) {
			fetcher.setPage(bgCtx, page)
		},
		SetPageSize: func(pageSize int) {
			fetcher.setPageSize(bgCtx, pageSize)
		},
	}
}

// RefreshWorkflowRuns re-fetches in background every known query of the
// repository and returns how many were refreshed.
func (x *UseCase) RefreshWorkflowRuns(ctx context.Context, owner, repo string) int {
	bgCtx := logging.Detach(ctx)

	var n int
	for _, key := range x.runs.Keys() {
		fetcher, ok := x.runs.Peek(key)
		if !ok {
			continue
		}
		if !strings.EqualFold(fetcher.query.Owner, owner) || !strings.EqualFold(fetcher.query.Repo, repo) {
			continue
		}

		fetcher.refresh(bgCtx)
		n++
	}

	logging.From(ctx).Info("refreshed workflow runs", "owner", owner, "repo", repo, "queries", n)
	return n
}

func (x *UseCase) runsFetcher(gh interfaces.GitHubActions, query model.WorkflowRunsQuery) *runsFetcher {
	key := query.Key()
	if fetcher, ok := x.runs.Get(key); ok {
		return fetcher
	}

	fetcher := &runsFetcher{
		gh:       gh,
		query:    query,
		pageSize: x.pageSize,
	}
	if prev, ok, _ := x.runs.PeekOrAdd(key, fetcher); ok {
		return prev
	}
	return fetcher
}

func noopActions() *model.WorkflowRunsActions {
	return &model.WorkflowRunsActions{
		Retry:       func() {},
		SetPage:     func(int) {},
		SetPageSize: func(int) {},
	}
}

// runsFetcher holds the state of one query. Only the result of the latest
// requested fetch is applied, so runs always belong to page and pageSize.
type runsFetcher struct {
	gh    interfaces.GitHubActions
	query model.WorkflowRunsQuery

	mu       sync.Mutex
	runs     []*model.WorkflowRun
	total    int
	page     int
	pageSize int
	inflight int

	// generation is bumped by every page change and every fetch request.
	// A fetch result of an older generation is discarded.
	generation uint64
}

func (x *runsFetcher) snapshot(ctx context.Context) *model.WorkflowRunsState {
	x.mu.Lock()
	defer x.mu.Unlock()

	state := &model.WorkflowRunsState{
		Loading:  x.inflight > 0,
		Page:     x.page,
		PageSize: x.pageSize,
		Total:    x.total,
	}
	if x.runs != nil {
		state.Runs = make([]*model.WorkflowRun, len(x.runs))
		for i, run := range x.runs {
			state.Runs[i] = x.bindRun(ctx, run)
		}
	}

	return state
}

// bindRun returns a copy of run whose OnReRunClick re-runs it in background.
func (x *runsFetcher) bindRun(ctx context.Context, run *model.WorkflowRun) *model.WorkflowRun {
	bound := *run
	bound.OnReRunClick = func() {
		x.rerun(ctx, run.ID)
	}
	return &bound
}

func (x *runsFetcher) start() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.inflight++
}

func (x *runsFetcher) done() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.inflight--
}

// startIfEmpty marks a fetch started and returns true if there is no data
// and no fetch is running.
func (x *runsFetcher) startIfEmpty() bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.runs != nil || x.inflight > 0 {
		return false
	}
	x.inflight++
	return true
}

func (x *runsFetcher) refresh(ctx context.Context) {
	x.start()
	go x.fetch(ctx)
}

func (x *runsFetcher) setPage(ctx context.Context, page int) {
	if page < 0 {
		logging.From(ctx).Warn("ignore negative page", "query", x.query.Key(), "page", page)
		return
	}

	x.mu.Lock()
	x.page = page
	x.generation++
	x.mu.Unlock()

	x.refresh(ctx)
}

// setPageSize also moves back to the first page, the current one may not
// exist with the new size.
func (x *runsFetcher) setPageSize(ctx context.Context, pageSize int) {
	if pageSize <= 0 {
		logging.From(ctx).Warn("ignore non-positive page size", "query", x.query.Key(), "pageSize", pageSize)
		return
	}

	x.mu.Lock()
	x.pageSize = pageSize
	x.page = 0
	x.generation++
	x.mu.Unlock()

	x.refresh(ctx)
}

func (x *runsFetcher) rerun(ctx context.Context, id string) {
	runID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		errutil.HandleError(ctx, "invalid workflow run ID", goerr.Wrap(types.ErrInvalidGitHubData, "run ID is not a number",
			goerr.V("id", id),
			goerr.V("error", err),
		))
		return
	}

	x.start()
	go func() {
		input := &interfaces.RerunWorkflowInput{
			Owner: x.query.Owner,
			Repo:  x.query.Repo,
			RunID: types.GitHubRunID(runID),
		}
		if err := x.gh.RerunWorkflow(ctx, input); err != nil {
			errutil.HandleError(ctx, "failed to rerun workflow", err)
			x.done()
			return
		}

		logging.From(ctx).Info("workflow rerun requested", "query", x.query.Key(), "runID", runID)
		x.fetch(ctx)
	}()
}

// fetch requests the current page and applies the result. The caller must
// have called start before.
func (x *runsFetcher) fetch(ctx context.Context) {
	x.mu.Lock()
	input := &interfaces.ListWorkflowRunsInput{
		Owner:   x.query.Owner,
		Repo:    x.query.Repo,
		Branch:  x.query.Branch,
		Page:    x.page + 1,
		PerPage: x.pageSize,
	}
	x.generation++
	generation := x.generation
	x.mu.Unlock()

	output, err := x.gh.ListWorkflowRuns(ctx, input)

	x.mu.Lock()
	defer x.mu.Unlock()
	x.inflight--

	if generation != x.generation {
		logging.From(ctx).Debug("discard outdated workflow runs",
			"query", x.query.Key(),
			"page", input.Page,
			"perPage", input.PerPage,
		)
		return
	}

	if err != nil {
		errutil.HandleError(ctx, "failed to fetch workflow runs", goerr.Wrap(err, "failed to list workflow runs",
			goerr.V("query", x.query.Key()),
			goerr.V("page", input.Page),
			goerr.V("perPage", input.PerPage),
		))
		x.runs = nil
		x.total = 0
		return
	}

	runs := make([]*model.WorkflowRun, 0, len(output.Runs))
	for _, run := range output.Runs {
		runs = append(runs, toWorkflowRun(run))
	}
	x.runs = runs
	x.total = output.TotalCount

	logging.From(ctx).Debug("fetched workflow runs",
		"query", x.query.Key(),
		"page", input.Page,
		"runs", len(runs),
		"total", output.TotalCount,
	)
}

func toWorkflowRun(run *model.GitHubWorkflowRun) *model.WorkflowRun {
	return &model.WorkflowRun{
		ID:        strconv.FormatInt(run.ID, 10),
		Message:   run.Message,
		URL:       run.URL,
		GitHubURL: run.HTMLURL,
		Source: model.WorkflowRunSource{
			BranchName: run.HeadBranch,
			Commit: &model.WorkflowRunCommit{
				Hash: run.CommitHash(),
				URL:  run.CommitURL(),
			},
		},
		Status:     run.Status,
		Conclusion: run.Conclusion,
	}
}
