package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/mock"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/infra"
	"github.com/secmon-lab/runboard/pkg/usecase"
)

var widgets = model.WorkflowRunsQuery{Owner: "acme", Repo: "widgets"}

func newRun(id int64) *model.GitHubWorkflowRun {
	return &model.GitHubWorkflowRun{
		ID:          id,
		Name:        "CI",
		Message:     "fix build",
		URL:         "https://api.github.com/repos/acme/widgets/actions/runs/1",
		HTMLURL:     "https://github.com/acme/widgets/actions/runs/1",
		HeadBranch:  "main",
		HeadSHA:     "deadbeef",
		CommitID:    "abc123",
		BranchesURL: "https://api.github.com/repos/acme/widgets/branches{/branch}",
		Status:      "completed",
		Conclusion:  "success",
	}
}

func newUseCase(t *testing.T, gh interfaces.GitHubActions, options ...usecase.Option) *usecase.UseCase {
	t.Helper()
	return gt.R1(usecase.New(infra.New(infra.WithGitHubActions(gh)), options...)).NoError(t)
}

// waitFor polls cond until it becomes true or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not satisfied before deadline")
}

func waitIdle(t *testing.T, uc *usecase.UseCase, query model.WorkflowRunsQuery) *model.WorkflowRunsState {
	t.Helper()
	var state *model.WorkflowRunsState
	waitFor(t, func() bool {
		state, _ = uc.WorkflowRuns(context.Background(), query)
		return !state.Loading
	})
	return state
}

func TestWorkflowRunsFirstFetch(t *testing.T) {
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{
				Runs:       []*model.GitHubWorkflowRun{newRun(1001), newRun(1002)},
				TotalCount: 12,
			}, nil
		},
	}
	uc := newUseCase(t, gh)

	state, actions := uc.WorkflowRuns(context.Background(), model.WorkflowRunsQuery{Owner: "acme", Repo: "widgets", Branch: "main"})
	gt.V(t, state.Loading).Equal(false)
	gt.A(t, state.Runs).Length(2)
	gt.V(t, state.Total).Equal(12)
	gt.V(t, state.Page).Equal(0)
	gt.V(t, state.PageSize).Equal(model.DefaultPageSize)
	gt.True(t, actions != nil)

	calls := gh.ListWorkflowRunsCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Input.Owner).Equal("acme")
	gt.V(t, calls[0].Input.Repo).Equal("widgets")
	gt.V(t, calls[0].Input.Branch).Equal("main")
	gt.V(t, calls[0].Input.Page).Equal(1)
	gt.V(t, calls[0].Input.PerPage).Equal(model.DefaultPageSize)

	run := state.Runs[0]
	gt.V(t, run.ID).Equal("1001")
	gt.V(t, run.Message).Equal("fix build")
	gt.V(t, run.URL).Equal("https://api.github.com/repos/acme/widgets/actions/runs/1")
	gt.V(t, run.GitHubURL).Equal("https://github.com/acme/widgets/actions/runs/1")
	gt.V(t, run.Source.BranchName).Equal("main")
	gt.V(t, run.Source.CommitHash()).Equal("abc123")
	gt.V(t, run.Source.Commit.URL).Equal("https://api.github.com/repos/acme/widgets/branches/main")
	gt.V(t, run.Status).Equal("completed")
	gt.V(t, run.Conclusion).Equal("success")
	gt.True(t, run.OnReRunClick != nil)

	// Second read uses the kept state
	state, _ = uc.WorkflowRuns(context.Background(), model.WorkflowRunsQuery{Owner: "acme", Repo: "widgets", Branch: "main"})
	gt.A(t, state.Runs).Length(2)
	gt.A(t, gh.ListWorkflowRunsCalls()).Length(1)
}

func TestWorkflowRunsZeroResults(t *testing.T) {
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{}, nil
		},
	}
	uc := newUseCase(t, gh)

	state, _ := uc.WorkflowRuns(context.Background(), widgets)
	gt.True(t, state.HasRuns())
	gt.A(t, state.Runs).Length(0)
}

func TestWorkflowRunsFetchError(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)

	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			if fail.Load() {
				return nil, errors.New("rate limited")
			}
			return &interfaces.ListWorkflowRunsOutput{Runs: []*model.GitHubWorkflowRun{newRun(1)}, TotalCount: 1}, nil
		},
	}
	uc := newUseCase(t, gh)

	state, _ := uc.WorkflowRuns(context.Background(), widgets)
	gt.False(t, state.HasRuns())
	gt.V(t, state.Loading).Equal(false)

	// Next read fetches again since there is no data
	fail.Store(false)
	state, _ = uc.WorkflowRuns(context.Background(), widgets)
	gt.A(t, state.Runs).Length(1)
	gt.A(t, gh.ListWorkflowRunsCalls()).Length(2)
}

func TestWorkflowRunsErrorClearsRuns(t *testing.T) {
	var fail atomic.Bool
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			if fail.Load() {
				return nil, errors.New("server error")
			}
			return &interfaces.ListWorkflowRunsOutput{Runs: []*model.GitHubWorkflowRun{newRun(1)}, TotalCount: 1}, nil
		},
	}
	uc := newUseCase(t, gh)

	_, actions := uc.WorkflowRuns(context.Background(), widgets)
	fail.Store(true)
	actions.Retry()

	waitFor(t, func() bool { return len(gh.ListWorkflowRunsCalls()) == 2 })
	waitFor(t, func() bool {
		// Reading an empty state triggers another synchronous fetch, which also fails
		state, _ := uc.WorkflowRuns(context.Background(), widgets)
		return !state.HasRuns() && !state.Loading
	})
}

func TestWorkflowRunsRetry(t *testing.T) {
	var id atomic.Int64
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{
				Runs:       []*model.GitHubWorkflowRun{newRun(id.Add(1))},
				TotalCount: 1,
			}, nil
		},
	}
	uc := newUseCase(t, gh)

	state, actions := uc.WorkflowRuns(context.Background(), widgets)
	gt.V(t, state.Runs[0].ID).Equal("1")

	actions.Retry()
	state = waitIdle(t, uc, widgets)
	gt.V(t, state.Runs[0].ID).Equal("2")
	gt.A(t, gh.ListWorkflowRunsCalls()).Length(2)
}

func TestWorkflowRunsPagination(t *testing.T) {
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{
				Runs:       []*model.GitHubWorkflowRun{newRun(int64(input.Page))},
				TotalCount: 40,
			}, nil
		},
	}
	uc := newUseCase(t, gh)

	_, actions := uc.WorkflowRuns(context.Background(), widgets)

	t.Run("set page", func(t *testing.T) {
		actions.SetPage(2)
		state := waitIdle(t, uc, widgets)
		gt.V(t, state.Page).Equal(2)
		gt.V(t, state.Runs[0].ID).Equal("3")

		calls := gh.ListWorkflowRunsCalls()
		gt.V(t, calls[len(calls)-1].Input.Page).Equal(3)
	})

	t.Run("set page size moves to first page", func(t *testing.T) {
		actions.SetPageSize(20)
		state := waitIdle(t, uc, widgets)
		gt.V(t, state.Page).Equal(0)
		gt.V(t, state.PageSize).Equal(20)

		calls := gh.ListWorkflowRunsCalls()
		gt.V(t, calls[len(calls)-1].Input.Page).Equal(1)
		gt.V(t, calls[len(calls)-1].Input.PerPage).Equal(20)
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		n := len(gh.ListWorkflowRunsCalls())
		actions.SetPage(-1)
		actions.SetPageSize(0)

		state, _ := uc.WorkflowRuns(context.Background(), widgets)
		gt.V(t, state.Loading).Equal(false)
		gt.V(t, state.PageSize).Equal(20)
		gt.A(t, gh.ListWorkflowRunsCalls()).Length(n)
	})
}

func TestWorkflowRunsOutdatedPage(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{})
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			if input.Page == 2 {
				close(blocked)
				<-release
			}
			return &interfaces.ListWorkflowRunsOutput{
				Runs:       []*model.GitHubWorkflowRun{newRun(int64(input.Page * 100))},
				TotalCount: 40,
			}, nil
		},
	}
	uc := newUseCase(t, gh)

	_, actions := uc.WorkflowRuns(context.Background(), widgets)

	actions.SetPage(1)
	<-blocked
	actions.SetPage(2)
	waitFor(t, func() bool {
		state, _ := uc.WorkflowRuns(context.Background(), widgets)
		return state.HasRuns() && state.Runs[0].ID == "300"
	})

	// Response of page index 1 arrives after page index 2 is shown
	close(release)
	state := waitIdle(t, uc, widgets)
	gt.V(t, state.Page).Equal(2)
	gt.A(t, state.Runs).Length(1)
	gt.V(t, state.Runs[0].ID).Equal("300")
}

func TestWorkflowRunsOutdatedPageSize(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{})
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			if input.PerPage == 10 {
				close(blocked)
				<-release
				return nil, errors.New("slow request failed")
			}
			return &interfaces.ListWorkflowRunsOutput{
				Runs:       []*model.GitHubWorkflowRun{newRun(int64(input.PerPage))},
				TotalCount: 40,
			}, nil
		},
	}
	uc := newUseCase(t, gh)

	_, actions := uc.WorkflowRuns(context.Background(), widgets)

	actions.SetPageSize(10)
	<-blocked
	actions.SetPageSize(20)
	waitFor(t, func() bool {
		state, _ := uc.WorkflowRuns(context.Background(), widgets)
		return state.HasRuns() && state.Runs[0].ID == "20"
	})

	// Outdated failure neither clears runs nor changes the page size
	close(release)
	state := waitIdle(t, uc, widgets)
	gt.V(t, state.PageSize).Equal(20)
	gt.A(t, state.Runs).Length(1)
	gt.V(t, state.Runs[0].ID).Equal("20")
}

func TestWorkflowRunsLoading(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			if calls.Add(1) > 1 {
				<-release
			}
			return &interfaces.ListWorkflowRunsOutput{Runs: []*model.GitHubWorkflowRun{newRun(1)}, TotalCount: 1}, nil
		},
	}
	uc := newUseCase(t, gh)

	_, actions := uc.WorkflowRuns(context.Background(), widgets)
	actions.Retry()

	// Loading is visible as soon as Retry returns, previous runs are kept
	state, _ := uc.WorkflowRuns(context.Background(), widgets)
	gt.V(t, state.Loading).Equal(true)
	gt.A(t, state.Runs).Length(1)

	close(release)
	state = waitIdle(t, uc, widgets)
	gt.V(t, state.Loading).Equal(false)
}

func TestWorkflowRunsRerun(t *testing.T) {
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{
				Runs:       []*model.GitHubWorkflowRun{newRun(1001), newRun(1002)},
				TotalCount: 2,
			}, nil
		},
		RerunWorkflowFunc: func(ctx context.Context, input *interfaces.RerunWorkflowInput) error {
			return nil
		},
	}
	uc := newUseCase(t, gh)

	state, _ := uc.WorkflowRuns(context.Background(), widgets)
	state.Runs[1].OnReRunClick()

	waitFor(t, func() bool { return len(gh.ListWorkflowRunsCalls()) == 2 })
	waitIdle(t, uc, widgets)

	calls := gh.RerunWorkflowCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Input.Owner).Equal("acme")
	gt.V(t, calls[0].Input.Repo).Equal("widgets")
	gt.V(t, calls[0].Input.RunID).Equal(types.GitHubRunID(1002))
}

func TestWorkflowRunsRerunError(t *testing.T) {
	var rerunCalled atomic.Bool
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{Runs: []*model.GitHubWorkflowRun{newRun(1)}, TotalCount: 1}, nil
		},
		RerunWorkflowFunc: func(ctx context.Context, input *interfaces.RerunWorkflowInput) error {
			rerunCalled.Store(true)
			return errors.New("forbidden")
		},
	}
	uc := newUseCase(t, gh)

	state, _ := uc.WorkflowRuns(context.Background(), widgets)
	state.Runs[0].OnReRunClick()

	waitFor(t, rerunCalled.Load)
	state = waitIdle(t, uc, widgets)

	// Runs are kept and not re-fetched
	gt.A(t, state.Runs).Length(1)
	gt.A(t, gh.ListWorkflowRunsCalls()).Length(1)
}

func TestWorkflowRunsWithoutProject(t *testing.T) {
	gh := &mock.GitHubActionsMock{}
	uc := newUseCase(t, gh)

	for _, query := range []model.WorkflowRunsQuery{
		{},
		{Owner: "acme"},
		{Repo: "widgets"},
	} {
		state, actions := uc.WorkflowRuns(context.Background(), query)
		gt.False(t, state.HasRuns())
		gt.V(t, state.Loading).Equal(false)

		actions.Retry()
		actions.SetPage(1)
		actions.SetPageSize(10)
	}

	gt.A(t, gh.ListWorkflowRunsCalls()).Length(0)
}

func TestWorkflowRunsWithoutClient(t *testing.T) {
	uc := gt.R1(usecase.New(infra.New())).NoError(t)

	state, actions := uc.WorkflowRuns(context.Background(), widgets)
	gt.False(t, state.HasRuns())
	actions.Retry()
}

func TestRefreshWorkflowRuns(t *testing.T) {
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{Runs: []*model.GitHubWorkflowRun{newRun(1)}, TotalCount: 1}, nil
		},
	}
	uc := newUseCase(t, gh)

	mainBranch := model.WorkflowRunsQuery{Owner: "acme", Repo: "widgets", Branch: "main"}
	other := model.WorkflowRunsQuery{Owner: "acme", Repo: "gadgets"}
	uc.WorkflowRuns(context.Background(), widgets)
	uc.WorkflowRuns(context.Background(), mainBranch)
	uc.WorkflowRuns(context.Background(), other)
	gt.A(t, gh.ListWorkflowRunsCalls()).Length(3)

	n := uc.RefreshWorkflowRuns(context.Background(), "ACME", "Widgets")
	gt.V(t, n).Equal(2)

	waitFor(t, func() bool { return len(gh.ListWorkflowRunsCalls()) == 5 })
	waitIdle(t, uc, widgets)
	waitIdle(t, uc, mainBranch)

	gt.V(t, uc.RefreshWorkflowRuns(context.Background(), "acme", "unknown")).Equal(0)
}

func TestWorkflowRunsCacheEviction(t *testing.T) {
	gh := &mock.GitHubActionsMock{
		ListWorkflowRunsFunc: func(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
			return &interfaces.ListWorkflowRunsOutput{Runs: []*model.GitHubWorkflowRun{}}, nil
		},
	}
	uc := newUseCase(t, gh, usecase.WithCacheSize(1))

	uc.WorkflowRuns(context.Background(), widgets)
	uc.WorkflowRuns(context.Background(), model.WorkflowRunsQuery{Owner: "acme", Repo: "gadgets"})
	uc.WorkflowRuns(context.Background(), widgets)

	// widgets was evicted by gadgets and fetched again
	gt.A(t, gh.ListWorkflowRunsCalls()).Length(3)
}
