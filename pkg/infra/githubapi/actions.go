package githubapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
)

var _ interfaces.GitHubActions = (*Client)(nil)

func (x *Client) ListWorkflowRuns(ctx context.Context, input *interfaces.ListWorkflowRunsInput) (*interfaces.ListWorkflowRunsOutput, error) {
	client, err := x.buildGithubClient(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/actions/workflow-runs#list-workflow-runs-for-a-repository
	opts := &github.ListWorkflowRunsOptions{
		Branch: input.Branch,
		ListOptions: github.ListOptions{
			Page:    input.Page,
			PerPage: input.PerPage,
		},
	}
	result, _, err := client.Actions.ListRepositoryWorkflowRuns(ctx, input.Owner, input.Repo, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
			goerr.V("page", input.Page),
		)
	}

	logging.From(ctx).Log(ctx, logging.LevelTrace, "workflow runs response",
		slog.Int("total", result.GetTotalCount()),
		slog.Any("runs", result.WorkflowRuns),
	)

	output := &interfaces.ListWorkflowRunsOutput{
		Runs:       make([]*model.GitHubWorkflowRun, 0, len(result.WorkflowRuns)),
		TotalCount: result.GetTotalCount(),
	}
	for _, run := range result.WorkflowRuns {
		output.Runs = append(output.Runs, &model.GitHubWorkflowRun{
			ID:          run.GetID(),
			Name:        run.GetName(),
			Message:     run.GetHeadCommit().GetMessage(),
			URL:         run.GetURL(),
			HTMLURL:     run.GetHTMLURL(),
			HeadBranch:  run.GetHeadBranch(),
			HeadSHA:     run.GetHeadSHA(),
			CommitID:    run.GetHeadCommit().GetID(),
			BranchesURL: run.GetHeadRepository().GetBranchesURL(),
			Status:      run.GetStatus(),
			Conclusion:  run.GetConclusion(),
		})
	}

	logging.From(ctx).Debug("Listed workflow runs",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Int("count", len(output.Runs)),
		slog.Int("total", output.TotalCount),
	)

	return output, nil
}

func (x *Client) RerunWorkflow(ctx context.Context, input *interfaces.RerunWorkflowInput) error {
	client, err := x.buildGithubClient(ctx, input.Owner)
	if err != nil {
		return err
	}

	// https://docs.github.com/en/rest/actions/workflow-runs#re-run-a-workflow
	resp, err := client.Actions.RerunWorkflowByID(ctx, input.Owner, input.Repo, int64(input.RunID))
	if err != nil {
		return goerr.Wrap(err, "failed to rerun workflow",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("runID", input.RunID),
		)
	}
	if resp.StatusCode != http.StatusCreated {
		return goerr.New("unexpected status of rerun workflow",
			goerr.V("status", resp.StatusCode),
			goerr.V("runID", input.RunID),
		)
	}

	logging.From(ctx).Info("Requested workflow rerun",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("runID", input.RunID),
	)

	return nil
}
