package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubActions

import (
	"context"

	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
)

type GitHubActions interface {
	ListWorkflowRuns(ctx context.Context, input *ListWorkflowRunsInput) (*ListWorkflowRunsOutput, error)
	RerunWorkflow(ctx context.Context, input *RerunWorkflowInput) error
}

// ListWorkflowRunsInput has a 1-based Page as GitHub API expects.
type ListWorkflowRunsInput struct {
	Owner   string
	Repo    string
	Branch  string
	Page    int
	PerPage int
}

type ListWorkflowRunsOutput struct {
	Runs       []*model.GitHubWorkflowRun
	TotalCount int
}

type RerunWorkflowInput struct {
	Owner string
	Repo  string
	RunID types.GitHubRunID
}
