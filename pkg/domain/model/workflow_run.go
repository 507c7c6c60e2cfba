package model

import "strings"

// WorkflowRun is one CI run as shown in the runs table. Instances are
// replaced wholesale on every fetch and never modified afterwards.
type WorkflowRun struct {
	ID         string
	Message    string
	URL        string
	GitHubURL  string
	Source     WorkflowRunSource
	Status     string
	Conclusion string

	// OnReRunClick triggers a re-run of this run. It returns immediately.
	OnReRunClick func()
}

type WorkflowRunSource struct {
	BranchName string
	// Commit is expected to be set by the fetcher. It is not validated here.
	Commit *WorkflowRunCommit
}

type WorkflowRunCommit struct {
	Hash string
	URL  string
}

// CommitHash returns the commit hash, or empty string if commit is absent.
func (x WorkflowRunSource) CommitHash() string {
	if x.Commit == nil {
		return ""
	}
	return x.Commit.Hash
}

// GitHubWorkflowRun is a workflow run as returned by GitHub Actions API,
// before it is bound to any action.
type GitHubWorkflowRun struct {
	ID         int64
	Name       string
	Message    string
	URL        string
	HTMLURL    string
	HeadBranch string
	HeadSHA    string
	CommitID   string
	// BranchesURL is the head repository's branches URL template,
	// e.g. https://api.github.com/repos/o/r/branches{/branch}
	BranchesURL string
	Status      string
	Conclusion  string
}

// CommitURL expands BranchesURL with HeadBranch. Empty if BranchesURL is empty.
func (x *GitHubWorkflowRun) CommitURL() string {
	if x.BranchesURL == "" {
		return ""
	}
	return strings.Replace(x.BranchesURL, "{/branch}", "/"+x.HeadBranch, 1)
}

// CommitHash prefers the head commit ID and falls back to head SHA.
func (x *GitHubWorkflowRun) CommitHash() string {
	if x.CommitID != "" {
		return x.CommitID
	}
	return x.HeadSHA
}
