package server

// Export unexported functions for testing
var (
	GitHubEventToRepoForTest = githubEventToRepo
)

type WorkflowRepoForTest = workflowRepo
