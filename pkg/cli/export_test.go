package cli

import (
	"context"

	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
)

// Export unexported functions for testing
var (
	DetectGitHubProjectForTest = detectGitHubProject
	ParseRemoteURLForTest      = parseRemoteURL
)

func ShowRunsForTest(ctx context.Context, uc interfaces.UseCase, entity *model.Entity, branch string, page int, rerun string) (*model.RunsView, error) {
	return showRuns(ctx, uc, entity, runsOptions{branch: branch, page: page, rerun: rerun})
}

var (
	ResolveEntityForTest = resolveEntity
	ProjectEntityForTest = projectEntity
)
