package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/utils/errutil"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
)

// workflowRepo is the repository whose workflow runs changed.
type workflowRepo struct {
	Owner string
	Repo  string
}

// validateGitHubEvent validates the signature of a GitHub webhook and parses it.
// Signature is not checked if key is empty.
func validateGitHubEvent(r *http.Request, key types.GitHubAppSecret) (any, error) {
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook", goerr.V("type", github.WebHookType(r)))
	}

	return event, nil
}

// githubEventToRepo returns the repository to refresh, or nil if the event
// does not change any workflow run.
func githubEventToRepo(event any) *workflowRepo {
	switch ev := event.(type) {
	case *github.WorkflowRunEvent:
		if ev.GetRepo().GetOwner().GetLogin() == "" || ev.GetRepo().GetName() == "" {
			logging.Default().Warn("ignore workflow_run event without repository", slog.String("action", ev.GetAction()))
			return nil
		}
		return &workflowRepo{
			Owner: ev.GetRepo().GetOwner().GetLogin(),
			Repo:  ev.GetRepo().GetName(),
		}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logging.Default().Debug("unsupported event", slog.String("event", fmt.Sprintf("%T", event)))
		return nil
	}
}

func handleGitHubEvent(uc interfaces.UseCase, secret types.GitHubAppSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		event, err := validateGitHubEvent(r, secret)
		if err != nil {
			errutil.HandleError(ctx, "fail to validate GitHub event", err)
			safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
			return
		}

		repo := githubEventToRepo(event)
		if repo == nil {
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no refresh required"}`))
			return
		}

		n := uc.RefreshWorkflowRuns(ctx, repo.Owner, repo.Repo)
		logging.From(ctx).Info("Received workflow_run event",
			slog.String("owner", repo.Owner),
			slog.String("repo", repo.Repo),
			slog.Int("refreshed", n),
		)

		safeWrite(w, http.StatusAccepted, fmt.Appendf(nil, `{"status":"accepted","refreshed":%d}`, n))
	}
}
