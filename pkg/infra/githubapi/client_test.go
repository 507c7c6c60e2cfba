package githubapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/infra/githubapi"
	"github.com/secmon-lab/runboard/pkg/utils/testutil"
)

func TestNewApp(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		_, err := githubapi.NewApp(types.GitHubAppID(12345), types.GitHubAppPrivateKey("test-key"))
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		client, err := githubapi.NewApp(types.GitHubAppID(12345), types.GitHubAppPrivateKey(""))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		client, err := githubapi.NewApp(types.GitHubAppID(0), types.GitHubAppPrivateKey("test-key"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("list fails with invalid key", func(t *testing.T) {
		client, err := githubapi.NewApp(types.GitHubAppID(12345), types.GitHubAppPrivateKey("invalid-key"),
			githubapi.WithInstallID(67890),
		)
		gt.NoError(t, err)

		_, err = client.ListWorkflowRuns(context.Background(), &interfaces.ListWorkflowRunsInput{Owner: "acme", Repo: "widgets"})
		gt.Error(t, err)
	})
}

func TestNewToken(t *testing.T) {
	_, err := githubapi.NewToken("")
	gt.Error(t, err)

	_, err = githubapi.NewToken("ghp_xxx")
	gt.NoError(t, err)
}

func TestParseBaseURL(t *testing.T) {
	u := gt.R1(githubapi.ParseBaseURL("https://ghe.example.com/api/v3")).NoError(t)
	gt.V(t, u.String()).Equal("https://ghe.example.com/api/v3/")

	_, err := githubapi.ParseBaseURL("not-a-url")
	gt.Error(t, err)
}

const listRunsResponse = `{
  "total_count": 12,
  "workflow_runs": [
    {
      "id": 30433642,
      "name": "Build",
      "head_branch": "main",
      "head_sha": "acb5820ced9479c074f688cc328bf03f341a511d",
      "status": "completed",
      "conclusion": "success",
      "url": "https://api.github.com/repos/acme/widgets/actions/runs/30433642",
      "html_url": "https://github.com/acme/widgets/actions/runs/30433642",
      "head_commit": {
        "id": "acb5820ced9479c074f688cc328bf03f341a511d",
        "message": "Create linter.yaml"
      },
      "head_repository": {
        "branches_url": "https://api.github.com/repos/acme/widgets/branches{/branch}"
      }
    },
    {
      "id": 30433643,
      "head_branch": "feature/x",
      "head_sha": "0000000000000000000000000000000000000001",
      "status": "in_progress"
    }
  ]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *githubapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u := gt.R1(githubapi.ParseBaseURL(srv.URL)).NoError(t)
	return gt.R1(githubapi.NewToken("test-token", githubapi.WithBaseURL(u))).NoError(t)
}

func TestListWorkflowRuns(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodGet)
		gt.V(t, r.URL.Path).Equal("/repos/acme/widgets/actions/runs")
		gt.V(t, r.URL.Query().Get("branch")).Equal("main")
		gt.V(t, r.URL.Query().Get("page")).Equal("2")
		gt.V(t, r.URL.Query().Get("per_page")).Equal("5")
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listRunsResponse))
	})

	output, err := client.ListWorkflowRuns(context.Background(), &interfaces.ListWorkflowRunsInput{
		Owner:   "acme",
		Repo:    "widgets",
		Branch:  "main",
		Page:    2,
		PerPage: 5,
	})
	gt.NoError(t, err)
	gt.V(t, output.TotalCount).Equal(12)
	gt.V(t, len(output.Runs)).Equal(2)

	run := output.Runs[0]
	gt.V(t, run.ID).Equal(int64(30433642))
	gt.V(t, run.Message).Equal("Create linter.yaml")
	gt.V(t, run.HTMLURL).Equal("https://github.com/acme/widgets/actions/runs/30433642")
	gt.V(t, run.CommitHash()).Equal("acb5820ced9479c074f688cc328bf03f341a511d")
	gt.V(t, run.CommitURL()).Equal("https://api.github.com/repos/acme/widgets/branches/main")
	gt.V(t, run.Status).Equal("completed")
	gt.V(t, run.Conclusion).Equal("success")

	gt.V(t, output.Runs[1].Message).Equal("")
	gt.V(t, output.Runs[1].CommitHash()).Equal("0000000000000000000000000000000000000001")
}

func TestListWorkflowRunsError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := client.ListWorkflowRuns(context.Background(), &interfaces.ListWorkflowRunsInput{Owner: "", Repo: ""})
	gt.Error(t, err)
}

func TestRerunWorkflow(t *testing.T) {
	t.Run("posts rerun request", func(t *testing.T) {
		var called int
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			called++
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/repos/acme/widgets/actions/runs/30433642/rerun")
			w.WriteHeader(http.StatusCreated)
		})

		gt.NoError(t, client.RerunWorkflow(context.Background(), &interfaces.RerunWorkflowInput{
			Owner: "acme",
			Repo:  "widgets",
			RunID: 30433642,
		}))
		gt.V(t, called).Equal(1)
	})

	t.Run("forbidden returns error", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Resource not accessible by integration"}`))
		})

		gt.Error(t, client.RerunWorkflow(context.Background(), &interfaces.RerunWorkflowInput{
			Owner: "acme",
			Repo:  "widgets",
			RunID: 1,
		}))
	})
}

func TestListWorkflowRuns_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	client, err := githubapi.NewToken(types.GitHubToken(token))
	gt.NoError(t, err)

	output, err := client.ListWorkflowRuns(context.Background(), &interfaces.ListWorkflowRunsInput{
		Owner:   owner,
		Repo:    repo,
		Page:    1,
		PerPage: 5,
	})
	gt.NoError(t, err)

	t.Logf("Found %d runs (total %d) for %s/%s", len(output.Runs), output.TotalCount, owner, repo)
	for _, run := range output.Runs {
		gt.V(t, run.ID).NotEqual(int64(0))
		t.Logf("  - %d %s %s/%s", run.ID, run.HeadBranch, run.Status, run.Conclusion)
	}
}
