package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	secret     types.GitHubAppSecret     `masq:"secret"`
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	token      types.GitHubToken         `masq:"secret"`
	baseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("RUNBOARD_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("RUNBOARD_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App Installation ID (resolved by repository owner if not set)",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("RUNBOARD_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub Webhook Secret",
			Category:    "GitHub",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("RUNBOARD_GITHUB_APP_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token, used if GitHub App is not configured",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("RUNBOARD_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL for GitHub Enterprise Server (e.g. https://ghe.example.com/api/v3/)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("RUNBOARD_GITHUB_BASE_URL"),
		},
	}
}

// New creates GitHub Actions client. GitHub App is preferred over token if
// both are configured.
func (x GitHub) New() (*githubapi.Client, error) {
	var options []githubapi.Option
	if x.baseURL != "" {
		u, err := githubapi.ParseBaseURL(x.baseURL)
		if err != nil {
			return nil, err
		}
		options = append(options, githubapi.WithBaseURL(u))
	}

	switch {
	case x.appID != 0:
		if x.installID != 0 {
			options = append(options, githubapi.WithInstallID(x.installID))
		}
		return githubapi.NewApp(x.appID, x.privateKey, options...)

	case x.token != "":
		return githubapi.NewToken(x.token, options...)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --github-app-id or --github-token is required")
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.Int("token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
	)
}

func (x GitHub) Secret() types.GitHubAppSecret {
	return x.secret
}
