package githubapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// Client accesses GitHub REST API either as a GitHub App installation or
// with a personal access token.
type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	installID types.GitHubAppInstallID
	token     types.GitHubToken

	baseURL   *url.URL
	transport http.RoundTripper

	// owner -> installation ID
	installIDs sync.Map
}

type Option func(*Client)

// WithBaseURL sets API endpoint, e.g. https://ghe.example.com/api/v3/ for GitHub Enterprise Server.
func WithBaseURL(u *url.URL) Option {
	return func(x *Client) {
		x.baseURL = u
	}
}

// WithInstallID fixes the installation ID instead of looking it up by repository owner.
func WithInstallID(id types.GitHubAppInstallID) Option {
	return func(x *Client) {
		x.installID = id
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

// ParseBaseURL parses API endpoint and appends trailing slash if missing.
func ParseBaseURL(s string) (*url.URL, error) {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", s), goerr.V("error", err))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub base URL must be absolute", goerr.V("url", s))
	}
	return u, nil
}

// NewApp creates a client authenticated as GitHub App.
func NewApp(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:     appID,
		pem:       pem,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// NewToken creates a client authenticated with a token.
func NewToken(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	client := &Client{
		token:     token,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) newGithubClient(httpClient *http.Client) *github.Client {
	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func (x *Client) buildGithubClient(ctx context.Context, owner string) (*github.Client, error) {
	if x.token != "" {
		tr := &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)}),
			Base:   x.transport,
		}
		return x.newGithubClient(&http.Client{Transport: tr}), nil
	}

	installID, err := x.resolveInstallID(ctx, owner)
	if err != nil {
		return nil, err
	}

	httpClient, err := x.buildGithubHTTPClient(installID)
	if err != nil {
		return nil, err
	}
	return x.newGithubClient(httpClient), nil
}

func (x *Client) buildGithubHTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client")
	}
	if x.baseURL != nil {
		itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
	}

	client := &http.Client{Transport: itr}
	return client, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(x.transport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	if x.baseURL != nil {
		itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
	}
	return x.newGithubClient(&http.Client{Transport: itr}), nil
}

func (x *Client) resolveInstallID(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	if x.installID != 0 {
		return x.installID, nil
	}
	if v, ok := x.installIDs.Load(owner); ok {
		return v.(types.GitHubAppInstallID), nil
	}

	id, err := x.GetInstallationIDForOwner(ctx, owner)
	if err != nil {
		return 0, err
	}
	x.installIDs.Store(owner, id)
	return id, nil
}

// GetInstallationIDForOwner finds installation of the App for an organization
// or, if not found, for a user.
func (x *Client) GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return 0, err
	}

	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}

		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner",
		goerr.V("owner", owner),
	)
}
