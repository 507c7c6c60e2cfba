package cli

import (
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/runboard/pkg/domain/types"
)

// detectGitHubProject returns "owner/repo" from the origin remote of the git
// repository that contains dir.
func detectGitHubProject(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	owner, name, err := parseRemoteURL(remote.Config().URLs[0])
	if err != nil {
		return "", err
	}

	return owner + "/" + name, nil
}

// parseRemoteURL parses git remote URL such as git@github.com:owner/repo.git,
// ssh://git@github.com/owner/repo.git or https://github.com/owner/repo.git
func parseRemoteURL(remoteURL string) (owner, repo string, err error) {
	var path string

	if strings.Contains(remoteURL, "://") {
		u, err := url.Parse(remoteURL)
		if err != nil {
			return "", "", goerr.Wrap(types.ErrInvalidOption, "invalid git remote URL", goerr.V("url", remoteURL), goerr.V("error", err))
		}
		path = u.Path
	} else if _, p, ok := strings.Cut(remoteURL, ":"); ok && strings.Contains(remoteURL, "@") {
		// scp-like syntax: git@github.com:owner/repo.git
		path = p
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", remoteURL))
	}

	return parts[0], parts[1], nil
}
