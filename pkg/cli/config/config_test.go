package config_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/runboard/pkg/cli/config"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/utils/testutil"
	"github.com/urfave/cli/v3"
)

// runWithFlags parses args with flags and calls fn in the command action.
func runWithFlags(t *testing.T, flags []cli.Flag, args []string, fn func(ctx context.Context) error) error {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return fn(ctx)
		},
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestGitHubNew(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("RUNBOARD_GITHUB_TOKEN", "")

	t.Run("no credential", func(t *testing.T) {
		var gh config.GitHub
		err := runWithFlags(t, gh.Flags(), nil, func(ctx context.Context) error {
			_, err := gh.New()
			return err
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("token", func(t *testing.T) {
		var gh config.GitHub
		gt.NoError(t, runWithFlags(t, gh.Flags(), []string{"--github-token", "ghp_xxx"}, func(ctx context.Context) error {
			client, err := gh.New()
			if err != nil {
				return err
			}
			gt.True(t, client != nil)
			return nil
		}))
	})

	t.Run("app without private key", func(t *testing.T) {
		var gh config.GitHub
		err := runWithFlags(t, gh.Flags(), []string{"--github-app-id", "1234", "--github-token", "ghp_xxx"}, func(ctx context.Context) error {
			_, err := gh.New()
			return err
		})
		gt.Error(t, err)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		var gh config.GitHub
		err := runWithFlags(t, gh.Flags(), []string{"--github-token", "ghp_xxx", "--github-base-url", "ghe.example.com"}, func(ctx context.Context) error {
			_, err := gh.New()
			return err
		})
		gt.Error(t, err)
	})

	t.Run("secret", func(t *testing.T) {
		var gh config.GitHub
		gt.NoError(t, runWithFlags(t, gh.Flags(), []string{"--github-app-secret", "s3cr3t"}, func(ctx context.Context) error {
			gt.V(t, gh.Secret()).Equal(types.GitHubAppSecret("s3cr3t"))
			gt.S(t, gh.Secret().String()).NotContains("s3cr3t")
			return nil
		}))
	})
}

func TestCatalogNewRepository(t *testing.T) {
	t.Setenv("RUNBOARD_FIRESTORE_PROJECT_ID", "")

	path := testutil.WriteFile(t, "catalog-info.yaml", `apiVersion: backstage.io/v1alpha1
kind: Component
metadata:
  name: widgets
  annotations:
    github.com/project-slug: acme/widgets
---
apiVersion: backstage.io/v1alpha1
kind: Component
metadata:
  name: gadgets
  namespace: tools
`)

	t.Run("load catalog file", func(t *testing.T) {
		var catalog config.Catalog
		gt.NoError(t, runWithFlags(t, catalog.Flags(), []string{"--catalog-file", path}, func(ctx context.Context) error {
			gt.False(t, catalog.FirestoreEnabled())

			repo, err := catalog.NewRepository(ctx)
			if err != nil {
				return err
			}

			entities := gt.R1(repo.ListEntities(ctx)).NoError(t)
			gt.A(t, entities).Length(2)

			widgets := gt.R1(repo.GetEntity(ctx, model.NewEntityRef("component", "", "widgets"))).NoError(t)
			gt.V(t, widgets.Annotation(model.AnnotationProjectSlug)).Equal("acme/widgets")
			return nil
		}))
	})

	t.Run("missing file", func(t *testing.T) {
		var catalog config.Catalog
		err := runWithFlags(t, catalog.Flags(), []string{"--catalog-file", filepath.Join(t.TempDir(), "missing.yaml")}, func(ctx context.Context) error {
			_, err := catalog.NewRepository(ctx)
			return err
		})
		gt.Error(t, err)
	})

	t.Run("no catalog file", func(t *testing.T) {
		var catalog config.Catalog
		gt.NoError(t, runWithFlags(t, catalog.Flags(), nil, func(ctx context.Context) error {
			repo, err := catalog.NewRepository(ctx)
			if err != nil {
				return err
			}
			gt.A(t, gt.R1(repo.ListEntities(ctx)).NoError(t)).Length(0)
			return nil
		}))
	})
}

func TestFetcherOptions(t *testing.T) {
	var fetcher config.Fetcher
	gt.NoError(t, runWithFlags(t, fetcher.Flags(), []string{"--runs-page-size", "20"}, func(ctx context.Context) error {
		gt.A(t, fetcher.Options()).Length(2)
		return nil
	}))

	flagNames := make(map[string]bool)
	for _, flag := range fetcher.Flags() {
		flagNames[flag.Names()[0]] = true
	}
	gt.True(t, flagNames["runs-page-size"])
	gt.True(t, flagNames["runs-cache-size"])
}
