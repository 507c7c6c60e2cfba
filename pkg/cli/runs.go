package cli

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/runboard/pkg/cli/config"
	"github.com/secmon-lab/runboard/pkg/controller/render/term"
	"github.com/secmon-lab/runboard/pkg/controller/view"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/model"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/infra"
	"github.com/secmon-lab/runboard/pkg/usecase"
	"github.com/secmon-lab/runboard/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

const (
	defaultEntityKind = "component"
	waitInterval      = 500 * time.Millisecond
)

func runsCommand() *cli.Command {
	var (
		entityRef string
		project   string
		branch    string
		page      int64
		pageSize  int64
		rerun     string
		width     int64
		timeout   time.Duration

		github  config.GitHub
		catalog config.Catalog
	)

	runsFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "entity",
			Usage:       "Catalog entity reference [kind:][namespace/]name",
			Aliases:     []string{"e"},
			Sources:     cli.EnvVars("RUNBOARD_ENTITY"),
			Destination: &entityRef,
		},
		&cli.StringFlag{
			Name:        "project",
			Usage:       "GitHub project owner/repo (default: detected from git remote origin)",
			Aliases:     []string{"p"},
			Sources:     cli.EnvVars("RUNBOARD_PROJECT"),
			Destination: &project,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Show only workflow runs of the branch",
			Aliases:     []string{"b"},
			Destination: &branch,
		},
		&cli.Int64Flag{
			Name:        "page",
			Usage:       "Page number, starting from 1",
			Value:       1,
			Destination: &page,
		},
		&cli.Int64Flag{
			Name:        "page-size",
			Usage:       "Number of workflow runs per page",
			Value:       model.DefaultPageSize,
			Destination: &pageSize,
		},
		&cli.StringFlag{
			Name:        "rerun",
			Usage:       "Rerun the workflow run with the ID before showing runs",
			Destination: &rerun,
		},
		&cli.Int64Flag{
			Name:        "width",
			Usage:       "Table width (0 fits to content)",
			Destination: &width,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout to wait for workflow runs",
			Value:       30 * time.Second,
			Destination: &timeout,
		},
	}

	return &cli.Command{
		Name:    "runs",
		Aliases: []string{"r"},
		Usage:   "Show GitHub Actions workflow runs of an entity or a project",
		Flags: slice.Flatten(
			runsFlags,
			github.Flags(),
			catalog.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting runs",
				slog.String("Entity", entityRef),
				slog.String("Project", project),
				slog.String("Branch", branch),
				slog.Int64("Page", page),
				slog.Int64("PageSize", pageSize),
				slog.Any("GitHub", github),
				slog.Any("Catalog", &catalog),
			)

			if page < 1 {
				return goerr.Wrap(types.ErrInvalidOption, "--page must be 1 or greater", goerr.V("page", page))
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			repo, err := catalog.NewRepository(ctx)
			if err != nil {
				return err
			}

			uc, err := usecase.New(
				infra.New(
					infra.WithGitHubActions(ghClient),
					infra.WithEntityRepository(repo),
				),
				usecase.WithPageSize(int(pageSize)),
			)
			if err != nil {
				return err
			}

			entity, err := resolveEntity(ctx, uc, entityRef, project)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			v, err := showRuns(ctx, uc, entity, runsOptions{
				branch: branch,
				page:   int(page) - 1,
				rerun:  rerun,
			})
			if err != nil {
				return err
			}

			return view.RenderView(os.Stdout, term.New(term.WithWidth(int(width))), v)
		},
	}
}

// resolveEntity returns the catalog entity of ref. Without ref, it returns a
// bare entity of the project, detected from git remote if empty.
func resolveEntity(ctx context.Context, uc interfaces.UseCase, ref, project string) (*model.Entity, error) {
	if ref != "" {
		entityRef, err := model.ParseEntityRef(ref, defaultEntityKind)
		if err != nil {
			return nil, err
		}
		return uc.GetEntity(ctx, entityRef)
	}

	if project == "" {
		detected, err := detectGitHubProject(".")
		if err != nil {
			return nil, goerr.Wrap(err, "--entity or --project is required if not in a GitHub repository")
		}
		project = detected
		logging.From(ctx).Debug("project detected from git remote", "project", project)
	}

	return projectEntity(project), nil
}

func projectEntity(project string) *model.Entity {
	name := project
	if _, repo, ok := strings.Cut(project, "/"); ok {
		name = repo
	}

	return &model.Entity{
		APIVersion: "backstage.io/v1alpha1",
		Kind:       "Component",
		Metadata: model.EntityMetadata{
			Name: name,
			Annotations: map[string]string{
				model.AnnotationProjectSlug: project,
			},
		},
	}
}

type runsOptions struct {
	branch string
	page   int
	rerun  string
}

// showRuns builds the runs view after applying the page and rerun options.
// Table actions run in background, so it waits for the runs to be loaded.
func showRuns(ctx context.Context, uc interfaces.UseCase, entity *model.Entity, opts runsOptions) (*model.RunsView, error) {
	container := view.NewContainer(uc, uc)
	build := func() *model.RunsView {
		return container.Build(ctx, entity, opts.branch, "")
	}

	v := build()

	if opts.page > 0 && v.Table == nil {
		logging.From(ctx).Warn("page is ignored, no workflow runs to paginate",
			"page", opts.page+1,
			"project", uc.ProjectName(ctx, entity).Value,
		)
	}

	if opts.page > 0 && v.Table != nil {
		v.Table.ChangePage(opts.page)

		var err error
		if v, err = waitLoaded(ctx, build); err != nil {
			return nil, err
		}
	}

	if opts.rerun != "" {
		if v.Table == nil || !v.Table.Trigger(view.RerunActionID(opts.rerun)) {
			return nil, goerr.Wrap(types.ErrInvalidOption, "workflow run is not found in the page", goerr.V("id", opts.rerun))
		}
		logging.From(ctx).Info("workflow rerun requested", "id", opts.rerun)

		var err error
		if v, err = waitLoaded(ctx, build); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func waitLoaded(ctx context.Context, build func() *model.RunsView) (*model.RunsView, error) {
	ticker := time.NewTicker(waitInterval)
	defer ticker.Stop()

	for {
		v := build()
		if v.Table == nil || !v.Table.Loading {
			return v, nil
		}

		select {
		case <-ctx.Done():
			return nil, goerr.Wrap(ctx.Err(), "timeout while loading workflow runs")
		case <-ticker.C:
		}
	}
}
