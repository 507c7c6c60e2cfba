package cli

import (
	"context"

	"github.com/secmon-lab/runboard/pkg/cli/config"
	"github.com/secmon-lab/runboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	return x.RunContext(context.Background(), argv)
}

func (x *CLI) RunContext(ctx context.Context, argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "runboard",
		Usage: "CI/CD workflow runs board for catalog entities",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			runsCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
