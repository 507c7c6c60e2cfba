package config

import (
	"github.com/secmon-lab/runboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Logging struct {
	level  string
	format string
	output string
}

func (x *Logging) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [trace|debug|info|warn|error]",
			Aliases:     []string{"l"},
			Category:    "Logging",
			Sources:     cli.EnvVars("RUNBOARD_LOG_LEVEL"),
			Destination: &x.level,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Category:    "Logging",
			Sources:     cli.EnvVars("RUNBOARD_LOG_FORMAT"),
			Destination: &x.format,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Category:    "Logging",
			Sources:     cli.EnvVars("RUNBOARD_LOG_OUTPUT"),
			Destination: &x.output,
			Value:       "stderr",
		},
	}
}

// Configure replaces the default logger. The runs command writes the table
// to stdout, so logs go to stderr unless specified.
func (x *Logging) Configure() error {
	return logging.Configure(x.format, x.level, x.output)
}
