// Package initcmd implements the init command.
package initcmd

import (
	"context"

	"github.com/gha-tools/gha-cli/pkg/cli/flag"
	"github.com/gha-tools/gha-cli/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE  *logrus.Entry
	flags *di.Flags
	rt    *di.Runtime
}

func New(logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) *cli.Command {
	r := &runner{
		logE:  logE,
		flags: &di.Flags{GlobalFlags: gf},
		rt:    rt,
	}
	return &cli.Command{
		Name:      "init",
		Usage:     "Create .gha-cli.yaml if it doesn't exist",
		ArgsUsage: "[PATH]",
		Description: `Create .gha-cli.yaml if it doesn't exist

$ gha-cli init

You can also pass a configuration file path.

$ gha-cli init .github/gha-cli.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	r.flags.Args = c.Args().Slice()
	return di.RunInit(r.logE, r.flags, r.rt) //nolint:wrapcheck
}
