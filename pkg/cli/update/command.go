// Package update implements the update command, which is also the default
// action of gha-cli.
package update

import (
	"context"

	"github.com/gha-tools/gha-cli/pkg/cli/flag"
	"github.com/gha-tools/gha-cli/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const description = `Check the latest releases of actions used in workflows under .github/workflows.

$ gha-cli update

The repository is the current directory by default.
You can pass a local git repository or a GitHub repository.

$ gha-cli --repo octo-org/app update

Updates are applied with -u. Remote repositories are updated with a commit per workflow file.

$ gha-cli update -u --commit-msg "ci: update actions"
`

type runner struct {
	logE  *logrus.Entry
	flags *di.Flags
	rt    *di.Runtime
}

func newRunner(logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) *runner {
	return &runner{
		logE:  logE,
		flags: &di.Flags{GlobalFlags: gf},
		rt:    rt,
	}
}

func New(logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) *cli.Command {
	r := newRunner(logE, gf, rt)
	return &cli.Command{
		Name:        "update",
		Usage:       "Check and update versions of actions",
		Description: description,
		Flags:       r.cliFlags(),
		Action:      r.action,
	}
}

// SetDefault makes cmd run the update command when no subcommand is given.
func SetDefault(cmd *cli.Command, logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) {
	r := newRunner(logE, gf, rt)
	cmd.Flags = append(cmd.Flags, r.cliFlags()...)
	cmd.Action = r.action
}

func (r *runner) cliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "update",
			Aliases:     []string{"u"},
			Usage:       "Update actions to the latest versions",
			Local:       true,
			Destination: &r.flags.Update,
		},
		&cli.StringFlag{
			Name:        "commit-msg",
			Usage:       "Commit message for remote repositories. The default is 'chore(ci):update actions'",
			Local:       true,
			Destination: &r.flags.CommitMessage,
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	r.flags.Args = c.Args().Slice()
	return di.RunUpdate(ctx, r.logE, r.flags, r.rt) //nolint:wrapcheck
}
