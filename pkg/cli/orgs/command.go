// Package orgs implements the analyze-orgs command.
package orgs

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
		Name:  "analyze-orgs",
		Usage: "Output organizations and their repositories as CSV",
		Description: `Output organizations the authenticated user belongs to and their repositories as CSV.
A GitHub access token is required.

$ gha-cli analyze-orgs -x old-org > orgs.csv
`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "exclude",
				Aliases:     []string{"x"},
				Usage:       "Organizations to skip",
				Destination: &r.flags.Excludes,
			},
		},
		Action: r.action,
	}
}

func (r *runner) action(ctx context.Context, _ *cli.Command) error {
	return di.RunAnalyzeOrgs(ctx, r.logE, r.flags, r.rt) //nolint:wrapcheck
}
