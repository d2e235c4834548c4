// Package list implements the list-workflows and list-actions commands.
package list

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

func newRunner(logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) *runner {
	return &runner{
		logE:  logE,
		flags: &di.Flags{GlobalFlags: gf},
		rt:    rt,
	}
}

func NewWorkflows(logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) *cli.Command {
	r := newRunner(logE, gf, rt)
	return &cli.Command{
		Name:  "list-workflows",
		Usage: "List workflow files with their names",
		Description: `List workflow files under .github/workflows.

$ gha-cli list-workflows
.github/workflows/ci.yaml - CI
`,
		Action: r.listWorkflows,
	}
}

func NewActions(logE *logrus.Entry, gf *flag.GlobalFlags, rt *di.Runtime) *cli.Command {
	r := newRunner(logE, gf, rt)
	return &cli.Command{
		Name:      "list-actions",
		Usage:     "List actions used in a workflow file",
		ArgsUsage: "WORKFLOW",
		Description: `List actions used in a workflow file.

$ gha-cli list-actions .github/workflows/ci.yaml
actions/checkout@v4
actions/setup-go@v5
`,
		Action: r.listActions,
	}
}

func (r *runner) listWorkflows(ctx context.Context, c *cli.Command) error {
	r.flags.Args = c.Args().Slice()
	return di.RunListWorkflows(ctx, r.logE, r.flags, r.rt) //nolint:wrapcheck
}

func (r *runner) listActions(ctx context.Context, c *cli.Command) error {
	r.flags.Args = c.Args().Slice()
	return di.RunListActions(ctx, r.logE, r.flags, r.rt) //nolint:wrapcheck
}
