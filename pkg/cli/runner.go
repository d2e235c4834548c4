// Package cli assembles the gha-cli command tree.
package cli

import (
	"context"

	"github.com/gha-tools/gha-cli/pkg/cli/flag"
	"github.com/gha-tools/gha-cli/pkg/cli/initcmd"
	"github.com/gha-tools/gha-cli/pkg/cli/list"
	"github.com/gha-tools/gha-cli/pkg/cli/orgs"
	"github.com/gha-tools/gha-cli/pkg/cli/token"
	"github.com/gha-tools/gha-cli/pkg/cli/update"
	"github.com/gha-tools/gha-cli/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	LDFlags *LDFlags
	LogE    *logrus.Entry
	Runtime *di.Runtime
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gf := &flag.GlobalFlags{}
	rt := r.Runtime
	cmd := &cli.Command{
		Name:                  "gha-cli",
		Usage:                 "Check and update versions of GitHub Actions. https://github.com/gha-tools/gha-cli",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 gf.Flags(),
		EnableShellCompletion: true,
		Reader:                rt.Stdin,
		Writer:                rt.Stdout,
		ErrWriter:             rt.Stderr,
		Commands: []*cli.Command{
			update.New(r.LogE, gf, rt),
			list.NewWorkflows(r.LogE, gf, rt),
			list.NewActions(r.LogE, gf, rt),
			orgs.New(r.LogE, gf, rt),
			initcmd.New(r.LogE, gf, rt),
			token.New(r.LogE, gf, rt),
			r.newVersionCommand(),
		},
	}
	update.SetDefault(cmd, r.LogE, gf, rt)
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
