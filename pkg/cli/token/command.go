// Package token implements the token command, which manages a GitHub access
// token in the OS keyring (Windows Credential Manager, macOS Keychain or
// GNOME Keyring). The stored token is used when GHA_CLI_KEYRING_ENABLED=true.
package token

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
		Name:  "token",
		Usage: "Manage a GitHub access token in the OS keyring",
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store a GitHub access token read from stdin",
				Description: `Store a GitHub access token in the OS keyring.

$ echo "$TOKEN" | gha-cli token set
`,
				Action: r.set,
			},
			{
				Name:   "rm",
				Usage:  "Remove the GitHub access token from the OS keyring",
				Action: r.remove,
			},
		},
	}
}

func (r *runner) set(_ context.Context, _ *cli.Command) error {
	return di.RunTokenSet(r.logE, r.flags, r.rt) //nolint:wrapcheck
}

func (r *runner) remove(_ context.Context, _ *cli.Command) error {
	return di.RunTokenRemove(r.logE, r.flags, r.rt) //nolint:wrapcheck
}
