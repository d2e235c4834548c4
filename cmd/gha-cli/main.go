package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gha-tools/gha-cli/pkg/cli"
	"github.com/gha-tools/gha-cli/pkg/di"
	"github.com/gha-tools/gha-cli/pkg/github"
	"github.com/gha-tools/gha-cli/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		logerr.WithError(logE, err).Fatal("gha-cli failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	env, err := di.LoadEnv(os.Environ())
	if err != nil {
		return err //nolint:wrapcheck
	}
	runner := &cli.Runner{
		LDFlags: &cli.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
		Runtime: &di.Runtime{
			Fs:           afero.NewOsFs(),
			Env:          env,
			TokenManager: github.NewTokenManager(),
			Stdin:        os.Stdin,
			Stdout:       os.Stdout,
			Stderr:       os.Stderr,
		},
	}
	return runner.Run(ctx, os.Args...) //nolint:wrapcheck
}
