// Package update implements the default command of gha-cli.
// It lists the workflow files of a repository, resolves the latest release of
// every action they use, reports the available updates and, if requested,
// rewrites the files by replacing `<action>@<current>` with `<action>@<latest>`.
// Only the matched text is replaced, so comments and formatting are kept.
package update

import (
	"context"
	"io"

	"github.com/gha-tools/gha-cli/pkg/config"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/resolver"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	source   WorkflowSource
	resolver Resolver
	cfg      *config.Config
	param    *ParamRun
	printer  *Printer
}

type WorkflowSource interface {
	ListWorkflowFiles(ctx context.Context, logE *logrus.Entry, target *repo.Target) ([]string, error)
	ReadContent(ctx context.Context, logE *logrus.Entry, target *repo.Target, path string) ([]byte, error)
	WriteContent(ctx context.Context, target *repo.Target, path string, content []byte, commitMessage string) error
}

type Resolver interface {
	Resolve(ctx context.Context, logE *logrus.Entry, uses, sourceFile string) *resolver.Result
}

type ParamRun struct {
	Target        *repo.Target
	Update        bool
	CommitMessage string
	NoColor       bool
	Stdout        io.Writer
	Stderr        io.Writer
}

func New(source WorkflowSource, res Resolver, cfg *config.Config, param *ParamRun) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Controller{
		source:   source,
		resolver: res,
		cfg:      cfg,
		param:    param,
		printer:  NewPrinter(param.Stdout, param.Stderr, param.NoColor),
	}
}
