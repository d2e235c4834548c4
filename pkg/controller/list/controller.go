// Package list implements the list-workflows and list-actions commands.
package list

import (
	"context"
	"io"

	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	source WorkflowSource
	stdout io.Writer
}

type WorkflowSource interface {
	ListWorkflowFiles(ctx context.Context, logE *logrus.Entry, target *repo.Target) ([]string, error)
	ReadContent(ctx context.Context, logE *logrus.Entry, target *repo.Target, path string) ([]byte, error)
}

func New(source WorkflowSource, stdout io.Writer) *Controller {
	return &Controller{
		source: source,
		stdout: stdout,
	}
}
