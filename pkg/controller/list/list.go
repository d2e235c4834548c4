package list

import (
	"context"
	"fmt"

	"github.com/gha-tools/gha-cli/pkg/action"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ListWorkflows prints `<path> - <name>` for each workflow file.
// The path is printed as the name if the file can't be read or has no name.
func (c *Controller) ListWorkflows(ctx context.Context, logE *logrus.Entry, target *repo.Target) error {
	files, err := c.source.ListWorkflowFiles(ctx, logE, target)
	if err != nil {
		return fmt.Errorf("list workflow files: %w", err)
	}
	for _, p := range files {
		name := p
		content, err := c.source.ReadContent(ctx, logE, target, p)
		if err != nil {
			logerr.WithError(logE, err).WithField("workflow_file", p).Warn("read a workflow file")
		} else {
			name = action.DisplayName(content, p)
		}
		fmt.Fprintf(c.stdout, "%s - %s\n", p, name)
	}
	return nil
}

// ListActions prints the distinct `uses:` values of a workflow file, sorted.
func (c *Controller) ListActions(ctx context.Context, logE *logrus.Entry, target *repo.Target, workflowPath string) error {
	logE = logE.WithField("workflow_file", workflowPath)
	content, err := c.source.ReadContent(ctx, logE, target, workflowPath)
	if err != nil {
		return fmt.Errorf("read a workflow file: %w", err)
	}
	doc, err := action.ParseWorkflow(content)
	if err != nil {
		logerr.WithError(logE, err).Warn("the workflow file is malformed")
		return nil
	}
	for _, uses := range doc.Uses() {
		fmt.Fprintln(c.stdout, uses)
	}
	return nil
}
