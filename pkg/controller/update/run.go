package update

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Run prints the available updates and applies them if ParamRun.Update is true.
// A failure to update one file doesn't prevent other files from being updated,
// but Run returns the joined errors.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	target := c.param.Target
	c.printer.Banner(target)
	plan, err := c.PlanUpdates(ctx, logE, target)
	if err != nil {
		return err
	}
	for _, file := range plan.Files {
		c.printer.File(file)
	}
	if !c.param.Update {
		return nil
	}
	var errs []error
	for _, file := range plan.Files {
		if !file.HasUpdate() {
			continue
		}
		logE := logE.WithField("workflow_file", file.Path)
		if err := c.ApplyUpdates(ctx, logE, target, file.Path, file.Results, c.param.CommitMessage); err != nil {
			logerr.WithError(logE, err).Error("update the workflow file")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
