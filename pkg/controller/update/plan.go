package update

import (
	"context"
	"fmt"
	"sort"

	"github.com/gha-tools/gha-cli/pkg/action"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/resolver"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Plan holds the resolution results of every workflow file, sorted by path.
type Plan struct {
	Files []*FilePlan
}

type FilePlan struct {
	Path string
	// Name is the workflow's name, or Path if the workflow has no name.
	Name string
	// Results are sorted by action name.
	Results []*resolver.Result
}

// Results returns the results keyed by workflow file path.
func (p *Plan) Results() map[string][]*resolver.Result {
	m := make(map[string][]*resolver.Result, len(p.Files))
	for _, file := range p.Files {
		m[file.Path] = file.Results
	}
	return m
}

// HasUpdate reports whether at least one action can be updated.
func (fp *FilePlan) HasUpdate() bool {
	for _, result := range fp.Results {
		if result.HasUpdate() {
			return true
		}
	}
	return false
}

// PlanUpdates lists all workflow files first and then resolves the actions of each file.
// A file which can't be read is logged and skipped.
func (c *Controller) PlanUpdates(ctx context.Context, logE *logrus.Entry, target *repo.Target) (*Plan, error) {
	files, err := c.source.ListWorkflowFiles(ctx, logE, target)
	if err != nil {
		return nil, fmt.Errorf("list workflow files: %w", err)
	}
	plan := &Plan{
		Files: make([]*FilePlan, 0, len(files)),
	}
	for _, p := range files {
		logE := logE.WithField("workflow_file", p)
		fp, err := c.planFile(ctx, logE, target, p)
		if err != nil {
			logerr.WithError(logE, err).Warn("skip the workflow file")
			continue
		}
		plan.Files = append(plan.Files, fp)
	}
	return plan, nil
}

func (c *Controller) planFile(ctx context.Context, logE *logrus.Entry, target *repo.Target, p string) (*FilePlan, error) {
	content, err := c.source.ReadContent(ctx, logE, target, p)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	doc, err := action.ParseWorkflow(content)
	if err != nil {
		logerr.WithError(logE, err).Warn("the workflow file is malformed")
		doc = &action.Document{}
	}
	fp := &FilePlan{
		Path:    p,
		Name:    doc.Name,
		Results: []*resolver.Result{},
	}
	if fp.Name == "" {
		fp.Name = p
	}
	for _, uses := range doc.Uses() {
		ref, ok := action.ParseUses(uses, p)
		if !ok {
			continue
		}
		ignored, err := c.cfg.Ignored(ref.Name, ref.Pinned)
		if err != nil {
			return nil, fmt.Errorf("check if the action is ignored: %w", err)
		}
		if ignored {
			logE.WithField("action", uses).Debug("ignore the action")
			continue
		}
		fp.Results = append(fp.Results, c.resolver.Resolve(ctx, logE, uses, p))
	}
	sort.SliceStable(fp.Results, func(i, j int) bool {
		a, b := fp.Results[i], fp.Results[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Current < b.Current
	})
	return fp, nil
}
