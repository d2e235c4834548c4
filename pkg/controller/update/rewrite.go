package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/resolver"
	"github.com/sirupsen/logrus"
)

// Rewrite replaces every `<name>@<current>` of results having an update with `<name>@<latest>`.
// Only whole tokens are replaced, so actions/checkout@v4 doesn't match actions/checkout@v4.1.0.
// It returns false if nothing is replaced.
func Rewrite(content string, results []*resolver.Result) (string, bool) {
	s := content
	for _, result := range results {
		if !result.HasUpdate() {
			continue
		}
		s = replaceToken(s, result.Uses(), result.NewUses())
	}
	return s, s != content
}

func isTokenBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	return strings.IndexByte(" \t\r\n\"'#:", s[i]) >= 0
}

func replaceToken(s, old, replacement string) string {
	var b strings.Builder
	last := 0
	for start := 0; ; {
		i := strings.Index(s[start:], old)
		if i < 0 {
			break
		}
		i += start
		end := i + len(old)
		if isTokenBoundary(s, i-1) && isTokenBoundary(s, end) {
			b.WriteString(s[last:i])
			b.WriteString(replacement)
			last = end
		}
		start = end
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// ApplyUpdates writes all updates of one file at once.
// Nothing is written if no text is replaced.
func (c *Controller) ApplyUpdates(ctx context.Context, logE *logrus.Entry, target *repo.Target, path string, results []*resolver.Result, commitMessage string) error {
	content, err := c.source.ReadContent(ctx, logE, target, path)
	if err != nil {
		return fmt.Errorf("read a workflow file: %w", err)
	}
	s, changed := Rewrite(string(content), results)
	if !changed {
		logE.Debug("the workflow file is up to date")
		return nil
	}
	if err := c.source.WriteContent(ctx, target, path, []byte(s), commitMessage); err != nil {
		return fmt.Errorf("update a workflow file: %w", err)
	}
	c.printer.Applied(target, path)
	return nil
}
