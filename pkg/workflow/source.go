// Package workflow reads and writes GitHub Actions workflow files of a
// local working copy or of a remote repository through the GitHub API.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Dir is the directory workflow files are looked up in, relative to the repository root.
const Dir = ".github/workflows"

var ErrNotFound = errors.New("not found")

type backend interface {
	List(ctx context.Context, target *repo.Target) ([]string, error)
	Read(ctx context.Context, target *repo.Target, path string) ([]byte, error)
	Write(ctx context.Context, target *repo.Target, path string, content []byte, commitMessage string) error
}

// Source dispatches to the local or remote backend depending on the target
// and memoizes workflow listings for the lifetime of one invocation.
type Source struct {
	local    backend
	remote   backend
	listings map[string][]string
}

func New(local *Local, remote *Remote) *Source {
	return newSource(local, remote)
}

func newSource(local, remote backend) *Source {
	return &Source{
		local:    local,
		remote:   remote,
		listings: map[string][]string{},
	}
}

func (s *Source) backend(target *repo.Target) backend {
	if target.IsLocal() {
		return s.local
	}
	return s.remote
}

func listingKey(target *repo.Target) string {
	if target.IsLocal() {
		return "local:" + target.String()
	}
	return "remote:" + target.String()
}

// ListWorkflowFiles returns repository relative paths of workflow files, sorted.
// A missing workflow directory or repository is logged and results in no files.
func (s *Source) ListWorkflowFiles(ctx context.Context, logE *logrus.Entry, target *repo.Target) ([]string, error) {
	key := listingKey(target)
	if files, ok := s.listings[key]; ok {
		return files, nil
	}
	files, err := s.backend(target).List(ctx, target)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("list workflow files: %w", err)
		}
		logE.WithField("repo", target.String()).Warn("no workflow files were found")
		files = []string{}
	}
	slices.Sort(files)
	s.listings[key] = files
	return files, nil
}

// ReadContent reads a workflow file.
// Reading a path which isn't listed by ListWorkflowFiles is allowed but reported.
func (s *Source) ReadContent(ctx context.Context, logE *logrus.Entry, target *repo.Target, path string) ([]byte, error) {
	files, err := s.ListWorkflowFiles(ctx, logE, target)
	if err != nil {
		logerr.WithError(logE, err).Warn("list workflow files")
	} else if !slices.Contains(files, path) {
		logE.WithFields(logrus.Fields{
			"workflow_file":  path,
			"workflow_files": files,
		}).Warn("the file isn't a listed workflow file of the repository")
	}
	content, err := s.backend(target).Read(ctx, target, path)
	if err != nil {
		return nil, fmt.Errorf("read a workflow file: %w", err)
	}
	return content, nil
}

// WriteContent overwrites a local file or commits the content to the remote repository.
// commitMessage is used only for remote repositories.
func (s *Source) WriteContent(ctx context.Context, target *repo.Target, path string, content []byte, commitMessage string) error {
	if err := s.backend(target).Write(ctx, target, path, content, commitMessage); err != nil {
		return fmt.Errorf("write a workflow file: %w", err)
	}
	return nil
}
