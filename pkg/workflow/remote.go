package workflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gha-tools/gha-cli/pkg/github"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var ErrConflict = errors.New("the file was changed after it was read")

// ConflictError is returned when a commit is rejected because the file's blob SHA is stale.
type ConflictError struct {
	Path string
	err  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("update %s: %v", e.Path, ErrConflict)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict //nolint:errorlint
}

func (e *ConflictError) Unwrap() error {
	return e.err
}

type ActionsService interface {
	ListWorkflows(ctx context.Context, owner, repo string, opts *github.ListOptions) (*github.Workflows, *github.Response, error)
}

type RepositoriesService interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error)
}

// Remote reads workflow files through the GitHub API and commits changes.
type Remote struct {
	actions ActionsService
	repos   RepositoriesService
	// blob SHAs of files read so far, keyed by owner/repo:path
	shas map[string]string
}

func NewRemote(actions ActionsService, repos RepositoriesService) *Remote {
	return &Remote{
		actions: actions,
		repos:   repos,
		shas:    map[string]string{},
	}
}

const perPage = 100

// List returns paths of workflows registered in the repository under .github/workflows.
func (r *Remote) List(ctx context.Context, target *repo.Target) ([]string, error) {
	opts := &github.ListOptions{PerPage: perPage}
	files := []string{}
	for {
		workflows, resp, err := r.actions.ListWorkflows(ctx, target.Owner, target.Name, opts)
		if err != nil {
			if github.IsNotFound(resp) {
				return nil, fmt.Errorf("repository %s: %w", target, ErrNotFound)
			}
			return nil, fmt.Errorf("list workflows by GitHub API: %w", logerr.WithFields(err, logrus.Fields{
				"repo": target.String(),
			}))
		}
		for _, wf := range workflows.Workflows {
			if p := wf.GetPath(); strings.HasPrefix(p, Dir+"/") {
				files = append(files, p)
			}
		}
		if resp == nil || resp.NextPage == 0 {
			return files, nil
		}
		opts.Page = resp.NextPage
	}
}

func shaKey(target *repo.Target, p string) string {
	return target.String() + ":" + p
}

func (r *Remote) Read(ctx context.Context, target *repo.Target, p string) ([]byte, error) {
	file, _, resp, err := r.repos.GetContents(ctx, target.Owner, target.Name, p, nil)
	if err != nil {
		if github.IsNotFound(resp) {
			return nil, fmt.Errorf("workflow file %s: %w", p, ErrNotFound)
		}
		return nil, fmt.Errorf("get a file by GitHub API: %w", logerr.WithFields(err, logrus.Fields{
			"repo": target.String(),
			"path": p,
		}))
	}
	if file == nil {
		return nil, fmt.Errorf("%s isn't a file", p)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode the file content: %w", err)
	}
	r.shas[shaKey(target, p)] = file.GetSHA()
	return []byte(content), nil
}

// Write commits content with the blob SHA recorded by the last Read of the file.
// If the file hasn't been read, it's read first to get the SHA.
func (r *Remote) Write(ctx context.Context, target *repo.Target, p string, content []byte, commitMessage string) error {
	sha, ok := r.shas[shaKey(target, p)]
	if !ok {
		if _, err := r.Read(ctx, target, p); err != nil {
			return err
		}
		sha = r.shas[shaKey(target, p)]
	}
	res, resp, err := r.repos.UpdateFile(ctx, target.Owner, target.Name, p, &github.RepositoryContentFileOptions{
		Message: github.Ptr(commitMessage),
		Content: content,
		SHA:     github.Ptr(sha),
	})
	if err != nil {
		if github.StatusCode(resp) == http.StatusConflict {
			return &ConflictError{Path: p, err: err}
		}
		return fmt.Errorf("update a file by GitHub API: %w", logerr.WithFields(err, logrus.Fields{
			"repo": target.String(),
			"path": p,
		}))
	}
	if newSHA := res.GetContent().GetSHA(); newSHA != "" {
		r.shas[shaKey(target, p)] = newSHA
	}
	return nil
}
