package github

import (
	"context"
	"fmt"
)

// RepositoriesService is the part of the Repositories API used to resolve releases.
type RepositoriesService interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*RepositoryRelease, *Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *ListOptions) (*RepositoryCommit, *Response, error)
}

type GetCommitResult struct {
	Commit   *RepositoryCommit
	Response *Response
	err      error
}

// RepositoriesServiceImpl memoizes commit lookups for one invocation.
// Latest releases aren't memoized here because the release resolver caches them by action name.
type RepositoriesServiceImpl struct {
	RepositoriesService RepositoriesService
	Commits             map[string]*GetCommitResult
}

func NewRepositoriesService(svc RepositoriesService) *RepositoriesServiceImpl {
	return &RepositoriesServiceImpl{
		RepositoriesService: svc,
		Commits:             map[string]*GetCommitResult{},
	}
}

func (r *RepositoriesServiceImpl) GetLatestRelease(ctx context.Context, owner, repo string) (*RepositoryRelease, *Response, error) {
	return r.RepositoriesService.GetLatestRelease(ctx, owner, repo) //nolint:wrapcheck
}

func (r *RepositoriesServiceImpl) GetCommit(ctx context.Context, owner, repo, sha string, opts *ListOptions) (*RepositoryCommit, *Response, error) {
	key := fmt.Sprintf("%s/%s/%s", owner, repo, sha)
	if result, ok := r.Commits[key]; ok {
		return result.Commit, result.Response, result.err
	}
	commit, resp, err := r.RepositoriesService.GetCommit(ctx, owner, repo, sha, opts)
	r.Commits[key] = &GetCommitResult{
		Commit:   commit,
		Response: resp,
		err:      err,
	}
	return commit, resp, err
}
