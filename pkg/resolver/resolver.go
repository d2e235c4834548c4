// Package resolver decides whether a newer release of an action exists.
//
// Tag pins are compared with the latest release tag by version.Comparator.
// Commit SHA pins can't be compared as versions, so the publish time of the
// latest release is compared with the committer date of the pinned commit.
// Results confirmed to be newer are cached by action name for the rest of
// the invocation.
package resolver

import (
	"context"
	"time"

	"github.com/gha-tools/gha-cli/pkg/action"
	"github.com/gha-tools/gha-cli/pkg/github"
	"github.com/gha-tools/gha-cli/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type RepositoriesService interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
}

type Resolver struct {
	repos      RepositoriesService
	cache      *Cache
	comparator *version.Comparator
	now        func() time.Time
}

func New(repos RepositoriesService, cache *Cache, comparator *version.Comparator) *Resolver {
	return &Resolver{
		repos:      repos,
		cache:      cache,
		comparator: comparator,
		now:        time.Now,
	}
}

// Resolve never fails. Problems such as a missing release are logged as
// warnings and reported as StatusUnresolvable.
func (r *Resolver) Resolve(ctx context.Context, logE *logrus.Entry, uses, sourceFile string) *Result {
	ref, ok := action.ParseUses(uses, sourceFile)
	if !ok {
		return &Result{
			Name:   uses,
			Status: StatusNoUpdate,
			Reason: "the action isn't pinned",
		}
	}
	logE = logE.WithField("action", uses)
	if entry, ok := r.cache.Get(ref.Name); ok {
		logE.WithField("latest_version", entry.Latest).Debug("use the cached latest release")
		return r.resolveCached(logE, ref, entry)
	}
	return r.resolveUpstream(ctx, logE, ref)
}

func (r *Resolver) resolveCached(logE *logrus.Entry, ref *action.Reference, entry *Entry) *Result {
	if ref.IsContentHash() && entry.ObservedAt.After(r.now()) {
		return updated(ref, entry.Latest)
	}
	return r.compare(logE, ref, entry.Latest)
}

func (r *Resolver) compare(logE *logrus.Entry, ref *action.Reference, latest string) *Result {
	if latest == ref.Pinned {
		return noUpdate(ref)
	}
	o, err := r.comparator.Compare(latest, ref.Pinned)
	if err != nil {
		logerr.WithError(logE, err).WithField("latest_version", latest).Warn("could not compare versions")
		return unresolvable(ref, err.Error())
	}
	if o == version.Greater {
		return updated(ref, latest)
	}
	return noUpdate(ref)
}

func (r *Resolver) resolveUpstream(ctx context.Context, logE *logrus.Entry, ref *action.Reference) *Result {
	owner, repoName, err := ref.Repository()
	if err != nil {
		logerr.WithError(logE, err).Warn("the action isn't hosted in a GitHub repository")
		return unresolvable(ref, err.Error())
	}
	logE.Debug("get the latest release")
	release, resp, err := r.repos.GetLatestRelease(ctx, owner, repoName)
	if err != nil {
		if github.IsNotFound(resp) {
			logE.Warn("the action has no release or isn't found")
			return unresolvable(ref, "no release was found")
		}
		logerr.WithError(logE, err).Warn("get the latest release")
		return unresolvable(ref, "get the latest release: "+err.Error())
	}
	tag := release.GetTagName()
	if tag == "" {
		logE.Warn("the latest release has no tag")
		return unresolvable(ref, "the latest release has no tag")
	}
	if ref.IsContentHash() {
		return r.resolveContentHash(ctx, logE, ref, owner, repoName, release)
	}
	result := r.compare(logE, ref, tag)
	if result.Status == StatusUpdated {
		r.cache.Set(ref.Name, &Entry{
			Latest:     tag,
			ObservedAt: releaseTime(release),
		})
	}
	return result
}

func (r *Resolver) resolveContentHash(ctx context.Context, logE *logrus.Entry, ref *action.Reference, owner, repoName string, release *github.RepositoryRelease) *Result {
	commit, _, err := r.repos.GetCommit(ctx, owner, repoName, ref.Pinned, nil)
	if err != nil {
		logerr.WithError(logE, err).Warn("get the pinned commit")
		return unresolvable(ref, "get the pinned commit: "+err.Error())
	}
	committedAt := commitTime(commit)
	releasedAt := releaseTime(release)
	if !releasedAt.After(committedAt) {
		return noUpdate(ref)
	}
	r.cache.Set(ref.Name, &Entry{
		Latest:     release.GetTagName(),
		ObservedAt: releasedAt,
	})
	return updated(ref, release.GetTagName())
}

func releaseTime(release *github.RepositoryRelease) time.Time {
	if t := release.GetPublishedAt(); !t.IsZero() {
		return t.Time
	}
	return release.GetCreatedAt().Time
}

func commitTime(commit *github.RepositoryCommit) time.Time {
	c := commit.GetCommit()
	if t := c.GetCommitter().GetDate(); !t.IsZero() {
		return t.Time
	}
	return c.GetAuthor().GetDate().Time
}

func updated(ref *action.Reference, latest string) *Result {
	return &Result{
		Name:    ref.Name,
		Current: ref.Pinned,
		Latest:  latest,
		Status:  StatusUpdated,
	}
}

func noUpdate(ref *action.Reference) *Result {
	return &Result{
		Name:    ref.Name,
		Current: ref.Pinned,
		Status:  StatusNoUpdate,
	}
}

func unresolvable(ref *action.Reference, reason string) *Result {
	return &Result{
		Name:    ref.Name,
		Current: ref.Pinned,
		Status:  StatusUnresolvable,
		Reason:  reason,
	}
}
