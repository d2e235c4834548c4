// Package orgs implements the analyze-orgs command.
// It takes a snapshot of the organizations the authenticated user belongs to
// and of their repositories, and prints it as CSV.
package orgs

import (
	"context"
	"io"
	"time"

	"github.com/gha-tools/gha-cli/pkg/github"
)

type Controller struct {
	orgs   OrganizationsService
	teams  TeamsService
	repos  RepositoriesService
	pulls  PullRequestsService
	param  *Param
	stdout io.Writer
}

type Param struct {
	Excludes []string
	Now      time.Time
}

type OrganizationsService interface {
	List(ctx context.Context, user string, opts *github.ListOptions) ([]*github.Organization, *github.Response, error)
	Get(ctx context.Context, org string) (*github.Organization, *github.Response, error)
	ListMembers(ctx context.Context, org string, opts *github.ListMembersOptions) ([]*github.User, *github.Response, error)
}

type TeamsService interface {
	ListTeams(ctx context.Context, org string, opts *github.ListOptions) ([]*github.Team, *github.Response, error)
}

type RepositoriesService interface {
	ListByOrg(ctx context.Context, org string, opts *github.RepositoryListByOrgOptions) ([]*github.Repository, *github.Response, error)
	ListBranches(ctx context.Context, owner, repo string, opts *github.BranchListOptions) ([]*github.Branch, *github.Response, error)
	ListCollaborators(ctx context.Context, owner, repo string, opts *github.ListCollaboratorsOptions) ([]*github.User, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

func New(orgs OrganizationsService, teams TeamsService, repos RepositoriesService, pulls PullRequestsService, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		orgs:   orgs,
		teams:  teams,
		repos:  repos,
		pulls:  pulls,
		param:  param,
		stdout: stdout,
	}
}
