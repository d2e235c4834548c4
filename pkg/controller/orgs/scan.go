package orgs

import (
	"context"
	"fmt"
	"slices"

	"github.com/gha-tools/gha-cli/pkg/github"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	perPage       = 100
	activeDays    = 365
	largeRepoSize = 1024 * 1024 // KB
)

type Org struct {
	Name              string
	MembersCount      int
	TeamsCount        int
	RepositoriesCount int
	Repositories      []*Repo
}

type Repo struct {
	Name               string
	IsPrivate          bool
	IsArchived         bool
	BranchesCount      int
	CollaboratorsCount int
	IsActive           bool
	HasIssues          bool
	HasPullRequests    bool
	Size               int
	LargeRepo          bool
	IsTemplate         bool
	ForksCount         int
}

// Analyze scans the organizations and prints them as CSV.
func (c *Controller) Analyze(ctx context.Context, logE *logrus.Entry) error {
	orgs, err := c.Scan(ctx, logE)
	if err != nil {
		return err
	}
	return writeCSV(c.stdout, orgs)
}

// Scan returns the organizations of the authenticated user except excluded ones.
func (c *Controller) Scan(ctx context.Context, logE *logrus.Entry) ([]*Org, error) {
	logins, err := c.listOrgs(ctx)
	if err != nil {
		return nil, err
	}
	logE.WithField("num_of_orgs", len(logins)).Info("analyzing organizations")
	orgs := make([]*Org, 0, len(logins))
	for _, login := range logins {
		if slices.Contains(c.param.Excludes, login) {
			logE.WithField("org", login).Debug("exclude the organization")
			continue
		}
		org, err := c.scanOrg(ctx, logE.WithField("org", login), login)
		if err != nil {
			return nil, fmt.Errorf("analyze an organization: %w", logerr.WithFields(err, logrus.Fields{
				"org": login,
			}))
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func (c *Controller) listOrgs(ctx context.Context) ([]string, error) {
	opts := &github.ListOptions{PerPage: perPage}
	logins := []string{}
	for {
		orgs, resp, err := c.orgs.List(ctx, "", opts)
		if err != nil {
			return nil, fmt.Errorf("list organizations of the authenticated user: %w", err)
		}
		for _, org := range orgs {
			logins = append(logins, org.GetLogin())
		}
		if resp == nil || resp.NextPage == 0 {
			return logins, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Controller) scanOrg(ctx context.Context, logE *logrus.Entry, login string) (*Org, error) {
	ghOrg, _, err := c.orgs.Get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("get an organization: %w", err)
	}
	org := &Org{
		Name: ghOrg.GetName(),
	}
	if org.Name == "" {
		org.Name = login
	}
	members, resp, err := c.orgs.ListMembers(ctx, login, &github.ListMembersOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("list organization members: %w", err)
	}
	org.MembersCount = count(members, resp)
	teams, resp, err := c.teams.ListTeams(ctx, login, &github.ListOptions{PerPage: 1})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	org.TeamsCount = count(teams, resp)

	repos, err := c.listRepos(ctx, login)
	if err != nil {
		return nil, err
	}
	logE.WithField("num_of_repos", len(repos)).Info("analyzing repositories")
	org.Repositories = make([]*Repo, 0, len(repos))
	for _, repo := range repos {
		org.Repositories = append(org.Repositories, c.scanRepo(ctx, logE.WithField("repo", repo.GetName()), login, repo))
	}
	org.RepositoriesCount = len(org.Repositories)
	return org, nil
}

func (c *Controller) listRepos(ctx context.Context, org string) ([]*github.Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	repos := []*github.Repository{}
	for {
		arr, resp, err := c.repos.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, fmt.Errorf("list repositories of an organization: %w", err)
		}
		repos = append(repos, arr...)
		if resp == nil || resp.NextPage == 0 {
			return repos, nil
		}
		opts.Page = resp.NextPage
	}
}

// scanRepo counts branches, collaborators, recent commits and pull requests.
// Counts which can't be fetched are logged and left 0.
func (c *Controller) scanRepo(ctx context.Context, logE *logrus.Entry, owner string, repo *github.Repository) *Repo {
	name := repo.GetName()
	r := &Repo{
		Name:       name,
		IsPrivate:  repo.GetPrivate(),
		IsArchived: repo.GetArchived(),
		HasIssues:  repo.GetHasIssues(),
		Size:       repo.GetSize(),
		LargeRepo:  repo.GetSize() > largeRepoSize,
		IsTemplate: repo.GetIsTemplate(),
		ForksCount: repo.GetForksCount(),
	}
	one := github.ListOptions{PerPage: 1}

	if branches, resp, err := c.repos.ListBranches(ctx, owner, name, &github.BranchListOptions{ListOptions: one}); err != nil {
		logerr.WithError(logE, err).Warn("list branches")
	} else {
		r.BranchesCount = count(branches, resp)
	}

	if users, resp, err := c.repos.ListCollaborators(ctx, owner, name, &github.ListCollaboratorsOptions{ListOptions: one}); err != nil {
		logerr.WithError(logE, err).Warn("list collaborators")
	} else {
		r.CollaboratorsCount = count(users, resp)
	}

	if commits, resp, err := c.repos.ListCommits(ctx, owner, name, &github.CommitsListOptions{
		Since:       c.param.Now.AddDate(0, 0, -activeDays),
		ListOptions: one,
	}); err != nil {
		logerr.WithError(logE, err).Warn("list recent commits")
	} else {
		r.IsActive = count(commits, resp) > 0
	}

	if pulls, resp, err := c.pulls.List(ctx, owner, name, &github.PullRequestListOptions{
		State:       "all",
		ListOptions: one,
	}); err != nil {
		logerr.WithError(logE, err).Warn("list pull requests")
	} else {
		r.HasPullRequests = count(pulls, resp) > 0
	}
	return r
}

// count returns the total number of items listed with per_page=1.
func count[T any](items []T, resp *github.Response) int {
	if resp != nil && resp.LastPage > 0 {
		return resp.LastPage
	}
	return len(items)
}
