package orgs

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var orgHeader = []string{"name", "members_count", "teams_count", "repositories_count"} //nolint:gochecknoglobals

var repoHeader = []string{ //nolint:gochecknoglobals
	"name",
	"is_private",
	"is_archived",
	"branches_count",
	"collaborators_count",
	"is_active",
	"has_issues",
	"has_pull_requests",
	"size",
	"large_repo",
	"is_template",
	"forks_count",
}

func (o *Org) record() []string {
	return []string{
		o.Name,
		strconv.Itoa(o.MembersCount),
		strconv.Itoa(o.TeamsCount),
		strconv.Itoa(o.RepositoriesCount),
	}
}

func (r *Repo) record() []string {
	return []string{
		r.Name,
		strconv.FormatBool(r.IsPrivate),
		strconv.FormatBool(r.IsArchived),
		strconv.Itoa(r.BranchesCount),
		strconv.Itoa(r.CollaboratorsCount),
		strconv.FormatBool(r.IsActive),
		strconv.FormatBool(r.HasIssues),
		strconv.FormatBool(r.HasPullRequests),
		strconv.Itoa(r.Size),
		strconv.FormatBool(r.LargeRepo),
		strconv.FormatBool(r.IsTemplate),
		strconv.Itoa(r.ForksCount),
	}
}

// writeCSV writes the organizations first and then the repositories of each
// organization, each table with its own header.
// Organizations without repositories have no repository table.
func writeCSV(w io.Writer, orgs []*Org) error {
	if len(orgs) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	records := [][]string{orgHeader}
	for _, org := range orgs {
		records = append(records, org.record())
	}
	for _, org := range orgs {
		if len(org.Repositories) == 0 {
			continue
		}
		records = append(records, repoHeader)
		for _, repo := range org.Repositories {
			records = append(records, repo.record())
		}
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write organizations as CSV: %w", err)
	}
	return nil
}
