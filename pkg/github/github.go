// Package github creates the GitHub API client used by every command and
// exposes the go-github types the rest of gha-cli depends on.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v74/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type (
	Branch                       = github.Branch
	BranchListOptions            = github.BranchListOptions
	Client                       = github.Client
	Commit                       = github.Commit
	CommitAuthor                 = github.CommitAuthor
	CommitsListOptions           = github.CommitsListOptions
	ErrorResponse                = github.ErrorResponse
	ListCollaboratorsOptions     = github.ListCollaboratorsOptions
	ListMembersOptions           = github.ListMembersOptions
	ListOptions                  = github.ListOptions
	Organization                 = github.Organization
	PullRequest                  = github.PullRequest
	PullRequestListOptions       = github.PullRequestListOptions
	Repository                   = github.Repository
	RepositoryCommit             = github.RepositoryCommit
	RepositoryContent            = github.RepositoryContent
	RepositoryContentFileOptions = github.RepositoryContentFileOptions
	RepositoryContentGetOptions  = github.RepositoryContentGetOptions
	RepositoryContentResponse    = github.RepositoryContentResponse
	RepositoryListByOrgOptions   = github.RepositoryListByOrgOptions
	RepositoryRelease            = github.RepositoryRelease
	Response                     = github.Response
	Team                         = github.Team
	Timestamp                    = github.Timestamp
	User                         = github.User
	Workflow                     = github.Workflow
	Workflows                    = github.Workflows
)

const defaultAPIURL = "https://api.github.com"

type ParamNew struct {
	Token string
	// APIURL is the REST API endpoint of GitHub Enterprise Server.
	// github.com is used if it's empty.
	APIURL string
}

func New(ctx context.Context, logE *logrus.Entry, param *ParamNew) (*Client, error) {
	client := github.NewClient(getHTTPClientForGitHub(ctx, logE, param.Token))
	apiURL := strings.TrimSuffix(param.APIURL, "/")
	if apiURL == "" || apiURL == defaultAPIURL {
		return client, nil
	}
	logE.WithField("github_api_url", apiURL).Debug("use GitHub Enterprise Server")
	c, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configure the GitHub Enterprise Server API endpoint: %w", err)
	}
	return c, nil
}

func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

// StatusCode returns the HTTP status code of resp, or 0 if resp is nil.
func StatusCode(resp *Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

func IsNotFound(resp *Response) bool {
	return StatusCode(resp) == http.StatusNotFound
}

func getHTTPClientForGitHub(ctx context.Context, logE *logrus.Entry, token string) *http.Client {
	if token == "" {
		logE.Debug("access the GitHub API without a token")
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
