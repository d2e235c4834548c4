// Package di builds the dependencies of each gha-cli command from flags,
// the environment and the configuration file, and runs the command.
package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gha-tools/gha-cli/pkg/config"
	"github.com/gha-tools/gha-cli/pkg/controller/initcmd"
	"github.com/gha-tools/gha-cli/pkg/controller/list"
	"github.com/gha-tools/gha-cli/pkg/controller/orgs"
	"github.com/gha-tools/gha-cli/pkg/controller/token"
	"github.com/gha-tools/gha-cli/pkg/controller/update"
	"github.com/gha-tools/gha-cli/pkg/github"
	"github.com/gha-tools/gha-cli/pkg/log"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/resolver"
	"github.com/gha-tools/gha-cli/pkg/version"
	"github.com/gha-tools/gha-cli/pkg/workflow"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var (
	ErrTokenRequired        = errors.New("a GitHub access token is required")
	errWorkflowPathRequired = errors.New("a workflow file path is required")
)

// Runtime is the process environment commands run in.
type Runtime struct {
	Fs           afero.Fs
	Env          *Env
	TokenManager TokenManager
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
}

type session struct {
	target *repo.Target
	token  string
	cfg    *config.Config
}

// prepare validates the flags and reads the configuration file.
// It doesn't call the GitHub API.
func prepare(logE *logrus.Entry, flags *Flags, rt *Runtime) (*session, error) {
	log.SetLevel(flags.LogLevel, logE)
	if rt.Env.IsGitHubActions {
		color.NoColor = false
	}
	target, err := repo.Parse(rt.Fs, flags.Repo)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	dir := "."
	if target.IsLocal() {
		dir = target.Path
	}
	cfg, err := readConfig(rt.Fs, flags.Config, dir)
	if err != nil {
		return nil, err
	}
	tkn := resolveToken(logE, flags.GitHubToken, rt.Env, rt.TokenManager)
	if tkn == "" {
		logE.Warn(missingTokenWarning)
	}
	return &session{
		target: target,
		token:  tkn,
		cfg:    cfg,
	}, nil
}

func readConfig(fs afero.Fs, configFilePath, dir string) (*config.Config, error) {
	configPath, err := config.NewFinder(fs).Find(configFilePath, dir)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}

func (s *session) newGitHub(ctx context.Context, logE *logrus.Entry, e *Env) (*github.Client, error) {
	gh, err := github.New(ctx, logE, &github.ParamNew{
		Token:  s.token,
		APIURL: e.GitHubAPIURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create a GitHub API client: %w", err)
	}
	return gh, nil
}

func newWorkflowSource(fs afero.Fs, gh *github.Client) *workflow.Source {
	return workflow.New(workflow.NewLocal(fs), workflow.NewRemote(gh.Actions, gh.Repositories))
}

func commitMessage(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.CommitMessage != "" {
		return cfg.CommitMessage
	}
	return config.DefaultCommitMessage
}

// RunUpdate reports the available updates and applies them if --update is set.
func RunUpdate(ctx context.Context, logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	s, err := prepare(logE, flags, rt)
	if err != nil {
		return err
	}
	if flags.Update && !s.target.IsLocal() && s.token == "" {
		return fmt.Errorf("update workflows of a remote repository: %w", ErrTokenRequired)
	}
	gh, err := s.newGitHub(ctx, logE, rt.Env)
	if err != nil {
		return err
	}
	cache := resolver.NewCache()
	res := resolver.New(github.NewRepositoriesService(gh.Repositories), cache, &version.Comparator{
		MajorOnly: flags.MajorOnly || s.cfg.MajorOnly,
	})
	ctrl := update.New(newWorkflowSource(rt.Fs, gh), res, s.cfg, &update.ParamRun{
		Target:        s.target,
		Update:        flags.Update,
		CommitMessage: commitMessage(flags.CommitMessage, s.cfg),
		Stdout:        rt.Stdout,
		Stderr:        rt.Stderr,
	})
	err = ctrl.Run(ctx, logE)
	stats := cache.Stats()
	logE.WithFields(logrus.Fields{
		"cache_hits":   stats.Hits,
		"cache_misses": stats.Misses,
	}).Debug("release cache statistics")
	return err //nolint:wrapcheck
}

func RunListWorkflows(ctx context.Context, logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	s, err := prepare(logE, flags, rt)
	if err != nil {
		return err
	}
	gh, err := s.newGitHub(ctx, logE, rt.Env)
	if err != nil {
		return err
	}
	return list.New(newWorkflowSource(rt.Fs, gh), rt.Stdout).ListWorkflows(ctx, logE, s.target) //nolint:wrapcheck
}

func RunListActions(ctx context.Context, logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	workflowPath := flags.Arg()
	if workflowPath == "" {
		return errWorkflowPathRequired
	}
	s, err := prepare(logE, flags, rt)
	if err != nil {
		return err
	}
	gh, err := s.newGitHub(ctx, logE, rt.Env)
	if err != nil {
		return err
	}
	return list.New(newWorkflowSource(rt.Fs, gh), rt.Stdout).ListActions(ctx, logE, s.target, workflowPath) //nolint:wrapcheck
}

func RunAnalyzeOrgs(ctx context.Context, logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	s, err := prepare(logE, flags, rt)
	if err != nil {
		return err
	}
	if s.token == "" {
		return fmt.Errorf("analyze organizations: %w", ErrTokenRequired)
	}
	gh, err := s.newGitHub(ctx, logE, rt.Env)
	if err != nil {
		return err
	}
	ctrl := orgs.New(gh.Organizations, gh.Teams, gh.Repositories, gh.PullRequests, &orgs.Param{
		Excludes: flags.Excludes,
		Now:      time.Now(),
	}, rt.Stdout)
	return ctrl.Analyze(ctx, logE) //nolint:wrapcheck
}

// RunInit creates a configuration file at the first argument, --config or .gha-cli.yaml.
func RunInit(logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	log.SetLevel(flags.LogLevel, logE)
	p := flags.Arg()
	if p == "" {
		p = flags.Config
	}
	return initcmd.New(rt.Fs).Init(logE, p) //nolint:wrapcheck
}

func RunTokenSet(logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	log.SetLevel(flags.LogLevel, logE)
	return token.New(rt.TokenManager, rt.Stdin, rt.Stderr).Set(logE) //nolint:wrapcheck
}

func RunTokenRemove(logE *logrus.Entry, flags *Flags, rt *Runtime) error {
	log.SetLevel(flags.LogLevel, logE)
	return token.New(rt.TokenManager, rt.Stdin, rt.Stderr).Remove(logE) //nolint:wrapcheck
}
