// Package flag defines the flags shared by all gha-cli commands.
package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel    string
	Config      string
	Repo        string
	GitHubToken string
	MajorOnly   bool
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("GHA_CLI_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("GHA_CLI_CONFIG"),
			Destination: &gf.Config,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "a local git repository or <owner>/<repo> on GitHub",
			Value:       ".",
			Destination: &gf.Repo,
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token. GITHUB_TOKEN, GH_TOKEN and the OS keyring are used if it isn't set",
			Destination: &gf.GitHubToken,
		},
		&cli.BoolFlag{
			Name:        "major-only",
			Aliases:     []string{"m"},
			Usage:       "compare only major versions",
			Destination: &gf.MajorOnly,
		},
	}
}
