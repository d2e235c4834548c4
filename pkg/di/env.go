package di

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the environment gha-cli reads besides command line flags.
type Env struct {
	GitHubToken     string `env:"GITHUB_TOKEN"`
	GHToken         string `env:"GH_TOKEN"`
	GitHubAPIURL    string `env:"GITHUB_API_URL"`
	KeyringEnabled  bool   `env:"GHA_CLI_KEYRING_ENABLED"`
	IsGitHubActions bool   `env:"GITHUB_ACTIONS"`
}

// LoadEnv decodes environ, a list of KEY=VALUE pairs as returned by os.Environ.
func LoadEnv(environ []string) (*Env, error) {
	e := &Env{}
	if err := env.ParseWithOptions(e, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("parse environment variables: %w", err)
	}
	return e, nil
}
