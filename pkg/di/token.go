package di

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const missingTokenWarning = "GitHub token not provided, some operations (such as remote updates) may not be possible"

type TokenManager interface {
	GetToken() (string, error)
	SetToken(token string) error
	RemoveToken() error
}

// resolveToken returns the first token found in the --github-token flag,
// GITHUB_TOKEN, GH_TOKEN and finally the OS keyring if it's enabled.
func resolveToken(logE *logrus.Entry, flagToken string, e *Env, tm TokenManager) string {
	for _, token := range []string{flagToken, e.GitHubToken, e.GHToken} {
		if token != "" {
			return token
		}
	}
	if !e.KeyringEnabled || tm == nil {
		return ""
	}
	token, err := tm.GetToken()
	if err != nil {
		logerr.WithError(logE, err).Warn("get a GitHub access token from the keyring")
		return ""
	}
	if token != "" {
		logE.Debug("use a GitHub access token stored in the keyring")
	}
	return token
}
