package github

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyService = "gha-tools/gha-cli"
	keyName    = "GITHUB_TOKEN"
)

// TokenManager stores a GitHub access token in the OS keyring.
type TokenManager struct{}

func NewTokenManager() *TokenManager {
	return &TokenManager{}
}

// GetToken returns an empty string if no token is stored.
func (tm *TokenManager) GetToken() (string, error) {
	s, err := keyring.Get(keyService, keyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get a GitHub Access token from keyring: %w", err)
	}
	return s, nil
}

func (tm *TokenManager) SetToken(token string) error {
	if err := keyring.Set(keyService, keyName, token); err != nil {
		return fmt.Errorf("set a GitHub Access token in keyring: %w", err)
	}
	return nil
}

func (tm *TokenManager) RemoveToken() error {
	if err := keyring.Delete(keyService, keyName); err != nil {
		return fmt.Errorf("delete a GitHub Access token from keyring: %w", err)
	}
	return nil
}
