// Package repo resolves the --repo argument into a local working copy or
// a remote GitHub repository.
package repo

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

type Kind int

const (
	KindLocal Kind = iota
	KindRemote
)

var ErrInvalidTarget = errors.New("repository must be a local git repository or <owner>/<repo>")

// Target is a repository gha-cli operates on.
// Path is set for local targets, Owner and Name for remote targets.
type Target struct {
	Kind  Kind
	Path  string
	Owner string
	Name  string
}

func (t *Target) IsLocal() bool {
	return t.Kind == KindLocal
}

func (t *Target) String() string {
	if t.IsLocal() {
		return t.Path
	}
	return t.Owner + "/" + t.Name
}

var remotePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Parse resolves identifier once so that the rest of the program never
// checks the file system again to decide between local and remote.
func Parse(fs afero.Fs, identifier string) (*Target, error) {
	if identifier == "" {
		identifier = "."
	}
	local, err := IsLocal(fs, identifier)
	if err != nil {
		return nil, err
	}
	if local {
		return &Target{
			Kind: KindLocal,
			Path: filepath.Clean(identifier),
		}, nil
	}
	if strings.HasPrefix(identifier, ".") || !remotePattern.MatchString(identifier) {
		return nil, fmt.Errorf("parse the repository %q: %w", identifier, ErrInvalidTarget)
	}
	owner, name, _ := strings.Cut(identifier, "/")
	return &Target{
		Kind:  KindRemote,
		Owner: owner,
		Name:  name,
	}, nil
}

// IsLocal reports whether p is an existing directory containing .git.
func IsLocal(fs afero.Fs, p string) (bool, error) {
	f, err := afero.DirExists(fs, p)
	if err != nil {
		return false, fmt.Errorf("check if the repository directory exists: %w", err)
	}
	if !f {
		return false, nil
	}
	f, err = afero.Exists(fs, filepath.Join(p, ".git"))
	if err != nil {
		return false, fmt.Errorf("check if .git exists: %w", err)
	}
	return f, nil
}
