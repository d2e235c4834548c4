// Package action extracts GitHub Actions references from workflow files
// and classifies how each reference is pinned.
package action

import (
	"errors"
	"strings"
)

// Reference is a `uses:` value split into the action name and the pinned ref.
type Reference struct {
	Name       string
	Pinned     string
	SourceFile string
}

func (r *Reference) String() string {
	return r.Name + "@" + r.Pinned
}

// Repository returns the owner and repository name hosting the action.
// github/codeql-action/upload-sarif is hosted in github/codeql-action.
func (r *Reference) Repository() (string, string, error) {
	owner, rest, ok := strings.Cut(r.Name, "/")
	if !ok || owner == "" || rest == "" {
		return "", "", errors.New("action name must be <owner>/<repo>")
	}
	repo, _, _ := strings.Cut(rest, "/")
	if repo == "" {
		return "", "", errors.New("action name must be <owner>/<repo>")
	}
	return owner, repo, nil
}

// IsContentHash reports whether the pinned ref is a full commit SHA.
func (r *Reference) IsContentHash() bool {
	return IsContentHash(r.Pinned)
}

// ParseUses parses a `uses:` value such as actions/checkout@v4.
// It returns false if the value has no ref, e.g. a local action ./.github/actions/foo.
func ParseUses(uses, sourceFile string) (*Reference, bool) {
	idx := strings.LastIndex(uses, "@")
	if idx == -1 {
		return nil, false
	}
	return &Reference{
		Name:       uses[:idx],
		Pinned:     uses[idx+1:],
		SourceFile: sourceFile,
	}, true
}

const contentHashLength = 40

// IsContentHash reports whether ref is a 40 characters hexadecimal commit SHA.
// Upper case digits are accepted.
func IsContentHash(ref string) bool {
	if len(ref) != contentHashLength {
		return false
	}
	for _, c := range strings.ToLower(ref) {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
