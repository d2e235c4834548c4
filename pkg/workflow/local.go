package workflow

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/spf13/afero"
)

const filePermission os.FileMode = 0o644

// Local reads workflow files from a working copy.
type Local struct {
	fs afero.Fs
}

func NewLocal(fs afero.Fs) *Local {
	return &Local{fs: fs}
}

func isYAMLFile(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}

// List returns .yml and .yaml files directly under .github/workflows.
func (l *Local) List(_ context.Context, target *repo.Target) ([]string, error) {
	dir := filepath.Join(target.Path, filepath.FromSlash(Dir))
	f, err := afero.DirExists(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("check if the workflow directory exists: %w", err)
	}
	if !f {
		return nil, fmt.Errorf("workflow directory %s: %w", dir, ErrNotFound)
	}
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read the workflow directory: %w", err)
	}
	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		files = append(files, path.Join(Dir, entry.Name()))
	}
	return files, nil
}

func (l *Local) fullPath(target *repo.Target, p string) string {
	return filepath.Join(target.Path, filepath.FromSlash(p))
}

func (l *Local) Read(_ context.Context, target *repo.Target, p string) ([]byte, error) {
	b, err := afero.ReadFile(l.fs, l.fullPath(target, p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("workflow file %s: %w", p, ErrNotFound)
		}
		return nil, fmt.Errorf("read a file: %w", err)
	}
	return b, nil
}

func (l *Local) Write(_ context.Context, target *repo.Target, p string, content []byte, _ string) error {
	full := l.fullPath(target, p)
	mode := filePermission
	if stat, err := l.fs.Stat(full); err == nil {
		mode = stat.Mode().Perm()
	}
	if err := afero.WriteFile(l.fs, full, content, mode); err != nil {
		return fmt.Errorf("write a file: %w", err)
	}
	return nil
}
