// Package initcmd creates a gha-cli configuration file from a template.
package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	DefaultConfigFilePath = ".gha-cli.yaml"

	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/gha-tools/gha-cli/refs/heads/main/json-schema/gha-cli.json
# gha-cli - https://github.com/gha-tools/gha-cli

# Compare only major versions.
# major_only: true

# commit_message: "chore(ci):update actions"

ignore_actions:
# - name: actions/checkout
# - name: actions/*
#   name_format: glob
#   ref: main
# - name: ^my-org/.*
#   name_format: regexp
`
	filePermission os.FileMode = 0o644
	dirPermission  os.FileMode = 0o755
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init writes the template to configFilePath unless the file already exists.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	if configFilePath == "" {
		configFilePath = DefaultConfigFilePath
	}
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if dir := filepath.Dir(configFilePath); dir != "." {
		if err := c.fs.MkdirAll(dir, dirPermission); err != nil {
			return fmt.Errorf("create a directory for the configuration file: %w", err)
		}
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config", configFilePath).Info("created a configuration file")
	return nil
}
