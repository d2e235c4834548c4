// Package config reads the optional gha-cli configuration file.
//
// The file is looked up in the following order unless a path is given explicitly:
// .gha-cli.yaml, .github/gha-cli.yaml, .gha-cli.yml, .github/gha-cli.yml.
package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const DefaultCommitMessage = "chore(ci):update actions"

var ErrInvalidFormat = errors.New("format must be fixed_string, glob, or regexp")

type Config struct {
	MajorOnly     bool            `json:"major_only,omitempty" yaml:"major_only" jsonschema:"description=Compare only major versions. v1.2.3 isn't updated to v1.2.4 but to v2"`
	CommitMessage string          `json:"commit_message,omitempty" yaml:"commit_message" jsonschema:"description=Commit message used when workflows of a remote repository are updated"`
	IgnoreActions []*IgnoreAction `json:"ignore_actions,omitempty" yaml:"ignore_actions" jsonschema:"description=Actions which gha-cli never updates"`
}

// Init validates the configuration and compiles patterns.
func (c *Config) Init() error {
	for _, ia := range c.IgnoreActions {
		if err := ia.Init(); err != nil {
			return fmt.Errorf("initialize ignore_actions: %w", err)
		}
	}
	return nil
}

// Ignored reports whether any ignore_actions entry matches the action.
func (c *Config) Ignored(name, ref string) (bool, error) {
	for _, ia := range c.IgnoreActions {
		f, err := ia.Match(name, ref)
		if err != nil {
			return false, err
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}

type IgnoreAction struct {
	Name       string `json:"name"`
	NameFormat string `json:"name_format,omitempty" yaml:"name_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp,description=The default is fixed_string"`
	Ref        string `json:"ref,omitempty"`
	RefFormat  string `json:"ref_format,omitempty" yaml:"ref_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp,description=The default is fixed_string"`
	name       *pattern
	ref        *pattern
}

func (ia *IgnoreAction) Init() error {
	if ia.Name == "" {
		return errors.New("name is required")
	}
	p, err := newPattern(ia.Name, ia.NameFormat)
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}
	ia.name = p
	if ia.Ref == "" {
		return nil
	}
	p, err = newPattern(ia.Ref, ia.RefFormat)
	if err != nil {
		return fmt.Errorf("ref: %w", err)
	}
	ia.ref = p
	return nil
}

// Match reports whether the action matches. An empty ref pattern matches any ref.
// Init must be called before Match.
func (ia *IgnoreAction) Match(name, ref string) (bool, error) {
	if ia.name == nil {
		return false, errors.New("ignore_actions isn't initialized")
	}
	f, err := ia.name.match(name)
	if err != nil {
		return false, fmt.Errorf("match name: %w", err)
	}
	if !f || ia.ref == nil {
		return f, nil
	}
	f, err = ia.ref.match(ref)
	if err != nil {
		return false, fmt.Errorf("match ref: %w", err)
	}
	return f, nil
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

type pattern struct {
	value  string
	format string
	regexp *regexp.Regexp
}

func newPattern(value, format string) (*pattern, error) {
	p := &pattern{value: value, format: format}
	switch format {
	case "", formatFixedString:
		p.format = formatFixedString
	case formatGlob:
		if _, err := path.Match(value, ""); err != nil {
			return nil, fmt.Errorf("parse %s as a glob: %w", value, err)
		}
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile %s as a regular expression: %w", value, err)
		}
		p.regexp = r
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
	return p, nil
}

func (p *pattern) match(s string) (bool, error) {
	switch p.format {
	case formatGlob:
		f, err := path.Match(p.value, s)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		return p.regexp.MatchString(s), nil
	default:
		return p.value == s, nil
	}
}

var configFileNames = []string{ //nolint:gochecknoglobals
	".gha-cli.yaml",
	filepath.Join(".github", "gha-cli.yaml"),
	".gha-cli.yml",
	filepath.Join(".github", "gha-cli.yml"),
}

func getConfigPath(fs afero.Fs, dir string) (string, error) {
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it searches dir and returns an empty string if no file is found.
func (f *Finder) Find(configFilePath, dir string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs, dir)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes the file into cfg and initializes it.
// Nothing is read if configFilePath is empty.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return err
	}
	return nil
}
