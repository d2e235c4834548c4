package config_test

import (
	"testing"

	"github.com/gha-tools/gha-cli/pkg/config"
)

func TestIgnoreAction_Match(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name         string
		ignoreAction *config.IgnoreAction
		actionName   string
		actionRef    string
		expected     bool
	}{
		{
			name: "match by name only",
			ignoreAction: &config.IgnoreAction{
				Name: "actions/checkout",
			},
			actionName: "actions/checkout",
			actionRef:  "v4",
			expected:   true,
		},
		{
			name: "match by name and ref",
			ignoreAction: &config.IgnoreAction{
				Name:       "actions/checkout",
				NameFormat: "fixed_string",
				Ref:        "v4",
				RefFormat:  "fixed_string",
			},
			actionName: "actions/checkout",
			actionRef:  "v4",
			expected:   true,
		},
		{
			name: "match by name but not by ref",
			ignoreAction: &config.IgnoreAction{
				Name: "actions/checkout",
				Ref:  "v4",
			},
			actionName: "actions/checkout",
			actionRef:  "v3",
			expected:   false,
		},
		{
			name: "glob",
			ignoreAction: &config.IgnoreAction{
				Name:       "actions/*",
				NameFormat: "glob",
			},
			actionName: "actions/setup-go",
			actionRef:  "v5",
			expected:   true,
		},
		{
			name: "glob doesn't match a sub directory",
			ignoreAction: &config.IgnoreAction{
				Name:       "github/*",
				NameFormat: "glob",
			},
			actionName: "github/codeql-action/init",
			actionRef:  "v3",
			expected:   false,
		},
		{
			name: "regexp ref",
			ignoreAction: &config.IgnoreAction{
				Name:      "actions/checkout",
				Ref:       `^v\d+$`,
				RefFormat: "regexp",
			},
			actionName: "actions/checkout",
			actionRef:  "v4",
			expected:   true,
		},
		{
			name: "regexp ref doesn't match",
			ignoreAction: &config.IgnoreAction{
				Name:      "actions/checkout",
				Ref:       `^v\d+$`,
				RefFormat: "regexp",
			},
			actionName: "actions/checkout",
			actionRef:  "v4.1.0",
			expected:   false,
		},
		{
			name: "not match by name",
			ignoreAction: &config.IgnoreAction{
				Name: "actions/checkout",
			},
			actionName: "actions/setup-go",
			actionRef:  "v5",
			expected:   false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if err := d.ignoreAction.Init(); err != nil {
				t.Fatal(err)
			}
			f, err := d.ignoreAction.Match(d.actionName, d.actionRef)
			if err != nil {
				t.Fatal(err)
			}
			if f != d.expected {
				t.Fatalf("wanted %v, got %v", d.expected, f)
			}
		})
	}
}

func TestConfig_Ignored(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		IgnoreActions: []*config.IgnoreAction{
			{Name: "actions/checkout"},
			{Name: "^octo/.*", NameFormat: "regexp"},
		},
	}
	if err := cfg.Init(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"actions/checkout", "octo/foo"} {
		f, err := cfg.Ignored(name, "v1")
		if err != nil {
			t.Fatal(err)
		}
		if !f {
			t.Fatalf("%s must be ignored", name)
		}
	}
	f, err := cfg.Ignored("actions/setup-go", "v1")
	if err != nil {
		t.Fatal(err)
	}
	if f {
		t.Fatal("actions/setup-go must not be ignored")
	}
}
