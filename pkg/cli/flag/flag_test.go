package flag_test

import (
	"context"
	"testing"

	"github.com/gha-tools/gha-cli/pkg/cli/flag"
	"github.com/urfave/cli/v3"
)

func TestGlobalFlags_Flags(t *testing.T) {
	t.Parallel()
	gf := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:  "test",
		Flags: gf.Flags(),
		Action: func(_ context.Context, _ *cli.Command) error {
			return nil
		},
	}
	if err := cmd.Run(t.Context(), []string{"test", "-c", "foo.yaml", "--repo", "octo/app", "-m", "--github-token", "xxx"}); err != nil {
		t.Fatal(err)
	}
	if gf.Config != "foo.yaml" {
		t.Errorf("Config: wanted foo.yaml, got %q", gf.Config)
	}
	if gf.Repo != "octo/app" {
		t.Errorf("Repo: wanted octo/app, got %q", gf.Repo)
	}
	if !gf.MajorOnly {
		t.Error("MajorOnly: wanted true")
	}
	if gf.GitHubToken != "xxx" {
		t.Errorf("GitHubToken: wanted xxx, got %q", gf.GitHubToken)
	}
}
