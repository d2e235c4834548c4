package list_test

import (
	"bytes"
	"testing"

	"github.com/gha-tools/gha-cli/pkg/controller/list"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/workflow"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func newSource(t *testing.T) *workflow.Source {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"repo/.github/workflows/ci.yaml": `name: CI
jobs:
  test:
    steps:
      - uses: actions/setup-go@v5
      - uses: actions/checkout@v4
  lint:
    steps:
      - uses: actions/checkout@v4
      - run: golangci-lint run
`,
		"repo/.github/workflows/release.yml": "on: push\n",
	}
	for p, content := range files {
		if err := afero.WriteFile(fs, p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return workflow.New(workflow.NewLocal(fs), workflow.NewRemote(nil, nil))
}

func TestController_ListWorkflows(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	ctrl := list.New(newSource(t), stdout)
	target := &repo.Target{Kind: repo.KindLocal, Path: "repo"}
	if err := ctrl.ListWorkflows(t.Context(), logrus.NewEntry(logrus.New()), target); err != nil {
		t.Fatal(err)
	}
	exp := `.github/workflows/ci.yaml - CI
.github/workflows/release.yml - .github/workflows/release.yml
`
	if diff := cmp.Diff(exp, stdout.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestController_ListActions(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	ctrl := list.New(newSource(t), stdout)
	target := &repo.Target{Kind: repo.KindLocal, Path: "repo"}
	if err := ctrl.ListActions(t.Context(), logrus.NewEntry(logrus.New()), target, ".github/workflows/ci.yaml"); err != nil {
		t.Fatal(err)
	}
	exp := "actions/checkout@v4\nactions/setup-go@v5\n"
	if diff := cmp.Diff(exp, stdout.String()); diff != "" {
		t.Fatal(diff)
	}
	if err := ctrl.ListActions(t.Context(), logrus.NewEntry(logrus.New()), target, ".github/workflows/missing.yaml"); err == nil {
		t.Fatal("error must be returned")
	}
}
