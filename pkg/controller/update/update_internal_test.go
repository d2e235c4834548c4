package update

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gha-tools/gha-cli/pkg/config"
	"github.com/gha-tools/gha-cli/pkg/github"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/resolver"
	"github.com/gha-tools/gha-cli/pkg/version"
	"github.com/gha-tools/gha-cli/pkg/workflow"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type mockRepositoriesService struct {
	releases map[string]string
	calls    int
}

func (m *mockRepositoriesService) GetLatestRelease(_ context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error) {
	m.calls++
	tag, ok := m.releases[owner+"/"+repo]
	if !ok {
		return nil, &github.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}, errors.New("not found")
	}
	return &github.RepositoryRelease{
		TagName:     github.Ptr(tag),
		PublishedAt: &github.Timestamp{Time: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}, nil, nil
}

func (m *mockRepositoriesService) GetCommit(_ context.Context, _, _, _ string, _ *github.ListOptions) (*github.RepositoryCommit, *github.Response, error) {
	return nil, nil, errors.New("not implemented")
}

const testWorkflow = `name: test
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      # checkout the repository
      - uses: actions/checkout@v2
      - run: echo hello   # keep this comment
`

func newLocalController(t *testing.T, fs afero.Fs, cfg *config.Config, param *ParamRun, repos *mockRepositoriesService) *Controller {
	t.Helper()
	src := workflow.New(workflow.NewLocal(fs), workflow.NewRemote(nil, nil))
	res := resolver.New(repos, resolver.NewCache(), &version.Comparator{})
	return New(src, res, cfg, param)
}

func TestController_Run(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "repo/.github/workflows/test.yaml", []byte(testWorkflow), 0o644); err != nil {
		t.Fatal(err)
	}
	logE := logrus.NewEntry(logrus.New())
	target := &repo.Target{Kind: repo.KindLocal, Path: "repo"}
	repos := &mockRepositoriesService{
		releases: map[string]string{"actions/checkout": "v3"},
	}

	stdout := &bytes.Buffer{}
	ctrl := newLocalController(t, fs, nil, &ParamRun{
		Target:  target,
		NoColor: true,
		Stdout:  stdout,
		Stderr:  io.Discard,
	}, repos)
	if err := ctrl.Run(t.Context(), logE); err != nil {
		t.Fatal(err)
	}
	exp := ".github/workflows/test.yaml (test):\n\tactions/checkout  v2 ==> v3\n"
	if diff := cmp.Diff(exp, stdout.String()); diff != "" {
		t.Fatal(diff)
	}
	b, err := afero.ReadFile(fs, "repo/.github/workflows/test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != testWorkflow {
		t.Fatal("the workflow file must not be changed without the update flag")
	}

	stdout.Reset()
	ctrl = newLocalController(t, fs, nil, &ParamRun{
		Target:  target,
		Update:  true,
		NoColor: true,
		Stdout:  stdout,
		Stderr:  io.Discard,
	}, repos)
	if err := ctrl.Run(t.Context(), logE); err != nil {
		t.Fatal(err)
	}
	b, err = afero.ReadFile(fs, "repo/.github/workflows/test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	expContent := `name: test
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      # checkout the repository
      - uses: actions/checkout@v3
      - run: echo hello   # keep this comment
`
	if diff := cmp.Diff(expContent, string(b)); diff != "" {
		t.Fatal(diff)
	}
	exp += "Updated workflow in .github/workflows/test.yaml\n"
	if diff := cmp.Diff(exp, stdout.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestController_PlanUpdates(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"repo/.github/workflows/a.yaml": `jobs:
  a:
    steps:
      - uses: actions/setup-go@v5
      - uses: actions/checkout@v2
      - uses: ./.github/actions/local
      - uses: octo/ignored@v1
`,
		"repo/.github/workflows/b.yml": `name: B
jobs:
  b:
    steps:
      - uses: actions/checkout@v2
      - uses: octo/unknown@v1
`,
		"repo/.github/workflows/c.yaml": "name: no jobs\non: push\n",
	}
	for p, content := range files {
		if err := afero.WriteFile(fs, p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := &config.Config{
		IgnoreActions: []*config.IgnoreAction{{Name: "octo/ignored"}},
	}
	if err := cfg.Init(); err != nil {
		t.Fatal(err)
	}
	repos := &mockRepositoriesService{
		releases: map[string]string{
			"actions/checkout": "v4",
			"actions/setup-go": "v5",
		},
	}
	ctrl := newLocalController(t, fs, cfg, &ParamRun{Stdout: io.Discard, Stderr: io.Discard}, repos)
	plan, err := ctrl.PlanUpdates(t.Context(), logrus.NewEntry(logrus.New()), &repo.Target{Kind: repo.KindLocal, Path: "repo"})
	if err != nil {
		t.Fatal(err)
	}
	exp := &Plan{
		Files: []*FilePlan{
			{
				Path: ".github/workflows/a.yaml",
				Name: ".github/workflows/a.yaml",
				Results: []*resolver.Result{
					{Name: "actions/checkout", Current: "v2", Latest: "v4", Status: resolver.StatusUpdated},
					{Name: "actions/setup-go", Current: "v5", Status: resolver.StatusNoUpdate},
				},
			},
			{
				Path: ".github/workflows/b.yml",
				Name: "B",
				Results: []*resolver.Result{
					{Name: "actions/checkout", Current: "v2", Latest: "v4", Status: resolver.StatusUpdated},
					{Name: "octo/unknown", Current: "v1", Status: resolver.StatusUnresolvable, Reason: "no release was found"},
				},
			},
			{
				Path:    ".github/workflows/c.yaml",
				Name:    "no jobs",
				Results: []*resolver.Result{},
			},
		},
	}
	if diff := cmp.Diff(exp, plan); diff != "" {
		t.Fatal(diff)
	}
	// actions/checkout is fetched once, actions/setup-go and octo/unknown once each
	if repos.calls != 3 {
		t.Fatalf("wanted 3 release lookups, got %d", repos.calls)
	}
	if len(plan.Results()[".github/workflows/b.yml"]) != 2 {
		t.Fatal("Results must be keyed by path")
	}
}

func TestRewrite(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		results []*resolver.Result
		exp     string
		changed bool
	}{
		{
			name:    "replace every occurrence",
			content: "- uses: actions/checkout@v2\n- uses: actions/checkout@v2 # again\n- uses: actions/setup-go@v4\n",
			results: []*resolver.Result{
				{Name: "actions/checkout", Current: "v2", Latest: "v3", Status: resolver.StatusUpdated},
				{Name: "actions/setup-go", Current: "v4", Status: resolver.StatusNoUpdate},
			},
			exp:     "- uses: actions/checkout@v3\n- uses: actions/checkout@v3 # again\n- uses: actions/setup-go@v4\n",
			changed: true,
		},
		{
			name:    "longer tags and names are kept",
			content: "- uses: actions/checkout@v4\n- uses: actions/checkout@v4.1.0\n- uses: myactions/checkout@v4\n",
			results: []*resolver.Result{
				{Name: "actions/checkout", Current: "v4", Latest: "v5", Status: resolver.StatusUpdated},
			},
			exp:     "- uses: actions/checkout@v5\n- uses: actions/checkout@v4.1.0\n- uses: myactions/checkout@v4\n",
			changed: true,
		},
		{
			name:    "quoted and commented",
			content: "- uses: \"actions/checkout@v4\"\n- uses: 'actions/checkout@v4'\n- uses: actions/checkout@v4#pin\n- uses: actions/checkout@v4",
			results: []*resolver.Result{
				{Name: "actions/checkout", Current: "v4", Latest: "v5", Status: resolver.StatusUpdated},
			},
			exp:     "- uses: \"actions/checkout@v5\"\n- uses: 'actions/checkout@v5'\n- uses: actions/checkout@v5#pin\n- uses: actions/checkout@v5",
			changed: true,
		},
		{
			name:    "only a longer tag",
			content: "- uses: actions/checkout@v4.1.0\n",
			results: []*resolver.Result{
				{Name: "actions/checkout", Current: "v4", Latest: "v5", Status: resolver.StatusUpdated},
			},
			exp: "- uses: actions/checkout@v4.1.0\n",
		},
		{
			name:    "no update",
			content: "- uses: actions/checkout@v4\n",
			results: []*resolver.Result{
				{Name: "actions/checkout", Current: "v4", Status: resolver.StatusNoUpdate},
				{Name: "actions/checkout", Current: "v4", Status: resolver.StatusUnresolvable, Reason: "no release was found"},
			},
			exp: "- uses: actions/checkout@v4\n",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, changed := Rewrite(d.content, d.results)
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
			if changed != d.changed {
				t.Fatalf("wanted changed=%v, got %v", d.changed, changed)
			}
		})
	}
}

type mockSource struct {
	files   []string
	content map[string]string
	written map[string]string
	write   func(path string) error
}

func (m *mockSource) ListWorkflowFiles(_ context.Context, _ *logrus.Entry, _ *repo.Target) ([]string, error) {
	return m.files, nil
}

func (m *mockSource) ReadContent(_ context.Context, _ *logrus.Entry, _ *repo.Target, path string) ([]byte, error) {
	return []byte(m.content[path]), nil
}

func (m *mockSource) WriteContent(_ context.Context, _ *repo.Target, path string, content []byte, _ string) error {
	if err := m.write(path); err != nil {
		return err
	}
	m.written[path] = string(content)
	return nil
}

type mockResolver struct{}

func (m *mockResolver) Resolve(_ context.Context, _ *logrus.Entry, uses, sourceFile string) *resolver.Result {
	if uses == "actions/checkout@v2" {
		return &resolver.Result{Name: "actions/checkout", Current: "v2", Latest: "v4", Status: resolver.StatusUpdated}
	}
	return &resolver.Result{Name: uses, Status: resolver.StatusNoUpdate}
}

func TestController_Run_conflict(t *testing.T) {
	t.Parallel()
	content := "jobs:\n  a:\n    steps:\n      - uses: actions/checkout@v2\n"
	src := &mockSource{
		files: []string{".github/workflows/a.yaml", ".github/workflows/b.yaml"},
		content: map[string]string{
			".github/workflows/a.yaml": content,
			".github/workflows/b.yaml": content,
		},
		written: map[string]string{},
		write: func(path string) error {
			if path == ".github/workflows/a.yaml" {
				return &workflow.ConflictError{Path: path}
			}
			return nil
		},
	}
	ctrl := New(src, &mockResolver{}, nil, &ParamRun{
		Target:        &repo.Target{Kind: repo.KindRemote, Owner: "octo", Name: "repo"},
		Update:        true,
		CommitMessage: config.DefaultCommitMessage,
		NoColor:       true,
		Stdout:        io.Discard,
		Stderr:        io.Discard,
	})
	err := ctrl.Run(t.Context(), logrus.NewEntry(logrus.New()))
	if !errors.Is(err, workflow.ErrConflict) {
		t.Fatalf("wanted ErrConflict, got %v", err)
	}
	exp := map[string]string{
		".github/workflows/b.yaml": "jobs:\n  a:\n    steps:\n      - uses: actions/checkout@v4\n",
	}
	if diff := cmp.Diff(exp, src.written); diff != "" {
		t.Fatal(diff)
	}
}

func TestPrinter_File(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	p := NewPrinter(stdout, io.Discard, true)
	p.File(&FilePlan{
		Path: ".github/workflows/test.yaml",
		Name: "test",
		Results: []*resolver.Result{
			{Name: "actions/checkout", Current: "v2", Latest: "v4", Status: resolver.StatusUpdated},
			{Name: "actions/setup-go", Current: "v5.0.0", Status: resolver.StatusNoUpdate},
			{Name: "octo/foo", Current: "main", Status: resolver.StatusUnresolvable},
		},
	})
	p.File(&FilePlan{Path: ".github/workflows/empty.yaml", Name: "empty", Results: []*resolver.Result{}})
	exp := ".github/workflows/test.yaml (test):\n" +
		"\tactions/checkout  v2     ==> v4\n" +
		"\tactions/setup-go  v5.0.0\n" +
		"\tocto/foo          main   ==> ?\n"
	if diff := cmp.Diff(exp, stdout.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestPrinter_Applied(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	p := NewPrinter(stdout, io.Discard, true)
	p.Applied(&repo.Target{Kind: repo.KindRemote, Owner: "octo", Name: "repo"}, ".github/workflows/test.yaml")
	exp := "Committed changes to workflow in octo/repo:.github/workflows/test.yaml\n"
	if diff := cmp.Diff(exp, stdout.String()); diff != "" {
		t.Fatal(diff)
	}
}
