package action_test

import (
	"strings"
	"testing"

	"github.com/gha-tools/gha-cli/pkg/action"
	"github.com/google/go-cmp/cmp"
)

func TestIsContentHash(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		ref  string
		exp  bool
	}{
		{
			name: "40 hex",
			ref:  strings.Repeat("a", 40),
			exp:  true,
		},
		{
			name: "39 hex",
			ref:  strings.Repeat("a", 39),
		},
		{
			name: "41 hex",
			ref:  strings.Repeat("a", 41),
		},
		{
			name: "non hex",
			ref:  "g" + strings.Repeat("a", 39),
		},
		{
			name: "upper case",
			ref:  "8E5E7E5AB8B370D6C329EC480221332ADA57F0AB",
			exp:  true,
		},
		{
			name: "real sha",
			ref:  "8e5e7e5ab8b370d6c329ec480221332ada57f0ab",
			exp:  true,
		},
		{
			name: "tag",
			ref:  "v4",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := action.IsContentHash(d.ref); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestParseUses(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		uses string
		exp  *action.Reference
	}{
		{
			name: "tag",
			uses: "actions/checkout@v4",
			exp: &action.Reference{
				Name:       "actions/checkout",
				Pinned:     "v4",
				SourceFile: ".github/workflows/test.yaml",
			},
		},
		{
			name: "sub directory",
			uses: "github/codeql-action/upload-sarif@v3",
			exp: &action.Reference{
				Name:       "github/codeql-action/upload-sarif",
				Pinned:     "v3",
				SourceFile: ".github/workflows/test.yaml",
			},
		},
		{
			name: "local action",
			uses: "./.github/actions/foo",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, ok := action.ParseUses(d.uses, ".github/workflows/test.yaml")
			if d.exp == nil {
				if ok {
					t.Fatalf("wanted no reference, got %v", got)
				}
				return
			}
			if !ok {
				t.Fatal("a reference must be returned")
			}
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
			if got.String() != d.uses {
				t.Fatalf("wanted %s, got %s", d.uses, got.String())
			}
		})
	}
}

func TestReference_Repository(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		ref   *action.Reference
		owner string
		repo  string
		isErr bool
	}{
		{
			name:  "normal",
			ref:   &action.Reference{Name: "actions/checkout"},
			owner: "actions",
			repo:  "checkout",
		},
		{
			name:  "sub directory",
			ref:   &action.Reference{Name: "github/codeql-action/upload-sarif"},
			owner: "github",
			repo:  "codeql-action",
		},
		{
			name:  "docker",
			ref:   &action.Reference{Name: "docker"},
			isErr: true,
		},
		{
			name:  "empty repo",
			ref:   &action.Reference{Name: "actions/"},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			owner, repo, err := d.ref.Repository()
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if owner != d.owner || repo != d.repo {
				t.Fatalf("wanted %s/%s, got %s/%s", d.owner, d.repo, owner, repo)
			}
		})
	}
}
