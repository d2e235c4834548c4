package action

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

// Document is the part of a workflow file gha-cli reads.
// Jobs keeps the raw decoded values because a job or a step may be of any shape.
type Document struct {
	Name string
	Jobs map[string]any
}

type rawDocument struct {
	Name any `yaml:"name"`
	Jobs any `yaml:"jobs"`
}

// ParseWorkflow parses a workflow file.
// It fails only if the file isn't a YAML mapping.
func ParseWorkflow(content []byte) (*Document, error) {
	raw := &rawDocument{}
	if err := yaml.Unmarshal(content, raw); err != nil {
		return nil, fmt.Errorf("parse a workflow file as YAML: %w", err)
	}
	doc := &Document{}
	if name, ok := raw.Name.(string); ok {
		doc.Name = name
	}
	if jobs, ok := raw.Jobs.(map[string]any); ok {
		doc.Jobs = jobs
	}
	return doc, nil
}

// Uses returns the distinct `uses:` values of all steps, sorted.
// Jobs and steps which aren't mappings are skipped.
func (d *Document) Uses() []string {
	set := map[string]struct{}{}
	for _, job := range d.Jobs {
		m, ok := job.(map[string]any)
		if !ok {
			continue
		}
		steps, ok := m["steps"].([]any)
		if !ok {
			continue
		}
		for _, step := range steps {
			s, ok := step.(map[string]any)
			if !ok {
				continue
			}
			if uses, ok := s["uses"].(string); ok && uses != "" {
				set[uses] = struct{}{}
			}
		}
	}
	arr := make([]string, 0, len(set))
	for uses := range set {
		arr = append(arr, uses)
	}
	sort.Strings(arr)
	return arr
}

// ExtractActions returns the distinct `uses:` values of a workflow file.
// A document which can't be parsed or has no jobs yields no actions.
func ExtractActions(content []byte) []string {
	doc, err := ParseWorkflow(content)
	if err != nil {
		return []string{}
	}
	return doc.Uses()
}

// DisplayName returns the workflow's name, or the path if it has none.
func DisplayName(content []byte, path string) string {
	doc, err := ParseWorkflow(content)
	if err != nil || doc.Name == "" {
		return path
	}
	return doc.Name
}
