package update

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gha-tools/gha-cli/pkg/repo"
	"github.com/gha-tools/gha-cli/pkg/resolver"
	"github.com/gha-tools/gha-cli/pkg/version"
)

type colorFunc func(a ...any) string

// Printer writes the update report to stdout and status lines to stderr.
type Printer struct {
	stdout io.Writer
	stderr io.Writer
	red    colorFunc
	green  colorFunc
	cyan   colorFunc
	blue   colorFunc
}

func newColorFunc(noColor bool, attrs ...color.Attribute) colorFunc {
	c := color.New(attrs...)
	if noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func NewPrinter(stdout, stderr io.Writer, noColor bool) *Printer {
	return &Printer{
		stdout: stdout,
		stderr: stderr,
		red:    newColorFunc(noColor, color.FgRed),
		green:  newColorFunc(noColor, color.FgGreen, color.Bold),
		cyan:   newColorFunc(noColor, color.FgHiCyan),
		blue:   newColorFunc(noColor, color.FgHiBlue),
	}
}

func (p *Printer) Banner(target *repo.Target) {
	fmt.Fprintln(p.stderr, p.green("GitHub Actions CLI, scanning repo in "+target.String()))
}

// File prints the results of one workflow file.
// Files without results aren't printed.
//
//	.github/workflows/test.yaml (test):
//		actions/checkout    v2  ==> v4
//		actions/setup-go    v5
func (p *Printer) File(fp *FilePlan) {
	if len(fp.Results) == 0 {
		return
	}
	fmt.Fprintf(p.stdout, "%s (%s):\n", p.blue(fp.Path), p.cyan(fp.Name))
	nameWidth, currentWidth := 0, 0
	for _, result := range fp.Results {
		nameWidth = max(nameWidth, len(result.Name))
		currentWidth = max(currentWidth, len(result.Current))
	}
	for _, result := range fp.Results {
		switch result.Status {
		case resolver.StatusUpdated:
			latest := p.cyan(result.Latest)
			if !version.SameMajor(result.Current, result.Latest) {
				latest = p.red(result.Latest)
			}
			fmt.Fprintf(p.stdout, "\t%-*s  %-*s ==> %s\n", nameWidth, result.Name, currentWidth, result.Current, latest)
		case resolver.StatusUnresolvable:
			fmt.Fprintf(p.stdout, "\t%-*s  %-*s ==> ?\n", nameWidth, result.Name, currentWidth, result.Current)
		default:
			fmt.Fprintf(p.stdout, "\t%-*s  %s\n", nameWidth, result.Name, result.Current)
		}
	}
}

func (p *Printer) Applied(target *repo.Target, path string) {
	if target.IsLocal() {
		fmt.Fprintln(p.stdout, p.cyan("Updated workflow in "+path))
		return
	}
	fmt.Fprintln(p.stdout, p.cyan(fmt.Sprintf("Committed changes to workflow in %s:%s", target, path)))
}
