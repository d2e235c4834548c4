package di

import "github.com/gha-tools/gha-cli/pkg/cli/flag"

// Flags holds the command line flags of all commands.
type Flags struct {
	*flag.GlobalFlags

	Update        bool
	CommitMessage string
	Excludes      []string
	Args          []string
}

// Arg returns the first positional argument.
func (f *Flags) Arg() string {
	if len(f.Args) == 0 {
		return ""
	}
	return f.Args[0]
}
