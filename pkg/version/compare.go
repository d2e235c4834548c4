// Package version compares dotted numeric release tags such as v1.2.3.
//
// A single leading "v" or "V" is ignored. Segments missing from the shorter
// version are treated as 0. Tags that carry anything other than non-negative
// integer segments (prerelease or build suffixes, branch names, commit hashes)
// can't be ordered, and Compare reports them as Equal together with a *ParseError.
package version

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Greater:
		return "GREATER"
	default:
		return "EQUAL"
	}
}

type ParseError struct {
	Version string
	err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("version %q isn't a dotted numeric version", e.Version)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Comparator compares versions under a strictness policy.
// If MajorOnly is true only the first segment is compared.
type Comparator struct {
	MajorOnly bool
}

// Compare returns the ordering of a relative to b.
func (c *Comparator) Compare(a, b string) (Ordering, error) {
	sa, err := c.segments(a)
	if err != nil {
		return Equal, err
	}
	sb, err := c.segments(b)
	if err != nil {
		return Equal, err
	}
	n := max(len(sa), len(sb))
	for i := range n {
		va := segmentAt(sa, i)
		vb := segmentAt(sb, i)
		if va > vb {
			return Greater, nil
		}
		if va < vb {
			return Less, nil
		}
	}
	return Equal, nil
}

// CompareLog is Compare for callers that treat incomparable versions as equal.
// The parse failure is logged as a warning instead of being returned.
func (c *Comparator) CompareLog(logE *logrus.Entry, a, b string) Ordering {
	o, err := c.Compare(a, b)
	if err != nil {
		logerr.WithError(logE, err).WithFields(logrus.Fields{
			"version_a": a,
			"version_b": b,
		}).Warn("could not compare versions")
		return Equal
	}
	return o
}

// SameMajor reports whether a and b share the same major version.
// Versions which can't be parsed are never considered the same major version.
func SameMajor(a, b string) bool {
	c := &Comparator{MajorOnly: true}
	o, err := c.Compare(a, b)
	return err == nil && o == Equal
}

func (c *Comparator) segments(s string) ([]int64, error) {
	v := trimPrefix(s)
	if c.MajorOnly {
		if i := strings.Index(v, "."); i >= 0 {
			v = v[:i]
		}
	}
	if v == "" || v[0] < '0' || v[0] > '9' {
		return nil, &ParseError{Version: s}
	}
	ver, err := goversion.NewVersion(v)
	if err != nil {
		return nil, &ParseError{Version: s, err: err}
	}
	if ver.Prerelease() != "" || ver.Metadata() != "" {
		return nil, &ParseError{Version: s}
	}
	return ver.Segments64(), nil
}

func trimPrefix(s string) string {
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		return s[1:]
	}
	return s
}

func segmentAt(segments []int64, i int) int64 {
	if i < len(segments) {
		return segments[i]
	}
	return 0
}
