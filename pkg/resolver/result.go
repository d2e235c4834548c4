package resolver

type Status int

const (
	// StatusNoUpdate means the pinned ref is confirmed to be current.
	StatusNoUpdate Status = iota
	StatusUpdated
	// StatusUnresolvable means it couldn't be determined whether an update exists.
	StatusUnresolvable
)

func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnresolvable:
		return "unresolvable"
	default:
		return "no update"
	}
}

// Result is the outcome of resolving one `uses:` value.
// Latest is set only if Status is StatusUpdated.
type Result struct {
	Name    string
	Current string
	Latest  string
	Status  Status
	Reason  string
}

func (r *Result) HasUpdate() bool {
	return r.Status == StatusUpdated && r.Latest != ""
}

// Uses returns the `uses:` value before the update.
func (r *Result) Uses() string {
	return r.Name + "@" + r.Current
}

// NewUses returns the `uses:` value after the update.
func (r *Result) NewUses() string {
	return r.Name + "@" + r.Latest
}
