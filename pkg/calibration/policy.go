package calibration

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Policy decides what Sum does with a line that has no digit token.
type Policy string

const (
	// PolicyAbort stops at the first invalid line and returns its error.
	PolicyAbort Policy = "abort"
	// PolicyWarn logs a warning and skips the line.
	PolicyWarn Policy = "warn"
	// PolicySkip skips the line silently.
	PolicySkip Policy = "skip"
)

// Policies lists every supported policy.
var Policies = []Policy{PolicyAbort, PolicyWarn, PolicySkip}

// ParsePolicy converts a case-insensitive name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Policies {
		if p == known {
			return p, nil
		}
	}
	return "", pkgerrors.Errorf("unknown invalid line policy %q, must be one of %v", s, Policies)
}

func (p Policy) String() string {
	return string(p)
}
