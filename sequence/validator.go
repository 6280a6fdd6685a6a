package sequence

import "strings"

// bioValidator enforces BIO transition legality: a continue step must follow
// a start or continue of the same type. Start and other steps are always
// legal.
type bioValidator struct{}

var _ Validator = bioValidator{}

func (bioValidator) Valid(index int, prior []string, outcome string) bool {
	if !strings.HasSuffix(outcome, RoleContinue) {
		return true
	}
	if index == 0 || index > len(prior) {
		return false
	}
	prev := prior[index-1]
	if !strings.HasSuffix(prev, RoleStart) && !strings.HasSuffix(prev, RoleContinue) {
		return false
	}
	return extractType(prev) == extractType(outcome)
}

// bilouValidator enforces BILOU transition legality: continue and last steps
// must follow a start or continue of the same type. Start, unit and other
// steps are always legal.
type bilouValidator struct{}

var _ Validator = bilouValidator{}

func (bilouValidator) Valid(index int, prior []string, outcome string) bool {
	if !strings.HasSuffix(outcome, RoleContinue) && !strings.HasSuffix(outcome, RoleLast) {
		return true
	}
	if index == 0 || index > len(prior) {
		return false
	}
	// A unit, last or other before us means no span is open.
	prev := prior[index-1]
	if !strings.HasSuffix(prev, RoleStart) && !strings.HasSuffix(prev, RoleContinue) {
		return false
	}
	return extractType(prev) == extractType(outcome)
}
