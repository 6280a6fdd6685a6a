package sequence

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Role suffixes shared by the chunking schemes. A tag is either a bare role
// (for untagged positions, "other") or "<type>-<role>".
const (
	RoleStart    = "start"
	RoleContinue = "continue"
	RoleLast     = "last"
	RoleUnit     = "unit"
	RoleOther    = "other"
)

// DefaultType is the literal type used to encode untyped spans.
const DefaultType = "default"

// Codec converts between spans and per-token tag sequences for one chunking
// scheme. Implementations are stateless; every method is safe to call
// concurrently across documents.
type Codec interface {
	// Encode returns exactly length tags, one per token. Spans are applied
	// in input order; a later span overwrites an earlier one where they
	// overlap. Encode never fails.
	Encode(spans []Span, length int) []string

	// Decode converts a tag sequence back to spans, in order of emission
	// (ascending start position for well-formed input). Unrecognized tags
	// behave like "other". Decode never fails.
	Decode(tags []string) []Span

	// CompatibleOutcomes reports whether the outcome vocabulary of a trained
	// model forms a usable grammar for this scheme.
	CompatibleOutcomes(outcomes []string) bool

	// Validator returns the per-step legality predicate for this scheme.
	Validator() Validator
}

// Validator prunes illegal partial tag paths for an external beam search.
// Valid is stateless per call: it looks only at its arguments.
type Validator interface {
	// Valid reports whether outcome is a legal tag at index given the tags
	// already chosen for indices 0..index-1. Only prior[:index] is examined.
	Valid(index int, prior []string, outcome string) bool
}

// Scheme selects one of the supported chunking schemes.
type Scheme int

const (
	// BIO marks spans as begin/inside and everything else as outside; the
	// end of a span is implied by the next begin/outside tag.
	BIO Scheme = iota
	// BILOU extends BIO with explicit last and single-token unit markers.
	BILOU
)

func (s Scheme) String() string {
	switch s {
	case BIO:
		return "BIO"
	case BILOU:
		return "BILOU"
	default:
		return "unknown"
	}
}

// ForScheme returns the codec for the given scheme. This is the single
// dispatch point over the closed set of schemes.
func ForScheme(s Scheme) (Codec, error) {
	switch s {
	case BIO:
		return BioCodec{}, nil
	case BILOU:
		return BilouCodec{}, nil
	default:
		return nil, errors.Errorf("unknown chunking scheme %d", int(s))
	}
}

// typedOutcomePattern recovers the type prefix from a "<type>-<role>" tag.
// The leading group is greedy, so the type runs up to the last hyphen.
var typedOutcomePattern = regexp.MustCompile(`^(.+)-\S+$`)

// extractType returns the type prefix of a tag, or "" for bare-role and
// unparseable tags.
func extractType(outcome string) string {
	m := typedOutcomePattern.FindStringSubmatch(outcome)
	if m == nil {
		return ""
	}
	return m[1]
}

// typedTag builds "<type>-<role>", substituting DefaultType for an empty type.
func typedTag(spanType, role string) string {
	if spanType == "" {
		spanType = DefaultType
	}
	return spanType + "-" + role
}

// rolePrefix returns the outcome with the role suffix removed (the trailing
// hyphen is kept, so "person-start" and "person-continue" share the prefix
// "person-") and whether the outcome carries that role at all.
func rolePrefix(outcome, role string) (string, bool) {
	if !strings.HasSuffix(outcome, role) {
		return "", false
	}
	return strings.TrimSuffix(outcome, role), true
}
