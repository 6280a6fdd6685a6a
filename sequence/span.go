// Package sequence converts between labeled token spans and flat per-token
// tag sequences using the BIO and BILOU chunking schemes, and checks that a
// tag vocabulary forms a structurally valid labeling grammar.
//
// Encode and Decode are total: they never fail on malformed tags, they only
// ignore what they cannot interpret. CompatibleOutcomes is the one place a
// broken vocabulary is surfaced; callers feeding tags from an externally
// trained model should check it before trusting Decode or a Validator.
package sequence

import (
	"fmt"

	"github.com/pkg/errors"
)

// Span is a half-open token range [Start, End) with an optional type label.
// Start and End are token indices, not byte offsets. An empty Type means the
// span is untyped; untyped spans encode with the literal type "default".
//
// Spans are immutable value objects; copy them freely.
type Span struct {
	Start int
	End   int
	Type  string
}

// NewSpan returns a validated span. Start must be non-negative and strictly
// less than End.
func NewSpan(start, end int, spanType string) (Span, error) {
	if start < 0 {
		return Span{}, errors.Errorf("span start %d must be non-negative", start)
	}
	if end <= start {
		return Span{}, errors.Errorf("span end %d must be greater than start %d", end, start)
	}
	return Span{Start: start, End: end, Type: spanType}, nil
}

// Length returns the number of tokens covered by the span.
func (s Span) Length() int { return s.End - s.Start }

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// ContainsIndex reports whether the token index lies within s.
func (s Span) ContainsIndex(index int) bool {
	return s.Start <= index && index < s.End
}

// Intersects reports whether s and other share at least one token.
func (s Span) Intersects(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Equal reports whether the two spans cover the same range with the same type.
func (s Span) Equal(other Span) bool { return s == other }

func (s Span) String() string {
	if s.Type == "" {
		return fmt.Sprintf("[%d..%d)", s.Start, s.End)
	}
	return fmt.Sprintf("[%d..%d) %s", s.Start, s.End, s.Type)
}
