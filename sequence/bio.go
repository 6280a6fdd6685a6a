package sequence

import "strings"

// BioCodec implements the BIO (begin/inside/outside) chunking scheme.
//
// The end of a span is never marked explicitly: a span is closed by the next
// start tag, the next other tag, or the end of the sequence.
type BioCodec struct{}

// Compile time assert that BioCodec implements Codec.
var _ Codec = BioCodec{}

// Encode tags every position other, then overlays each span as one start tag
// followed by continue tags up to the span end.
func (BioCodec) Encode(spans []Span, length int) []string {
	outcomes := make([]string, length)
	for i := range outcomes {
		outcomes[i] = RoleOther
	}
	for _, span := range spans {
		if span.Start >= length || span.End > length {
			continue
		}
		outcomes[span.Start] = typedTag(span.Type, RoleStart)
		for i := span.Start + 1; i < span.End; i++ {
			outcomes[i] = typedTag(span.Type, RoleContinue)
		}
	}
	return outcomes
}

// Decode scans left to right keeping at most one open span. A start tag
// closes any open span and opens a new one; an other tag closes; a continue
// tag extends. The closing span takes its type from the tag before the close,
// and a span still open at the end of the sequence is flushed with the type
// of the final tag. A continue with no open span is ignored.
func (BioCodec) Decode(tags []string) []Span {
	start := -1
	end := -1
	spans := make([]Span, 0, len(tags))
	for i, tag := range tags {
		switch {
		case strings.HasSuffix(tag, RoleStart):
			if start != -1 {
				spans = append(spans, Span{Start: start, End: end, Type: extractType(tags[i-1])})
			}
			start = i
			end = i + 1
		case strings.HasSuffix(tag, RoleContinue):
			end = i + 1
		case strings.HasSuffix(tag, RoleOther):
			if start != -1 {
				spans = append(spans, Span{Start: start, End: end, Type: extractType(tags[i-1])})
				start = -1
				end = -1
			}
		}
	}
	if start != -1 {
		spans = append(spans, Span{Start: start, End: end, Type: extractType(tags[len(tags)-1])})
	}
	return spans
}

// CompatibleOutcomes reports whether the vocabulary forms a valid BIO
// grammar: at least one start outcome, every continue prefix paired with a
// start prefix, and nothing besides start/continue outcomes and the literal
// other.
func (BioCodec) CompatibleOutcomes(outcomes []string) bool {
	starts := make(map[string]bool)
	continues := make(map[string]bool)
	for _, outcome := range outcomes {
		if prefix, ok := rolePrefix(outcome, RoleStart); ok {
			starts[prefix] = true
		} else if prefix, ok := rolePrefix(outcome, RoleContinue); ok {
			continues[prefix] = true
		} else if outcome != RoleOther {
			return false
		}
	}
	if len(starts) == 0 {
		return false
	}
	for prefix := range continues {
		if !starts[prefix] {
			return false
		}
	}
	return true
}

// Validator returns the BIO per-step legality predicate.
func (BioCodec) Validator() Validator { return bioValidator{} }
