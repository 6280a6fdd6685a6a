package sequence

import "strings"

// BilouCodec implements the BILOU (begin/inside/last/outside/unit) chunking
// scheme. Unlike BIO it marks span ends explicitly: multi-token spans close
// with a last tag and single-token spans are a standalone unit tag.
type BilouCodec struct{}

// Compile time assert that BilouCodec implements Codec.
var _ Codec = BilouCodec{}

// Encode tags every position other, then overlays each span: a span of one
// token becomes a unit tag, a longer span becomes start, interior continues,
// and a closing last.
func (BilouCodec) Encode(spans []Span, length int) []string {
	outcomes := make([]string, length)
	for i := range outcomes {
		outcomes[i] = RoleOther
	}
	for _, span := range spans {
		if span.Start >= length || span.End > length {
			continue
		}
		if span.Length() > 1 {
			outcomes[span.Start] = typedTag(span.Type, RoleStart)
			for i := span.Start + 1; i < span.End-1; i++ {
				outcomes[i] = typedTag(span.Type, RoleContinue)
			}
			outcomes[span.End-1] = typedTag(span.Type, RoleLast)
		} else {
			outcomes[span.End-1] = typedTag(span.Type, RoleUnit)
		}
	}
	return outcomes
}

// Decode scans left to right keeping at most one open span. A start tag
// opens, continue extends, and last closes and emits, taking the type of the
// tag before the close. A unit tag emits a single-token span immediately,
// regardless of open-span state. A last with no open span is dropped; the
// validator is the layer that keeps such sequences from being generated.
func (BilouCodec) Decode(tags []string) []Span {
	start := -1
	end := -1
	spans := make([]Span, 0, len(tags))
	for i, tag := range tags {
		switch {
		case strings.HasSuffix(tag, RoleStart):
			start = i
			end = i + 1
		case strings.HasSuffix(tag, RoleContinue):
			end = i + 1
		case strings.HasSuffix(tag, RoleLast):
			if start != -1 {
				spans = append(spans, Span{Start: start, End: end + 1, Type: extractType(tags[i-1])})
				start = -1
				end = -1
			}
		case strings.HasSuffix(tag, RoleUnit):
			spans = append(spans, Span{Start: i, End: i + 1, Type: extractType(tags[i])})
		}
	}
	return spans
}

// CompatibleOutcomes reports whether the vocabulary forms a valid BILOU
// grammar:
//
//	start requires a matching last,
//	continue requires a matching start or last,
//	last requires a matching start,
//	unit stands alone,
//
// at least one start or unit outcome must exist, and nothing else besides
// the literal other is allowed.
func (BilouCodec) CompatibleOutcomes(outcomes []string) bool {
	starts := make(map[string]bool)
	continues := make(map[string]bool)
	lasts := make(map[string]bool)
	units := make(map[string]bool)
	for _, outcome := range outcomes {
		if prefix, ok := rolePrefix(outcome, RoleStart); ok {
			starts[prefix] = true
		} else if prefix, ok := rolePrefix(outcome, RoleContinue); ok {
			continues[prefix] = true
		} else if prefix, ok := rolePrefix(outcome, RoleLast); ok {
			lasts[prefix] = true
		} else if prefix, ok := rolePrefix(outcome, RoleUnit); ok {
			units[prefix] = true
		} else if outcome != RoleOther {
			return false
		}
	}
	if len(starts) == 0 && len(units) == 0 {
		return false
	}
	for prefix := range starts {
		if !lasts[prefix] {
			return false
		}
	}
	for prefix := range continues {
		if !starts[prefix] && !lasts[prefix] {
			return false
		}
	}
	for prefix := range lasts {
		if !starts[prefix] {
			return false
		}
	}
	return true
}

// Validator returns the BILOU per-step legality predicate.
func (BilouCodec) Validator() Validator { return bilouValidator{} }
