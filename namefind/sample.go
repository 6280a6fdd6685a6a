package namefind

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/sitedata/opennlp/sequence"
)

// Sample is one labeled training or evaluation sentence: its tokens, the
// name spans over them, and whether the sentence starts a new document
// (which resets adaptive feature state). Samples are immutable once built.
type Sample struct {
	tokens        []string
	names         []sequence.Span
	documentStart bool
}

// NewSample returns a validated sample. Every span must lie within the token
// range; a span running past the tokens is rejected here, not during codec
// calls.
func NewSample(tokens []string, names []sequence.Span, documentStart bool) (*Sample, error) {
	for _, name := range names {
		if name.Start < 0 || name.End <= name.Start {
			return nil, errors.Errorf("invalid name span %s", name)
		}
		if name.End > len(tokens) {
			return nil, errors.Errorf("name span %s exceeds the %d sentence tokens", name, len(tokens))
		}
	}
	return &Sample{
		tokens:        slices.Clone(tokens),
		names:         slices.Clone(names),
		documentStart: documentStart,
	}, nil
}

// Tokens returns the sentence tokens.
func (s *Sample) Tokens() []string { return slices.Clone(s.tokens) }

// Names returns the labeled name spans.
func (s *Sample) Names() []sequence.Span { return slices.Clone(s.names) }

// DocumentStart reports whether this sentence begins a new document.
func (s *Sample) DocumentStart() bool { return s.documentStart }

// Equal reports whether two samples carry the same tokens, names and
// document-start flag.
func (s *Sample) Equal(other *Sample) bool {
	if other == nil {
		return false
	}
	return s.documentStart == other.documentStart &&
		slices.Equal(s.tokens, other.tokens) &&
		slices.Equal(s.names, other.names)
}

func (s *Sample) String() string {
	var sb strings.Builder
	for i, token := range s.tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for _, name := range s.names {
			if name.Start == i {
				sb.WriteString("<START:" + name.Type + "> ")
			}
		}
		sb.WriteString(token)
		for _, name := range s.names {
			if name.End == i+1 {
				sb.WriteString(" <END>")
			}
		}
	}
	return sb.String()
}
