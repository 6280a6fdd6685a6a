// Package sentdetect holds sample containers for sentence boundary
// detection. Sentence boundaries are character spans over a document,
// reusing the same half-open span type as the token-level codecs.
package sentdetect

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sitedata/opennlp/sequence"
)

// Sample is a document together with its sentence-boundary spans. Spans are
// character positions into Document. Samples are immutable once built.
type Sample struct {
	document  string
	sentences []sequence.Span
}

// NewSample returns a validated sample. Every sentence span must lie within
// the document.
func NewSample(document string, sentences []sequence.Span) (*Sample, error) {
	for _, s := range sentences {
		if s.Start < 0 || s.End <= s.Start {
			return nil, errors.Errorf("invalid sentence span %s", s)
		}
		if s.End > len(document) {
			return nil, errors.Errorf("sentence span %s exceeds the document length %d", s, len(document))
		}
	}
	return &Sample{document: document, sentences: slices.Clone(sentences)}, nil
}

// Document returns the raw document text.
func (s *Sample) Document() string { return s.document }

// Spans returns the sentence-boundary spans.
func (s *Sample) Spans() []sequence.Span { return slices.Clone(s.sentences) }

// Sentences materializes the sentence substrings.
func (s *Sample) Sentences() []string {
	sentences := make([]string, len(s.sentences))
	for i, span := range s.sentences {
		sentences[i] = s.document[span.Start:span.End]
	}
	return sentences
}

// Equal reports whether two samples carry the same document and spans.
func (s *Sample) Equal(other *Sample) bool {
	if other == nil {
		return false
	}
	return s.document == other.document && slices.Equal(s.sentences, other.sentences)
}
