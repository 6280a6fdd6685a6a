package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/sitedata/opennlp/sequence"
)

// ErrorListener writes misclassified sentences to a writer, for inspecting
// where a model disagrees with the reference labels.
type ErrorListener struct {
	w io.Writer
}

// NewErrorListener returns a listener writing to w.
func NewErrorListener(w io.Writer) *ErrorListener {
	return &ErrorListener{w: w}
}

// Missclassified reports one sentence whose predictions differ from the
// reference spans.
func (l *ErrorListener) Missclassified(tokens []string, references, predictions []sequence.Span) {
	fmt.Fprintf(l.w, "Expected: %s\nPredicted: %s\nTokens: %s\n\n",
		formatSpans(references), formatSpans(predictions), strings.Join(tokens, " "))
}

func formatSpans(spans []sequence.Span) string {
	if len(spans) == 0 {
		return "(none)"
	}
	parts := make([]string, len(spans))
	for i, span := range spans {
		parts[i] = span.String()
	}
	return strings.Join(parts, ", ")
}
