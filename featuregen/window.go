package featuregen

import "strconv"

// Window runs another generator over the current token and a window of its
// neighbors. Features of the token at distance d before the current one are
// prefixed "pd", features of the token at distance d after it "nd".
type Window struct {
	inner Generator
	prev  int
	next  int
}

var _ Generator = &Window{}

// NewWindow wraps generator in a window of prev tokens before and next
// tokens after the current position.
func NewWindow(generator Generator, prev, next int) *Window {
	return &Window{inner: generator, prev: prev, next: next}
}

func (w *Window) Features(features []string, tokens []string, index int, prior []string) []string {
	// Current token, unprefixed.
	features = w.inner.Features(features, tokens, index, prior)

	for d := 1; d <= w.prev && index-d >= 0; d++ {
		prefix := "p" + strconv.Itoa(d)
		for _, f := range w.inner.Features(nil, tokens, index-d, prior) {
			features = append(features, prefix+f)
		}
	}
	for d := 1; d <= w.next && index+d < len(tokens); d++ {
		prefix := "n" + strconv.Itoa(d)
		for _, f := range w.inner.Features(nil, tokens, index+d, prior) {
			features = append(features, prefix+f)
		}
	}
	return features
}

func (w *Window) UpdateAdaptiveData(tokens, outcomes []string) {
	w.inner.UpdateAdaptiveData(tokens, outcomes)
}

func (w *Window) ClearAdaptiveData() {
	w.inner.ClearAdaptiveData()
}
