// Package featuregen provides the pluggable per-token feature generators
// consumed by a sequence-labeling model. Generators append string features
// for one token position; adaptive generators additionally remember tagging
// decisions across a document and are reset at each document boundary.
//
// Generators carry per-instance mutable state and are not safe for
// concurrent use across documents without external synchronization.
package featuregen

// Generator creates features for the token at index.
type Generator interface {
	// Features appends features for tokens[index] to features and returns
	// the extended slice. prior holds the outcomes already decided for
	// indices below index; generators that do not adapt ignore it.
	Features(features []string, tokens []string, index int, prior []string) []string

	// UpdateAdaptiveData informs the generator of the outcomes assigned to
	// a tagged sequence, so later positions in the same document can reuse
	// them.
	UpdateAdaptiveData(tokens, outcomes []string)

	// ClearAdaptiveData drops state accumulated since the last clear.
	// Called at the start of a new document.
	ClearAdaptiveData()
}

// stateless provides no-op adaptive methods for generators without state.
type stateless struct{}

func (stateless) UpdateAdaptiveData(tokens, outcomes []string) {}
func (stateless) ClearAdaptiveData()                           {}

// Aggregated runs an ordered list of generators as one.
type Aggregated struct {
	generators []Generator
}

var _ Generator = &Aggregated{}

// NewAggregated returns a generator that concatenates the output of the
// given generators in order.
func NewAggregated(generators ...Generator) *Aggregated {
	return &Aggregated{generators: generators}
}

func (a *Aggregated) Features(features []string, tokens []string, index int, prior []string) []string {
	for _, g := range a.generators {
		features = g.Features(features, tokens, index, prior)
	}
	return features
}

func (a *Aggregated) UpdateAdaptiveData(tokens, outcomes []string) {
	for _, g := range a.generators {
		g.UpdateAdaptiveData(tokens, outcomes)
	}
}

func (a *Aggregated) ClearAdaptiveData() {
	for _, g := range a.generators {
		g.ClearAdaptiveData()
	}
}

// Cached memoizes another generator's features per token position. The cache
// is keyed on the identity of the tokens slice, so it naturally invalidates
// when a new sentence is processed. The wrapped generator must not derive
// features from prior outcomes, as those change between calls for the same
// position.
type Cached struct {
	inner  Generator
	tokens []string
	cache  map[int][]string
}

var _ Generator = &Cached{}

// NewCached wraps the given generators in a memoizing aggregate.
func NewCached(generators ...Generator) *Cached {
	return &Cached{inner: NewAggregated(generators...)}
}

func (c *Cached) Features(features []string, tokens []string, index int, prior []string) []string {
	if c.cache == nil || !sameSlice(c.tokens, tokens) {
		c.tokens = tokens
		c.cache = make(map[int][]string, len(tokens))
	}
	if cached, ok := c.cache[index]; ok {
		return append(features, cached...)
	}
	generated := c.inner.Features(nil, tokens, index, prior)
	c.cache[index] = generated
	return append(features, generated...)
}

func (c *Cached) UpdateAdaptiveData(tokens, outcomes []string) {
	c.inner.UpdateAdaptiveData(tokens, outcomes)
}

func (c *Cached) ClearAdaptiveData() {
	c.inner.ClearAdaptiveData()
	c.tokens = nil
	c.cache = nil
}

// sameSlice reports whether a and b are the same backing slice.
func sameSlice(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
