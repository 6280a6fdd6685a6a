// Package namefind holds the tagger-facing pieces around the sequence codec:
// labeled name samples and the context generator that assembles per-token
// model features.
package namefind

import (
	"github.com/pkg/errors"

	"github.com/sitedata/opennlp/featuregen"
	"github.com/sitedata/opennlp/sequence"
)

// ContextGenerator produces the feature set for one token position from an
// ordered list of feature generators plus two fixed previous-outcome
// features. It carries the generators' per-document adaptive state and is
// therefore not safe for concurrent use across documents.
type ContextGenerator struct {
	generators []featuregen.Generator
}

// NewContextGenerator returns a context generator over the given feature
// generators, applied in order. Use DefaultFeatureGenerators for the
// standard configuration.
func NewContextGenerator(generators ...featuregen.Generator) *ContextGenerator {
	return &ContextGenerator{generators: generators}
}

// DefaultFeatureGenerators returns the standard feature configuration: a
// cached two-token window of surface and class features, the outcome prior,
// the previous-outcome map, and token bigrams. Callers own the returned
// generators; each call builds fresh state.
func DefaultFeatureGenerators() []featuregen.Generator {
	return []featuregen.Generator{
		featuregen.NewCached(
			featuregen.NewWindow(featuregen.Token{}, 2, 2),
			featuregen.NewWindow(featuregen.TokenClass{WordAndClass: true}, 2, 2),
			featuregen.OutcomePrior{},
			featuregen.NewPreviousMap(),
			featuregen.Bigram{},
		),
		featuregen.NewPreviousMap(),
	}
}

// AddFeatureGenerator appends a generator. The generator list is rebuilt
// rather than grown in place, so slices handed out earlier stay valid.
func (c *ContextGenerator) AddFeatureGenerator(generator featuregen.Generator) {
	generators := make([]featuregen.Generator, 0, len(c.generators)+1)
	generators = append(generators, c.generators...)
	c.generators = append(generators, generator)
}

// Context returns the features for the token at index. prior holds the
// outcomes already decided for this sequence; additional carries
// ready-made features from outside the sentence and is appended as-is.
func (c *ContextGenerator) Context(index int, tokens, prior []string, additional []string) []string {
	var features []string
	for _, g := range c.generators {
		features = g.Features(features, tokens, index, prior)
	}
	features = append(features, additional...)

	// Fixed previous-outcome features.
	po := sequence.RoleOther
	ppo := sequence.RoleOther
	if prior != nil {
		if index > 1 {
			ppo = prior[index-2]
		}
		if index > 0 {
			po = prior[index-1]
		}
		features = append(features, "po="+po)
		features = append(features, "pow="+po+","+tokens[index])
		features = append(features, "powf="+po+","+featuregen.TokenClassOf(tokens[index]))
		features = append(features, "ppo="+ppo)
	}
	return features
}

// UpdateAdaptiveData feeds a tagged sequence to the adaptive generators.
// tokens and outcomes must have the same length.
func (c *ContextGenerator) UpdateAdaptiveData(tokens, outcomes []string) error {
	if len(tokens) != len(outcomes) {
		return errors.Errorf("tokens and outcomes must have the same size: %d != %d",
			len(tokens), len(outcomes))
	}
	for _, g := range c.generators {
		g.UpdateAdaptiveData(tokens, outcomes)
	}
	return nil
}

// ClearAdaptiveData resets all per-document state. Call it at every document
// boundary.
func (c *ContextGenerator) ClearAdaptiveData() {
	for _, g := range c.generators {
		g.ClearAdaptiveData()
	}
}
