package namefind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedata/opennlp/featuregen"
)

func TestContextPreviousOutcomeFeatures(t *testing.T) {
	cg := NewContextGenerator()
	tokens := []string{"Mr", "Smith", "left"}
	prior := []string{"other", "person-start", "other"}

	features := cg.Context(2, tokens, prior, nil)
	assert.Contains(t, features, "po=person-start")
	assert.Contains(t, features, "pow=person-start,left")
	assert.Contains(t, features, "powf=person-start,lc")
	assert.Contains(t, features, "ppo=other")
}

func TestContextAtSequenceStart(t *testing.T) {
	cg := NewContextGenerator()
	features := cg.Context(0, []string{"Smith"}, []string{}, nil)
	assert.Contains(t, features, "po=other")
	assert.Contains(t, features, "ppo=other")
}

func TestContextWithoutPriorSkipsOutcomeFeatures(t *testing.T) {
	cg := NewContextGenerator(featuregen.Token{})
	features := cg.Context(0, []string{"Smith"}, nil, nil)
	assert.Equal(t, []string{"w=smith"}, features)
}

func TestContextAdditionalFeatures(t *testing.T) {
	cg := NewContextGenerator()
	features := cg.Context(0, []string{"Smith"}, nil, []string{"dict=person"})
	assert.Contains(t, features, "dict=person")
}

func TestContextRunsGeneratorsInOrder(t *testing.T) {
	cg := NewContextGenerator(featuregen.Token{}, featuregen.OutcomePrior{})
	features := cg.Context(0, []string{"Cat"}, nil, nil)
	assert.Equal(t, []string{"w=cat", "def"}, features)
}

func TestAddFeatureGeneratorRebuildsList(t *testing.T) {
	cg := NewContextGenerator(featuregen.Token{})
	cg.AddFeatureGenerator(featuregen.OutcomePrior{})
	features := cg.Context(0, []string{"Cat"}, nil, nil)
	assert.Equal(t, []string{"w=cat", "def"}, features)
}

func TestUpdateAdaptiveDataLengthMismatch(t *testing.T) {
	cg := NewContextGenerator(DefaultFeatureGenerators()...)
	err := cg.UpdateAdaptiveData([]string{"a", "b"}, []string{"other"})
	assert.Error(t, err)
}

func TestAdaptiveDataLifecycle(t *testing.T) {
	pm := featuregen.NewPreviousMap()
	cg := NewContextGenerator(pm)

	require.NoError(t, cg.UpdateAdaptiveData([]string{"Smith"}, []string{"person-unit"}))
	features := cg.Context(0, []string{"Smith"}, nil, nil)
	assert.Contains(t, features, "pd=person-unit")

	cg.ClearAdaptiveData()
	features = cg.Context(0, []string{"Smith"}, nil, nil)
	assert.Contains(t, features, "pd=")
}

func TestDefaultFeatureGeneratorsAreIndependent(t *testing.T) {
	a := NewContextGenerator(DefaultFeatureGenerators()...)
	b := NewContextGenerator(DefaultFeatureGenerators()...)

	require.NoError(t, a.UpdateAdaptiveData([]string{"Smith"}, []string{"person-unit"}))
	features := b.Context(0, []string{"Smith"}, nil, nil)
	assert.Contains(t, features, "pd=")
	assert.NotContains(t, features, "pd=person-unit")
}
