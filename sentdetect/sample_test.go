package sentdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedata/opennlp/sequence"
)

func TestSampleSentences(t *testing.T) {
	doc := "First one. Second one."
	s, err := NewSample(doc, []sequence.Span{
		{Start: 0, End: 10},
		{Start: 11, End: 22},
	})
	require.NoError(t, err)

	assert.Equal(t, doc, s.Document())
	assert.Equal(t, []string{"First one.", "Second one."}, s.Sentences())
}

func TestNewSampleRejectsSpanPastDocument(t *testing.T) {
	_, err := NewSample("short", []sequence.Span{{Start: 0, End: 6}})
	assert.Error(t, err)

	_, err = NewSample("short", []sequence.Span{{Start: -1, End: 3}})
	assert.Error(t, err)
}

func TestSampleEqual(t *testing.T) {
	a, err := NewSample("doc", []sequence.Span{{Start: 0, End: 3}})
	require.NoError(t, err)
	b, err := NewSample("doc", []sequence.Span{{Start: 0, End: 3}})
	require.NoError(t, err)
	c, err := NewSample("doc", nil)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
