package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBioEncodeSingleTokenSpan(t *testing.T) {
	var c BioCodec
	tags := c.Encode([]Span{{Start: 1, End: 2, Type: "person"}}, 3)
	assert.Equal(t, []string{"other", "person-start", "other"}, tags)
}

func TestBioEncodeMultiTokenSpan(t *testing.T) {
	var c BioCodec
	tags := c.Encode([]Span{{Start: 0, End: 4, Type: "person"}}, 5)
	assert.Equal(t, []string{
		"person-start", "person-continue", "person-continue", "person-continue", "other",
	}, tags)
}

func TestBioEncodeUntypedSpanUsesDefaultType(t *testing.T) {
	var c BioCodec
	tags := c.Encode([]Span{{Start: 0, End: 2}}, 2)
	assert.Equal(t, []string{"default-start", "default-continue"}, tags)
}

func TestBioEncodeOverlapLastWriteWins(t *testing.T) {
	var c BioCodec
	tags := c.Encode([]Span{
		{Start: 0, End: 3, Type: "person"},
		{Start: 2, End: 4, Type: "location"},
	}, 4)
	assert.Equal(t, []string{
		"person-start", "person-continue", "location-start", "location-continue",
	}, tags)
}

func TestBioDecode(t *testing.T) {
	var c BioCodec
	spans := c.Decode([]string{
		"other", "person-start", "person-continue", "other", "location-start",
	})
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 1, End: 3, Type: "person"}, spans[0])
	assert.Equal(t, Span{Start: 4, End: 5, Type: "location"}, spans[1])
}

func TestBioDecodeAdjacentSpans(t *testing.T) {
	var c BioCodec
	// A start tag closes the previous span.
	spans := c.Decode([]string{"person-start", "person-continue", "person-start"})
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 2, Type: "person"}, spans[0])
	assert.Equal(t, Span{Start: 2, End: 3, Type: "person"}, spans[1])
}

func TestBioDecodeTrailingSpanFlushed(t *testing.T) {
	var c BioCodec
	spans := c.Decode([]string{"other", "person-start", "person-continue"})
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 1, End: 3, Type: "person"}, spans[0])
}

func TestBioDecodeOrphanContinueIgnored(t *testing.T) {
	var c BioCodec
	spans := c.Decode([]string{"person-continue", "other", "other"})
	assert.Empty(t, spans)
}

func TestBioDecodeUntypedTags(t *testing.T) {
	var c BioCodec
	spans := c.Decode([]string{"start", "continue", "other"})
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 0, End: 2}, spans[0])
}

func TestBioRoundTrip(t *testing.T) {
	var c BioCodec
	spans := []Span{
		{Start: 0, End: 2, Type: "person"},
		{Start: 3, End: 4, Type: "location"},
		{Start: 6, End: 9, Type: "organization"},
	}
	decoded := c.Decode(c.Encode(spans, 10))
	assert.Equal(t, spans, decoded)
}

func TestBioCompatibleOutcomes(t *testing.T) {
	var c BioCodec

	assert.True(t, c.CompatibleOutcomes([]string{"person-start", "person-continue", "other"}))
	assert.True(t, c.CompatibleOutcomes([]string{"person-start", "other"}))
	// Untyped start/continue pair with the bare role outcomes.
	assert.True(t, c.CompatibleOutcomes([]string{"start", "continue", "other"}))

	// No start at all.
	assert.False(t, c.CompatibleOutcomes([]string{"other"}))
	// Orphan continue.
	assert.False(t, c.CompatibleOutcomes([]string{"person-continue", "other"}))
	assert.False(t, c.CompatibleOutcomes([]string{"person-start", "location-continue", "other"}))
	// Alien outcome.
	assert.False(t, c.CompatibleOutcomes([]string{"person-start", "person-unit", "other"}))
}

func TestBioValidator(t *testing.T) {
	v := BioCodec{}.Validator()

	// Start and other are always legal.
	assert.True(t, v.Valid(0, nil, "person-start"))
	assert.True(t, v.Valid(1, []string{"other"}, "other"))
	assert.True(t, v.Valid(1, []string{"person-start"}, "location-start"))

	// Continue needs a same-type start or continue right before it.
	assert.True(t, v.Valid(1, []string{"person-start"}, "person-continue"))
	assert.True(t, v.Valid(2, []string{"person-start", "person-continue"}, "person-continue"))
	assert.False(t, v.Valid(0, nil, "person-continue"))
	assert.False(t, v.Valid(1, []string{"other"}, "person-continue"))
	assert.False(t, v.Valid(1, []string{"location-start"}, "person-continue"))
}
