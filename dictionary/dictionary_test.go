package dictionary

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryCaseSensitive(t *testing.T) {
	d := New(true)
	d.Put(TokenList{"McKinsey"})

	assert.True(t, d.Contains(TokenList{"McKinsey"}))
	assert.False(t, d.Contains(TokenList{"mckinsey"}))
	assert.False(t, d.Contains(TokenList{"MCKINSEY"}))
	assert.Equal(t, 1, d.Len())
}

func TestDictionaryCaseInsensitive(t *testing.T) {
	d := New(false)
	d.Put(TokenList{"McKinsey"})

	assert.True(t, d.Contains(TokenList{"McKinsey"}))
	assert.True(t, d.Contains(TokenList{"mckinsey"}))
	assert.True(t, d.Contains(TokenList{"MCKINSEY"}))

	// Different casings collapse to one entry.
	d.Put(TokenList{"MCKINSEY"})
	assert.Equal(t, 1, d.Len())
}

func TestDictionaryMultiTokenEntries(t *testing.T) {
	d := New(false)
	d.Put(TokenList{"New", "York"})
	d.Put(TokenList{"New", "York", "City"})

	assert.True(t, d.Contains(TokenList{"new", "york"}))
	assert.False(t, d.Contains(TokenList{"new"}))
	assert.Equal(t, 2, d.MinTokenCount())
	assert.Equal(t, 3, d.MaxTokenCount())
}

func TestDictionaryRemove(t *testing.T) {
	d := New(false)
	d.Put(TokenList{"a"})
	d.Remove(TokenList{"A"})
	assert.Equal(t, 0, d.Len())
}

func TestDictionaryAttributes(t *testing.T) {
	d := New(true)
	d.PutEntry(Entry{
		Tokens:     TokenList{"London"},
		Attributes: map[string]string{"type": "location"},
	})

	attrs, ok := d.Attributes(TokenList{"London"})
	require.True(t, ok)
	assert.Equal(t, "location", attrs["type"])

	_, ok = d.Attributes(TokenList{"Paris"})
	assert.False(t, ok)
}

func TestDictionaryEntriesSorted(t *testing.T) {
	d := New(true)
	d.Put(TokenList{"b"})
	d.Put(TokenList{"a"})
	d.Put(TokenList{"c"})

	entries := d.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, TokenList{"a"}, entries[0].Tokens)
	assert.Equal(t, TokenList{"b"}, entries[1].Tokens)
	assert.Equal(t, TokenList{"c"}, entries[2].Tokens)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := New(false)
	d.Put(TokenList{"New", "York"})
	d.PutEntry(Entry{
		Tokens:     TokenList{"London"},
		Attributes: map[string]string{"type": "location"},
	})

	filePath := filepath.Join(t.TempDir(), "places.dict.gz")
	require.NoError(t, d.Save(filePath))

	loaded, err := Load(filePath)
	require.NoError(t, err)
	assert.False(t, loaded.CaseSensitive())
	assert.Equal(t, 2, loaded.Len())
	assert.True(t, loaded.Contains(TokenList{"new", "york"}))

	attrs, ok := loaded.Attributes(TokenList{"london"})
	require.True(t, ok)
	assert.Equal(t, "location", attrs["type"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.dict.gz"))
	assert.Error(t, err)
}
