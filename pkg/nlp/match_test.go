package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchContact(t *testing.T) {
	names := []string{"John Smith", "Jane Doe", "Johnny Walker", "Mom"}

	t.Run("exact full name wins", func(t *testing.T) {
		idx, ok := MatchContact("john smith", names)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("exact token beats substring", func(t *testing.T) {
		// "john" is a full token of John Smith but only a substring of Johnny.
		idx, ok := MatchContact("john", names)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("last name token match", func(t *testing.T) {
		idx, ok := MatchContact("walker", names)
		require.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("fuzzy prefix match", func(t *testing.T) {
		// Not a substring of any token but shares most of a prefix.
		idx, ok := MatchContact("walkes", names)
		require.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("single word contact", func(t *testing.T) {
		idx, ok := MatchContact("mom", names)
		require.True(t, ok)
		assert.Equal(t, 3, idx)
	})

	t.Run("fuzzy threshold boundary", func(t *testing.T) {
		// 9 of 13 prefix characters is roughly 0.69, just under the bar.
		_, ok := MatchContact("konstantixy", []string{"Konstantinova"})
		assert.False(t, ok)

		// 7 of 10 lands exactly on the 0.7 threshold.
		idx, ok := MatchContact("aleksanxyz", []string{"Aleksandra"})
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("no plausible match", func(t *testing.T) {
		_, ok := MatchContact("xavier", names)
		assert.False(t, ok)
	})

	t.Run("empty query", func(t *testing.T) {
		_, ok := MatchContact("", names)
		assert.False(t, ok)
	})

	t.Run("empty contact list", func(t *testing.T) {
		_, ok := MatchContact("john", nil)
		assert.False(t, ok)
	})
}

func TestPrefixSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, prefixSimilarity("anna", "anna"))
	assert.Equal(t, 0.0, prefixSimilarity("bob", "rob"))
	// Shared prefix "jo" over the longer length 6.
	assert.InDelta(t, 2.0/6.0, prefixSimilarity("joe", "joseph"), 1e-9)
}
