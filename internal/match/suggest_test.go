package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"_name", "_text", "_modified-on", "_deleted", "_names"}

	t.Run("closest first", func(t *testing.T) {
		got := Suggest("_nam", candidates, 3)
		assert.Equal(t, []string{"_name", "_names"}, got)
	})

	t.Run("transposition", func(t *testing.T) {
		got := Suggest("_nmae", candidates, 3)
		assert.Equal(t, []string{"_name"}, got)
	})

	t.Run("limit applies", func(t *testing.T) {
		got := Suggest("_name_", candidates, 1)
		assert.Equal(t, []string{"_name"}, got)
	})

	t.Run("exact match is not a suggestion", func(t *testing.T) {
		got := Suggest("_text", []string{"_text"}, 3)
		assert.Empty(t, got)
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, Suggest("zzzzzzzz", candidates, 3))
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Nil(t, Suggest("_text", nil, 3))
		assert.Nil(t, Suggest("_text", candidates, 0))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got := Suggest("_nam", []string{"_name", "_name"}, 3)
		assert.Equal(t, []string{"_name"}, got)
	})
}
