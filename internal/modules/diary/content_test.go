package diary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeContent(t *testing.T) {
	t.Run("drops blank lines preserving order", func(t *testing.T) {
		got, err := NormalizeContent([]string{"", "  ", "bought coffee"})
		require.NoError(t, err)
		assert.Equal(t, []string{"bought coffee"}, got)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		got, err := NormalizeContent([]string{"  아침 산책  ", "\t좋은 날씨\n"})
		require.NoError(t, err)
		assert.Equal(t, []string{"아침 산책", "좋은 날씨"}, got)
	})

	t.Run("keeps up to three lines in order", func(t *testing.T) {
		got, err := NormalizeContent([]string{"first", "second", "third"})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, got)
	})

	t.Run("all blank is rejected", func(t *testing.T) {
		_, err := NormalizeContent([]string{"", "   ", "\t"})
		assert.ErrorIs(t, err, errEmptyContent)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := NormalizeContent(nil)
		assert.ErrorIs(t, err, errEmptyContent)
	})

	t.Run("four lines rejected", func(t *testing.T) {
		_, err := NormalizeContent([]string{"a", "b", "c", "d"})
		assert.ErrorIs(t, err, errTooManyLines)
	})

	t.Run("blank lines do not count toward the cap", func(t *testing.T) {
		got, err := NormalizeContent([]string{"a", "", "b", " ", "c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("hundred runes pass", func(t *testing.T) {
		line := strings.Repeat("가", MaxLineRunes)
		got, err := NormalizeContent([]string{line})
		require.NoError(t, err)
		assert.Equal(t, []string{line}, got)
	})

	t.Run("over hundred runes rejected", func(t *testing.T) {
		_, err := NormalizeContent([]string{strings.Repeat("가", MaxLineRunes+1)})
		assert.ErrorIs(t, err, errLineTooLong)
	})
}
