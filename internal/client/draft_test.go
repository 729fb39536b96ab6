package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStartsWithOneLine(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []string{""}, d.Lines())
}

func TestDraftAddLineCap(t *testing.T) {
	d := NewDraft()
	assert.True(t, d.AddLine())
	assert.True(t, d.AddLine())
	assert.Equal(t, 3, d.Len())

	assert.False(t, d.AddLine(), "fourth line must be refused")
	assert.Equal(t, 3, d.Len())
}

func TestDraftRemoveLineFloor(t *testing.T) {
	d := NewDraft()
	require.True(t, d.AddLine())

	assert.True(t, d.RemoveLine(1))
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.RemoveLine(0), "last line must stay")
}

func TestDraftRemoveLineBounds(t *testing.T) {
	d := NewDraft()
	require.True(t, d.AddLine())

	assert.False(t, d.RemoveLine(-1))
	assert.False(t, d.RemoveLine(2))
	assert.Equal(t, 2, d.Len())
}

func TestDraftSetLineRejectsOversized(t *testing.T) {
	d := NewDraft()

	require.True(t, d.SetLine(0, strings.Repeat("감", DraftMaxLineRunes)))
	assert.Equal(t, strings.Repeat("감", DraftMaxLineRunes), d.Lines()[0])

	assert.False(t, d.SetLine(0, strings.Repeat("감", DraftMaxLineRunes+1)),
		"oversized input is rejected, not truncated")
	assert.Equal(t, strings.Repeat("감", DraftMaxLineRunes), d.Lines()[0])
}

func TestDraftSetLineBounds(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.SetLine(1, "없는 줄"))
	assert.False(t, d.SetLine(-1, "없는 줄"))
}

func TestDraftFromClampsContent(t *testing.T) {
	d := DraftFrom([]string{"하나", "둘", "셋", "넷"})
	assert.Equal(t, []string{"하나", "둘", "셋"}, d.Lines())

	empty := DraftFrom(nil)
	assert.Equal(t, []string{""}, empty.Lines())
}
