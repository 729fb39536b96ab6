package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGraphMarksEntryDays(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 14, 22, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	renderGraph(&buf, timestamps, now)
	out := buf.String()

	require.Contains(t, out, "2025-08")
	assert.Contains(t, out, "2025-03", "six trailing months are rendered")
	assert.Contains(t, out, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, out, "■", "entry days get a filled cell")
	assert.Contains(t, out, "·", "entry-free days get a hollow cell")
}

func TestRenderGraphIgnoresTimestampsOutsideWindow(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	old := []time.Time{time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}

	var buf bytes.Buffer
	renderGraph(&buf, old, now)

	assert.NotContains(t, buf.String(), "■")
}

func TestRenderGraphEndsAtCurrentMonth(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	renderGraph(&buf, nil, now)

	months := []string{"2025-03", "2025-04", "2025-05", "2025-06", "2025-07", "2025-08"}
	for _, m := range months {
		assert.Contains(t, buf.String(), m)
	}
	assert.False(t, strings.Contains(buf.String(), "2025-09"), "future months stay hidden")
	assert.False(t, strings.Contains(buf.String(), "2025-02"))
}
