package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReveal_TenArticlesScenario(t *testing.T) {
	r := NewReveal(6)
	const total = 10

	assert.Equal(t, 6, r.Visible(total))
	assert.True(t, r.HasMore(total))

	// Sentinel intersection with 4 items remaining.
	assert.True(t, r.Advance(total))
	assert.Equal(t, 10, r.Visible(total), "cursor is clamped to the sequence length")
	assert.False(t, r.HasMore(total))

	// Further signals change nothing.
	assert.False(t, r.Advance(total))
	assert.Equal(t, 10, r.Visible(total))
}

func TestReveal_VisibleClampedToShortSequences(t *testing.T) {
	r := NewReveal(6)
	assert.Equal(t, 3, r.Visible(3))
	assert.Equal(t, 0, r.Visible(0))
	assert.False(t, r.HasMore(3))
	assert.False(t, r.Advance(3))
}

func TestReveal_ResetReturnsToFirstPage(t *testing.T) {
	r := NewReveal(6)
	r.Advance(20)
	r.Advance(20)
	assert.Equal(t, 18, r.Visible(20))

	r.Reset()
	assert.Equal(t, 6, r.Visible(20))
}

func TestNewReveal_DefaultPageSize(t *testing.T) {
	r := NewReveal(0)
	assert.Equal(t, DefaultPageSize, r.Visible(100))
}
