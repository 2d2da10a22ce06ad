package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/hanabi/internal/game/card"
)

func TestSlot_EliminationByColor(t *testing.T) {
	t.Parallel()

	k := New(0)
	k.Color.Exclude(card.Red)
	k.Color.Exclude(card.Green)
	k.Color.Exclude(card.Blue)

	_, known := k.Color.Known()
	assert.False(t, known)
	assert.Len(t, k.Color.Excluded(), 3)

	k.Color.Exclude(card.White)

	c, known := k.Color.Known()
	assert.True(t, known)
	assert.Equal(t, card.Yellow, c)
	assert.Empty(t, k.Color.Excluded())
}

func TestSlot_EliminationByRank(t *testing.T) {
	t.Parallel()

	k := New(2)
	for _, r := range []card.Rank{5, 1, 4, 2} {
		k.Rank.Exclude(r)
	}

	r, known := k.Rank.Known()
	assert.True(t, known)
	assert.Equal(t, card.Rank(3), r)
	assert.Empty(t, k.Rank.Excluded())
}

func TestSlot_ExcludeIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewSlot(card.Colors[:])
	s.Exclude(card.Red)
	s.Exclude(card.Red)
	s.Exclude(card.Green)
	s.Exclude(card.Green)
	s.Exclude(card.Blue)

	assert.Equal(t, []card.Color{card.Red, card.Green, card.Blue}, s.Excluded())
	_, known := s.Known()
	assert.False(t, known)
}

func TestSlot_ExcludeAfterKnownIsNoop(t *testing.T) {
	t.Parallel()

	s := NewSlot(card.Ranks[:])
	s.Observe(2)
	s.Exclude(3)
	s.Exclude(2)

	r, known := s.Known()
	assert.True(t, known)
	assert.Equal(t, card.Rank(2), r)
	assert.Empty(t, s.Excluded())
}

func TestSlot_ObserveOverrides(t *testing.T) {
	t.Parallel()

	s := NewSlot(card.Colors[:])
	s.Exclude(card.Red)
	s.Exclude(card.Blue)
	s.Observe(card.White)

	c, known := s.Known()
	assert.True(t, known)
	assert.Equal(t, card.White, c)
	assert.Empty(t, s.Excluded())

	s.Observe(card.Green)
	c, _ = s.Known()
	assert.Equal(t, card.Green, c)
}

func TestSlot_Candidates(t *testing.T) {
	t.Parallel()

	s := NewSlot(card.Colors[:])
	assert.Len(t, s.Candidates(), card.NumColors)

	s.Exclude(card.Red)
	s.Exclude(card.Yellow)
	assert.Equal(t, []card.Color{card.Green, card.Blue, card.White}, s.Candidates())

	s.Observe(card.Blue)
	assert.Equal(t, []card.Color{card.Blue}, s.Candidates())
}

func TestCardKnowledge_Apply(t *testing.T) {
	t.Parallel()

	k := New(0)
	k.Apply(RankHint(4), true)
	k.Apply(ColorHint(card.Red), false)

	r, known := k.Rank.Known()
	assert.True(t, known)
	assert.Equal(t, card.Rank(4), r)
	assert.True(t, k.Color.IsExcluded(card.Red))
	_, colorKnown := k.Color.Known()
	assert.False(t, colorKnown)
}

func TestHint_Matches(t *testing.T) {
	t.Parallel()

	c := card.New(card.Blue, 3)
	assert.True(t, RankHint(3).Matches(c))
	assert.False(t, RankHint(4).Matches(c))
	assert.True(t, ColorHint(card.Blue).Matches(c))
	assert.False(t, ColorHint(card.Red).Matches(c))
	assert.Equal(t, "color Blue", ColorHint(card.Blue).String())
	assert.Equal(t, "rank 3", RankHint(3).String())
}
