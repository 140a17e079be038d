package views

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRenderer counts renders per view and can fail on demand.
type countingRenderer struct {
	renders map[View]int
	fail    map[View]error
}

func newCountingRenderer() *countingRenderer {
	return &countingRenderer{renders: make(map[View]int), fail: make(map[View]error)}
}

func (r *countingRenderer) Render(_ context.Context, v View) (*discordgo.MessageEmbed, error) {
	r.renders[v]++
	if err := r.fail[v]; err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{Title: v.Key()}, nil
}

func TestCacheRendersOncePerView(t *testing.T) {
	renderer := newCountingRenderer()
	cache := NewCache(renderer)
	ctx := context.Background()

	// Cycle summary -> ratings -> history -> summary -> ratings.
	sequence := []View{ViewSummary, ViewRatings, ViewHistory, ViewSummary, ViewRatings, ViewHistory}
	for _, v := range sequence {
		embed, err := cache.Get(ctx, v)
		require.NoError(t, err)
		assert.Equal(t, v.Key(), embed.Title)
	}

	for _, v := range Order {
		assert.Equal(t, 1, renderer.renders[v], "view %s rendered more than once", v.Key())
	}
}

func TestCacheReturnsSameEmbed(t *testing.T) {
	cache := NewCache(newCountingRenderer())
	ctx := context.Background()

	first, err := cache.Get(ctx, ViewSummary)
	require.NoError(t, err)
	second, err := cache.Get(ctx, ViewSummary)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	renderer := newCountingRenderer()
	boom := errors.New("upload failed")
	renderer.fail[ViewHistory] = boom
	cache := NewCache(renderer)
	ctx := context.Background()

	_, err := cache.Get(ctx, ViewHistory)
	assert.ErrorIs(t, err, boom)

	// The failure clears; the next request renders again and succeeds.
	renderer.fail[ViewHistory] = nil
	embed, err := cache.Get(ctx, ViewHistory)
	require.NoError(t, err)
	assert.Equal(t, "history", embed.Title)
	assert.Equal(t, 2, renderer.renders[ViewHistory])
}

func TestViewKeys(t *testing.T) {
	assert.Equal(t, []string{"summary", "ratings", "history"}, Keys())

	v, ok := FromKey("ratings")
	require.True(t, ok)
	assert.Equal(t, ViewRatings, v)

	_, ok = FromKey("nonsense")
	assert.False(t, ok)
}
