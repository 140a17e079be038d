package views

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Cache memoizes rendered views for one navigation session, so cycling
// back to a view never re-renders it. One cache exists per session and
// dies with it; nothing is shared across lookups.
type Cache struct {
	renderer Renderer

	mu    sync.Mutex
	views map[View]*discordgo.MessageEmbed
}

// NewCache creates an empty cache in front of a renderer.
func NewCache(renderer Renderer) *Cache {
	return &Cache{
		renderer: renderer,
		views:    make(map[View]*discordgo.MessageEmbed),
	}
}

// Get returns the cached embed for a view, rendering it on first
// access. Failed renders are not cached, so a transient upload failure
// can be retried by selecting the view again.
func (c *Cache) Get(ctx context.Context, v View) (*discordgo.MessageEmbed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if embed, ok := c.views[v]; ok {
		return embed, nil
	}

	embed, err := c.renderer.Render(ctx, v)
	if err != nil {
		return nil, err
	}
	c.views[v] = embed
	return embed, nil
}
