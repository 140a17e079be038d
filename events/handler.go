// Package events wires Discord gateway events to the bot's commands and
// to in-flight profile navigation sessions.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/discochess/castle-discord-service/config"
	"github.com/discochess/castle-discord-service/lichess"
	"github.com/discochess/castle-discord-service/stats"
	"github.com/discochess/castle-discord-service/views"
)

// DefaultNavigationIdle is how long a profile message keeps its select
// menu with nobody using it, unless configured otherwise.
const DefaultNavigationIdle = 120 * time.Second

// Handler owns command routing and the registry of live navigation
// sessions. One Handler exists per process.
type Handler struct {
	cfg      *config.DiscordConfig
	glyphs   *config.GlyphConfig
	client   *lichess.Client
	stats    *stats.Store
	uploader views.Uploader
	idle     time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// sessions maps a profile message ID to its live navigation
	// session. It is the only state shared across lookups.
	sessions sync.Map
}

// New creates the event handler.
func New(cfg *config.DiscordConfig, glyphs *config.GlyphConfig, client *lichess.Client, store *stats.Store, uploader views.Uploader) *Handler {
	idle := DefaultNavigationIdle
	if cfg.NavigationIdleSeconds > 0 {
		idle = time.Duration(cfg.NavigationIdleSeconds) * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Handler{
		cfg:      cfg,
		glyphs:   glyphs,
		client:   client,
		stats:    store,
		uploader: uploader,
		idle:     idle,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Close cancels every live navigation session and waits for them to
// strip their controls and exit.
func (h *Handler) Close() {
	h.cancel()
	h.wg.Wait()
}

// InteractionCreate dispatches component interactions to the navigation
// session bound to the interaction's message, if one is live. Unmatched
// interactions are ignored; a session that fell behind drops events
// rather than blocking the gateway goroutine.
func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	if i.MessageComponentData().CustomID != navigationCustomID || i.Message == nil {
		return
	}
	value, ok := h.sessions.Load(i.Message.ID)
	if !ok {
		return
	}
	sess := value.(*navSession)
	select {
	case sess.interactions <- i:
	default:
	}
}
