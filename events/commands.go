package events

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MessageCreate routes prefix commands.
func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	prefix := h.cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "chess":
		h.routeChess(s, m, parts[1:])
	}
}

func (h *Handler) routeChess(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) >= 2 && args[0] == "profile" {
		username := args[1]
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.profileCommand(h.ctx, s, m.ChannelID, username)
		}()
		return
	}

	prefix := h.cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}
	_, _ = s.ChannelMessageSend(m.ChannelID, "Usage: `"+prefix+"chess profile <username>`")
}
