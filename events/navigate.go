package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/discochess/castle-discord-service/lichess"
	logger "github.com/discochess/castle-discord-service/log"
	"github.com/discochess/castle-discord-service/views"
)

const navigationCustomID = "navigation"

// restSession is the slice of *discordgo.Session the navigation loop
// needs, split out so tests can substitute a fake.
type restSession interface {
	InteractionRespond(*discordgo.Interaction, *discordgo.InteractionResponse, ...discordgo.RequestOption) error
	ChannelMessageEditComplex(*discordgo.MessageEdit, ...discordgo.RequestOption) (*discordgo.Message, error)
}

// navSession receives one message's component interactions, in arrival
// order, for as long as the session is live.
type navSession struct {
	interactions chan *discordgo.InteractionCreate
}

// profileCommand looks up a profile and runs its navigation session to
// completion. One goroutine per invocation; nothing here is shared with
// other lookups except the session registry.
func (h *Handler) profileCommand(ctx context.Context, s *discordgo.Session, channelID, username string) {
	user, err := h.client.Load(ctx, username)
	if err != nil {
		logger.Error(fmt.Sprintf("loading profile %q", username), err)
		_, _ = s.ChannelMessageSend(channelID, lookupFailureMessage(username, err))
		return
	}

	if err := h.stats.RecordLookup(user.ID()); err != nil {
		logger.Error("recording profile lookup", err)
	} else if count, err := h.stats.LookupCount(user.ID()); err == nil && count > 0 {
		logger.Post(fmt.Sprintf("Served profile `%s` (lookup #%d)", user.ID(), count))
	}

	cache := views.NewCache(views.NewFormatter(user, h.glyphs, h.uploader))

	summary, err := cache.Get(ctx, views.ViewSummary)
	if err != nil {
		logger.Error(fmt.Sprintf("rendering summary for %q", username), err)
		_, _ = s.ChannelMessageSend(channelID, "Something went wrong rendering that profile.")
		return
	}

	// Disabled accounts have nothing to navigate: send the summary
	// plain and close immediately.
	if user.Disabled {
		_, _ = s.ChannelMessageSendEmbed(channelID, summary)
		return
	}

	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{summary},
		Components: h.navigationComponents(),
	})
	if err != nil {
		logger.Error(fmt.Sprintf("sending profile message for %q", username), err)
		return
	}

	sess := &navSession{interactions: make(chan *discordgo.InteractionCreate, 8)}
	h.sessions.Store(msg.ID, sess)
	defer h.sessions.Delete(msg.ID)

	h.navigate(ctx, s, msg, cache, sess)
}

// navigate is the session's selection loop: serve each selection as it
// arrives, and strip the control at whichever comes first of the idle
// period, shutdown, or cancellation. The registry entry is released by
// the caller on every exit path.
func (h *Handler) navigate(ctx context.Context, s restSession, msg *discordgo.Message, cache *views.Cache, sess *navSession) {
	timer := time.NewTimer(h.idle)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			h.detachNavigation(s, msg)
			return
		case <-timer.C:
			h.detachNavigation(s, msg)
			return
		case i := <-sess.interactions:
			h.showSelectedView(ctx, s, msg, cache, i)
			// Any selection resets the idle clock, including a
			// reselect of the current view.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(h.idle)
		}
	}
}

// showSelectedView renders the selected view and updates the message in
// place, preferring the immediate interaction response and falling back
// to an explicit edit when the interaction has already expired. If both
// fail the previous view stays visible.
func (h *Handler) showSelectedView(ctx context.Context, s restSession, msg *discordgo.Message, cache *views.Cache, i *discordgo.InteractionCreate) {
	selected := i.MessageComponentData().Values
	if len(selected) == 0 {
		return
	}
	view, ok := views.FromKey(selected[0])
	if !ok {
		return
	}

	embed, err := cache.Get(ctx, view)
	if err != nil {
		// The message keeps its current view; tell only the selector.
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: viewFailureMessage(err),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: h.navigationComponents(),
		},
	})
	if err == nil {
		return
	}

	embeds := []*discordgo.MessageEmbed{embed}
	components := h.navigationComponents()
	if _, editErr := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    msg.ChannelID,
		ID:         msg.ID,
		Embeds:     &embeds,
		Components: &components,
	}); editErr != nil {
		logger.Error(fmt.Sprintf("updating profile view on message %s", msg.ID), editErr)
	}
}

// detachNavigation strips the select menu, leaving the last-rendered
// view in place.
func (h *Handler) detachNavigation(s restSession, msg *discordgo.Message) {
	components := []discordgo.MessageComponent{}
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    msg.ChannelID,
		ID:         msg.ID,
		Components: &components,
	}); err != nil {
		logger.Error(fmt.Sprintf("detaching navigation from message %s", msg.ID), err)
	}
}

// navigationComponents builds the select menu from the configured view
// options, in navigation order.
func (h *Handler) navigationComponents() []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(views.Order))
	for _, v := range views.Order {
		opt := h.glyphs.Views[v.Key()]
		option := discordgo.SelectMenuOption{
			Label:       opt.Label,
			Value:       v.Key(),
			Description: opt.Description,
		}
		if opt.Emoji != "" {
			option.Emoji = &discordgo.ComponentEmoji{Name: opt.Emoji}
		}
		options = append(options, option)
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    navigationCustomID,
					Placeholder: "Navigate to…",
					Options:     options,
				},
			},
		},
	}
}

// lookupFailureMessage turns a load failure into something worth
// showing the person who asked.
func lookupFailureMessage(username string, err error) string {
	switch {
	case errors.Is(err, lichess.ErrUserNotFound):
		return fmt.Sprintf("No Lichess user named `%s`.", username)
	case errors.Is(err, lichess.ErrUpstreamUnavailable):
		return "Lichess seems to be unavailable right now, try again in a moment."
	case errors.Is(err, lichess.ErrParse):
		return "Lichess sent back something I could not read."
	default:
		return "Something went wrong looking up that profile."
	}
}

func viewFailureMessage(err error) string {
	switch {
	case errors.Is(err, views.ErrNoHistory):
		return "This user has no games, so there is no rating history to plot."
	case errors.Is(err, views.ErrInvalidView):
		return "This account is closed; only the profile view is available."
	default:
		return "Could not render that view, try again."
	}
}
