package session

import (
	"github.com/bwmarrin/discordgo"
)

// NewSession creates a new Discord session with the intents the bot
// needs: guild and DM messages for commands, message content for the
// command text itself. Component interactions arrive regardless.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return session, nil
}
