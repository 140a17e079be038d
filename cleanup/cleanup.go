// Package cleanup purges leftovers from previous runs: old log lines
// and graph attachments the bot posted before its last restart.
package cleanup

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	logger "github.com/discochess/castle-discord-service/log"
)

// Result holds the outcome of a cleanup task.
type Result struct {
	Name        string
	Count       int
	Description string
}

// ClearChannel fetches and deletes up to 100 of the bot's own messages
// from a channel. ignoreMessageID protects the live boot message.
func ClearChannel(s *discordgo.Session, channelID string, ignoreMessageID string) Result {
	res := Result{Name: "ClearChannel", Description: fmt.Sprintf("ch: %s", channelID)}
	if channelID == "" {
		return res
	}

	messages, err := s.ChannelMessages(channelID, 100, "", "", "")
	if err != nil {
		logger.Error(fmt.Sprintf("Could not fetch messages from channel %s to clear them", channelID), err)
		return res
	}

	var messageIDs []string
	for _, msg := range messages {
		if msg.Author == nil || msg.Author.ID != s.State.User.ID {
			continue
		}
		if ignoreMessageID != "" && msg.ID == ignoreMessageID {
			continue
		}
		// Discord does not allow bulk deleting messages older than 2 weeks.
		if time.Since(msg.Timestamp) > 14*24*time.Hour {
			continue
		}
		messageIDs = append(messageIDs, msg.ID)
	}

	if len(messageIDs) == 0 {
		return res
	}

	if err := s.ChannelMessagesBulkDelete(channelID, messageIDs); err != nil {
		logger.Error(fmt.Sprintf("Could not bulk delete messages from channel %s", channelID), err)
	} else {
		res.Count = len(messageIDs)
	}

	return res
}
