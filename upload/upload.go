// Package upload posts files to a dedicated Discord channel so their
// attachment URLs can be hot-linked from embeds, which Discord does not
// allow for attachments on the embed's own message.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bwmarrin/discordgo"
)

// ErrNotConfigured indicates no upload channel is set.
var ErrNotConfigured = errors.New("upload: no upload channel configured")

// ChannelUploader uploads files through a Discord channel.
type ChannelUploader struct {
	Session   *discordgo.Session
	ChannelID string
}

// Upload posts the file and returns its hosted attachment URL.
func (u *ChannelUploader) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if u.ChannelID == "" {
		return "", ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg, err := u.Session.ChannelFileSend(u.ChannelID, name, r)
	if err != nil {
		return "", fmt.Errorf("could not upload %s to channel %s: %w", name, u.ChannelID, err)
	}
	if len(msg.Attachments) == 0 {
		return "", fmt.Errorf("upload of %s produced no attachment", name)
	}
	return msg.Attachments[0].URL, nil
}
