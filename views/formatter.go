package views

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/discochess/castle-discord-service/config"
	"github.com/discochess/castle-discord-service/flags"
	"github.com/discochess/castle-discord-service/lichess"
	"github.com/discochess/castle-discord-service/markdown"
)

const (
	closedNotice     = "*This account is closed.*"
	emptyDescription = "*This user has no description.*"
)

// Formatter projects one loaded user record into embeds. Every method
// is a pure function of the record; the formatter holds no state beyond
// its inputs, so the same view always renders the same embed.
type Formatter struct {
	user     *lichess.User
	glyphs   *config.GlyphConfig
	uploader Uploader
}

// NewFormatter creates a formatter for one user record.
func NewFormatter(user *lichess.User, glyphs *config.GlyphConfig, uploader Uploader) *Formatter {
	return &Formatter{user: user, glyphs: glyphs, uploader: uploader}
}

// Render produces the embed for a view. Disabled accounts only render
// the summary; everything else fails with ErrInvalidView before any
// other field is touched.
func (f *Formatter) Render(ctx context.Context, v View) (*discordgo.MessageEmbed, error) {
	if f.user.Disabled && v != ViewSummary {
		return nil, ErrInvalidView
	}
	switch v {
	case ViewSummary:
		return f.summary(), nil
	case ViewRatings:
		return f.ratings(), nil
	case ViewHistory:
		return f.history(ctx)
	default:
		return nil, ErrInvalidView
	}
}

// base returns the embed skeleton shared by every view.
func (f *Formatter) base() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: f.title(),
		URL:   f.user.ProfileURL,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: f.glyphs.LogoURL,
		},
	}
}

// title builds the embed title: status glyph, optional [title], the
// display-cased username, and an optional (real name).
func (f *Formatter) title() string {
	var sections []string

	switch {
	case f.user.Disabled:
		sections = append(sections, f.glyphs.Status.Closed)
	case f.user.Patron && f.user.Online:
		sections = append(sections, f.glyphs.Status.PatronOnline)
	case f.user.Patron:
		sections = append(sections, f.glyphs.Status.PatronOffline)
	case f.user.Online:
		sections = append(sections, f.glyphs.Status.Online)
	default:
		sections = append(sections, f.glyphs.Status.Offline)
	}

	if f.user.Title != "" {
		sections = append(sections, "["+f.user.Title+"]")
	}
	sections = append(sections, f.user.Username)
	if f.user.Name != "" {
		sections = append(sections, "("+f.user.Name+")")
	}

	return strings.Join(sections, " ")
}

// description builds the summary body: trophies, bio, and location,
// separated by blank lines.
func (f *Formatter) description() string {
	var sections []string

	badges := append([]string{}, f.user.Trophies...)
	if f.user.Violation {
		badges = append(badges, f.glyphs.Other["violation"])
	}
	sections = append(sections, strings.Join(badges, " "))

	if f.user.Disabled {
		sections = append(sections, closedNotice)
	} else {
		sections = append(sections, markdown.Escape(f.user.Bio))
	}

	var locations []string
	if f.user.Country != "" {
		if flag, err := flags.Flag(f.user.Country, f.glyphs.Flags); err == nil {
			locations = append(locations, flag)
		}
	}
	if f.user.Location != "" {
		locations = append(locations, markdown.Escape(f.user.Location))
	}
	sections = append(sections, strings.Join(locations, " "))

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return emptyDescription
	}
	return strings.Join(nonEmpty, "\n\n")
}

func (f *Formatter) summary() *discordgo.MessageEmbed {
	embed := f.base()
	embed.Description = f.description()

	total, ok := f.user.TotalGames()
	if ok && total > 0 {
		playtimes := []string{
			fmt.Sprintf("%s %s played", f.glyphs.Other["stats"], formatDuration(f.user.Playtime)),
			fmt.Sprintf("%s %s on TV", f.glyphs.Other["tv"], formatDuration(f.user.TVTime)),
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s Games [%d]", f.glyphs.Other["challenge"], total),
			Value: fmt.Sprintf("%d wins | %d losses | %d draws\n*%d%% completion*\n\n%s",
				*f.user.Win, *f.user.Loss, *f.user.Draw, f.user.Completion,
				strings.Join(playtimes, "\n")),
		})
	}

	if links := f.links(); len(links) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  f.glyphs.Other["link"] + " Links",
			Value: strings.Join(links, "\n"),
		})
	}

	return embed
}

// links normalizes the profile's link lines: a missing scheme gets
// https://, unparseable lines are dropped, and the survivors are
// escaped before display.
func (f *Formatter) links() []string {
	var out []string
	for _, line := range strings.Split(f.user.Links, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "https://") && !strings.HasPrefix(line, "http://") {
			line = "https://" + line
		}
		parsed, err := url.Parse(line)
		if err != nil || parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
			continue
		}
		out = append(out, markdown.Escape(line))
	}
	return out
}

func (f *Formatter) ratings() *discordgo.MessageEmbed {
	embed := f.base()

	var otb []string
	for _, fed := range []struct {
		name   string
		rating int
	}{{"FIDE", f.user.FIDE}, {"USCF", f.user.USCF}, {"ECF", f.user.ECF}} {
		if fed.rating > 0 {
			otb = append(otb, fmt.Sprintf("%d %s", fed.rating, fed.name))
		}
	}
	if len(otb) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  f.glyphs.Other["stats"] + " OTB",
			Value: strings.Join(otb, "\n"),
		})
	}

	// One field per mode with performance data, in fixed mode order.
	for _, mode := range lichess.Modes {
		perf, ok := f.user.Perf(mode)
		if !ok {
			continue
		}

		modeGlyph, ok := f.glyphs.Modes[mode.Key()]
		if !ok {
			modeGlyph = "♟️"
		}

		value := fmt.Sprintf("%s %d", f.glyphs.Other["rating"], perf.Rating)
		if perf.Deviation != nil {
			value += fmt.Sprintf(" ± %d", *perf.Deviation)
		}
		if perf.Progression != nil && *perf.Progression != 0 {
			arrow := f.glyphs.Other["down"]
			if *perf.Progression > 0 {
				arrow = f.glyphs.Other["up"]
			}
			value += fmt.Sprintf("\n%s %d", arrow, *perf.Progression)
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s [%d]", modeGlyph, mode, perf.Games),
			Value:  value,
			Inline: true,
		})
	}

	return embed
}

func (f *Formatter) history(ctx context.Context) (*discordgo.MessageEmbed, error) {
	total, ok := f.user.TotalGames()
	if !ok || total == 0 {
		return nil, ErrNoHistory
	}

	png, err := renderGraph(f.user, f.glyphs.Charts)
	if err != nil {
		return nil, err
	}

	hostedURL, err := f.uploader.Upload(ctx, "graph.png", bytes.NewReader(png))
	if err != nil {
		return nil, fmt.Errorf("could not upload rating graph: %w", err)
	}

	embed := f.base()
	embed.Image = &discordgo.MessageEmbedImage{URL: hostedURL}
	return embed, nil
}

// formatDuration renders a duration as days/hours/minutes, with minutes
// as the smallest unit.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes <= 0 {
		return "0 minutes"
	}

	days := minutes / (24 * 60)
	hours := (minutes / 60) % 24
	minutes %= 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
