// Package views renders loaded profile records into Discord embeds.
package views

import (
	"context"
	"errors"
	"io"

	"github.com/bwmarrin/discordgo"
)

// View identifies one of the renderable projections of a profile.
type View int

const (
	ViewSummary View = iota
	ViewRatings
	ViewHistory
)

var viewKeys = map[View]string{
	ViewSummary: "summary",
	ViewRatings: "ratings",
	ViewHistory: "history",
}

// Order lists every view in navigation order.
var Order = []View{ViewSummary, ViewRatings, ViewHistory}

// Key returns the select-menu value and config key for the view.
func (v View) Key() string { return viewKeys[v] }

// FromKey resolves a select-menu value back to a view.
func FromKey(key string) (View, bool) {
	for _, v := range Order {
		if viewKeys[v] == key {
			return v, true
		}
	}
	return 0, false
}

// Keys returns the config keys for every view in navigation order.
func Keys() []string {
	keys := make([]string, len(Order))
	for i, v := range Order {
		keys[i] = v.Key()
	}
	return keys
}

var (
	// ErrInvalidView indicates a non-summary view was requested for a
	// disabled account, which has nothing else to show.
	ErrInvalidView = errors.New("views: view not available for this account")

	// ErrNoHistory indicates a history graph was requested for an
	// account with no games.
	ErrNoHistory = errors.New("views: user has no games to plot")
)

// Uploader posts a rendered image somewhere it can be hot-linked from an
// embed and returns the hosted URL.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// Renderer produces an embed for a view. *Formatter is the production
// implementation; tests substitute counting fakes.
type Renderer interface {
	Render(ctx context.Context, v View) (*discordgo.MessageEmbed, error)
}
