package config

import "fmt"

// StatusGlyphs are the presence indicators used in embed titles.
type StatusGlyphs struct {
	Closed        string `json:"closed"`
	PatronOnline  string `json:"patron_online"`
	PatronOffline string `json:"patron_offline"`
	Online        string `json:"online"`
	Offline       string `json:"offline"`
}

// ChartStyle describes how one mode's line is drawn in the history graph.
type ChartStyle struct {
	Color string `json:"color"`
	// DashArray is the stroke dash pattern; empty means a solid line.
	DashArray []float64 `json:"dash_array,omitempty"`
}

// ViewOption is one entry in the profile navigation select menu.
type ViewOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// GlyphConfig holds every static display table: emoji, flag overrides,
// chart styles, and select-menu labels. Loaded once at startup.
type GlyphConfig struct {
	Status   StatusGlyphs          `json:"status"`
	Other    map[string]string     `json:"other"`
	Trophies map[string]string     `json:"trophies"`
	Modes    map[string]string     `json:"modes"`
	Flags    map[string]string     `json:"flags"`
	Charts   map[string]ChartStyle `json:"charts"`
	Views    map[string]ViewOption `json:"views"`
	LogoURL  string                `json:"logo_url"`
}

// otherKeys are the misc glyphs the formatters require.
var otherKeys = []string{
	"stats", "tv", "challenge", "link", "rating", "up", "down", "violation", "profile",
}

// Validate checks that every table entry the renderers will reach for is
// present. Missing entries are a startup-fatal condition, not something
// to discover on a user's lookup.
func (g *GlyphConfig) Validate(modeKeys, viewKeys []string) error {
	if g.Status.Closed == "" || g.Status.PatronOnline == "" || g.Status.PatronOffline == "" ||
		g.Status.Online == "" || g.Status.Offline == "" {
		return fmt.Errorf("glyph config: incomplete status glyph table")
	}
	for _, key := range otherKeys {
		if g.Other[key] == "" {
			return fmt.Errorf("glyph config: missing %q glyph", key)
		}
	}
	for _, mode := range modeKeys {
		if _, ok := g.Charts[mode]; !ok {
			return fmt.Errorf("glyph config: missing chart style for mode %q", mode)
		}
		if g.Charts[mode].Color == "" {
			return fmt.Errorf("glyph config: empty chart color for mode %q", mode)
		}
	}
	for _, view := range viewKeys {
		opt, ok := g.Views[view]
		if !ok {
			return fmt.Errorf("glyph config: missing view option for %q", view)
		}
		if opt.Label == "" {
			return fmt.Errorf("glyph config: empty label for view %q", view)
		}
	}
	return nil
}

// DefaultGlyphs returns the stock glyph tables. Deployments usually
// replace most of these with custom server emoji in glyphs.json.
func DefaultGlyphs() *GlyphConfig {
	return &GlyphConfig{
		Status: StatusGlyphs{
			Closed:        "⚫",
			PatronOnline:  "🧡",
			PatronOffline: "🤎",
			Online:        "🟢",
			Offline:       "⚪",
		},
		Other: map[string]string{
			"stats":     "📊",
			"tv":        "📺",
			"challenge": "⚔️",
			"link":      "🔗",
			"rating":    "📈",
			"up":        "🔼",
			"down":      "🔽",
			"violation": "⚠️",
			"profile":   "👤",
		},
		Trophies: map[string]string{
			"developer":         "🛠️",
			"moderator":         "🛡️",
			"verified":          "☑️",
			"content-team":      "📝",
			"marathon-winner":   "🏆",
			"marathon-survivor": "🎖️",
		},
		Modes: map[string]string{
			"ultraBullet":   "🚅",
			"bullet":        "🔫",
			"blitz":         "⚡",
			"rapid":         "🐇",
			"classical":     "🐢",
			"correspondence": "✉️",
			"crazyhouse":    "🏠",
			"chess960":      "🎲",
			"kingOfTheHill": "⛰️",
			"threeCheck":    "☑️",
			"antichess":     "🙃",
			"atomic":        "💥",
			"horde":         "🐎",
			"racingKings":   "🏁",
			"puzzle":        "🧩",
			"storm":         "🌩️",
			"racer":         "🏎️",
			"streak":        "🔥",
		},
		Flags: map[string]string{
			"_earth":          "🌍",
			"_lichess":        "♞",
			"_pirate":         "🏴‍☠️",
			"_rainbow":        "🏳️‍🌈",
			"_united-nations": "🇺🇳",
		},
		Charts: map[string]ChartStyle{
			"ultraBullet":   {Color: "#8b4513"},
			"bullet":        {Color: "#e69f00"},
			"blitz":         {Color: "#56b4e9"},
			"rapid":         {Color: "#009e73"},
			"classical":     {Color: "#f0e442"},
			"correspondence": {Color: "#0072b2"},
			"crazyhouse":    {Color: "#d55e00", DashArray: []float64{5, 5}},
			"chess960":      {Color: "#cc79a7", DashArray: []float64{5, 5}},
			"kingOfTheHill": {Color: "#999999", DashArray: []float64{5, 5}},
			"threeCheck":    {Color: "#e69f00", DashArray: []float64{5, 5}},
			"antichess":     {Color: "#56b4e9", DashArray: []float64{5, 5}},
			"atomic":        {Color: "#009e73", DashArray: []float64{5, 5}},
			"horde":         {Color: "#f0e442", DashArray: []float64{5, 5}},
			"racingKings":   {Color: "#0072b2", DashArray: []float64{5, 5}},
			"puzzle":        {Color: "#d55e00", DashArray: []float64{2, 4}},
			"storm":         {Color: "#cc79a7", DashArray: []float64{2, 4}},
			"racer":         {Color: "#999999", DashArray: []float64{2, 4}},
			"streak":        {Color: "#8b4513", DashArray: []float64{2, 4}},
		},
		Views: map[string]ViewOption{
			"summary": {
				Label:       "User profile",
				Description: "The user's biographical and profile-related information.",
				Emoji:       "👤",
			},
			"ratings": {
				Label:       "Ratings per gamemode",
				Description: "The user's rating between various gamemodes.",
				Emoji:       "📊",
			},
			"history": {
				Label:       "Rating history",
				Description: "The user's rating history from when they first started.",
				Emoji:       "📈",
			},
		},
		LogoURL: "https://lichess1.org/assets/logo/lichess-favicon-64.png",
	}
}
