package lichess

import (
	"strings"
	"time"
)

// Perf is one mode's performance data. Deviation and Progression are
// nil for score-based modes (the puzzle family), where the upstream
// score stands in for the rating and runs stand in for games.
type Perf struct {
	Mode        Mode
	Games       int
	Rating      int
	Deviation   *int
	Progression *int
}

// HistoryPoint is a rating on a given date.
type HistoryPoint struct {
	Date   time.Time
	Rating int
}

// History is one mode's recorded ratings, sorted ascending by date with
// inactivity gaps bridged so a plotted line never interpolates across
// them.
type History struct {
	Mode   Mode
	Points []HistoryPoint
}

// User is a loaded profile record. It is built once per lookup and
// never mutated afterwards; every rendered view is a projection of it.
// A disabled account carries only Username and Disabled.
type User struct {
	Username string
	Disabled bool

	Online    bool
	Patron    bool
	Violation bool

	Title    string
	Name     string
	Country  string
	Location string
	Bio      string
	Links    string

	FIDE int
	USCF int
	ECF  int

	Win  *int
	Loss *int
	Draw *int

	// Completion is the game completion percentage. Defaults to 100
	// when games were played but upstream did not report a rate.
	Completion int

	Playtime time.Duration
	TVTime   time.Duration

	Trophies     []string
	Performances []Perf
	History      []History

	// ProfileURL is the user's public page, set by the loader.
	ProfileURL string
}

// ID returns the case-folded form used in lookups and URLs.
func (u *User) ID() string {
	return strings.ToLower(u.Username)
}

// TotalGames sums wins, losses, and draws. The second return is false
// when any of the three counts is absent.
func (u *User) TotalGames() (int, bool) {
	if u.Win == nil || u.Loss == nil || u.Draw == nil {
		return 0, false
	}
	return *u.Win + *u.Loss + *u.Draw, true
}

// Perf returns the performance entry for a mode, if the user has one.
func (u *User) Perf(mode Mode) (Perf, bool) {
	for _, p := range u.Performances {
		if p.Mode == mode {
			return p, true
		}
	}
	return Perf{}, false
}

// ModeHistory returns the history entry for a mode, if any.
func (u *User) ModeHistory(mode Mode) (History, bool) {
	for _, h := range u.History {
		if h.Mode == mode {
			return h, true
		}
	}
	return History{}, false
}
