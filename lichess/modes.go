package lichess

// Mode is one of the rated game and puzzle variants. The declaration
// order here is the display order everywhere: ratings tables and graph
// legends follow it, never the order the upstream payload happens to
// use.
type Mode int

const (
	UltraBullet Mode = iota
	Bullet
	Blitz
	Rapid
	Classical
	Correspondence
	Crazyhouse
	Chess960
	KingOfTheHill
	ThreeCheck
	Antichess
	Atomic
	Horde
	RacingKings
	Puzzle
	Storm
	Racer
	Streak
)

// Modes lists every mode in display order.
var Modes = []Mode{
	UltraBullet, Bullet, Blitz, Rapid, Classical, Correspondence,
	Crazyhouse, Chess960, KingOfTheHill, ThreeCheck, Antichess, Atomic,
	Horde, RacingKings, Puzzle, Storm, Racer, Streak,
}

// modeKeys are the keys used by the upstream perfs map and by the glyph
// and chart config tables.
var modeKeys = map[Mode]string{
	UltraBullet:    "ultraBullet",
	Bullet:         "bullet",
	Blitz:          "blitz",
	Rapid:          "rapid",
	Classical:      "classical",
	Correspondence: "correspondence",
	Crazyhouse:     "crazyhouse",
	Chess960:       "chess960",
	KingOfTheHill:  "kingOfTheHill",
	ThreeCheck:     "threeCheck",
	Antichess:      "antichess",
	Atomic:         "atomic",
	Horde:          "horde",
	RacingKings:    "racingKings",
	Puzzle:         "puzzle",
	Storm:          "storm",
	Racer:          "racer",
	Streak:         "streak",
}

// modeNames are the human-readable names, which are also the mode names
// used by the rating-history document.
var modeNames = map[Mode]string{
	UltraBullet:    "UltraBullet",
	Bullet:         "Bullet",
	Blitz:          "Blitz",
	Rapid:          "Rapid",
	Classical:      "Classical",
	Correspondence: "Correspondence",
	Crazyhouse:     "Crazyhouse",
	Chess960:       "Chess960",
	KingOfTheHill:  "King of the Hill",
	ThreeCheck:     "Three-check",
	Antichess:      "Antichess",
	Atomic:         "Atomic",
	Horde:          "Horde",
	RacingKings:    "Racing Kings",
	Puzzle:         "Puzzles",
	Storm:          "Puzzle Storm",
	Racer:          "Puzzle Racer",
	Streak:         "Puzzle Streak",
}

// Key returns the upstream/config key for the mode.
func (m Mode) Key() string { return modeKeys[m] }

// String returns the display name for the mode.
func (m Mode) String() string { return modeNames[m] }

// ModeFromName resolves a rating-history entry name to a mode.
func ModeFromName(name string) (Mode, bool) {
	for _, m := range Modes {
		if modeNames[m] == name {
			return m, true
		}
	}
	return 0, false
}

// ModeKeys returns the config keys for every mode in display order.
func ModeKeys() []string {
	keys := make([]string, len(Modes))
	for i, m := range Modes {
		keys[i] = m.Key()
	}
	return keys
}
