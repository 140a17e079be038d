package lichess

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/discochess/castle-discord-service/config"
)

// Client fetches and normalizes public profile data. It is safe for
// concurrent use; the underlying HTTP client is shared across lookups.
type Client struct {
	httpClient *http.Client
	baseURL    string
	trophies   map[string]string
}

// NewClient creates a Client from config. The trophy table maps page
// class tokens to display glyphs.
func NewClient(cfg *config.LichessConfig, trophies map[string]string) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		trophies:   trophies,
	}
}

// profileDocument mirrors the public profile API response.
type profileDocument struct {
	Username       string `json:"username"`
	Disabled       bool   `json:"disabled"`
	Online         bool   `json:"online"`
	Patron         bool   `json:"patron"`
	Violation      bool   `json:"violation"`
	TOSViolation   bool   `json:"tosViolation"`
	Title          string `json:"title"`
	CompletionRate *int   `json:"completionRate"`
	Profile        struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Country    string `json:"country"`
		Location   string `json:"location"`
		Bio        string `json:"bio"`
		Links      string `json:"links"`
		FIDERating int    `json:"fideRating"`
		USCFRating int    `json:"uscfRating"`
		ECFRating  int    `json:"ecfRating"`
	} `json:"profile"`
	Perfs map[string]perfEntry `json:"perfs"`
	Count *struct {
		Win  int `json:"win"`
		Loss int `json:"loss"`
		Draw int `json:"draw"`
	} `json:"count"`
	PlayTime *struct {
		Total int `json:"total"`
		TV    int `json:"tv"`
	} `json:"playTime"`
}

// perfEntry is one mode's entry in the perfs map. Rated modes carry
// rating/rd/prog/games; puzzle-type modes carry score/runs instead.
type perfEntry struct {
	Rating *int `json:"rating"`
	RD     *int `json:"rd"`
	Prog   *int `json:"prog"`
	Games  *int `json:"games"`
	Score  *int `json:"score"`
	Runs   *int `json:"runs"`
}

// Load fetches a user's profile, rating history, and trophies, and
// normalizes them into a single immutable record.
//
// Disabled accounts short-circuit after the first fetch: they have no
// further queryable data, so no other requests are made. For everyone
// else the history fetch and trophy scrape run concurrently, and any
// sub-fetch failure fails the whole load; we never hand back a record
// with a silently missing section. (Degrading a failed trophy scrape to
// an empty list instead is a product policy question.)
func (c *Client) Load(ctx context.Context, username string) (*User, error) {
	id := strings.ToLower(username)

	var doc profileDocument
	if err := c.fetchJSON(ctx, c.baseURL+"/api/user/"+id, &doc); err != nil {
		return nil, err
	}
	if doc.Username == "" {
		return nil, fmt.Errorf("%w: profile document missing username", ErrParse)
	}

	if doc.Disabled {
		return &User{Username: doc.Username, Disabled: true}, nil
	}

	profileURL := c.baseURL + "/@/" + id

	var (
		rawHistory []historyEntry
		trophies   []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.fetchJSON(gctx, c.baseURL+"/api/user/"+id+"/rating-history", &rawHistory)
	})
	g.Go(func() error {
		var err error
		trophies, err = c.fetchTrophies(gctx, profileURL)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	user := &User{
		Username:   doc.Username,
		Online:     doc.Online,
		Patron:     doc.Patron,
		Violation:  doc.Violation || doc.TOSViolation,
		Title:      doc.Title,
		Country:    doc.Profile.Country,
		Location:   doc.Profile.Location,
		Bio:        doc.Profile.Bio,
		Links:      doc.Profile.Links,
		FIDE:       doc.Profile.FIDERating,
		USCF:       doc.Profile.USCFRating,
		ECF:        doc.Profile.ECFRating,
		Trophies:   trophies,
		ProfileURL: profileURL,
	}

	user.Name = joinName(doc.Profile.FirstName, doc.Profile.LastName)
	user.Performances = normalizePerfs(doc.Perfs)
	user.History = normalizeHistory(rawHistory)

	if doc.Count != nil {
		win, loss, draw := doc.Count.Win, doc.Count.Loss, doc.Count.Draw
		user.Win, user.Loss, user.Draw = &win, &loss, &draw
		if doc.CompletionRate != nil {
			user.Completion = *doc.CompletionRate
		} else {
			user.Completion = 100
		}
	}

	if doc.PlayTime != nil {
		user.Playtime = time.Duration(doc.PlayTime.Total) * time.Second
		user.TVTime = time.Duration(doc.PlayTime.TV) * time.Second
	}

	return user, nil
}

// fetchJSON issues a GET and decodes the JSON response into v.
func (c *Client) fetchJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("could not create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %s from %s", ErrUpstreamUnavailable, resp.Status, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

// normalizePerfs converts the perfs map into ordered Perf entries. Modes
// the upstream does not report are simply absent.
func normalizePerfs(perfs map[string]perfEntry) []Perf {
	var out []Perf
	for _, mode := range Modes {
		entry, ok := perfs[mode.Key()]
		if !ok {
			continue
		}
		if entry.Rating != nil {
			p := Perf{Mode: mode, Rating: *entry.Rating}
			if entry.Games != nil {
				p.Games = *entry.Games
			}
			p.Deviation = entry.RD
			p.Progression = entry.Prog
			out = append(out, p)
			continue
		}
		// Score-based mode: score stands in for rating, runs for games.
		if entry.Score != nil {
			p := Perf{Mode: mode, Rating: *entry.Score}
			if entry.Runs != nil {
				p.Games = *entry.Runs
			}
			out = append(out, p)
		}
	}
	return out
}

// joinName joins optional first and last names with a space.
func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
