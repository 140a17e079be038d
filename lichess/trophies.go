package lichess

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fetchTrophies scrapes the public profile page for trophy markers.
// There is no API endpoint for these. Each trophy element's class
// tokens are mapped through the configured glyph table; unrecognized
// classes are dropped.
func (c *Client) fetchTrophies(ctx context.Context, profileURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("could not create request for %s: %w", profileURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s from profile page", ErrUpstreamUnavailable, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var trophies []string
	doc.Find(".trophy").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		for _, token := range strings.Fields(class) {
			if token == "trophy" {
				continue
			}
			if glyph, ok := c.trophies[token]; ok {
				trophies = append(trophies, glyph)
				break
			}
		}
	})
	return trophies, nil
}
