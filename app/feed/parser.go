package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const untitledEpisode = "Untitled Episode"

// pubDate layouts tried in order; first success wins. RFC 2822 dates with a
// named timezone, then with a numeric offset.
var pubDateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
}

// Matches the episode ID path segment used by Spotify/Anchor media URLs.
var episodePathPattern = regexp.MustCompile(`/episode/([a-zA-Z0-9]+)`)

const spotifyEpisodeURI = "spotify:episode:"

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses raw feed data and returns one Episode per item, in feed order.
// A parse error here means the content has no recognizable feed structure
// and is fatal to the run.
func (p *Parser) Run(data []byte) ([]Episode, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	episodes := make([]Episode, 0, len(feed.Items))
	for _, item := range feed.Items {
		episodes = append(episodes, p.extractEpisode(item))
	}

	return episodes, nil
}

// extractEpisode normalizes a single feed item. Missing or malformed
// optional fields degrade to documented defaults and never fail.
func (p *Parser) extractEpisode(item *gofeed.Item) Episode {
	episode := Episode{
		Title:     cmp.Or(item.Title, untitledEpisode),
		Date:      p.parsePubDate(item.Published),
		GUID:      item.GUID,
		SourceURL: item.Link,
		EpisodeID: p.recoverEpisodeID(item),
	}

	// Prefer the plain description, fall back to content:encoded.
	description := cmp.Or(item.Description, item.Content)
	episode.Description = strings.TrimSpace(StripMarkup(description))

	if item.ITunesExt != nil {
		episode.ImageURL = item.ITunesExt.Image
	}

	return episode
}

// parsePubDate reduces the item's publication timestamp to a calendar date,
// keeping the date as written in the feed's own timezone. An absent or
// unparseable value falls back to today.
func (p *Parser) parsePubDate(value string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return toDate(t)
		}
	}
	return toDate(time.Now().UTC())
}

// recoverEpisodeID tries, in order: the enclosure URL path, the Spotify URI
// form of the guid, then the guid as a URL. Returns "" when nothing matches.
func (p *Parser) recoverEpisodeID(item *gofeed.Item) string {
	if len(item.Enclosures) > 0 && item.Enclosures[0] != nil {
		if m := episodePathPattern.FindStringSubmatch(item.Enclosures[0].URL); m != nil {
			return m[1]
		}
	}

	if item.GUID == "" {
		return ""
	}
	if _, after, found := strings.Cut(item.GUID, spotifyEpisodeURI); found {
		return after
	}
	if m := episodePathPattern.FindStringSubmatch(item.GUID); m != nil {
		return m[1]
	}

	return ""
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
