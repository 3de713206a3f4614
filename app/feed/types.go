package feed

import (
	"time"
)

// Episode is the normalized record extracted from one feed item.
type Episode struct {
	Title       string
	Date        time.Time // calendar date (UTC midnight), time-of-day dropped
	Description string    // markup stripped, may be empty
	GUID        string    // sole deduplication key, verbatim from the feed
	EpisodeID   string    // recovered platform episode ID, "" when no pattern matched
	ImageURL    string
	SourceURL   string
}
