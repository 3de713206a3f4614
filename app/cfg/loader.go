package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Feed source configuration
	ShowID   string   `long:"show-id" env:"SHOW_ID" default:"43CSCODQFQkZ05u3Up5OD6" description:"Spotify show identifier used for feed URL and embed fallbacks"`
	FeedURLs []string `long:"feed-url" env:"FEED_URLS" env-delim:"," description:"Candidate RSS feed URL, tried in order (repeatable; defaults derived from show ID)"`

	// Output configuration
	PostsDir  string `long:"posts-dir" env:"POSTS_DIR" default:"content/podcasts/posts" description:"Root directory for generated episode posts"`
	StateFile string `long:"state-file" env:"STATE_FILE" default:".podcast_state.json" description:"Path to the processed-episode state file"`

	// Rendering configuration
	TopicKeywords []string `long:"topic" env:"TOPIC_KEYWORDS" env-delim:"," description:"Keyword vocabulary for topic classification (repeatable)"`

	// HTTP configuration
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP timeout in seconds for feed and image requests"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"podfetch/1.0" description:"User agent string for HTTP requests"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Spotify/Anchor expose the same show feed under different hosts, so both
// are tried in order until one responds.
func defaultFeedURLs(showID string) []string {
	return []string{
		fmt.Sprintf("https://anchor.fm/s/%s/podcast/rss", showID),
		fmt.Sprintf("https://podcasters.spotify.com/pod/show/%s/feed", showID),
	}
}

func defaultTopicKeywords() []string {
	return []string{
		"data science", "machine learning", "artificial intelligence",
		"health metrics", "epidemiology", "public health",
		"infectious disease", "statistics", "research",
	}
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ShowID:        raw.ShowID,
		FeedURLs:      raw.FeedURLs,
		PostsDir:      raw.PostsDir,
		StateFile:     raw.StateFile,
		TopicKeywords: raw.TopicKeywords,
		Timeout:       raw.Timeout,
		UserAgent:     raw.UserAgent,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if len(cfg.FeedURLs) == 0 {
		cfg.FeedURLs = defaultFeedURLs(cfg.ShowID)
	}
	if len(cfg.TopicKeywords) == 0 {
		cfg.TopicKeywords = defaultTopicKeywords()
	}

	return cfg, nil
}
