package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"podfetch/app/feed"
	"podfetch/app/state"
)

// FeedSource supplies raw feed bytes from the first reachable candidate URL.
type FeedSource interface {
	FetchFeed(ctx context.Context, urls []string) ([]byte, error)
}

// Renderer writes the content artifact for one episode and returns the
// created directory.
type Renderer interface {
	Run(ctx context.Context, episode feed.Episode) (string, error)
}

type Result struct {
	NewGUIDs     []string
	TotalTracked int
}

// Pipeline drives one full pass over the feed: extraction, novelty check
// against persisted state, rendering, and the final state flush.
type Pipeline struct {
	feedURLs []string
	source   FeedSource
	parser   *feed.Parser
	store    *state.Store
	renderer Renderer
}

func NewPipeline(feedURLs []string, source FeedSource, parser *feed.Parser, store *state.Store, renderer Renderer) *Pipeline {
	return &Pipeline{
		feedURLs: feedURLs,
		source:   source,
		parser:   parser,
		store:    store,
		renderer: renderer,
	}
}

// Run processes the feed once, in feed order. Fetch and structural parse
// failures abort the run; rendering failures are logged and the episode is
// left unrecorded so the next run retries it. State is persisted even when
// no new episodes were found.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	st, err := p.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	slog.Info("State loaded", "tracked", st.Count())

	data, err := p.source.FetchFeed(ctx, p.feedURLs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	episodes, err := p.parser.Run(data)
	if err != nil {
		return nil, err
	}
	slog.Info("Feed parsed", "episodes", len(episodes))

	result := &Result{}
	for _, episode := range episodes {
		if st.Contains(episode.GUID) {
			continue
		}

		slog.Info("Processing new episode",
			"title", episode.Title,
			"date", episode.Date.Format("2006-01-02"),
			"guid", episode.GUID)

		dir, err := p.renderer.Run(ctx, episode)
		if err != nil {
			// Left unrecorded so the next run retries this episode.
			slog.Error("Failed to create post", "title", episode.Title, "error", err)
			continue
		}
		slog.Info("Created post", "dir", dir)

		st.Record(episode.GUID)
		result.NewGUIDs = append(result.NewGUIDs, episode.GUID)
	}

	if err := p.store.Save(st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	result.TotalTracked = st.Count()
	return result, nil
}
