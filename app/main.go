package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"podfetch/app/cfg"
	"podfetch/app/feed"
	"podfetch/app/pipeline"
	"podfetch/app/post"
	"podfetch/app/source"
	"podfetch/app/state"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting podcast episode fetcher",
		"version", appCfg.Version,
		"show_id", appCfg.ShowID,
		"posts_dir", appCfg.PostsDir)

	client := source.NewClient(time.Duration(appCfg.Timeout)*time.Second, appCfg.UserAgent)
	parser := feed.NewParser()
	store := state.NewStore(appCfg.StateFile)
	renderer := post.NewRenderer(appCfg.PostsDir, appCfg.ShowID, appCfg.TopicKeywords, client)

	p := pipeline.NewPipeline(appCfg.FeedURLs, client, parser, store, renderer)

	result, err := p.Run(context.Background())
	if err != nil {
		slog.Error("Run aborted", "error", err)
		os.Exit(1)
	}

	slog.Info("Run completed",
		"new", len(result.NewGUIDs),
		"tracked", result.TotalTracked)
	for _, guid := range result.NewGUIDs {
		slog.Info("New episode added", "guid", guid)
	}
}
