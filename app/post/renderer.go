package post

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"podfetch/app/feed"
)

const (
	slugMaxLen  = 50
	slugPrefix  = "podcast-"
	contentFile = "index.qmd"
	imageFile   = "featured.png"

	summaryMaxLen = 200
)

// ImageFetcher supplies raw image bytes for episode artwork.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Renderer turns one Episode into a post directory: a content file with
// frontmatter plus an optional downloaded artwork image. Output is
// deterministic given the same episode and topic vocabulary.
type Renderer struct {
	postsDir      string
	showID        string
	topicKeywords []string
	images        ImageFetcher
}

func NewRenderer(postsDir, showID string, topicKeywords []string, images ImageFetcher) *Renderer {
	return &Renderer{
		postsDir:      postsDir,
		showID:        showID,
		topicKeywords: topicKeywords,
		images:        images,
	}
}

type frontmatter struct {
	Title      string      `yaml:"title"`
	Date       string      `yaml:"date"`
	Image      string      `yaml:"image"`
	Slug       string      `yaml:"slug"`
	Toc        bool        `yaml:"toc"`
	Categories []string    `yaml:"categories"`
	Summary    string      `yaml:"summary"`
	Execute    executeOpts `yaml:"execute"`
}

type executeOpts struct {
	Eval bool `yaml:"eval"`
}

// Run writes the post for episode and returns the created directory path.
// A failed artwork download is logged and the post is still created.
func (r *Renderer) Run(ctx context.Context, episode feed.Episode) (string, error) {
	baseSlug := truncate(Slugify(episode.Title), slugMaxLen)

	episodeDir := filepath.Join(r.postsDir, baseSlug)
	if err := os.MkdirAll(episodeDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create post directory: %w", err)
	}

	if episode.ImageURL != "" {
		if err := r.downloadImage(ctx, episode.ImageURL, filepath.Join(episodeDir, imageFile)); err != nil {
			slog.Warn("Could not download episode image", "title", episode.Title, "error", err)
		}
	}

	content, err := r.renderContent(episode, slugPrefix+baseSlug)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(episodeDir, contentFile), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write post content: %w", err)
	}

	return episodeDir, nil
}

// embedURL builds a per-episode player URL when an episode ID was
// recovered, otherwise the show-level player so the post is still playable.
func (r *Renderer) embedURL(episode feed.Episode) string {
	if episode.EpisodeID != "" {
		return fmt.Sprintf("https://open.spotify.com/embed/episode/%s?utm_source=generator", episode.EpisodeID)
	}
	return fmt.Sprintf("https://open.spotify.com/embed/show/%s/video?utm_source=generator", r.showID)
}

func (r *Renderer) renderContent(episode feed.Episode, postSlug string) ([]byte, error) {
	fm := frontmatter{
		Title:      episode.Title,
		Date:       episode.Date.Format("2006-01-02"),
		Image:      imageFile,
		Slug:       postSlug,
		Toc:        true,
		Categories: []string{"health metrics", "data science"},
		Summary:    Summarize(episode.Description),
		Execute:    executeOpts{Eval: false},
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("failed to render frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render frontmatter: %w", err)
	}
	buf.WriteString("---\n\n")

	fmt.Fprintf(&buf, "<iframe data-testid=\"embed-iframe\" style=\"border-radius:12px\" src=%q width=\"624\" height=\"351\" frameBorder=\"0\" allowfullscreen=\"\" allow=\"autoplay; clipboard-write; encrypted-media; fullscreen; picture-in-picture\" loading=\"lazy\"></iframe>\n\n", r.embedURL(episode))

	buf.WriteString("## Episode Overview\n\n")
	buf.WriteString(episode.Description)
	buf.WriteString("\n\n## Key Topics Discussed\n\n")
	for _, topic := range ClassifyTopics(episode.Description, r.topicKeywords) {
		fmt.Fprintf(&buf, "- %s\n", topic)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) downloadImage(ctx context.Context, url, path string) error {
	data, err := r.images.FetchImage(ctx, url)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	slog.Debug("Downloaded episode image", "path", path)
	return nil
}

// Summarize returns the first 200 characters of the description, trimmed,
// with an ellipsis appended when truncation happened.
func Summarize(description string) string {
	runes := []rune(description)
	if len(runes) <= summaryMaxLen {
		return strings.TrimSpace(description)
	}
	return strings.TrimSpace(string(runes[:summaryMaxLen])) + "..."
}

// Slugs only contain ASCII after Slugify, so byte slicing is safe.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
