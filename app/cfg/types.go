package cfg

type Cfg struct {
	// Feed source configuration
	ShowID   string
	FeedURLs []string

	// Output configuration
	PostsDir  string
	StateFile string

	// Rendering configuration
	TopicKeywords []string

	// HTTP configuration
	Timeout   int
	UserAgent string

	// Application metadata
	Debug   bool
	Version string
}
