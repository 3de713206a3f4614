package feed

import (
	"testing"

	"github.com/mmcdole/gofeed"
)

func TestRecoverEpisodeID(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name string
		item gofeed.Item
		want string
	}{
		{
			name: "enclosure URL wins over spotify URI guid",
			item: gofeed.Item{
				GUID:       "spotify:episode:fromGuid",
				Enclosures: []*gofeed.Enclosure{{URL: "https://anchor.fm/episode/fromEnclosure/audio.mp3"}},
			},
			want: "fromEnclosure",
		},
		{
			name: "spotify URI guid",
			item: gofeed.Item{GUID: "spotify:episode:ABC"},
			want: "ABC",
		},
		{
			name: "guid in URL form",
			item: gofeed.Item{GUID: "https://open.spotify.com/episode/xyz789"},
			want: "xyz789",
		},
		{
			name: "enclosure without episode segment, guid in URL form",
			item: gofeed.Item{
				GUID:       "https://open.spotify.com/episode/xyz789",
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/audio/123.mp3"}},
			},
			want: "xyz789",
		},
		{
			name: "no pattern matches",
			item: gofeed.Item{GUID: "urn:uuid:1234"},
			want: "",
		},
		{
			name: "empty guid",
			item: gofeed.Item{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.recoverEpisodeID(&tt.item); got != tt.want {
				t.Errorf("Expected %q, got: %q", tt.want, got)
			}
		})
	}
}
