package post

import (
	"reflect"
	"testing"
)

var testVocabulary = []string{
	"data science", "machine learning", "artificial intelligence",
	"health metrics", "epidemiology", "public health",
	"infectious disease", "statistics", "research",
}

func TestClassifyTopics(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "matches in vocabulary order",
			description: "New research on machine learning for public health.",
			want:        []string{"Machine Learning", "Public Health", "Research"},
		},
		{
			name:        "case insensitive",
			description: "EPIDEMIOLOGY and Statistics",
			want:        []string{"Epidemiology", "Statistics"},
		},
		{
			name:        "no matches falls back to defaults",
			description: "An episode about something else entirely.",
			want:        []string{"Health Metrics", "Data Science"},
		},
		{
			name:        "empty description falls back to defaults",
			description: "",
			want:        []string{"Health Metrics", "Data Science"},
		},
		{
			name: "capped at five",
			description: "data science, machine learning, artificial intelligence, " +
				"health metrics, epidemiology, public health and statistics",
			want: []string{
				"Data Science", "Machine Learning", "Artificial Intelligence",
				"Health Metrics", "Epidemiology",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTopics(tt.description, testVocabulary)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got: %v", tt.want, got)
			}
		})
	}
}
