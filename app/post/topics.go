package post

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxTopics = 5

// Topics listed when the description matches nothing in the vocabulary, so
// every post still gets a non-empty topic section.
var defaultTopics = []string{"Health Metrics", "Data Science"}

var titleCaser = cases.Title(language.English)

// ClassifyTopics scans the lower-cased description for vocabulary keywords
// and returns the title-cased matches in vocabulary order, capped at
// maxTopics.
func ClassifyTopics(description string, vocabulary []string) []string {
	lower := strings.ToLower(description)

	var topics []string
	for _, keyword := range vocabulary {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			topics = append(topics, titleCaser.String(keyword))
			if len(topics) == maxTopics {
				break
			}
		}
	}

	if len(topics) == 0 {
		return slices.Clone(defaultTopics)
	}
	return topics
}
