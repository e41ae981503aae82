package models

import "time"

// Article carries one news item through the pipeline. The same struct covers
// all lifecycle stages: a raw article as fetched, a cleaned article after
// preprocessing (CleanedContent set), and an analyzed article after the
// oracle call (Analysis set). Once Analysis is assigned the record is
// immutable.
//
// JSON field names are the persisted document format and must not change:
// downstream consumers read preprocessed_articles.json and
// analyzed_articles.json by these exact keys.
type Article struct {
	Source         string    `json:"source"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"published_at"`
	Content        string    `json:"content"`
	CleanedContent string    `json:"cleaned_content,omitempty"`
	Analysis       *Analysis `json:"analysis,omitempty"`
}
