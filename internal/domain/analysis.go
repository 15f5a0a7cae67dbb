package domain

import "time"

// Sentiment is the sentiment classification of a content body.
type Sentiment struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

// Entity is a named entity extracted from the text.
type Entity struct {
	Text  string  `json:"text"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// Topic is a topic classification with its score.
type Topic struct {
	Topic string  `json:"topic"`
	Score float64 `json:"score"`
}

// Emotion is an emotion classification with its score.
type Emotion struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
}

// AnalysisResult holds the ML service's analysis of a content item. It is
// produced asynchronously and attached by content id; it is advisory and no
// invariant depends on its presence.
type AnalysisResult struct {
	ContentID   string     `json:"content_id"`
	Sentiment   *Sentiment `json:"sentiment,omitempty"`
	Emotions    []Emotion  `json:"emotions,omitempty"`
	Entities    []Entity   `json:"entities,omitempty"`
	Topics      []Topic    `json:"topics,omitempty"`
	Language    string     `json:"language"`
	WordCount   int        `json:"word_count"`
	Readability float64    `json:"readability_score"`
	Keywords    []string   `json:"keywords,omitempty"`
	AnalyzedAt  time.Time  `json:"analyzed_at"`
}
