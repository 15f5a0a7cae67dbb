// Package analysis provides the HTTP client for the content intelligence ML
// service. Analysis is advisory: the orchestrator tolerates its absence and
// never blocks a request on it.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

// Config holds the configuration for the analysis client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the ML service's /analyze endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an analysis client with a bounded timeout.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// analyzeRequest mirrors the ML service's request schema.
type analyzeRequest struct {
	Text             string `json:"text"`
	ContentID        string `json:"content_id"`
	AnalyzeSentiment bool   `json:"analyze_sentiment"`
	AnalyzeEntities  bool   `json:"analyze_entities"`
	AnalyzeTopics    bool   `json:"analyze_topics"`
	AnalyzeEmotions  bool   `json:"analyze_emotions"`
}

// analyzeResponse mirrors the ML service's response schema.
type analyzeResponse struct {
	ContentID   string            `json:"content_id"`
	Sentiment   *domain.Sentiment `json:"sentiment"`
	Emotions    []domain.Emotion  `json:"emotions"`
	Entities    []domain.Entity   `json:"entities"`
	Topics      []domain.Topic    `json:"topics"`
	Language    string            `json:"language"`
	WordCount   int               `json:"word_count"`
	Readability float64           `json:"readability_score"`
	Keywords    []string          `json:"keywords"`
}

// Analyze submits the content text and returns the analysis result.
func (c *Client) Analyze(ctx context.Context, contentID, title, body string) (*domain.AnalysisResult, error) {
	payload, err := json.Marshal(analyzeRequest{
		Text:             title + "\n\n" + body,
		ContentID:        contentID,
		AnalyzeSentiment: true,
		AnalyzeEntities:  true,
		AnalyzeTopics:    true,
		AnalyzeEmotions:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analyze: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyze returned status %d", resp.StatusCode)
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode analyze response: %w", err)
	}

	return &domain.AnalysisResult{
		ContentID:   contentID,
		Sentiment:   parsed.Sentiment,
		Emotions:    parsed.Emotions,
		Entities:    parsed.Entities,
		Topics:      parsed.Topics,
		Language:    parsed.Language,
		WordCount:   parsed.WordCount,
		Readability: parsed.Readability,
		Keywords:    parsed.Keywords,
		AnalyzedAt:  time.Now().UTC(),
	}, nil
}
