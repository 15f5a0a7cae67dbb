package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Analyze(t *testing.T) {
	t.Run("posts text and decodes the result", func(t *testing.T) {
		var received analyzeRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/analyze", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"content_id": "abc",
				"sentiment": {"label": "POSITIVE", "score": 0.98, "confidence": "high"},
				"entities": [{"text": "Go", "type": "MISC", "score": 0.9, "start": 0, "end": 2}],
				"topics": [{"topic": "technology", "score": 0.8}],
				"language": "en",
				"word_count": 42,
				"readability_score": 65.5,
				"keywords": ["go", "cache"]
			}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Timeout: 2 * time.Second})
		result, err := client.Analyze(context.Background(), "abc", "Title", "Body text")
		require.NoError(t, err)

		assert.Equal(t, "abc", received.ContentID)
		assert.Contains(t, received.Text, "Title")
		assert.Contains(t, received.Text, "Body text")
		assert.True(t, received.AnalyzeSentiment)

		assert.Equal(t, "abc", result.ContentID)
		require.NotNil(t, result.Sentiment)
		assert.Equal(t, "POSITIVE", result.Sentiment.Label)
		assert.Equal(t, "en", result.Language)
		assert.Equal(t, 42, result.WordCount)
		assert.InDelta(t, 65.5, result.Readability, 0.001)
		assert.Len(t, result.Entities, 1)
		assert.False(t, result.AnalyzedAt.IsZero())
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Timeout: 2 * time.Second})
		_, err := client.Analyze(context.Background(), "abc", "t", "b")
		assert.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})
		_, err := client.Analyze(ctx, "abc", "t", "b")
		assert.Error(t, err)
	})
}
