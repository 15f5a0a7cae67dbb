// Package search provides the Elasticsearch-backed search index client. The
// index holds a denormalized projection of content; ranking is entirely the
// index's concern.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

// Config holds the configuration for the Elasticsearch client.
type Config struct {
	Addresses []string
	Index     string
}

// ElasticIndex implements the orchestrator's search contract.
type ElasticIndex struct {
	client *elasticsearch.Client
	index  string
}

// NewElasticIndex creates an ElasticIndex client.
func NewElasticIndex(cfg Config) (*ElasticIndex, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &ElasticIndex{client: client, index: cfg.Index}, nil
}

// Index upserts a content document. Create and update share this path since
// an index call replaces any existing document with the same id.
func (e *ElasticIndex) Index(ctx context.Context, doc *domain.SearchDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal search document: %w", err)
	}

	res, err := e.client.Index(e.index, bytes.NewReader(body),
		e.client.Index.WithDocumentID(doc.ID),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index document %s: %w", doc.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index document %s: %s", doc.ID, res.String())
	}
	return nil
}

// Delete removes a document from the index. A missing document is not an
// error: a soft-deleted item may never have been indexed.
func (e *ElasticIndex) Delete(ctx context.Context, id string) error {
	res, err := e.client.Delete(e.index, id,
		e.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete document %s: %s", id, res.String())
	}
	return nil
}

// esHit mirrors the subset of the Elasticsearch response envelope we consume.
type esHit struct {
	Source domain.SearchDocument `json:"_source"`
}

type esResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []esHit `json:"hits"`
	} `json:"hits"`
}

// Search runs a full-text query with optional term filters and returns the
// matching documents plus total count.
func (e *ElasticIndex) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResultSet, error) {
	body, err := json.Marshal(buildQuery(q))
	if err != nil {
		return nil, fmt.Errorf("marshal search query: %w", err)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	from := (page - 1) * q.Limit

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(body)),
		e.client.Search.WithFrom(from),
		e.client.Search.WithSize(q.Limit),
		e.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	var parsed esResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := &domain.SearchResultSet{
		Hits:  make([]domain.SearchDocument, 0, len(parsed.Hits.Hits)),
		Total: parsed.Hits.Total.Value,
	}
	for _, h := range parsed.Hits.Hits {
		out.Hits = append(out.Hits, h.Source)
	}
	return out, nil
}

// buildQuery assembles the bool query: a multi_match over title and body,
// with term filters for the structured fields.
func buildQuery(q domain.SearchQuery) map[string]any {
	boolQuery := map[string]any{}

	if q.Query != "" {
		boolQuery["must"] = []any{
			map[string]any{
				"multi_match": map[string]any{
					"query":  q.Query,
					"fields": []string{"title^2", "body"},
				},
			},
		}
	} else {
		boolQuery["must"] = []any{map[string]any{"match_all": map[string]any{}}}
	}

	var filters []any
	if q.Status != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"status": q.Status}})
	}
	if q.CategoryID != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"category_id": q.CategoryID}})
	}
	if q.AuthorID != "" {
		filters = append(filters, map[string]any{"term": map[string]any{"author_id": q.AuthorID}})
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
	}
}

// Ping verifies connectivity for health checks.
func (e *ElasticIndex) Ping(ctx context.Context) error {
	res, err := e.client.Ping(e.client.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch ping: %s", res.String())
	}
	return nil
}
