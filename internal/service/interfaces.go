package service

import (
	"context"
	"time"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

// ContentServiceInterface defines the content lifecycle operations.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, in domain.CreateInput) (*domain.Content, error)
	Get(ctx context.Context, id, viewerID string) (*domain.Content, error)
	List(ctx context.Context, filter domain.ListFilter) (*domain.Page, error)
	Update(ctx context.Context, actor domain.Actor, id string, in domain.UpdateInput) (*domain.Content, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Publish(ctx context.Context, actor domain.Actor, id string) (*domain.Content, error)
	Search(ctx context.Context, q domain.SearchQuery) (*domain.Page, error)
	Versions(ctx context.Context, id string) ([]domain.ContentVersion, error)
	Analytics(ctx context.Context, id string) (*domain.ContentAnalytics, error)
	// Close shuts down background side-effect workers.
	Close()
}

// Cache is the caching surface the service depends on.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	SetNamespaced(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteNamespace(ctx context.Context, namespace string) error
}

// SearchIndex is the search surface the service depends on.
type SearchIndex interface {
	Index(ctx context.Context, doc *domain.SearchDocument) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResultSet, error)
}

// Analyzer produces an analysis result for a content item's text.
type Analyzer interface {
	Analyze(ctx context.Context, contentID, title, body string) (*domain.AnalysisResult, error)
}

// Notifier delivers lifecycle events to downstream consumers.
type Notifier interface {
	Notify(ctx context.Context, name string, payload map[string]any) error
}

// EffectRunner executes side effects detached from the request that
// triggered them. Dispatch never blocks the caller on the effect itself.
type EffectRunner interface {
	Dispatch(kind, contentID string, fn func(context.Context) error)
	Close()
}
