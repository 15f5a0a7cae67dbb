package repository

import (
	"context"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

// ContentRepository defines methods for content data access. The repository is
// the only writer to the authoritative store; the cache and search index are
// projections maintained elsewhere.
type ContentRepository interface {
	// Create inserts a new content item with its tags connected-or-created.
	Create(ctx context.Context, c *domain.Content) error
	// GetByID fetches one item; soft-deleted items are reported as not found.
	GetByID(ctx context.Context, id string) (*domain.Content, error)
	// List returns a filtered, sorted page of items plus the total count.
	List(ctx context.Context, f domain.ListFilter) ([]domain.Content, int, error)
	// Update applies the input in one transaction: the pre-update snapshot is
	// appended to the version history before the row changes, and version is
	// incremented by exactly one. A supplied tag set fully replaces the old one.
	Update(ctx context.Context, id string, in domain.UpdateInput, editorID string) (*domain.Content, error)
	// SoftDelete marks the item deleted; the row is retained.
	SoftDelete(ctx context.Context, id string) (*domain.Content, error)
	// Publish transitions the item to published and stamps published_at.
	Publish(ctx context.Context, id string) (*domain.Content, error)
	// RecordView appends a view record and bumps the denormalized counter.
	RecordView(ctx context.Context, contentID, viewerID string) error
	// ListVersions returns the version history, newest first.
	ListVersions(ctx context.Context, contentID string) ([]domain.ContentVersion, error)
}

// AnalysisRepository defines methods for persisted analysis results.
type AnalysisRepository interface {
	// Save upserts the analysis result for a content id.
	Save(ctx context.Context, result *domain.AnalysisResult) error
	// Get returns the stored result, or ErrNotFound when none exists yet.
	Get(ctx context.Context, contentID string) (*domain.AnalysisResult, error)
}
