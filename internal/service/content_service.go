package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/access"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/infrastructure/cache"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/logger"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/metrics"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/repository"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/validator"
)

const (
	// DefaultCacheTTL is the lifetime of cached reads.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultQueryTimeout bounds a single primary-store call.
	DefaultQueryTimeout = 10 * time.Second

	// DefaultSearchLimit is the page size when a search request omits one.
	DefaultSearchLimit = 10
	// MaxSearchLimit caps the search page size.
	MaxSearchLimit = 100
)

// Side-effect kinds, used as metric labels and log fields.
const (
	effectAnalyze     = "analyze"
	effectIndex       = "search_index"
	effectIndexDelete = "search_delete"
	effectNotify      = "notify"
	effectView        = "record_view"
)

// ContentService orchestrates the content lifecycle across the primary store,
// cache, search index and downstream services. The primary store alone decides
// whether an operation succeeds; everything else is a projection that is
// refreshed best-effort after the write commits, with cache invalidation as
// the final step.
type ContentService struct {
	repo         repository.ContentRepository
	analysisRepo repository.AnalysisRepository
	cache        Cache
	search       SearchIndex
	analyzer     Analyzer
	notifier     Notifier
	effects      EffectRunner
	validator    *validator.Validator
	policy       access.Policy

	cacheTTL     time.Duration
	queryTimeout time.Duration
}

// NewContentService creates a ContentService.
func NewContentService(
	repo repository.ContentRepository,
	analysisRepo repository.AnalysisRepository,
	c Cache,
	search SearchIndex,
	analyzer Analyzer,
	notifier Notifier,
	effects EffectRunner,
	v *validator.Validator,
	policy access.Policy,
	cacheTTL time.Duration,
	queryTimeout time.Duration,
) *ContentService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &ContentService{
		repo:         repo,
		analysisRepo: analysisRepo,
		cache:        c,
		search:       search,
		analyzer:     analyzer,
		notifier:     notifier,
		effects:      effects,
		validator:    v,
		policy:       policy,
		cacheTTL:     cacheTTL,
		queryTimeout: queryTimeout,
	}
}

// storeCtx bounds one primary-store call. Side effects run under the
// dispatcher's own per-attempt timeout instead.
func (s *ContentService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Close shuts down the side-effect workers.
func (s *ContentService) Close() {
	s.effects.Close()
}

// Create validates the input and inserts a new draft at version 1, then fans
// out analysis, indexing and notification without blocking the caller.
func (s *ContentService) Create(ctx context.Context, actor domain.Actor, in domain.CreateInput) (*domain.Content, error) {
	if !s.policy.Allows(actor, access.CapCreate) {
		return nil, domain.ErrForbidden
	}
	if err := s.validator.ValidateCreate(&in); err != nil {
		return nil, err
	}

	c := &domain.Content{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Body:       in.Body,
		Status:     domain.StatusDraft,
		Version:    1,
		AuthorID:   actor.ID,
		CategoryID: in.CategoryID,
		Tags:       domain.DedupeTags(in.Tags),
		Metadata:   in.Metadata,
	}
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}

	qctx, cancel := s.storeCtx(ctx)
	err := s.repo.Create(qctx, c)
	cancel()
	if err != nil {
		metrics.ObserveMutation("create", "failure")
		return nil, domain.NewStoreError("create content", err)
	}
	metrics.ObserveMutation("create", "success")
	logger.WithContentID(c.ID).Info("Content created",
		"author_id", c.AuthorID,
		"version", c.Version,
	)

	s.dispatchAnalysis(c)
	s.dispatchIndex(c)
	s.dispatchNotify("content.created", c)

	s.invalidateLists(ctx)

	return c, nil
}

// Get returns one item, serving from cache when possible. Every successful
// read records a view asynchronously.
func (s *ContentService) Get(ctx context.Context, id, viewerID string) (*domain.Content, error) {
	key := cache.ItemKey(id)

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		metrics.ObserveCacheOp("get", "error")
		s.logDependency("cache", "get", id, err)
	} else if ok {
		var c domain.Content
		if err := json.Unmarshal(data, &c); err == nil {
			metrics.ObserveCacheOp("get", "hit")
			s.dispatchView(id, viewerID)
			return &c, nil
		}
		metrics.ObserveCacheOp("get", "error")
	} else {
		metrics.ObserveCacheOp("get", "miss")
	}

	qctx, cancel := s.storeCtx(ctx)
	c, err := s.repo.GetByID(qctx, id)
	cancel()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(c); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			metrics.ObserveCacheOp("set", "error")
			s.logDependency("cache", "set", id, err)
		} else {
			metrics.ObserveCacheOp("set", "success")
		}
	}

	s.dispatchView(id, viewerID)
	return c, nil
}

// List returns a filtered page from the primary store, cached per full filter
// signature under the list namespace.
func (s *ContentService) List(ctx context.Context, filter domain.ListFilter) (*domain.Page, error) {
	if err := s.validator.ValidateListFilter(&filter); err != nil {
		return nil, err
	}

	key := cache.ListKey(filter)
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		metrics.ObserveCacheOp("get", "error")
		s.logDependency("cache", "get", "", err)
	} else if ok {
		var page domain.Page
		if err := json.Unmarshal(data, &page); err == nil {
			metrics.ObserveCacheOp("get", "hit")
			return &page, nil
		}
		metrics.ObserveCacheOp("get", "error")
	} else {
		metrics.ObserveCacheOp("get", "miss")
	}

	qctx, cancel := s.storeCtx(ctx)
	items, total, err := s.repo.List(qctx, filter)
	cancel()
	if err != nil {
		return nil, domain.NewStoreError("list contents", err)
	}
	page := domain.NewPage(items, total, filter.Page, filter.Limit)

	if data, err := json.Marshal(page); err == nil {
		if err := s.cache.SetNamespaced(ctx, cache.ListNamespace, key, data, s.cacheTTL); err != nil {
			metrics.ObserveCacheOp("set", "error")
			s.logDependency("cache", "set", "", err)
		} else {
			metrics.ObserveCacheOp("set", "success")
		}
	}

	return page, nil
}

// Update applies a partial update. The version history snapshot and the
// version bump commit atomically with the row change; projections follow.
func (s *ContentService) Update(ctx context.Context, actor domain.Actor, id string, in domain.UpdateInput) (*domain.Content, error) {
	if err := s.validator.ValidateUpdate(&in); err != nil {
		return nil, err
	}

	qctx, cancel := s.storeCtx(ctx)
	current, err := s.repo.GetByID(qctx, id)
	cancel()
	if err != nil {
		return nil, err
	}
	if !access.CanModify(s.policy, actor, current.AuthorID, access.CapUpdateAny) {
		return nil, domain.ErrForbidden
	}

	if in.Tags != nil {
		in.Tags = domain.DedupeTags(in.Tags)
		if in.Tags == nil {
			in.Tags = []string{}
		}
	}

	qctx, cancel = s.storeCtx(ctx)
	updated, err := s.repo.Update(qctx, id, in, actor.ID)
	cancel()
	if err != nil {
		metrics.ObserveMutation("update", "failure")
		if err == domain.ErrNotFound {
			return nil, err
		}
		return nil, domain.NewStoreError("update content", err)
	}
	metrics.ObserveMutation("update", "success")
	logger.WithContentID(id).Info("Content updated",
		"editor_id", actor.ID,
		"version", updated.Version,
	)

	if in.Title != nil || in.Body != nil {
		s.dispatchAnalysis(updated)
	}
	s.dispatchIndex(updated)
	s.dispatchNotify("content.updated", updated)

	s.invalidateItem(ctx, id)

	return updated, nil
}

// Delete soft-deletes the item. The row is kept for the version history; the
// search document is removed so the item stops matching queries.
func (s *ContentService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	qctx, cancel := s.storeCtx(ctx)
	current, err := s.repo.GetByID(qctx, id)
	cancel()
	if err != nil {
		return err
	}
	if !access.CanModify(s.policy, actor, current.AuthorID, access.CapDeleteAny) {
		return domain.ErrForbidden
	}

	qctx, cancel = s.storeCtx(ctx)
	deleted, err := s.repo.SoftDelete(qctx, id)
	cancel()
	if err != nil {
		metrics.ObserveMutation("delete", "failure")
		if err == domain.ErrNotFound {
			return err
		}
		return domain.NewStoreError("delete content", err)
	}
	metrics.ObserveMutation("delete", "success")
	logger.WithContentID(id).Info("Content deleted",
		"actor_id", actor.ID,
	)

	s.dispatchSearchDelete(id)
	s.dispatchNotify("content.deleted", deleted)

	s.invalidateItem(ctx, id)

	return nil
}

// Publish transitions the item to published. The search document is refreshed
// for the status change and downstream consumers are notified once; the text
// has not changed, so no re-analysis is triggered.
func (s *ContentService) Publish(ctx context.Context, actor domain.Actor, id string) (*domain.Content, error) {
	qctx, cancel := s.storeCtx(ctx)
	current, err := s.repo.GetByID(qctx, id)
	cancel()
	if err != nil {
		return nil, err
	}
	if !access.CanModify(s.policy, actor, current.AuthorID, access.CapPublishAny) {
		return nil, domain.ErrForbidden
	}

	qctx, cancel = s.storeCtx(ctx)
	published, err := s.repo.Publish(qctx, id)
	cancel()
	if err != nil {
		metrics.ObserveMutation("publish", "failure")
		if err == domain.ErrNotFound {
			return nil, err
		}
		return nil, domain.NewStoreError("publish content", err)
	}
	metrics.ObserveMutation("publish", "success")
	logger.WithContentID(id).Info("Content published",
		"actor_id", actor.ID,
	)

	s.dispatchIndex(published)
	s.dispatchNotify("content.published", published)

	s.invalidateItem(ctx, id)

	return published, nil
}

// Search queries the search index and returns results in the same page
// envelope as List.
func (s *ContentService) Search(ctx context.Context, q domain.SearchQuery) (*domain.Page, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultSearchLimit
	}
	if q.Limit > MaxSearchLimit {
		q.Limit = MaxSearchLimit
	}

	result, err := s.search.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search contents: %w", err)
	}

	items := make([]domain.Content, 0, len(result.Hits))
	for i := range result.Hits {
		items = append(items, result.Hits[i].ToContent())
	}
	return domain.NewPage(items, result.Total, q.Page, q.Limit), nil
}

// Versions returns the item's version history, newest first.
func (s *ContentService) Versions(ctx context.Context, id string) ([]domain.ContentVersion, error) {
	qctx, cancel := s.storeCtx(ctx)
	_, err := s.repo.GetByID(qctx, id)
	cancel()
	if err != nil {
		return nil, err
	}
	qctx, cancel = s.storeCtx(ctx)
	versions, err := s.repo.ListVersions(qctx, id)
	cancel()
	if err != nil {
		return nil, domain.NewStoreError("list versions", err)
	}
	return versions, nil
}

// Analytics returns engagement counters plus the latest analysis snapshot.
// A missing analysis is normal and reported as an absent field.
func (s *ContentService) Analytics(ctx context.Context, id string) (*domain.ContentAnalytics, error) {
	qctx, cancel := s.storeCtx(ctx)
	c, err := s.repo.GetByID(qctx, id)
	cancel()
	if err != nil {
		return nil, err
	}

	analytics := &domain.ContentAnalytics{
		ContentID: c.ID,
		Views:     c.Views,
		Likes:     c.Likes,
		Shares:    c.Shares,
		Comments:  c.Comments,
	}

	qctx, cancel = s.storeCtx(ctx)
	analysis, err := s.analysisRepo.Get(qctx, id)
	cancel()
	if err != nil {
		if err != domain.ErrNotFound {
			s.logDependency("analysis_store", "get", id, err)
		}
		return analytics, nil
	}
	analytics.Analysis = analysis

	return analytics, nil
}

// dispatchAnalysis queues text analysis and persists the result when it lands.
func (s *ContentService) dispatchAnalysis(c *domain.Content) {
	id, title, body := c.ID, c.Title, c.Body
	s.effects.Dispatch(effectAnalyze, id, func(ctx context.Context) error {
		result, err := s.analyzer.Analyze(ctx, id, title, body)
		if err != nil {
			return err
		}
		return s.analysisRepo.Save(ctx, result)
	})
}

// dispatchIndex queues a search index upsert of the item's current state.
// Rapid successive mutations collapse safely: each upsert carries the full
// document, so the last one to land wins.
func (s *ContentService) dispatchIndex(c *domain.Content) {
	doc := c.ToSearchDocument()
	s.effects.Dispatch(effectIndex, c.ID, func(ctx context.Context) error {
		return s.search.Index(ctx, doc)
	})
}

// dispatchSearchDelete queues removal of the item's search document.
func (s *ContentService) dispatchSearchDelete(id string) {
	s.effects.Dispatch(effectIndexDelete, id, func(ctx context.Context) error {
		return s.search.Delete(ctx, id)
	})
}

// dispatchNotify queues one lifecycle event for downstream consumers.
func (s *ContentService) dispatchNotify(event string, c *domain.Content) {
	payload := map[string]any{
		"content_id": c.ID,
		"title":      c.Title,
		"status":     string(c.Status),
		"version":    c.Version,
		"author_id":  c.AuthorID,
	}
	s.effects.Dispatch(effectNotify, c.ID, func(ctx context.Context) error {
		return s.notifier.Notify(ctx, event, payload)
	})
}

// dispatchView queues the view record for a successful read.
func (s *ContentService) dispatchView(contentID, viewerID string) {
	s.effects.Dispatch(effectView, contentID, func(ctx context.Context) error {
		return s.repo.RecordView(ctx, contentID, viewerID)
	})
}

// invalidateItem drops the item's cache entry and every cached list. Runs
// after the write and its queued projections, as the final step of the
// mutation; failures leave entries to expire by TTL.
func (s *ContentService) invalidateItem(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.ItemKey(id)); err != nil {
		metrics.ObserveCacheOp("invalidate", "error")
		s.logDependency("cache", "invalidate item", id, err)
	} else {
		metrics.ObserveCacheOp("invalidate", "success")
	}
	s.invalidateLists(ctx)
}

// invalidateLists drops every cached list variant.
func (s *ContentService) invalidateLists(ctx context.Context) {
	if err := s.cache.DeleteNamespace(ctx, cache.ListNamespace); err != nil {
		metrics.ObserveCacheOp("invalidate", "error")
		s.logDependency("cache", "invalidate lists", "", err)
	} else {
		metrics.ObserveCacheOp("invalidate", "success")
	}
}

// logDependency records a best-effort dependency failure without surfacing it.
// The failure never reaches the caller, so the error-level log is the only
// place it is visible.
func (s *ContentService) logDependency(system, op, contentID string, err error) {
	depErr := &domain.DependencyError{System: system, Op: op, ContentID: contentID, Err: err}
	logger.Error("Dependency operation failed", "error", depErr.Error())
}
