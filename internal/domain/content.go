package domain

import (
	"math"
	"strings"
	"time"
)

// Status represents the lifecycle state of a content item.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

// ValidStatuses contains all valid content statuses.
var ValidStatuses = []Status{StatusDraft, StatusPublished, StatusArchived, StatusDeleted}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Content represents a content item. The database row is authoritative;
// cache and search copies are projections that converge to it.
type Content struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Status      Status         `json:"status"`
	Version     int            `json:"version"`
	AuthorID    string         `json:"author_id"`
	CategoryID  *string        `json:"category_id,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Views       int            `json:"views"`
	Likes       int            `json:"likes"`
	Shares      int            `json:"shares"`
	Comments    int            `json:"comments"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ContentVersion is an immutable snapshot of a content item taken before an
// update commits. Append-only; never mutated or deleted.
type ContentVersion struct {
	ID        string    `json:"id"`
	ContentID string    `json:"content_id"`
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateInput holds the fields accepted when creating content.
type CreateInput struct {
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Tags       []string       `json:"tags,omitempty"`
	CategoryID *string        `json:"category_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// UpdateInput holds the fields accepted when updating content. Nil pointers
// mean "leave unchanged"; a non-nil Tags slice fully replaces the tag set.
type UpdateInput struct {
	Title      *string        `json:"title,omitempty"`
	Body       *string        `json:"body,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	CategoryID *string        `json:"category_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Status     *string        `json:"status,omitempty"`
}

// Actor identifies the authenticated principal performing an operation.
// Authentication itself happens upstream; the gateway injects identity headers.
type Actor struct {
	ID   string
	Role string
}

// SortDirection is the direction of a list sort.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListFilter describes filtering, sorting and pagination for content lists.
type ListFilter struct {
	Status     string
	CategoryID string
	AuthorID   string
	Query      string
	SortBy     string
	SortDir    SortDirection
	Page       int
	Limit      int
}

// Offset returns the row offset for the current page.
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// Page is the envelope for paginated content results. List and Search both
// return it so callers cannot distinguish the two paths by shape.
type Page struct {
	Items []Content `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}

// NewPage builds a Page, computing Pages as ceil(total/limit).
func NewPage(items []Content, total, page, limit int) *Page {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	if items == nil {
		items = []Content{}
	}
	return &Page{Items: items, Total: total, Page: page, Limit: limit, Pages: pages}
}

// SearchQuery describes a full-text search request.
type SearchQuery struct {
	Query      string
	Status     string
	CategoryID string
	AuthorID   string
	Page       int
	Limit      int
}

// SearchDocument is the denormalized projection of a content item held in the
// search index. It is kept eventually consistent with the primary store via
// explicit index/delete calls after each mutation.
type SearchDocument struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Status      string     `json:"status"`
	AuthorID    string     `json:"author_id"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SearchResultSet is the raw result returned by the search index.
type SearchResultSet struct {
	Hits  []SearchDocument `json:"hits"`
	Total int              `json:"total"`
}

// ToSearchDocument projects a content item for indexing.
func (c *Content) ToSearchDocument() *SearchDocument {
	return &SearchDocument{
		ID:          c.ID,
		Title:       c.Title,
		Body:        c.Body,
		Status:      string(c.Status),
		AuthorID:    c.AuthorID,
		CategoryID:  c.CategoryID,
		Tags:        c.Tags,
		PublishedAt: c.PublishedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToContent maps a search document back into the list item shape.
func (d *SearchDocument) ToContent() Content {
	return Content{
		ID:          d.ID,
		Title:       d.Title,
		Body:        d.Body,
		Status:      Status(d.Status),
		AuthorID:    d.AuthorID,
		CategoryID:  d.CategoryID,
		Tags:        d.Tags,
		PublishedAt: d.PublishedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ContentAnalytics bundles engagement counters with the latest analysis
// snapshot for the analytics endpoint. Analysis may be nil; its absence is
// normal while the ML service catches up.
type ContentAnalytics struct {
	ContentID string          `json:"content_id"`
	Views     int             `json:"views"`
	Likes     int             `json:"likes"`
	Shares    int             `json:"shares"`
	Comments  int             `json:"comments"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
}

// DedupeTags normalizes a tag list: trims whitespace, drops empties and
// removes duplicates while preserving first-seen order.
func DedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
