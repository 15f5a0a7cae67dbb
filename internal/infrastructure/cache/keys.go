package cache

import (
	"fmt"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

const (
	// ListNamespace groups all cached list variants for bulk invalidation.
	ListNamespace = "content:list"
)

// ItemKey returns the cache key for a single content item.
func ItemKey(id string) string {
	return "content:" + id
}

// ListKey returns the cache key for a list request. The key covers the full
// filter, sort and pagination signature so distinct requests never collide.
func ListKey(f domain.ListFilter) string {
	return fmt.Sprintf("%s:st=%s:cat=%s:auth=%s:q=%s:sort=%s.%s:p=%d:l=%d",
		ListNamespace, f.Status, f.CategoryID, f.AuthorID, f.Query, f.SortBy, f.SortDir, f.Page, f.Limit)
}
