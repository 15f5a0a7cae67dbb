package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/logger"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/middleware"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/service"
)

// Identity headers injected by the upstream gateway.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// ContentHandler handles content lifecycle HTTP requests.
type ContentHandler struct {
	contentService service.ContentServiceInterface
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Response is the envelope for all content API responses.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page window of a list or search response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func pageResponse(page *domain.Page) Response {
	return Response{
		Success: true,
		Data:    page.Items,
		Pagination: &Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.Pages,
		},
	}
}

// actor extracts the caller identity from the gateway headers.
func actor(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetHeader(HeaderUserID),
		Role: c.GetHeader(HeaderUserRole),
	}
}

// requireActor extracts the caller identity, failing the request with 401
// when the gateway did not inject one. Mutations always require an actor.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	a := actor(c)
	if a.ID == "" {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "authentication required"})
		return domain.Actor{}, false
	}
	return a, true
}

// respondError maps service errors onto HTTP statuses. Internal details never
// leak: anything unexpected becomes a generic 500.
func respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, Response{Success: false, Message: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Message: "content not found"})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "internal server error"})
	}
}

// CreateContent handles POST /api/v1/content
func (h *ContentHandler) CreateContent(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	var in domain.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid request body"})
		return
	}

	content, err := h.contentService.Create(c.Request.Context(), a, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Data: content, Message: "content created"})
}

// GetContent handles GET /api/v1/content/:id
func (h *ContentHandler) GetContent(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "id must be a valid UUID"})
		return
	}

	content, err := h.contentService.Get(c.Request.Context(), id, actor(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: content})
}

// ListContent handles GET /api/v1/content
func (h *ContentHandler) ListContent(c *gin.Context) {
	filter := domain.ListFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
		AuthorID:   c.Query("author_id"),
		Query:      c.Query("q"),
		SortBy:     c.Query("sort_by"),
		SortDir:    domain.SortDirection(c.Query("sort_dir")),
		Page:       intQuery(c, "page"),
		Limit:      intQuery(c, "limit"),
	}

	page, err := h.contentService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResponse(page))
}

// UpdateContent handles PUT /api/v1/content/:id
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "id must be a valid UUID"})
		return
	}

	var in domain.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid request body"})
		return
	}

	content, err := h.contentService.Update(c.Request.Context(), a, id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: content, Message: "content updated"})
}

// DeleteContent handles DELETE /api/v1/content/:id
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "id must be a valid UUID"})
		return
	}

	if err := h.contentService.Delete(c.Request.Context(), a, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "content deleted"})
}

// PublishContent handles POST /api/v1/content/:id/publish
func (h *ContentHandler) PublishContent(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "id must be a valid UUID"})
		return
	}

	content, err := h.contentService.Publish(c.Request.Context(), a, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: content, Message: "content published"})
}

// SearchContent handles GET /api/v1/content/search
func (h *ContentHandler) SearchContent(c *gin.Context) {
	q := domain.SearchQuery{
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
		AuthorID:   c.Query("author_id"),
		Page:       intQuery(c, "page"),
		Limit:      intQuery(c, "limit"),
	}
	if q.Query == "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "q is required"})
		return
	}

	page, err := h.contentService.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResponse(page))
}

// GetVersions handles GET /api/v1/content/:id/versions
func (h *ContentHandler) GetVersions(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "id must be a valid UUID"})
		return
	}

	versions, err := h.contentService.Versions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if versions == nil {
		versions = []domain.ContentVersion{}
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: versions})
}

// GetAnalytics handles GET /api/v1/content/:id/analytics
func (h *ContentHandler) GetAnalytics(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "id must be a valid UUID"})
		return
	}

	analytics, err := h.contentService.Analytics(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: analytics})
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
