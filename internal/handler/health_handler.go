package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db     *pgxpool.Pool
	cache  Pinger
	search Pinger
}

// NewHealthHandler creates a new HealthHandler. Cache and search may be nil
// when a deployment runs without them.
func NewHealthHandler(db *pgxpool.Pool, cache, search Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, search: search}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check. The database is
// authoritative: its failure makes the service unhealthy, while cache and
// search degradation is reported but does not flip the overall status.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	services := map[string]string{
		"database": "healthy",
	}

	dbHealthy := true
	if err := h.db.Ping(ctx); err != nil {
		services["database"] = "unhealthy"
		dbHealthy = false
	}

	if h.cache != nil {
		services["cache"] = "healthy"
		if err := h.cache.Ping(ctx); err != nil {
			services["cache"] = "unhealthy"
		}
	}
	if h.search != nil {
		services["search"] = "healthy"
		if err := h.search.Ping(ctx); err != nil {
			services["search"] = "unhealthy"
		}
	}

	if !dbHealthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
