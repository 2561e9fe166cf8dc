// Package handlers holds the operational probe endpoints that sit outside
// the versioned API surface.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// HealthHandler answers the liveness probe. A 200 here only means the
// process is up; dependency state is the readiness probe's job.
type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now().UTC()}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "elearning-api",
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// HealthDependenciesHandler answers the readiness probe by pinging the
// document store and the cache. Either failing flips the response to 503 so
// the orchestrator stops routing traffic here.
type HealthDependenciesHandler struct {
	db    *mongo.Database
	cache *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, cache *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, cache: cache}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	deps := map[string]dependencyStatus{
		"mongodb": probe(func() error {
			return h.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		}),
		"redis": probe(func() error {
			return h.cache.Ping(ctx).Err()
		}),
	}

	status, code := "ok", http.StatusOK
	for _, d := range deps {
		if d.Status != "ok" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(code, readinessResponse{Status: status, Dependencies: deps})
}

func probe(check func() error) dependencyStatus {
	if err := check(); err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
