package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const readyTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type OpsController struct {
	db     Pinger
	logger *zap.Logger
}

func NewOpsController(r gin.IRoutes, db Pinger, logger *zap.Logger) *OpsController {
	oc := &OpsController{db: db, logger: logger}

	r.GET(RouteHome, oc.HomeHandler)
	r.GET(RouteHealth, oc.HealthHandler)
	r.GET(RouteReady, oc.ReadyHandler)
	r.GET(RouteMetrics, gin.WrapH(promhttp.Handler()))

	return oc
}

func (oc *OpsController) HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to API!"})
}

func (oc *OpsController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (oc *OpsController) ReadyHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := oc.db.Ping(ctx); err != nil {
		oc.logger.Warn("readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
