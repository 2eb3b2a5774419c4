// Package api exposes the REST surface: configuration CRUD, run lifecycle,
// conversation and evaluation reads, human and pairwise scoring, and the
// statistics endpoints. Handlers bind and validate HTTP input, delegate to
// the services layer, and translate service errors via mapServiceError.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agentprobe/agentprobe/pkg/config"
	"github.com/agentprobe/agentprobe/pkg/database"
	"github.com/agentprobe/agentprobe/pkg/queue"
	"github.com/agentprobe/agentprobe/pkg/services"
)

// PoolHealthReporter reports worker pool health for the healthz endpoint.
// Implemented by the queue's WorkerPool; nil in API-only deployments.
type PoolHealthReporter interface {
	Health() *queue.PoolHealth
}

// Server holds the HTTP dependencies and registers the routes.
type Server struct {
	db           *database.Client
	cfg          *config.ServerConfig
	agentConfigs *services.AgentConfigService
	scenarios    *services.ScenarioService
	rubrics      *services.RubricService
	runs         *services.RunService
	evaluations  *services.EvaluationService
	stats        *services.StatsService
	pool         PoolHealthReporter
}

// NewServer creates a new API server. pool may be nil.
func NewServer(
	db *database.Client,
	cfg *config.ServerConfig,
	agentConfigs *services.AgentConfigService,
	scenarios *services.ScenarioService,
	rubrics *services.RubricService,
	runs *services.RunService,
	evaluations *services.EvaluationService,
	stats *services.StatsService,
	pool PoolHealthReporter,
) *Server {
	if cfg == nil {
		cfg = config.LoadServerConfigFromEnv()
	}
	return &Server{
		db:           db,
		cfg:          cfg,
		agentConfigs: agentConfigs,
		scenarios:    scenarios,
		rubrics:      rubrics,
		runs:         runs,
		evaluations:  evaluations,
		stats:        stats,
		pool:         pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())

	r.GET("/healthz", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	if s.cfg.APIKey != "" {
		v1.Use(apiKeyAuth(s.cfg.APIKey))
	}

	v1.POST("/agent-configs", s.createAgentConfigHandler)
	v1.GET("/agent-configs", s.listAgentConfigsHandler)
	v1.GET("/agent-configs/:id", s.getAgentConfigHandler)
	v1.PUT("/agent-configs/:id", s.updateAgentConfigHandler)
	v1.DELETE("/agent-configs/:id", s.deleteAgentConfigHandler)

	v1.POST("/scenarios", s.createScenarioHandler)
	v1.GET("/scenarios", s.listScenariosHandler)
	v1.GET("/scenarios/:id", s.getScenarioHandler)
	v1.PUT("/scenarios/:id", s.updateScenarioHandler)
	v1.DELETE("/scenarios/:id", s.deleteScenarioHandler)

	v1.POST("/rubrics", s.createRubricHandler)
	v1.GET("/rubrics", s.listRubricsHandler)
	v1.GET("/rubrics/:id", s.getRubricHandler)
	v1.POST("/rubrics/:id/versions", s.newRubricVersionHandler)
	v1.GET("/rubrics/:id/versions", s.listRubricVersionsHandler)

	v1.POST("/eval-runs", s.createRunHandler)
	v1.GET("/eval-runs", s.listRunsHandler)
	v1.GET("/eval-runs/:id", s.getRunHandler)
	v1.POST("/eval-runs/:id/cancel", s.cancelRunHandler)
	v1.GET("/eval-runs/:id/conversations", s.listRunConversationsHandler)
	v1.GET("/eval-runs/:id/summary", s.runSummaryHandler)
	v1.GET("/eval-runs/:id/reliability", s.runReliabilityHandler)
	v1.GET("/eval-runs/:id/calibration", s.runCalibrationHandler)

	v1.GET("/conversations/:id", s.getConversationHandler)
	v1.GET("/conversations/:id/evaluations", s.listConversationEvaluationsHandler)

	v1.POST("/evaluations/human", s.humanEvaluationHandler)
	v1.POST("/evaluations/pairwise", s.pairwiseComparisonHandler)

	v1.GET("/leaderboard", s.leaderboardHandler)

	return r
}

// HTTPServer wraps the router in an http.Server with the configured
// listen address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
}

// healthHandler reports database reachability and, when a worker pool runs
// in this process, its health. Degraded dependencies yield 503.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}
	healthy := true

	dbHealth, err := s.db.Health(ctx)
	body["database"] = dbHealth
	if err != nil {
		healthy = false
		body["database_error"] = err.Error()
	}

	if s.pool != nil {
		pool := s.pool.Health()
		body["pool"] = pool
		if !pool.IsHealthy {
			healthy = false
		}
	}

	if !healthy {
		body["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
