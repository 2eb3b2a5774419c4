package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// leaderboardHandler handles GET /api/v1/leaderboard. Serves the cached
// ELO ranking when fresh, recomputing from stored matches otherwise.
func (s *Server) leaderboardHandler(c *gin.Context) {
	board, err := s.stats.Leaderboard(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// runSummaryHandler handles GET /api/v1/eval-runs/:id/summary.
func (s *Server) runSummaryHandler(c *gin.Context) {
	summary, err := s.stats.RunSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// runReliabilityHandler handles GET /api/v1/eval-runs/:id/reliability.
// Reports Krippendorff's alpha across the run's evaluator types.
func (s *Server) runReliabilityHandler(c *gin.Context) {
	report, err := s.stats.InterRaterReliability(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// runCalibrationHandler handles GET /api/v1/eval-runs/:id/calibration.
// Compares model-judge scores against human scores; bins defaults to 10.
func (s *Server) runCalibrationHandler(c *gin.Context) {
	bins, _ := strconv.Atoi(c.DefaultQuery("bins", "10"))

	report, err := s.stats.Calibration(c.Request.Context(), c.Param("id"), bins)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
