package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentprobe/agentprobe/pkg/models"
	"github.com/agentprobe/agentprobe/pkg/services"
)

// createRunHandler handles POST /api/v1/eval-runs. The run is stored in
// pending status and returned with 202; a worker claims it asynchronously.
func (s *Server) createRunHandler(c *gin.Context) {
	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	run, err := s.runs.Create(c.Request.Context(), services.CreateRunInput{
		Name:             req.Name,
		AgentConfigID:    req.AgentConfigID,
		ScenarioID:       req.ScenarioID,
		RubricID:         req.RubricID,
		NumConversations: req.NumConversations,
		Environment:      req.Environment,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, models.NewEvalRunResponse(run))
}

// listRunsHandler handles GET /api/v1/eval-runs. Supports filtering by
// status, agent_config_id, and scenario_id.
func (s *Server) listRunsHandler(c *gin.Context) {
	page, pageSize := parsePagination(c)

	runs, total, err := s.runs.List(c.Request.Context(), services.RunListParams{
		Page:          page,
		PageSize:      pageSize,
		Status:        c.Query("status"),
		AgentConfigID: c.Query("agent_config_id"),
		ScenarioID:    c.Query("scenario_id"),
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.EvalRunResponse, 0, len(runs))
	for _, run := range runs {
		items = append(items, models.NewEvalRunResponse(run))
	}
	c.JSON(http.StatusOK, models.EvalRunListResponse{
		Items: items,
		Meta:  models.ListMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

// getRunHandler handles GET /api/v1/eval-runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	run, err := s.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewEvalRunResponse(run))
}

// cancelRunHandler handles POST /api/v1/eval-runs/:id/cancel. Terminal
// runs are not cancellable and yield 409.
func (s *Server) cancelRunHandler(c *gin.Context) {
	run, err := s.runs.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewEvalRunResponse(run))
}

// listRunConversationsHandler handles GET /api/v1/eval-runs/:id/conversations.
// Returns summaries without transcripts, ordered by sequence.
func (s *Server) listRunConversationsHandler(c *gin.Context) {
	conversations, err := s.runs.ListConversations(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		items = append(items, models.NewConversationSummary(conv))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// getConversationHandler handles GET /api/v1/conversations/:id. Returns
// the full conversation including its transcript.
func (s *Server) getConversationHandler(c *gin.Context) {
	conv, err := s.runs.GetConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewConversationDetail(conv))
}

// listConversationEvaluationsHandler handles
// GET /api/v1/conversations/:id/evaluations.
func (s *Server) listConversationEvaluationsHandler(c *gin.Context) {
	evaluations, err := s.runs.ListEvaluations(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.EvaluationResponse, 0, len(evaluations))
	for _, record := range evaluations {
		items = append(items, models.NewEvaluationResponse(record))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
