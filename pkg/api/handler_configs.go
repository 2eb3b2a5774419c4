package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentprobe/agentprobe/pkg/models"
	"github.com/agentprobe/agentprobe/pkg/services"
)

// createAgentConfigHandler handles POST /api/v1/agent-configs.
func (s *Server) createAgentConfigHandler(c *gin.Context) {
	var req SaveAgentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	cfg, err := s.agentConfigs.Create(c.Request.Context(), saveAgentConfigInput(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewAgentConfigResponse(cfg))
}

// listAgentConfigsHandler handles GET /api/v1/agent-configs.
func (s *Server) listAgentConfigsHandler(c *gin.Context) {
	page, pageSize := parsePagination(c)

	configs, total, err := s.agentConfigs.List(c.Request.Context(), page, pageSize)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.AgentConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		items = append(items, models.NewAgentConfigResponse(cfg))
	}
	c.JSON(http.StatusOK, models.AgentConfigListResponse{
		Items: items,
		Meta:  models.ListMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

// getAgentConfigHandler handles GET /api/v1/agent-configs/:id.
func (s *Server) getAgentConfigHandler(c *gin.Context) {
	cfg, err := s.agentConfigs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAgentConfigResponse(cfg))
}

// updateAgentConfigHandler handles PUT /api/v1/agent-configs/:id. Empty
// fields keep their stored values.
func (s *Server) updateAgentConfigHandler(c *gin.Context) {
	var req SaveAgentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	cfg, err := s.agentConfigs.Update(c.Request.Context(), c.Param("id"), saveAgentConfigInput(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewAgentConfigResponse(cfg))
}

// deleteAgentConfigHandler handles DELETE /api/v1/agent-configs/:id.
// Configs referenced by a run cannot be deleted.
func (s *Server) deleteAgentConfigHandler(c *gin.Context) {
	if err := s.agentConfigs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func saveAgentConfigInput(req SaveAgentConfigRequest) services.SaveAgentConfigInput {
	return services.SaveAgentConfigInput{
		Name:         req.Name,
		Description:  req.Description,
		ModelID:      req.ModelID,
		SystemPrompt: req.SystemPrompt,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		Tools:        req.Tools,
	}
}
