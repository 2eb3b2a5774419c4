package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentprobe/agentprobe/pkg/models"
	"github.com/agentprobe/agentprobe/pkg/services"
)

// createScenarioHandler handles POST /api/v1/scenarios.
func (s *Server) createScenarioHandler(c *gin.Context) {
	var req SaveScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	scenario, err := s.scenarios.Create(c.Request.Context(), saveScenarioInput(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewScenarioResponse(scenario))
}

// listScenariosHandler handles GET /api/v1/scenarios. Supports filtering
// by difficulty.
func (s *Server) listScenariosHandler(c *gin.Context) {
	page, pageSize := parsePagination(c)

	scenarios, total, err := s.scenarios.List(c.Request.Context(), page, pageSize, c.Query("difficulty"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.ScenarioResponse, 0, len(scenarios))
	for _, sc := range scenarios {
		items = append(items, models.NewScenarioResponse(sc))
	}
	c.JSON(http.StatusOK, models.ScenarioListResponse{
		Items: items,
		Meta:  models.ListMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

// getScenarioHandler handles GET /api/v1/scenarios/:id.
func (s *Server) getScenarioHandler(c *gin.Context) {
	scenario, err := s.scenarios.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewScenarioResponse(scenario))
}

// updateScenarioHandler handles PUT /api/v1/scenarios/:id.
func (s *Server) updateScenarioHandler(c *gin.Context) {
	var req SaveScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	scenario, err := s.scenarios.Update(c.Request.Context(), c.Param("id"), saveScenarioInput(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewScenarioResponse(scenario))
}

// deleteScenarioHandler handles DELETE /api/v1/scenarios/:id. Scenarios
// referenced by a run cannot be deleted.
func (s *Server) deleteScenarioHandler(c *gin.Context) {
	if err := s.scenarios.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func saveScenarioInput(req SaveScenarioRequest) services.SaveScenarioInput {
	return services.SaveScenarioInput{
		Name:                 req.Name,
		Description:          req.Description,
		Goal:                 req.Goal,
		UserPersonality:      req.UserPersonality,
		ExpertiseLevel:       req.ExpertiseLevel,
		InitialMessage:       req.InitialMessage,
		TurnsTemplate:        req.TurnsTemplate,
		ExpectedToolSequence: req.ExpectedToolSequence,
		Difficulty:           req.Difficulty,
		Tags:                 req.Tags,
		MaxTurns:             req.MaxTurns,
	}
}
