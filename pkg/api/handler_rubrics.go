package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentprobe/agentprobe/pkg/models"
	"github.com/agentprobe/agentprobe/pkg/services"
)

// createRubricHandler handles POST /api/v1/rubrics. Stores version 1 of a
// new rubric.
func (s *Server) createRubricHandler(c *gin.Context) {
	var req CreateRubricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	rubric, err := s.rubrics.Create(c.Request.Context(), services.SaveRubricInput{
		Name:       req.Name,
		Dimensions: req.Dimensions,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewRubricResponse(rubric))
}

// listRubricsHandler handles GET /api/v1/rubrics. Returns the latest
// version per rubric name.
func (s *Server) listRubricsHandler(c *gin.Context) {
	page, pageSize := parsePagination(c)

	rubrics, total, err := s.rubrics.List(c.Request.Context(), page, pageSize)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.RubricResponse, 0, len(rubrics))
	for _, r := range rubrics {
		items = append(items, models.NewRubricResponse(r))
	}
	c.JSON(http.StatusOK, models.RubricListResponse{
		Items: items,
		Meta:  models.ListMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

// getRubricHandler handles GET /api/v1/rubrics/:id.
func (s *Server) getRubricHandler(c *gin.Context) {
	rubric, err := s.rubrics.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewRubricResponse(rubric))
}

// newRubricVersionHandler handles POST /api/v1/rubrics/:id/versions.
// Rubrics are immutable; this inserts version+1 with the given dimensions
// and parent_id pointing at :id.
func (s *Server) newRubricVersionHandler(c *gin.Context) {
	var req NewRubricVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	rubric, err := s.rubrics.NewVersion(c.Request.Context(), c.Param("id"), req.Dimensions)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewRubricResponse(rubric))
}

// listRubricVersionsHandler handles GET /api/v1/rubrics/:id/versions.
// Returns all versions sharing the rubric's name, oldest first.
func (s *Server) listRubricVersionsHandler(c *gin.Context) {
	rubric, err := s.rubrics.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	versions, err := s.rubrics.ListVersions(c.Request.Context(), rubric.Name)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]*models.RubricResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, models.NewRubricResponse(v))
	}
	c.JSON(http.StatusOK, gin.H{"name": rubric.Name, "versions": items})
}
