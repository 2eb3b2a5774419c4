package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentprobe/agentprobe/pkg/models"
	"github.com/agentprobe/agentprobe/pkg/services"
)

// humanEvaluationHandler handles POST /api/v1/evaluations/human. Records a
// manually scored evaluation for a conversation.
func (s *Server) humanEvaluationHandler(c *gin.Context) {
	var req HumanEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	record, err := s.evaluations.RecordHumanEvaluation(c.Request.Context(), services.HumanEvaluationInput{
		ConversationID: req.ConversationID,
		Scores:         req.Scores,
		OverallScore:   req.OverallScore,
		Reasoning:      req.Reasoning,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewEvaluationResponse(record))
}

// pairwiseComparisonHandler handles POST /api/v1/evaluations/pairwise.
// Runs the pairwise judge on two conversations and stores the verdict as a
// match for the leaderboard.
func (s *Server) pairwiseComparisonHandler(c *gin.Context) {
	var req PairwiseComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.ConversationIDA == "" || req.ConversationIDB == "" {
		badRequest(c, "conversation_id_a and conversation_id_b are required")
		return
	}

	result, err := s.evaluations.PairwiseCompare(c.Request.Context(), req.ConversationIDA, req.ConversationIDB)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
