// Package models defines the API-facing data transfer objects and their
// converters from ent entities. Handlers return these types; services
// return ent entities for CRUD and models types for composite reads.
package models

import (
	"time"

	"github.com/agentprobe/agentprobe/ent"
)

// ListMeta carries pagination info for list responses.
type ListMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// AgentConfigResponse is the API shape of an agent configuration.
type AgentConfigResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description,omitempty"`
	ModelID      string                   `json:"model_id"`
	SystemPrompt string                   `json:"system_prompt"`
	Temperature  float64                  `json:"temperature"`
	MaxTokens    int                      `json:"max_tokens"`
	Tools        []map[string]interface{} `json:"tools,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// NewAgentConfigResponse converts an ent entity.
func NewAgentConfigResponse(e *ent.AgentConfig) *AgentConfigResponse {
	return &AgentConfigResponse{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		ModelID:      e.ModelID,
		SystemPrompt: e.SystemPrompt,
		Temperature:  e.Temperature,
		MaxTokens:    e.MaxTokens,
		Tools:        e.Tools,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// AgentConfigListResponse is a paginated agent config listing.
type AgentConfigListResponse struct {
	Items []*AgentConfigResponse `json:"items"`
	Meta  ListMeta               `json:"meta"`
}

// ScenarioResponse is the API shape of a scenario.
type ScenarioResponse struct {
	ID                   string                   `json:"id"`
	Name                 string                   `json:"name"`
	Description          string                   `json:"description,omitempty"`
	Goal                 string                   `json:"goal"`
	UserPersonality      string                   `json:"user_personality"`
	ExpertiseLevel       string                   `json:"expertise_level"`
	InitialMessage       *string                  `json:"initial_message,omitempty"`
	TurnsTemplate        []map[string]interface{} `json:"turns_template,omitempty"`
	ExpectedToolSequence []string                 `json:"expected_tool_sequence,omitempty"`
	Difficulty           string                   `json:"difficulty"`
	Tags                 []string                 `json:"tags,omitempty"`
	MaxTurns             int                      `json:"max_turns"`
	CreatedAt            time.Time                `json:"created_at"`
}

// NewScenarioResponse converts an ent entity.
func NewScenarioResponse(e *ent.Scenario) *ScenarioResponse {
	return &ScenarioResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		Description:          e.Description,
		Goal:                 e.Goal,
		UserPersonality:      e.UserPersonality,
		ExpertiseLevel:       string(e.ExpertiseLevel),
		InitialMessage:       e.InitialMessage,
		TurnsTemplate:        e.TurnsTemplate,
		ExpectedToolSequence: e.ExpectedToolSequence,
		Difficulty:           string(e.Difficulty),
		Tags:                 e.Tags,
		MaxTurns:             e.MaxTurns,
		CreatedAt:            e.CreatedAt,
	}
}

// ScenarioListResponse is a paginated scenario listing.
type ScenarioListResponse struct {
	Items []*ScenarioResponse `json:"items"`
	Meta  ListMeta            `json:"meta"`
}

// RubricResponse is the API shape of one rubric version.
type RubricResponse struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Version    int                      `json:"version"`
	ParentID   *string                  `json:"parent_id,omitempty"`
	Dimensions []map[string]interface{} `json:"dimensions"`
	IsDefault  bool                     `json:"is_default"`
	CreatedAt  time.Time                `json:"created_at"`
}

// NewRubricResponse converts an ent entity.
func NewRubricResponse(e *ent.Rubric) *RubricResponse {
	return &RubricResponse{
		ID:         e.ID,
		Name:       e.Name,
		Version:    e.Version,
		ParentID:   e.ParentID,
		Dimensions: e.Dimensions,
		IsDefault:  e.IsDefault,
		CreatedAt:  e.CreatedAt,
	}
}

// RubricListResponse is a paginated rubric listing (latest version per
// name).
type RubricListResponse struct {
	Items []*RubricResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// EvalRunResponse is the API shape of an eval run.
type EvalRunResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name,omitempty"`
	AgentConfigID    string                 `json:"agent_config_id"`
	ScenarioID       string                 `json:"scenario_id"`
	RubricID         *string                `json:"rubric_id,omitempty"`
	NumConversations int                    `json:"num_conversations"`
	Status           string                 `json:"status"`
	ErrorMessage     *string                `json:"error_message,omitempty"`
	Environment      map[string]interface{} `json:"environment,omitempty"`
	StartedAt        *time.Time             `json:"started_at,omitempty"`
	CompletedAt      *time.Time             `json:"completed_at,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// NewEvalRunResponse converts an ent entity.
func NewEvalRunResponse(e *ent.EvalRun) *EvalRunResponse {
	return &EvalRunResponse{
		ID:               e.ID,
		Name:             e.Name,
		AgentConfigID:    e.AgentConfigID,
		ScenarioID:       e.ScenarioID,
		RubricID:         e.RubricID,
		NumConversations: e.NumConversations,
		Status:           string(e.Status),
		ErrorMessage:     e.ErrorMessage,
		Environment:      e.Environment,
		StartedAt:        e.StartedAt,
		CompletedAt:      e.CompletedAt,
		CreatedAt:        e.CreatedAt,
	}
}

// EvalRunListResponse is a paginated run listing.
type EvalRunListResponse struct {
	Items []*EvalRunResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

// ConversationSummary is the list-view shape of a conversation, without
// the transcript.
type ConversationSummary struct {
	ID                string     `json:"id"`
	EvalRunID         string     `json:"eval_run_id"`
	Sequence          int        `json:"sequence"`
	Status            string     `json:"status"`
	TurnCount         int        `json:"turn_count"`
	TotalTokens       int        `json:"total_tokens"`
	TotalInputTokens  int        `json:"total_input_tokens"`
	TotalOutputTokens int        `json:"total_output_tokens"`
	TotalLatencyMS    int        `json:"total_latency_ms"`
	ErrorMessage      *string    `json:"error_message,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NewConversationSummary converts an ent entity, dropping the transcript.
func NewConversationSummary(e *ent.Conversation) *ConversationSummary {
	return &ConversationSummary{
		ID:                e.ID,
		EvalRunID:         e.EvalRunID,
		Sequence:          e.Sequence,
		Status:            string(e.Status),
		TurnCount:         e.TurnCount,
		TotalTokens:       e.TotalTokens,
		TotalInputTokens:  e.TotalInputTokens,
		TotalOutputTokens: e.TotalOutputTokens,
		TotalLatencyMS:    e.TotalLatencyMs,
		ErrorMessage:      e.ErrorMessage,
		CompletedAt:       e.CompletedAt,
		CreatedAt:         e.CreatedAt,
	}
}

// ConversationDetail is the full conversation including its transcript.
type ConversationDetail struct {
	ConversationSummary
	Turns []map[string]interface{} `json:"turns"`
}

// NewConversationDetail converts an ent entity with its transcript.
func NewConversationDetail(e *ent.Conversation) *ConversationDetail {
	return &ConversationDetail{
		ConversationSummary: *NewConversationSummary(e),
		Turns:               e.Turns,
	}
}

// EvaluationResponse is the API shape of one evaluation.
type EvaluationResponse struct {
	ID             string                   `json:"id"`
	ConversationID string                   `json:"conversation_id"`
	EvalRunID      string                   `json:"eval_run_id"`
	EvaluatorType  string                   `json:"evaluator_type"`
	Scores         map[string]float64       `json:"scores"`
	OverallScore   float64                  `json:"overall_score"`
	Reasoning      string                   `json:"reasoning,omitempty"`
	TurnScores     []map[string]interface{} `json:"turn_scores,omitempty"`
	Metadata       map[string]interface{}   `json:"metadata,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

// NewEvaluationResponse converts an ent entity.
func NewEvaluationResponse(e *ent.Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		EvalRunID:      e.EvalRunID,
		EvaluatorType:  string(e.EvaluatorType),
		Scores:         e.Scores,
		OverallScore:   e.OverallScore,
		Reasoning:      e.Reasoning,
		TurnScores:     e.TurnScores,
		Metadata:       e.Metadata,
		CreatedAt:      e.CreatedAt,
	}
}
