package api

// SaveAgentConfigRequest is the HTTP request body for POST and PUT
// /api/v1/agent-configs.
type SaveAgentConfigRequest struct {
	Name         string                   `json:"name"`
	Description  string                   `json:"description,omitempty"`
	ModelID      string                   `json:"model_id"`
	SystemPrompt string                   `json:"system_prompt"`
	Temperature  *float64                 `json:"temperature,omitempty"`
	MaxTokens    *int                     `json:"max_tokens,omitempty"`
	Tools        []map[string]interface{} `json:"tools,omitempty"`
}

// SaveScenarioRequest is the HTTP request body for POST and PUT
// /api/v1/scenarios.
type SaveScenarioRequest struct {
	Name                 string                   `json:"name"`
	Description          string                   `json:"description,omitempty"`
	Goal                 string                   `json:"goal"`
	UserPersonality      string                   `json:"user_personality,omitempty"`
	ExpertiseLevel       string                   `json:"expertise_level,omitempty"`
	InitialMessage       *string                  `json:"initial_message,omitempty"`
	TurnsTemplate        []map[string]interface{} `json:"turns_template,omitempty"`
	ExpectedToolSequence []string                 `json:"expected_tool_sequence,omitempty"`
	Difficulty           string                   `json:"difficulty,omitempty"`
	Tags                 []string                 `json:"tags,omitempty"`
	MaxTurns             *int                     `json:"max_turns,omitempty"`
}

// CreateRubricRequest is the HTTP request body for POST /api/v1/rubrics.
type CreateRubricRequest struct {
	Name       string                   `json:"name"`
	Dimensions []map[string]interface{} `json:"dimensions"`
}

// NewRubricVersionRequest is the HTTP request body for
// POST /api/v1/rubrics/:id/versions.
type NewRubricVersionRequest struct {
	Dimensions []map[string]interface{} `json:"dimensions"`
}

// CreateRunRequest is the HTTP request body for POST /api/v1/eval-runs.
// The run is stored pending and claimed asynchronously by the worker pool.
type CreateRunRequest struct {
	Name             string                 `json:"name,omitempty"`
	AgentConfigID    string                 `json:"agent_config_id"`
	ScenarioID       string                 `json:"scenario_id"`
	RubricID         *string                `json:"rubric_id,omitempty"`
	NumConversations int                    `json:"num_conversations"`
	Environment      map[string]interface{} `json:"environment,omitempty"`
}

// HumanEvaluationRequest is the HTTP request body for
// POST /api/v1/evaluations/human.
type HumanEvaluationRequest struct {
	ConversationID string             `json:"conversation_id"`
	Scores         map[string]float64 `json:"scores"`
	OverallScore   *float64           `json:"overall_score,omitempty"`
	Reasoning      string             `json:"reasoning,omitempty"`
}

// PairwiseComparisonRequest is the HTTP request body for
// POST /api/v1/evaluations/pairwise.
type PairwiseComparisonRequest struct {
	ConversationIDA string `json:"conversation_id_a"`
	ConversationIDB string `json:"conversation_id_b"`
}
