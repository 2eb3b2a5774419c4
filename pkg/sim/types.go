// Package sim implements the simulation engine: a conversation orchestrator
// that drives a tested agent against a simulated user, with a tool sandbox,
// optional adversarial injection, and token/turn/time budgets.
package sim

import (
	"encoding/json"
	"fmt"
)

// Turn roles as recorded in a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Terminal conversation statuses.
const (
	StatusCompleted    = "completed"
	StatusGoalAchieved = "goal_achieved"
	StatusFrustrated   = "frustrated"
	StatusFailed       = "failed"
)

// Sentinel tokens the simulated user emits to end a conversation. The
// orchestrator checks for them before the agent is called, so a sentinel
// turn is always the last turn of the transcript.
const (
	GoalSentinel       = "[GOAL_ACHIEVED]"
	FrustratedSentinel = "[FRUSTRATED]"
)

// ToolCall is one tool invocation requested by the tested agent.
type ToolCall struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ToolResult is the sandbox's answer to a single tool call. Results are
// stored in the same order as the calls that produced them.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error"`
}

// Turn is one entry in a conversation transcript. Latency and token counts
// are only populated on assistant turns; user turns carry content only.
type Turn struct {
	Role         string       `json:"role"`
	Content      string       `json:"content"`
	ToolCalls    []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults  []ToolResult `json:"tool_results,omitempty"`
	LatencyMS    int          `json:"latency_ms,omitempty"`
	InputTokens  int          `json:"input_tokens,omitempty"`
	OutputTokens int          `json:"output_tokens,omitempty"`

	// ExpectedResponse is a gold answer copied from the scenario template
	// onto user turns before reference evaluation. Never set during
	// simulation.
	ExpectedResponse string `json:"expected_response,omitempty"`
}

// ConversationResult is the outcome of one orchestrated conversation.
// TurnCount counts user turns only, so it reflects how many exchanges the
// simulated user initiated rather than raw transcript length.
type ConversationResult struct {
	Turns             []Turn `json:"turns"`
	TurnCount         int    `json:"turn_count"`
	TotalTokens       int    `json:"total_tokens"`
	TotalInputTokens  int    `json:"total_input_tokens"`
	TotalOutputTokens int    `json:"total_output_tokens"`
	TotalLatencyMS    int    `json:"total_latency_ms"`
	Status            string `json:"status"`
	ErrorMessage      string `json:"error_message,omitempty"`
}

// TurnsToMaps converts a transcript to the generic JSON shape stored on a
// conversation row.
func TurnsToMaps(turns []Turn) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(turns)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turns: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert turns: %w", err)
	}
	return out, nil
}

// TurnsFromMaps is the inverse of TurnsToMaps, used when loading a stored
// transcript for evaluation.
func TurnsFromMaps(maps []map[string]interface{}) ([]Turn, error) {
	raw, err := json.Marshal(maps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stored turns: %w", err)
	}
	var out []Turn
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode stored turns: %w", err)
	}
	return out, nil
}
