// Package llm provides a provider-independent client for chat completions.
// The simulation engine drives three separate model roles through it (the
// tested agent, the simulated user, and the judges), so the request shape
// carries everything any of them needs: system prompt, history, tool schemas,
// sampling knobs, and an optional forced tool.
package llm

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry in the conversation sent to a provider.
type Message struct {
	Role    Role
	Content string

	// ToolCalls is set on assistant messages that requested tool execution.
	ToolCalls []ToolCall

	// ToolCallID and ToolName are set on tool result messages.
	ToolCallID string
	ToolName   string
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]interface{}
}

// ToolSchema describes one tool exposed to the model. Parameters holds the
// JSON Schema for the tool's arguments.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Request is a provider-independent completion request.
type Request struct {
	Model       string
	System      string
	Messages    []Message
	Tools       []ToolSchema
	Temperature float64
	MaxTokens   int

	// ForceTool names a tool the model must call. Empty leaves tool choice
	// to the model.
	ForceTool string
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is a provider-independent completion result.
type Response struct {
	Content    string
	ToolCalls  []ToolCall
	StopReason string
	Usage      Usage
}
