package sim

import (
	"fmt"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

// AgentPersona configures the tested agent side of a conversation.
type AgentPersona struct {
	Name         string
	SystemPrompt string
	Model        string
	Temperature  float64
	MaxTokens    int
	Tools        []llm.ToolSchema
}

// UserPersona configures the simulated user: how it behaves, how much it
// knows, and what it is trying to get done.
type UserPersona struct {
	Personality    string
	ExpertiseLevel string
	Goal           string
	Model          string
}

// SystemPrompt renders the instructions for the user-simulator model. The
// guidelines include the sentinel tokens the orchestrator watches for, so
// the simulated user is the one who decides when the conversation ends.
func (p UserPersona) SystemPrompt() string {
	return fmt.Sprintf(`You are simulating a real user in a conversation with an AI assistant.

Your persona:
- Personality: %s
- Expertise level: %s
- Goal: %s

Guidelines:
- Stay in character throughout the entire conversation
- React naturally to the assistant's responses
- If the assistant solves your problem, say %s in your message
- If the assistant is unhelpful after 3+ turns, say %s in your message
- Keep responses concise (1-3 sentences typically)
- Ask follow-up questions if the answer is unclear
- Do NOT break character or acknowledge you are simulating`,
		p.Personality, p.ExpertiseLevel, p.Goal, GoalSentinel, FrustratedSentinel)
}

// ToolSchemasFromMaps decodes tool schemas stored as generic JSON on an
// agent config row. Entries without a name are dropped.
func ToolSchemasFromMaps(maps []map[string]interface{}) []llm.ToolSchema {
	schemas := make([]llm.ToolSchema, 0, len(maps))
	for _, m := range maps {
		name, _ := m["name"].(string)
		if name == "" {
			continue
		}
		schema := llm.ToolSchema{Name: name}
		if desc, ok := m["description"].(string); ok {
			schema.Description = desc
		}
		if params, ok := m["parameters"].(map[string]interface{}); ok {
			schema.Parameters = params
		}
		schemas = append(schemas, schema)
	}
	return schemas
}
