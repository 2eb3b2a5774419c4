package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

const (
	userSimTemperature = 0.8
	userSimMaxTokens   = 500
)

// UserSimulator generates the simulated user's side of the conversation
// with an LLM, except for an optional scripted opening message.
type UserSimulator struct {
	client         llm.Client
	persona        UserPersona
	initialMessage string
}

// NewUserSimulator builds a simulator for one conversation. If
// initialMessage is non-empty it is used verbatim for turn 0 without a
// model call.
func NewUserSimulator(client llm.Client, persona UserPersona, initialMessage string) *UserSimulator {
	return &UserSimulator{client: client, persona: persona, initialMessage: initialMessage}
}

// Generate produces the next user message given the transcript so far.
// The history is presented role-swapped: the simulator's own past messages
// become "assistant" and the tested agent's replies become "user", so the
// persona model experiences the conversation from the user's seat.
func (u *UserSimulator) Generate(ctx context.Context, history []Turn, turnIndex int) (string, error) {
	if turnIndex == 0 && u.initialMessage != "" {
		return u.initialMessage, nil
	}

	messages := make([]llm.Message, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case RoleUser:
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: turn.Content})
		case RoleAssistant:
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: turn.Content})
		}
	}
	if len(messages) == 0 {
		messages = append(messages, llm.Message{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Start a conversation. Your goal: %s", u.persona.Goal),
		})
	}

	resp, err := u.client.Complete(ctx, llm.Request{
		Model:       u.persona.Model,
		System:      u.persona.SystemPrompt(),
		Messages:    messages,
		Temperature: userSimTemperature,
		MaxTokens:   userSimMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("user simulator call failed: %w", err)
	}

	slog.Debug("User simulator generated message", "turn", turnIndex, "length", len(resp.Content))
	return resp.Content, nil
}
