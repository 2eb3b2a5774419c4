package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"
)

type cannedResponse struct {
	name     string
	response string
}

// Canned payloads for common tool names. Lookup tries an exact name match
// first, then treats each entry name as a substring of the requested tool
// name, in this order. Anything else gets a generic acknowledgment.
var defaultToolResponses = []cannedResponse{
	{"search", `{"results": [{"title": "Example Result", "snippet": "This is a simulated search result with relevant information."}]}`},
	{"get_weather", `{"temperature": 72, "condition": "sunny", "humidity": 45}`},
	{"run_code", `{"output": "Hello, World!", "exit_code": 0}`},
	{"read_file", `{"content": "# Example file content\nThis is simulated file data."}`},
	{"write_file", `{"status": "success", "bytes_written": 256}`},
}

// Sandbox intercepts the tested agent's tool calls and returns simulated
// results instead of executing anything. Latency and failures are injected
// per the environment so evaluations can cover degraded conditions.
type Sandbox struct {
	env       Environment
	responses []cannedResponse
	rng       *rand.Rand
}

// NewSandbox builds a sandbox for one conversation. Custom responses
// override or extend the canned set by tool name. A nil rng gets a fresh
// pseudo-random source; tests pass a seeded one.
func NewSandbox(env Environment, custom map[string]string, rng *rand.Rand) *Sandbox {
	responses := append([]cannedResponse(nil), defaultToolResponses...)
	if len(custom) > 0 {
		names := make([]string, 0, len(custom))
		for name := range custom {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			replaced := false
			for i := range responses {
				if responses[i].name == name {
					responses[i].response = custom[name]
					replaced = true
					break
				}
			}
			if !replaced {
				responses = append(responses, cannedResponse{name: name, response: custom[name]})
			}
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sandbox{env: env, responses: responses, rng: rng}
}

// Execute simulates one tool call: sleep the configured latency, roll for a
// simulated failure, then answer from the response table.
func (s *Sandbox) Execute(ctx context.Context, call ToolCall) (ToolResult, error) {
	if s.env.ToolLatency > 0 {
		timer := time.NewTimer(s.env.ToolLatency)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ToolResult{}, ctx.Err()
		}
	}

	if s.env.ToolFailureRate > 0 && s.rng.Float64() < s.env.ToolFailureRate {
		payload, err := json.Marshal(map[string]string{
			"error":   "Tool execution failed",
			"message": fmt.Sprintf("Simulated failure for tool '%s'", call.Name),
		})
		if err != nil {
			return ToolResult{}, fmt.Errorf("failed to encode failure payload: %w", err)
		}
		return ToolResult{ToolCallID: call.ID, Content: string(payload), IsError: true}, nil
	}

	content, err := s.respond(call)
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{ToolCallID: call.ID, Content: content}, nil
}

func (s *Sandbox) respond(call ToolCall) (string, error) {
	for _, r := range s.responses {
		if r.name == call.Name {
			return r.response, nil
		}
	}
	for _, r := range s.responses {
		if strings.Contains(call.Name, r.name) {
			return r.response, nil
		}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"status":         "success",
		"tool":           call.Name,
		"input_received": call.Arguments,
		"message":        fmt.Sprintf("Tool '%s' executed successfully.", call.Name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode tool acknowledgment: %w", err)
	}
	return string(payload), nil
}
