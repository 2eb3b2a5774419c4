package sim

import (
	"context"
	"errors"
	"sync"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

// scriptedClient replays a fixed sequence of model responses and records
// every request it receives.
type scriptedClient struct {
	mu       sync.Mutex
	steps    []scriptStep
	requests []llm.Request
}

type scriptStep struct {
	resp *llm.Response
	err  error
}

func (c *scriptedClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if len(c.steps) == 0 {
		return nil, errors.New("unexpected model call")
	}
	step := c.steps[0]
	c.steps = c.steps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.resp, nil
}

func (c *scriptedClient) Close() error { return nil }

func (c *scriptedClient) recorded() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]llm.Request(nil), c.requests...)
}

func textStep(content string, in, out int) scriptStep {
	return scriptStep{resp: &llm.Response{
		Content:    content,
		StopReason: "end_turn",
		Usage:      llm.Usage{InputTokens: in, OutputTokens: out},
	}}
}

func toolStep(content string, calls []llm.ToolCall, in, out int) scriptStep {
	return scriptStep{resp: &llm.Response{
		Content:    content,
		ToolCalls:  calls,
		StopReason: "tool_use",
		Usage:      llm.Usage{InputTokens: in, OutputTokens: out},
	}}
}

func errStep(err error) scriptStep {
	return scriptStep{err: err}
}
