package eval

import (
	"context"
	"errors"
	"sync"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

// scriptedClient replays canned responses and records every request so
// tests can assert on the prompts the evaluators build.
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

func toolCallStep(name string, args map[string]interface{}) scriptStep {
	return scriptStep{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{{ID: "call_1", Name: name, Arguments: args}},
	}}
}

func contentStep(content string) scriptStep {
	return scriptStep{resp: &llm.Response{Content: content}}
}
