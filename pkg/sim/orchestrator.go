package sim

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/agentprobe/agentprobe/pkg/llm"
)

// Orchestrator lifecycle states prior to a terminal conversation status.
const (
	StateIdle    = "idle"
	StateRunning = "running"
)

// ErrAlreadyStarted is returned when Run is called more than once on the
// same orchestrator.
var ErrAlreadyStarted = errors.New("orchestrator has already run")

// Orchestrator drives one conversation between the tested agent and the
// simulated user, routing tool calls through the sandbox and enforcing the
// environment's budgets. An orchestrator is single use.
type Orchestrator struct {
	client   llm.Client
	agent    AgentPersona
	userSim  *UserSimulator
	sandbox  *Sandbox
	injector Injector
	env      Environment

	mu    sync.Mutex
	state string
}

// NewOrchestrator wires a conversation together. A nil injector disables
// adversarial injection.
func NewOrchestrator(client llm.Client, agent AgentPersona, userSim *UserSimulator, sandbox *Sandbox, injector Injector, env Environment) *Orchestrator {
	if injector == nil {
		injector = NoopInjector{}
	}
	return &Orchestrator{
		client:   client,
		agent:    agent,
		userSim:  userSim,
		sandbox:  sandbox,
		injector: injector,
		env:      env,
		state:    StateIdle,
	}
}

// State reports the lifecycle state: idle before Run, running during it,
// then the terminal conversation status. Terminal states never change.
func (o *Orchestrator) State() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateIdle {
		return ErrAlreadyStarted
	}
	o.state = StateRunning
	return nil
}

func (o *Orchestrator) terminate(status string) {
	o.mu.Lock()
	o.state = status
	o.mu.Unlock()
}

// Run drives the conversation to a terminal status and returns the result.
// Conversation failures do not surface as an error here: they are recorded
// on the result as status "failed" with the partial transcript retained.
// The only error Run itself returns is ErrAlreadyStarted.
//
// Cancellation is cooperative. The context is polled at turn boundaries;
// in-flight model and sandbox calls run on a detached context and finish
// before the loop exits with status "failed" and error "cancelled".
func (o *Orchestrator) Run(ctx context.Context) (*ConversationResult, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}

	log := slog.With("agent", o.agent.Name)
	log.Info("Simulation started", "max_turns", o.env.MaxTurns, "max_total_tokens", o.env.MaxTotalTokens)

	callCtx := context.WithoutCancel(ctx)
	start := time.Now()

	status := StatusCompleted
	errorMessage := ""
	var (
		turns        []Turn
		totalInput   int
		totalOutput  int
		totalLatency int
	)

	for turnIndex := 0; turnIndex < o.env.MaxTurns; turnIndex++ {
		if ctx.Err() != nil {
			status = StatusFailed
			errorMessage = "cancelled"
			log.Info("Simulation cancelled", "turn", turnIndex)
			break
		}

		var userMessage string
		if o.injector.ShouldInject(turnIndex) {
			userMessage = o.injector.Generate(turnIndex)
			log.Debug("Adversarial message injected", "turn", turnIndex)
		} else {
			msg, err := o.userSim.Generate(callCtx, turns, turnIndex)
			if err != nil {
				status = StatusFailed
				errorMessage = err.Error()
				log.Error("User simulation failed", "turn", turnIndex, "error", err)
				break
			}
			userMessage = msg
		}

		turns = append(turns, Turn{Role: RoleUser, Content: userMessage})

		// Sentinels end the conversation before the agent sees the message.
		if strings.Contains(userMessage, GoalSentinel) {
			status = StatusGoalAchieved
			log.Info("Goal achieved", "turn", turnIndex)
			break
		}
		if strings.Contains(userMessage, FrustratedSentinel) {
			status = StatusFrustrated
			log.Info("User frustrated", "turn", turnIndex)
			break
		}

		agentStart := time.Now()
		resp, err := o.client.Complete(callCtx, llm.Request{
			Model:       o.agent.Model,
			System:      o.agent.SystemPrompt,
			Messages:    turnsToMessages(turns),
			Tools:       o.agent.Tools,
			Temperature: o.agent.Temperature,
			MaxTokens:   o.agent.MaxTokens,
		})
		if err != nil {
			status = StatusFailed
			errorMessage = err.Error()
			log.Error("Agent call failed", "turn", turnIndex, "error", err)
			break
		}
		latency := int(time.Since(agentStart).Milliseconds())

		if len(resp.ToolCalls) > 0 {
			calls := toolCallsFromResponse(resp.ToolCalls)
			results, err := o.executeToolCalls(callCtx, calls)
			if err != nil {
				status = StatusFailed
				errorMessage = err.Error()
				log.Error("Tool execution failed", "turn", turnIndex, "error", err)
				break
			}

			turns = append(turns, Turn{
				Role:         RoleAssistant,
				Content:      resp.Content,
				ToolCalls:    calls,
				ToolResults:  results,
				LatencyMS:    latency,
				InputTokens:  resp.Usage.InputTokens,
				OutputTokens: resp.Usage.OutputTokens,
			})

			// The followup asks the agent to speak to the tool results.
			// No tools are offered, so it cannot chain further calls.
			followupMessages := turnsToMessages(turns)
			for _, r := range results {
				followupMessages = append(followupMessages, llm.Message{
					Role:       llm.RoleTool,
					Content:    r.Content,
					ToolCallID: r.ToolCallID,
				})
			}

			followupStart := time.Now()
			followup, err := o.client.Complete(callCtx, llm.Request{
				Model:       o.agent.Model,
				System:      o.agent.SystemPrompt,
				Messages:    followupMessages,
				Temperature: o.agent.Temperature,
				MaxTokens:   o.agent.MaxTokens,
			})
			if err != nil {
				status = StatusFailed
				errorMessage = err.Error()
				log.Error("Agent followup failed", "turn", turnIndex, "error", err)
				break
			}
			followupLatency := int(time.Since(followupStart).Milliseconds())

			turns = append(turns, Turn{
				Role:         RoleAssistant,
				Content:      followup.Content,
				LatencyMS:    followupLatency,
				InputTokens:  followup.Usage.InputTokens,
				OutputTokens: followup.Usage.OutputTokens,
			})

			totalInput += resp.Usage.InputTokens + followup.Usage.InputTokens
			totalOutput += resp.Usage.OutputTokens + followup.Usage.OutputTokens
			totalLatency += latency + followupLatency
		} else {
			turns = append(turns, Turn{
				Role:         RoleAssistant,
				Content:      resp.Content,
				LatencyMS:    latency,
				InputTokens:  resp.Usage.InputTokens,
				OutputTokens: resp.Usage.OutputTokens,
			})
			totalInput += resp.Usage.InputTokens
			totalOutput += resp.Usage.OutputTokens
			totalLatency += latency
		}

		if totalInput+totalOutput >= o.env.MaxTotalTokens {
			log.Info("Token budget reached",
				"total_tokens", totalInput+totalOutput,
				"max_total_tokens", o.env.MaxTotalTokens)
			break
		}

		if o.env.Timeout > 0 && time.Since(start) > o.env.Timeout {
			log.Info("Wall clock timeout reached", "elapsed_ms", time.Since(start).Milliseconds())
			break
		}
	}

	userTurns := 0
	for _, t := range turns {
		if t.Role == RoleUser {
			userTurns++
		}
	}

	o.terminate(status)

	result := &ConversationResult{
		Turns:             turns,
		TurnCount:         userTurns,
		TotalTokens:       totalInput + totalOutput,
		TotalInputTokens:  totalInput,
		TotalOutputTokens: totalOutput,
		TotalLatencyMS:    totalLatency,
		Status:            status,
		ErrorMessage:      errorMessage,
	}

	log.Info("Simulation finished",
		"status", status,
		"turns", userTurns,
		"total_tokens", result.TotalTokens,
		"total_latency_ms", totalLatency)

	return result, nil
}

// executeToolCalls runs sandbox calls sequentially in declaration order so
// results align with calls by index.
func (o *Orchestrator) executeToolCalls(ctx context.Context, calls []ToolCall) ([]ToolResult, error) {
	results := make([]ToolResult, 0, len(calls))
	for _, call := range calls {
		result, err := o.sandbox.Execute(ctx, call)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// turnsToMessages renders the transcript as provider messages. Only user
// and assistant turns are replayed; tool results are appended explicitly by
// the followup call.
func turnsToMessages(turns []Turn) []llm.Message {
	messages := make([]llm.Message, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case RoleUser:
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: turn.Content})
		case RoleAssistant:
			msg := llm.Message{Role: llm.RoleAssistant, Content: turn.Content}
			for _, tc := range turn.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{
					ID:        tc.ID,
					Name:      tc.Name,
					Arguments: tc.Arguments,
				})
			}
			messages = append(messages, msg)
		}
	}
	return messages
}

func toolCallsFromResponse(calls []llm.ToolCall) []ToolCall {
	out := make([]ToolCall, 0, len(calls))
	for _, c := range calls {
		out = append(out, ToolCall{ID: c.ID, Name: c.Name, Arguments: c.Arguments})
	}
	return out
}
