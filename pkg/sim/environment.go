package sim

import "time"

// Environment defines the constraints and simulated conditions for one
// conversation: budgets, tool behavior, and which turns are adversarial.
type Environment struct {
	// MaxTurns bounds the number of user turns.
	MaxTurns int
	// MaxTotalTokens stops the conversation once input plus output tokens
	// reach the budget. Checked after each agent exchange.
	MaxTotalTokens int
	// Timeout bounds wall-clock time for the whole conversation. Observed
	// at turn boundaries only.
	Timeout time.Duration
	// ToolFailureRate is the probability in [0,1] that a sandboxed tool
	// call returns a simulated failure.
	ToolFailureRate float64
	// ToolLatency is added to every sandboxed tool call.
	ToolLatency time.Duration
	// AdversarialTurns lists the user turn indices that are replaced with
	// hostile messages.
	AdversarialTurns []int
}

// DefaultEnvironment returns the stock budgets used when a run does not
// override them.
func DefaultEnvironment() Environment {
	return Environment{
		MaxTurns:       10,
		MaxTotalTokens: 50000,
		Timeout:        120 * time.Second,
	}
}

// EnvironmentFromMap applies overrides stored as generic JSON on an eval
// run. Missing keys keep their defaults; unknown keys are ignored.
func EnvironmentFromMap(data map[string]interface{}) Environment {
	env := DefaultEnvironment()
	if data == nil {
		return env
	}
	if v, ok := asInt(data["max_turns"]); ok {
		env.MaxTurns = v
	}
	if v, ok := asInt(data["max_total_tokens"]); ok {
		env.MaxTotalTokens = v
	}
	if v, ok := asFloat(data["timeout_seconds"]); ok {
		env.Timeout = time.Duration(v * float64(time.Second))
	}
	if v, ok := asFloat(data["tool_failure_rate"]); ok {
		env.ToolFailureRate = v
	}
	if v, ok := asInt(data["tool_latency_ms"]); ok {
		env.ToolLatency = time.Duration(v) * time.Millisecond
	}
	if raw, ok := data["adversarial_turns"].([]interface{}); ok {
		for _, item := range raw {
			if v, ok := asInt(item); ok {
				env.AdversarialTurns = append(env.AdversarialTurns, v)
			}
		}
	}
	return env
}

// ToMap renders the environment in the JSON shape stored on an eval run.
func (e Environment) ToMap() map[string]interface{} {
	turns := make([]interface{}, 0, len(e.AdversarialTurns))
	for _, t := range e.AdversarialTurns {
		turns = append(turns, t)
	}
	return map[string]interface{}{
		"max_turns":         e.MaxTurns,
		"max_total_tokens":  e.MaxTotalTokens,
		"timeout_seconds":   e.Timeout.Seconds(),
		"tool_failure_rate": e.ToolFailureRate,
		"tool_latency_ms":   int(e.ToolLatency / time.Millisecond),
		"adversarial_turns": turns,
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
