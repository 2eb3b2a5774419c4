package eval

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/sim"
)

const comparisonToolName = "submit_comparison"

// Pairwise winner labels.
const (
	WinnerA    = "a"
	WinnerB    = "b"
	WinnerDraw = "draw"
)

// PairwiseResult is the outcome of comparing two conversations.
type PairwiseResult struct {
	MatchID              string                 `json:"match_id"`
	Winner               string                 `json:"winner"`
	Reasoning            string                 `json:"reasoning"`
	DimensionPreferences map[string]string      `json:"dimension_preferences"`
	Confidence           float64                `json:"confidence"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
}

// PairwiseJudge has an LLM decide which of two conversations handled the
// same scenario better. Presentation order is randomly swapped per match to
// mitigate position bias, then the verdict is mapped back to the caller's
// labels.
type PairwiseJudge struct {
	client llm.Client
	model  string
	rng    *rand.Rand
}

// NewPairwiseJudge returns a judge backed by the given client and model. A
// nil rng gets a randomly seeded one; tests pass a fixed seed.
func NewPairwiseJudge(client llm.Client, model string, rng *rand.Rand) *PairwiseJudge {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PairwiseJudge{client: client, model: model, rng: rng}
}

// Compare judges two conversations and returns the winner under the
// caller's A/B labeling regardless of presentation order.
func (j *PairwiseJudge) Compare(ctx context.Context, turnsA, turnsB []sim.Turn, dimensions []RubricDimension) (*PairwiseResult, error) {
	matchID := uuid.Must(uuid.NewV7()).String()
	swapped := j.rng.IntN(2) == 1

	presentedA, presentedB := turnsA, turnsB
	if swapped {
		presentedA, presentedB = turnsB, turnsA
	}

	req := llm.Request{
		Model:  j.model,
		System: comparisonSystemPrompt(dimensions),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("%s\n\n---\n\n%s",
				formatTranscript(presentedA, "Agent A"),
				formatTranscript(presentedB, "Agent B"))},
		},
		Tools:       []llm.ToolSchema{comparisonTool(dimensions)},
		Temperature: judgeTemperature,
		MaxTokens:   judgeMaxTokens,
		ForceTool:   comparisonToolName,
	}

	resp, err := j.client.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("pairwise judge call failed: %w", err)
	}

	result := parseComparison(resp, dimensions)
	if swapped {
		unswap(result)
	}

	result.MatchID = matchID
	result.Metadata = map[string]interface{}{
		"model":   j.model,
		"swapped": swapped,
	}

	slog.Debug("Pairwise comparison judged",
		"match_id", matchID, "winner", result.Winner, "confidence", result.Confidence)
	return result, nil
}

func comparisonSystemPrompt(dimensions []RubricDimension) string {
	dimLines := make([]string, 0, len(dimensions))
	for _, d := range dimensions {
		dimLines = append(dimLines, fmt.Sprintf("- **%s** (weight=%g): %s", d.Name, d.Weight, d.Description))
	}

	return "You are an expert evaluator comparing two AI assistants. " +
		"You will see two conversations (Agent A and Agent B) responding " +
		"to the same scenario.\n\n" +
		"For each dimension, state your preference (a, b, or draw). " +
		"Then give an overall winner.\n\n" +
		fmt.Sprintf("Dimensions:\n%s\n\n", strings.Join(dimLines, "\n")) +
		"Use the submit_comparison tool to report your judgment."
}

func comparisonTool(dimensions []RubricDimension) llm.ToolSchema {
	properties := map[string]interface{}{
		"winner": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"a", "b", "draw"},
			"description": "Overall winner: 'a', 'b', or 'draw'",
		},
		"confidence": map[string]interface{}{
			"type":        "number",
			"minimum":     0,
			"maximum":     1,
			"description": "Confidence in the judgment (0-1)",
		},
		"reasoning": map[string]interface{}{
			"type":        "string",
			"description": "Overall reasoning for the comparison",
		},
	}
	required := []string{"winner", "confidence", "reasoning"}

	for _, dim := range dimensions {
		key := dim.Name + "_preference"
		properties[key] = map[string]interface{}{
			"type":        "string",
			"enum":        []string{"a", "b", "draw"},
			"description": fmt.Sprintf("Preference for %s: 'a', 'b', or 'draw'", dim.Name),
		}
		required = append(required, key)
	}

	return llm.ToolSchema{
		Name:        comparisonToolName,
		Description: "Submit pairwise comparison judgment",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

func parseComparison(resp *llm.Response, dimensions []RubricDimension) *PairwiseResult {
	result := &PairwiseResult{
		Winner:               WinnerDraw,
		Confidence:           0.5,
		DimensionPreferences: map[string]string{},
	}

	for _, tc := range resp.ToolCalls {
		if tc.Name != comparisonToolName {
			continue
		}
		if w, ok := tc.Arguments["winner"].(string); ok {
			result.Winner = w
		}
		if c, ok := numberArg(tc.Arguments, "confidence"); ok {
			result.Confidence = min(1.0, max(0.0, c))
		}
		if r, ok := tc.Arguments["reasoning"].(string); ok {
			result.Reasoning = r
		}
		for _, dim := range dimensions {
			pref := WinnerDraw
			if p, ok := tc.Arguments[dim.Name+"_preference"].(string); ok {
				pref = p
			}
			result.DimensionPreferences[dim.Name] = pref
		}
		break
	}

	if result.Reasoning == "" && resp.Content != "" {
		result.Reasoning = truncate(resp.Content, 500)
	}

	return result
}

// unswap flips winner labels back after a swapped presentation. Confidence
// is order-independent and stays as judged.
func unswap(result *PairwiseResult) {
	result.Winner = flipLabel(result.Winner)
	for k, v := range result.DimensionPreferences {
		result.DimensionPreferences[k] = flipLabel(v)
	}
}

func flipLabel(label string) string {
	switch label {
	case WinnerA:
		return WinnerB
	case WinnerB:
		return WinnerA
	default:
		return label
	}
}
