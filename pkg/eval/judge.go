package eval

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentprobe/agentprobe/pkg/llm"
	"github.com/agentprobe/agentprobe/pkg/sim"
)

const (
	// Low temperature keeps scoring consistent across repeated evaluations.
	judgeTemperature = 0.1
	judgeMaxTokens   = 2048

	scoringToolName = "submit_evaluation"
)

// ModelJudge evaluates conversations with an LLM acting as judge. Scores are
// forced through a tool call so they are machine-parseable; free-text and
// default fallbacks cover models that answer in prose anyway.
type ModelJudge struct {
	client llm.Client
	model  string
}

// NewModelJudge returns a judge backed by the given client and model.
func NewModelJudge(client llm.Client, model string) *ModelJudge {
	return &ModelJudge{client: client, model: model}
}

// Evaluate scores a conversation transcript against the rubric dimensions.
func (j *ModelJudge) Evaluate(ctx context.Context, turns []sim.Turn, dimensions []RubricDimension) (*EvaluationResult, error) {
	req := llm.Request{
		Model:  j.model,
		System: judgeSystemPrompt(dimensions),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: formatTranscript(turns, "Conversation Transcript")},
		},
		Tools:       []llm.ToolSchema{scoringTool(dimensions)},
		Temperature: judgeTemperature,
		MaxTokens:   judgeMaxTokens,
		ForceTool:   scoringToolName,
	}

	resp, err := j.client.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("judge call failed: %w", err)
	}

	result := j.parseResponse(resp, dimensions)
	slog.Debug("Model judge scored conversation", "model", j.model, "overall", result.OverallScore)
	return result, nil
}

func judgeSystemPrompt(dimensions []RubricDimension) string {
	dimLines := make([]string, 0, len(dimensions))
	for _, d := range dimensions {
		dimLines = append(dimLines, fmt.Sprintf("- **%s** (weight=%g): %s\n  Criteria: %s",
			d.Name, d.Weight, d.Description, strings.Join(d.Criteria, ", ")))
	}

	return "You are an expert conversation evaluator. Your task is to evaluate " +
		"an AI assistant's performance in a multi-turn conversation.\n\n" +
		"Score each dimension on a 0-10 scale:\n" +
		"  0-2: Very poor\n" +
		"  3-4: Below average\n" +
		"  5-6: Average\n" +
		"  7-8: Good\n" +
		"  9-10: Excellent\n\n" +
		fmt.Sprintf("Dimensions to evaluate:\n%s\n\n", strings.Join(dimLines, "\n")) +
		"Use the submit_evaluation tool to report your scores. " +
		"Provide a brief reasoning for each score."
}

// scoringTool builds the structured-output tool schema: one score and one
// reasoning property per dimension, all required.
func scoringTool(dimensions []RubricDimension) llm.ToolSchema {
	properties := map[string]interface{}{}
	required := []string{}

	for _, dim := range dimensions {
		properties[dim.Name+"_score"] = map[string]interface{}{
			"type":        "number",
			"description": fmt.Sprintf("Score for %s (0-10): %s", dim.Name, dim.Description),
			"minimum":     0,
			"maximum":     10,
		}
		properties[dim.Name+"_reasoning"] = map[string]interface{}{
			"type":        "string",
			"description": fmt.Sprintf("Brief reasoning for %s score", dim.Name),
		}
		required = append(required, dim.Name+"_score", dim.Name+"_reasoning")
	}

	return llm.ToolSchema{
		Name:        scoringToolName,
		Description: "Submit evaluation scores for all dimensions",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

func (j *ModelJudge) parseResponse(resp *llm.Response, dimensions []RubricDimension) *EvaluationResult {
	scores := map[string]float64{}
	var reasoningParts []string

	for _, tc := range resp.ToolCalls {
		if tc.Name != scoringToolName {
			continue
		}
		for _, dim := range dimensions {
			raw, ok := numberArg(tc.Arguments, dim.Name+"_score")
			if !ok {
				raw = 5.0
			}
			scores[dim.Name] = clampScore(raw)

			reason, ok := tc.Arguments[dim.Name+"_reasoning"].(string)
			if !ok {
				reason = "No reasoning provided"
			}
			reasoningParts = append(reasoningParts,
				fmt.Sprintf("%s: %.1f/10 — %s", dim.Name, scores[dim.Name], reason))
		}
		break
	}

	if len(scores) == 0 && resp.Content != "" {
		scores, reasoningParts = parseScoresFromContent(resp.Content, dimensions)
	}

	if len(scores) == 0 {
		for _, dim := range dimensions {
			scores[dim.Name] = 5.0
			reasoningParts = append(reasoningParts,
				fmt.Sprintf("%s: 5.0/10 — Could not parse judge output", dim.Name))
		}
	}

	return &EvaluationResult{
		EvaluatorType: TypeModelJudge,
		Scores:        scores,
		OverallScore:  weightedOverall(scores, dimensions),
		Reasoning:     strings.Join(reasoningParts, "\n"),
		Metadata:      map[string]interface{}{"model": j.model},
	}
}

// parseScoresFromContent extracts scores from free text, matching patterns
// like "helpfulness: 7" or "helpfulness=7.5".
func parseScoresFromContent(content string, dimensions []RubricDimension) (map[string]float64, []string) {
	scores := map[string]float64{}
	var reasoning []string

	for _, dim := range dimensions {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(dim.Name) + `\s*[:=]\s*(\d+(?:\.\d+)?)`)
		m := pattern.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		score := clampScore(v)
		scores[dim.Name] = score
		reasoning = append(reasoning, fmt.Sprintf("%s: %.1f/10 — parsed from content", dim.Name, score))
	}

	return scores, reasoning
}

// numberArg reads a numeric tool argument. JSON decoding yields float64,
// hand-built arguments may carry int.
func numberArg(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
