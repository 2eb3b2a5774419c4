package eval

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentprobe/agentprobe/pkg/sim"
)

// toolResultPreview caps how much of a tool result the judges see per line.
const toolResultPreview = 200

// formatTranscript renders a conversation for a judge model. Tool calls and
// results are shown inline under the turn that produced them, results
// truncated to keep the prompt bounded.
func formatTranscript(turns []sim.Turn, label string) string {
	lines := []string{fmt.Sprintf("## %s\n", label)}

	for i, turn := range turns {
		role := strings.ToUpper(turn.Role)
		if role == "" {
			role = "UNKNOWN"
		}
		lines = append(lines, fmt.Sprintf("[Turn %d] %s: %s", i, role, turn.Content))

		for _, tc := range turn.ToolCalls {
			args := []byte("{}")
			if len(tc.Arguments) > 0 {
				if b, err := json.Marshal(tc.Arguments); err == nil {
					args = b
				}
			}
			lines = append(lines, fmt.Sprintf("  → TOOL_CALL: %s(%s)", tc.Name, args))
		}

		for _, tr := range turn.ToolResults {
			status := "OK"
			if tr.IsError {
				status = "ERROR"
			}
			lines = append(lines, fmt.Sprintf("  ← TOOL_RESULT [%s]: %s", status, truncate(tr.Content, toolResultPreview)))
		}
	}

	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
