package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeArguments coerces tool-call arguments into a map. Providers
// disagree on the wire shape: some return a decoded JSON object, some a
// JSON-encoded string, and a misbehaving model can produce any scalar.
// Anything that cannot be interpreted as an object is preserved under the
// "raw" key rather than dropped.
func NormalizeArguments(raw interface{}) map[string]interface{} {
	switch v := raw.(type) {
	case nil:
		return map[string]interface{}{}
	case map[string]interface{}:
		return v
	case string:
		return normalizeArgumentString(v)
	case json.RawMessage:
		return normalizeArgumentString(string(v))
	case []byte:
		return normalizeArgumentString(string(v))
	default:
		return map[string]interface{}{"raw": fmt.Sprintf("%v", v)}
	}
}

func normalizeArgumentString(s string) map[string]interface{} {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "null" {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &m); err == nil {
		if m == nil {
			return map[string]interface{}{}
		}
		return m
	}
	return map[string]interface{}{"raw": s}
}
