package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArguments(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want map[string]interface{}
	}{
		{
			name: "nil input",
			in:   nil,
			want: map[string]interface{}{},
		},
		{
			name: "already a map",
			in:   map[string]interface{}{"city": "Paris"},
			want: map[string]interface{}{"city": "Paris"},
		},
		{
			name: "JSON object string",
			in:   `{"city":"Paris","units":"metric"}`,
			want: map[string]interface{}{"city": "Paris", "units": "metric"},
		},
		{
			name: "JSON object string with whitespace",
			in:   "  {\"q\": \"weather\"}\n",
			want: map[string]interface{}{"q": "weather"},
		},
		{
			name: "empty string",
			in:   "",
			want: map[string]interface{}{},
		},
		{
			name: "null string",
			in:   "null",
			want: map[string]interface{}{},
		},
		{
			name: "invalid JSON string preserved under raw",
			in:   "not json at all",
			want: map[string]interface{}{"raw": "not json at all"},
		},
		{
			name: "scalar JSON string preserved under raw",
			in:   "42",
			want: map[string]interface{}{"raw": "42"},
		},
		{
			name: "JSON array string preserved under raw",
			in:   `[1,2,3]`,
			want: map[string]interface{}{"raw": `[1,2,3]`},
		},
		{
			name: "raw message",
			in:   json.RawMessage(`{"a":1}`),
			want: map[string]interface{}{"a": float64(1)},
		},
		{
			name: "byte slice",
			in:   []byte(`{"b":true}`),
			want: map[string]interface{}{"b": true},
		},
		{
			name: "unexpected scalar type",
			in:   7,
			want: map[string]interface{}{"raw": "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArguments(tt.in))
		})
	}
}
