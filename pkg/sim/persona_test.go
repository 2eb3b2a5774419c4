package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolSchemasFromMaps(t *testing.T) {
	schemas := ToolSchemasFromMaps([]map[string]interface{}{
		{
			"name":        "get_weather",
			"description": "Get current weather",
			"parameters": map[string]interface{}{
				"type": "object",
			},
		},
		{"description": "entry without a name is dropped"},
		{"name": "search"},
	})

	require.Len(t, schemas, 2)
	assert.Equal(t, "get_weather", schemas[0].Name)
	assert.Equal(t, "Get current weather", schemas[0].Description)
	assert.Equal(t, "object", schemas[0].Parameters["type"])
	assert.Equal(t, "search", schemas[1].Name)
	assert.Nil(t, schemas[1].Parameters)
}
