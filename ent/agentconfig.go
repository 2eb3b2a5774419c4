// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentprobe/agentprobe/ent/agentconfig"
)

// AgentConfig is the model entity for the AgentConfig schema.
type AgentConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Human-readable identifier, unique across configs
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Provider model identifier (e.g., 'claude-sonnet-4-5')
	ModelID string `json:"model_id,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// Sampling temperature, 0..2
	Temperature float64 `json:"temperature,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// Tool schemas exposed to the agent (JSON Schema parameters)
	Tools []map[string]interface{} `json:"tools,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentConfigQuery when eager-loading is set.
	Edges        AgentConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentConfigEdges holds the relations/edges for other nodes in the graph.
type AgentConfigEdges struct {
	// EvalRuns holds the value of the eval_runs edge.
	EvalRuns []*EvalRun `json:"eval_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvalRunsOrErr returns the EvalRuns value or an error if the edge
// was not loaded in eager-loading.
func (e AgentConfigEdges) EvalRunsOrErr() ([]*EvalRun, error) {
	if e.loadedTypes[0] {
		return e.EvalRuns, nil
	}
	return nil, &NotLoadedError{edge: "eval_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentconfig.FieldTools:
			values[i] = new([]byte)
		case agentconfig.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case agentconfig.FieldMaxTokens:
			values[i] = new(sql.NullInt64)
		case agentconfig.FieldID, agentconfig.FieldName, agentconfig.FieldDescription, agentconfig.FieldModelID, agentconfig.FieldSystemPrompt:
			values[i] = new(sql.NullString)
		case agentconfig.FieldCreatedAt, agentconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentConfig fields.
func (_m *AgentConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentconfig.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agentconfig.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case agentconfig.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case agentconfig.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case agentconfig.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = value.Float64
			}
		case agentconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case agentconfig.FieldTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tools); err != nil {
					return fmt.Errorf("unmarshal field tools: %w", err)
				}
			}
		case agentconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentConfig.
// This includes values selected through modifiers, order, etc.
func (_m *AgentConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvalRuns queries the "eval_runs" edge of the AgentConfig entity.
func (_m *AgentConfig) QueryEvalRuns() *EvalRunQuery {
	return NewAgentConfigClient(_m.config).QueryEvalRuns(_m)
}

// Update returns a builder for updating this AgentConfig.
// Note that you need to call AgentConfig.Unwrap() before calling this method if this AgentConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentConfig) Update() *AgentConfigUpdateOne {
	return NewAgentConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentConfig) Unwrap() *AgentConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentConfig) String() string {
	var builder strings.Builder
	builder.WriteString("AgentConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tools))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentConfigs is a parsable slice of AgentConfig.
type AgentConfigs []*AgentConfig
