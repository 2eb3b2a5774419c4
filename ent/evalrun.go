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
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// EvalRun is the model entity for the EvalRun schema.
type EvalRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// AgentConfigID holds the value of the "agent_config_id" field.
	AgentConfigID string `json:"agent_config_id,omitempty"`
	// ScenarioID holds the value of the "scenario_id" field.
	ScenarioID string `json:"scenario_id,omitempty"`
	// Nil selects the built-in default rubric
	RubricID *string `json:"rubric_id,omitempty"`
	// How many independent conversations to simulate
	NumConversations int `json:"num_conversations,omitempty"`
	// Status holds the value of the "status" field.
	Status evalrun.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// SimulationEnvironment overrides: max_turns, max_total_tokens, timeout_seconds, tool_failure_rate, tool_latency_ms, adversarial_turns
	Environment map[string]interface{} `json:"environment,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvalRunQuery when eager-loading is set.
	Edges        EvalRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvalRunEdges holds the relations/edges for other nodes in the graph.
type EvalRunEdges struct {
	// AgentConfig holds the value of the agent_config edge.
	AgentConfig *AgentConfig `json:"agent_config,omitempty"`
	// Scenario holds the value of the scenario edge.
	Scenario *Scenario `json:"scenario,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// Metrics holds the value of the metrics edge.
	Metrics []*Metric `json:"metrics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// AgentConfigOrErr returns the AgentConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvalRunEdges) AgentConfigOrErr() (*AgentConfig, error) {
	if e.AgentConfig != nil {
		return e.AgentConfig, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentconfig.Label}
	}
	return nil, &NotLoadedError{edge: "agent_config"}
}

// ScenarioOrErr returns the Scenario value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvalRunEdges) ScenarioOrErr() (*Scenario, error) {
	if e.Scenario != nil {
		return e.Scenario, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: scenario.Label}
	}
	return nil, &NotLoadedError{edge: "scenario"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e EvalRunEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[2] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e EvalRunEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[3] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// MetricsOrErr returns the Metrics value or an error if the edge
// was not loaded in eager-loading.
func (e EvalRunEdges) MetricsOrErr() ([]*Metric, error) {
	if e.loadedTypes[4] {
		return e.Metrics, nil
	}
	return nil, &NotLoadedError{edge: "metrics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvalRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evalrun.FieldEnvironment:
			values[i] = new([]byte)
		case evalrun.FieldNumConversations:
			values[i] = new(sql.NullInt64)
		case evalrun.FieldID, evalrun.FieldName, evalrun.FieldAgentConfigID, evalrun.FieldScenarioID, evalrun.FieldRubricID, evalrun.FieldStatus, evalrun.FieldErrorMessage, evalrun.FieldPodID:
			values[i] = new(sql.NullString)
		case evalrun.FieldLastHeartbeatAt, evalrun.FieldStartedAt, evalrun.FieldCompletedAt, evalrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvalRun fields.
func (_m *EvalRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evalrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evalrun.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case evalrun.FieldAgentConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_config_id", values[i])
			} else if value.Valid {
				_m.AgentConfigID = value.String
			}
		case evalrun.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.String
			}
		case evalrun.FieldRubricID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rubric_id", values[i])
			} else if value.Valid {
				_m.RubricID = new(string)
				*_m.RubricID = value.String
			}
		case evalrun.FieldNumConversations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_conversations", values[i])
			} else if value.Valid {
				_m.NumConversations = int(value.Int64)
			}
		case evalrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = evalrun.Status(value.String)
			}
		case evalrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case evalrun.FieldEnvironment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field environment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Environment); err != nil {
					return fmt.Errorf("unmarshal field environment: %w", err)
				}
			}
		case evalrun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case evalrun.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case evalrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case evalrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case evalrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvalRun.
// This includes values selected through modifiers, order, etc.
func (_m *EvalRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgentConfig queries the "agent_config" edge of the EvalRun entity.
func (_m *EvalRun) QueryAgentConfig() *AgentConfigQuery {
	return NewEvalRunClient(_m.config).QueryAgentConfig(_m)
}

// QueryScenario queries the "scenario" edge of the EvalRun entity.
func (_m *EvalRun) QueryScenario() *ScenarioQuery {
	return NewEvalRunClient(_m.config).QueryScenario(_m)
}

// QueryConversations queries the "conversations" edge of the EvalRun entity.
func (_m *EvalRun) QueryConversations() *ConversationQuery {
	return NewEvalRunClient(_m.config).QueryConversations(_m)
}

// QueryEvaluations queries the "evaluations" edge of the EvalRun entity.
func (_m *EvalRun) QueryEvaluations() *EvaluationQuery {
	return NewEvalRunClient(_m.config).QueryEvaluations(_m)
}

// QueryMetrics queries the "metrics" edge of the EvalRun entity.
func (_m *EvalRun) QueryMetrics() *MetricQuery {
	return NewEvalRunClient(_m.config).QueryMetrics(_m)
}

// Update returns a builder for updating this EvalRun.
// Note that you need to call EvalRun.Unwrap() before calling this method if this EvalRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvalRun) Update() *EvalRunUpdateOne {
	return NewEvalRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvalRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvalRun) Unwrap() *EvalRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvalRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvalRun) String() string {
	var builder strings.Builder
	builder.WriteString("EvalRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("agent_config_id=")
	builder.WriteString(_m.AgentConfigID)
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(_m.ScenarioID)
	builder.WriteString(", ")
	if v := _m.RubricID; v != nil {
		builder.WriteString("rubric_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("num_conversations=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumConversations))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("environment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Environment))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvalRuns is a parsable slice of EvalRun.
type EvalRuns []*EvalRun
