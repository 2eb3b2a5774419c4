// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// Scenario is the model entity for the Scenario schema.
type Scenario struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// What the simulated user is trying to accomplish
	Goal string `json:"goal,omitempty"`
	// UserPersonality holds the value of the "user_personality" field.
	UserPersonality string `json:"user_personality,omitempty"`
	// ExpertiseLevel holds the value of the "expertise_level" field.
	ExpertiseLevel scenario.ExpertiseLevel `json:"expertise_level,omitempty"`
	// Verbatim first user message; skips the simulator LLM on turn 0
	InitialMessage *string `json:"initial_message,omitempty"`
	// Per-turn hints: {user_message?, expected_response?}
	TurnsTemplate []map[string]interface{} `json:"turns_template,omitempty"`
	// Tool names in the order the agent is expected to call them
	ExpectedToolSequence []string `json:"expected_tool_sequence,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty scenario.Difficulty `json:"difficulty,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Default user-turn budget; the run environment may override
	MaxTurns int `json:"max_turns,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScenarioQuery when eager-loading is set.
	Edges        ScenarioEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScenarioEdges holds the relations/edges for other nodes in the graph.
type ScenarioEdges struct {
	// EvalRuns holds the value of the eval_runs edge.
	EvalRuns []*EvalRun `json:"eval_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvalRunsOrErr returns the EvalRuns value or an error if the edge
// was not loaded in eager-loading.
func (e ScenarioEdges) EvalRunsOrErr() ([]*EvalRun, error) {
	if e.loadedTypes[0] {
		return e.EvalRuns, nil
	}
	return nil, &NotLoadedError{edge: "eval_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Scenario) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenario.FieldTurnsTemplate, scenario.FieldExpectedToolSequence, scenario.FieldTags:
			values[i] = new([]byte)
		case scenario.FieldMaxTurns:
			values[i] = new(sql.NullInt64)
		case scenario.FieldID, scenario.FieldName, scenario.FieldDescription, scenario.FieldGoal, scenario.FieldUserPersonality, scenario.FieldExpertiseLevel, scenario.FieldInitialMessage, scenario.FieldDifficulty:
			values[i] = new(sql.NullString)
		case scenario.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Scenario fields.
func (_m *Scenario) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenario.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scenario.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case scenario.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case scenario.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case scenario.FieldUserPersonality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_personality", values[i])
			} else if value.Valid {
				_m.UserPersonality = value.String
			}
		case scenario.FieldExpertiseLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expertise_level", values[i])
			} else if value.Valid {
				_m.ExpertiseLevel = scenario.ExpertiseLevel(value.String)
			}
		case scenario.FieldInitialMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_message", values[i])
			} else if value.Valid {
				_m.InitialMessage = new(string)
				*_m.InitialMessage = value.String
			}
		case scenario.FieldTurnsTemplate:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field turns_template", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TurnsTemplate); err != nil {
					return fmt.Errorf("unmarshal field turns_template: %w", err)
				}
			}
		case scenario.FieldExpectedToolSequence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_tool_sequence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedToolSequence); err != nil {
					return fmt.Errorf("unmarshal field expected_tool_sequence: %w", err)
				}
			}
		case scenario.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = scenario.Difficulty(value.String)
			}
		case scenario.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case scenario.FieldMaxTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_turns", values[i])
			} else if value.Valid {
				_m.MaxTurns = int(value.Int64)
			}
		case scenario.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Scenario.
// This includes values selected through modifiers, order, etc.
func (_m *Scenario) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvalRuns queries the "eval_runs" edge of the Scenario entity.
func (_m *Scenario) QueryEvalRuns() *EvalRunQuery {
	return NewScenarioClient(_m.config).QueryEvalRuns(_m)
}

// Update returns a builder for updating this Scenario.
// Note that you need to call Scenario.Unwrap() before calling this method if this Scenario
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Scenario) Update() *ScenarioUpdateOne {
	return NewScenarioClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Scenario entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Scenario) Unwrap() *Scenario {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Scenario is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Scenario) String() string {
	var builder strings.Builder
	builder.WriteString("Scenario(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("user_personality=")
	builder.WriteString(_m.UserPersonality)
	builder.WriteString(", ")
	builder.WriteString("expertise_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpertiseLevel))
	builder.WriteString(", ")
	if v := _m.InitialMessage; v != nil {
		builder.WriteString("initial_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("turns_template=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnsTemplate))
	builder.WriteString(", ")
	builder.WriteString("expected_tool_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedToolSequence))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("max_turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTurns))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Scenarios is a parsable slice of Scenario.
type Scenarios []*Scenario
