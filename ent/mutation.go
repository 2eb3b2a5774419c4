// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentprobe/agentprobe/ent/agentconfig"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/ent/predicate"
	"github.com/agentprobe/agentprobe/ent/rubric"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentConfig     = "AgentConfig"
	TypeConversation    = "Conversation"
	TypeEvalRun         = "EvalRun"
	TypeEvaluation      = "Evaluation"
	TypeMetric          = "Metric"
	TypePipelineMessage = "PipelineMessage"
	TypeRubric          = "Rubric"
	TypeScenario        = "Scenario"
)

// AgentConfigMutation represents an operation that mutates the AgentConfig nodes in the graph.
type AgentConfigMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	description      *string
	model_id         *string
	system_prompt    *string
	temperature      *float64
	addtemperature   *float64
	max_tokens       *int
	addmax_tokens    *int
	tools            *[]map[string]interface{}
	appendtools      []map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	eval_runs        map[string]struct{}
	removedeval_runs map[string]struct{}
	clearedeval_runs bool
	done             bool
	oldValue         func(context.Context) (*AgentConfig, error)
	predicates       []predicate.AgentConfig
}

var _ ent.Mutation = (*AgentConfigMutation)(nil)

// agentconfigOption allows management of the mutation configuration using functional options.
type agentconfigOption func(*AgentConfigMutation)

// newAgentConfigMutation creates new mutation for the AgentConfig entity.
func newAgentConfigMutation(c config, op Op, opts ...agentconfigOption) *AgentConfigMutation {
	m := &AgentConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentConfigID sets the ID field of the mutation.
func withAgentConfigID(id string) agentconfigOption {
	return func(m *AgentConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentConfig
		)
		m.oldValue = func(ctx context.Context) (*AgentConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentConfig sets the old AgentConfig of the mutation.
func withAgentConfig(node *AgentConfig) agentconfigOption {
	return func(m *AgentConfigMutation) {
		m.oldValue = func(context.Context) (*AgentConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentConfig entities.
func (m *AgentConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentConfigMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentConfigMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentConfigMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AgentConfigMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentConfigMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AgentConfigMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[agentconfig.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AgentConfigMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[agentconfig.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentConfigMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, agentconfig.FieldDescription)
}

// SetModelID sets the "model_id" field.
func (m *AgentConfigMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *AgentConfigMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *AgentConfigMutation) ResetModelID() {
	m.model_id = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentConfigMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentConfigMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentConfigMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetTemperature sets the "temperature" field.
func (m *AgentConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *AgentConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *AgentConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *AgentConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *AgentConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *AgentConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *AgentConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetTools sets the "tools" field.
func (m *AgentConfigMutation) SetTools(value []map[string]interface{}) {
	m.tools = &value
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *AgentConfigMutation) Tools() (r []map[string]interface{}, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldTools(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds value to the "tools" field.
func (m *AgentConfigMutation) AppendTools(value []map[string]interface{}) {
	m.appendtools = append(m.appendtools, value...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *AgentConfigMutation) AppendedTools() ([]map[string]interface{}, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *AgentConfigMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[agentconfig.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *AgentConfigMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[agentconfig.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *AgentConfigMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, agentconfig.FieldTools)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentConfig entity.
// If the AgentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by ids.
func (m *AgentConfigMutation) AddEvalRunIDs(ids ...string) {
	if m.eval_runs == nil {
		m.eval_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.eval_runs[ids[i]] = struct{}{}
	}
}

// ClearEvalRuns clears the "eval_runs" edge to the EvalRun entity.
func (m *AgentConfigMutation) ClearEvalRuns() {
	m.clearedeval_runs = true
}

// EvalRunsCleared reports if the "eval_runs" edge to the EvalRun entity was cleared.
func (m *AgentConfigMutation) EvalRunsCleared() bool {
	return m.clearedeval_runs
}

// RemoveEvalRunIDs removes the "eval_runs" edge to the EvalRun entity by IDs.
func (m *AgentConfigMutation) RemoveEvalRunIDs(ids ...string) {
	if m.removedeval_runs == nil {
		m.removedeval_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.eval_runs, ids[i])
		m.removedeval_runs[ids[i]] = struct{}{}
	}
}

// RemovedEvalRuns returns the removed IDs of the "eval_runs" edge to the EvalRun entity.
func (m *AgentConfigMutation) RemovedEvalRunsIDs() (ids []string) {
	for id := range m.removedeval_runs {
		ids = append(ids, id)
	}
	return
}

// EvalRunsIDs returns the "eval_runs" edge IDs in the mutation.
func (m *AgentConfigMutation) EvalRunsIDs() (ids []string) {
	for id := range m.eval_runs {
		ids = append(ids, id)
	}
	return
}

// ResetEvalRuns resets all changes to the "eval_runs" edge.
func (m *AgentConfigMutation) ResetEvalRuns() {
	m.eval_runs = nil
	m.clearedeval_runs = false
	m.removedeval_runs = nil
}

// Where appends a list predicates to the AgentConfigMutation builder.
func (m *AgentConfigMutation) Where(ps ...predicate.AgentConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentConfig).
func (m *AgentConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentConfigMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, agentconfig.FieldName)
	}
	if m.description != nil {
		fields = append(fields, agentconfig.FieldDescription)
	}
	if m.model_id != nil {
		fields = append(fields, agentconfig.FieldModelID)
	}
	if m.system_prompt != nil {
		fields = append(fields, agentconfig.FieldSystemPrompt)
	}
	if m.temperature != nil {
		fields = append(fields, agentconfig.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, agentconfig.FieldMaxTokens)
	}
	if m.tools != nil {
		fields = append(fields, agentconfig.FieldTools)
	}
	if m.created_at != nil {
		fields = append(fields, agentconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentconfig.FieldName:
		return m.Name()
	case agentconfig.FieldDescription:
		return m.Description()
	case agentconfig.FieldModelID:
		return m.ModelID()
	case agentconfig.FieldSystemPrompt:
		return m.SystemPrompt()
	case agentconfig.FieldTemperature:
		return m.Temperature()
	case agentconfig.FieldMaxTokens:
		return m.MaxTokens()
	case agentconfig.FieldTools:
		return m.Tools()
	case agentconfig.FieldCreatedAt:
		return m.CreatedAt()
	case agentconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentconfig.FieldName:
		return m.OldName(ctx)
	case agentconfig.FieldDescription:
		return m.OldDescription(ctx)
	case agentconfig.FieldModelID:
		return m.OldModelID(ctx)
	case agentconfig.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agentconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case agentconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case agentconfig.FieldTools:
		return m.OldTools(ctx)
	case agentconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentconfig.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentconfig.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agentconfig.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case agentconfig.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agentconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agentconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case agentconfig.FieldTools:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case agentconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentConfigMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, agentconfig.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, agentconfig.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentconfig.FieldTemperature:
		return m.AddedTemperature()
	case agentconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case agentconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AgentConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentconfig.FieldDescription) {
		fields = append(fields, agentconfig.FieldDescription)
	}
	if m.FieldCleared(agentconfig.FieldTools) {
		fields = append(fields, agentconfig.FieldTools)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentConfigMutation) ClearField(name string) error {
	switch name {
	case agentconfig.FieldDescription:
		m.ClearDescription()
		return nil
	case agentconfig.FieldTools:
		m.ClearTools()
		return nil
	}
	return fmt.Errorf("unknown AgentConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentConfigMutation) ResetField(name string) error {
	switch name {
	case agentconfig.FieldName:
		m.ResetName()
		return nil
	case agentconfig.FieldDescription:
		m.ResetDescription()
		return nil
	case agentconfig.FieldModelID:
		m.ResetModelID()
		return nil
	case agentconfig.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agentconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agentconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case agentconfig.FieldTools:
		m.ResetTools()
		return nil
	case agentconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.eval_runs != nil {
		edges = append(edges, agentconfig.EdgeEvalRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentconfig.EdgeEvalRuns:
		ids := make([]ent.Value, 0, len(m.eval_runs))
		for id := range m.eval_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedeval_runs != nil {
		edges = append(edges, agentconfig.EdgeEvalRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentConfigMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentconfig.EdgeEvalRuns:
		ids := make([]ent.Value, 0, len(m.removedeval_runs))
		for id := range m.removedeval_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedeval_runs {
		edges = append(edges, agentconfig.EdgeEvalRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case agentconfig.EdgeEvalRuns:
		return m.clearedeval_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentConfigMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentConfigMutation) ResetEdge(name string) error {
	switch name {
	case agentconfig.EdgeEvalRuns:
		m.ResetEvalRuns()
		return nil
	}
	return fmt.Errorf("unknown AgentConfig edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	sequence               *int
	addsequence            *int
	status                 *conversation.Status
	turns                  *[]map[string]interface{}
	appendturns            []map[string]interface{}
	turn_count             *int
	addturn_count          *int
	total_tokens           *int
	addtotal_tokens        *int
	total_input_tokens     *int
	addtotal_input_tokens  *int
	total_output_tokens    *int
	addtotal_output_tokens *int
	total_latency_ms       *int
	addtotal_latency_ms    *int
	error_message          *string
	created_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	eval_run               *string
	clearedeval_run        bool
	evaluations            map[string]struct{}
	removedevaluations     map[string]struct{}
	clearedevaluations     bool
	metrics                map[string]struct{}
	removedmetrics         map[string]struct{}
	clearedmetrics         bool
	done                   bool
	oldValue               func(context.Context) (*Conversation, error)
	predicates             []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEvalRunID sets the "eval_run_id" field.
func (m *ConversationMutation) SetEvalRunID(s string) {
	m.eval_run = &s
}

// EvalRunID returns the value of the "eval_run_id" field in the mutation.
func (m *ConversationMutation) EvalRunID() (r string, exists bool) {
	v := m.eval_run
	if v == nil {
		return
	}
	return *v, true
}

// OldEvalRunID returns the old "eval_run_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldEvalRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvalRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvalRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvalRunID: %w", err)
	}
	return oldValue.EvalRunID, nil
}

// ResetEvalRunID resets all changes to the "eval_run_id" field.
func (m *ConversationMutation) ResetEvalRunID() {
	m.eval_run = nil
}

// SetSequence sets the "sequence" field.
func (m *ConversationMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ConversationMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ConversationMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ConversationMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ConversationMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetTurns sets the "turns" field.
func (m *ConversationMutation) SetTurns(value []map[string]interface{}) {
	m.turns = &value
	m.appendturns = nil
}

// Turns returns the value of the "turns" field in the mutation.
func (m *ConversationMutation) Turns() (r []map[string]interface{}, exists bool) {
	v := m.turns
	if v == nil {
		return
	}
	return *v, true
}

// OldTurns returns the old "turns" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTurns(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurns: %w", err)
	}
	return oldValue.Turns, nil
}

// AppendTurns adds value to the "turns" field.
func (m *ConversationMutation) AppendTurns(value []map[string]interface{}) {
	m.appendturns = append(m.appendturns, value...)
}

// AppendedTurns returns the list of values that were appended to the "turns" field in this mutation.
func (m *ConversationMutation) AppendedTurns() ([]map[string]interface{}, bool) {
	if len(m.appendturns) == 0 {
		return nil, false
	}
	return m.appendturns, true
}

// ClearTurns clears the value of the "turns" field.
func (m *ConversationMutation) ClearTurns() {
	m.turns = nil
	m.appendturns = nil
	m.clearedFields[conversation.FieldTurns] = struct{}{}
}

// TurnsCleared returns if the "turns" field was cleared in this mutation.
func (m *ConversationMutation) TurnsCleared() bool {
	_, ok := m.clearedFields[conversation.FieldTurns]
	return ok
}

// ResetTurns resets all changes to the "turns" field.
func (m *ConversationMutation) ResetTurns() {
	m.turns = nil
	m.appendturns = nil
	delete(m.clearedFields, conversation.FieldTurns)
}

// SetTurnCount sets the "turn_count" field.
func (m *ConversationMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *ConversationMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *ConversationMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *ConversationMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *ConversationMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ConversationMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ConversationMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ConversationMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ConversationMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ConversationMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (m *ConversationMutation) SetTotalInputTokens(i int) {
	m.total_input_tokens = &i
	m.addtotal_input_tokens = nil
}

// TotalInputTokens returns the value of the "total_input_tokens" field in the mutation.
func (m *ConversationMutation) TotalInputTokens() (r int, exists bool) {
	v := m.total_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInputTokens returns the old "total_input_tokens" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTotalInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInputTokens: %w", err)
	}
	return oldValue.TotalInputTokens, nil
}

// AddTotalInputTokens adds i to the "total_input_tokens" field.
func (m *ConversationMutation) AddTotalInputTokens(i int) {
	if m.addtotal_input_tokens != nil {
		*m.addtotal_input_tokens += i
	} else {
		m.addtotal_input_tokens = &i
	}
}

// AddedTotalInputTokens returns the value that was added to the "total_input_tokens" field in this mutation.
func (m *ConversationMutation) AddedTotalInputTokens() (r int, exists bool) {
	v := m.addtotal_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInputTokens resets all changes to the "total_input_tokens" field.
func (m *ConversationMutation) ResetTotalInputTokens() {
	m.total_input_tokens = nil
	m.addtotal_input_tokens = nil
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (m *ConversationMutation) SetTotalOutputTokens(i int) {
	m.total_output_tokens = &i
	m.addtotal_output_tokens = nil
}

// TotalOutputTokens returns the value of the "total_output_tokens" field in the mutation.
func (m *ConversationMutation) TotalOutputTokens() (r int, exists bool) {
	v := m.total_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOutputTokens returns the old "total_output_tokens" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTotalOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOutputTokens: %w", err)
	}
	return oldValue.TotalOutputTokens, nil
}

// AddTotalOutputTokens adds i to the "total_output_tokens" field.
func (m *ConversationMutation) AddTotalOutputTokens(i int) {
	if m.addtotal_output_tokens != nil {
		*m.addtotal_output_tokens += i
	} else {
		m.addtotal_output_tokens = &i
	}
}

// AddedTotalOutputTokens returns the value that was added to the "total_output_tokens" field in this mutation.
func (m *ConversationMutation) AddedTotalOutputTokens() (r int, exists bool) {
	v := m.addtotal_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOutputTokens resets all changes to the "total_output_tokens" field.
func (m *ConversationMutation) ResetTotalOutputTokens() {
	m.total_output_tokens = nil
	m.addtotal_output_tokens = nil
}

// SetTotalLatencyMs sets the "total_latency_ms" field.
func (m *ConversationMutation) SetTotalLatencyMs(i int) {
	m.total_latency_ms = &i
	m.addtotal_latency_ms = nil
}

// TotalLatencyMs returns the value of the "total_latency_ms" field in the mutation.
func (m *ConversationMutation) TotalLatencyMs() (r int, exists bool) {
	v := m.total_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLatencyMs returns the old "total_latency_ms" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTotalLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLatencyMs: %w", err)
	}
	return oldValue.TotalLatencyMs, nil
}

// AddTotalLatencyMs adds i to the "total_latency_ms" field.
func (m *ConversationMutation) AddTotalLatencyMs(i int) {
	if m.addtotal_latency_ms != nil {
		*m.addtotal_latency_ms += i
	} else {
		m.addtotal_latency_ms = &i
	}
}

// AddedTotalLatencyMs returns the value that was added to the "total_latency_ms" field in this mutation.
func (m *ConversationMutation) AddedTotalLatencyMs() (r int, exists bool) {
	v := m.addtotal_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLatencyMs resets all changes to the "total_latency_ms" field.
func (m *ConversationMutation) ResetTotalLatencyMs() {
	m.total_latency_ms = nil
	m.addtotal_latency_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ConversationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ConversationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ConversationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[conversation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ConversationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[conversation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ConversationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, conversation.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ConversationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ConversationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ConversationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[conversation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ConversationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ConversationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, conversation.FieldCompletedAt)
}

// ClearEvalRun clears the "eval_run" edge to the EvalRun entity.
func (m *ConversationMutation) ClearEvalRun() {
	m.clearedeval_run = true
	m.clearedFields[conversation.FieldEvalRunID] = struct{}{}
}

// EvalRunCleared reports if the "eval_run" edge to the EvalRun entity was cleared.
func (m *ConversationMutation) EvalRunCleared() bool {
	return m.clearedeval_run
}

// EvalRunIDs returns the "eval_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvalRunID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) EvalRunIDs() (ids []string) {
	if id := m.eval_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvalRun resets all changes to the "eval_run" edge.
func (m *ConversationMutation) ResetEvalRun() {
	m.eval_run = nil
	m.clearedeval_run = false
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *ConversationMutation) AddEvaluationIDs(ids ...string) {
	if m.evaluations == nil {
		m.evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *ConversationMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *ConversationMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *ConversationMutation) RemoveEvaluationIDs(ids ...string) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *ConversationMutation) RemovedEvaluationsIDs() (ids []string) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *ConversationMutation) EvaluationsIDs() (ids []string) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *ConversationMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by ids.
func (m *ConversationMutation) AddMetricIDs(ids ...string) {
	if m.metrics == nil {
		m.metrics = make(map[string]struct{})
	}
	for i := range ids {
		m.metrics[ids[i]] = struct{}{}
	}
}

// ClearMetrics clears the "metrics" edge to the Metric entity.
func (m *ConversationMutation) ClearMetrics() {
	m.clearedmetrics = true
}

// MetricsCleared reports if the "metrics" edge to the Metric entity was cleared.
func (m *ConversationMutation) MetricsCleared() bool {
	return m.clearedmetrics
}

// RemoveMetricIDs removes the "metrics" edge to the Metric entity by IDs.
func (m *ConversationMutation) RemoveMetricIDs(ids ...string) {
	if m.removedmetrics == nil {
		m.removedmetrics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.metrics, ids[i])
		m.removedmetrics[ids[i]] = struct{}{}
	}
}

// RemovedMetrics returns the removed IDs of the "metrics" edge to the Metric entity.
func (m *ConversationMutation) RemovedMetricsIDs() (ids []string) {
	for id := range m.removedmetrics {
		ids = append(ids, id)
	}
	return
}

// MetricsIDs returns the "metrics" edge IDs in the mutation.
func (m *ConversationMutation) MetricsIDs() (ids []string) {
	for id := range m.metrics {
		ids = append(ids, id)
	}
	return
}

// ResetMetrics resets all changes to the "metrics" edge.
func (m *ConversationMutation) ResetMetrics() {
	m.metrics = nil
	m.clearedmetrics = false
	m.removedmetrics = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.eval_run != nil {
		fields = append(fields, conversation.FieldEvalRunID)
	}
	if m.sequence != nil {
		fields = append(fields, conversation.FieldSequence)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.turns != nil {
		fields = append(fields, conversation.FieldTurns)
	}
	if m.turn_count != nil {
		fields = append(fields, conversation.FieldTurnCount)
	}
	if m.total_tokens != nil {
		fields = append(fields, conversation.FieldTotalTokens)
	}
	if m.total_input_tokens != nil {
		fields = append(fields, conversation.FieldTotalInputTokens)
	}
	if m.total_output_tokens != nil {
		fields = append(fields, conversation.FieldTotalOutputTokens)
	}
	if m.total_latency_ms != nil {
		fields = append(fields, conversation.FieldTotalLatencyMs)
	}
	if m.error_message != nil {
		fields = append(fields, conversation.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, conversation.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldEvalRunID:
		return m.EvalRunID()
	case conversation.FieldSequence:
		return m.Sequence()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldTurns:
		return m.Turns()
	case conversation.FieldTurnCount:
		return m.TurnCount()
	case conversation.FieldTotalTokens:
		return m.TotalTokens()
	case conversation.FieldTotalInputTokens:
		return m.TotalInputTokens()
	case conversation.FieldTotalOutputTokens:
		return m.TotalOutputTokens()
	case conversation.FieldTotalLatencyMs:
		return m.TotalLatencyMs()
	case conversation.FieldErrorMessage:
		return m.ErrorMessage()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldEvalRunID:
		return m.OldEvalRunID(ctx)
	case conversation.FieldSequence:
		return m.OldSequence(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldTurns:
		return m.OldTurns(ctx)
	case conversation.FieldTurnCount:
		return m.OldTurnCount(ctx)
	case conversation.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case conversation.FieldTotalInputTokens:
		return m.OldTotalInputTokens(ctx)
	case conversation.FieldTotalOutputTokens:
		return m.OldTotalOutputTokens(ctx)
	case conversation.FieldTotalLatencyMs:
		return m.OldTotalLatencyMs(ctx)
	case conversation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldEvalRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvalRunID(v)
		return nil
	case conversation.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldTurns:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurns(v)
		return nil
	case conversation.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	case conversation.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case conversation.FieldTotalInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInputTokens(v)
		return nil
	case conversation.FieldTotalOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOutputTokens(v)
		return nil
	case conversation.FieldTotalLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLatencyMs(v)
		return nil
	case conversation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, conversation.FieldSequence)
	}
	if m.addturn_count != nil {
		fields = append(fields, conversation.FieldTurnCount)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, conversation.FieldTotalTokens)
	}
	if m.addtotal_input_tokens != nil {
		fields = append(fields, conversation.FieldTotalInputTokens)
	}
	if m.addtotal_output_tokens != nil {
		fields = append(fields, conversation.FieldTotalOutputTokens)
	}
	if m.addtotal_latency_ms != nil {
		fields = append(fields, conversation.FieldTotalLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldSequence:
		return m.AddedSequence()
	case conversation.FieldTurnCount:
		return m.AddedTurnCount()
	case conversation.FieldTotalTokens:
		return m.AddedTotalTokens()
	case conversation.FieldTotalInputTokens:
		return m.AddedTotalInputTokens()
	case conversation.FieldTotalOutputTokens:
		return m.AddedTotalOutputTokens()
	case conversation.FieldTotalLatencyMs:
		return m.AddedTotalLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case conversation.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	case conversation.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case conversation.FieldTotalInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInputTokens(v)
		return nil
	case conversation.FieldTotalOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOutputTokens(v)
		return nil
	case conversation.FieldTotalLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldTurns) {
		fields = append(fields, conversation.FieldTurns)
	}
	if m.FieldCleared(conversation.FieldErrorMessage) {
		fields = append(fields, conversation.FieldErrorMessage)
	}
	if m.FieldCleared(conversation.FieldCompletedAt) {
		fields = append(fields, conversation.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldTurns:
		m.ClearTurns()
		return nil
	case conversation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case conversation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldEvalRunID:
		m.ResetEvalRunID()
		return nil
	case conversation.FieldSequence:
		m.ResetSequence()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldTurns:
		m.ResetTurns()
		return nil
	case conversation.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	case conversation.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case conversation.FieldTotalInputTokens:
		m.ResetTotalInputTokens()
		return nil
	case conversation.FieldTotalOutputTokens:
		m.ResetTotalOutputTokens()
		return nil
	case conversation.FieldTotalLatencyMs:
		m.ResetTotalLatencyMs()
		return nil
	case conversation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.eval_run != nil {
		edges = append(edges, conversation.EdgeEvalRun)
	}
	if m.evaluations != nil {
		edges = append(edges, conversation.EdgeEvaluations)
	}
	if m.metrics != nil {
		edges = append(edges, conversation.EdgeMetrics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeEvalRun:
		if id := m.eval_run; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeMetrics:
		ids := make([]ent.Value, 0, len(m.metrics))
		for id := range m.metrics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevaluations != nil {
		edges = append(edges, conversation.EdgeEvaluations)
	}
	if m.removedmetrics != nil {
		edges = append(edges, conversation.EdgeMetrics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeMetrics:
		ids := make([]ent.Value, 0, len(m.removedmetrics))
		for id := range m.removedmetrics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedeval_run {
		edges = append(edges, conversation.EdgeEvalRun)
	}
	if m.clearedevaluations {
		edges = append(edges, conversation.EdgeEvaluations)
	}
	if m.clearedmetrics {
		edges = append(edges, conversation.EdgeMetrics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeEvalRun:
		return m.clearedeval_run
	case conversation.EdgeEvaluations:
		return m.clearedevaluations
	case conversation.EdgeMetrics:
		return m.clearedmetrics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeEvalRun:
		m.ClearEvalRun()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeEvalRun:
		m.ResetEvalRun()
		return nil
	case conversation.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case conversation.EdgeMetrics:
		m.ResetMetrics()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// EvalRunMutation represents an operation that mutates the EvalRun nodes in the graph.
type EvalRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	rubric_id            *string
	num_conversations    *int
	addnum_conversations *int
	status               *evalrun.Status
	error_message        *string
	environment          *map[string]interface{}
	pod_id               *string
	last_heartbeat_at    *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	agent_config         *string
	clearedagent_config  bool
	scenario             *string
	clearedscenario      bool
	conversations        map[string]struct{}
	removedconversations map[string]struct{}
	clearedconversations bool
	evaluations          map[string]struct{}
	removedevaluations   map[string]struct{}
	clearedevaluations   bool
	metrics              map[string]struct{}
	removedmetrics       map[string]struct{}
	clearedmetrics       bool
	done                 bool
	oldValue             func(context.Context) (*EvalRun, error)
	predicates           []predicate.EvalRun
}

var _ ent.Mutation = (*EvalRunMutation)(nil)

// evalrunOption allows management of the mutation configuration using functional options.
type evalrunOption func(*EvalRunMutation)

// newEvalRunMutation creates new mutation for the EvalRun entity.
func newEvalRunMutation(c config, op Op, opts ...evalrunOption) *EvalRunMutation {
	m := &EvalRunMutation{
		config:        c,
		op:            op,
		typ:           TypeEvalRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvalRunID sets the ID field of the mutation.
func withEvalRunID(id string) evalrunOption {
	return func(m *EvalRunMutation) {
		var (
			err   error
			once  sync.Once
			value *EvalRun
		)
		m.oldValue = func(ctx context.Context) (*EvalRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvalRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvalRun sets the old EvalRun of the mutation.
func withEvalRun(node *EvalRun) evalrunOption {
	return func(m *EvalRunMutation) {
		m.oldValue = func(context.Context) (*EvalRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvalRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvalRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvalRun entities.
func (m *EvalRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvalRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvalRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvalRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *EvalRunMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EvalRunMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *EvalRunMutation) ClearName() {
	m.name = nil
	m.clearedFields[evalrun.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *EvalRunMutation) NameCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *EvalRunMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, evalrun.FieldName)
}

// SetAgentConfigID sets the "agent_config_id" field.
func (m *EvalRunMutation) SetAgentConfigID(s string) {
	m.agent_config = &s
}

// AgentConfigID returns the value of the "agent_config_id" field in the mutation.
func (m *EvalRunMutation) AgentConfigID() (r string, exists bool) {
	v := m.agent_config
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentConfigID returns the old "agent_config_id" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldAgentConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentConfigID: %w", err)
	}
	return oldValue.AgentConfigID, nil
}

// ResetAgentConfigID resets all changes to the "agent_config_id" field.
func (m *EvalRunMutation) ResetAgentConfigID() {
	m.agent_config = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *EvalRunMutation) SetScenarioID(s string) {
	m.scenario = &s
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *EvalRunMutation) ScenarioID() (r string, exists bool) {
	v := m.scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldScenarioID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *EvalRunMutation) ResetScenarioID() {
	m.scenario = nil
}

// SetRubricID sets the "rubric_id" field.
func (m *EvalRunMutation) SetRubricID(s string) {
	m.rubric_id = &s
}

// RubricID returns the value of the "rubric_id" field in the mutation.
func (m *EvalRunMutation) RubricID() (r string, exists bool) {
	v := m.rubric_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRubricID returns the old "rubric_id" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldRubricID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRubricID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRubricID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRubricID: %w", err)
	}
	return oldValue.RubricID, nil
}

// ClearRubricID clears the value of the "rubric_id" field.
func (m *EvalRunMutation) ClearRubricID() {
	m.rubric_id = nil
	m.clearedFields[evalrun.FieldRubricID] = struct{}{}
}

// RubricIDCleared returns if the "rubric_id" field was cleared in this mutation.
func (m *EvalRunMutation) RubricIDCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldRubricID]
	return ok
}

// ResetRubricID resets all changes to the "rubric_id" field.
func (m *EvalRunMutation) ResetRubricID() {
	m.rubric_id = nil
	delete(m.clearedFields, evalrun.FieldRubricID)
}

// SetNumConversations sets the "num_conversations" field.
func (m *EvalRunMutation) SetNumConversations(i int) {
	m.num_conversations = &i
	m.addnum_conversations = nil
}

// NumConversations returns the value of the "num_conversations" field in the mutation.
func (m *EvalRunMutation) NumConversations() (r int, exists bool) {
	v := m.num_conversations
	if v == nil {
		return
	}
	return *v, true
}

// OldNumConversations returns the old "num_conversations" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldNumConversations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumConversations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumConversations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumConversations: %w", err)
	}
	return oldValue.NumConversations, nil
}

// AddNumConversations adds i to the "num_conversations" field.
func (m *EvalRunMutation) AddNumConversations(i int) {
	if m.addnum_conversations != nil {
		*m.addnum_conversations += i
	} else {
		m.addnum_conversations = &i
	}
}

// AddedNumConversations returns the value that was added to the "num_conversations" field in this mutation.
func (m *EvalRunMutation) AddedNumConversations() (r int, exists bool) {
	v := m.addnum_conversations
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumConversations resets all changes to the "num_conversations" field.
func (m *EvalRunMutation) ResetNumConversations() {
	m.num_conversations = nil
	m.addnum_conversations = nil
}

// SetStatus sets the "status" field.
func (m *EvalRunMutation) SetStatus(e evalrun.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EvalRunMutation) Status() (r evalrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldStatus(ctx context.Context) (v evalrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvalRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *EvalRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EvalRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EvalRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[evalrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EvalRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EvalRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, evalrun.FieldErrorMessage)
}

// SetEnvironment sets the "environment" field.
func (m *EvalRunMutation) SetEnvironment(value map[string]interface{}) {
	m.environment = &value
}

// Environment returns the value of the "environment" field in the mutation.
func (m *EvalRunMutation) Environment() (r map[string]interface{}, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironment returns the old "environment" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldEnvironment(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironment: %w", err)
	}
	return oldValue.Environment, nil
}

// ClearEnvironment clears the value of the "environment" field.
func (m *EvalRunMutation) ClearEnvironment() {
	m.environment = nil
	m.clearedFields[evalrun.FieldEnvironment] = struct{}{}
}

// EnvironmentCleared returns if the "environment" field was cleared in this mutation.
func (m *EvalRunMutation) EnvironmentCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldEnvironment]
	return ok
}

// ResetEnvironment resets all changes to the "environment" field.
func (m *EvalRunMutation) ResetEnvironment() {
	m.environment = nil
	delete(m.clearedFields, evalrun.FieldEnvironment)
}

// SetPodID sets the "pod_id" field.
func (m *EvalRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *EvalRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *EvalRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[evalrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *EvalRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *EvalRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, evalrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *EvalRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *EvalRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *EvalRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[evalrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *EvalRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *EvalRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, evalrun.FieldLastHeartbeatAt)
}

// SetStartedAt sets the "started_at" field.
func (m *EvalRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *EvalRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *EvalRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[evalrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *EvalRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *EvalRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, evalrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *EvalRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EvalRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EvalRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[evalrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EvalRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[evalrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EvalRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, evalrun.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvalRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvalRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvalRun entity.
// If the EvalRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvalRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvalRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgentConfig clears the "agent_config" edge to the AgentConfig entity.
func (m *EvalRunMutation) ClearAgentConfig() {
	m.clearedagent_config = true
	m.clearedFields[evalrun.FieldAgentConfigID] = struct{}{}
}

// AgentConfigCleared reports if the "agent_config" edge to the AgentConfig entity was cleared.
func (m *EvalRunMutation) AgentConfigCleared() bool {
	return m.clearedagent_config
}

// AgentConfigIDs returns the "agent_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentConfigID instead. It exists only for internal usage by the builders.
func (m *EvalRunMutation) AgentConfigIDs() (ids []string) {
	if id := m.agent_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentConfig resets all changes to the "agent_config" edge.
func (m *EvalRunMutation) ResetAgentConfig() {
	m.agent_config = nil
	m.clearedagent_config = false
}

// ClearScenario clears the "scenario" edge to the Scenario entity.
func (m *EvalRunMutation) ClearScenario() {
	m.clearedscenario = true
	m.clearedFields[evalrun.FieldScenarioID] = struct{}{}
}

// ScenarioCleared reports if the "scenario" edge to the Scenario entity was cleared.
func (m *EvalRunMutation) ScenarioCleared() bool {
	return m.clearedscenario
}

// ScenarioIDs returns the "scenario" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScenarioID instead. It exists only for internal usage by the builders.
func (m *EvalRunMutation) ScenarioIDs() (ids []string) {
	if id := m.scenario; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScenario resets all changes to the "scenario" edge.
func (m *EvalRunMutation) ResetScenario() {
	m.scenario = nil
	m.clearedscenario = false
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *EvalRunMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *EvalRunMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *EvalRunMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *EvalRunMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *EvalRunMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *EvalRunMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *EvalRunMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *EvalRunMutation) AddEvaluationIDs(ids ...string) {
	if m.evaluations == nil {
		m.evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *EvalRunMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *EvalRunMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *EvalRunMutation) RemoveEvaluationIDs(ids ...string) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *EvalRunMutation) RemovedEvaluationsIDs() (ids []string) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *EvalRunMutation) EvaluationsIDs() (ids []string) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *EvalRunMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by ids.
func (m *EvalRunMutation) AddMetricIDs(ids ...string) {
	if m.metrics == nil {
		m.metrics = make(map[string]struct{})
	}
	for i := range ids {
		m.metrics[ids[i]] = struct{}{}
	}
}

// ClearMetrics clears the "metrics" edge to the Metric entity.
func (m *EvalRunMutation) ClearMetrics() {
	m.clearedmetrics = true
}

// MetricsCleared reports if the "metrics" edge to the Metric entity was cleared.
func (m *EvalRunMutation) MetricsCleared() bool {
	return m.clearedmetrics
}

// RemoveMetricIDs removes the "metrics" edge to the Metric entity by IDs.
func (m *EvalRunMutation) RemoveMetricIDs(ids ...string) {
	if m.removedmetrics == nil {
		m.removedmetrics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.metrics, ids[i])
		m.removedmetrics[ids[i]] = struct{}{}
	}
}

// RemovedMetrics returns the removed IDs of the "metrics" edge to the Metric entity.
func (m *EvalRunMutation) RemovedMetricsIDs() (ids []string) {
	for id := range m.removedmetrics {
		ids = append(ids, id)
	}
	return
}

// MetricsIDs returns the "metrics" edge IDs in the mutation.
func (m *EvalRunMutation) MetricsIDs() (ids []string) {
	for id := range m.metrics {
		ids = append(ids, id)
	}
	return
}

// ResetMetrics resets all changes to the "metrics" edge.
func (m *EvalRunMutation) ResetMetrics() {
	m.metrics = nil
	m.clearedmetrics = false
	m.removedmetrics = nil
}

// Where appends a list predicates to the EvalRunMutation builder.
func (m *EvalRunMutation) Where(ps ...predicate.EvalRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvalRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvalRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvalRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvalRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvalRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvalRun).
func (m *EvalRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvalRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, evalrun.FieldName)
	}
	if m.agent_config != nil {
		fields = append(fields, evalrun.FieldAgentConfigID)
	}
	if m.scenario != nil {
		fields = append(fields, evalrun.FieldScenarioID)
	}
	if m.rubric_id != nil {
		fields = append(fields, evalrun.FieldRubricID)
	}
	if m.num_conversations != nil {
		fields = append(fields, evalrun.FieldNumConversations)
	}
	if m.status != nil {
		fields = append(fields, evalrun.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, evalrun.FieldErrorMessage)
	}
	if m.environment != nil {
		fields = append(fields, evalrun.FieldEnvironment)
	}
	if m.pod_id != nil {
		fields = append(fields, evalrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, evalrun.FieldLastHeartbeatAt)
	}
	if m.started_at != nil {
		fields = append(fields, evalrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, evalrun.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, evalrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvalRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evalrun.FieldName:
		return m.Name()
	case evalrun.FieldAgentConfigID:
		return m.AgentConfigID()
	case evalrun.FieldScenarioID:
		return m.ScenarioID()
	case evalrun.FieldRubricID:
		return m.RubricID()
	case evalrun.FieldNumConversations:
		return m.NumConversations()
	case evalrun.FieldStatus:
		return m.Status()
	case evalrun.FieldErrorMessage:
		return m.ErrorMessage()
	case evalrun.FieldEnvironment:
		return m.Environment()
	case evalrun.FieldPodID:
		return m.PodID()
	case evalrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case evalrun.FieldStartedAt:
		return m.StartedAt()
	case evalrun.FieldCompletedAt:
		return m.CompletedAt()
	case evalrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvalRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evalrun.FieldName:
		return m.OldName(ctx)
	case evalrun.FieldAgentConfigID:
		return m.OldAgentConfigID(ctx)
	case evalrun.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case evalrun.FieldRubricID:
		return m.OldRubricID(ctx)
	case evalrun.FieldNumConversations:
		return m.OldNumConversations(ctx)
	case evalrun.FieldStatus:
		return m.OldStatus(ctx)
	case evalrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case evalrun.FieldEnvironment:
		return m.OldEnvironment(ctx)
	case evalrun.FieldPodID:
		return m.OldPodID(ctx)
	case evalrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case evalrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case evalrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case evalrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvalRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvalRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evalrun.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case evalrun.FieldAgentConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentConfigID(v)
		return nil
	case evalrun.FieldScenarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case evalrun.FieldRubricID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRubricID(v)
		return nil
	case evalrun.FieldNumConversations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumConversations(v)
		return nil
	case evalrun.FieldStatus:
		v, ok := value.(evalrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evalrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case evalrun.FieldEnvironment:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironment(v)
		return nil
	case evalrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case evalrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case evalrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case evalrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case evalrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvalRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvalRunMutation) AddedFields() []string {
	var fields []string
	if m.addnum_conversations != nil {
		fields = append(fields, evalrun.FieldNumConversations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvalRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evalrun.FieldNumConversations:
		return m.AddedNumConversations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvalRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evalrun.FieldNumConversations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumConversations(v)
		return nil
	}
	return fmt.Errorf("unknown EvalRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvalRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evalrun.FieldName) {
		fields = append(fields, evalrun.FieldName)
	}
	if m.FieldCleared(evalrun.FieldRubricID) {
		fields = append(fields, evalrun.FieldRubricID)
	}
	if m.FieldCleared(evalrun.FieldErrorMessage) {
		fields = append(fields, evalrun.FieldErrorMessage)
	}
	if m.FieldCleared(evalrun.FieldEnvironment) {
		fields = append(fields, evalrun.FieldEnvironment)
	}
	if m.FieldCleared(evalrun.FieldPodID) {
		fields = append(fields, evalrun.FieldPodID)
	}
	if m.FieldCleared(evalrun.FieldLastHeartbeatAt) {
		fields = append(fields, evalrun.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(evalrun.FieldStartedAt) {
		fields = append(fields, evalrun.FieldStartedAt)
	}
	if m.FieldCleared(evalrun.FieldCompletedAt) {
		fields = append(fields, evalrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvalRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvalRunMutation) ClearField(name string) error {
	switch name {
	case evalrun.FieldName:
		m.ClearName()
		return nil
	case evalrun.FieldRubricID:
		m.ClearRubricID()
		return nil
	case evalrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case evalrun.FieldEnvironment:
		m.ClearEnvironment()
		return nil
	case evalrun.FieldPodID:
		m.ClearPodID()
		return nil
	case evalrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case evalrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case evalrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown EvalRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvalRunMutation) ResetField(name string) error {
	switch name {
	case evalrun.FieldName:
		m.ResetName()
		return nil
	case evalrun.FieldAgentConfigID:
		m.ResetAgentConfigID()
		return nil
	case evalrun.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case evalrun.FieldRubricID:
		m.ResetRubricID()
		return nil
	case evalrun.FieldNumConversations:
		m.ResetNumConversations()
		return nil
	case evalrun.FieldStatus:
		m.ResetStatus()
		return nil
	case evalrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case evalrun.FieldEnvironment:
		m.ResetEnvironment()
		return nil
	case evalrun.FieldPodID:
		m.ResetPodID()
		return nil
	case evalrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case evalrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case evalrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case evalrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvalRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvalRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.agent_config != nil {
		edges = append(edges, evalrun.EdgeAgentConfig)
	}
	if m.scenario != nil {
		edges = append(edges, evalrun.EdgeScenario)
	}
	if m.conversations != nil {
		edges = append(edges, evalrun.EdgeConversations)
	}
	if m.evaluations != nil {
		edges = append(edges, evalrun.EdgeEvaluations)
	}
	if m.metrics != nil {
		edges = append(edges, evalrun.EdgeMetrics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvalRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evalrun.EdgeAgentConfig:
		if id := m.agent_config; id != nil {
			return []ent.Value{*id}
		}
	case evalrun.EdgeScenario:
		if id := m.scenario; id != nil {
			return []ent.Value{*id}
		}
	case evalrun.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	case evalrun.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case evalrun.EdgeMetrics:
		ids := make([]ent.Value, 0, len(m.metrics))
		for id := range m.metrics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvalRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedconversations != nil {
		edges = append(edges, evalrun.EdgeConversations)
	}
	if m.removedevaluations != nil {
		edges = append(edges, evalrun.EdgeEvaluations)
	}
	if m.removedmetrics != nil {
		edges = append(edges, evalrun.EdgeMetrics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvalRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evalrun.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	case evalrun.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	case evalrun.EdgeMetrics:
		ids := make([]ent.Value, 0, len(m.removedmetrics))
		for id := range m.removedmetrics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvalRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedagent_config {
		edges = append(edges, evalrun.EdgeAgentConfig)
	}
	if m.clearedscenario {
		edges = append(edges, evalrun.EdgeScenario)
	}
	if m.clearedconversations {
		edges = append(edges, evalrun.EdgeConversations)
	}
	if m.clearedevaluations {
		edges = append(edges, evalrun.EdgeEvaluations)
	}
	if m.clearedmetrics {
		edges = append(edges, evalrun.EdgeMetrics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvalRunMutation) EdgeCleared(name string) bool {
	switch name {
	case evalrun.EdgeAgentConfig:
		return m.clearedagent_config
	case evalrun.EdgeScenario:
		return m.clearedscenario
	case evalrun.EdgeConversations:
		return m.clearedconversations
	case evalrun.EdgeEvaluations:
		return m.clearedevaluations
	case evalrun.EdgeMetrics:
		return m.clearedmetrics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvalRunMutation) ClearEdge(name string) error {
	switch name {
	case evalrun.EdgeAgentConfig:
		m.ClearAgentConfig()
		return nil
	case evalrun.EdgeScenario:
		m.ClearScenario()
		return nil
	}
	return fmt.Errorf("unknown EvalRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvalRunMutation) ResetEdge(name string) error {
	switch name {
	case evalrun.EdgeAgentConfig:
		m.ResetAgentConfig()
		return nil
	case evalrun.EdgeScenario:
		m.ResetScenario()
		return nil
	case evalrun.EdgeConversations:
		m.ResetConversations()
		return nil
	case evalrun.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case evalrun.EdgeMetrics:
		m.ResetMetrics()
		return nil
	}
	return fmt.Errorf("unknown EvalRun edge %s", name)
}

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	evaluator_type      *evaluation.EvaluatorType
	scores              *map[string]float64
	overall_score       *float64
	addoverall_score    *float64
	reasoning           *string
	turn_scores         *[]map[string]interface{}
	appendturn_scores   []map[string]interface{}
	metadata            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	eval_run            *string
	clearedeval_run     bool
	done                bool
	oldValue            func(context.Context) (*Evaluation, error)
	predicates          []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id string) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evaluation entities.
func (m *EvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *EvaluationMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *EvaluationMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *EvaluationMutation) ResetConversationID() {
	m.conversation = nil
}

// SetEvalRunID sets the "eval_run_id" field.
func (m *EvaluationMutation) SetEvalRunID(s string) {
	m.eval_run = &s
}

// EvalRunID returns the value of the "eval_run_id" field in the mutation.
func (m *EvaluationMutation) EvalRunID() (r string, exists bool) {
	v := m.eval_run
	if v == nil {
		return
	}
	return *v, true
}

// OldEvalRunID returns the old "eval_run_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldEvalRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvalRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvalRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvalRunID: %w", err)
	}
	return oldValue.EvalRunID, nil
}

// ResetEvalRunID resets all changes to the "eval_run_id" field.
func (m *EvaluationMutation) ResetEvalRunID() {
	m.eval_run = nil
}

// SetEvaluatorType sets the "evaluator_type" field.
func (m *EvaluationMutation) SetEvaluatorType(et evaluation.EvaluatorType) {
	m.evaluator_type = &et
}

// EvaluatorType returns the value of the "evaluator_type" field in the mutation.
func (m *EvaluationMutation) EvaluatorType() (r evaluation.EvaluatorType, exists bool) {
	v := m.evaluator_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatorType returns the old "evaluator_type" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldEvaluatorType(ctx context.Context) (v evaluation.EvaluatorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatorType: %w", err)
	}
	return oldValue.EvaluatorType, nil
}

// ResetEvaluatorType resets all changes to the "evaluator_type" field.
func (m *EvaluationMutation) ResetEvaluatorType() {
	m.evaluator_type = nil
}

// SetScores sets the "scores" field.
func (m *EvaluationMutation) SetScores(value map[string]float64) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *EvaluationMutation) Scores() (r map[string]float64, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ResetScores resets all changes to the "scores" field.
func (m *EvaluationMutation) ResetScores() {
	m.scores = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *EvaluationMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *EvaluationMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *EvaluationMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *EvaluationMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *EvaluationMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetReasoning sets the "reasoning" field.
func (m *EvaluationMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *EvaluationMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *EvaluationMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[evaluation.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *EvaluationMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *EvaluationMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, evaluation.FieldReasoning)
}

// SetTurnScores sets the "turn_scores" field.
func (m *EvaluationMutation) SetTurnScores(value []map[string]interface{}) {
	m.turn_scores = &value
	m.appendturn_scores = nil
}

// TurnScores returns the value of the "turn_scores" field in the mutation.
func (m *EvaluationMutation) TurnScores() (r []map[string]interface{}, exists bool) {
	v := m.turn_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnScores returns the old "turn_scores" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldTurnScores(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnScores: %w", err)
	}
	return oldValue.TurnScores, nil
}

// AppendTurnScores adds value to the "turn_scores" field.
func (m *EvaluationMutation) AppendTurnScores(value []map[string]interface{}) {
	m.appendturn_scores = append(m.appendturn_scores, value...)
}

// AppendedTurnScores returns the list of values that were appended to the "turn_scores" field in this mutation.
func (m *EvaluationMutation) AppendedTurnScores() ([]map[string]interface{}, bool) {
	if len(m.appendturn_scores) == 0 {
		return nil, false
	}
	return m.appendturn_scores, true
}

// ClearTurnScores clears the value of the "turn_scores" field.
func (m *EvaluationMutation) ClearTurnScores() {
	m.turn_scores = nil
	m.appendturn_scores = nil
	m.clearedFields[evaluation.FieldTurnScores] = struct{}{}
}

// TurnScoresCleared returns if the "turn_scores" field was cleared in this mutation.
func (m *EvaluationMutation) TurnScoresCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldTurnScores]
	return ok
}

// ResetTurnScores resets all changes to the "turn_scores" field.
func (m *EvaluationMutation) ResetTurnScores() {
	m.turn_scores = nil
	m.appendturn_scores = nil
	delete(m.clearedFields, evaluation.FieldTurnScores)
}

// SetMetadata sets the "metadata" field.
func (m *EvaluationMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EvaluationMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EvaluationMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[evaluation.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EvaluationMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EvaluationMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, evaluation.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *EvaluationMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[evaluation.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *EvaluationMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *EvaluationMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// ClearEvalRun clears the "eval_run" edge to the EvalRun entity.
func (m *EvaluationMutation) ClearEvalRun() {
	m.clearedeval_run = true
	m.clearedFields[evaluation.FieldEvalRunID] = struct{}{}
}

// EvalRunCleared reports if the "eval_run" edge to the EvalRun entity was cleared.
func (m *EvaluationMutation) EvalRunCleared() bool {
	return m.clearedeval_run
}

// EvalRunIDs returns the "eval_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvalRunID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) EvalRunIDs() (ids []string) {
	if id := m.eval_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvalRun resets all changes to the "eval_run" edge.
func (m *EvaluationMutation) ResetEvalRun() {
	m.eval_run = nil
	m.clearedeval_run = false
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.conversation != nil {
		fields = append(fields, evaluation.FieldConversationID)
	}
	if m.eval_run != nil {
		fields = append(fields, evaluation.FieldEvalRunID)
	}
	if m.evaluator_type != nil {
		fields = append(fields, evaluation.FieldEvaluatorType)
	}
	if m.scores != nil {
		fields = append(fields, evaluation.FieldScores)
	}
	if m.overall_score != nil {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	if m.reasoning != nil {
		fields = append(fields, evaluation.FieldReasoning)
	}
	if m.turn_scores != nil {
		fields = append(fields, evaluation.FieldTurnScores)
	}
	if m.metadata != nil {
		fields = append(fields, evaluation.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, evaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldConversationID:
		return m.ConversationID()
	case evaluation.FieldEvalRunID:
		return m.EvalRunID()
	case evaluation.FieldEvaluatorType:
		return m.EvaluatorType()
	case evaluation.FieldScores:
		return m.Scores()
	case evaluation.FieldOverallScore:
		return m.OverallScore()
	case evaluation.FieldReasoning:
		return m.Reasoning()
	case evaluation.FieldTurnScores:
		return m.TurnScores()
	case evaluation.FieldMetadata:
		return m.Metadata()
	case evaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldConversationID:
		return m.OldConversationID(ctx)
	case evaluation.FieldEvalRunID:
		return m.OldEvalRunID(ctx)
	case evaluation.FieldEvaluatorType:
		return m.OldEvaluatorType(ctx)
	case evaluation.FieldScores:
		return m.OldScores(ctx)
	case evaluation.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case evaluation.FieldReasoning:
		return m.OldReasoning(ctx)
	case evaluation.FieldTurnScores:
		return m.OldTurnScores(ctx)
	case evaluation.FieldMetadata:
		return m.OldMetadata(ctx)
	case evaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case evaluation.FieldEvalRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvalRunID(v)
		return nil
	case evaluation.FieldEvaluatorType:
		v, ok := value.(evaluation.EvaluatorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatorType(v)
		return nil
	case evaluation.FieldScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case evaluation.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case evaluation.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case evaluation.FieldTurnScores:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnScores(v)
		return nil
	case evaluation.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case evaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldOverallScore:
		return m.AddedOverallScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluation.FieldReasoning) {
		fields = append(fields, evaluation.FieldReasoning)
	}
	if m.FieldCleared(evaluation.FieldTurnScores) {
		fields = append(fields, evaluation.FieldTurnScores)
	}
	if m.FieldCleared(evaluation.FieldMetadata) {
		fields = append(fields, evaluation.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	switch name {
	case evaluation.FieldReasoning:
		m.ClearReasoning()
		return nil
	case evaluation.FieldTurnScores:
		m.ClearTurnScores()
		return nil
	case evaluation.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldConversationID:
		m.ResetConversationID()
		return nil
	case evaluation.FieldEvalRunID:
		m.ResetEvalRunID()
		return nil
	case evaluation.FieldEvaluatorType:
		m.ResetEvaluatorType()
		return nil
	case evaluation.FieldScores:
		m.ResetScores()
		return nil
	case evaluation.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case evaluation.FieldReasoning:
		m.ResetReasoning()
		return nil
	case evaluation.FieldTurnScores:
		m.ResetTurnScores()
		return nil
	case evaluation.FieldMetadata:
		m.ResetMetadata()
		return nil
	case evaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conversation != nil {
		edges = append(edges, evaluation.EdgeConversation)
	}
	if m.eval_run != nil {
		edges = append(edges, evaluation.EdgeEvalRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case evaluation.EdgeEvalRun:
		if id := m.eval_run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconversation {
		edges = append(edges, evaluation.EdgeConversation)
	}
	if m.clearedeval_run {
		edges = append(edges, evaluation.EdgeEvalRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeConversation:
		return m.clearedconversation
	case evaluation.EdgeEvalRun:
		return m.clearedeval_run
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeConversation:
		m.ClearConversation()
		return nil
	case evaluation.EdgeEvalRun:
		m.ClearEvalRun()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeConversation:
		m.ResetConversation()
		return nil
	case evaluation.EdgeEvalRun:
		m.ResetEvalRun()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// MetricMutation represents an operation that mutates the Metric nodes in the graph.
type MetricMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	value               *float64
	addvalue            *float64
	unit                *string
	metadata            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	eval_run            *string
	clearedeval_run     bool
	done                bool
	oldValue            func(context.Context) (*Metric, error)
	predicates          []predicate.Metric
}

var _ ent.Mutation = (*MetricMutation)(nil)

// metricOption allows management of the mutation configuration using functional options.
type metricOption func(*MetricMutation)

// newMetricMutation creates new mutation for the Metric entity.
func newMetricMutation(c config, op Op, opts ...metricOption) *MetricMutation {
	m := &MetricMutation{
		config:        c,
		op:            op,
		typ:           TypeMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricID sets the ID field of the mutation.
func withMetricID(id string) metricOption {
	return func(m *MetricMutation) {
		var (
			err   error
			once  sync.Once
			value *Metric
		)
		m.oldValue = func(ctx context.Context) (*Metric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Metric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetric sets the old Metric of the mutation.
func withMetric(node *Metric) metricOption {
	return func(m *MetricMutation) {
		m.oldValue = func(context.Context) (*Metric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Metric entities.
func (m *MetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Metric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MetricMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MetricMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MetricMutation) ResetConversationID() {
	m.conversation = nil
}

// SetEvalRunID sets the "eval_run_id" field.
func (m *MetricMutation) SetEvalRunID(s string) {
	m.eval_run = &s
}

// EvalRunID returns the value of the "eval_run_id" field in the mutation.
func (m *MetricMutation) EvalRunID() (r string, exists bool) {
	v := m.eval_run
	if v == nil {
		return
	}
	return *v, true
}

// OldEvalRunID returns the old "eval_run_id" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldEvalRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvalRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvalRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvalRunID: %w", err)
	}
	return oldValue.EvalRunID, nil
}

// ResetEvalRunID resets all changes to the "eval_run_id" field.
func (m *MetricMutation) ResetEvalRunID() {
	m.eval_run = nil
}

// SetName sets the "name" field.
func (m *MetricMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MetricMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MetricMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *MetricMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *MetricMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *MetricMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *MetricMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *MetricMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUnit sets the "unit" field.
func (m *MetricMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *MetricMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *MetricMutation) ResetUnit() {
	m.unit = nil
}

// SetMetadata sets the "metadata" field.
func (m *MetricMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MetricMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MetricMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[metric.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MetricMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[metric.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MetricMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, metric.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Metric entity.
// If the Metric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MetricMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[metric.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MetricMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MetricMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MetricMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// ClearEvalRun clears the "eval_run" edge to the EvalRun entity.
func (m *MetricMutation) ClearEvalRun() {
	m.clearedeval_run = true
	m.clearedFields[metric.FieldEvalRunID] = struct{}{}
}

// EvalRunCleared reports if the "eval_run" edge to the EvalRun entity was cleared.
func (m *MetricMutation) EvalRunCleared() bool {
	return m.clearedeval_run
}

// EvalRunIDs returns the "eval_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvalRunID instead. It exists only for internal usage by the builders.
func (m *MetricMutation) EvalRunIDs() (ids []string) {
	if id := m.eval_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvalRun resets all changes to the "eval_run" edge.
func (m *MetricMutation) ResetEvalRun() {
	m.eval_run = nil
	m.clearedeval_run = false
}

// Where appends a list predicates to the MetricMutation builder.
func (m *MetricMutation) Where(ps ...predicate.Metric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Metric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Metric).
func (m *MetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.conversation != nil {
		fields = append(fields, metric.FieldConversationID)
	}
	if m.eval_run != nil {
		fields = append(fields, metric.FieldEvalRunID)
	}
	if m.name != nil {
		fields = append(fields, metric.FieldName)
	}
	if m.value != nil {
		fields = append(fields, metric.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, metric.FieldUnit)
	}
	if m.metadata != nil {
		fields = append(fields, metric.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, metric.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metric.FieldConversationID:
		return m.ConversationID()
	case metric.FieldEvalRunID:
		return m.EvalRunID()
	case metric.FieldName:
		return m.Name()
	case metric.FieldValue:
		return m.Value()
	case metric.FieldUnit:
		return m.Unit()
	case metric.FieldMetadata:
		return m.Metadata()
	case metric.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metric.FieldConversationID:
		return m.OldConversationID(ctx)
	case metric.FieldEvalRunID:
		return m.OldEvalRunID(ctx)
	case metric.FieldName:
		return m.OldName(ctx)
	case metric.FieldValue:
		return m.OldValue(ctx)
	case metric.FieldUnit:
		return m.OldUnit(ctx)
	case metric.FieldMetadata:
		return m.OldMetadata(ctx)
	case metric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Metric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metric.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case metric.FieldEvalRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvalRunID(v)
		return nil
	case metric.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case metric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case metric.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case metric.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case metric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Metric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, metric.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metric.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Metric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(metric.FieldMetadata) {
		fields = append(fields, metric.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricMutation) ClearField(name string) error {
	switch name {
	case metric.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Metric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricMutation) ResetField(name string) error {
	switch name {
	case metric.FieldConversationID:
		m.ResetConversationID()
		return nil
	case metric.FieldEvalRunID:
		m.ResetEvalRunID()
		return nil
	case metric.FieldName:
		m.ResetName()
		return nil
	case metric.FieldValue:
		m.ResetValue()
		return nil
	case metric.FieldUnit:
		m.ResetUnit()
		return nil
	case metric.FieldMetadata:
		m.ResetMetadata()
		return nil
	case metric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Metric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conversation != nil {
		edges = append(edges, metric.EdgeConversation)
	}
	if m.eval_run != nil {
		edges = append(edges, metric.EdgeEvalRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case metric.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case metric.EdgeEvalRun:
		if id := m.eval_run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconversation {
		edges = append(edges, metric.EdgeConversation)
	}
	if m.clearedeval_run {
		edges = append(edges, metric.EdgeEvalRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricMutation) EdgeCleared(name string) bool {
	switch name {
	case metric.EdgeConversation:
		return m.clearedconversation
	case metric.EdgeEvalRun:
		return m.clearedeval_run
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricMutation) ClearEdge(name string) error {
	switch name {
	case metric.EdgeConversation:
		m.ClearConversation()
		return nil
	case metric.EdgeEvalRun:
		m.ClearEvalRun()
		return nil
	}
	return fmt.Errorf("unknown Metric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricMutation) ResetEdge(name string) error {
	switch name {
	case metric.EdgeConversation:
		m.ResetConversation()
		return nil
	case metric.EdgeEvalRun:
		m.ResetEvalRun()
		return nil
	}
	return fmt.Errorf("unknown Metric edge %s", name)
}

// PipelineMessageMutation represents an operation that mutates the PipelineMessage nodes in the graph.
type PipelineMessageMutation struct {
	config
	op             Op
	typ            string
	id             *int
	topic          *string
	consumer_group *string
	key            *string
	value          *string
	status         *pipelinemessage.Status
	attempts       *int
	addattempts    *int
	last_error     *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PipelineMessage, error)
	predicates     []predicate.PipelineMessage
}

var _ ent.Mutation = (*PipelineMessageMutation)(nil)

// pipelinemessageOption allows management of the mutation configuration using functional options.
type pipelinemessageOption func(*PipelineMessageMutation)

// newPipelineMessageMutation creates new mutation for the PipelineMessage entity.
func newPipelineMessageMutation(c config, op Op, opts ...pipelinemessageOption) *PipelineMessageMutation {
	m := &PipelineMessageMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineMessageID sets the ID field of the mutation.
func withPipelineMessageID(id int) pipelinemessageOption {
	return func(m *PipelineMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineMessage
		)
		m.oldValue = func(ctx context.Context) (*PipelineMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineMessage sets the old PipelineMessage of the mutation.
func withPipelineMessage(node *PipelineMessage) pipelinemessageOption {
	return func(m *PipelineMessageMutation) {
		m.oldValue = func(context.Context) (*PipelineMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *PipelineMessageMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PipelineMessageMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PipelineMessageMutation) ResetTopic() {
	m.topic = nil
}

// SetConsumerGroup sets the "consumer_group" field.
func (m *PipelineMessageMutation) SetConsumerGroup(s string) {
	m.consumer_group = &s
}

// ConsumerGroup returns the value of the "consumer_group" field in the mutation.
func (m *PipelineMessageMutation) ConsumerGroup() (r string, exists bool) {
	v := m.consumer_group
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumerGroup returns the old "consumer_group" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldConsumerGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumerGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumerGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumerGroup: %w", err)
	}
	return oldValue.ConsumerGroup, nil
}

// ResetConsumerGroup resets all changes to the "consumer_group" field.
func (m *PipelineMessageMutation) ResetConsumerGroup() {
	m.consumer_group = nil
}

// SetKey sets the "key" field.
func (m *PipelineMessageMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *PipelineMessageMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ClearKey clears the value of the "key" field.
func (m *PipelineMessageMutation) ClearKey() {
	m.key = nil
	m.clearedFields[pipelinemessage.FieldKey] = struct{}{}
}

// KeyCleared returns if the "key" field was cleared in this mutation.
func (m *PipelineMessageMutation) KeyCleared() bool {
	_, ok := m.clearedFields[pipelinemessage.FieldKey]
	return ok
}

// ResetKey resets all changes to the "key" field.
func (m *PipelineMessageMutation) ResetKey() {
	m.key = nil
	delete(m.clearedFields, pipelinemessage.FieldKey)
}

// SetValue sets the "value" field.
func (m *PipelineMessageMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *PipelineMessageMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *PipelineMessageMutation) ResetValue() {
	m.value = nil
}

// SetStatus sets the "status" field.
func (m *PipelineMessageMutation) SetStatus(pi pipelinemessage.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineMessageMutation) Status() (r pipelinemessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldStatus(ctx context.Context) (v pipelinemessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineMessageMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *PipelineMessageMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *PipelineMessageMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *PipelineMessageMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *PipelineMessageMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *PipelineMessageMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *PipelineMessageMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PipelineMessageMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PipelineMessageMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[pipelinemessage.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PipelineMessageMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[pipelinemessage.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PipelineMessageMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, pipelinemessage.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineMessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineMessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineMessage entity.
// If the PipelineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineMessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PipelineMessageMutation builder.
func (m *PipelineMessageMutation) Where(ps ...predicate.PipelineMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineMessage).
func (m *PipelineMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.topic != nil {
		fields = append(fields, pipelinemessage.FieldTopic)
	}
	if m.consumer_group != nil {
		fields = append(fields, pipelinemessage.FieldConsumerGroup)
	}
	if m.key != nil {
		fields = append(fields, pipelinemessage.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, pipelinemessage.FieldValue)
	}
	if m.status != nil {
		fields = append(fields, pipelinemessage.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, pipelinemessage.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, pipelinemessage.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinemessage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinemessage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinemessage.FieldTopic:
		return m.Topic()
	case pipelinemessage.FieldConsumerGroup:
		return m.ConsumerGroup()
	case pipelinemessage.FieldKey:
		return m.Key()
	case pipelinemessage.FieldValue:
		return m.Value()
	case pipelinemessage.FieldStatus:
		return m.Status()
	case pipelinemessage.FieldAttempts:
		return m.Attempts()
	case pipelinemessage.FieldLastError:
		return m.LastError()
	case pipelinemessage.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinemessage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinemessage.FieldTopic:
		return m.OldTopic(ctx)
	case pipelinemessage.FieldConsumerGroup:
		return m.OldConsumerGroup(ctx)
	case pipelinemessage.FieldKey:
		return m.OldKey(ctx)
	case pipelinemessage.FieldValue:
		return m.OldValue(ctx)
	case pipelinemessage.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinemessage.FieldAttempts:
		return m.OldAttempts(ctx)
	case pipelinemessage.FieldLastError:
		return m.OldLastError(ctx)
	case pipelinemessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinemessage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinemessage.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case pipelinemessage.FieldConsumerGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumerGroup(v)
		return nil
	case pipelinemessage.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case pipelinemessage.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case pipelinemessage.FieldStatus:
		v, ok := value.(pipelinemessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinemessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case pipelinemessage.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case pipelinemessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinemessage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineMessageMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, pipelinemessage.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinemessage.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinemessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinemessage.FieldKey) {
		fields = append(fields, pipelinemessage.FieldKey)
	}
	if m.FieldCleared(pipelinemessage.FieldLastError) {
		fields = append(fields, pipelinemessage.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineMessageMutation) ClearField(name string) error {
	switch name {
	case pipelinemessage.FieldKey:
		m.ClearKey()
		return nil
	case pipelinemessage.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown PipelineMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineMessageMutation) ResetField(name string) error {
	switch name {
	case pipelinemessage.FieldTopic:
		m.ResetTopic()
		return nil
	case pipelinemessage.FieldConsumerGroup:
		m.ResetConsumerGroup()
		return nil
	case pipelinemessage.FieldKey:
		m.ResetKey()
		return nil
	case pipelinemessage.FieldValue:
		m.ResetValue()
		return nil
	case pipelinemessage.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinemessage.FieldAttempts:
		m.ResetAttempts()
		return nil
	case pipelinemessage.FieldLastError:
		m.ResetLastError()
		return nil
	case pipelinemessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinemessage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineMessage edge %s", name)
}

// RubricMutation represents an operation that mutates the Rubric nodes in the graph.
type RubricMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	version          *int
	addversion       *int
	parent_id        *string
	dimensions       *[]map[string]interface{}
	appenddimensions []map[string]interface{}
	is_default       *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Rubric, error)
	predicates       []predicate.Rubric
}

var _ ent.Mutation = (*RubricMutation)(nil)

// rubricOption allows management of the mutation configuration using functional options.
type rubricOption func(*RubricMutation)

// newRubricMutation creates new mutation for the Rubric entity.
func newRubricMutation(c config, op Op, opts ...rubricOption) *RubricMutation {
	m := &RubricMutation{
		config:        c,
		op:            op,
		typ:           TypeRubric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRubricID sets the ID field of the mutation.
func withRubricID(id string) rubricOption {
	return func(m *RubricMutation) {
		var (
			err   error
			once  sync.Once
			value *Rubric
		)
		m.oldValue = func(ctx context.Context) (*Rubric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rubric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRubric sets the old Rubric of the mutation.
func withRubric(node *Rubric) rubricOption {
	return func(m *RubricMutation) {
		m.oldValue = func(context.Context) (*Rubric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RubricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RubricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rubric entities.
func (m *RubricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RubricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RubricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rubric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RubricMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RubricMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Rubric entity.
// If the Rubric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RubricMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RubricMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *RubricMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RubricMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Rubric entity.
// If the Rubric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RubricMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RubricMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RubricMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RubricMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetParentID sets the "parent_id" field.
func (m *RubricMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *RubricMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Rubric entity.
// If the Rubric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RubricMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *RubricMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[rubric.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *RubricMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[rubric.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *RubricMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, rubric.FieldParentID)
}

// SetDimensions sets the "dimensions" field.
func (m *RubricMutation) SetDimensions(value []map[string]interface{}) {
	m.dimensions = &value
	m.appenddimensions = nil
}

// Dimensions returns the value of the "dimensions" field in the mutation.
func (m *RubricMutation) Dimensions() (r []map[string]interface{}, exists bool) {
	v := m.dimensions
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensions returns the old "dimensions" field's value of the Rubric entity.
// If the Rubric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RubricMutation) OldDimensions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensions: %w", err)
	}
	return oldValue.Dimensions, nil
}

// AppendDimensions adds value to the "dimensions" field.
func (m *RubricMutation) AppendDimensions(value []map[string]interface{}) {
	m.appenddimensions = append(m.appenddimensions, value...)
}

// AppendedDimensions returns the list of values that were appended to the "dimensions" field in this mutation.
func (m *RubricMutation) AppendedDimensions() ([]map[string]interface{}, bool) {
	if len(m.appenddimensions) == 0 {
		return nil, false
	}
	return m.appenddimensions, true
}

// ResetDimensions resets all changes to the "dimensions" field.
func (m *RubricMutation) ResetDimensions() {
	m.dimensions = nil
	m.appenddimensions = nil
}

// SetIsDefault sets the "is_default" field.
func (m *RubricMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *RubricMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Rubric entity.
// If the Rubric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RubricMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *RubricMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RubricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RubricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rubric entity.
// If the Rubric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RubricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RubricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RubricMutation builder.
func (m *RubricMutation) Where(ps ...predicate.Rubric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RubricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RubricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rubric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RubricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RubricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rubric).
func (m *RubricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RubricMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, rubric.FieldName)
	}
	if m.version != nil {
		fields = append(fields, rubric.FieldVersion)
	}
	if m.parent_id != nil {
		fields = append(fields, rubric.FieldParentID)
	}
	if m.dimensions != nil {
		fields = append(fields, rubric.FieldDimensions)
	}
	if m.is_default != nil {
		fields = append(fields, rubric.FieldIsDefault)
	}
	if m.created_at != nil {
		fields = append(fields, rubric.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RubricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rubric.FieldName:
		return m.Name()
	case rubric.FieldVersion:
		return m.Version()
	case rubric.FieldParentID:
		return m.ParentID()
	case rubric.FieldDimensions:
		return m.Dimensions()
	case rubric.FieldIsDefault:
		return m.IsDefault()
	case rubric.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RubricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rubric.FieldName:
		return m.OldName(ctx)
	case rubric.FieldVersion:
		return m.OldVersion(ctx)
	case rubric.FieldParentID:
		return m.OldParentID(ctx)
	case rubric.FieldDimensions:
		return m.OldDimensions(ctx)
	case rubric.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case rubric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rubric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RubricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rubric.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case rubric.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case rubric.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case rubric.FieldDimensions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensions(v)
		return nil
	case rubric.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case rubric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rubric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RubricMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, rubric.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RubricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rubric.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RubricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rubric.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Rubric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RubricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rubric.FieldParentID) {
		fields = append(fields, rubric.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RubricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RubricMutation) ClearField(name string) error {
	switch name {
	case rubric.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown Rubric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RubricMutation) ResetField(name string) error {
	switch name {
	case rubric.FieldName:
		m.ResetName()
		return nil
	case rubric.FieldVersion:
		m.ResetVersion()
		return nil
	case rubric.FieldParentID:
		m.ResetParentID()
		return nil
	case rubric.FieldDimensions:
		m.ResetDimensions()
		return nil
	case rubric.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case rubric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rubric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RubricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RubricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RubricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RubricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RubricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RubricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RubricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Rubric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RubricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Rubric edge %s", name)
}

// ScenarioMutation represents an operation that mutates the Scenario nodes in the graph.
type ScenarioMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	name                         *string
	description                  *string
	goal                         *string
	user_personality             *string
	expertise_level              *scenario.ExpertiseLevel
	initial_message              *string
	turns_template               *[]map[string]interface{}
	appendturns_template         []map[string]interface{}
	expected_tool_sequence       *[]string
	appendexpected_tool_sequence []string
	difficulty                   *scenario.Difficulty
	tags                         *[]string
	appendtags                   []string
	max_turns                    *int
	addmax_turns                 *int
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	eval_runs                    map[string]struct{}
	removedeval_runs             map[string]struct{}
	clearedeval_runs             bool
	done                         bool
	oldValue                     func(context.Context) (*Scenario, error)
	predicates                   []predicate.Scenario
}

var _ ent.Mutation = (*ScenarioMutation)(nil)

// scenarioOption allows management of the mutation configuration using functional options.
type scenarioOption func(*ScenarioMutation)

// newScenarioMutation creates new mutation for the Scenario entity.
func newScenarioMutation(c config, op Op, opts ...scenarioOption) *ScenarioMutation {
	m := &ScenarioMutation{
		config:        c,
		op:            op,
		typ:           TypeScenario,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioID sets the ID field of the mutation.
func withScenarioID(id string) scenarioOption {
	return func(m *ScenarioMutation) {
		var (
			err   error
			once  sync.Once
			value *Scenario
		)
		m.oldValue = func(ctx context.Context) (*Scenario, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scenario.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenario sets the old Scenario of the mutation.
func withScenario(node *Scenario) scenarioOption {
	return func(m *ScenarioMutation) {
		m.oldValue = func(context.Context) (*Scenario, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scenario entities.
func (m *ScenarioMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scenario.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ScenarioMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScenarioMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScenarioMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ScenarioMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ScenarioMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ScenarioMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[scenario.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ScenarioMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[scenario.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ScenarioMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, scenario.FieldDescription)
}

// SetGoal sets the "goal" field.
func (m *ScenarioMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *ScenarioMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *ScenarioMutation) ResetGoal() {
	m.goal = nil
}

// SetUserPersonality sets the "user_personality" field.
func (m *ScenarioMutation) SetUserPersonality(s string) {
	m.user_personality = &s
}

// UserPersonality returns the value of the "user_personality" field in the mutation.
func (m *ScenarioMutation) UserPersonality() (r string, exists bool) {
	v := m.user_personality
	if v == nil {
		return
	}
	return *v, true
}

// OldUserPersonality returns the old "user_personality" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldUserPersonality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserPersonality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserPersonality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserPersonality: %w", err)
	}
	return oldValue.UserPersonality, nil
}

// ResetUserPersonality resets all changes to the "user_personality" field.
func (m *ScenarioMutation) ResetUserPersonality() {
	m.user_personality = nil
}

// SetExpertiseLevel sets the "expertise_level" field.
func (m *ScenarioMutation) SetExpertiseLevel(sl scenario.ExpertiseLevel) {
	m.expertise_level = &sl
}

// ExpertiseLevel returns the value of the "expertise_level" field in the mutation.
func (m *ScenarioMutation) ExpertiseLevel() (r scenario.ExpertiseLevel, exists bool) {
	v := m.expertise_level
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertiseLevel returns the old "expertise_level" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldExpertiseLevel(ctx context.Context) (v scenario.ExpertiseLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertiseLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertiseLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertiseLevel: %w", err)
	}
	return oldValue.ExpertiseLevel, nil
}

// ResetExpertiseLevel resets all changes to the "expertise_level" field.
func (m *ScenarioMutation) ResetExpertiseLevel() {
	m.expertise_level = nil
}

// SetInitialMessage sets the "initial_message" field.
func (m *ScenarioMutation) SetInitialMessage(s string) {
	m.initial_message = &s
}

// InitialMessage returns the value of the "initial_message" field in the mutation.
func (m *ScenarioMutation) InitialMessage() (r string, exists bool) {
	v := m.initial_message
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialMessage returns the old "initial_message" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldInitialMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialMessage: %w", err)
	}
	return oldValue.InitialMessage, nil
}

// ClearInitialMessage clears the value of the "initial_message" field.
func (m *ScenarioMutation) ClearInitialMessage() {
	m.initial_message = nil
	m.clearedFields[scenario.FieldInitialMessage] = struct{}{}
}

// InitialMessageCleared returns if the "initial_message" field was cleared in this mutation.
func (m *ScenarioMutation) InitialMessageCleared() bool {
	_, ok := m.clearedFields[scenario.FieldInitialMessage]
	return ok
}

// ResetInitialMessage resets all changes to the "initial_message" field.
func (m *ScenarioMutation) ResetInitialMessage() {
	m.initial_message = nil
	delete(m.clearedFields, scenario.FieldInitialMessage)
}

// SetTurnsTemplate sets the "turns_template" field.
func (m *ScenarioMutation) SetTurnsTemplate(value []map[string]interface{}) {
	m.turns_template = &value
	m.appendturns_template = nil
}

// TurnsTemplate returns the value of the "turns_template" field in the mutation.
func (m *ScenarioMutation) TurnsTemplate() (r []map[string]interface{}, exists bool) {
	v := m.turns_template
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnsTemplate returns the old "turns_template" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldTurnsTemplate(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnsTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnsTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnsTemplate: %w", err)
	}
	return oldValue.TurnsTemplate, nil
}

// AppendTurnsTemplate adds value to the "turns_template" field.
func (m *ScenarioMutation) AppendTurnsTemplate(value []map[string]interface{}) {
	m.appendturns_template = append(m.appendturns_template, value...)
}

// AppendedTurnsTemplate returns the list of values that were appended to the "turns_template" field in this mutation.
func (m *ScenarioMutation) AppendedTurnsTemplate() ([]map[string]interface{}, bool) {
	if len(m.appendturns_template) == 0 {
		return nil, false
	}
	return m.appendturns_template, true
}

// ClearTurnsTemplate clears the value of the "turns_template" field.
func (m *ScenarioMutation) ClearTurnsTemplate() {
	m.turns_template = nil
	m.appendturns_template = nil
	m.clearedFields[scenario.FieldTurnsTemplate] = struct{}{}
}

// TurnsTemplateCleared returns if the "turns_template" field was cleared in this mutation.
func (m *ScenarioMutation) TurnsTemplateCleared() bool {
	_, ok := m.clearedFields[scenario.FieldTurnsTemplate]
	return ok
}

// ResetTurnsTemplate resets all changes to the "turns_template" field.
func (m *ScenarioMutation) ResetTurnsTemplate() {
	m.turns_template = nil
	m.appendturns_template = nil
	delete(m.clearedFields, scenario.FieldTurnsTemplate)
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (m *ScenarioMutation) SetExpectedToolSequence(s []string) {
	m.expected_tool_sequence = &s
	m.appendexpected_tool_sequence = nil
}

// ExpectedToolSequence returns the value of the "expected_tool_sequence" field in the mutation.
func (m *ScenarioMutation) ExpectedToolSequence() (r []string, exists bool) {
	v := m.expected_tool_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedToolSequence returns the old "expected_tool_sequence" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldExpectedToolSequence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedToolSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedToolSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedToolSequence: %w", err)
	}
	return oldValue.ExpectedToolSequence, nil
}

// AppendExpectedToolSequence adds s to the "expected_tool_sequence" field.
func (m *ScenarioMutation) AppendExpectedToolSequence(s []string) {
	m.appendexpected_tool_sequence = append(m.appendexpected_tool_sequence, s...)
}

// AppendedExpectedToolSequence returns the list of values that were appended to the "expected_tool_sequence" field in this mutation.
func (m *ScenarioMutation) AppendedExpectedToolSequence() ([]string, bool) {
	if len(m.appendexpected_tool_sequence) == 0 {
		return nil, false
	}
	return m.appendexpected_tool_sequence, true
}

// ClearExpectedToolSequence clears the value of the "expected_tool_sequence" field.
func (m *ScenarioMutation) ClearExpectedToolSequence() {
	m.expected_tool_sequence = nil
	m.appendexpected_tool_sequence = nil
	m.clearedFields[scenario.FieldExpectedToolSequence] = struct{}{}
}

// ExpectedToolSequenceCleared returns if the "expected_tool_sequence" field was cleared in this mutation.
func (m *ScenarioMutation) ExpectedToolSequenceCleared() bool {
	_, ok := m.clearedFields[scenario.FieldExpectedToolSequence]
	return ok
}

// ResetExpectedToolSequence resets all changes to the "expected_tool_sequence" field.
func (m *ScenarioMutation) ResetExpectedToolSequence() {
	m.expected_tool_sequence = nil
	m.appendexpected_tool_sequence = nil
	delete(m.clearedFields, scenario.FieldExpectedToolSequence)
}

// SetDifficulty sets the "difficulty" field.
func (m *ScenarioMutation) SetDifficulty(s scenario.Difficulty) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ScenarioMutation) Difficulty() (r scenario.Difficulty, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldDifficulty(ctx context.Context) (v scenario.Difficulty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ScenarioMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetTags sets the "tags" field.
func (m *ScenarioMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ScenarioMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ScenarioMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ScenarioMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ScenarioMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[scenario.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ScenarioMutation) TagsCleared() bool {
	_, ok := m.clearedFields[scenario.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ScenarioMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, scenario.FieldTags)
}

// SetMaxTurns sets the "max_turns" field.
func (m *ScenarioMutation) SetMaxTurns(i int) {
	m.max_turns = &i
	m.addmax_turns = nil
}

// MaxTurns returns the value of the "max_turns" field in the mutation.
func (m *ScenarioMutation) MaxTurns() (r int, exists bool) {
	v := m.max_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTurns returns the old "max_turns" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldMaxTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTurns: %w", err)
	}
	return oldValue.MaxTurns, nil
}

// AddMaxTurns adds i to the "max_turns" field.
func (m *ScenarioMutation) AddMaxTurns(i int) {
	if m.addmax_turns != nil {
		*m.addmax_turns += i
	} else {
		m.addmax_turns = &i
	}
}

// AddedMaxTurns returns the value that was added to the "max_turns" field in this mutation.
func (m *ScenarioMutation) AddedMaxTurns() (r int, exists bool) {
	v := m.addmax_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTurns resets all changes to the "max_turns" field.
func (m *ScenarioMutation) ResetMaxTurns() {
	m.max_turns = nil
	m.addmax_turns = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScenarioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScenarioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScenarioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by ids.
func (m *ScenarioMutation) AddEvalRunIDs(ids ...string) {
	if m.eval_runs == nil {
		m.eval_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.eval_runs[ids[i]] = struct{}{}
	}
}

// ClearEvalRuns clears the "eval_runs" edge to the EvalRun entity.
func (m *ScenarioMutation) ClearEvalRuns() {
	m.clearedeval_runs = true
}

// EvalRunsCleared reports if the "eval_runs" edge to the EvalRun entity was cleared.
func (m *ScenarioMutation) EvalRunsCleared() bool {
	return m.clearedeval_runs
}

// RemoveEvalRunIDs removes the "eval_runs" edge to the EvalRun entity by IDs.
func (m *ScenarioMutation) RemoveEvalRunIDs(ids ...string) {
	if m.removedeval_runs == nil {
		m.removedeval_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.eval_runs, ids[i])
		m.removedeval_runs[ids[i]] = struct{}{}
	}
}

// RemovedEvalRuns returns the removed IDs of the "eval_runs" edge to the EvalRun entity.
func (m *ScenarioMutation) RemovedEvalRunsIDs() (ids []string) {
	for id := range m.removedeval_runs {
		ids = append(ids, id)
	}
	return
}

// EvalRunsIDs returns the "eval_runs" edge IDs in the mutation.
func (m *ScenarioMutation) EvalRunsIDs() (ids []string) {
	for id := range m.eval_runs {
		ids = append(ids, id)
	}
	return
}

// ResetEvalRuns resets all changes to the "eval_runs" edge.
func (m *ScenarioMutation) ResetEvalRuns() {
	m.eval_runs = nil
	m.clearedeval_runs = false
	m.removedeval_runs = nil
}

// Where appends a list predicates to the ScenarioMutation builder.
func (m *ScenarioMutation) Where(ps ...predicate.Scenario) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scenario, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scenario).
func (m *ScenarioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.name != nil {
		fields = append(fields, scenario.FieldName)
	}
	if m.description != nil {
		fields = append(fields, scenario.FieldDescription)
	}
	if m.goal != nil {
		fields = append(fields, scenario.FieldGoal)
	}
	if m.user_personality != nil {
		fields = append(fields, scenario.FieldUserPersonality)
	}
	if m.expertise_level != nil {
		fields = append(fields, scenario.FieldExpertiseLevel)
	}
	if m.initial_message != nil {
		fields = append(fields, scenario.FieldInitialMessage)
	}
	if m.turns_template != nil {
		fields = append(fields, scenario.FieldTurnsTemplate)
	}
	if m.expected_tool_sequence != nil {
		fields = append(fields, scenario.FieldExpectedToolSequence)
	}
	if m.difficulty != nil {
		fields = append(fields, scenario.FieldDifficulty)
	}
	if m.tags != nil {
		fields = append(fields, scenario.FieldTags)
	}
	if m.max_turns != nil {
		fields = append(fields, scenario.FieldMaxTurns)
	}
	if m.created_at != nil {
		fields = append(fields, scenario.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenario.FieldName:
		return m.Name()
	case scenario.FieldDescription:
		return m.Description()
	case scenario.FieldGoal:
		return m.Goal()
	case scenario.FieldUserPersonality:
		return m.UserPersonality()
	case scenario.FieldExpertiseLevel:
		return m.ExpertiseLevel()
	case scenario.FieldInitialMessage:
		return m.InitialMessage()
	case scenario.FieldTurnsTemplate:
		return m.TurnsTemplate()
	case scenario.FieldExpectedToolSequence:
		return m.ExpectedToolSequence()
	case scenario.FieldDifficulty:
		return m.Difficulty()
	case scenario.FieldTags:
		return m.Tags()
	case scenario.FieldMaxTurns:
		return m.MaxTurns()
	case scenario.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenario.FieldName:
		return m.OldName(ctx)
	case scenario.FieldDescription:
		return m.OldDescription(ctx)
	case scenario.FieldGoal:
		return m.OldGoal(ctx)
	case scenario.FieldUserPersonality:
		return m.OldUserPersonality(ctx)
	case scenario.FieldExpertiseLevel:
		return m.OldExpertiseLevel(ctx)
	case scenario.FieldInitialMessage:
		return m.OldInitialMessage(ctx)
	case scenario.FieldTurnsTemplate:
		return m.OldTurnsTemplate(ctx)
	case scenario.FieldExpectedToolSequence:
		return m.OldExpectedToolSequence(ctx)
	case scenario.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case scenario.FieldTags:
		return m.OldTags(ctx)
	case scenario.FieldMaxTurns:
		return m.OldMaxTurns(ctx)
	case scenario.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scenario field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenario.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scenario.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case scenario.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case scenario.FieldUserPersonality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserPersonality(v)
		return nil
	case scenario.FieldExpertiseLevel:
		v, ok := value.(scenario.ExpertiseLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertiseLevel(v)
		return nil
	case scenario.FieldInitialMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialMessage(v)
		return nil
	case scenario.FieldTurnsTemplate:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnsTemplate(v)
		return nil
	case scenario.FieldExpectedToolSequence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedToolSequence(v)
		return nil
	case scenario.FieldDifficulty:
		v, ok := value.(scenario.Difficulty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case scenario.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case scenario.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTurns(v)
		return nil
	case scenario.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scenario field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioMutation) AddedFields() []string {
	var fields []string
	if m.addmax_turns != nil {
		fields = append(fields, scenario.FieldMaxTurns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenario.FieldMaxTurns:
		return m.AddedMaxTurns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenario.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTurns(v)
		return nil
	}
	return fmt.Errorf("unknown Scenario numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenario.FieldDescription) {
		fields = append(fields, scenario.FieldDescription)
	}
	if m.FieldCleared(scenario.FieldInitialMessage) {
		fields = append(fields, scenario.FieldInitialMessage)
	}
	if m.FieldCleared(scenario.FieldTurnsTemplate) {
		fields = append(fields, scenario.FieldTurnsTemplate)
	}
	if m.FieldCleared(scenario.FieldExpectedToolSequence) {
		fields = append(fields, scenario.FieldExpectedToolSequence)
	}
	if m.FieldCleared(scenario.FieldTags) {
		fields = append(fields, scenario.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioMutation) ClearField(name string) error {
	switch name {
	case scenario.FieldDescription:
		m.ClearDescription()
		return nil
	case scenario.FieldInitialMessage:
		m.ClearInitialMessage()
		return nil
	case scenario.FieldTurnsTemplate:
		m.ClearTurnsTemplate()
		return nil
	case scenario.FieldExpectedToolSequence:
		m.ClearExpectedToolSequence()
		return nil
	case scenario.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Scenario nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioMutation) ResetField(name string) error {
	switch name {
	case scenario.FieldName:
		m.ResetName()
		return nil
	case scenario.FieldDescription:
		m.ResetDescription()
		return nil
	case scenario.FieldGoal:
		m.ResetGoal()
		return nil
	case scenario.FieldUserPersonality:
		m.ResetUserPersonality()
		return nil
	case scenario.FieldExpertiseLevel:
		m.ResetExpertiseLevel()
		return nil
	case scenario.FieldInitialMessage:
		m.ResetInitialMessage()
		return nil
	case scenario.FieldTurnsTemplate:
		m.ResetTurnsTemplate()
		return nil
	case scenario.FieldExpectedToolSequence:
		m.ResetExpectedToolSequence()
		return nil
	case scenario.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case scenario.FieldTags:
		m.ResetTags()
		return nil
	case scenario.FieldMaxTurns:
		m.ResetMaxTurns()
		return nil
	case scenario.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Scenario field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.eval_runs != nil {
		edges = append(edges, scenario.EdgeEvalRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scenario.EdgeEvalRuns:
		ids := make([]ent.Value, 0, len(m.eval_runs))
		for id := range m.eval_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedeval_runs != nil {
		edges = append(edges, scenario.EdgeEvalRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scenario.EdgeEvalRuns:
		ids := make([]ent.Value, 0, len(m.removedeval_runs))
		for id := range m.removedeval_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedeval_runs {
		edges = append(edges, scenario.EdgeEvalRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioMutation) EdgeCleared(name string) bool {
	switch name {
	case scenario.EdgeEvalRuns:
		return m.clearedeval_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Scenario unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioMutation) ResetEdge(name string) error {
	switch name {
	case scenario.EdgeEvalRuns:
		m.ResetEvalRuns()
		return nil
	}
	return fmt.Errorf("unknown Scenario edge %s", name)
}
