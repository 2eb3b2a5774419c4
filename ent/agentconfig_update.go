// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/agentconfig"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// AgentConfigUpdate is the builder for updating AgentConfig entities.
type AgentConfigUpdate struct {
	config
	hooks    []Hook
	mutation *AgentConfigMutation
}

// Where appends a list predicates to the AgentConfigUpdate builder.
func (_u *AgentConfigUpdate) Where(ps ...predicate.AgentConfig) *AgentConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentConfigUpdate) SetName(v string) *AgentConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableName(v *string) *AgentConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentConfigUpdate) SetDescription(v string) *AgentConfigUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableDescription(v *string) *AgentConfigUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentConfigUpdate) ClearDescription() *AgentConfigUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentConfigUpdate) SetModelID(v string) *AgentConfigUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableModelID(v *string) *AgentConfigUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentConfigUpdate) SetSystemPrompt(v string) *AgentConfigUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableSystemPrompt(v *string) *AgentConfigUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentConfigUpdate) SetTemperature(v float64) *AgentConfigUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableTemperature(v *float64) *AgentConfigUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentConfigUpdate) AddTemperature(v float64) *AgentConfigUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentConfigUpdate) SetMaxTokens(v int) *AgentConfigUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentConfigUpdate) SetNillableMaxTokens(v *int) *AgentConfigUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentConfigUpdate) AddMaxTokens(v int) *AgentConfigUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentConfigUpdate) SetTools(v []map[string]interface{}) *AgentConfigUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentConfigUpdate) AppendTools(v []map[string]interface{}) *AgentConfigUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentConfigUpdate) ClearTools() *AgentConfigUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentConfigUpdate) SetUpdatedAt(v time.Time) *AgentConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by IDs.
func (_u *AgentConfigUpdate) AddEvalRunIDs(ids ...string) *AgentConfigUpdate {
	_u.mutation.AddEvalRunIDs(ids...)
	return _u
}

// AddEvalRuns adds the "eval_runs" edges to the EvalRun entity.
func (_u *AgentConfigUpdate) AddEvalRuns(v ...*EvalRun) *AgentConfigUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvalRunIDs(ids...)
}

// Mutation returns the AgentConfigMutation object of the builder.
func (_u *AgentConfigUpdate) Mutation() *AgentConfigMutation {
	return _u.mutation
}

// ClearEvalRuns clears all "eval_runs" edges to the EvalRun entity.
func (_u *AgentConfigUpdate) ClearEvalRuns() *AgentConfigUpdate {
	_u.mutation.ClearEvalRuns()
	return _u
}

// RemoveEvalRunIDs removes the "eval_runs" edge to EvalRun entities by IDs.
func (_u *AgentConfigUpdate) RemoveEvalRunIDs(ids ...string) *AgentConfigUpdate {
	_u.mutation.RemoveEvalRunIDs(ids...)
	return _u
}

// RemoveEvalRuns removes "eval_runs" edges to EvalRun entities.
func (_u *AgentConfigUpdate) RemoveEvalRuns(v ...*EvalRun) *AgentConfigUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvalRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentconfig.Table, agentconfig.Columns, sqlgraph.NewFieldSpec(agentconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agentconfig.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agentconfig.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agentconfig.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentconfig.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agentconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agentconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agentconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agentconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agentconfig.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentconfig.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agentconfig.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvalRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentconfig.EvalRunsTable,
			Columns: []string{agentconfig.EvalRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvalRunsIDs(); len(nodes) > 0 && !_u.mutation.EvalRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentconfig.EvalRunsTable,
			Columns: []string{agentconfig.EvalRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvalRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentconfig.EvalRunsTable,
			Columns: []string{agentconfig.EvalRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentConfigUpdateOne is the builder for updating a single AgentConfig entity.
type AgentConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentConfigMutation
}

// SetName sets the "name" field.
func (_u *AgentConfigUpdateOne) SetName(v string) *AgentConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableName(v *string) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentConfigUpdateOne) SetDescription(v string) *AgentConfigUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableDescription(v *string) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentConfigUpdateOne) ClearDescription() *AgentConfigUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentConfigUpdateOne) SetModelID(v string) *AgentConfigUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableModelID(v *string) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentConfigUpdateOne) SetSystemPrompt(v string) *AgentConfigUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableSystemPrompt(v *string) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentConfigUpdateOne) SetTemperature(v float64) *AgentConfigUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableTemperature(v *float64) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentConfigUpdateOne) AddTemperature(v float64) *AgentConfigUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentConfigUpdateOne) SetMaxTokens(v int) *AgentConfigUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentConfigUpdateOne) SetNillableMaxTokens(v *int) *AgentConfigUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentConfigUpdateOne) AddMaxTokens(v int) *AgentConfigUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentConfigUpdateOne) SetTools(v []map[string]interface{}) *AgentConfigUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentConfigUpdateOne) AppendTools(v []map[string]interface{}) *AgentConfigUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentConfigUpdateOne) ClearTools() *AgentConfigUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentConfigUpdateOne) SetUpdatedAt(v time.Time) *AgentConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by IDs.
func (_u *AgentConfigUpdateOne) AddEvalRunIDs(ids ...string) *AgentConfigUpdateOne {
	_u.mutation.AddEvalRunIDs(ids...)
	return _u
}

// AddEvalRuns adds the "eval_runs" edges to the EvalRun entity.
func (_u *AgentConfigUpdateOne) AddEvalRuns(v ...*EvalRun) *AgentConfigUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvalRunIDs(ids...)
}

// Mutation returns the AgentConfigMutation object of the builder.
func (_u *AgentConfigUpdateOne) Mutation() *AgentConfigMutation {
	return _u.mutation
}

// ClearEvalRuns clears all "eval_runs" edges to the EvalRun entity.
func (_u *AgentConfigUpdateOne) ClearEvalRuns() *AgentConfigUpdateOne {
	_u.mutation.ClearEvalRuns()
	return _u
}

// RemoveEvalRunIDs removes the "eval_runs" edge to EvalRun entities by IDs.
func (_u *AgentConfigUpdateOne) RemoveEvalRunIDs(ids ...string) *AgentConfigUpdateOne {
	_u.mutation.RemoveEvalRunIDs(ids...)
	return _u
}

// RemoveEvalRuns removes "eval_runs" edges to EvalRun entities.
func (_u *AgentConfigUpdateOne) RemoveEvalRuns(v ...*EvalRun) *AgentConfigUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvalRunIDs(ids...)
}

// Where appends a list predicates to the AgentConfigUpdate builder.
func (_u *AgentConfigUpdateOne) Where(ps ...predicate.AgentConfig) *AgentConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentConfigUpdateOne) Select(field string, fields ...string) *AgentConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentConfig entity.
func (_u *AgentConfigUpdateOne) Save(ctx context.Context) (*AgentConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentConfigUpdateOne) SaveX(ctx context.Context) *AgentConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentConfigUpdateOne) sqlSave(ctx context.Context) (_node *AgentConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentconfig.Table, agentconfig.Columns, sqlgraph.NewFieldSpec(agentconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentconfig.FieldID)
		for _, f := range fields {
			if !agentconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agentconfig.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agentconfig.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agentconfig.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentconfig.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agentconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agentconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agentconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agentconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agentconfig.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentconfig.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agentconfig.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvalRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentconfig.EvalRunsTable,
			Columns: []string{agentconfig.EvalRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvalRunsIDs(); len(nodes) > 0 && !_u.mutation.EvalRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentconfig.EvalRunsTable,
			Columns: []string{agentconfig.EvalRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvalRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentconfig.EvalRunsTable,
			Columns: []string{agentconfig.EvalRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
