// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/predicate"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// ScenarioUpdate is the builder for updating Scenario entities.
type ScenarioUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioMutation
}

// Where appends a list predicates to the ScenarioUpdate builder.
func (_u *ScenarioUpdate) Where(ps ...predicate.Scenario) *ScenarioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScenarioUpdate) SetName(v string) *ScenarioUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableName(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScenarioUpdate) SetDescription(v string) *ScenarioUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableDescription(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScenarioUpdate) ClearDescription() *ScenarioUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *ScenarioUpdate) SetGoal(v string) *ScenarioUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableGoal(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetUserPersonality sets the "user_personality" field.
func (_u *ScenarioUpdate) SetUserPersonality(v string) *ScenarioUpdate {
	_u.mutation.SetUserPersonality(v)
	return _u
}

// SetNillableUserPersonality sets the "user_personality" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableUserPersonality(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetUserPersonality(*v)
	}
	return _u
}

// SetExpertiseLevel sets the "expertise_level" field.
func (_u *ScenarioUpdate) SetExpertiseLevel(v scenario.ExpertiseLevel) *ScenarioUpdate {
	_u.mutation.SetExpertiseLevel(v)
	return _u
}

// SetNillableExpertiseLevel sets the "expertise_level" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableExpertiseLevel(v *scenario.ExpertiseLevel) *ScenarioUpdate {
	if v != nil {
		_u.SetExpertiseLevel(*v)
	}
	return _u
}

// SetInitialMessage sets the "initial_message" field.
func (_u *ScenarioUpdate) SetInitialMessage(v string) *ScenarioUpdate {
	_u.mutation.SetInitialMessage(v)
	return _u
}

// SetNillableInitialMessage sets the "initial_message" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableInitialMessage(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetInitialMessage(*v)
	}
	return _u
}

// ClearInitialMessage clears the value of the "initial_message" field.
func (_u *ScenarioUpdate) ClearInitialMessage() *ScenarioUpdate {
	_u.mutation.ClearInitialMessage()
	return _u
}

// SetTurnsTemplate sets the "turns_template" field.
func (_u *ScenarioUpdate) SetTurnsTemplate(v []map[string]interface{}) *ScenarioUpdate {
	_u.mutation.SetTurnsTemplate(v)
	return _u
}

// AppendTurnsTemplate appends value to the "turns_template" field.
func (_u *ScenarioUpdate) AppendTurnsTemplate(v []map[string]interface{}) *ScenarioUpdate {
	_u.mutation.AppendTurnsTemplate(v)
	return _u
}

// ClearTurnsTemplate clears the value of the "turns_template" field.
func (_u *ScenarioUpdate) ClearTurnsTemplate() *ScenarioUpdate {
	_u.mutation.ClearTurnsTemplate()
	return _u
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (_u *ScenarioUpdate) SetExpectedToolSequence(v []string) *ScenarioUpdate {
	_u.mutation.SetExpectedToolSequence(v)
	return _u
}

// AppendExpectedToolSequence appends value to the "expected_tool_sequence" field.
func (_u *ScenarioUpdate) AppendExpectedToolSequence(v []string) *ScenarioUpdate {
	_u.mutation.AppendExpectedToolSequence(v)
	return _u
}

// ClearExpectedToolSequence clears the value of the "expected_tool_sequence" field.
func (_u *ScenarioUpdate) ClearExpectedToolSequence() *ScenarioUpdate {
	_u.mutation.ClearExpectedToolSequence()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ScenarioUpdate) SetDifficulty(v scenario.Difficulty) *ScenarioUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableDifficulty(v *scenario.Difficulty) *ScenarioUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ScenarioUpdate) SetTags(v []string) *ScenarioUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ScenarioUpdate) AppendTags(v []string) *ScenarioUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ScenarioUpdate) ClearTags() *ScenarioUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *ScenarioUpdate) SetMaxTurns(v int) *ScenarioUpdate {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableMaxTurns(v *int) *ScenarioUpdate {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *ScenarioUpdate) AddMaxTurns(v int) *ScenarioUpdate {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by IDs.
func (_u *ScenarioUpdate) AddEvalRunIDs(ids ...string) *ScenarioUpdate {
	_u.mutation.AddEvalRunIDs(ids...)
	return _u
}

// AddEvalRuns adds the "eval_runs" edges to the EvalRun entity.
func (_u *ScenarioUpdate) AddEvalRuns(v ...*EvalRun) *ScenarioUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvalRunIDs(ids...)
}

// Mutation returns the ScenarioMutation object of the builder.
func (_u *ScenarioUpdate) Mutation() *ScenarioMutation {
	return _u.mutation
}

// ClearEvalRuns clears all "eval_runs" edges to the EvalRun entity.
func (_u *ScenarioUpdate) ClearEvalRuns() *ScenarioUpdate {
	_u.mutation.ClearEvalRuns()
	return _u
}

// RemoveEvalRunIDs removes the "eval_runs" edge to EvalRun entities by IDs.
func (_u *ScenarioUpdate) RemoveEvalRunIDs(ids ...string) *ScenarioUpdate {
	_u.mutation.RemoveEvalRunIDs(ids...)
	return _u
}

// RemoveEvalRuns removes "eval_runs" edges to EvalRun entities.
func (_u *ScenarioUpdate) RemoveEvalRuns(v ...*EvalRun) *ScenarioUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvalRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioUpdate) check() error {
	if v, ok := _u.mutation.ExpertiseLevel(); ok {
		if err := scenario.ExpertiseLevelValidator(v); err != nil {
			return &ValidationError{Name: "expertise_level", err: fmt.Errorf(`ent: validator failed for field "Scenario.expertise_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := scenario.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Scenario.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenario.Table, scenario.Columns, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scenario.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(scenario.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPersonality(); ok {
		_spec.SetField(scenario.FieldUserPersonality, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpertiseLevel(); ok {
		_spec.SetField(scenario.FieldExpertiseLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InitialMessage(); ok {
		_spec.SetField(scenario.FieldInitialMessage, field.TypeString, value)
	}
	if _u.mutation.InitialMessageCleared() {
		_spec.ClearField(scenario.FieldInitialMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TurnsTemplate(); ok {
		_spec.SetField(scenario.FieldTurnsTemplate, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurnsTemplate(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldTurnsTemplate, value)
		})
	}
	if _u.mutation.TurnsTemplateCleared() {
		_spec.ClearField(scenario.FieldTurnsTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedToolSequence(); ok {
		_spec.SetField(scenario.FieldExpectedToolSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedToolSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldExpectedToolSequence, value)
		})
	}
	if _u.mutation.ExpectedToolSequenceCleared() {
		_spec.ClearField(scenario.FieldExpectedToolSequence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(scenario.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(scenario.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(scenario.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(scenario.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(scenario.FieldMaxTurns, field.TypeInt, value)
	}
	if _u.mutation.EvalRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scenario.EvalRunsTable,
			Columns: []string{scenario.EvalRunsColumn},
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
			Table:   scenario.EvalRunsTable,
			Columns: []string{scenario.EvalRunsColumn},
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
			Table:   scenario.EvalRunsTable,
			Columns: []string{scenario.EvalRunsColumn},
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
			err = &NotFoundError{scenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioUpdateOne is the builder for updating a single Scenario entity.
type ScenarioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioMutation
}

// SetName sets the "name" field.
func (_u *ScenarioUpdateOne) SetName(v string) *ScenarioUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableName(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScenarioUpdateOne) SetDescription(v string) *ScenarioUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableDescription(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScenarioUpdateOne) ClearDescription() *ScenarioUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *ScenarioUpdateOne) SetGoal(v string) *ScenarioUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableGoal(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetUserPersonality sets the "user_personality" field.
func (_u *ScenarioUpdateOne) SetUserPersonality(v string) *ScenarioUpdateOne {
	_u.mutation.SetUserPersonality(v)
	return _u
}

// SetNillableUserPersonality sets the "user_personality" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableUserPersonality(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetUserPersonality(*v)
	}
	return _u
}

// SetExpertiseLevel sets the "expertise_level" field.
func (_u *ScenarioUpdateOne) SetExpertiseLevel(v scenario.ExpertiseLevel) *ScenarioUpdateOne {
	_u.mutation.SetExpertiseLevel(v)
	return _u
}

// SetNillableExpertiseLevel sets the "expertise_level" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableExpertiseLevel(v *scenario.ExpertiseLevel) *ScenarioUpdateOne {
	if v != nil {
		_u.SetExpertiseLevel(*v)
	}
	return _u
}

// SetInitialMessage sets the "initial_message" field.
func (_u *ScenarioUpdateOne) SetInitialMessage(v string) *ScenarioUpdateOne {
	_u.mutation.SetInitialMessage(v)
	return _u
}

// SetNillableInitialMessage sets the "initial_message" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableInitialMessage(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetInitialMessage(*v)
	}
	return _u
}

// ClearInitialMessage clears the value of the "initial_message" field.
func (_u *ScenarioUpdateOne) ClearInitialMessage() *ScenarioUpdateOne {
	_u.mutation.ClearInitialMessage()
	return _u
}

// SetTurnsTemplate sets the "turns_template" field.
func (_u *ScenarioUpdateOne) SetTurnsTemplate(v []map[string]interface{}) *ScenarioUpdateOne {
	_u.mutation.SetTurnsTemplate(v)
	return _u
}

// AppendTurnsTemplate appends value to the "turns_template" field.
func (_u *ScenarioUpdateOne) AppendTurnsTemplate(v []map[string]interface{}) *ScenarioUpdateOne {
	_u.mutation.AppendTurnsTemplate(v)
	return _u
}

// ClearTurnsTemplate clears the value of the "turns_template" field.
func (_u *ScenarioUpdateOne) ClearTurnsTemplate() *ScenarioUpdateOne {
	_u.mutation.ClearTurnsTemplate()
	return _u
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (_u *ScenarioUpdateOne) SetExpectedToolSequence(v []string) *ScenarioUpdateOne {
	_u.mutation.SetExpectedToolSequence(v)
	return _u
}

// AppendExpectedToolSequence appends value to the "expected_tool_sequence" field.
func (_u *ScenarioUpdateOne) AppendExpectedToolSequence(v []string) *ScenarioUpdateOne {
	_u.mutation.AppendExpectedToolSequence(v)
	return _u
}

// ClearExpectedToolSequence clears the value of the "expected_tool_sequence" field.
func (_u *ScenarioUpdateOne) ClearExpectedToolSequence() *ScenarioUpdateOne {
	_u.mutation.ClearExpectedToolSequence()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ScenarioUpdateOne) SetDifficulty(v scenario.Difficulty) *ScenarioUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableDifficulty(v *scenario.Difficulty) *ScenarioUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ScenarioUpdateOne) SetTags(v []string) *ScenarioUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ScenarioUpdateOne) AppendTags(v []string) *ScenarioUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ScenarioUpdateOne) ClearTags() *ScenarioUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *ScenarioUpdateOne) SetMaxTurns(v int) *ScenarioUpdateOne {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableMaxTurns(v *int) *ScenarioUpdateOne {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *ScenarioUpdateOne) AddMaxTurns(v int) *ScenarioUpdateOne {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by IDs.
func (_u *ScenarioUpdateOne) AddEvalRunIDs(ids ...string) *ScenarioUpdateOne {
	_u.mutation.AddEvalRunIDs(ids...)
	return _u
}

// AddEvalRuns adds the "eval_runs" edges to the EvalRun entity.
func (_u *ScenarioUpdateOne) AddEvalRuns(v ...*EvalRun) *ScenarioUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvalRunIDs(ids...)
}

// Mutation returns the ScenarioMutation object of the builder.
func (_u *ScenarioUpdateOne) Mutation() *ScenarioMutation {
	return _u.mutation
}

// ClearEvalRuns clears all "eval_runs" edges to the EvalRun entity.
func (_u *ScenarioUpdateOne) ClearEvalRuns() *ScenarioUpdateOne {
	_u.mutation.ClearEvalRuns()
	return _u
}

// RemoveEvalRunIDs removes the "eval_runs" edge to EvalRun entities by IDs.
func (_u *ScenarioUpdateOne) RemoveEvalRunIDs(ids ...string) *ScenarioUpdateOne {
	_u.mutation.RemoveEvalRunIDs(ids...)
	return _u
}

// RemoveEvalRuns removes "eval_runs" edges to EvalRun entities.
func (_u *ScenarioUpdateOne) RemoveEvalRuns(v ...*EvalRun) *ScenarioUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvalRunIDs(ids...)
}

// Where appends a list predicates to the ScenarioUpdate builder.
func (_u *ScenarioUpdateOne) Where(ps ...predicate.Scenario) *ScenarioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioUpdateOne) Select(field string, fields ...string) *ScenarioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scenario entity.
func (_u *ScenarioUpdateOne) Save(ctx context.Context) (*Scenario, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioUpdateOne) SaveX(ctx context.Context) *Scenario {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioUpdateOne) check() error {
	if v, ok := _u.mutation.ExpertiseLevel(); ok {
		if err := scenario.ExpertiseLevelValidator(v); err != nil {
			return &ValidationError{Name: "expertise_level", err: fmt.Errorf(`ent: validator failed for field "Scenario.expertise_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := scenario.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Scenario.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioUpdateOne) sqlSave(ctx context.Context) (_node *Scenario, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenario.Table, scenario.Columns, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scenario.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenario.FieldID)
		for _, f := range fields {
			if !scenario.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenario.FieldID {
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
		_spec.SetField(scenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scenario.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(scenario.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPersonality(); ok {
		_spec.SetField(scenario.FieldUserPersonality, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpertiseLevel(); ok {
		_spec.SetField(scenario.FieldExpertiseLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InitialMessage(); ok {
		_spec.SetField(scenario.FieldInitialMessage, field.TypeString, value)
	}
	if _u.mutation.InitialMessageCleared() {
		_spec.ClearField(scenario.FieldInitialMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TurnsTemplate(); ok {
		_spec.SetField(scenario.FieldTurnsTemplate, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurnsTemplate(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldTurnsTemplate, value)
		})
	}
	if _u.mutation.TurnsTemplateCleared() {
		_spec.ClearField(scenario.FieldTurnsTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedToolSequence(); ok {
		_spec.SetField(scenario.FieldExpectedToolSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedToolSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldExpectedToolSequence, value)
		})
	}
	if _u.mutation.ExpectedToolSequenceCleared() {
		_spec.ClearField(scenario.FieldExpectedToolSequence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(scenario.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(scenario.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenario.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(scenario.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(scenario.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(scenario.FieldMaxTurns, field.TypeInt, value)
	}
	if _u.mutation.EvalRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scenario.EvalRunsTable,
			Columns: []string{scenario.EvalRunsColumn},
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
			Table:   scenario.EvalRunsTable,
			Columns: []string{scenario.EvalRunsColumn},
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
			Table:   scenario.EvalRunsTable,
			Columns: []string{scenario.EvalRunsColumn},
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
	_node = &Scenario{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
