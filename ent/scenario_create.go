// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// ScenarioCreate is the builder for creating a Scenario entity.
type ScenarioCreate struct {
	config
	mutation *ScenarioMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScenarioCreate) SetName(v string) *ScenarioCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ScenarioCreate) SetDescription(v string) *ScenarioCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableDescription(v *string) *ScenarioCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetGoal sets the "goal" field.
func (_c *ScenarioCreate) SetGoal(v string) *ScenarioCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetUserPersonality sets the "user_personality" field.
func (_c *ScenarioCreate) SetUserPersonality(v string) *ScenarioCreate {
	_c.mutation.SetUserPersonality(v)
	return _c
}

// SetNillableUserPersonality sets the "user_personality" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableUserPersonality(v *string) *ScenarioCreate {
	if v != nil {
		_c.SetUserPersonality(*v)
	}
	return _c
}

// SetExpertiseLevel sets the "expertise_level" field.
func (_c *ScenarioCreate) SetExpertiseLevel(v scenario.ExpertiseLevel) *ScenarioCreate {
	_c.mutation.SetExpertiseLevel(v)
	return _c
}

// SetNillableExpertiseLevel sets the "expertise_level" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableExpertiseLevel(v *scenario.ExpertiseLevel) *ScenarioCreate {
	if v != nil {
		_c.SetExpertiseLevel(*v)
	}
	return _c
}

// SetInitialMessage sets the "initial_message" field.
func (_c *ScenarioCreate) SetInitialMessage(v string) *ScenarioCreate {
	_c.mutation.SetInitialMessage(v)
	return _c
}

// SetNillableInitialMessage sets the "initial_message" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableInitialMessage(v *string) *ScenarioCreate {
	if v != nil {
		_c.SetInitialMessage(*v)
	}
	return _c
}

// SetTurnsTemplate sets the "turns_template" field.
func (_c *ScenarioCreate) SetTurnsTemplate(v []map[string]interface{}) *ScenarioCreate {
	_c.mutation.SetTurnsTemplate(v)
	return _c
}

// SetExpectedToolSequence sets the "expected_tool_sequence" field.
func (_c *ScenarioCreate) SetExpectedToolSequence(v []string) *ScenarioCreate {
	_c.mutation.SetExpectedToolSequence(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ScenarioCreate) SetDifficulty(v scenario.Difficulty) *ScenarioCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableDifficulty(v *scenario.Difficulty) *ScenarioCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ScenarioCreate) SetTags(v []string) *ScenarioCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMaxTurns sets the "max_turns" field.
func (_c *ScenarioCreate) SetMaxTurns(v int) *ScenarioCreate {
	_c.mutation.SetMaxTurns(v)
	return _c
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableMaxTurns(v *int) *ScenarioCreate {
	if v != nil {
		_c.SetMaxTurns(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScenarioCreate) SetCreatedAt(v time.Time) *ScenarioCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableCreatedAt(v *time.Time) *ScenarioCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScenarioCreate) SetID(v string) *ScenarioCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEvalRunIDs adds the "eval_runs" edge to the EvalRun entity by IDs.
func (_c *ScenarioCreate) AddEvalRunIDs(ids ...string) *ScenarioCreate {
	_c.mutation.AddEvalRunIDs(ids...)
	return _c
}

// AddEvalRuns adds the "eval_runs" edges to the EvalRun entity.
func (_c *ScenarioCreate) AddEvalRuns(v ...*EvalRun) *ScenarioCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvalRunIDs(ids...)
}

// Mutation returns the ScenarioMutation object of the builder.
func (_c *ScenarioCreate) Mutation() *ScenarioMutation {
	return _c.mutation
}

// Save creates the Scenario in the database.
func (_c *ScenarioCreate) Save(ctx context.Context) (*Scenario, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioCreate) SaveX(ctx context.Context) *Scenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioCreate) defaults() {
	if _, ok := _c.mutation.UserPersonality(); !ok {
		v := scenario.DefaultUserPersonality
		_c.mutation.SetUserPersonality(v)
	}
	if _, ok := _c.mutation.ExpertiseLevel(); !ok {
		v := scenario.DefaultExpertiseLevel
		_c.mutation.SetExpertiseLevel(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := scenario.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		v := scenario.DefaultMaxTurns
		_c.mutation.SetMaxTurns(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scenario.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Scenario.name"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "Scenario.goal"`)}
	}
	if _, ok := _c.mutation.UserPersonality(); !ok {
		return &ValidationError{Name: "user_personality", err: errors.New(`ent: missing required field "Scenario.user_personality"`)}
	}
	if _, ok := _c.mutation.ExpertiseLevel(); !ok {
		return &ValidationError{Name: "expertise_level", err: errors.New(`ent: missing required field "Scenario.expertise_level"`)}
	}
	if v, ok := _c.mutation.ExpertiseLevel(); ok {
		if err := scenario.ExpertiseLevelValidator(v); err != nil {
			return &ValidationError{Name: "expertise_level", err: fmt.Errorf(`ent: validator failed for field "Scenario.expertise_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Scenario.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := scenario.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Scenario.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		return &ValidationError{Name: "max_turns", err: errors.New(`ent: missing required field "Scenario.max_turns"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Scenario.created_at"`)}
	}
	return nil
}

func (_c *ScenarioCreate) sqlSave(ctx context.Context) (*Scenario, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Scenario.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScenarioCreate) createSpec() (*Scenario, *sqlgraph.CreateSpec) {
	var (
		_node = &Scenario{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenario.Table, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(scenario.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.UserPersonality(); ok {
		_spec.SetField(scenario.FieldUserPersonality, field.TypeString, value)
		_node.UserPersonality = value
	}
	if value, ok := _c.mutation.ExpertiseLevel(); ok {
		_spec.SetField(scenario.FieldExpertiseLevel, field.TypeEnum, value)
		_node.ExpertiseLevel = value
	}
	if value, ok := _c.mutation.InitialMessage(); ok {
		_spec.SetField(scenario.FieldInitialMessage, field.TypeString, value)
		_node.InitialMessage = &value
	}
	if value, ok := _c.mutation.TurnsTemplate(); ok {
		_spec.SetField(scenario.FieldTurnsTemplate, field.TypeJSON, value)
		_node.TurnsTemplate = value
	}
	if value, ok := _c.mutation.ExpectedToolSequence(); ok {
		_spec.SetField(scenario.FieldExpectedToolSequence, field.TypeJSON, value)
		_node.ExpectedToolSequence = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(scenario.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(scenario.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.MaxTurns(); ok {
		_spec.SetField(scenario.FieldMaxTurns, field.TypeInt, value)
		_node.MaxTurns = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scenario.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EvalRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScenarioCreateBulk is the builder for creating many Scenario entities in bulk.
type ScenarioCreateBulk struct {
	config
	err      error
	builders []*ScenarioCreate
}

// Save creates the Scenario entities in the database.
func (_c *ScenarioCreateBulk) Save(ctx context.Context) ([]*Scenario, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scenario, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScenarioCreateBulk) SaveX(ctx context.Context) []*Scenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
