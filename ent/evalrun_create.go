// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/agentconfig"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// EvalRunCreate is the builder for creating a EvalRun entity.
type EvalRunCreate struct {
	config
	mutation *EvalRunMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *EvalRunCreate) SetName(v string) *EvalRunCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableName(v *string) *EvalRunCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAgentConfigID sets the "agent_config_id" field.
func (_c *EvalRunCreate) SetAgentConfigID(v string) *EvalRunCreate {
	_c.mutation.SetAgentConfigID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *EvalRunCreate) SetScenarioID(v string) *EvalRunCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetRubricID sets the "rubric_id" field.
func (_c *EvalRunCreate) SetRubricID(v string) *EvalRunCreate {
	_c.mutation.SetRubricID(v)
	return _c
}

// SetNillableRubricID sets the "rubric_id" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableRubricID(v *string) *EvalRunCreate {
	if v != nil {
		_c.SetRubricID(*v)
	}
	return _c
}

// SetNumConversations sets the "num_conversations" field.
func (_c *EvalRunCreate) SetNumConversations(v int) *EvalRunCreate {
	_c.mutation.SetNumConversations(v)
	return _c
}

// SetNillableNumConversations sets the "num_conversations" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableNumConversations(v *int) *EvalRunCreate {
	if v != nil {
		_c.SetNumConversations(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvalRunCreate) SetStatus(v evalrun.Status) *EvalRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableStatus(v *evalrun.Status) *EvalRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EvalRunCreate) SetErrorMessage(v string) *EvalRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableErrorMessage(v *string) *EvalRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetEnvironment sets the "environment" field.
func (_c *EvalRunCreate) SetEnvironment(v map[string]interface{}) *EvalRunCreate {
	_c.mutation.SetEnvironment(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *EvalRunCreate) SetPodID(v string) *EvalRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillablePodID(v *string) *EvalRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *EvalRunCreate) SetLastHeartbeatAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableLastHeartbeatAt(v *time.Time) *EvalRunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EvalRunCreate) SetStartedAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableStartedAt(v *time.Time) *EvalRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EvalRunCreate) SetCompletedAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableCompletedAt(v *time.Time) *EvalRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvalRunCreate) SetCreatedAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableCreatedAt(v *time.Time) *EvalRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvalRunCreate) SetID(v string) *EvalRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgentConfig sets the "agent_config" edge to the AgentConfig entity.
func (_c *EvalRunCreate) SetAgentConfig(v *AgentConfig) *EvalRunCreate {
	return _c.SetAgentConfigID(v.ID)
}

// SetScenario sets the "scenario" edge to the Scenario entity.
func (_c *EvalRunCreate) SetScenario(v *Scenario) *EvalRunCreate {
	return _c.SetScenarioID(v.ID)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *EvalRunCreate) AddConversationIDs(ids ...string) *EvalRunCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *EvalRunCreate) AddConversations(v ...*Conversation) *EvalRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *EvalRunCreate) AddEvaluationIDs(ids ...string) *EvalRunCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *EvalRunCreate) AddEvaluations(v ...*Evaluation) *EvalRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_c *EvalRunCreate) AddMetricIDs(ids ...string) *EvalRunCreate {
	_c.mutation.AddMetricIDs(ids...)
	return _c
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_c *EvalRunCreate) AddMetrics(v ...*Metric) *EvalRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMetricIDs(ids...)
}

// Mutation returns the EvalRunMutation object of the builder.
func (_c *EvalRunCreate) Mutation() *EvalRunMutation {
	return _c.mutation
}

// Save creates the EvalRun in the database.
func (_c *EvalRunCreate) Save(ctx context.Context) (*EvalRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvalRunCreate) SaveX(ctx context.Context) *EvalRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvalRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvalRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvalRunCreate) defaults() {
	if _, ok := _c.mutation.NumConversations(); !ok {
		v := evalrun.DefaultNumConversations
		_c.mutation.SetNumConversations(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := evalrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evalrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvalRunCreate) check() error {
	if _, ok := _c.mutation.AgentConfigID(); !ok {
		return &ValidationError{Name: "agent_config_id", err: errors.New(`ent: missing required field "EvalRun.agent_config_id"`)}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "EvalRun.scenario_id"`)}
	}
	if _, ok := _c.mutation.NumConversations(); !ok {
		return &ValidationError{Name: "num_conversations", err: errors.New(`ent: missing required field "EvalRun.num_conversations"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EvalRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evalrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvalRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvalRun.created_at"`)}
	}
	if len(_c.mutation.AgentConfigIDs()) == 0 {
		return &ValidationError{Name: "agent_config", err: errors.New(`ent: missing required edge "EvalRun.agent_config"`)}
	}
	if len(_c.mutation.ScenarioIDs()) == 0 {
		return &ValidationError{Name: "scenario", err: errors.New(`ent: missing required edge "EvalRun.scenario"`)}
	}
	return nil
}

func (_c *EvalRunCreate) sqlSave(ctx context.Context) (*EvalRun, error) {
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
			return nil, fmt.Errorf("unexpected EvalRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvalRunCreate) createSpec() (*EvalRun, *sqlgraph.CreateSpec) {
	var (
		_node = &EvalRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evalrun.Table, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(evalrun.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RubricID(); ok {
		_spec.SetField(evalrun.FieldRubricID, field.TypeString, value)
		_node.RubricID = &value
	}
	if value, ok := _c.mutation.NumConversations(); ok {
		_spec.SetField(evalrun.FieldNumConversations, field.TypeInt, value)
		_node.NumConversations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evalrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(evalrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Environment(); ok {
		_spec.SetField(evalrun.FieldEnvironment, field.TypeJSON, value)
		_node.Environment = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(evalrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(evalrun.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(evalrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(evalrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evalrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evalrun.AgentConfigTable,
			Columns: []string{evalrun.AgentConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScenarioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evalrun.ScenarioTable,
			Columns: []string{evalrun.ScenarioColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScenarioID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evalrun.ConversationsTable,
			Columns: []string{evalrun.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evalrun.EvaluationsTable,
			Columns: []string{evalrun.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evalrun.MetricsTable,
			Columns: []string{evalrun.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvalRunCreateBulk is the builder for creating many EvalRun entities in bulk.
type EvalRunCreateBulk struct {
	config
	err      error
	builders []*EvalRunCreate
}

// Save creates the EvalRun entities in the database.
func (_c *EvalRunCreateBulk) Save(ctx context.Context) ([]*EvalRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvalRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvalRunMutation)
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
func (_c *EvalRunCreateBulk) SaveX(ctx context.Context) []*EvalRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvalRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvalRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
