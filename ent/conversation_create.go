// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
}

// SetEvalRunID sets the "eval_run_id" field.
func (_c *ConversationCreate) SetEvalRunID(v string) *ConversationCreate {
	_c.mutation.SetEvalRunID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ConversationCreate) SetSequence(v int) *ConversationCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversationCreate) SetStatus(v conversation.Status) *ConversationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableStatus(v *conversation.Status) *ConversationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTurns sets the "turns" field.
func (_c *ConversationCreate) SetTurns(v []map[string]interface{}) *ConversationCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *ConversationCreate) SetTurnCount(v int) *ConversationCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTurnCount(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ConversationCreate) SetTotalTokens(v int) *ConversationCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalTokens(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *ConversationCreate) SetTotalInputTokens(v int) *ConversationCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalInputTokens(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *ConversationCreate) SetTotalOutputTokens(v int) *ConversationCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalOutputTokens(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetTotalLatencyMs sets the "total_latency_ms" field.
func (_c *ConversationCreate) SetTotalLatencyMs(v int) *ConversationCreate {
	_c.mutation.SetTotalLatencyMs(v)
	return _c
}

// SetNillableTotalLatencyMs sets the "total_latency_ms" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalLatencyMs(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalLatencyMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ConversationCreate) SetErrorMessage(v string) *ConversationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableErrorMessage(v *string) *ConversationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ConversationCreate) SetCompletedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCompletedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvalRun sets the "eval_run" edge to the EvalRun entity.
func (_c *ConversationCreate) SetEvalRun(v *EvalRun) *ConversationCreate {
	return _c.SetEvalRunID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *ConversationCreate) AddEvaluationIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *ConversationCreate) AddEvaluations(v ...*Evaluation) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_c *ConversationCreate) AddMetricIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMetricIDs(ids...)
	return _c
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_c *ConversationCreate) AddMetrics(v ...*Metric) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMetricIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := conversation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := conversation.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := conversation.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := conversation.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := conversation.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalLatencyMs(); !ok {
		v := conversation.DefaultTotalLatencyMs
		_c.mutation.SetTotalLatencyMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.EvalRunID(); !ok {
		return &ValidationError{Name: "eval_run_id", err: errors.New(`ent: missing required field "Conversation.eval_run_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Conversation.sequence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Conversation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "Conversation.turn_count"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Conversation.total_tokens"`)}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "Conversation.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "Conversation.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalLatencyMs(); !ok {
		return &ValidationError{Name: "total_latency_ms", err: errors.New(`ent: missing required field "Conversation.total_latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if len(_c.mutation.EvalRunIDs()) == 0 {
		return &ValidationError{Name: "eval_run", err: errors.New(`ent: missing required edge "Conversation.eval_run"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(conversation.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(conversation.FieldTurns, field.TypeJSON, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(conversation.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(conversation.FieldTotalInputTokens, field.TypeInt, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.TotalLatencyMs(); ok {
		_spec.SetField(conversation.FieldTotalLatencyMs, field.TypeInt, value)
		_node.TotalLatencyMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(conversation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(conversation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.EvalRunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.EvalRunTable,
			Columns: []string{conversation.EvalRunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EvalRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EvaluationsTable,
			Columns: []string{conversation.EvaluationsColumn},
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
			Table:   conversation.MetricsTable,
			Columns: []string{conversation.MetricsColumn},
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

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
