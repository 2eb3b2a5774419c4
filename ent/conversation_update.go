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
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ConversationUpdate) SetSequence(v int) *ConversationUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSequence(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ConversationUpdate) AddSequence(v int) *ConversationUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdate) SetStatus(v conversation.Status) *ConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStatus(v *conversation.Status) *ConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *ConversationUpdate) SetTurns(v []map[string]interface{}) *ConversationUpdate {
	_u.mutation.SetTurns(v)
	return _u
}

// AppendTurns appends value to the "turns" field.
func (_u *ConversationUpdate) AppendTurns(v []map[string]interface{}) *ConversationUpdate {
	_u.mutation.AppendTurns(v)
	return _u
}

// ClearTurns clears the value of the "turns" field.
func (_u *ConversationUpdate) ClearTurns() *ConversationUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ConversationUpdate) SetTurnCount(v int) *ConversationUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTurnCount(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ConversationUpdate) AddTurnCount(v int) *ConversationUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ConversationUpdate) SetTotalTokens(v int) *ConversationUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalTokens(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ConversationUpdate) AddTotalTokens(v int) *ConversationUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *ConversationUpdate) SetTotalInputTokens(v int) *ConversationUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalInputTokens(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *ConversationUpdate) AddTotalInputTokens(v int) *ConversationUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *ConversationUpdate) SetTotalOutputTokens(v int) *ConversationUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalOutputTokens(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *ConversationUpdate) AddTotalOutputTokens(v int) *ConversationUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetTotalLatencyMs sets the "total_latency_ms" field.
func (_u *ConversationUpdate) SetTotalLatencyMs(v int) *ConversationUpdate {
	_u.mutation.ResetTotalLatencyMs()
	_u.mutation.SetTotalLatencyMs(v)
	return _u
}

// SetNillableTotalLatencyMs sets the "total_latency_ms" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalLatencyMs(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalLatencyMs(*v)
	}
	return _u
}

// AddTotalLatencyMs adds value to the "total_latency_ms" field.
func (_u *ConversationUpdate) AddTotalLatencyMs(v int) *ConversationUpdate {
	_u.mutation.AddTotalLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConversationUpdate) SetErrorMessage(v string) *ConversationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableErrorMessage(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConversationUpdate) ClearErrorMessage() *ConversationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ConversationUpdate) SetCompletedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCompletedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ConversationUpdate) ClearCompletedAt() *ConversationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ConversationUpdate) AddEvaluationIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ConversationUpdate) AddEvaluations(v ...*Evaluation) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_u *ConversationUpdate) AddMetricIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_u *ConversationUpdate) AddMetrics(v ...*Metric) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ConversationUpdate) ClearEvaluations() *ConversationUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ConversationUpdate) RemoveEvaluationIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ConversationUpdate) RemoveEvaluations(v ...*Evaluation) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearMetrics clears all "metrics" edges to the Metric entity.
func (_u *ConversationUpdate) ClearMetrics() *ConversationUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to Metric entities by IDs.
func (_u *ConversationUpdate) RemoveMetricIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to Metric entities.
func (_u *ConversationUpdate) RemoveMetrics(v ...*Metric) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if _u.mutation.EvalRunCleared() && len(_u.mutation.EvalRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.eval_run"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(conversation.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(conversation.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(conversation.FieldTurns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldTurns, value)
		})
	}
	if _u.mutation.TurnsCleared() {
		_spec.ClearField(conversation.FieldTurns, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(conversation.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(conversation.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLatencyMs(); ok {
		_spec.SetField(conversation.FieldTotalLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLatencyMs(); ok {
		_spec.AddField(conversation.FieldTotalLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(conversation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(conversation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(conversation.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetSequence sets the "sequence" field.
func (_u *ConversationUpdateOne) SetSequence(v int) *ConversationUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSequence(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ConversationUpdateOne) AddSequence(v int) *ConversationUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdateOne) SetStatus(v conversation.Status) *ConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStatus(v *conversation.Status) *ConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *ConversationUpdateOne) SetTurns(v []map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.SetTurns(v)
	return _u
}

// AppendTurns appends value to the "turns" field.
func (_u *ConversationUpdateOne) AppendTurns(v []map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.AppendTurns(v)
	return _u
}

// ClearTurns clears the value of the "turns" field.
func (_u *ConversationUpdateOne) ClearTurns() *ConversationUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ConversationUpdateOne) SetTurnCount(v int) *ConversationUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTurnCount(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ConversationUpdateOne) AddTurnCount(v int) *ConversationUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ConversationUpdateOne) SetTotalTokens(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalTokens(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ConversationUpdateOne) AddTotalTokens(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *ConversationUpdateOne) SetTotalInputTokens(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalInputTokens(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *ConversationUpdateOne) AddTotalInputTokens(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *ConversationUpdateOne) SetTotalOutputTokens(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalOutputTokens(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *ConversationUpdateOne) AddTotalOutputTokens(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetTotalLatencyMs sets the "total_latency_ms" field.
func (_u *ConversationUpdateOne) SetTotalLatencyMs(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalLatencyMs()
	_u.mutation.SetTotalLatencyMs(v)
	return _u
}

// SetNillableTotalLatencyMs sets the "total_latency_ms" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalLatencyMs(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalLatencyMs(*v)
	}
	return _u
}

// AddTotalLatencyMs adds value to the "total_latency_ms" field.
func (_u *ConversationUpdateOne) AddTotalLatencyMs(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConversationUpdateOne) SetErrorMessage(v string) *ConversationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableErrorMessage(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConversationUpdateOne) ClearErrorMessage() *ConversationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ConversationUpdateOne) SetCompletedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCompletedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ConversationUpdateOne) ClearCompletedAt() *ConversationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ConversationUpdateOne) AddEvaluationIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ConversationUpdateOne) AddEvaluations(v ...*Evaluation) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_u *ConversationUpdateOne) AddMetricIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_u *ConversationUpdateOne) AddMetrics(v ...*Metric) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ConversationUpdateOne) ClearEvaluations() *ConversationUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ConversationUpdateOne) RemoveEvaluationIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ConversationUpdateOne) RemoveEvaluations(v ...*Evaluation) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearMetrics clears all "metrics" edges to the Metric entity.
func (_u *ConversationUpdateOne) ClearMetrics() *ConversationUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to Metric entities by IDs.
func (_u *ConversationUpdateOne) RemoveMetricIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to Metric entities.
func (_u *ConversationUpdateOne) RemoveMetrics(v ...*Metric) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if _u.mutation.EvalRunCleared() && len(_u.mutation.EvalRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.eval_run"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(conversation.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(conversation.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(conversation.FieldTurns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldTurns, value)
		})
	}
	if _u.mutation.TurnsCleared() {
		_spec.ClearField(conversation.FieldTurns, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(conversation.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(conversation.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(conversation.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(conversation.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLatencyMs(); ok {
		_spec.SetField(conversation.FieldTotalLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLatencyMs(); ok {
		_spec.AddField(conversation.FieldTotalLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(conversation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(conversation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(conversation.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
