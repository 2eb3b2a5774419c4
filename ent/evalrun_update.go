// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// EvalRunUpdate is the builder for updating EvalRun entities.
type EvalRunUpdate struct {
	config
	hooks    []Hook
	mutation *EvalRunMutation
}

// Where appends a list predicates to the EvalRunUpdate builder.
func (_u *EvalRunUpdate) Where(ps ...predicate.EvalRun) *EvalRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EvalRunUpdate) SetName(v string) *EvalRunUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableName(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *EvalRunUpdate) ClearName() *EvalRunUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetRubricID sets the "rubric_id" field.
func (_u *EvalRunUpdate) SetRubricID(v string) *EvalRunUpdate {
	_u.mutation.SetRubricID(v)
	return _u
}

// SetNillableRubricID sets the "rubric_id" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableRubricID(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetRubricID(*v)
	}
	return _u
}

// ClearRubricID clears the value of the "rubric_id" field.
func (_u *EvalRunUpdate) ClearRubricID() *EvalRunUpdate {
	_u.mutation.ClearRubricID()
	return _u
}

// SetNumConversations sets the "num_conversations" field.
func (_u *EvalRunUpdate) SetNumConversations(v int) *EvalRunUpdate {
	_u.mutation.ResetNumConversations()
	_u.mutation.SetNumConversations(v)
	return _u
}

// SetNillableNumConversations sets the "num_conversations" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableNumConversations(v *int) *EvalRunUpdate {
	if v != nil {
		_u.SetNumConversations(*v)
	}
	return _u
}

// AddNumConversations adds value to the "num_conversations" field.
func (_u *EvalRunUpdate) AddNumConversations(v int) *EvalRunUpdate {
	_u.mutation.AddNumConversations(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvalRunUpdate) SetStatus(v evalrun.Status) *EvalRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableStatus(v *evalrun.Status) *EvalRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvalRunUpdate) SetErrorMessage(v string) *EvalRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableErrorMessage(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EvalRunUpdate) ClearErrorMessage() *EvalRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *EvalRunUpdate) SetEnvironment(v map[string]interface{}) *EvalRunUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// ClearEnvironment clears the value of the "environment" field.
func (_u *EvalRunUpdate) ClearEnvironment() *EvalRunUpdate {
	_u.mutation.ClearEnvironment()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *EvalRunUpdate) SetPodID(v string) *EvalRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillablePodID(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *EvalRunUpdate) ClearPodID() *EvalRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *EvalRunUpdate) SetLastHeartbeatAt(v time.Time) *EvalRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *EvalRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *EvalRunUpdate) ClearLastHeartbeatAt() *EvalRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EvalRunUpdate) SetStartedAt(v time.Time) *EvalRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableStartedAt(v *time.Time) *EvalRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *EvalRunUpdate) ClearStartedAt() *EvalRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvalRunUpdate) SetCompletedAt(v time.Time) *EvalRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableCompletedAt(v *time.Time) *EvalRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvalRunUpdate) ClearCompletedAt() *EvalRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *EvalRunUpdate) AddConversationIDs(ids ...string) *EvalRunUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *EvalRunUpdate) AddConversations(v ...*Conversation) *EvalRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *EvalRunUpdate) AddEvaluationIDs(ids ...string) *EvalRunUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *EvalRunUpdate) AddEvaluations(v ...*Evaluation) *EvalRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_u *EvalRunUpdate) AddMetricIDs(ids ...string) *EvalRunUpdate {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_u *EvalRunUpdate) AddMetrics(v ...*Metric) *EvalRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// Mutation returns the EvalRunMutation object of the builder.
func (_u *EvalRunUpdate) Mutation() *EvalRunMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *EvalRunUpdate) ClearConversations() *EvalRunUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *EvalRunUpdate) RemoveConversationIDs(ids ...string) *EvalRunUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *EvalRunUpdate) RemoveConversations(v ...*Conversation) *EvalRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *EvalRunUpdate) ClearEvaluations() *EvalRunUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *EvalRunUpdate) RemoveEvaluationIDs(ids ...string) *EvalRunUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *EvalRunUpdate) RemoveEvaluations(v ...*Evaluation) *EvalRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearMetrics clears all "metrics" edges to the Metric entity.
func (_u *EvalRunUpdate) ClearMetrics() *EvalRunUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to Metric entities by IDs.
func (_u *EvalRunUpdate) RemoveMetricIDs(ids ...string) *EvalRunUpdate {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to Metric entities.
func (_u *EvalRunUpdate) RemoveMetrics(v ...*Metric) *EvalRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvalRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvalRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvalRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvalRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvalRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evalrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvalRun.status": %w`, err)}
		}
	}
	if _u.mutation.AgentConfigCleared() && len(_u.mutation.AgentConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvalRun.agent_config"`)
	}
	if _u.mutation.ScenarioCleared() && len(_u.mutation.ScenarioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvalRun.scenario"`)
	}
	return nil
}

func (_u *EvalRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evalrun.Table, evalrun.Columns, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(evalrun.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(evalrun.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.RubricID(); ok {
		_spec.SetField(evalrun.FieldRubricID, field.TypeString, value)
	}
	if _u.mutation.RubricIDCleared() {
		_spec.ClearField(evalrun.FieldRubricID, field.TypeString)
	}
	if value, ok := _u.mutation.NumConversations(); ok {
		_spec.SetField(evalrun.FieldNumConversations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumConversations(); ok {
		_spec.AddField(evalrun.FieldNumConversations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evalrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evalrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(evalrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(evalrun.FieldEnvironment, field.TypeJSON, value)
	}
	if _u.mutation.EnvironmentCleared() {
		_spec.ClearField(evalrun.FieldEnvironment, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(evalrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(evalrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(evalrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(evalrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(evalrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(evalrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evalrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evalrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evalrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvalRunUpdateOne is the builder for updating a single EvalRun entity.
type EvalRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvalRunMutation
}

// SetName sets the "name" field.
func (_u *EvalRunUpdateOne) SetName(v string) *EvalRunUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableName(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *EvalRunUpdateOne) ClearName() *EvalRunUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetRubricID sets the "rubric_id" field.
func (_u *EvalRunUpdateOne) SetRubricID(v string) *EvalRunUpdateOne {
	_u.mutation.SetRubricID(v)
	return _u
}

// SetNillableRubricID sets the "rubric_id" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableRubricID(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetRubricID(*v)
	}
	return _u
}

// ClearRubricID clears the value of the "rubric_id" field.
func (_u *EvalRunUpdateOne) ClearRubricID() *EvalRunUpdateOne {
	_u.mutation.ClearRubricID()
	return _u
}

// SetNumConversations sets the "num_conversations" field.
func (_u *EvalRunUpdateOne) SetNumConversations(v int) *EvalRunUpdateOne {
	_u.mutation.ResetNumConversations()
	_u.mutation.SetNumConversations(v)
	return _u
}

// SetNillableNumConversations sets the "num_conversations" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableNumConversations(v *int) *EvalRunUpdateOne {
	if v != nil {
		_u.SetNumConversations(*v)
	}
	return _u
}

// AddNumConversations adds value to the "num_conversations" field.
func (_u *EvalRunUpdateOne) AddNumConversations(v int) *EvalRunUpdateOne {
	_u.mutation.AddNumConversations(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvalRunUpdateOne) SetStatus(v evalrun.Status) *EvalRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableStatus(v *evalrun.Status) *EvalRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvalRunUpdateOne) SetErrorMessage(v string) *EvalRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableErrorMessage(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EvalRunUpdateOne) ClearErrorMessage() *EvalRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *EvalRunUpdateOne) SetEnvironment(v map[string]interface{}) *EvalRunUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// ClearEnvironment clears the value of the "environment" field.
func (_u *EvalRunUpdateOne) ClearEnvironment() *EvalRunUpdateOne {
	_u.mutation.ClearEnvironment()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *EvalRunUpdateOne) SetPodID(v string) *EvalRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillablePodID(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *EvalRunUpdateOne) ClearPodID() *EvalRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *EvalRunUpdateOne) SetLastHeartbeatAt(v time.Time) *EvalRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *EvalRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *EvalRunUpdateOne) ClearLastHeartbeatAt() *EvalRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EvalRunUpdateOne) SetStartedAt(v time.Time) *EvalRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableStartedAt(v *time.Time) *EvalRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *EvalRunUpdateOne) ClearStartedAt() *EvalRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvalRunUpdateOne) SetCompletedAt(v time.Time) *EvalRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableCompletedAt(v *time.Time) *EvalRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvalRunUpdateOne) ClearCompletedAt() *EvalRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *EvalRunUpdateOne) AddConversationIDs(ids ...string) *EvalRunUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *EvalRunUpdateOne) AddConversations(v ...*Conversation) *EvalRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *EvalRunUpdateOne) AddEvaluationIDs(ids ...string) *EvalRunUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *EvalRunUpdateOne) AddEvaluations(v ...*Evaluation) *EvalRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_u *EvalRunUpdateOne) AddMetricIDs(ids ...string) *EvalRunUpdateOne {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_u *EvalRunUpdateOne) AddMetrics(v ...*Metric) *EvalRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// Mutation returns the EvalRunMutation object of the builder.
func (_u *EvalRunUpdateOne) Mutation() *EvalRunMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *EvalRunUpdateOne) ClearConversations() *EvalRunUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *EvalRunUpdateOne) RemoveConversationIDs(ids ...string) *EvalRunUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *EvalRunUpdateOne) RemoveConversations(v ...*Conversation) *EvalRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *EvalRunUpdateOne) ClearEvaluations() *EvalRunUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *EvalRunUpdateOne) RemoveEvaluationIDs(ids ...string) *EvalRunUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *EvalRunUpdateOne) RemoveEvaluations(v ...*Evaluation) *EvalRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearMetrics clears all "metrics" edges to the Metric entity.
func (_u *EvalRunUpdateOne) ClearMetrics() *EvalRunUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to Metric entities by IDs.
func (_u *EvalRunUpdateOne) RemoveMetricIDs(ids ...string) *EvalRunUpdateOne {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to Metric entities.
func (_u *EvalRunUpdateOne) RemoveMetrics(v ...*Metric) *EvalRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// Where appends a list predicates to the EvalRunUpdate builder.
func (_u *EvalRunUpdateOne) Where(ps ...predicate.EvalRun) *EvalRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvalRunUpdateOne) Select(field string, fields ...string) *EvalRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvalRun entity.
func (_u *EvalRunUpdateOne) Save(ctx context.Context) (*EvalRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvalRunUpdateOne) SaveX(ctx context.Context) *EvalRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvalRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvalRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvalRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evalrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvalRun.status": %w`, err)}
		}
	}
	if _u.mutation.AgentConfigCleared() && len(_u.mutation.AgentConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvalRun.agent_config"`)
	}
	if _u.mutation.ScenarioCleared() && len(_u.mutation.ScenarioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvalRun.scenario"`)
	}
	return nil
}

func (_u *EvalRunUpdateOne) sqlSave(ctx context.Context) (_node *EvalRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evalrun.Table, evalrun.Columns, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvalRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evalrun.FieldID)
		for _, f := range fields {
			if !evalrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evalrun.FieldID {
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
		_spec.SetField(evalrun.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(evalrun.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.RubricID(); ok {
		_spec.SetField(evalrun.FieldRubricID, field.TypeString, value)
	}
	if _u.mutation.RubricIDCleared() {
		_spec.ClearField(evalrun.FieldRubricID, field.TypeString)
	}
	if value, ok := _u.mutation.NumConversations(); ok {
		_spec.SetField(evalrun.FieldNumConversations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumConversations(); ok {
		_spec.AddField(evalrun.FieldNumConversations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evalrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evalrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(evalrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(evalrun.FieldEnvironment, field.TypeJSON, value)
	}
	if _u.mutation.EnvironmentCleared() {
		_spec.ClearField(evalrun.FieldEnvironment, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(evalrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(evalrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(evalrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(evalrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(evalrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(evalrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evalrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evalrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EvalRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evalrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
