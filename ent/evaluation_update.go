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
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvaluatorType sets the "evaluator_type" field.
func (_u *EvaluationUpdate) SetEvaluatorType(v evaluation.EvaluatorType) *EvaluationUpdate {
	_u.mutation.SetEvaluatorType(v)
	return _u
}

// SetNillableEvaluatorType sets the "evaluator_type" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableEvaluatorType(v *evaluation.EvaluatorType) *EvaluationUpdate {
	if v != nil {
		_u.SetEvaluatorType(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *EvaluationUpdate) SetScores(v map[string]float64) *EvaluationUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationUpdate) SetOverallScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableOverallScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationUpdate) AddOverallScore(v float64) *EvaluationUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvaluationUpdate) SetReasoning(v string) *EvaluationUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableReasoning(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *EvaluationUpdate) ClearReasoning() *EvaluationUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetTurnScores sets the "turn_scores" field.
func (_u *EvaluationUpdate) SetTurnScores(v []map[string]interface{}) *EvaluationUpdate {
	_u.mutation.SetTurnScores(v)
	return _u
}

// AppendTurnScores appends value to the "turn_scores" field.
func (_u *EvaluationUpdate) AppendTurnScores(v []map[string]interface{}) *EvaluationUpdate {
	_u.mutation.AppendTurnScores(v)
	return _u
}

// ClearTurnScores clears the value of the "turn_scores" field.
func (_u *EvaluationUpdate) ClearTurnScores() *EvaluationUpdate {
	_u.mutation.ClearTurnScores()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EvaluationUpdate) SetMetadata(v map[string]interface{}) *EvaluationUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EvaluationUpdate) ClearMetadata() *EvaluationUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if v, ok := _u.mutation.EvaluatorType(); ok {
		if err := evaluation.EvaluatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "evaluator_type", err: fmt.Errorf(`ent: validator failed for field "Evaluation.evaluator_type": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.conversation"`)
	}
	if _u.mutation.EvalRunCleared() && len(_u.mutation.EvalRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.eval_run"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvaluatorType(); ok {
		_spec.SetField(evaluation.FieldEvaluatorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(evaluation.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(evaluation.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.TurnScores(); ok {
		_spec.SetField(evaluation.FieldTurnScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurnScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldTurnScores, value)
		})
	}
	if _u.mutation.TurnScoresCleared() {
		_spec.ClearField(evaluation.FieldTurnScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(evaluation.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(evaluation.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetEvaluatorType sets the "evaluator_type" field.
func (_u *EvaluationUpdateOne) SetEvaluatorType(v evaluation.EvaluatorType) *EvaluationUpdateOne {
	_u.mutation.SetEvaluatorType(v)
	return _u
}

// SetNillableEvaluatorType sets the "evaluator_type" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableEvaluatorType(v *evaluation.EvaluatorType) *EvaluationUpdateOne {
	if v != nil {
		_u.SetEvaluatorType(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *EvaluationUpdateOne) SetScores(v map[string]float64) *EvaluationUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationUpdateOne) SetOverallScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableOverallScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationUpdateOne) AddOverallScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvaluationUpdateOne) SetReasoning(v string) *EvaluationUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableReasoning(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *EvaluationUpdateOne) ClearReasoning() *EvaluationUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetTurnScores sets the "turn_scores" field.
func (_u *EvaluationUpdateOne) SetTurnScores(v []map[string]interface{}) *EvaluationUpdateOne {
	_u.mutation.SetTurnScores(v)
	return _u
}

// AppendTurnScores appends value to the "turn_scores" field.
func (_u *EvaluationUpdateOne) AppendTurnScores(v []map[string]interface{}) *EvaluationUpdateOne {
	_u.mutation.AppendTurnScores(v)
	return _u
}

// ClearTurnScores clears the value of the "turn_scores" field.
func (_u *EvaluationUpdateOne) ClearTurnScores() *EvaluationUpdateOne {
	_u.mutation.ClearTurnScores()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EvaluationUpdateOne) SetMetadata(v map[string]interface{}) *EvaluationUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EvaluationUpdateOne) ClearMetadata() *EvaluationUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.EvaluatorType(); ok {
		if err := evaluation.EvaluatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "evaluator_type", err: fmt.Errorf(`ent: validator failed for field "Evaluation.evaluator_type": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.conversation"`)
	}
	if _u.mutation.EvalRunCleared() && len(_u.mutation.EvalRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.eval_run"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
	if value, ok := _u.mutation.EvaluatorType(); ok {
		_spec.SetField(evaluation.FieldEvaluatorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(evaluation.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(evaluation.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.TurnScores(); ok {
		_spec.SetField(evaluation.FieldTurnScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurnScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldTurnScores, value)
		})
	}
	if _u.mutation.TurnScoresCleared() {
		_spec.ClearField(evaluation.FieldTurnScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(evaluation.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(evaluation.FieldMetadata, field.TypeJSON)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
