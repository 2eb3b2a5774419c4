// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluation type in the database.
	Label = "evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evaluation_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldEvalRunID holds the string denoting the eval_run_id field in the database.
	FieldEvalRunID = "eval_run_id"
	// FieldEvaluatorType holds the string denoting the evaluator_type field in the database.
	FieldEvaluatorType = "evaluator_type"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldTurnScores holds the string denoting the turn_scores field in the database.
	FieldTurnScores = "turn_scores"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// EdgeEvalRun holds the string denoting the eval_run edge name in mutations.
	EdgeEvalRun = "eval_run"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// EvalRunFieldID holds the string denoting the ID field of the EvalRun.
	EvalRunFieldID = "eval_run_id"
	// Table holds the table name of the evaluation in the database.
	Table = "evaluations"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "evaluations"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
	// EvalRunTable is the table that holds the eval_run relation/edge.
	EvalRunTable = "evaluations"
	// EvalRunInverseTable is the table name for the EvalRun entity.
	// It exists in this package in order to avoid circular dependency with the "evalrun" package.
	EvalRunInverseTable = "eval_runs"
	// EvalRunColumn is the table column denoting the eval_run relation/edge.
	EvalRunColumn = "eval_run_id"
)

// Columns holds all SQL columns for evaluation fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldEvalRunID,
	FieldEvaluatorType,
	FieldScores,
	FieldOverallScore,
	FieldReasoning,
	FieldTurnScores,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EvaluatorType defines the type for the "evaluator_type" enum field.
type EvaluatorType string

// EvaluatorType values.
const (
	EvaluatorTypeModelJudge     EvaluatorType = "model_judge"
	EvaluatorTypeRubricGrader   EvaluatorType = "rubric_grader"
	EvaluatorTypeHuman          EvaluatorType = "human"
	EvaluatorTypeReferenceBased EvaluatorType = "reference_based"
	EvaluatorTypeTrajectory     EvaluatorType = "trajectory"
	EvaluatorTypePairwiseJudge  EvaluatorType = "pairwise_judge"
)

func (et EvaluatorType) String() string {
	return string(et)
}

// EvaluatorTypeValidator is a validator for the "evaluator_type" field enum values. It is called by the builders before save.
func EvaluatorTypeValidator(et EvaluatorType) error {
	switch et {
	case EvaluatorTypeModelJudge, EvaluatorTypeRubricGrader, EvaluatorTypeHuman, EvaluatorTypeReferenceBased, EvaluatorTypeTrajectory, EvaluatorTypePairwiseJudge:
		return nil
	default:
		return fmt.Errorf("evaluation: invalid enum value for evaluator_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the Evaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByEvalRunID orders the results by the eval_run_id field.
func ByEvalRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvalRunID, opts...).ToFunc()
}

// ByEvaluatorType orders the results by the evaluator_type field.
func ByEvaluatorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatorType, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvalRunField orders the results by eval_run field.
func ByEvalRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvalRunStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
func newEvalRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvalRunInverseTable, EvalRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EvalRunTable, EvalRunColumn),
	)
}
