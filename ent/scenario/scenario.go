// Code generated by ent, DO NOT EDIT.

package scenario

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scenario type in the database.
	Label = "scenario"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scenario_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldUserPersonality holds the string denoting the user_personality field in the database.
	FieldUserPersonality = "user_personality"
	// FieldExpertiseLevel holds the string denoting the expertise_level field in the database.
	FieldExpertiseLevel = "expertise_level"
	// FieldInitialMessage holds the string denoting the initial_message field in the database.
	FieldInitialMessage = "initial_message"
	// FieldTurnsTemplate holds the string denoting the turns_template field in the database.
	FieldTurnsTemplate = "turns_template"
	// FieldExpectedToolSequence holds the string denoting the expected_tool_sequence field in the database.
	FieldExpectedToolSequence = "expected_tool_sequence"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMaxTurns holds the string denoting the max_turns field in the database.
	FieldMaxTurns = "max_turns"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEvalRuns holds the string denoting the eval_runs edge name in mutations.
	EdgeEvalRuns = "eval_runs"
	// EvalRunFieldID holds the string denoting the ID field of the EvalRun.
	EvalRunFieldID = "eval_run_id"
	// Table holds the table name of the scenario in the database.
	Table = "scenarios"
	// EvalRunsTable is the table that holds the eval_runs relation/edge.
	EvalRunsTable = "eval_runs"
	// EvalRunsInverseTable is the table name for the EvalRun entity.
	// It exists in this package in order to avoid circular dependency with the "evalrun" package.
	EvalRunsInverseTable = "eval_runs"
	// EvalRunsColumn is the table column denoting the eval_runs relation/edge.
	EvalRunsColumn = "scenario_id"
)

// Columns holds all SQL columns for scenario fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldGoal,
	FieldUserPersonality,
	FieldExpertiseLevel,
	FieldInitialMessage,
	FieldTurnsTemplate,
	FieldExpectedToolSequence,
	FieldDifficulty,
	FieldTags,
	FieldMaxTurns,
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
	// DefaultUserPersonality holds the default value on creation for the "user_personality" field.
	DefaultUserPersonality string
	// DefaultMaxTurns holds the default value on creation for the "max_turns" field.
	DefaultMaxTurns int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ExpertiseLevel defines the type for the "expertise_level" enum field.
type ExpertiseLevel string

// ExpertiseLevelIntermediate is the default value of the ExpertiseLevel enum.
const DefaultExpertiseLevel = ExpertiseLevelIntermediate

// ExpertiseLevel values.
const (
	ExpertiseLevelNovice       ExpertiseLevel = "novice"
	ExpertiseLevelIntermediate ExpertiseLevel = "intermediate"
	ExpertiseLevelExpert       ExpertiseLevel = "expert"
)

func (el ExpertiseLevel) String() string {
	return string(el)
}

// ExpertiseLevelValidator is a validator for the "expertise_level" field enum values. It is called by the builders before save.
func ExpertiseLevelValidator(el ExpertiseLevel) error {
	switch el {
	case ExpertiseLevelNovice, ExpertiseLevelIntermediate, ExpertiseLevelExpert:
		return nil
	default:
		return fmt.Errorf("scenario: invalid enum value for expertise_level field: %q", el)
	}
}

// Difficulty defines the type for the "difficulty" enum field.
type Difficulty string

// DifficultyMedium is the default value of the Difficulty enum.
const DefaultDifficulty = DifficultyMedium

// Difficulty values.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string {
	return string(d)
}

// DifficultyValidator is a validator for the "difficulty" field enum values. It is called by the builders before save.
func DifficultyValidator(d Difficulty) error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("scenario: invalid enum value for difficulty field: %q", d)
	}
}

// OrderOption defines the ordering options for the Scenario queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByUserPersonality orders the results by the user_personality field.
func ByUserPersonality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserPersonality, opts...).ToFunc()
}

// ByExpertiseLevel orders the results by the expertise_level field.
func ByExpertiseLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpertiseLevel, opts...).ToFunc()
}

// ByInitialMessage orders the results by the initial_message field.
func ByInitialMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialMessage, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByMaxTurns orders the results by the max_turns field.
func ByMaxTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTurns, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEvalRunsCount orders the results by eval_runs count.
func ByEvalRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvalRunsStep(), opts...)
	}
}

// ByEvalRuns orders the results by eval_runs terms.
func ByEvalRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvalRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEvalRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvalRunsInverseTable, EvalRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvalRunsTable, EvalRunsColumn),
	)
}
