// Code generated by ent, DO NOT EDIT.

package scenario

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldDescription, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldGoal, v))
}

// UserPersonality applies equality check predicate on the "user_personality" field. It's identical to UserPersonalityEQ.
func UserPersonality(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldUserPersonality, v))
}

// InitialMessage applies equality check predicate on the "initial_message" field. It's identical to InitialMessageEQ.
func InitialMessage(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldInitialMessage, v))
}

// MaxTurns applies equality check predicate on the "max_turns" field. It's identical to MaxTurnsEQ.
func MaxTurns(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldMaxTurns, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContainsFold(FieldDescription, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContainsFold(FieldGoal, v))
}

// UserPersonalityEQ applies the EQ predicate on the "user_personality" field.
func UserPersonalityEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldUserPersonality, v))
}

// UserPersonalityNEQ applies the NEQ predicate on the "user_personality" field.
func UserPersonalityNEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldUserPersonality, v))
}

// UserPersonalityIn applies the In predicate on the "user_personality" field.
func UserPersonalityIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldUserPersonality, vs...))
}

// UserPersonalityNotIn applies the NotIn predicate on the "user_personality" field.
func UserPersonalityNotIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldUserPersonality, vs...))
}

// UserPersonalityGT applies the GT predicate on the "user_personality" field.
func UserPersonalityGT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldUserPersonality, v))
}

// UserPersonalityGTE applies the GTE predicate on the "user_personality" field.
func UserPersonalityGTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldUserPersonality, v))
}

// UserPersonalityLT applies the LT predicate on the "user_personality" field.
func UserPersonalityLT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldUserPersonality, v))
}

// UserPersonalityLTE applies the LTE predicate on the "user_personality" field.
func UserPersonalityLTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldUserPersonality, v))
}

// UserPersonalityContains applies the Contains predicate on the "user_personality" field.
func UserPersonalityContains(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContains(FieldUserPersonality, v))
}

// UserPersonalityHasPrefix applies the HasPrefix predicate on the "user_personality" field.
func UserPersonalityHasPrefix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasPrefix(FieldUserPersonality, v))
}

// UserPersonalityHasSuffix applies the HasSuffix predicate on the "user_personality" field.
func UserPersonalityHasSuffix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasSuffix(FieldUserPersonality, v))
}

// UserPersonalityEqualFold applies the EqualFold predicate on the "user_personality" field.
func UserPersonalityEqualFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEqualFold(FieldUserPersonality, v))
}

// UserPersonalityContainsFold applies the ContainsFold predicate on the "user_personality" field.
func UserPersonalityContainsFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContainsFold(FieldUserPersonality, v))
}

// ExpertiseLevelEQ applies the EQ predicate on the "expertise_level" field.
func ExpertiseLevelEQ(v ExpertiseLevel) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldExpertiseLevel, v))
}

// ExpertiseLevelNEQ applies the NEQ predicate on the "expertise_level" field.
func ExpertiseLevelNEQ(v ExpertiseLevel) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldExpertiseLevel, v))
}

// ExpertiseLevelIn applies the In predicate on the "expertise_level" field.
func ExpertiseLevelIn(vs ...ExpertiseLevel) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldExpertiseLevel, vs...))
}

// ExpertiseLevelNotIn applies the NotIn predicate on the "expertise_level" field.
func ExpertiseLevelNotIn(vs ...ExpertiseLevel) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldExpertiseLevel, vs...))
}

// InitialMessageEQ applies the EQ predicate on the "initial_message" field.
func InitialMessageEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldInitialMessage, v))
}

// InitialMessageNEQ applies the NEQ predicate on the "initial_message" field.
func InitialMessageNEQ(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldInitialMessage, v))
}

// InitialMessageIn applies the In predicate on the "initial_message" field.
func InitialMessageIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldInitialMessage, vs...))
}

// InitialMessageNotIn applies the NotIn predicate on the "initial_message" field.
func InitialMessageNotIn(vs ...string) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldInitialMessage, vs...))
}

// InitialMessageGT applies the GT predicate on the "initial_message" field.
func InitialMessageGT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldInitialMessage, v))
}

// InitialMessageGTE applies the GTE predicate on the "initial_message" field.
func InitialMessageGTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldInitialMessage, v))
}

// InitialMessageLT applies the LT predicate on the "initial_message" field.
func InitialMessageLT(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldInitialMessage, v))
}

// InitialMessageLTE applies the LTE predicate on the "initial_message" field.
func InitialMessageLTE(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldInitialMessage, v))
}

// InitialMessageContains applies the Contains predicate on the "initial_message" field.
func InitialMessageContains(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContains(FieldInitialMessage, v))
}

// InitialMessageHasPrefix applies the HasPrefix predicate on the "initial_message" field.
func InitialMessageHasPrefix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasPrefix(FieldInitialMessage, v))
}

// InitialMessageHasSuffix applies the HasSuffix predicate on the "initial_message" field.
func InitialMessageHasSuffix(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldHasSuffix(FieldInitialMessage, v))
}

// InitialMessageIsNil applies the IsNil predicate on the "initial_message" field.
func InitialMessageIsNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldIsNull(FieldInitialMessage))
}

// InitialMessageNotNil applies the NotNil predicate on the "initial_message" field.
func InitialMessageNotNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldNotNull(FieldInitialMessage))
}

// InitialMessageEqualFold applies the EqualFold predicate on the "initial_message" field.
func InitialMessageEqualFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldEqualFold(FieldInitialMessage, v))
}

// InitialMessageContainsFold applies the ContainsFold predicate on the "initial_message" field.
func InitialMessageContainsFold(v string) predicate.Scenario {
	return predicate.Scenario(sql.FieldContainsFold(FieldInitialMessage, v))
}

// TurnsTemplateIsNil applies the IsNil predicate on the "turns_template" field.
func TurnsTemplateIsNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldIsNull(FieldTurnsTemplate))
}

// TurnsTemplateNotNil applies the NotNil predicate on the "turns_template" field.
func TurnsTemplateNotNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldNotNull(FieldTurnsTemplate))
}

// ExpectedToolSequenceIsNil applies the IsNil predicate on the "expected_tool_sequence" field.
func ExpectedToolSequenceIsNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldIsNull(FieldExpectedToolSequence))
}

// ExpectedToolSequenceNotNil applies the NotNil predicate on the "expected_tool_sequence" field.
func ExpectedToolSequenceNotNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldNotNull(FieldExpectedToolSequence))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v Difficulty) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v Difficulty) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...Difficulty) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...Difficulty) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldDifficulty, vs...))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Scenario {
	return predicate.Scenario(sql.FieldNotNull(FieldTags))
}

// MaxTurnsEQ applies the EQ predicate on the "max_turns" field.
func MaxTurnsEQ(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldMaxTurns, v))
}

// MaxTurnsNEQ applies the NEQ predicate on the "max_turns" field.
func MaxTurnsNEQ(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldMaxTurns, v))
}

// MaxTurnsIn applies the In predicate on the "max_turns" field.
func MaxTurnsIn(vs ...int) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldMaxTurns, vs...))
}

// MaxTurnsNotIn applies the NotIn predicate on the "max_turns" field.
func MaxTurnsNotIn(vs ...int) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldMaxTurns, vs...))
}

// MaxTurnsGT applies the GT predicate on the "max_turns" field.
func MaxTurnsGT(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldMaxTurns, v))
}

// MaxTurnsGTE applies the GTE predicate on the "max_turns" field.
func MaxTurnsGTE(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldMaxTurns, v))
}

// MaxTurnsLT applies the LT predicate on the "max_turns" field.
func MaxTurnsLT(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldMaxTurns, v))
}

// MaxTurnsLTE applies the LTE predicate on the "max_turns" field.
func MaxTurnsLTE(v int) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldMaxTurns, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Scenario {
	return predicate.Scenario(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEvalRuns applies the HasEdge predicate on the "eval_runs" edge.
func HasEvalRuns() predicate.Scenario {
	return predicate.Scenario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvalRunsTable, EvalRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvalRunsWith applies the HasEdge predicate on the "eval_runs" edge with a given conditions (other predicates).
func HasEvalRunsWith(preds ...predicate.EvalRun) predicate.Scenario {
	return predicate.Scenario(func(s *sql.Selector) {
		step := newEvalRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Scenario) predicate.Scenario {
	return predicate.Scenario(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Scenario) predicate.Scenario {
	return predicate.Scenario(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Scenario) predicate.Scenario {
	return predicate.Scenario(sql.NotPredicates(p))
}
