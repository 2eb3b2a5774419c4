// Code generated by ent, DO NOT EDIT.

package evalrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldName, v))
}

// AgentConfigID applies equality check predicate on the "agent_config_id" field. It's identical to AgentConfigIDEQ.
func AgentConfigID(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldAgentConfigID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldScenarioID, v))
}

// RubricID applies equality check predicate on the "rubric_id" field. It's identical to RubricIDEQ.
func RubricID(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldRubricID, v))
}

// NumConversations applies equality check predicate on the "num_conversations" field. It's identical to NumConversationsEQ.
func NumConversations(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldNumConversations, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldName, v))
}

// AgentConfigIDEQ applies the EQ predicate on the "agent_config_id" field.
func AgentConfigIDEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldAgentConfigID, v))
}

// AgentConfigIDNEQ applies the NEQ predicate on the "agent_config_id" field.
func AgentConfigIDNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldAgentConfigID, v))
}

// AgentConfigIDIn applies the In predicate on the "agent_config_id" field.
func AgentConfigIDIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldAgentConfigID, vs...))
}

// AgentConfigIDNotIn applies the NotIn predicate on the "agent_config_id" field.
func AgentConfigIDNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldAgentConfigID, vs...))
}

// AgentConfigIDGT applies the GT predicate on the "agent_config_id" field.
func AgentConfigIDGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldAgentConfigID, v))
}

// AgentConfigIDGTE applies the GTE predicate on the "agent_config_id" field.
func AgentConfigIDGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldAgentConfigID, v))
}

// AgentConfigIDLT applies the LT predicate on the "agent_config_id" field.
func AgentConfigIDLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldAgentConfigID, v))
}

// AgentConfigIDLTE applies the LTE predicate on the "agent_config_id" field.
func AgentConfigIDLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldAgentConfigID, v))
}

// AgentConfigIDContains applies the Contains predicate on the "agent_config_id" field.
func AgentConfigIDContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldAgentConfigID, v))
}

// AgentConfigIDHasPrefix applies the HasPrefix predicate on the "agent_config_id" field.
func AgentConfigIDHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldAgentConfigID, v))
}

// AgentConfigIDHasSuffix applies the HasSuffix predicate on the "agent_config_id" field.
func AgentConfigIDHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldAgentConfigID, v))
}

// AgentConfigIDEqualFold applies the EqualFold predicate on the "agent_config_id" field.
func AgentConfigIDEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldAgentConfigID, v))
}

// AgentConfigIDContainsFold applies the ContainsFold predicate on the "agent_config_id" field.
func AgentConfigIDContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldAgentConfigID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldScenarioID, v))
}

// RubricIDEQ applies the EQ predicate on the "rubric_id" field.
func RubricIDEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldRubricID, v))
}

// RubricIDNEQ applies the NEQ predicate on the "rubric_id" field.
func RubricIDNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldRubricID, v))
}

// RubricIDIn applies the In predicate on the "rubric_id" field.
func RubricIDIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldRubricID, vs...))
}

// RubricIDNotIn applies the NotIn predicate on the "rubric_id" field.
func RubricIDNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldRubricID, vs...))
}

// RubricIDGT applies the GT predicate on the "rubric_id" field.
func RubricIDGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldRubricID, v))
}

// RubricIDGTE applies the GTE predicate on the "rubric_id" field.
func RubricIDGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldRubricID, v))
}

// RubricIDLT applies the LT predicate on the "rubric_id" field.
func RubricIDLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldRubricID, v))
}

// RubricIDLTE applies the LTE predicate on the "rubric_id" field.
func RubricIDLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldRubricID, v))
}

// RubricIDContains applies the Contains predicate on the "rubric_id" field.
func RubricIDContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldRubricID, v))
}

// RubricIDHasPrefix applies the HasPrefix predicate on the "rubric_id" field.
func RubricIDHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldRubricID, v))
}

// RubricIDHasSuffix applies the HasSuffix predicate on the "rubric_id" field.
func RubricIDHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldRubricID, v))
}

// RubricIDIsNil applies the IsNil predicate on the "rubric_id" field.
func RubricIDIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldRubricID))
}

// RubricIDNotNil applies the NotNil predicate on the "rubric_id" field.
func RubricIDNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldRubricID))
}

// RubricIDEqualFold applies the EqualFold predicate on the "rubric_id" field.
func RubricIDEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldRubricID, v))
}

// RubricIDContainsFold applies the ContainsFold predicate on the "rubric_id" field.
func RubricIDContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldRubricID, v))
}

// NumConversationsEQ applies the EQ predicate on the "num_conversations" field.
func NumConversationsEQ(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldNumConversations, v))
}

// NumConversationsNEQ applies the NEQ predicate on the "num_conversations" field.
func NumConversationsNEQ(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldNumConversations, v))
}

// NumConversationsIn applies the In predicate on the "num_conversations" field.
func NumConversationsIn(vs ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldNumConversations, vs...))
}

// NumConversationsNotIn applies the NotIn predicate on the "num_conversations" field.
func NumConversationsNotIn(vs ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldNumConversations, vs...))
}

// NumConversationsGT applies the GT predicate on the "num_conversations" field.
func NumConversationsGT(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldNumConversations, v))
}

// NumConversationsGTE applies the GTE predicate on the "num_conversations" field.
func NumConversationsGTE(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldNumConversations, v))
}

// NumConversationsLT applies the LT predicate on the "num_conversations" field.
func NumConversationsLT(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldNumConversations, v))
}

// NumConversationsLTE applies the LTE predicate on the "num_conversations" field.
func NumConversationsLTE(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldNumConversations, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// EnvironmentIsNil applies the IsNil predicate on the "environment" field.
func EnvironmentIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldEnvironment))
}

// EnvironmentNotNil applies the NotNil predicate on the "environment" field.
func EnvironmentNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldEnvironment))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgentConfig applies the HasEdge predicate on the "agent_config" edge.
func HasAgentConfig() predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentConfigTable, AgentConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentConfigWith applies the HasEdge predicate on the "agent_config" edge with a given conditions (other predicates).
func HasAgentConfigWith(preds ...predicate.AgentConfig) predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := newAgentConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScenario applies the HasEdge predicate on the "scenario" edge.
func HasScenario() predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScenarioTable, ScenarioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScenarioWith applies the HasEdge predicate on the "scenario" edge with a given conditions (other predicates).
func HasScenarioWith(preds ...predicate.Scenario) predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := newScenarioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMetrics applies the HasEdge predicate on the "metrics" edge.
func HasMetrics() predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MetricsTable, MetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMetricsWith applies the HasEdge predicate on the "metrics" edge with a given conditions (other predicates).
func HasMetricsWith(preds ...predicate.Metric) predicate.EvalRun {
	return predicate.EvalRun(func(s *sql.Selector) {
		step := newMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.NotPredicates(p))
}
