// Code generated by ent, DO NOT EDIT.

package pipelinemessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentprobe/agentprobe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldTopic, v))
}

// ConsumerGroup applies equality check predicate on the "consumer_group" field. It's identical to ConsumerGroupEQ.
func ConsumerGroup(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldConsumerGroup, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldValue, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContainsFold(FieldTopic, v))
}

// ConsumerGroupEQ applies the EQ predicate on the "consumer_group" field.
func ConsumerGroupEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldConsumerGroup, v))
}

// ConsumerGroupNEQ applies the NEQ predicate on the "consumer_group" field.
func ConsumerGroupNEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldConsumerGroup, v))
}

// ConsumerGroupIn applies the In predicate on the "consumer_group" field.
func ConsumerGroupIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldConsumerGroup, vs...))
}

// ConsumerGroupNotIn applies the NotIn predicate on the "consumer_group" field.
func ConsumerGroupNotIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldConsumerGroup, vs...))
}

// ConsumerGroupGT applies the GT predicate on the "consumer_group" field.
func ConsumerGroupGT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldConsumerGroup, v))
}

// ConsumerGroupGTE applies the GTE predicate on the "consumer_group" field.
func ConsumerGroupGTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldConsumerGroup, v))
}

// ConsumerGroupLT applies the LT predicate on the "consumer_group" field.
func ConsumerGroupLT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldConsumerGroup, v))
}

// ConsumerGroupLTE applies the LTE predicate on the "consumer_group" field.
func ConsumerGroupLTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldConsumerGroup, v))
}

// ConsumerGroupContains applies the Contains predicate on the "consumer_group" field.
func ConsumerGroupContains(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContains(FieldConsumerGroup, v))
}

// ConsumerGroupHasPrefix applies the HasPrefix predicate on the "consumer_group" field.
func ConsumerGroupHasPrefix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasPrefix(FieldConsumerGroup, v))
}

// ConsumerGroupHasSuffix applies the HasSuffix predicate on the "consumer_group" field.
func ConsumerGroupHasSuffix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasSuffix(FieldConsumerGroup, v))
}

// ConsumerGroupEqualFold applies the EqualFold predicate on the "consumer_group" field.
func ConsumerGroupEqualFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEqualFold(FieldConsumerGroup, v))
}

// ConsumerGroupContainsFold applies the ContainsFold predicate on the "consumer_group" field.
func ConsumerGroupContainsFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContainsFold(FieldConsumerGroup, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasSuffix(FieldKey, v))
}

// KeyIsNil applies the IsNil predicate on the "key" field.
func KeyIsNil() predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIsNull(FieldKey))
}

// KeyNotNil applies the NotNil predicate on the "key" field.
func KeyNotNil() predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotNull(FieldKey))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContainsFold(FieldKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContainsFold(FieldValue, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineMessage) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineMessage) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineMessage) predicate.PipelineMessage {
	return predicate.PipelineMessage(sql.NotPredicates(p))
}
