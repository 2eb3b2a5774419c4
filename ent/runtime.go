// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentprobe/agentprobe/ent/agentconfig"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/ent/rubric"
	"github.com/agentprobe/agentprobe/ent/scenario"
	"github.com/agentprobe/agentprobe/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentconfigFields := schema.AgentConfig{}.Fields()
	_ = agentconfigFields
	// agentconfigDescTemperature is the schema descriptor for temperature field.
	agentconfigDescTemperature := agentconfigFields[5].Descriptor()
	// agentconfig.DefaultTemperature holds the default value on creation for the temperature field.
	agentconfig.DefaultTemperature = agentconfigDescTemperature.Default.(float64)
	// agentconfigDescMaxTokens is the schema descriptor for max_tokens field.
	agentconfigDescMaxTokens := agentconfigFields[6].Descriptor()
	// agentconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	agentconfig.DefaultMaxTokens = agentconfigDescMaxTokens.Default.(int)
	// agentconfigDescCreatedAt is the schema descriptor for created_at field.
	agentconfigDescCreatedAt := agentconfigFields[8].Descriptor()
	// agentconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentconfig.DefaultCreatedAt = agentconfigDescCreatedAt.Default.(func() time.Time)
	// agentconfigDescUpdatedAt is the schema descriptor for updated_at field.
	agentconfigDescUpdatedAt := agentconfigFields[9].Descriptor()
	// agentconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentconfig.DefaultUpdatedAt = agentconfigDescUpdatedAt.Default.(func() time.Time)
	// agentconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentconfig.UpdateDefaultUpdatedAt = agentconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescTurnCount is the schema descriptor for turn_count field.
	conversationDescTurnCount := conversationFields[5].Descriptor()
	// conversation.DefaultTurnCount holds the default value on creation for the turn_count field.
	conversation.DefaultTurnCount = conversationDescTurnCount.Default.(int)
	// conversationDescTotalTokens is the schema descriptor for total_tokens field.
	conversationDescTotalTokens := conversationFields[6].Descriptor()
	// conversation.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	conversation.DefaultTotalTokens = conversationDescTotalTokens.Default.(int)
	// conversationDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	conversationDescTotalInputTokens := conversationFields[7].Descriptor()
	// conversation.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	conversation.DefaultTotalInputTokens = conversationDescTotalInputTokens.Default.(int)
	// conversationDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	conversationDescTotalOutputTokens := conversationFields[8].Descriptor()
	// conversation.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	conversation.DefaultTotalOutputTokens = conversationDescTotalOutputTokens.Default.(int)
	// conversationDescTotalLatencyMs is the schema descriptor for total_latency_ms field.
	conversationDescTotalLatencyMs := conversationFields[9].Descriptor()
	// conversation.DefaultTotalLatencyMs holds the default value on creation for the total_latency_ms field.
	conversation.DefaultTotalLatencyMs = conversationDescTotalLatencyMs.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[11].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	evalrunFields := schema.EvalRun{}.Fields()
	_ = evalrunFields
	// evalrunDescNumConversations is the schema descriptor for num_conversations field.
	evalrunDescNumConversations := evalrunFields[5].Descriptor()
	// evalrun.DefaultNumConversations holds the default value on creation for the num_conversations field.
	evalrun.DefaultNumConversations = evalrunDescNumConversations.Default.(int)
	// evalrunDescCreatedAt is the schema descriptor for created_at field.
	evalrunDescCreatedAt := evalrunFields[13].Descriptor()
	// evalrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	evalrun.DefaultCreatedAt = evalrunDescCreatedAt.Default.(func() time.Time)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[9].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	metricFields := schema.Metric{}.Fields()
	_ = metricFields
	// metricDescUnit is the schema descriptor for unit field.
	metricDescUnit := metricFields[5].Descriptor()
	// metric.DefaultUnit holds the default value on creation for the unit field.
	metric.DefaultUnit = metricDescUnit.Default.(string)
	// metricDescCreatedAt is the schema descriptor for created_at field.
	metricDescCreatedAt := metricFields[7].Descriptor()
	// metric.DefaultCreatedAt holds the default value on creation for the created_at field.
	metric.DefaultCreatedAt = metricDescCreatedAt.Default.(func() time.Time)
	pipelinemessageFields := schema.PipelineMessage{}.Fields()
	_ = pipelinemessageFields
	// pipelinemessageDescAttempts is the schema descriptor for attempts field.
	pipelinemessageDescAttempts := pipelinemessageFields[5].Descriptor()
	// pipelinemessage.DefaultAttempts holds the default value on creation for the attempts field.
	pipelinemessage.DefaultAttempts = pipelinemessageDescAttempts.Default.(int)
	// pipelinemessageDescCreatedAt is the schema descriptor for created_at field.
	pipelinemessageDescCreatedAt := pipelinemessageFields[7].Descriptor()
	// pipelinemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinemessage.DefaultCreatedAt = pipelinemessageDescCreatedAt.Default.(func() time.Time)
	// pipelinemessageDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinemessageDescUpdatedAt := pipelinemessageFields[8].Descriptor()
	// pipelinemessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinemessage.DefaultUpdatedAt = pipelinemessageDescUpdatedAt.Default.(func() time.Time)
	// pipelinemessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinemessage.UpdateDefaultUpdatedAt = pipelinemessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	rubricFields := schema.Rubric{}.Fields()
	_ = rubricFields
	// rubricDescVersion is the schema descriptor for version field.
	rubricDescVersion := rubricFields[2].Descriptor()
	// rubric.DefaultVersion holds the default value on creation for the version field.
	rubric.DefaultVersion = rubricDescVersion.Default.(int)
	// rubricDescIsDefault is the schema descriptor for is_default field.
	rubricDescIsDefault := rubricFields[5].Descriptor()
	// rubric.DefaultIsDefault holds the default value on creation for the is_default field.
	rubric.DefaultIsDefault = rubricDescIsDefault.Default.(bool)
	// rubricDescCreatedAt is the schema descriptor for created_at field.
	rubricDescCreatedAt := rubricFields[6].Descriptor()
	// rubric.DefaultCreatedAt holds the default value on creation for the created_at field.
	rubric.DefaultCreatedAt = rubricDescCreatedAt.Default.(func() time.Time)
	scenarioFields := schema.Scenario{}.Fields()
	_ = scenarioFields
	// scenarioDescUserPersonality is the schema descriptor for user_personality field.
	scenarioDescUserPersonality := scenarioFields[4].Descriptor()
	// scenario.DefaultUserPersonality holds the default value on creation for the user_personality field.
	scenario.DefaultUserPersonality = scenarioDescUserPersonality.Default.(string)
	// scenarioDescMaxTurns is the schema descriptor for max_turns field.
	scenarioDescMaxTurns := scenarioFields[11].Descriptor()
	// scenario.DefaultMaxTurns holds the default value on creation for the max_turns field.
	scenario.DefaultMaxTurns = scenarioDescMaxTurns.Default.(int)
	// scenarioDescCreatedAt is the schema descriptor for created_at field.
	scenarioDescCreatedAt := scenarioFields[12].Descriptor()
	// scenario.DefaultCreatedAt holds the default value on creation for the created_at field.
	scenario.DefaultCreatedAt = scenarioDescCreatedAt.Default.(func() time.Time)
}
