// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentConfig is the predicate function for agentconfig builders.
type AgentConfig func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// EvalRun is the predicate function for evalrun builders.
type EvalRun func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// Metric is the predicate function for metric builders.
type Metric func(*sql.Selector)

// PipelineMessage is the predicate function for pipelinemessage builders.
type PipelineMessage func(*sql.Selector)

// Rubric is the predicate function for rubric builders.
type Rubric func(*sql.Selector)

// Scenario is the predicate function for scenario builders.
type Scenario func(*sql.Selector)
