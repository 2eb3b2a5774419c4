// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentConfigsColumns holds the columns for the "agent_configs" table.
	AgentConfigsColumns = []*schema.Column{
		{Name: "agent_config_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "model_id", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "max_tokens", Type: field.TypeInt, Default: 1024},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentConfigsTable holds the schema information for the "agent_configs" table.
	AgentConfigsTable = &schema.Table{
		Name:       "agent_configs",
		Columns:    AgentConfigsColumns,
		PrimaryKey: []*schema.Column{AgentConfigsColumns[0]},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "goal_achieved", "frustrated"}, Default: "pending"},
		{Name: "turns", Type: field.TypeJSON, Nullable: true},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "eval_run_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_eval_runs_conversations",
				Columns:    []*schema.Column{ConversationsColumns[12]},
				RefColumns: []*schema.Column{EvalRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_eval_run_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[12], ConversationsColumns[1]},
			},
			{
				Name:    "conversation_eval_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[12], ConversationsColumns[2]},
			},
		},
	}
	// EvalRunsColumns holds the columns for the "eval_runs" table.
	EvalRunsColumns = []*schema.Column{
		{Name: "eval_run_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "rubric_id", Type: field.TypeString, Nullable: true},
		{Name: "num_conversations", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running_simulation", "running_evaluation", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "environment", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_config_id", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
	}
	// EvalRunsTable holds the schema information for the "eval_runs" table.
	EvalRunsTable = &schema.Table{
		Name:       "eval_runs",
		Columns:    EvalRunsColumns,
		PrimaryKey: []*schema.Column{EvalRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "eval_runs_agent_configs_eval_runs",
				Columns:    []*schema.Column{EvalRunsColumns[12]},
				RefColumns: []*schema.Column{AgentConfigsColumns[0]},
				OnDelete:   schema.Restrict,
			},
			{
				Symbol:     "eval_runs_scenarios_eval_runs",
				Columns:    []*schema.Column{EvalRunsColumns[13]},
				RefColumns: []*schema.Column{ScenariosColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evalrun_status",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[4]},
			},
			{
				Name:    "evalrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[4], EvalRunsColumns[11]},
			},
			{
				Name:    "evalrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[4], EvalRunsColumns[8]},
			},
			{
				Name:    "evalrun_agent_config_id",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[12]},
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "evaluation_id", Type: field.TypeString, Unique: true},
		{Name: "evaluator_type", Type: field.TypeEnum, Enums: []string{"model_judge", "rubric_grader", "human", "reference_based", "trajectory", "pairwise_judge"}},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "turn_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "eval_run_id", Type: field.TypeString},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_conversations_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "evaluations_eval_runs_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[9]},
				RefColumns: []*schema.Column{EvalRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[8]},
			},
			{
				Name:    "evaluation_eval_run_id_evaluator_type",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[9], EvaluationsColumns[1]},
			},
			{
				Name:    "evaluation_evaluator_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[1], EvaluationsColumns[7]},
			},
		},
	}
	// MetricsColumns holds the columns for the "metrics" table.
	MetricsColumns = []*schema.Column{
		{Name: "metric_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString, Default: ""},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "eval_run_id", Type: field.TypeString},
	}
	// MetricsTable holds the schema information for the "metrics" table.
	MetricsTable = &schema.Table{
		Name:       "metrics",
		Columns:    MetricsColumns,
		PrimaryKey: []*schema.Column{MetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "metrics_conversations_metrics",
				Columns:    []*schema.Column{MetricsColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "metrics_eval_runs_metrics",
				Columns:    []*schema.Column{MetricsColumns[7]},
				RefColumns: []*schema.Column{EvalRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "metric_conversation_id_name",
				Unique:  true,
				Columns: []*schema.Column{MetricsColumns[6], MetricsColumns[1]},
			},
			{
				Name:    "metric_eval_run_id_name",
				Unique:  false,
				Columns: []*schema.Column{MetricsColumns[7], MetricsColumns[1]},
			},
		},
	}
	// PipelineMessagesColumns holds the columns for the "pipeline_messages" table.
	PipelineMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "consumer_group", Type: field.TypeString},
		{Name: "key", Type: field.TypeString, Nullable: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "done", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineMessagesTable holds the schema information for the "pipeline_messages" table.
	PipelineMessagesTable = &schema.Table{
		Name:       "pipeline_messages",
		Columns:    PipelineMessagesColumns,
		PrimaryKey: []*schema.Column{PipelineMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinemessage_topic_consumer_group_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineMessagesColumns[1], PipelineMessagesColumns[2], PipelineMessagesColumns[5]},
			},
			{
				Name:    "pipelinemessage_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineMessagesColumns[5], PipelineMessagesColumns[9]},
			},
		},
	}
	// RubricsColumns holds the columns for the "rubrics" table.
	RubricsColumns = []*schema.Column{
		{Name: "rubric_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "dimensions", Type: field.TypeJSON},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RubricsTable holds the schema information for the "rubrics" table.
	RubricsTable = &schema.Table{
		Name:       "rubrics",
		Columns:    RubricsColumns,
		PrimaryKey: []*schema.Column{RubricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rubric_name_version",
				Unique:  true,
				Columns: []*schema.Column{RubricsColumns[1], RubricsColumns[2]},
			},
		},
	}
	// ScenariosColumns holds the columns for the "scenarios" table.
	ScenariosColumns = []*schema.Column{
		{Name: "scenario_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "user_personality", Type: field.TypeString, Default: "neutral and cooperative"},
		{Name: "expertise_level", Type: field.TypeEnum, Enums: []string{"novice", "intermediate", "expert"}, Default: "intermediate"},
		{Name: "initial_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "turns_template", Type: field.TypeJSON, Nullable: true},
		{Name: "expected_tool_sequence", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}, Default: "medium"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "max_turns", Type: field.TypeInt, Default: 10},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScenariosTable holds the schema information for the "scenarios" table.
	ScenariosTable = &schema.Table{
		Name:       "scenarios",
		Columns:    ScenariosColumns,
		PrimaryKey: []*schema.Column{ScenariosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scenario_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ScenariosColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentConfigsTable,
		ConversationsTable,
		EvalRunsTable,
		EvaluationsTable,
		MetricsTable,
		PipelineMessagesTable,
		RubricsTable,
		ScenariosTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = EvalRunsTable
	EvalRunsTable.ForeignKeys[0].RefTable = AgentConfigsTable
	EvalRunsTable.ForeignKeys[1].RefTable = ScenariosTable
	EvaluationsTable.ForeignKeys[0].RefTable = ConversationsTable
	EvaluationsTable.ForeignKeys[1].RefTable = EvalRunsTable
	MetricsTable.ForeignKeys[0].RefTable = ConversationsTable
	MetricsTable.ForeignKeys[1].RefTable = EvalRunsTable
}
