// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentprobe/agentprobe/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentprobe/agentprobe/ent/agentconfig"
	"github.com/agentprobe/agentprobe/ent/conversation"
	"github.com/agentprobe/agentprobe/ent/evalrun"
	"github.com/agentprobe/agentprobe/ent/evaluation"
	"github.com/agentprobe/agentprobe/ent/metric"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
	"github.com/agentprobe/agentprobe/ent/rubric"
	"github.com/agentprobe/agentprobe/ent/scenario"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentConfig is the client for interacting with the AgentConfig builders.
	AgentConfig *AgentConfigClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// EvalRun is the client for interacting with the EvalRun builders.
	EvalRun *EvalRunClient
	// Evaluation is the client for interacting with the Evaluation builders.
	Evaluation *EvaluationClient
	// Metric is the client for interacting with the Metric builders.
	Metric *MetricClient
	// PipelineMessage is the client for interacting with the PipelineMessage builders.
	PipelineMessage *PipelineMessageClient
	// Rubric is the client for interacting with the Rubric builders.
	Rubric *RubricClient
	// Scenario is the client for interacting with the Scenario builders.
	Scenario *ScenarioClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentConfig = NewAgentConfigClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.EvalRun = NewEvalRunClient(c.config)
	c.Evaluation = NewEvaluationClient(c.config)
	c.Metric = NewMetricClient(c.config)
	c.PipelineMessage = NewPipelineMessageClient(c.config)
	c.Rubric = NewRubricClient(c.config)
	c.Scenario = NewScenarioClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentConfig:     NewAgentConfigClient(cfg),
		Conversation:    NewConversationClient(cfg),
		EvalRun:         NewEvalRunClient(cfg),
		Evaluation:      NewEvaluationClient(cfg),
		Metric:          NewMetricClient(cfg),
		PipelineMessage: NewPipelineMessageClient(cfg),
		Rubric:          NewRubricClient(cfg),
		Scenario:        NewScenarioClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentConfig:     NewAgentConfigClient(cfg),
		Conversation:    NewConversationClient(cfg),
		EvalRun:         NewEvalRunClient(cfg),
		Evaluation:      NewEvaluationClient(cfg),
		Metric:          NewMetricClient(cfg),
		PipelineMessage: NewPipelineMessageClient(cfg),
		Rubric:          NewRubricClient(cfg),
		Scenario:        NewScenarioClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentConfig.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentConfig, c.Conversation, c.EvalRun, c.Evaluation, c.Metric,
		c.PipelineMessage, c.Rubric, c.Scenario,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentConfig, c.Conversation, c.EvalRun, c.Evaluation, c.Metric,
		c.PipelineMessage, c.Rubric, c.Scenario,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentConfigMutation:
		return c.AgentConfig.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *EvalRunMutation:
		return c.EvalRun.mutate(ctx, m)
	case *EvaluationMutation:
		return c.Evaluation.mutate(ctx, m)
	case *MetricMutation:
		return c.Metric.mutate(ctx, m)
	case *PipelineMessageMutation:
		return c.PipelineMessage.mutate(ctx, m)
	case *RubricMutation:
		return c.Rubric.mutate(ctx, m)
	case *ScenarioMutation:
		return c.Scenario.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentConfigClient is a client for the AgentConfig schema.
type AgentConfigClient struct {
	config
}

// NewAgentConfigClient returns a client for the AgentConfig from the given config.
func NewAgentConfigClient(c config) *AgentConfigClient {
	return &AgentConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentconfig.Hooks(f(g(h())))`.
func (c *AgentConfigClient) Use(hooks ...Hook) {
	c.hooks.AgentConfig = append(c.hooks.AgentConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentconfig.Intercept(f(g(h())))`.
func (c *AgentConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentConfig = append(c.inters.AgentConfig, interceptors...)
}

// Create returns a builder for creating a AgentConfig entity.
func (c *AgentConfigClient) Create() *AgentConfigCreate {
	mutation := newAgentConfigMutation(c.config, OpCreate)
	return &AgentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentConfig entities.
func (c *AgentConfigClient) CreateBulk(builders ...*AgentConfigCreate) *AgentConfigCreateBulk {
	return &AgentConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentConfigClient) MapCreateBulk(slice any, setFunc func(*AgentConfigCreate, int)) *AgentConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentConfigCreateBulk{err: fmt.Errorf("calling to AgentConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentConfig.
func (c *AgentConfigClient) Update() *AgentConfigUpdate {
	mutation := newAgentConfigMutation(c.config, OpUpdate)
	return &AgentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentConfigClient) UpdateOne(_m *AgentConfig) *AgentConfigUpdateOne {
	mutation := newAgentConfigMutation(c.config, OpUpdateOne, withAgentConfig(_m))
	return &AgentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentConfigClient) UpdateOneID(id string) *AgentConfigUpdateOne {
	mutation := newAgentConfigMutation(c.config, OpUpdateOne, withAgentConfigID(id))
	return &AgentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentConfig.
func (c *AgentConfigClient) Delete() *AgentConfigDelete {
	mutation := newAgentConfigMutation(c.config, OpDelete)
	return &AgentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentConfigClient) DeleteOne(_m *AgentConfig) *AgentConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentConfigClient) DeleteOneID(id string) *AgentConfigDeleteOne {
	builder := c.Delete().Where(agentconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentConfigDeleteOne{builder}
}

// Query returns a query builder for AgentConfig.
func (c *AgentConfigClient) Query() *AgentConfigQuery {
	return &AgentConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentConfig entity by its id.
func (c *AgentConfigClient) Get(ctx context.Context, id string) (*AgentConfig, error) {
	return c.Query().Where(agentconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentConfigClient) GetX(ctx context.Context, id string) *AgentConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvalRuns queries the eval_runs edge of a AgentConfig.
func (c *AgentConfigClient) QueryEvalRuns(_m *AgentConfig) *EvalRunQuery {
	query := (&EvalRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentconfig.Table, agentconfig.FieldID, id),
			sqlgraph.To(evalrun.Table, evalrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentconfig.EvalRunsTable, agentconfig.EvalRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentConfigClient) Hooks() []Hook {
	return c.hooks.AgentConfig
}

// Interceptors returns the client interceptors.
func (c *AgentConfigClient) Interceptors() []Interceptor {
	return c.inters.AgentConfig
}

func (c *AgentConfigClient) mutate(ctx context.Context, m *AgentConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentConfig mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvalRun queries the eval_run edge of a Conversation.
func (c *ConversationClient) QueryEvalRun(_m *Conversation) *EvalRunQuery {
	query := (&EvalRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(evalrun.Table, evalrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.EvalRunTable, conversation.EvalRunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Conversation.
func (c *ConversationClient) QueryEvaluations(_m *Conversation) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.EvaluationsTable, conversation.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMetrics queries the metrics edge of a Conversation.
func (c *ConversationClient) QueryMetrics(_m *Conversation) *MetricQuery {
	query := (&MetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(metric.Table, metric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MetricsTable, conversation.MetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// EvalRunClient is a client for the EvalRun schema.
type EvalRunClient struct {
	config
}

// NewEvalRunClient returns a client for the EvalRun from the given config.
func NewEvalRunClient(c config) *EvalRunClient {
	return &EvalRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evalrun.Hooks(f(g(h())))`.
func (c *EvalRunClient) Use(hooks ...Hook) {
	c.hooks.EvalRun = append(c.hooks.EvalRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evalrun.Intercept(f(g(h())))`.
func (c *EvalRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvalRun = append(c.inters.EvalRun, interceptors...)
}

// Create returns a builder for creating a EvalRun entity.
func (c *EvalRunClient) Create() *EvalRunCreate {
	mutation := newEvalRunMutation(c.config, OpCreate)
	return &EvalRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvalRun entities.
func (c *EvalRunClient) CreateBulk(builders ...*EvalRunCreate) *EvalRunCreateBulk {
	return &EvalRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvalRunClient) MapCreateBulk(slice any, setFunc func(*EvalRunCreate, int)) *EvalRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvalRunCreateBulk{err: fmt.Errorf("calling to EvalRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvalRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvalRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvalRun.
func (c *EvalRunClient) Update() *EvalRunUpdate {
	mutation := newEvalRunMutation(c.config, OpUpdate)
	return &EvalRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvalRunClient) UpdateOne(_m *EvalRun) *EvalRunUpdateOne {
	mutation := newEvalRunMutation(c.config, OpUpdateOne, withEvalRun(_m))
	return &EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvalRunClient) UpdateOneID(id string) *EvalRunUpdateOne {
	mutation := newEvalRunMutation(c.config, OpUpdateOne, withEvalRunID(id))
	return &EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvalRun.
func (c *EvalRunClient) Delete() *EvalRunDelete {
	mutation := newEvalRunMutation(c.config, OpDelete)
	return &EvalRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvalRunClient) DeleteOne(_m *EvalRun) *EvalRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvalRunClient) DeleteOneID(id string) *EvalRunDeleteOne {
	builder := c.Delete().Where(evalrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvalRunDeleteOne{builder}
}

// Query returns a query builder for EvalRun.
func (c *EvalRunClient) Query() *EvalRunQuery {
	return &EvalRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvalRun},
		inters: c.Interceptors(),
	}
}

// Get returns a EvalRun entity by its id.
func (c *EvalRunClient) Get(ctx context.Context, id string) (*EvalRun, error) {
	return c.Query().Where(evalrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvalRunClient) GetX(ctx context.Context, id string) *EvalRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgentConfig queries the agent_config edge of a EvalRun.
func (c *EvalRunClient) QueryAgentConfig(_m *EvalRun) *AgentConfigQuery {
	query := (&AgentConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evalrun.Table, evalrun.FieldID, id),
			sqlgraph.To(agentconfig.Table, agentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evalrun.AgentConfigTable, evalrun.AgentConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScenario queries the scenario edge of a EvalRun.
func (c *EvalRunClient) QueryScenario(_m *EvalRun) *ScenarioQuery {
	query := (&ScenarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evalrun.Table, evalrun.FieldID, id),
			sqlgraph.To(scenario.Table, scenario.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evalrun.ScenarioTable, evalrun.ScenarioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversations queries the conversations edge of a EvalRun.
func (c *EvalRunClient) QueryConversations(_m *EvalRun) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evalrun.Table, evalrun.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evalrun.ConversationsTable, evalrun.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a EvalRun.
func (c *EvalRunClient) QueryEvaluations(_m *EvalRun) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evalrun.Table, evalrun.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evalrun.EvaluationsTable, evalrun.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMetrics queries the metrics edge of a EvalRun.
func (c *EvalRunClient) QueryMetrics(_m *EvalRun) *MetricQuery {
	query := (&MetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evalrun.Table, evalrun.FieldID, id),
			sqlgraph.To(metric.Table, metric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evalrun.MetricsTable, evalrun.MetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvalRunClient) Hooks() []Hook {
	return c.hooks.EvalRun
}

// Interceptors returns the client interceptors.
func (c *EvalRunClient) Interceptors() []Interceptor {
	return c.inters.EvalRun
}

func (c *EvalRunClient) mutate(ctx context.Context, m *EvalRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvalRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvalRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvalRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvalRun mutation op: %q", m.Op())
	}
}

// EvaluationClient is a client for the Evaluation schema.
type EvaluationClient struct {
	config
}

// NewEvaluationClient returns a client for the Evaluation from the given config.
func NewEvaluationClient(c config) *EvaluationClient {
	return &EvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluation.Hooks(f(g(h())))`.
func (c *EvaluationClient) Use(hooks ...Hook) {
	c.hooks.Evaluation = append(c.hooks.Evaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluation.Intercept(f(g(h())))`.
func (c *EvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evaluation = append(c.inters.Evaluation, interceptors...)
}

// Create returns a builder for creating a Evaluation entity.
func (c *EvaluationClient) Create() *EvaluationCreate {
	mutation := newEvaluationMutation(c.config, OpCreate)
	return &EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evaluation entities.
func (c *EvaluationClient) CreateBulk(builders ...*EvaluationCreate) *EvaluationCreateBulk {
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationClient) MapCreateBulk(slice any, setFunc func(*EvaluationCreate, int)) *EvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationCreateBulk{err: fmt.Errorf("calling to EvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evaluation.
func (c *EvaluationClient) Update() *EvaluationUpdate {
	mutation := newEvaluationMutation(c.config, OpUpdate)
	return &EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationClient) UpdateOne(_m *Evaluation) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluation(_m))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationClient) UpdateOneID(id string) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluationID(id))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evaluation.
func (c *EvaluationClient) Delete() *EvaluationDelete {
	mutation := newEvaluationMutation(c.config, OpDelete)
	return &EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationClient) DeleteOne(_m *Evaluation) *EvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationClient) DeleteOneID(id string) *EvaluationDeleteOne {
	builder := c.Delete().Where(evaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationDeleteOne{builder}
}

// Query returns a query builder for Evaluation.
func (c *EvaluationClient) Query() *EvaluationQuery {
	return &EvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a Evaluation entity by its id.
func (c *EvaluationClient) Get(ctx context.Context, id string) (*Evaluation, error) {
	return c.Query().Where(evaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationClient) GetX(ctx context.Context, id string) *Evaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Evaluation.
func (c *EvaluationClient) QueryConversation(_m *Evaluation) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.ConversationTable, evaluation.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvalRun queries the eval_run edge of a Evaluation.
func (c *EvaluationClient) QueryEvalRun(_m *Evaluation) *EvalRunQuery {
	query := (&EvalRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(evalrun.Table, evalrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.EvalRunTable, evaluation.EvalRunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationClient) Hooks() []Hook {
	return c.hooks.Evaluation
}

// Interceptors returns the client interceptors.
func (c *EvaluationClient) Interceptors() []Interceptor {
	return c.inters.Evaluation
}

func (c *EvaluationClient) mutate(ctx context.Context, m *EvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evaluation mutation op: %q", m.Op())
	}
}

// MetricClient is a client for the Metric schema.
type MetricClient struct {
	config
}

// NewMetricClient returns a client for the Metric from the given config.
func NewMetricClient(c config) *MetricClient {
	return &MetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metric.Hooks(f(g(h())))`.
func (c *MetricClient) Use(hooks ...Hook) {
	c.hooks.Metric = append(c.hooks.Metric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metric.Intercept(f(g(h())))`.
func (c *MetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.Metric = append(c.inters.Metric, interceptors...)
}

// Create returns a builder for creating a Metric entity.
func (c *MetricClient) Create() *MetricCreate {
	mutation := newMetricMutation(c.config, OpCreate)
	return &MetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Metric entities.
func (c *MetricClient) CreateBulk(builders ...*MetricCreate) *MetricCreateBulk {
	return &MetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetricClient) MapCreateBulk(slice any, setFunc func(*MetricCreate, int)) *MetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetricCreateBulk{err: fmt.Errorf("calling to MetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Metric.
func (c *MetricClient) Update() *MetricUpdate {
	mutation := newMetricMutation(c.config, OpUpdate)
	return &MetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetricClient) UpdateOne(_m *Metric) *MetricUpdateOne {
	mutation := newMetricMutation(c.config, OpUpdateOne, withMetric(_m))
	return &MetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetricClient) UpdateOneID(id string) *MetricUpdateOne {
	mutation := newMetricMutation(c.config, OpUpdateOne, withMetricID(id))
	return &MetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Metric.
func (c *MetricClient) Delete() *MetricDelete {
	mutation := newMetricMutation(c.config, OpDelete)
	return &MetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetricClient) DeleteOne(_m *Metric) *MetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetricClient) DeleteOneID(id string) *MetricDeleteOne {
	builder := c.Delete().Where(metric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetricDeleteOne{builder}
}

// Query returns a query builder for Metric.
func (c *MetricClient) Query() *MetricQuery {
	return &MetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a Metric entity by its id.
func (c *MetricClient) Get(ctx context.Context, id string) (*Metric, error) {
	return c.Query().Where(metric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetricClient) GetX(ctx context.Context, id string) *Metric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Metric.
func (c *MetricClient) QueryConversation(_m *Metric) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(metric.Table, metric.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, metric.ConversationTable, metric.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvalRun queries the eval_run edge of a Metric.
func (c *MetricClient) QueryEvalRun(_m *Metric) *EvalRunQuery {
	query := (&EvalRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(metric.Table, metric.FieldID, id),
			sqlgraph.To(evalrun.Table, evalrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, metric.EvalRunTable, metric.EvalRunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MetricClient) Hooks() []Hook {
	return c.hooks.Metric
}

// Interceptors returns the client interceptors.
func (c *MetricClient) Interceptors() []Interceptor {
	return c.inters.Metric
}

func (c *MetricClient) mutate(ctx context.Context, m *MetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Metric mutation op: %q", m.Op())
	}
}

// PipelineMessageClient is a client for the PipelineMessage schema.
type PipelineMessageClient struct {
	config
}

// NewPipelineMessageClient returns a client for the PipelineMessage from the given config.
func NewPipelineMessageClient(c config) *PipelineMessageClient {
	return &PipelineMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinemessage.Hooks(f(g(h())))`.
func (c *PipelineMessageClient) Use(hooks ...Hook) {
	c.hooks.PipelineMessage = append(c.hooks.PipelineMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinemessage.Intercept(f(g(h())))`.
func (c *PipelineMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineMessage = append(c.inters.PipelineMessage, interceptors...)
}

// Create returns a builder for creating a PipelineMessage entity.
func (c *PipelineMessageClient) Create() *PipelineMessageCreate {
	mutation := newPipelineMessageMutation(c.config, OpCreate)
	return &PipelineMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineMessage entities.
func (c *PipelineMessageClient) CreateBulk(builders ...*PipelineMessageCreate) *PipelineMessageCreateBulk {
	return &PipelineMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineMessageClient) MapCreateBulk(slice any, setFunc func(*PipelineMessageCreate, int)) *PipelineMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineMessageCreateBulk{err: fmt.Errorf("calling to PipelineMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineMessage.
func (c *PipelineMessageClient) Update() *PipelineMessageUpdate {
	mutation := newPipelineMessageMutation(c.config, OpUpdate)
	return &PipelineMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineMessageClient) UpdateOne(_m *PipelineMessage) *PipelineMessageUpdateOne {
	mutation := newPipelineMessageMutation(c.config, OpUpdateOne, withPipelineMessage(_m))
	return &PipelineMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineMessageClient) UpdateOneID(id int) *PipelineMessageUpdateOne {
	mutation := newPipelineMessageMutation(c.config, OpUpdateOne, withPipelineMessageID(id))
	return &PipelineMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineMessage.
func (c *PipelineMessageClient) Delete() *PipelineMessageDelete {
	mutation := newPipelineMessageMutation(c.config, OpDelete)
	return &PipelineMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineMessageClient) DeleteOne(_m *PipelineMessage) *PipelineMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineMessageClient) DeleteOneID(id int) *PipelineMessageDeleteOne {
	builder := c.Delete().Where(pipelinemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineMessageDeleteOne{builder}
}

// Query returns a query builder for PipelineMessage.
func (c *PipelineMessageClient) Query() *PipelineMessageQuery {
	return &PipelineMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineMessage entity by its id.
func (c *PipelineMessageClient) Get(ctx context.Context, id int) (*PipelineMessage, error) {
	return c.Query().Where(pipelinemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineMessageClient) GetX(ctx context.Context, id int) *PipelineMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineMessageClient) Hooks() []Hook {
	return c.hooks.PipelineMessage
}

// Interceptors returns the client interceptors.
func (c *PipelineMessageClient) Interceptors() []Interceptor {
	return c.inters.PipelineMessage
}

func (c *PipelineMessageClient) mutate(ctx context.Context, m *PipelineMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineMessage mutation op: %q", m.Op())
	}
}

// RubricClient is a client for the Rubric schema.
type RubricClient struct {
	config
}

// NewRubricClient returns a client for the Rubric from the given config.
func NewRubricClient(c config) *RubricClient {
	return &RubricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rubric.Hooks(f(g(h())))`.
func (c *RubricClient) Use(hooks ...Hook) {
	c.hooks.Rubric = append(c.hooks.Rubric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rubric.Intercept(f(g(h())))`.
func (c *RubricClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rubric = append(c.inters.Rubric, interceptors...)
}

// Create returns a builder for creating a Rubric entity.
func (c *RubricClient) Create() *RubricCreate {
	mutation := newRubricMutation(c.config, OpCreate)
	return &RubricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rubric entities.
func (c *RubricClient) CreateBulk(builders ...*RubricCreate) *RubricCreateBulk {
	return &RubricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RubricClient) MapCreateBulk(slice any, setFunc func(*RubricCreate, int)) *RubricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RubricCreateBulk{err: fmt.Errorf("calling to RubricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RubricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RubricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rubric.
func (c *RubricClient) Update() *RubricUpdate {
	mutation := newRubricMutation(c.config, OpUpdate)
	return &RubricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RubricClient) UpdateOne(_m *Rubric) *RubricUpdateOne {
	mutation := newRubricMutation(c.config, OpUpdateOne, withRubric(_m))
	return &RubricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RubricClient) UpdateOneID(id string) *RubricUpdateOne {
	mutation := newRubricMutation(c.config, OpUpdateOne, withRubricID(id))
	return &RubricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rubric.
func (c *RubricClient) Delete() *RubricDelete {
	mutation := newRubricMutation(c.config, OpDelete)
	return &RubricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RubricClient) DeleteOne(_m *Rubric) *RubricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RubricClient) DeleteOneID(id string) *RubricDeleteOne {
	builder := c.Delete().Where(rubric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RubricDeleteOne{builder}
}

// Query returns a query builder for Rubric.
func (c *RubricClient) Query() *RubricQuery {
	return &RubricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRubric},
		inters: c.Interceptors(),
	}
}

// Get returns a Rubric entity by its id.
func (c *RubricClient) Get(ctx context.Context, id string) (*Rubric, error) {
	return c.Query().Where(rubric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RubricClient) GetX(ctx context.Context, id string) *Rubric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RubricClient) Hooks() []Hook {
	return c.hooks.Rubric
}

// Interceptors returns the client interceptors.
func (c *RubricClient) Interceptors() []Interceptor {
	return c.inters.Rubric
}

func (c *RubricClient) mutate(ctx context.Context, m *RubricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RubricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RubricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RubricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RubricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rubric mutation op: %q", m.Op())
	}
}

// ScenarioClient is a client for the Scenario schema.
type ScenarioClient struct {
	config
}

// NewScenarioClient returns a client for the Scenario from the given config.
func NewScenarioClient(c config) *ScenarioClient {
	return &ScenarioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenario.Hooks(f(g(h())))`.
func (c *ScenarioClient) Use(hooks ...Hook) {
	c.hooks.Scenario = append(c.hooks.Scenario, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenario.Intercept(f(g(h())))`.
func (c *ScenarioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scenario = append(c.inters.Scenario, interceptors...)
}

// Create returns a builder for creating a Scenario entity.
func (c *ScenarioClient) Create() *ScenarioCreate {
	mutation := newScenarioMutation(c.config, OpCreate)
	return &ScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scenario entities.
func (c *ScenarioClient) CreateBulk(builders ...*ScenarioCreate) *ScenarioCreateBulk {
	return &ScenarioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioClient) MapCreateBulk(slice any, setFunc func(*ScenarioCreate, int)) *ScenarioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioCreateBulk{err: fmt.Errorf("calling to ScenarioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scenario.
func (c *ScenarioClient) Update() *ScenarioUpdate {
	mutation := newScenarioMutation(c.config, OpUpdate)
	return &ScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioClient) UpdateOne(_m *Scenario) *ScenarioUpdateOne {
	mutation := newScenarioMutation(c.config, OpUpdateOne, withScenario(_m))
	return &ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioClient) UpdateOneID(id string) *ScenarioUpdateOne {
	mutation := newScenarioMutation(c.config, OpUpdateOne, withScenarioID(id))
	return &ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scenario.
func (c *ScenarioClient) Delete() *ScenarioDelete {
	mutation := newScenarioMutation(c.config, OpDelete)
	return &ScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioClient) DeleteOne(_m *Scenario) *ScenarioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioClient) DeleteOneID(id string) *ScenarioDeleteOne {
	builder := c.Delete().Where(scenario.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioDeleteOne{builder}
}

// Query returns a query builder for Scenario.
func (c *ScenarioClient) Query() *ScenarioQuery {
	return &ScenarioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenario},
		inters: c.Interceptors(),
	}
}

// Get returns a Scenario entity by its id.
func (c *ScenarioClient) Get(ctx context.Context, id string) (*Scenario, error) {
	return c.Query().Where(scenario.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioClient) GetX(ctx context.Context, id string) *Scenario {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvalRuns queries the eval_runs edge of a Scenario.
func (c *ScenarioClient) QueryEvalRuns(_m *Scenario) *EvalRunQuery {
	query := (&EvalRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scenario.Table, scenario.FieldID, id),
			sqlgraph.To(evalrun.Table, evalrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scenario.EvalRunsTable, scenario.EvalRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScenarioClient) Hooks() []Hook {
	return c.hooks.Scenario
}

// Interceptors returns the client interceptors.
func (c *ScenarioClient) Interceptors() []Interceptor {
	return c.inters.Scenario
}

func (c *ScenarioClient) mutate(ctx context.Context, m *ScenarioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scenario mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentConfig, Conversation, EvalRun, Evaluation, Metric, PipelineMessage, Rubric,
		Scenario []ent.Hook
	}
	inters struct {
		AgentConfig, Conversation, EvalRun, Evaluation, Metric, PipelineMessage, Rubric,
		Scenario []ent.Interceptor
	}
)
