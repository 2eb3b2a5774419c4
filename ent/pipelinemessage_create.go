// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/pipelinemessage"
)

// PipelineMessageCreate is the builder for creating a PipelineMessage entity.
type PipelineMessageCreate struct {
	config
	mutation *PipelineMessageMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *PipelineMessageCreate) SetTopic(v string) *PipelineMessageCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetConsumerGroup sets the "consumer_group" field.
func (_c *PipelineMessageCreate) SetConsumerGroup(v string) *PipelineMessageCreate {
	_c.mutation.SetConsumerGroup(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *PipelineMessageCreate) SetKey(v string) *PipelineMessageCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_c *PipelineMessageCreate) SetNillableKey(v *string) *PipelineMessageCreate {
	if v != nil {
		_c.SetKey(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *PipelineMessageCreate) SetValue(v string) *PipelineMessageCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineMessageCreate) SetStatus(v pipelinemessage.Status) *PipelineMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineMessageCreate) SetNillableStatus(v *pipelinemessage.Status) *PipelineMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PipelineMessageCreate) SetAttempts(v int) *PipelineMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *PipelineMessageCreate) SetNillableAttempts(v *int) *PipelineMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PipelineMessageCreate) SetLastError(v string) *PipelineMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PipelineMessageCreate) SetNillableLastError(v *string) *PipelineMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineMessageCreate) SetCreatedAt(v time.Time) *PipelineMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineMessageCreate) SetNillableCreatedAt(v *time.Time) *PipelineMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineMessageCreate) SetUpdatedAt(v time.Time) *PipelineMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineMessageCreate) SetNillableUpdatedAt(v *time.Time) *PipelineMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PipelineMessageMutation object of the builder.
func (_c *PipelineMessageCreate) Mutation() *PipelineMessageMutation {
	return _c.mutation
}

// Save creates the PipelineMessage in the database.
func (_c *PipelineMessageCreate) Save(ctx context.Context) (*PipelineMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineMessageCreate) SaveX(ctx context.Context) *PipelineMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinemessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := pipelinemessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinemessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinemessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineMessageCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PipelineMessage.topic"`)}
	}
	if _, ok := _c.mutation.ConsumerGroup(); !ok {
		return &ValidationError{Name: "consumer_group", err: errors.New(`ent: missing required field "PipelineMessage.consumer_group"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "PipelineMessage.value"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PipelineMessage.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineMessage.updated_at"`)}
	}
	return nil
}

func (_c *PipelineMessageCreate) sqlSave(ctx context.Context) (*PipelineMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineMessageCreate) createSpec() (*PipelineMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinemessage.Table, sqlgraph.NewFieldSpec(pipelinemessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(pipelinemessage.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ConsumerGroup(); ok {
		_spec.SetField(pipelinemessage.FieldConsumerGroup, field.TypeString, value)
		_node.ConsumerGroup = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(pipelinemessage.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(pipelinemessage.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinemessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(pipelinemessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(pipelinemessage.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinemessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinemessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PipelineMessageCreateBulk is the builder for creating many PipelineMessage entities in bulk.
type PipelineMessageCreateBulk struct {
	config
	err      error
	builders []*PipelineMessageCreate
}

// Save creates the PipelineMessage entities in the database.
func (_c *PipelineMessageCreateBulk) Save(ctx context.Context) ([]*PipelineMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineMessageCreateBulk) SaveX(ctx context.Context) []*PipelineMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
