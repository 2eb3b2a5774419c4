// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentprobe/agentprobe/ent/rubric"
)

// RubricCreate is the builder for creating a Rubric entity.
type RubricCreate struct {
	config
	mutation *RubricMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *RubricCreate) SetName(v string) *RubricCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RubricCreate) SetVersion(v int) *RubricCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *RubricCreate) SetNillableVersion(v *int) *RubricCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *RubricCreate) SetParentID(v string) *RubricCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *RubricCreate) SetNillableParentID(v *string) *RubricCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetDimensions sets the "dimensions" field.
func (_c *RubricCreate) SetDimensions(v []map[string]interface{}) *RubricCreate {
	_c.mutation.SetDimensions(v)
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *RubricCreate) SetIsDefault(v bool) *RubricCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *RubricCreate) SetNillableIsDefault(v *bool) *RubricCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RubricCreate) SetCreatedAt(v time.Time) *RubricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RubricCreate) SetNillableCreatedAt(v *time.Time) *RubricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RubricCreate) SetID(v string) *RubricCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RubricMutation object of the builder.
func (_c *RubricCreate) Mutation() *RubricMutation {
	return _c.mutation
}

// Save creates the Rubric in the database.
func (_c *RubricCreate) Save(ctx context.Context) (*Rubric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RubricCreate) SaveX(ctx context.Context) *Rubric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RubricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RubricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RubricCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := rubric.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := rubric.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rubric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RubricCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Rubric.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Rubric.version"`)}
	}
	if _, ok := _c.mutation.Dimensions(); !ok {
		return &ValidationError{Name: "dimensions", err: errors.New(`ent: missing required field "Rubric.dimensions"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "Rubric.is_default"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Rubric.created_at"`)}
	}
	return nil
}

func (_c *RubricCreate) sqlSave(ctx context.Context) (*Rubric, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Rubric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RubricCreate) createSpec() (*Rubric, *sqlgraph.CreateSpec) {
	var (
		_node = &Rubric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rubric.Table, sqlgraph.NewFieldSpec(rubric.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(rubric.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(rubric.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(rubric.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Dimensions(); ok {
		_spec.SetField(rubric.FieldDimensions, field.TypeJSON, value)
		_node.Dimensions = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(rubric.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rubric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RubricCreateBulk is the builder for creating many Rubric entities in bulk.
type RubricCreateBulk struct {
	config
	err      error
	builders []*RubricCreate
}

// Save creates the Rubric entities in the database.
func (_c *RubricCreateBulk) Save(ctx context.Context) ([]*Rubric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rubric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RubricMutation)
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
func (_c *RubricCreateBulk) SaveX(ctx context.Context) []*Rubric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RubricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RubricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
