// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scoutqa/scout/ent/providercredential"
)

// ProviderCredentialCreate is the builder for creating a ProviderCredential entity.
type ProviderCredentialCreate struct {
	config
	mutation *ProviderCredentialMutation
	hooks    []Hook
}

// SetCiphertext sets the "ciphertext" field.
func (_c *ProviderCredentialCreate) SetCiphertext(v []byte) *ProviderCredentialCreate {
	_c.mutation.SetCiphertext(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderCredentialCreate) SetUpdatedAt(v time.Time) *ProviderCredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderCredentialCreate) SetNillableUpdatedAt(v *time.Time) *ProviderCredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderCredentialCreate) SetID(v string) *ProviderCredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderCredentialMutation object of the builder.
func (_c *ProviderCredentialCreate) Mutation() *ProviderCredentialMutation {
	return _c.mutation
}

// Save creates the ProviderCredential in the database.
func (_c *ProviderCredentialCreate) Save(ctx context.Context) (*ProviderCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderCredentialCreate) SaveX(ctx context.Context) *ProviderCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderCredentialCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := providercredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderCredentialCreate) check() error {
	if _, ok := _c.mutation.Ciphertext(); !ok {
		return &ValidationError{Name: "ciphertext", err: errors.New(`ent: missing required field "ProviderCredential.ciphertext"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProviderCredential.updated_at"`)}
	}
	return nil
}

func (_c *ProviderCredentialCreate) sqlSave(ctx context.Context) (*ProviderCredential, error) {
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
			return nil, fmt.Errorf("unexpected ProviderCredential.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderCredentialCreate) createSpec() (*ProviderCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providercredential.Table, sqlgraph.NewFieldSpec(providercredential.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Ciphertext(); ok {
		_spec.SetField(providercredential.FieldCiphertext, field.TypeBytes, value)
		_node.Ciphertext = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(providercredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProviderCredentialCreateBulk is the builder for creating many ProviderCredential entities in bulk.
type ProviderCredentialCreateBulk struct {
	config
	err      error
	builders []*ProviderCredentialCreate
}

// Save creates the ProviderCredential entities in the database.
func (_c *ProviderCredentialCreateBulk) Save(ctx context.Context) ([]*ProviderCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderCredentialMutation)
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
func (_c *ProviderCredentialCreateBulk) SaveX(ctx context.Context) []*ProviderCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
