// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scoutqa/scout/ent/predicate"
	"github.com/scoutqa/scout/ent/providercredential"
)

// ProviderCredentialUpdate is the builder for updating ProviderCredential entities.
type ProviderCredentialUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderCredentialMutation
}

// Where appends a list predicates to the ProviderCredentialUpdate builder.
func (_u *ProviderCredentialUpdate) Where(ps ...predicate.ProviderCredential) *ProviderCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *ProviderCredentialUpdate) SetCiphertext(v []byte) *ProviderCredentialUpdate {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderCredentialUpdate) SetUpdatedAt(v time.Time) *ProviderCredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderCredentialMutation object of the builder.
func (_u *ProviderCredentialUpdate) Mutation() *ProviderCredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderCredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderCredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providercredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(providercredential.Table, providercredential.Columns, sqlgraph.NewFieldSpec(providercredential.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(providercredential.FieldCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providercredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providercredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderCredentialUpdateOne is the builder for updating a single ProviderCredential entity.
type ProviderCredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderCredentialMutation
}

// SetCiphertext sets the "ciphertext" field.
func (_u *ProviderCredentialUpdateOne) SetCiphertext(v []byte) *ProviderCredentialUpdateOne {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderCredentialUpdateOne) SetUpdatedAt(v time.Time) *ProviderCredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderCredentialMutation object of the builder.
func (_u *ProviderCredentialUpdateOne) Mutation() *ProviderCredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderCredentialUpdate builder.
func (_u *ProviderCredentialUpdateOne) Where(ps ...predicate.ProviderCredential) *ProviderCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderCredentialUpdateOne) Select(field string, fields ...string) *ProviderCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderCredential entity.
func (_u *ProviderCredentialUpdateOne) Save(ctx context.Context) (*ProviderCredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderCredentialUpdateOne) SaveX(ctx context.Context) *ProviderCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderCredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providercredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderCredentialUpdateOne) sqlSave(ctx context.Context) (_node *ProviderCredential, err error) {
	_spec := sqlgraph.NewUpdateSpec(providercredential.Table, providercredential.Columns, sqlgraph.NewFieldSpec(providercredential.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providercredential.FieldID)
		for _, f := range fields {
			if !providercredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providercredential.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(providercredential.FieldCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providercredential.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProviderCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providercredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
