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
	"github.com/scoutqa/scout/ent/teamstate"
	"github.com/scoutqa/scout/pkg/models"
)

// TeamStateUpdate is the builder for updating TeamState entities.
type TeamStateUpdate struct {
	config
	hooks    []Hook
	mutation *TeamStateMutation
}

// Where appends a list predicates to the TeamStateUpdate builder.
func (_u *TeamStateUpdate) Where(ps ...predicate.TeamState) *TeamStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *TeamStateUpdate) SetState(v *models.TeamState) *TeamStateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *TeamStateUpdate) SetUpdatedBy(v string) *TeamStateUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *TeamStateUpdate) SetNillableUpdatedBy(v *string) *TeamStateUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *TeamStateUpdate) ClearUpdatedBy() *TeamStateUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TeamStateUpdate) SetUpdatedAt(v time.Time) *TeamStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TeamStateMutation object of the builder.
func (_u *TeamStateUpdate) Mutation() *TeamStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TeamStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeamStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TeamStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeamStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TeamStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := teamstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TeamStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(teamstate.Table, teamstate.Columns, sqlgraph.NewFieldSpec(teamstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(teamstate.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(teamstate.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(teamstate.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(teamstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teamstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TeamStateUpdateOne is the builder for updating a single TeamState entity.
type TeamStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TeamStateMutation
}

// SetState sets the "state" field.
func (_u *TeamStateUpdateOne) SetState(v *models.TeamState) *TeamStateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *TeamStateUpdateOne) SetUpdatedBy(v string) *TeamStateUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *TeamStateUpdateOne) SetNillableUpdatedBy(v *string) *TeamStateUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *TeamStateUpdateOne) ClearUpdatedBy() *TeamStateUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TeamStateUpdateOne) SetUpdatedAt(v time.Time) *TeamStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TeamStateMutation object of the builder.
func (_u *TeamStateUpdateOne) Mutation() *TeamStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the TeamStateUpdate builder.
func (_u *TeamStateUpdateOne) Where(ps ...predicate.TeamState) *TeamStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TeamStateUpdateOne) Select(field string, fields ...string) *TeamStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TeamState entity.
func (_u *TeamStateUpdateOne) Save(ctx context.Context) (*TeamState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeamStateUpdateOne) SaveX(ctx context.Context) *TeamState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TeamStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeamStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TeamStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := teamstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TeamStateUpdateOne) sqlSave(ctx context.Context) (_node *TeamState, err error) {
	_spec := sqlgraph.NewUpdateSpec(teamstate.Table, teamstate.Columns, sqlgraph.NewFieldSpec(teamstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TeamState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teamstate.FieldID)
		for _, f := range fields {
			if !teamstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != teamstate.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(teamstate.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(teamstate.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(teamstate.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(teamstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TeamState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teamstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
