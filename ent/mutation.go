// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scoutqa/scout/ent/predicate"
	"github.com/scoutqa/scout/ent/providercredential"
	"github.com/scoutqa/scout/ent/teamstate"
	"github.com/scoutqa/scout/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProviderCredential = "ProviderCredential"
	TypeTeamState          = "TeamState"
)

// ProviderCredentialMutation represents an operation that mutates the ProviderCredential nodes in the graph.
type ProviderCredentialMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ciphertext    *[]byte
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProviderCredential, error)
	predicates    []predicate.ProviderCredential
}

var _ ent.Mutation = (*ProviderCredentialMutation)(nil)

// providercredentialOption allows management of the mutation configuration using functional options.
type providercredentialOption func(*ProviderCredentialMutation)

// newProviderCredentialMutation creates new mutation for the ProviderCredential entity.
func newProviderCredentialMutation(c config, op Op, opts ...providercredentialOption) *ProviderCredentialMutation {
	m := &ProviderCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderCredentialID sets the ID field of the mutation.
func withProviderCredentialID(id string) providercredentialOption {
	return func(m *ProviderCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderCredential
		)
		m.oldValue = func(ctx context.Context) (*ProviderCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderCredential sets the old ProviderCredential of the mutation.
func withProviderCredential(node *ProviderCredential) providercredentialOption {
	return func(m *ProviderCredentialMutation) {
		m.oldValue = func(context.Context) (*ProviderCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProviderCredential entities.
func (m *ProviderCredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderCredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderCredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCiphertext sets the "ciphertext" field.
func (m *ProviderCredentialMutation) SetCiphertext(b []byte) {
	m.ciphertext = &b
}

// Ciphertext returns the value of the "ciphertext" field in the mutation.
func (m *ProviderCredentialMutation) Ciphertext() (r []byte, exists bool) {
	v := m.ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldCiphertext returns the old "ciphertext" field's value of the ProviderCredential entity.
// If the ProviderCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderCredentialMutation) OldCiphertext(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCiphertext: %w", err)
	}
	return oldValue.Ciphertext, nil
}

// ResetCiphertext resets all changes to the "ciphertext" field.
func (m *ProviderCredentialMutation) ResetCiphertext() {
	m.ciphertext = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProviderCredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProviderCredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProviderCredential entity.
// If the ProviderCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderCredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProviderCredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProviderCredentialMutation builder.
func (m *ProviderCredentialMutation) Where(ps ...predicate.ProviderCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderCredential).
func (m *ProviderCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderCredentialMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.ciphertext != nil {
		fields = append(fields, providercredential.FieldCiphertext)
	}
	if m.updated_at != nil {
		fields = append(fields, providercredential.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providercredential.FieldCiphertext:
		return m.Ciphertext()
	case providercredential.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providercredential.FieldCiphertext:
		return m.OldCiphertext(ctx)
	case providercredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providercredential.FieldCiphertext:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCiphertext(v)
		return nil
	case providercredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderCredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderCredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProviderCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderCredentialMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderCredentialMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProviderCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderCredentialMutation) ResetField(name string) error {
	switch name {
	case providercredential.FieldCiphertext:
		m.ResetCiphertext()
		return nil
	case providercredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderCredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderCredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderCredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderCredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProviderCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderCredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProviderCredential edge %s", name)
}

// TeamStateMutation represents an operation that mutates the TeamState nodes in the graph.
type TeamStateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	state         **models.TeamState
	updated_by    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TeamState, error)
	predicates    []predicate.TeamState
}

var _ ent.Mutation = (*TeamStateMutation)(nil)

// teamstateOption allows management of the mutation configuration using functional options.
type teamstateOption func(*TeamStateMutation)

// newTeamStateMutation creates new mutation for the TeamState entity.
func newTeamStateMutation(c config, op Op, opts ...teamstateOption) *TeamStateMutation {
	m := &TeamStateMutation{
		config:        c,
		op:            op,
		typ:           TypeTeamState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamStateID sets the ID field of the mutation.
func withTeamStateID(id string) teamstateOption {
	return func(m *TeamStateMutation) {
		var (
			err   error
			once  sync.Once
			value *TeamState
		)
		m.oldValue = func(ctx context.Context) (*TeamState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeamState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeamState sets the old TeamState of the mutation.
func withTeamState(node *TeamState) teamstateOption {
	return func(m *TeamStateMutation) {
		m.oldValue = func(context.Context) (*TeamState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TeamState entities.
func (m *TeamStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeamState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *TeamStateMutation) SetState(ms *models.TeamState) {
	m.state = &ms
}

// State returns the value of the "state" field in the mutation.
func (m *TeamStateMutation) State() (r *models.TeamState, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the TeamState entity.
// If the TeamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamStateMutation) OldState(ctx context.Context) (v *models.TeamState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TeamStateMutation) ResetState() {
	m.state = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *TeamStateMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *TeamStateMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the TeamState entity.
// If the TeamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamStateMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *TeamStateMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[teamstate.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *TeamStateMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[teamstate.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *TeamStateMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, teamstate.FieldUpdatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TeamState entity.
// If the TeamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeamStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeamStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TeamState entity.
// If the TeamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeamStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TeamStateMutation builder.
func (m *TeamStateMutation) Where(ps ...predicate.TeamState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeamState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeamState).
func (m *TeamStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.state != nil {
		fields = append(fields, teamstate.FieldState)
	}
	if m.updated_by != nil {
		fields = append(fields, teamstate.FieldUpdatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, teamstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, teamstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teamstate.FieldState:
		return m.State()
	case teamstate.FieldUpdatedBy:
		return m.UpdatedBy()
	case teamstate.FieldCreatedAt:
		return m.CreatedAt()
	case teamstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teamstate.FieldState:
		return m.OldState(ctx)
	case teamstate.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case teamstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case teamstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TeamState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teamstate.FieldState:
		v, ok := value.(*models.TeamState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case teamstate.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case teamstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case teamstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TeamState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TeamState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(teamstate.FieldUpdatedBy) {
		fields = append(fields, teamstate.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamStateMutation) ClearField(name string) error {
	switch name {
	case teamstate.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown TeamState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamStateMutation) ResetField(name string) error {
	switch name {
	case teamstate.FieldState:
		m.ResetState()
		return nil
	case teamstate.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case teamstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case teamstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TeamState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TeamState edge %s", name)
}
