// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/scoutqa/scout/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/scoutqa/scout/ent/providercredential"
	"github.com/scoutqa/scout/ent/teamstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ProviderCredential is the client for interacting with the ProviderCredential builders.
	ProviderCredential *ProviderCredentialClient
	// TeamState is the client for interacting with the TeamState builders.
	TeamState *TeamStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ProviderCredential = NewProviderCredentialClient(c.config)
	c.TeamState = NewTeamStateClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ProviderCredential: NewProviderCredentialClient(cfg),
		TeamState:          NewTeamStateClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ProviderCredential: NewProviderCredentialClient(cfg),
		TeamState:          NewTeamStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ProviderCredential.
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
	c.ProviderCredential.Use(hooks...)
	c.TeamState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ProviderCredential.Intercept(interceptors...)
	c.TeamState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ProviderCredentialMutation:
		return c.ProviderCredential.mutate(ctx, m)
	case *TeamStateMutation:
		return c.TeamState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ProviderCredentialClient is a client for the ProviderCredential schema.
type ProviderCredentialClient struct {
	config
}

// NewProviderCredentialClient returns a client for the ProviderCredential from the given config.
func NewProviderCredentialClient(c config) *ProviderCredentialClient {
	return &ProviderCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providercredential.Hooks(f(g(h())))`.
func (c *ProviderCredentialClient) Use(hooks ...Hook) {
	c.hooks.ProviderCredential = append(c.hooks.ProviderCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providercredential.Intercept(f(g(h())))`.
func (c *ProviderCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderCredential = append(c.inters.ProviderCredential, interceptors...)
}

// Create returns a builder for creating a ProviderCredential entity.
func (c *ProviderCredentialClient) Create() *ProviderCredentialCreate {
	mutation := newProviderCredentialMutation(c.config, OpCreate)
	return &ProviderCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderCredential entities.
func (c *ProviderCredentialClient) CreateBulk(builders ...*ProviderCredentialCreate) *ProviderCredentialCreateBulk {
	return &ProviderCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderCredentialClient) MapCreateBulk(slice any, setFunc func(*ProviderCredentialCreate, int)) *ProviderCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderCredentialCreateBulk{err: fmt.Errorf("calling to ProviderCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderCredential.
func (c *ProviderCredentialClient) Update() *ProviderCredentialUpdate {
	mutation := newProviderCredentialMutation(c.config, OpUpdate)
	return &ProviderCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderCredentialClient) UpdateOne(_m *ProviderCredential) *ProviderCredentialUpdateOne {
	mutation := newProviderCredentialMutation(c.config, OpUpdateOne, withProviderCredential(_m))
	return &ProviderCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderCredentialClient) UpdateOneID(id string) *ProviderCredentialUpdateOne {
	mutation := newProviderCredentialMutation(c.config, OpUpdateOne, withProviderCredentialID(id))
	return &ProviderCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderCredential.
func (c *ProviderCredentialClient) Delete() *ProviderCredentialDelete {
	mutation := newProviderCredentialMutation(c.config, OpDelete)
	return &ProviderCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderCredentialClient) DeleteOne(_m *ProviderCredential) *ProviderCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderCredentialClient) DeleteOneID(id string) *ProviderCredentialDeleteOne {
	builder := c.Delete().Where(providercredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderCredentialDeleteOne{builder}
}

// Query returns a query builder for ProviderCredential.
func (c *ProviderCredentialClient) Query() *ProviderCredentialQuery {
	return &ProviderCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderCredential entity by its id.
func (c *ProviderCredentialClient) Get(ctx context.Context, id string) (*ProviderCredential, error) {
	return c.Query().Where(providercredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderCredentialClient) GetX(ctx context.Context, id string) *ProviderCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderCredentialClient) Hooks() []Hook {
	return c.hooks.ProviderCredential
}

// Interceptors returns the client interceptors.
func (c *ProviderCredentialClient) Interceptors() []Interceptor {
	return c.inters.ProviderCredential
}

func (c *ProviderCredentialClient) mutate(ctx context.Context, m *ProviderCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderCredential mutation op: %q", m.Op())
	}
}

// TeamStateClient is a client for the TeamState schema.
type TeamStateClient struct {
	config
}

// NewTeamStateClient returns a client for the TeamState from the given config.
func NewTeamStateClient(c config) *TeamStateClient {
	return &TeamStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `teamstate.Hooks(f(g(h())))`.
func (c *TeamStateClient) Use(hooks ...Hook) {
	c.hooks.TeamState = append(c.hooks.TeamState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `teamstate.Intercept(f(g(h())))`.
func (c *TeamStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TeamState = append(c.inters.TeamState, interceptors...)
}

// Create returns a builder for creating a TeamState entity.
func (c *TeamStateClient) Create() *TeamStateCreate {
	mutation := newTeamStateMutation(c.config, OpCreate)
	return &TeamStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TeamState entities.
func (c *TeamStateClient) CreateBulk(builders ...*TeamStateCreate) *TeamStateCreateBulk {
	return &TeamStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamStateClient) MapCreateBulk(slice any, setFunc func(*TeamStateCreate, int)) *TeamStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamStateCreateBulk{err: fmt.Errorf("calling to TeamStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TeamState.
func (c *TeamStateClient) Update() *TeamStateUpdate {
	mutation := newTeamStateMutation(c.config, OpUpdate)
	return &TeamStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamStateClient) UpdateOne(_m *TeamState) *TeamStateUpdateOne {
	mutation := newTeamStateMutation(c.config, OpUpdateOne, withTeamState(_m))
	return &TeamStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamStateClient) UpdateOneID(id string) *TeamStateUpdateOne {
	mutation := newTeamStateMutation(c.config, OpUpdateOne, withTeamStateID(id))
	return &TeamStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TeamState.
func (c *TeamStateClient) Delete() *TeamStateDelete {
	mutation := newTeamStateMutation(c.config, OpDelete)
	return &TeamStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamStateClient) DeleteOne(_m *TeamState) *TeamStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamStateClient) DeleteOneID(id string) *TeamStateDeleteOne {
	builder := c.Delete().Where(teamstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamStateDeleteOne{builder}
}

// Query returns a query builder for TeamState.
func (c *TeamStateClient) Query() *TeamStateQuery {
	return &TeamStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeamState},
		inters: c.Interceptors(),
	}
}

// Get returns a TeamState entity by its id.
func (c *TeamStateClient) Get(ctx context.Context, id string) (*TeamState, error) {
	return c.Query().Where(teamstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamStateClient) GetX(ctx context.Context, id string) *TeamState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TeamStateClient) Hooks() []Hook {
	return c.hooks.TeamState
}

// Interceptors returns the client interceptors.
func (c *TeamStateClient) Interceptors() []Interceptor {
	return c.inters.TeamState
}

func (c *TeamStateClient) mutate(ctx context.Context, m *TeamStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TeamState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ProviderCredential, TeamState []ent.Hook
	}
	inters struct {
		ProviderCredential, TeamState []ent.Interceptor
	}
)
