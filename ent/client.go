// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/stagehand-project/stagehand/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stagehand-project/stagehand/ent/archivedsession"
	"github.com/stagehand-project/stagehand/ent/statesession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ArchivedSession is the client for interacting with the ArchivedSession builders.
	ArchivedSession *ArchivedSessionClient
	// StateSession is the client for interacting with the StateSession builders.
	StateSession *StateSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ArchivedSession = NewArchivedSessionClient(c.config)
	c.StateSession = NewStateSessionClient(c.config)
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
		ArchivedSession: NewArchivedSessionClient(cfg),
		StateSession:    NewStateSessionClient(cfg),
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
		ArchivedSession: NewArchivedSessionClient(cfg),
		StateSession:    NewStateSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ArchivedSession.
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
	c.ArchivedSession.Use(hooks...)
	c.StateSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ArchivedSession.Intercept(interceptors...)
	c.StateSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArchivedSessionMutation:
		return c.ArchivedSession.mutate(ctx, m)
	case *StateSessionMutation:
		return c.StateSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArchivedSessionClient is a client for the ArchivedSession schema.
type ArchivedSessionClient struct {
	config
}

// NewArchivedSessionClient returns a client for the ArchivedSession from the given config.
func NewArchivedSessionClient(c config) *ArchivedSessionClient {
	return &ArchivedSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `archivedsession.Hooks(f(g(h())))`.
func (c *ArchivedSessionClient) Use(hooks ...Hook) {
	c.hooks.ArchivedSession = append(c.hooks.ArchivedSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `archivedsession.Intercept(f(g(h())))`.
func (c *ArchivedSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArchivedSession = append(c.inters.ArchivedSession, interceptors...)
}

// Create returns a builder for creating a ArchivedSession entity.
func (c *ArchivedSessionClient) Create() *ArchivedSessionCreate {
	mutation := newArchivedSessionMutation(c.config, OpCreate)
	return &ArchivedSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArchivedSession entities.
func (c *ArchivedSessionClient) CreateBulk(builders ...*ArchivedSessionCreate) *ArchivedSessionCreateBulk {
	return &ArchivedSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArchivedSessionClient) MapCreateBulk(slice any, setFunc func(*ArchivedSessionCreate, int)) *ArchivedSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArchivedSessionCreateBulk{err: fmt.Errorf("calling to ArchivedSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArchivedSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArchivedSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArchivedSession.
func (c *ArchivedSessionClient) Update() *ArchivedSessionUpdate {
	mutation := newArchivedSessionMutation(c.config, OpUpdate)
	return &ArchivedSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArchivedSessionClient) UpdateOne(_m *ArchivedSession) *ArchivedSessionUpdateOne {
	mutation := newArchivedSessionMutation(c.config, OpUpdateOne, withArchivedSession(_m))
	return &ArchivedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArchivedSessionClient) UpdateOneID(id string) *ArchivedSessionUpdateOne {
	mutation := newArchivedSessionMutation(c.config, OpUpdateOne, withArchivedSessionID(id))
	return &ArchivedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArchivedSession.
func (c *ArchivedSessionClient) Delete() *ArchivedSessionDelete {
	mutation := newArchivedSessionMutation(c.config, OpDelete)
	return &ArchivedSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArchivedSessionClient) DeleteOne(_m *ArchivedSession) *ArchivedSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArchivedSessionClient) DeleteOneID(id string) *ArchivedSessionDeleteOne {
	builder := c.Delete().Where(archivedsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArchivedSessionDeleteOne{builder}
}

// Query returns a query builder for ArchivedSession.
func (c *ArchivedSessionClient) Query() *ArchivedSessionQuery {
	return &ArchivedSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArchivedSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ArchivedSession entity by its id.
func (c *ArchivedSessionClient) Get(ctx context.Context, id string) (*ArchivedSession, error) {
	return c.Query().Where(archivedsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArchivedSessionClient) GetX(ctx context.Context, id string) *ArchivedSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArchivedSessionClient) Hooks() []Hook {
	return c.hooks.ArchivedSession
}

// Interceptors returns the client interceptors.
func (c *ArchivedSessionClient) Interceptors() []Interceptor {
	return c.inters.ArchivedSession
}

func (c *ArchivedSessionClient) mutate(ctx context.Context, m *ArchivedSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArchivedSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArchivedSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArchivedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArchivedSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArchivedSession mutation op: %q", m.Op())
	}
}

// StateSessionClient is a client for the StateSession schema.
type StateSessionClient struct {
	config
}

// NewStateSessionClient returns a client for the StateSession from the given config.
func NewStateSessionClient(c config) *StateSessionClient {
	return &StateSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statesession.Hooks(f(g(h())))`.
func (c *StateSessionClient) Use(hooks ...Hook) {
	c.hooks.StateSession = append(c.hooks.StateSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statesession.Intercept(f(g(h())))`.
func (c *StateSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateSession = append(c.inters.StateSession, interceptors...)
}

// Create returns a builder for creating a StateSession entity.
func (c *StateSessionClient) Create() *StateSessionCreate {
	mutation := newStateSessionMutation(c.config, OpCreate)
	return &StateSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateSession entities.
func (c *StateSessionClient) CreateBulk(builders ...*StateSessionCreate) *StateSessionCreateBulk {
	return &StateSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateSessionClient) MapCreateBulk(slice any, setFunc func(*StateSessionCreate, int)) *StateSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateSessionCreateBulk{err: fmt.Errorf("calling to StateSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateSession.
func (c *StateSessionClient) Update() *StateSessionUpdate {
	mutation := newStateSessionMutation(c.config, OpUpdate)
	return &StateSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateSessionClient) UpdateOne(_m *StateSession) *StateSessionUpdateOne {
	mutation := newStateSessionMutation(c.config, OpUpdateOne, withStateSession(_m))
	return &StateSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateSessionClient) UpdateOneID(id string) *StateSessionUpdateOne {
	mutation := newStateSessionMutation(c.config, OpUpdateOne, withStateSessionID(id))
	return &StateSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateSession.
func (c *StateSessionClient) Delete() *StateSessionDelete {
	mutation := newStateSessionMutation(c.config, OpDelete)
	return &StateSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateSessionClient) DeleteOne(_m *StateSession) *StateSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateSessionClient) DeleteOneID(id string) *StateSessionDeleteOne {
	builder := c.Delete().Where(statesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateSessionDeleteOne{builder}
}

// Query returns a query builder for StateSession.
func (c *StateSessionClient) Query() *StateSessionQuery {
	return &StateSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateSession},
		inters: c.Interceptors(),
	}
}

// Get returns a StateSession entity by its id.
func (c *StateSessionClient) Get(ctx context.Context, id string) (*StateSession, error) {
	return c.Query().Where(statesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateSessionClient) GetX(ctx context.Context, id string) *StateSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateSessionClient) Hooks() []Hook {
	return c.hooks.StateSession
}

// Interceptors returns the client interceptors.
func (c *StateSessionClient) Interceptors() []Interceptor {
	return c.inters.StateSession
}

func (c *StateSessionClient) mutate(ctx context.Context, m *StateSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ArchivedSession, StateSession []ent.Hook
	}
	inters struct {
		ArchivedSession, StateSession []ent.Interceptor
	}
)
