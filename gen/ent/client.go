// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/syncjob"
	"github.com/optipix/imagesync/gen/ent/tokenaccount"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// JobItem is the client for interacting with the JobItem builders.
	JobItem *JobItemClient
	// SyncJob is the client for interacting with the SyncJob builders.
	SyncJob *SyncJobClient
	// TokenAccount is the client for interacting with the TokenAccount builders.
	TokenAccount *TokenAccountClient
	// TokenReservation is the client for interacting with the TokenReservation builders.
	TokenReservation *TokenReservationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.JobItem = NewJobItemClient(c.config)
	c.SyncJob = NewSyncJobClient(c.config)
	c.TokenAccount = NewTokenAccountClient(c.config)
	c.TokenReservation = NewTokenReservationClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		JobItem:          NewJobItemClient(cfg),
		SyncJob:          NewSyncJobClient(cfg),
		TokenAccount:     NewTokenAccountClient(cfg),
		TokenReservation: NewTokenReservationClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		JobItem:          NewJobItemClient(cfg),
		SyncJob:          NewSyncJobClient(cfg),
		TokenAccount:     NewTokenAccountClient(cfg),
		TokenReservation: NewTokenReservationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		JobItem.
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
	c.JobItem.Use(hooks...)
	c.SyncJob.Use(hooks...)
	c.TokenAccount.Use(hooks...)
	c.TokenReservation.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.JobItem.Intercept(interceptors...)
	c.SyncJob.Intercept(interceptors...)
	c.TokenAccount.Intercept(interceptors...)
	c.TokenReservation.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JobItemMutation:
		return c.JobItem.mutate(ctx, m)
	case *SyncJobMutation:
		return c.SyncJob.mutate(ctx, m)
	case *TokenAccountMutation:
		return c.TokenAccount.mutate(ctx, m)
	case *TokenReservationMutation:
		return c.TokenReservation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JobItemClient is a client for the JobItem schema.
type JobItemClient struct {
	config
}

// NewJobItemClient returns a client for the JobItem from the given config.
func NewJobItemClient(c config) *JobItemClient {
	return &JobItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobitem.Hooks(f(g(h())))`.
func (c *JobItemClient) Use(hooks ...Hook) {
	c.hooks.JobItem = append(c.hooks.JobItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobitem.Intercept(f(g(h())))`.
func (c *JobItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobItem = append(c.inters.JobItem, interceptors...)
}

// Create returns a builder for creating a JobItem entity.
func (c *JobItemClient) Create() *JobItemCreate {
	mutation := newJobItemMutation(c.config, OpCreate)
	return &JobItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobItem entities.
func (c *JobItemClient) CreateBulk(builders ...*JobItemCreate) *JobItemCreateBulk {
	return &JobItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobItemClient) MapCreateBulk(slice any, setFunc func(*JobItemCreate, int)) *JobItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobItemCreateBulk{err: fmt.Errorf("calling to JobItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobItem.
func (c *JobItemClient) Update() *JobItemUpdate {
	mutation := newJobItemMutation(c.config, OpUpdate)
	return &JobItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobItemClient) UpdateOne(_m *JobItem) *JobItemUpdateOne {
	mutation := newJobItemMutation(c.config, OpUpdateOne, withJobItem(_m))
	return &JobItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobItemClient) UpdateOneID(id uuid.UUID) *JobItemUpdateOne {
	mutation := newJobItemMutation(c.config, OpUpdateOne, withJobItemID(id))
	return &JobItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobItem.
func (c *JobItemClient) Delete() *JobItemDelete {
	mutation := newJobItemMutation(c.config, OpDelete)
	return &JobItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobItemClient) DeleteOne(_m *JobItem) *JobItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobItemClient) DeleteOneID(id uuid.UUID) *JobItemDeleteOne {
	builder := c.Delete().Where(jobitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobItemDeleteOne{builder}
}

// Query returns a query builder for JobItem.
func (c *JobItemClient) Query() *JobItemQuery {
	return &JobItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobItem},
		inters: c.Interceptors(),
	}
}

// Get returns a JobItem entity by its id.
func (c *JobItemClient) Get(ctx context.Context, id uuid.UUID) (*JobItem, error) {
	return c.Query().Where(jobitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobItemClient) GetX(ctx context.Context, id uuid.UUID) *JobItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobItem.
func (c *JobItemClient) QueryJob(_m *JobItem) *SyncJobQuery {
	query := (&SyncJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobitem.Table, jobitem.FieldID, id),
			sqlgraph.To(syncjob.Table, syncjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobitem.JobTable, jobitem.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobItemClient) Hooks() []Hook {
	return c.hooks.JobItem
}

// Interceptors returns the client interceptors.
func (c *JobItemClient) Interceptors() []Interceptor {
	return c.inters.JobItem
}

func (c *JobItemClient) mutate(ctx context.Context, m *JobItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobItem mutation op: %q", m.Op())
	}
}

// SyncJobClient is a client for the SyncJob schema.
type SyncJobClient struct {
	config
}

// NewSyncJobClient returns a client for the SyncJob from the given config.
func NewSyncJobClient(c config) *SyncJobClient {
	return &SyncJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncjob.Hooks(f(g(h())))`.
func (c *SyncJobClient) Use(hooks ...Hook) {
	c.hooks.SyncJob = append(c.hooks.SyncJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncjob.Intercept(f(g(h())))`.
func (c *SyncJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncJob = append(c.inters.SyncJob, interceptors...)
}

// Create returns a builder for creating a SyncJob entity.
func (c *SyncJobClient) Create() *SyncJobCreate {
	mutation := newSyncJobMutation(c.config, OpCreate)
	return &SyncJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncJob entities.
func (c *SyncJobClient) CreateBulk(builders ...*SyncJobCreate) *SyncJobCreateBulk {
	return &SyncJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncJobClient) MapCreateBulk(slice any, setFunc func(*SyncJobCreate, int)) *SyncJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncJobCreateBulk{err: fmt.Errorf("calling to SyncJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncJob.
func (c *SyncJobClient) Update() *SyncJobUpdate {
	mutation := newSyncJobMutation(c.config, OpUpdate)
	return &SyncJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncJobClient) UpdateOne(_m *SyncJob) *SyncJobUpdateOne {
	mutation := newSyncJobMutation(c.config, OpUpdateOne, withSyncJob(_m))
	return &SyncJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncJobClient) UpdateOneID(id uuid.UUID) *SyncJobUpdateOne {
	mutation := newSyncJobMutation(c.config, OpUpdateOne, withSyncJobID(id))
	return &SyncJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncJob.
func (c *SyncJobClient) Delete() *SyncJobDelete {
	mutation := newSyncJobMutation(c.config, OpDelete)
	return &SyncJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncJobClient) DeleteOne(_m *SyncJob) *SyncJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncJobClient) DeleteOneID(id uuid.UUID) *SyncJobDeleteOne {
	builder := c.Delete().Where(syncjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncJobDeleteOne{builder}
}

// Query returns a query builder for SyncJob.
func (c *SyncJobClient) Query() *SyncJobQuery {
	return &SyncJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncJob},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncJob entity by its id.
func (c *SyncJobClient) Get(ctx context.Context, id uuid.UUID) (*SyncJob, error) {
	return c.Query().Where(syncjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncJobClient) GetX(ctx context.Context, id uuid.UUID) *SyncJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a SyncJob.
func (c *SyncJobClient) QueryItems(_m *SyncJob) *JobItemQuery {
	query := (&JobItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(syncjob.Table, syncjob.FieldID, id),
			sqlgraph.To(jobitem.Table, jobitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, syncjob.ItemsTable, syncjob.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SyncJobClient) Hooks() []Hook {
	return c.hooks.SyncJob
}

// Interceptors returns the client interceptors.
func (c *SyncJobClient) Interceptors() []Interceptor {
	return c.inters.SyncJob
}

func (c *SyncJobClient) mutate(ctx context.Context, m *SyncJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncJob mutation op: %q", m.Op())
	}
}

// TokenAccountClient is a client for the TokenAccount schema.
type TokenAccountClient struct {
	config
}

// NewTokenAccountClient returns a client for the TokenAccount from the given config.
func NewTokenAccountClient(c config) *TokenAccountClient {
	return &TokenAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenaccount.Hooks(f(g(h())))`.
func (c *TokenAccountClient) Use(hooks ...Hook) {
	c.hooks.TokenAccount = append(c.hooks.TokenAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenaccount.Intercept(f(g(h())))`.
func (c *TokenAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenAccount = append(c.inters.TokenAccount, interceptors...)
}

// Create returns a builder for creating a TokenAccount entity.
func (c *TokenAccountClient) Create() *TokenAccountCreate {
	mutation := newTokenAccountMutation(c.config, OpCreate)
	return &TokenAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenAccount entities.
func (c *TokenAccountClient) CreateBulk(builders ...*TokenAccountCreate) *TokenAccountCreateBulk {
	return &TokenAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenAccountClient) MapCreateBulk(slice any, setFunc func(*TokenAccountCreate, int)) *TokenAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenAccountCreateBulk{err: fmt.Errorf("calling to TokenAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenAccount.
func (c *TokenAccountClient) Update() *TokenAccountUpdate {
	mutation := newTokenAccountMutation(c.config, OpUpdate)
	return &TokenAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenAccountClient) UpdateOne(_m *TokenAccount) *TokenAccountUpdateOne {
	mutation := newTokenAccountMutation(c.config, OpUpdateOne, withTokenAccount(_m))
	return &TokenAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenAccountClient) UpdateOneID(id uuid.UUID) *TokenAccountUpdateOne {
	mutation := newTokenAccountMutation(c.config, OpUpdateOne, withTokenAccountID(id))
	return &TokenAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenAccount.
func (c *TokenAccountClient) Delete() *TokenAccountDelete {
	mutation := newTokenAccountMutation(c.config, OpDelete)
	return &TokenAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenAccountClient) DeleteOne(_m *TokenAccount) *TokenAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenAccountClient) DeleteOneID(id uuid.UUID) *TokenAccountDeleteOne {
	builder := c.Delete().Where(tokenaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenAccountDeleteOne{builder}
}

// Query returns a query builder for TokenAccount.
func (c *TokenAccountClient) Query() *TokenAccountQuery {
	return &TokenAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenAccount entity by its id.
func (c *TokenAccountClient) Get(ctx context.Context, id uuid.UUID) (*TokenAccount, error) {
	return c.Query().Where(tokenaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenAccountClient) GetX(ctx context.Context, id uuid.UUID) *TokenAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenAccountClient) Hooks() []Hook {
	return c.hooks.TokenAccount
}

// Interceptors returns the client interceptors.
func (c *TokenAccountClient) Interceptors() []Interceptor {
	return c.inters.TokenAccount
}

func (c *TokenAccountClient) mutate(ctx context.Context, m *TokenAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenAccount mutation op: %q", m.Op())
	}
}

// TokenReservationClient is a client for the TokenReservation schema.
type TokenReservationClient struct {
	config
}

// NewTokenReservationClient returns a client for the TokenReservation from the given config.
func NewTokenReservationClient(c config) *TokenReservationClient {
	return &TokenReservationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenreservation.Hooks(f(g(h())))`.
func (c *TokenReservationClient) Use(hooks ...Hook) {
	c.hooks.TokenReservation = append(c.hooks.TokenReservation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenreservation.Intercept(f(g(h())))`.
func (c *TokenReservationClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenReservation = append(c.inters.TokenReservation, interceptors...)
}

// Create returns a builder for creating a TokenReservation entity.
func (c *TokenReservationClient) Create() *TokenReservationCreate {
	mutation := newTokenReservationMutation(c.config, OpCreate)
	return &TokenReservationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenReservation entities.
func (c *TokenReservationClient) CreateBulk(builders ...*TokenReservationCreate) *TokenReservationCreateBulk {
	return &TokenReservationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenReservationClient) MapCreateBulk(slice any, setFunc func(*TokenReservationCreate, int)) *TokenReservationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenReservationCreateBulk{err: fmt.Errorf("calling to TokenReservationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenReservationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenReservationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenReservation.
func (c *TokenReservationClient) Update() *TokenReservationUpdate {
	mutation := newTokenReservationMutation(c.config, OpUpdate)
	return &TokenReservationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenReservationClient) UpdateOne(_m *TokenReservation) *TokenReservationUpdateOne {
	mutation := newTokenReservationMutation(c.config, OpUpdateOne, withTokenReservation(_m))
	return &TokenReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenReservationClient) UpdateOneID(id uuid.UUID) *TokenReservationUpdateOne {
	mutation := newTokenReservationMutation(c.config, OpUpdateOne, withTokenReservationID(id))
	return &TokenReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenReservation.
func (c *TokenReservationClient) Delete() *TokenReservationDelete {
	mutation := newTokenReservationMutation(c.config, OpDelete)
	return &TokenReservationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenReservationClient) DeleteOne(_m *TokenReservation) *TokenReservationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenReservationClient) DeleteOneID(id uuid.UUID) *TokenReservationDeleteOne {
	builder := c.Delete().Where(tokenreservation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenReservationDeleteOne{builder}
}

// Query returns a query builder for TokenReservation.
func (c *TokenReservationClient) Query() *TokenReservationQuery {
	return &TokenReservationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenReservation},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenReservation entity by its id.
func (c *TokenReservationClient) Get(ctx context.Context, id uuid.UUID) (*TokenReservation, error) {
	return c.Query().Where(tokenreservation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenReservationClient) GetX(ctx context.Context, id uuid.UUID) *TokenReservation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenReservationClient) Hooks() []Hook {
	return c.hooks.TokenReservation
}

// Interceptors returns the client interceptors.
func (c *TokenReservationClient) Interceptors() []Interceptor {
	return c.inters.TokenReservation
}

func (c *TokenReservationClient) mutate(ctx context.Context, m *TokenReservationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenReservationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenReservationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenReservationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenReservation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		JobItem, SyncJob, TokenAccount, TokenReservation []ent.Hook
	}
	inters struct {
		JobItem, SyncJob, TokenAccount, TokenReservation []ent.Interceptor
	}
)
