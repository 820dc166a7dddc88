// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Claim is the client for interacting with the Claim builders.
	Claim *ClaimClient
	// ClaimEvidence is the client for interacting with the ClaimEvidence builders.
	ClaimEvidence *ClaimEvidenceClient
	// ClaimInvoice is the client for interacting with the ClaimInvoice builders.
	ClaimInvoice *ClaimInvoiceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Claim = NewClaimClient(c.config)
	c.ClaimEvidence = NewClaimEvidenceClient(c.config)
	c.ClaimInvoice = NewClaimInvoiceClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Claim:         NewClaimClient(cfg),
		ClaimEvidence: NewClaimEvidenceClient(cfg),
		ClaimInvoice:  NewClaimInvoiceClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Claim:         NewClaimClient(cfg),
		ClaimEvidence: NewClaimEvidenceClient(cfg),
		ClaimInvoice:  NewClaimInvoiceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Claim.
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
	c.Claim.Use(hooks...)
	c.ClaimEvidence.Use(hooks...)
	c.ClaimInvoice.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Claim.Intercept(interceptors...)
	c.ClaimEvidence.Intercept(interceptors...)
	c.ClaimInvoice.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClaimMutation:
		return c.Claim.mutate(ctx, m)
	case *ClaimEvidenceMutation:
		return c.ClaimEvidence.mutate(ctx, m)
	case *ClaimInvoiceMutation:
		return c.ClaimInvoice.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClaimClient is a client for the Claim schema.
type ClaimClient struct {
	config
}

// NewClaimClient returns a client for the Claim from the given config.
func NewClaimClient(c config) *ClaimClient {
	return &ClaimClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claim.Hooks(f(g(h())))`.
func (c *ClaimClient) Use(hooks ...Hook) {
	c.hooks.Claim = append(c.hooks.Claim, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claim.Intercept(f(g(h())))`.
func (c *ClaimClient) Intercept(interceptors ...Interceptor) {
	c.inters.Claim = append(c.inters.Claim, interceptors...)
}

// Create returns a builder for creating a Claim entity.
func (c *ClaimClient) Create() *ClaimCreate {
	mutation := newClaimMutation(c.config, OpCreate)
	return &ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Claim entities.
func (c *ClaimClient) CreateBulk(builders ...*ClaimCreate) *ClaimCreateBulk {
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimClient) MapCreateBulk(slice any, setFunc func(*ClaimCreate, int)) *ClaimCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimCreateBulk{err: fmt.Errorf("calling to ClaimClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Claim.
func (c *ClaimClient) Update() *ClaimUpdate {
	mutation := newClaimMutation(c.config, OpUpdate)
	return &ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimClient) UpdateOne(_m *Claim) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaim(_m))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimClient) UpdateOneID(id uuid.UUID) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaimID(id))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Claim.
func (c *ClaimClient) Delete() *ClaimDelete {
	mutation := newClaimMutation(c.config, OpDelete)
	return &ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimClient) DeleteOne(_m *Claim) *ClaimDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimClient) DeleteOneID(id uuid.UUID) *ClaimDeleteOne {
	builder := c.Delete().Where(claim.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimDeleteOne{builder}
}

// Query returns a query builder for Claim.
func (c *ClaimClient) Query() *ClaimQuery {
	return &ClaimQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaim},
		inters: c.Interceptors(),
	}
}

// Get returns a Claim entity by its id.
func (c *ClaimClient) Get(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return c.Query().Where(claim.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimClient) GetX(ctx context.Context, id uuid.UUID) *Claim {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoices queries the invoices edge of a Claim.
func (c *ClaimClient) QueryInvoices(_m *Claim) *ClaimInvoiceQuery {
	query := (&ClaimInvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claim.Table, claim.FieldID, id),
			sqlgraph.To(claiminvoice.Table, claiminvoice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, claim.InvoicesTable, claim.InvoicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidence queries the evidence edge of a Claim.
func (c *ClaimClient) QueryEvidence(_m *Claim) *ClaimEvidenceQuery {
	query := (&ClaimEvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claim.Table, claim.FieldID, id),
			sqlgraph.To(claimevidence.Table, claimevidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, claim.EvidenceTable, claim.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClaimClient) Hooks() []Hook {
	return c.hooks.Claim
}

// Interceptors returns the client interceptors.
func (c *ClaimClient) Interceptors() []Interceptor {
	return c.inters.Claim
}

func (c *ClaimClient) mutate(ctx context.Context, m *ClaimMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Claim mutation op: %q", m.Op())
	}
}

// ClaimEvidenceClient is a client for the ClaimEvidence schema.
type ClaimEvidenceClient struct {
	config
}

// NewClaimEvidenceClient returns a client for the ClaimEvidence from the given config.
func NewClaimEvidenceClient(c config) *ClaimEvidenceClient {
	return &ClaimEvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claimevidence.Hooks(f(g(h())))`.
func (c *ClaimEvidenceClient) Use(hooks ...Hook) {
	c.hooks.ClaimEvidence = append(c.hooks.ClaimEvidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claimevidence.Intercept(f(g(h())))`.
func (c *ClaimEvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimEvidence = append(c.inters.ClaimEvidence, interceptors...)
}

// Create returns a builder for creating a ClaimEvidence entity.
func (c *ClaimEvidenceClient) Create() *ClaimEvidenceCreate {
	mutation := newClaimEvidenceMutation(c.config, OpCreate)
	return &ClaimEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimEvidence entities.
func (c *ClaimEvidenceClient) CreateBulk(builders ...*ClaimEvidenceCreate) *ClaimEvidenceCreateBulk {
	return &ClaimEvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimEvidenceClient) MapCreateBulk(slice any, setFunc func(*ClaimEvidenceCreate, int)) *ClaimEvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimEvidenceCreateBulk{err: fmt.Errorf("calling to ClaimEvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimEvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimEvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimEvidence.
func (c *ClaimEvidenceClient) Update() *ClaimEvidenceUpdate {
	mutation := newClaimEvidenceMutation(c.config, OpUpdate)
	return &ClaimEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimEvidenceClient) UpdateOne(_m *ClaimEvidence) *ClaimEvidenceUpdateOne {
	mutation := newClaimEvidenceMutation(c.config, OpUpdateOne, withClaimEvidence(_m))
	return &ClaimEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimEvidenceClient) UpdateOneID(id uuid.UUID) *ClaimEvidenceUpdateOne {
	mutation := newClaimEvidenceMutation(c.config, OpUpdateOne, withClaimEvidenceID(id))
	return &ClaimEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimEvidence.
func (c *ClaimEvidenceClient) Delete() *ClaimEvidenceDelete {
	mutation := newClaimEvidenceMutation(c.config, OpDelete)
	return &ClaimEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimEvidenceClient) DeleteOne(_m *ClaimEvidence) *ClaimEvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimEvidenceClient) DeleteOneID(id uuid.UUID) *ClaimEvidenceDeleteOne {
	builder := c.Delete().Where(claimevidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimEvidenceDeleteOne{builder}
}

// Query returns a query builder for ClaimEvidence.
func (c *ClaimEvidenceClient) Query() *ClaimEvidenceQuery {
	return &ClaimEvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimEvidence entity by its id.
func (c *ClaimEvidenceClient) Get(ctx context.Context, id uuid.UUID) (*ClaimEvidence, error) {
	return c.Query().Where(claimevidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimEvidenceClient) GetX(ctx context.Context, id uuid.UUID) *ClaimEvidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClaim queries the claim edge of a ClaimEvidence.
func (c *ClaimEvidenceClient) QueryClaim(_m *ClaimEvidence) *ClaimQuery {
	query := (&ClaimClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claimevidence.Table, claimevidence.FieldID, id),
			sqlgraph.To(claim.Table, claim.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, claimevidence.ClaimTable, claimevidence.ClaimColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClaimEvidenceClient) Hooks() []Hook {
	return c.hooks.ClaimEvidence
}

// Interceptors returns the client interceptors.
func (c *ClaimEvidenceClient) Interceptors() []Interceptor {
	return c.inters.ClaimEvidence
}

func (c *ClaimEvidenceClient) mutate(ctx context.Context, m *ClaimEvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimEvidence mutation op: %q", m.Op())
	}
}

// ClaimInvoiceClient is a client for the ClaimInvoice schema.
type ClaimInvoiceClient struct {
	config
}

// NewClaimInvoiceClient returns a client for the ClaimInvoice from the given config.
func NewClaimInvoiceClient(c config) *ClaimInvoiceClient {
	return &ClaimInvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claiminvoice.Hooks(f(g(h())))`.
func (c *ClaimInvoiceClient) Use(hooks ...Hook) {
	c.hooks.ClaimInvoice = append(c.hooks.ClaimInvoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claiminvoice.Intercept(f(g(h())))`.
func (c *ClaimInvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClaimInvoice = append(c.inters.ClaimInvoice, interceptors...)
}

// Create returns a builder for creating a ClaimInvoice entity.
func (c *ClaimInvoiceClient) Create() *ClaimInvoiceCreate {
	mutation := newClaimInvoiceMutation(c.config, OpCreate)
	return &ClaimInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClaimInvoice entities.
func (c *ClaimInvoiceClient) CreateBulk(builders ...*ClaimInvoiceCreate) *ClaimInvoiceCreateBulk {
	return &ClaimInvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimInvoiceClient) MapCreateBulk(slice any, setFunc func(*ClaimInvoiceCreate, int)) *ClaimInvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimInvoiceCreateBulk{err: fmt.Errorf("calling to ClaimInvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimInvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimInvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClaimInvoice.
func (c *ClaimInvoiceClient) Update() *ClaimInvoiceUpdate {
	mutation := newClaimInvoiceMutation(c.config, OpUpdate)
	return &ClaimInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimInvoiceClient) UpdateOne(_m *ClaimInvoice) *ClaimInvoiceUpdateOne {
	mutation := newClaimInvoiceMutation(c.config, OpUpdateOne, withClaimInvoice(_m))
	return &ClaimInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimInvoiceClient) UpdateOneID(id uuid.UUID) *ClaimInvoiceUpdateOne {
	mutation := newClaimInvoiceMutation(c.config, OpUpdateOne, withClaimInvoiceID(id))
	return &ClaimInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClaimInvoice.
func (c *ClaimInvoiceClient) Delete() *ClaimInvoiceDelete {
	mutation := newClaimInvoiceMutation(c.config, OpDelete)
	return &ClaimInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimInvoiceClient) DeleteOne(_m *ClaimInvoice) *ClaimInvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimInvoiceClient) DeleteOneID(id uuid.UUID) *ClaimInvoiceDeleteOne {
	builder := c.Delete().Where(claiminvoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimInvoiceDeleteOne{builder}
}

// Query returns a query builder for ClaimInvoice.
func (c *ClaimInvoiceClient) Query() *ClaimInvoiceQuery {
	return &ClaimInvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaimInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a ClaimInvoice entity by its id.
func (c *ClaimInvoiceClient) Get(ctx context.Context, id uuid.UUID) (*ClaimInvoice, error) {
	return c.Query().Where(claiminvoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimInvoiceClient) GetX(ctx context.Context, id uuid.UUID) *ClaimInvoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClaim queries the claim edge of a ClaimInvoice.
func (c *ClaimInvoiceClient) QueryClaim(_m *ClaimInvoice) *ClaimQuery {
	query := (&ClaimClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(claiminvoice.Table, claiminvoice.FieldID, id),
			sqlgraph.To(claim.Table, claim.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, claiminvoice.ClaimTable, claiminvoice.ClaimColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClaimInvoiceClient) Hooks() []Hook {
	return c.hooks.ClaimInvoice
}

// Interceptors returns the client interceptors.
func (c *ClaimInvoiceClient) Interceptors() []Interceptor {
	return c.inters.ClaimInvoice
}

func (c *ClaimInvoiceClient) mutate(ctx context.Context, m *ClaimInvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClaimInvoice mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Claim, ClaimEvidence, ClaimInvoice []ent.Hook
	}
	inters struct {
		Claim, ClaimEvidence, ClaimInvoice []ent.Interceptor
	}
)
