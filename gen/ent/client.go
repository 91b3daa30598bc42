// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/examtrack/exam-analyzer/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Biomarker is the client for interacting with the Biomarker builders.
	Biomarker *BiomarkerClient
	// Exam is the client for interacting with the Exam builders.
	Exam *ExamClient
	// ReferenceRange is the client for interacting with the ReferenceRange builders.
	ReferenceRange *ReferenceRangeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Biomarker = NewBiomarkerClient(c.config)
	c.Exam = NewExamClient(c.config)
	c.ReferenceRange = NewReferenceRangeClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Biomarker:      NewBiomarkerClient(cfg),
		Exam:           NewExamClient(cfg),
		ReferenceRange: NewReferenceRangeClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Biomarker:      NewBiomarkerClient(cfg),
		Exam:           NewExamClient(cfg),
		ReferenceRange: NewReferenceRangeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Biomarker.
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
	c.Biomarker.Use(hooks...)
	c.Exam.Use(hooks...)
	c.ReferenceRange.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Biomarker.Intercept(interceptors...)
	c.Exam.Intercept(interceptors...)
	c.ReferenceRange.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BiomarkerMutation:
		return c.Biomarker.mutate(ctx, m)
	case *ExamMutation:
		return c.Exam.mutate(ctx, m)
	case *ReferenceRangeMutation:
		return c.ReferenceRange.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BiomarkerClient is a client for the Biomarker schema.
type BiomarkerClient struct {
	config
}

// NewBiomarkerClient returns a client for the Biomarker from the given config.
func NewBiomarkerClient(c config) *BiomarkerClient {
	return &BiomarkerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `biomarker.Hooks(f(g(h())))`.
func (c *BiomarkerClient) Use(hooks ...Hook) {
	c.hooks.Biomarker = append(c.hooks.Biomarker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `biomarker.Intercept(f(g(h())))`.
func (c *BiomarkerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Biomarker = append(c.inters.Biomarker, interceptors...)
}

// Create returns a builder for creating a Biomarker entity.
func (c *BiomarkerClient) Create() *BiomarkerCreate {
	mutation := newBiomarkerMutation(c.config, OpCreate)
	return &BiomarkerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Biomarker entities.
func (c *BiomarkerClient) CreateBulk(builders ...*BiomarkerCreate) *BiomarkerCreateBulk {
	return &BiomarkerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BiomarkerClient) MapCreateBulk(slice any, setFunc func(*BiomarkerCreate, int)) *BiomarkerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BiomarkerCreateBulk{err: fmt.Errorf("calling to BiomarkerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BiomarkerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BiomarkerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Biomarker.
func (c *BiomarkerClient) Update() *BiomarkerUpdate {
	mutation := newBiomarkerMutation(c.config, OpUpdate)
	return &BiomarkerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BiomarkerClient) UpdateOne(_m *Biomarker) *BiomarkerUpdateOne {
	mutation := newBiomarkerMutation(c.config, OpUpdateOne, withBiomarker(_m))
	return &BiomarkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BiomarkerClient) UpdateOneID(id uuid.UUID) *BiomarkerUpdateOne {
	mutation := newBiomarkerMutation(c.config, OpUpdateOne, withBiomarkerID(id))
	return &BiomarkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Biomarker.
func (c *BiomarkerClient) Delete() *BiomarkerDelete {
	mutation := newBiomarkerMutation(c.config, OpDelete)
	return &BiomarkerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BiomarkerClient) DeleteOne(_m *Biomarker) *BiomarkerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BiomarkerClient) DeleteOneID(id uuid.UUID) *BiomarkerDeleteOne {
	builder := c.Delete().Where(biomarker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BiomarkerDeleteOne{builder}
}

// Query returns a query builder for Biomarker.
func (c *BiomarkerClient) Query() *BiomarkerQuery {
	return &BiomarkerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBiomarker},
		inters: c.Interceptors(),
	}
}

// Get returns a Biomarker entity by its id.
func (c *BiomarkerClient) Get(ctx context.Context, id uuid.UUID) (*Biomarker, error) {
	return c.Query().Where(biomarker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BiomarkerClient) GetX(ctx context.Context, id uuid.UUID) *Biomarker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExam queries the exam edge of a Biomarker.
func (c *BiomarkerClient) QueryExam(_m *Biomarker) *ExamQuery {
	query := (&ExamClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(biomarker.Table, biomarker.FieldID, id),
			sqlgraph.To(exam.Table, exam.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, biomarker.ExamTable, biomarker.ExamColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BiomarkerClient) Hooks() []Hook {
	return c.hooks.Biomarker
}

// Interceptors returns the client interceptors.
func (c *BiomarkerClient) Interceptors() []Interceptor {
	return c.inters.Biomarker
}

func (c *BiomarkerClient) mutate(ctx context.Context, m *BiomarkerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BiomarkerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BiomarkerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BiomarkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BiomarkerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Biomarker mutation op: %q", m.Op())
	}
}

// ExamClient is a client for the Exam schema.
type ExamClient struct {
	config
}

// NewExamClient returns a client for the Exam from the given config.
func NewExamClient(c config) *ExamClient {
	return &ExamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exam.Hooks(f(g(h())))`.
func (c *ExamClient) Use(hooks ...Hook) {
	c.hooks.Exam = append(c.hooks.Exam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exam.Intercept(f(g(h())))`.
func (c *ExamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exam = append(c.inters.Exam, interceptors...)
}

// Create returns a builder for creating a Exam entity.
func (c *ExamClient) Create() *ExamCreate {
	mutation := newExamMutation(c.config, OpCreate)
	return &ExamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exam entities.
func (c *ExamClient) CreateBulk(builders ...*ExamCreate) *ExamCreateBulk {
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamClient) MapCreateBulk(slice any, setFunc func(*ExamCreate, int)) *ExamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamCreateBulk{err: fmt.Errorf("calling to ExamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exam.
func (c *ExamClient) Update() *ExamUpdate {
	mutation := newExamMutation(c.config, OpUpdate)
	return &ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamClient) UpdateOne(_m *Exam) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExam(_m))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamClient) UpdateOneID(id uuid.UUID) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExamID(id))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exam.
func (c *ExamClient) Delete() *ExamDelete {
	mutation := newExamMutation(c.config, OpDelete)
	return &ExamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamClient) DeleteOne(_m *Exam) *ExamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamClient) DeleteOneID(id uuid.UUID) *ExamDeleteOne {
	builder := c.Delete().Where(exam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamDeleteOne{builder}
}

// Query returns a query builder for Exam.
func (c *ExamClient) Query() *ExamQuery {
	return &ExamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExam},
		inters: c.Interceptors(),
	}
}

// Get returns a Exam entity by its id.
func (c *ExamClient) Get(ctx context.Context, id uuid.UUID) (*Exam, error) {
	return c.Query().Where(exam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamClient) GetX(ctx context.Context, id uuid.UUID) *Exam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBiomarkers queries the biomarkers edge of a Exam.
func (c *ExamClient) QueryBiomarkers(_m *Exam) *BiomarkerQuery {
	query := (&BiomarkerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exam.Table, exam.FieldID, id),
			sqlgraph.To(biomarker.Table, biomarker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, exam.BiomarkersTable, exam.BiomarkersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExamClient) Hooks() []Hook {
	return c.hooks.Exam
}

// Interceptors returns the client interceptors.
func (c *ExamClient) Interceptors() []Interceptor {
	return c.inters.Exam
}

func (c *ExamClient) mutate(ctx context.Context, m *ExamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exam mutation op: %q", m.Op())
	}
}

// ReferenceRangeClient is a client for the ReferenceRange schema.
type ReferenceRangeClient struct {
	config
}

// NewReferenceRangeClient returns a client for the ReferenceRange from the given config.
func NewReferenceRangeClient(c config) *ReferenceRangeClient {
	return &ReferenceRangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `referencerange.Hooks(f(g(h())))`.
func (c *ReferenceRangeClient) Use(hooks ...Hook) {
	c.hooks.ReferenceRange = append(c.hooks.ReferenceRange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `referencerange.Intercept(f(g(h())))`.
func (c *ReferenceRangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReferenceRange = append(c.inters.ReferenceRange, interceptors...)
}

// Create returns a builder for creating a ReferenceRange entity.
func (c *ReferenceRangeClient) Create() *ReferenceRangeCreate {
	mutation := newReferenceRangeMutation(c.config, OpCreate)
	return &ReferenceRangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReferenceRange entities.
func (c *ReferenceRangeClient) CreateBulk(builders ...*ReferenceRangeCreate) *ReferenceRangeCreateBulk {
	return &ReferenceRangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReferenceRangeClient) MapCreateBulk(slice any, setFunc func(*ReferenceRangeCreate, int)) *ReferenceRangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReferenceRangeCreateBulk{err: fmt.Errorf("calling to ReferenceRangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReferenceRangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReferenceRangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReferenceRange.
func (c *ReferenceRangeClient) Update() *ReferenceRangeUpdate {
	mutation := newReferenceRangeMutation(c.config, OpUpdate)
	return &ReferenceRangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReferenceRangeClient) UpdateOne(_m *ReferenceRange) *ReferenceRangeUpdateOne {
	mutation := newReferenceRangeMutation(c.config, OpUpdateOne, withReferenceRange(_m))
	return &ReferenceRangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReferenceRangeClient) UpdateOneID(id uuid.UUID) *ReferenceRangeUpdateOne {
	mutation := newReferenceRangeMutation(c.config, OpUpdateOne, withReferenceRangeID(id))
	return &ReferenceRangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReferenceRange.
func (c *ReferenceRangeClient) Delete() *ReferenceRangeDelete {
	mutation := newReferenceRangeMutation(c.config, OpDelete)
	return &ReferenceRangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReferenceRangeClient) DeleteOne(_m *ReferenceRange) *ReferenceRangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReferenceRangeClient) DeleteOneID(id uuid.UUID) *ReferenceRangeDeleteOne {
	builder := c.Delete().Where(referencerange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReferenceRangeDeleteOne{builder}
}

// Query returns a query builder for ReferenceRange.
func (c *ReferenceRangeClient) Query() *ReferenceRangeQuery {
	return &ReferenceRangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReferenceRange},
		inters: c.Interceptors(),
	}
}

// Get returns a ReferenceRange entity by its id.
func (c *ReferenceRangeClient) Get(ctx context.Context, id uuid.UUID) (*ReferenceRange, error) {
	return c.Query().Where(referencerange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReferenceRangeClient) GetX(ctx context.Context, id uuid.UUID) *ReferenceRange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReferenceRangeClient) Hooks() []Hook {
	return c.hooks.ReferenceRange
}

// Interceptors returns the client interceptors.
func (c *ReferenceRangeClient) Interceptors() []Interceptor {
	return c.inters.ReferenceRange
}

func (c *ReferenceRangeClient) mutate(ctx context.Context, m *ReferenceRangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReferenceRangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReferenceRangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReferenceRangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReferenceRangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReferenceRange mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Biomarker, Exam, ReferenceRange []ent.Hook
	}
	inters struct {
		Biomarker, Exam, ReferenceRange []ent.Interceptor
	}
)
