// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/dashboard"
	"dashgate/internal/db/ent/predicate"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DashboardQuery is the builder for querying Dashboard entities.
type DashboardQuery struct {
	config
	ctx        *QueryContext
	order      []dashboard.OrderOption
	inters     []Interceptor
	predicates []predicate.Dashboard
	withGrants *AccessGrantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DashboardQuery builder.
func (dq *DashboardQuery) Where(ps ...predicate.Dashboard) *DashboardQuery {
	dq.predicates = append(dq.predicates, ps...)
	return dq
}

// Limit the number of records to be returned by this query.
func (dq *DashboardQuery) Limit(limit int) *DashboardQuery {
	dq.ctx.Limit = &limit
	return dq
}

// Offset to start from.
func (dq *DashboardQuery) Offset(offset int) *DashboardQuery {
	dq.ctx.Offset = &offset
	return dq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dq *DashboardQuery) Unique(unique bool) *DashboardQuery {
	dq.ctx.Unique = &unique
	return dq
}

// Order specifies how the records should be ordered.
func (dq *DashboardQuery) Order(o ...dashboard.OrderOption) *DashboardQuery {
	dq.order = append(dq.order, o...)
	return dq
}

// QueryGrants chains the current query on the "grants" edge.
func (dq *DashboardQuery) QueryGrants() *AccessGrantQuery {
	query := (&AccessGrantClient{config: dq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dashboard.Table, dashboard.FieldID, selector),
			sqlgraph.To(accessgrant.Table, accessgrant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dashboard.GrantsTable, dashboard.GrantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(dq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Dashboard entity from the query.
// Returns a *NotFoundError when no Dashboard was found.
func (dq *DashboardQuery) First(ctx context.Context) (*Dashboard, error) {
	nodes, err := dq.Limit(1).All(setContextOp(ctx, dq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dashboard.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dq *DashboardQuery) FirstX(ctx context.Context) *Dashboard {
	node, err := dq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Dashboard ID from the query.
// Returns a *NotFoundError when no Dashboard ID was found.
func (dq *DashboardQuery) FirstID(ctx context.Context) (id uint32, err error) {
	var ids []uint32
	if ids, err = dq.Limit(1).IDs(setContextOp(ctx, dq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dashboard.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dq *DashboardQuery) FirstIDX(ctx context.Context) uint32 {
	id, err := dq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Dashboard entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Dashboard entity is found.
// Returns a *NotFoundError when no Dashboard entities are found.
func (dq *DashboardQuery) Only(ctx context.Context) (*Dashboard, error) {
	nodes, err := dq.Limit(2).All(setContextOp(ctx, dq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dashboard.Label}
	default:
		return nil, &NotSingularError{dashboard.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dq *DashboardQuery) OnlyX(ctx context.Context) *Dashboard {
	node, err := dq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Dashboard ID in the query.
// Returns a *NotSingularError when more than one Dashboard ID is found.
// Returns a *NotFoundError when no entities are found.
func (dq *DashboardQuery) OnlyID(ctx context.Context) (id uint32, err error) {
	var ids []uint32
	if ids, err = dq.Limit(2).IDs(setContextOp(ctx, dq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dashboard.Label}
	default:
		err = &NotSingularError{dashboard.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dq *DashboardQuery) OnlyIDX(ctx context.Context) uint32 {
	id, err := dq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Dashboards.
func (dq *DashboardQuery) All(ctx context.Context) ([]*Dashboard, error) {
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryAll)
	if err := dq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Dashboard, *DashboardQuery]()
	return withInterceptors[[]*Dashboard](ctx, dq, qr, dq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dq *DashboardQuery) AllX(ctx context.Context) []*Dashboard {
	nodes, err := dq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Dashboard IDs.
func (dq *DashboardQuery) IDs(ctx context.Context) (ids []uint32, err error) {
	if dq.ctx.Unique == nil && dq.path != nil {
		dq.Unique(true)
	}
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryIDs)
	if err = dq.Select(dashboard.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dq *DashboardQuery) IDsX(ctx context.Context) []uint32 {
	ids, err := dq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dq *DashboardQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryCount)
	if err := dq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dq, querierCount[*DashboardQuery](), dq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dq *DashboardQuery) CountX(ctx context.Context) int {
	count, err := dq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dq *DashboardQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryExist)
	switch _, err := dq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dq *DashboardQuery) ExistX(ctx context.Context) bool {
	exist, err := dq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DashboardQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dq *DashboardQuery) Clone() *DashboardQuery {
	if dq == nil {
		return nil
	}
	return &DashboardQuery{
		config:     dq.config,
		ctx:        dq.ctx.Clone(),
		order:      append([]dashboard.OrderOption{}, dq.order...),
		inters:     append([]Interceptor{}, dq.inters...),
		predicates: append([]predicate.Dashboard{}, dq.predicates...),
		withGrants: dq.withGrants.Clone(),
		// clone intermediate query.
		sql:  dq.sql.Clone(),
		path: dq.path,
	}
}

// WithGrants tells the query-builder to eager-load the nodes that are connected to
// the "grants" edge. The optional arguments are used to configure the query builder of the edge.
func (dq *DashboardQuery) WithGrants(opts ...func(*AccessGrantQuery)) *DashboardQuery {
	query := (&AccessGrantClient{config: dq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dq.withGrants = query
	return dq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Dashboard.Query().
//		GroupBy(dashboard.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dq *DashboardQuery) GroupBy(field string, fields ...string) *DashboardGroupBy {
	dq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DashboardGroupBy{build: dq}
	grbuild.flds = &dq.ctx.Fields
	grbuild.label = dashboard.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Dashboard.Query().
//		Select(dashboard.FieldCreatedAt).
//		Scan(ctx, &v)
func (dq *DashboardQuery) Select(fields ...string) *DashboardSelect {
	dq.ctx.Fields = append(dq.ctx.Fields, fields...)
	sbuild := &DashboardSelect{DashboardQuery: dq}
	sbuild.label = dashboard.Label
	sbuild.flds, sbuild.scan = &dq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DashboardSelect configured with the given aggregations.
func (dq *DashboardQuery) Aggregate(fns ...AggregateFunc) *DashboardSelect {
	return dq.Select().Aggregate(fns...)
}

func (dq *DashboardQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dq); err != nil {
				return err
			}
		}
	}
	for _, f := range dq.ctx.Fields {
		if !dashboard.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dq.path != nil {
		prev, err := dq.path(ctx)
		if err != nil {
			return err
		}
		dq.sql = prev
	}
	return nil
}

func (dq *DashboardQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Dashboard, error) {
	var (
		nodes       = []*Dashboard{}
		_spec       = dq.querySpec()
		loadedTypes = [1]bool{
			dq.withGrants != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Dashboard).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Dashboard{config: dq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dq.withGrants; query != nil {
		if err := dq.loadGrants(ctx, query, nodes,
			func(n *Dashboard) { n.Edges.Grants = []*AccessGrant{} },
			func(n *Dashboard, e *AccessGrant) { n.Edges.Grants = append(n.Edges.Grants, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dq *DashboardQuery) loadGrants(ctx context.Context, query *AccessGrantQuery, nodes []*Dashboard, init func(*Dashboard), assign func(*Dashboard, *AccessGrant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint32]*Dashboard)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(accessgrant.FieldDashboardID)
	}
	query.Where(predicate.AccessGrant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dashboard.GrantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DashboardID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "dashboard_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (dq *DashboardQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dq.querySpec()
	_spec.Node.Columns = dq.ctx.Fields
	if len(dq.ctx.Fields) > 0 {
		_spec.Unique = dq.ctx.Unique != nil && *dq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dq.driver, _spec)
}

func (dq *DashboardQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dashboard.Table, dashboard.Columns, sqlgraph.NewFieldSpec(dashboard.FieldID, field.TypeUint32))
	_spec.From = dq.sql
	if unique := dq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dq.path != nil {
		_spec.Unique = true
	}
	if fields := dq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dashboard.FieldID)
		for i := range fields {
			if fields[i] != dashboard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := dq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dq *DashboardQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dq.driver.Dialect())
	t1 := builder.Table(dashboard.Table)
	columns := dq.ctx.Fields
	if len(columns) == 0 {
		columns = dashboard.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dq.sql != nil {
		selector = dq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dq.ctx.Unique != nil && *dq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dq.predicates {
		p(selector)
	}
	for _, p := range dq.order {
		p(selector)
	}
	if offset := dq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DashboardGroupBy is the group-by builder for Dashboard entities.
type DashboardGroupBy struct {
	selector
	build *DashboardQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dgb *DashboardGroupBy) Aggregate(fns ...AggregateFunc) *DashboardGroupBy {
	dgb.fns = append(dgb.fns, fns...)
	return dgb
}

// Scan applies the selector query and scans the result into the given value.
func (dgb *DashboardGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dgb.build.ctx, ent.OpQueryGroupBy)
	if err := dgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DashboardQuery, *DashboardGroupBy](ctx, dgb.build, dgb, dgb.build.inters, v)
}

func (dgb *DashboardGroupBy) sqlScan(ctx context.Context, root *DashboardQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dgb.fns))
	for _, fn := range dgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dgb.flds)+len(dgb.fns))
		for _, f := range *dgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DashboardSelect is the builder for selecting fields of Dashboard entities.
type DashboardSelect struct {
	*DashboardQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ds *DashboardSelect) Aggregate(fns ...AggregateFunc) *DashboardSelect {
	ds.fns = append(ds.fns, fns...)
	return ds
}

// Scan applies the selector query and scans the result into the given value.
func (ds *DashboardSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ds.ctx, ent.OpQuerySelect)
	if err := ds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DashboardQuery, *DashboardSelect](ctx, ds.DashboardQuery, ds, ds.inters, v)
}

func (ds *DashboardSelect) sqlScan(ctx context.Context, root *DashboardQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ds.fns))
	for _, fn := range ds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
