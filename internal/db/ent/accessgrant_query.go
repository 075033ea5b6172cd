// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/dashboard"
	"dashgate/internal/db/ent/predicate"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AccessGrantQuery is the builder for querying AccessGrant entities.
type AccessGrantQuery struct {
	config
	ctx           *QueryContext
	order         []accessgrant.OrderOption
	inters        []Interceptor
	predicates    []predicate.AccessGrant
	withDashboard *DashboardQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AccessGrantQuery builder.
func (agq *AccessGrantQuery) Where(ps ...predicate.AccessGrant) *AccessGrantQuery {
	agq.predicates = append(agq.predicates, ps...)
	return agq
}

// Limit the number of records to be returned by this query.
func (agq *AccessGrantQuery) Limit(limit int) *AccessGrantQuery {
	agq.ctx.Limit = &limit
	return agq
}

// Offset to start from.
func (agq *AccessGrantQuery) Offset(offset int) *AccessGrantQuery {
	agq.ctx.Offset = &offset
	return agq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (agq *AccessGrantQuery) Unique(unique bool) *AccessGrantQuery {
	agq.ctx.Unique = &unique
	return agq
}

// Order specifies how the records should be ordered.
func (agq *AccessGrantQuery) Order(o ...accessgrant.OrderOption) *AccessGrantQuery {
	agq.order = append(agq.order, o...)
	return agq
}

// QueryDashboard chains the current query on the "dashboard" edge.
func (agq *AccessGrantQuery) QueryDashboard() *DashboardQuery {
	query := (&DashboardClient{config: agq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := agq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := agq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(accessgrant.Table, accessgrant.FieldID, selector),
			sqlgraph.To(dashboard.Table, dashboard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, accessgrant.DashboardTable, accessgrant.DashboardColumn),
		)
		fromU = sqlgraph.SetNeighbors(agq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AccessGrant entity from the query.
// Returns a *NotFoundError when no AccessGrant was found.
func (agq *AccessGrantQuery) First(ctx context.Context) (*AccessGrant, error) {
	nodes, err := agq.Limit(1).All(setContextOp(ctx, agq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{accessgrant.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (agq *AccessGrantQuery) FirstX(ctx context.Context) *AccessGrant {
	node, err := agq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AccessGrant ID from the query.
// Returns a *NotFoundError when no AccessGrant ID was found.
func (agq *AccessGrantQuery) FirstID(ctx context.Context) (id uint32, err error) {
	var ids []uint32
	if ids, err = agq.Limit(1).IDs(setContextOp(ctx, agq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{accessgrant.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (agq *AccessGrantQuery) FirstIDX(ctx context.Context) uint32 {
	id, err := agq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AccessGrant entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AccessGrant entity is found.
// Returns a *NotFoundError when no AccessGrant entities are found.
func (agq *AccessGrantQuery) Only(ctx context.Context) (*AccessGrant, error) {
	nodes, err := agq.Limit(2).All(setContextOp(ctx, agq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{accessgrant.Label}
	default:
		return nil, &NotSingularError{accessgrant.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (agq *AccessGrantQuery) OnlyX(ctx context.Context) *AccessGrant {
	node, err := agq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AccessGrant ID in the query.
// Returns a *NotSingularError when more than one AccessGrant ID is found.
// Returns a *NotFoundError when no entities are found.
func (agq *AccessGrantQuery) OnlyID(ctx context.Context) (id uint32, err error) {
	var ids []uint32
	if ids, err = agq.Limit(2).IDs(setContextOp(ctx, agq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{accessgrant.Label}
	default:
		err = &NotSingularError{accessgrant.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (agq *AccessGrantQuery) OnlyIDX(ctx context.Context) uint32 {
	id, err := agq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AccessGrants.
func (agq *AccessGrantQuery) All(ctx context.Context) ([]*AccessGrant, error) {
	ctx = setContextOp(ctx, agq.ctx, ent.OpQueryAll)
	if err := agq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AccessGrant, *AccessGrantQuery]()
	return withInterceptors[[]*AccessGrant](ctx, agq, qr, agq.inters)
}

// AllX is like All, but panics if an error occurs.
func (agq *AccessGrantQuery) AllX(ctx context.Context) []*AccessGrant {
	nodes, err := agq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AccessGrant IDs.
func (agq *AccessGrantQuery) IDs(ctx context.Context) (ids []uint32, err error) {
	if agq.ctx.Unique == nil && agq.path != nil {
		agq.Unique(true)
	}
	ctx = setContextOp(ctx, agq.ctx, ent.OpQueryIDs)
	if err = agq.Select(accessgrant.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (agq *AccessGrantQuery) IDsX(ctx context.Context) []uint32 {
	ids, err := agq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (agq *AccessGrantQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, agq.ctx, ent.OpQueryCount)
	if err := agq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, agq, querierCount[*AccessGrantQuery](), agq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (agq *AccessGrantQuery) CountX(ctx context.Context) int {
	count, err := agq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (agq *AccessGrantQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, agq.ctx, ent.OpQueryExist)
	switch _, err := agq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (agq *AccessGrantQuery) ExistX(ctx context.Context) bool {
	exist, err := agq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AccessGrantQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (agq *AccessGrantQuery) Clone() *AccessGrantQuery {
	if agq == nil {
		return nil
	}
	return &AccessGrantQuery{
		config:        agq.config,
		ctx:           agq.ctx.Clone(),
		order:         append([]accessgrant.OrderOption{}, agq.order...),
		inters:        append([]Interceptor{}, agq.inters...),
		predicates:    append([]predicate.AccessGrant{}, agq.predicates...),
		withDashboard: agq.withDashboard.Clone(),
		// clone intermediate query.
		sql:  agq.sql.Clone(),
		path: agq.path,
	}
}

// WithDashboard tells the query-builder to eager-load the nodes that are connected to
// the "dashboard" edge. The optional arguments are used to configure the query builder of the edge.
func (agq *AccessGrantQuery) WithDashboard(opts ...func(*DashboardQuery)) *AccessGrantQuery {
	query := (&DashboardClient{config: agq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	agq.withDashboard = query
	return agq
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
//	client.AccessGrant.Query().
//		GroupBy(accessgrant.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (agq *AccessGrantQuery) GroupBy(field string, fields ...string) *AccessGrantGroupBy {
	agq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AccessGrantGroupBy{build: agq}
	grbuild.flds = &agq.ctx.Fields
	grbuild.label = accessgrant.Label
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
//	client.AccessGrant.Query().
//		Select(accessgrant.FieldCreatedAt).
//		Scan(ctx, &v)
func (agq *AccessGrantQuery) Select(fields ...string) *AccessGrantSelect {
	agq.ctx.Fields = append(agq.ctx.Fields, fields...)
	sbuild := &AccessGrantSelect{AccessGrantQuery: agq}
	sbuild.label = accessgrant.Label
	sbuild.flds, sbuild.scan = &agq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AccessGrantSelect configured with the given aggregations.
func (agq *AccessGrantQuery) Aggregate(fns ...AggregateFunc) *AccessGrantSelect {
	return agq.Select().Aggregate(fns...)
}

func (agq *AccessGrantQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range agq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, agq); err != nil {
				return err
			}
		}
	}
	for _, f := range agq.ctx.Fields {
		if !accessgrant.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if agq.path != nil {
		prev, err := agq.path(ctx)
		if err != nil {
			return err
		}
		agq.sql = prev
	}
	return nil
}

func (agq *AccessGrantQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AccessGrant, error) {
	var (
		nodes       = []*AccessGrant{}
		_spec       = agq.querySpec()
		loadedTypes = [1]bool{
			agq.withDashboard != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AccessGrant).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AccessGrant{config: agq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, agq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := agq.withDashboard; query != nil {
		if err := agq.loadDashboard(ctx, query, nodes, nil,
			func(n *AccessGrant, e *Dashboard) { n.Edges.Dashboard = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (agq *AccessGrantQuery) loadDashboard(ctx context.Context, query *DashboardQuery, nodes []*AccessGrant, init func(*AccessGrant), assign func(*AccessGrant, *Dashboard)) error {
	ids := make([]uint32, 0, len(nodes))
	nodeids := make(map[uint32][]*AccessGrant)
	for i := range nodes {
		fk := nodes[i].DashboardID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(dashboard.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "dashboard_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (agq *AccessGrantQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := agq.querySpec()
	_spec.Node.Columns = agq.ctx.Fields
	if len(agq.ctx.Fields) > 0 {
		_spec.Unique = agq.ctx.Unique != nil && *agq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, agq.driver, _spec)
}

func (agq *AccessGrantQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(accessgrant.Table, accessgrant.Columns, sqlgraph.NewFieldSpec(accessgrant.FieldID, field.TypeUint32))
	_spec.From = agq.sql
	if unique := agq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if agq.path != nil {
		_spec.Unique = true
	}
	if fields := agq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accessgrant.FieldID)
		for i := range fields {
			if fields[i] != accessgrant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if agq.withDashboard != nil {
			_spec.Node.AddColumnOnce(accessgrant.FieldDashboardID)
		}
	}
	if ps := agq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := agq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := agq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := agq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (agq *AccessGrantQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(agq.driver.Dialect())
	t1 := builder.Table(accessgrant.Table)
	columns := agq.ctx.Fields
	if len(columns) == 0 {
		columns = accessgrant.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if agq.sql != nil {
		selector = agq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if agq.ctx.Unique != nil && *agq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range agq.predicates {
		p(selector)
	}
	for _, p := range agq.order {
		p(selector)
	}
	if offset := agq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := agq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AccessGrantGroupBy is the group-by builder for AccessGrant entities.
type AccessGrantGroupBy struct {
	selector
	build *AccessGrantQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (aggb *AccessGrantGroupBy) Aggregate(fns ...AggregateFunc) *AccessGrantGroupBy {
	aggb.fns = append(aggb.fns, fns...)
	return aggb
}

// Scan applies the selector query and scans the result into the given value.
func (aggb *AccessGrantGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aggb.build.ctx, ent.OpQueryGroupBy)
	if err := aggb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AccessGrantQuery, *AccessGrantGroupBy](ctx, aggb.build, aggb, aggb.build.inters, v)
}

func (aggb *AccessGrantGroupBy) sqlScan(ctx context.Context, root *AccessGrantQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(aggb.fns))
	for _, fn := range aggb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*aggb.flds)+len(aggb.fns))
		for _, f := range *aggb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*aggb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aggb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AccessGrantSelect is the builder for selecting fields of AccessGrant entities.
type AccessGrantSelect struct {
	*AccessGrantQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ags *AccessGrantSelect) Aggregate(fns ...AggregateFunc) *AccessGrantSelect {
	ags.fns = append(ags.fns, fns...)
	return ags
}

// Scan applies the selector query and scans the result into the given value.
func (ags *AccessGrantSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ags.ctx, ent.OpQuerySelect)
	if err := ags.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AccessGrantQuery, *AccessGrantSelect](ctx, ags.AccessGrantQuery, ags, ags.inters, v)
}

func (ags *AccessGrantSelect) sqlScan(ctx context.Context, root *AccessGrantQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ags.fns))
	for _, fn := range ags.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ags.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ags.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
