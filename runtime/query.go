package runtime

// ModelQuery is implemented by every query against a model.
type ModelQuery interface {
	// Operation returns the operation the query performs.
	Operation() ModelOperation
	// Model returns the targeted model.
	Model() Model
	// Selection returns the root selection of the request.
	Selection() Selection
}

// Capabilities. A query type implements exactly the interfaces its
// operation supports.
type (
	// WhereQuery is a query that accepts filters.
	WhereQuery[W WhereInput] interface {
		ModelQuery
		AddWhere(params ...W)
	}
	// WithQuery is a query that can eager-load relations.
	WithQuery[I WithInput] interface {
		ModelQuery
		AddWith(params ...I)
	}
	// OrderByQuery is a query that accepts ordering.
	OrderByQuery[O OrderByInput] interface {
		ModelQuery
		AddOrderBy(params ...O)
	}
	// PaginatedQuery is a query that accepts a cursor, skip and take.
	PaginatedQuery[C WhereInput] interface {
		ModelQuery
		AddCursor(params ...C)
		SetSkip(n int64)
		SetTake(n int64)
	}
	// SetQuery is a query that writes field values.
	SetQuery[S SetInput] interface {
		ModelQuery
		AddSet(params ...S)
	}
)

// query holds the state shared by all query types. Arguments are always
// emitted in the order where, data, orderBy, cursor, skip, take.
type query struct {
	op    ModelOperation
	model Model

	where       []Field
	uniqueWhere bool

	data    []Field
	hasData bool
	create  []Field
	update  []Field
	rows    [][]Field

	orderBy []Field
	cursor  []Field
	skip    *int64
	take    *int64

	skipDuplicates bool

	with []Selection
	// nested replaces the model selections when set.
	nested []Selection
}

func newQuery(op ModelOperation, model Model) query {
	return query{op: op, model: model}
}

// Operation implements ModelQuery.
func (q *query) Operation() ModelOperation { return q.op }

// Model implements ModelQuery.
func (q *query) Model() Model { return q.model }

// Selection implements ModelQuery.
func (q *query) Selection() Selection {
	nested := q.nested
	if nested == nil {
		nested = append(q.model.ScalarSelections(), q.with...)
	}
	return BaseSelection(q.op, q.model, q.arguments(), nested)
}

// Arguments returns the root selection arguments.
func (q *query) Arguments() []Field { return q.arguments() }

func (q *query) arguments() []Field {
	var args []Field
	if q.uniqueWhere || len(q.where) > 0 {
		args = append(args, Field{Name: "where", Value: Object(transformAll(q.where)...)})
	}
	switch {
	case q.op == OpUpsert:
		args = append(args,
			Field{Name: "create", Value: Object(q.create...)},
			Field{Name: "update", Value: Object(q.update...)},
		)
	case q.op == OpCreateMany:
		rows := make([]Value, len(q.rows))
		for i, r := range q.rows {
			rows[i] = Object(r...)
		}
		args = append(args, Field{Name: "data", Value: List(rows...)})
	case q.hasData:
		args = append(args, Field{Name: "data", Value: Object(q.data...)})
	}
	if len(q.orderBy) > 0 {
		vs := make([]Value, len(q.orderBy))
		for i, o := range q.orderBy {
			vs[i] = Object(o)
		}
		args = append(args, Field{Name: "orderBy", Value: List(vs...)})
	}
	if len(q.cursor) > 0 {
		args = append(args, Field{Name: "cursor", Value: Object(transformAll(q.cursor)...)})
	}
	if q.skip != nil {
		args = append(args, Field{Name: "skip", Value: Scalar(*q.skip)})
	}
	if q.take != nil {
		args = append(args, Field{Name: "take", Value: Scalar(*q.take)})
	}
	if q.skipDuplicates {
		args = append(args, Field{Name: "skipDuplicates", Value: Bool(true)})
	}
	return args
}

func (q *query) setSkip(n int64) { q.skip = &n }

func (q *query) setTake(n int64) { q.take = &n }

// countSelection is the nested selection of write-many operations.
var countSelection = []Selection{{Name: "count"}}
