package runtime

// Fetch eager-loads a relation. It becomes a nested selection named after
// the relation field, carrying the same arguments a findMany would.
type Fetch struct {
	field   string
	model   Model
	where   []Field
	orderBy []Field
	cursor  []Field
	skip    *int64
	take    *int64
	with    []Selection
}

// NewFetch returns a Fetch of the relation field pointing at model.
func NewFetch(field string, model Model, where []Field) *Fetch {
	return &Fetch{field: field, model: model, where: where}
}

// AddWhere adds serialized filters.
func (f *Fetch) AddWhere(where ...Field) { f.where = append(f.where, where...) }

// AddOrderBy adds serialized ordering.
func (f *Fetch) AddOrderBy(orderBy ...Field) { f.orderBy = append(f.orderBy, orderBy...) }

// AddCursor adds serialized cursor filters.
func (f *Fetch) AddCursor(cursor ...Field) { f.cursor = append(f.cursor, cursor...) }

// SetSkip skips n related records.
func (f *Fetch) SetSkip(n int64) { f.skip = &n }

// SetTake limits the relation to n records.
func (f *Fetch) SetTake(n int64) { f.take = &n }

// AddWith nests further eager loads.
func (f *Fetch) AddWith(with ...Selection) { f.with = append(f.with, with...) }

// Selection returns the nested selection.
func (f *Fetch) Selection() Selection {
	q := query{
		where:   f.where,
		orderBy: f.orderBy,
		cursor:  f.cursor,
		skip:    f.skip,
		take:    f.take,
	}
	return Selection{
		Name:      f.field,
		Arguments: q.arguments(),
		Nested:    append(f.model.ScalarSelections(), f.with...),
	}
}
