package runtime

// FindUnique looks up a single record by a unique filter.
type FindUnique[I WithInput] struct {
	query
}

// NewFindUnique returns a findUnique query. where holds the serialized
// unique filters.
func NewFindUnique[I WithInput](model Model, where []Field) *FindUnique[I] {
	q := &FindUnique[I]{query: newQuery(OpFindUnique, model)}
	q.where = where
	q.uniqueWhere = true
	return q
}

// With eager-loads relations.
func (q *FindUnique[I]) With(params ...I) *FindUnique[I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *FindUnique[I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

// FindFirst returns the first record matching the filters.
type FindFirst[W WhereInput, O OrderByInput, C WhereInput, I WithInput] struct {
	query
}

// NewFindFirst returns a findFirst query.
func NewFindFirst[W WhereInput, O OrderByInput, C WhereInput, I WithInput](model Model, where []Field) *FindFirst[W, O, C, I] {
	q := &FindFirst[W, O, C, I]{query: newQuery(OpFindFirst, model)}
	q.where = where
	return q
}

// Where adds filters.
func (q *FindFirst[W, O, C, I]) Where(params ...W) *FindFirst[W, O, C, I] {
	q.AddWhere(params...)
	return q
}

// AddWhere implements WhereQuery.
func (q *FindFirst[W, O, C, I]) AddWhere(params ...W) {
	q.where = append(q.where, WhereFields(params)...)
}

// OrderBy adds ordering.
func (q *FindFirst[W, O, C, I]) OrderBy(params ...O) *FindFirst[W, O, C, I] {
	q.AddOrderBy(params...)
	return q
}

// AddOrderBy implements OrderByQuery.
func (q *FindFirst[W, O, C, I]) AddOrderBy(params ...O) {
	q.orderBy = append(q.orderBy, OrderByFields(params)...)
}

// Cursor starts the result at the record matching the unique filters.
func (q *FindFirst[W, O, C, I]) Cursor(params ...C) *FindFirst[W, O, C, I] {
	q.AddCursor(params...)
	return q
}

// AddCursor implements PaginatedQuery.
func (q *FindFirst[W, O, C, I]) AddCursor(params ...C) {
	q.cursor = append(q.cursor, WhereFields(params)...)
}

// Skip skips n records.
func (q *FindFirst[W, O, C, I]) Skip(n int64) *FindFirst[W, O, C, I] {
	q.SetSkip(n)
	return q
}

// SetSkip implements PaginatedQuery.
func (q *FindFirst[W, O, C, I]) SetSkip(n int64) { q.setSkip(n) }

// Take limits the result to n records.
func (q *FindFirst[W, O, C, I]) Take(n int64) *FindFirst[W, O, C, I] {
	q.SetTake(n)
	return q
}

// SetTake implements PaginatedQuery.
func (q *FindFirst[W, O, C, I]) SetTake(n int64) { q.setTake(n) }

// With eager-loads relations.
func (q *FindFirst[W, O, C, I]) With(params ...I) *FindFirst[W, O, C, I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *FindFirst[W, O, C, I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

// FindMany returns all records matching the filters.
type FindMany[W WhereInput, O OrderByInput, C WhereInput, I WithInput] struct {
	query
}

// NewFindMany returns a findMany query.
func NewFindMany[W WhereInput, O OrderByInput, C WhereInput, I WithInput](model Model, where []Field) *FindMany[W, O, C, I] {
	q := &FindMany[W, O, C, I]{query: newQuery(OpFindMany, model)}
	q.where = where
	return q
}

// Where adds filters.
func (q *FindMany[W, O, C, I]) Where(params ...W) *FindMany[W, O, C, I] {
	q.AddWhere(params...)
	return q
}

// AddWhere implements WhereQuery.
func (q *FindMany[W, O, C, I]) AddWhere(params ...W) {
	q.where = append(q.where, WhereFields(params)...)
}

// OrderBy adds ordering.
func (q *FindMany[W, O, C, I]) OrderBy(params ...O) *FindMany[W, O, C, I] {
	q.AddOrderBy(params...)
	return q
}

// AddOrderBy implements OrderByQuery.
func (q *FindMany[W, O, C, I]) AddOrderBy(params ...O) {
	q.orderBy = append(q.orderBy, OrderByFields(params)...)
}

// Cursor starts the result at the record matching the unique filters.
func (q *FindMany[W, O, C, I]) Cursor(params ...C) *FindMany[W, O, C, I] {
	q.AddCursor(params...)
	return q
}

// AddCursor implements PaginatedQuery.
func (q *FindMany[W, O, C, I]) AddCursor(params ...C) {
	q.cursor = append(q.cursor, WhereFields(params)...)
}

// Skip skips n records.
func (q *FindMany[W, O, C, I]) Skip(n int64) *FindMany[W, O, C, I] {
	q.SetSkip(n)
	return q
}

// SetSkip implements PaginatedQuery.
func (q *FindMany[W, O, C, I]) SetSkip(n int64) { q.setSkip(n) }

// Take limits the result to n records.
func (q *FindMany[W, O, C, I]) Take(n int64) *FindMany[W, O, C, I] {
	q.SetTake(n)
	return q
}

// SetTake implements PaginatedQuery.
func (q *FindMany[W, O, C, I]) SetTake(n int64) { q.setTake(n) }

// With eager-loads relations.
func (q *FindMany[W, O, C, I]) With(params ...I) *FindMany[W, O, C, I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *FindMany[W, O, C, I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

// Count counts the records matching the filters.
type Count[W WhereInput, O OrderByInput, C WhereInput] struct {
	query
}

// NewCount returns an aggregate query selecting the record count.
func NewCount[W WhereInput, O OrderByInput, C WhereInput](model Model, where []Field) *Count[W, O, C] {
	q := &Count[W, O, C]{query: newQuery(OpCount, model)}
	q.where = where
	q.nested = []Selection{Select("_count", Select("_all"))}
	return q
}

// Where adds filters.
func (q *Count[W, O, C]) Where(params ...W) *Count[W, O, C] {
	q.AddWhere(params...)
	return q
}

// AddWhere implements WhereQuery.
func (q *Count[W, O, C]) AddWhere(params ...W) {
	q.where = append(q.where, WhereFields(params)...)
}

// OrderBy adds ordering.
func (q *Count[W, O, C]) OrderBy(params ...O) *Count[W, O, C] {
	q.AddOrderBy(params...)
	return q
}

// AddOrderBy implements OrderByQuery.
func (q *Count[W, O, C]) AddOrderBy(params ...O) {
	q.orderBy = append(q.orderBy, OrderByFields(params)...)
}

// Cursor starts counting at the record matching the unique filters.
func (q *Count[W, O, C]) Cursor(params ...C) *Count[W, O, C] {
	q.AddCursor(params...)
	return q
}

// AddCursor implements PaginatedQuery.
func (q *Count[W, O, C]) AddCursor(params ...C) {
	q.cursor = append(q.cursor, WhereFields(params)...)
}

// Skip skips n records.
func (q *Count[W, O, C]) Skip(n int64) *Count[W, O, C] {
	q.SetSkip(n)
	return q
}

// SetSkip implements PaginatedQuery.
func (q *Count[W, O, C]) SetSkip(n int64) { q.setSkip(n) }

// Take counts at most n records.
func (q *Count[W, O, C]) Take(n int64) *Count[W, O, C] {
	q.SetTake(n)
	return q
}

// SetTake implements PaginatedQuery.
func (q *Count[W, O, C]) SetTake(n int64) { q.setTake(n) }

var (
	_ WithQuery[WithInput]       = (*FindUnique[WithInput])(nil)
	_ WhereQuery[WhereInput]     = (*FindFirst[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ OrderByQuery[OrderByInput] = (*FindFirst[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ PaginatedQuery[WhereInput] = (*FindFirst[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ WithQuery[WithInput]       = (*FindFirst[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ WhereQuery[WhereInput]     = (*FindMany[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ OrderByQuery[OrderByInput] = (*FindMany[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ PaginatedQuery[WhereInput] = (*FindMany[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ WithQuery[WithInput]       = (*FindMany[WhereInput, OrderByInput, WhereInput, WithInput])(nil)
	_ WhereQuery[WhereInput]     = (*Count[WhereInput, OrderByInput, WhereInput])(nil)
	_ PaginatedQuery[WhereInput] = (*Count[WhereInput, OrderByInput, WhereInput])(nil)
	_ OrderByQuery[OrderByInput] = (*Count[WhereInput, OrderByInput, WhereInput])(nil)
)
