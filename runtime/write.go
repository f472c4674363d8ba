package runtime

// Create inserts one record.
type Create[S SetInput, I WithInput] struct {
	query
}

// NewCreate returns a createOne query. data holds the serialized required
// fields followed by optional set parameters.
func NewCreate[S SetInput, I WithInput](model Model, data []Field) *Create[S, I] {
	q := &Create[S, I]{query: newQuery(OpCreate, model)}
	q.data = data
	q.hasData = true
	return q
}

// Set adds field values.
func (q *Create[S, I]) Set(params ...S) *Create[S, I] {
	q.AddSet(params...)
	return q
}

// AddSet implements SetQuery.
func (q *Create[S, I]) AddSet(params ...S) {
	q.data = append(q.data, SetFields(params)...)
}

// With eager-loads relations of the created record.
func (q *Create[S, I]) With(params ...I) *Create[S, I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *Create[S, I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

// CreateMany inserts a batch of records and selects the affected count.
type CreateMany[S SetInput] struct {
	query
}

// NewCreateMany returns a createMany query, one serialized row per record.
func NewCreateMany[S SetInput](model Model, rows [][]Field) *CreateMany[S] {
	q := &CreateMany[S]{query: newQuery(OpCreateMany, model)}
	q.rows = rows
	q.nested = countSelection
	return q
}

// SkipDuplicates ignores records that violate a unique constraint.
func (q *CreateMany[S]) SkipDuplicates() *CreateMany[S] {
	q.skipDuplicates = true
	return q
}

// Update modifies the record matching a unique filter.
type Update[S SetInput, I WithInput] struct {
	query
}

// NewUpdate returns an updateOne query.
func NewUpdate[S SetInput, I WithInput](model Model, where, data []Field) *Update[S, I] {
	q := &Update[S, I]{query: newQuery(OpUpdate, model)}
	q.where = where
	q.uniqueWhere = true
	q.data = data
	q.hasData = true
	return q
}

// Set adds field values.
func (q *Update[S, I]) Set(params ...S) *Update[S, I] {
	q.AddSet(params...)
	return q
}

// AddSet implements SetQuery.
func (q *Update[S, I]) AddSet(params ...S) {
	q.data = append(q.data, SetFields(params)...)
}

// With eager-loads relations of the updated record.
func (q *Update[S, I]) With(params ...I) *Update[S, I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *Update[S, I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

// UpdateMany modifies every record matching the filters and selects the
// affected count.
type UpdateMany[W WhereInput, S SetInput] struct {
	query
}

// NewUpdateMany returns an updateMany query.
func NewUpdateMany[W WhereInput, S SetInput](model Model, where, data []Field) *UpdateMany[W, S] {
	q := &UpdateMany[W, S]{query: newQuery(OpUpdateMany, model)}
	q.where = where
	q.data = data
	q.hasData = true
	q.nested = countSelection
	return q
}

// Where adds filters.
func (q *UpdateMany[W, S]) Where(params ...W) *UpdateMany[W, S] {
	q.AddWhere(params...)
	return q
}

// AddWhere implements WhereQuery.
func (q *UpdateMany[W, S]) AddWhere(params ...W) {
	q.where = append(q.where, WhereFields(params)...)
}

// Set adds field values.
func (q *UpdateMany[W, S]) Set(params ...S) *UpdateMany[W, S] {
	q.AddSet(params...)
	return q
}

// AddSet implements SetQuery.
func (q *UpdateMany[W, S]) AddSet(params ...S) {
	q.data = append(q.data, SetFields(params)...)
}

// Delete removes the record matching a unique filter.
type Delete[I WithInput] struct {
	query
}

// NewDelete returns a deleteOne query.
func NewDelete[I WithInput](model Model, where []Field) *Delete[I] {
	q := &Delete[I]{query: newQuery(OpDelete, model)}
	q.where = where
	q.uniqueWhere = true
	return q
}

// With eager-loads relations of the deleted record.
func (q *Delete[I]) With(params ...I) *Delete[I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *Delete[I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

// DeleteMany removes every record matching the filters and selects the
// affected count.
type DeleteMany[W WhereInput] struct {
	query
}

// NewDeleteMany returns a deleteMany query.
func NewDeleteMany[W WhereInput](model Model, where []Field) *DeleteMany[W] {
	q := &DeleteMany[W]{query: newQuery(OpDeleteMany, model)}
	q.where = where
	q.nested = countSelection
	return q
}

// Where adds filters.
func (q *DeleteMany[W]) Where(params ...W) *DeleteMany[W] {
	q.AddWhere(params...)
	return q
}

// AddWhere implements WhereQuery.
func (q *DeleteMany[W]) AddWhere(params ...W) {
	q.where = append(q.where, WhereFields(params)...)
}

// Upsert updates the record matching a unique filter or creates it.
type Upsert[S SetInput, I WithInput] struct {
	query
}

// NewUpsert returns an upsertOne query.
func NewUpsert[S SetInput, I WithInput](model Model, where, create, update []Field) *Upsert[S, I] {
	q := &Upsert[S, I]{query: newQuery(OpUpsert, model)}
	q.where = where
	q.uniqueWhere = true
	q.create = create
	q.update = update
	return q
}

// With eager-loads relations of the resulting record.
func (q *Upsert[S, I]) With(params ...I) *Upsert[S, I] {
	q.AddWith(params...)
	return q
}

// AddWith implements WithQuery.
func (q *Upsert[S, I]) AddWith(params ...I) {
	q.with = append(q.with, WithSelections(params)...)
}

var (
	_ SetQuery[SetInput]     = (*Create[SetInput, WithInput])(nil)
	_ WithQuery[WithInput]   = (*Create[SetInput, WithInput])(nil)
	_ ModelQuery             = (*CreateMany[SetInput])(nil)
	_ SetQuery[SetInput]     = (*Update[SetInput, WithInput])(nil)
	_ WithQuery[WithInput]   = (*Update[SetInput, WithInput])(nil)
	_ WhereQuery[WhereInput] = (*UpdateMany[WhereInput, SetInput])(nil)
	_ SetQuery[SetInput]     = (*UpdateMany[WhereInput, SetInput])(nil)
	_ WithQuery[WithInput]   = (*Delete[WithInput])(nil)
	_ WhereQuery[WhereInput] = (*DeleteMany[WhereInput])(nil)
	_ WithQuery[WithInput]   = (*Upsert[SetInput, WithInput])(nil)
)
