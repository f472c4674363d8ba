package runtime

// Field is a named wire value: a serialized parameter, an object entry or a
// selection argument.
type Field struct {
	Name  string `json:"name" msgpack:"name"`
	Value Value  `json:"value" msgpack:"value"`
}

// Parameter interfaces implemented by generated variants.
type (
	// WhereInput is a filter parameter.
	WhereInput interface {
		WhereField() Field
	}
	// SetInput is a mutation parameter.
	SetInput interface {
		SetField() Field
	}
	// OrderByInput is an ordering parameter.
	OrderByInput interface {
		OrderByField() Field
	}
	// WithInput is an eager-load parameter.
	WithInput interface {
		WithSelection() Selection
	}
)

// WhereFields serializes filter parameters in order.
func WhereFields[W WhereInput](params []W) []Field {
	fs := make([]Field, len(params))
	for i, p := range params {
		fs[i] = p.WhereField()
	}
	return fs
}

// WhereGroups serializes groups of filter parameters, one slice per group.
func WhereGroups[W WhereInput](groups [][]W) [][]Field {
	out := make([][]Field, len(groups))
	for i, g := range groups {
		out[i] = WhereFields(g)
	}
	return out
}

// SetFields serializes mutation parameters in order.
func SetFields[S SetInput](params []S) []Field {
	fs := make([]Field, len(params))
	for i, p := range params {
		fs[i] = p.SetField()
	}
	return fs
}

// SetRows serializes the rows of a batch create, one slice per row.
func SetRows[S SetInput](rows [][]S) [][]Field {
	out := make([][]Field, len(rows))
	for i, r := range rows {
		out[i] = SetFields(r)
	}
	return out
}

// OrderByFields serializes ordering parameters in order.
func OrderByFields[O OrderByInput](params []O) []Field {
	fs := make([]Field, len(params))
	for i, p := range params {
		fs[i] = p.OrderByField()
	}
	return fs
}

// WithSelections turns eager-load parameters into nested selections.
func WithSelections[I WithInput](params []I) []Selection {
	ss := make([]Selection, len(params))
	for i, p := range params {
		ss[i] = p.WithSelection()
	}
	return ss
}

// TransformEquals collapses a filter of the form (field, {equals: v}) into
// (field, v), which the engine accepts as shorthand.
func TransformEquals(f Field) Field {
	if fs, ok := f.Value.AsObject(); ok && len(fs) == 1 && fs[0].Name == "equals" {
		return Field{Name: f.Name, Value: fs[0].Value}
	}
	return f
}

func transformAll(fs []Field) []Field {
	out := make([]Field, len(fs))
	for i, f := range fs {
		out[i] = TransformEquals(f)
	}
	return out
}

// SortOrder is the direction of an ordering parameter.
type SortOrder string

// Sort orders.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// IsNull builds (field, null).
func IsNull(field string) Field {
	return Field{Name: field, Value: Null()}
}

// IsSet builds (field, true).
func IsSet(field string) Field {
	return Field{Name: field, Value: Bool(true)}
}

// Flag builds (field, {method: true}).
func Flag(field, method string) Field {
	return Field{Name: field, Value: Object(Field{Name: method, Value: Bool(true)})}
}

// Where builds (field, {method: {params...}}) with equals shorthand applied
// to every nested filter.
func Where(field, method string, params []Field) Field {
	return Field{Name: field, Value: Object(
		Field{Name: method, Value: Object(transformAll(params)...)},
	)}
}

// WhereList builds (field, {method: [{params...}, ...]}), one object per
// group of filters.
func WhereList(field, method string, groups [][]Field) Field {
	vs := make([]Value, len(groups))
	for i, g := range groups {
		vs[i] = Object(transformAll(g)...)
	}
	return Field{Name: field, Value: Object(Field{Name: method, Value: List(vs...)})}
}

// WhereEach builds (field, {method: [{param}, ...]}), one object per filter.
func WhereEach(field, method string, params []Field) Field {
	vs := make([]Value, len(params))
	for i, p := range params {
		vs[i] = Object(TransformEquals(p))
	}
	return Field{Name: field, Value: Object(Field{Name: method, Value: List(vs...)})}
}

// Method builds (field, {method: value}).
func Method(field, method string, value any) Field {
	return Field{Name: field, Value: Object(Field{Name: method, Value: ValueOf(value)})}
}

// Data builds (field, {method: {params...}}), or (field, {params...}) when
// method is empty.
func Data(field, method string, params []Field) Field {
	obj := Object(params...)
	if method == "" {
		return Field{Name: field, Value: obj}
	}
	return Field{Name: field, Value: Object(Field{Name: method, Value: obj})}
}

// SetValue builds (field, value).
func SetValue(field string, value any) Field {
	return Field{Name: field, Value: ValueOf(value)}
}

// UpsertField builds (field, {upsert: {set: create, update: {params...}}}).
func UpsertField(field string, create any, update []Field) Field {
	return Field{Name: field, Value: Object(Field{Name: "upsert", Value: Object(
		Field{Name: "set", Value: ValueOf(create)},
		Field{Name: "update", Value: Object(update...)},
	)})}
}

// UpdateManyField builds (field, {updateMany: {where: {...}, data: {...}}}).
func UpdateManyField(field string, where, data []Field) Field {
	return Field{Name: field, Value: Object(Field{Name: "updateMany", Value: Object(
		Field{Name: "where", Value: Object(transformAll(where)...)},
		Field{Name: "data", Value: Object(data...)},
	)})}
}

// DeleteManyField builds (field, {deleteMany: {where: {...}}}).
func DeleteManyField(field string, where []Field) Field {
	return Field{Name: field, Value: Object(Field{Name: "deleteMany", Value: Object(
		Field{Name: "where", Value: Object(transformAll(where)...)},
	)})}
}
