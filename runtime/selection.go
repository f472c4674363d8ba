package runtime

// Selection is a node of the engine request tree: a named field with an
// optional alias, arguments and nested selections.
type Selection struct {
	Name      string      `json:"name" msgpack:"name"`
	Alias     string      `json:"alias,omitempty" msgpack:"alias,omitempty"`
	Arguments []Field     `json:"arguments,omitempty" msgpack:"arguments,omitempty"`
	Nested    []Selection `json:"nested,omitempty" msgpack:"nested,omitempty"`
}

// Select returns a selection of a single field.
func Select(name string, nested ...Selection) Selection {
	return Selection{Name: name, Nested: nested}
}

// Model describes the model a query targets: its engine name and the
// selections returned by default.
type Model struct {
	Name       string
	Selections []Selection
}

// ScalarSelections returns a copy of the default selections.
func (m Model) ScalarSelections() []Selection {
	return append([]Selection(nil), m.Selections...)
}

// ResultAlias is the alias of the root selection of every model query.
const ResultAlias = "result"

// BaseSelection returns the root selection of a model query: the operation
// name followed by the model name, aliased to ResultAlias. Arguments and
// nested selections keep their order.
func BaseSelection(op ModelOperation, model Model, args []Field, nested []Selection) Selection {
	return Selection{
		Name:      op.Name() + model.Name,
		Alias:     ResultAlias,
		Arguments: args,
		Nested:    nested,
	}
}

// OperationKind tells the engine whether a request reads or writes.
type OperationKind string

// Operation kinds.
const (
	KindQuery    OperationKind = "query"
	KindMutation OperationKind = "mutation"
)

// Operation is a complete engine request.
type Operation struct {
	Kind      OperationKind `json:"kind" msgpack:"kind"`
	Selection Selection     `json:"selection" msgpack:"selection"`
}

// ToOperation builds the engine request for a query.
func ToOperation(q ModelQuery) Operation {
	kind := KindQuery
	if q.Operation().Write() {
		kind = KindMutation
	}
	return Operation{Kind: kind, Selection: q.Selection()}
}
