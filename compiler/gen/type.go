package gen

import (
	"fmt"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// The following types hold the synthesized API of a data model. They are
// built once by NewGraph and are read-only afterwards.
type (
	// Type is an entity or composite type with its parameter enums and
	// field accessors.
	Type struct {
		// Name holds the data model name of the type.
		Name string
		// Entity is set for entities.
		Entity *schema.Entity
		// Composite is set for composite types.
		Composite *schema.Composite
		// Fields holds the field accessors in declaration order.
		Fields []*Field
		// Compounds holds the multi-field unique lookups of an entity.
		Compounds []*Compound
		// Creatable reports whether a composite create input can be built
		// from representable fields.
		Creatable bool

		Where       *Enum
		UniqueWhere *Enum
		Set         *Enum
		OrderBy     *Enum
		With        *Enum
	}

	// Field is the accessor of one field and the builders it exposes.
	Field struct {
		*schema.Field
		// Owner is the type holding the field.
		Owner *Type
		// Accessor is the exported accessor name, e.g. Posts.
		Accessor string
		// Uniqueness of the field within its entity.
		Uniqueness Uniqueness
		// Caps holds the variant families of the field.
		Caps Capability
		// Builders holds the accessor methods in synthesis order.
		Builders []*Builder
	}

	// Compound is a unique lookup over several fields, e.g. a compound
	// primary key.
	Compound struct {
		// Name is the engine name, the field names joined by "_".
		Name     string
		Accessor string
		Fields   []*schema.Field
		Builder  *Builder
	}
)

func newType(name string) *Type {
	whereTags := make(map[string]EnumKind)
	return &Type{
		Name:        name,
		Where:       newEnum(name, WhereParam, whereTags),
		UniqueWhere: newEnum(name, UniqueWhereParam, whereTags),
		Set:         newEnum(name, SetParam, nil),
		OrderBy:     newEnum(name, OrderByParam, nil),
		With:        newEnum(name, WithParam, nil),
	}
}

// IsComposite reports whether t is a composite type.
func (t *Type) IsComposite() bool { return t.Composite != nil }

// Enum returns the parameter enum of the given kind.
func (t *Type) Enum(k EnumKind) *Enum {
	switch k {
	case WhereParam:
		return t.Where
	case UniqueWhereParam:
		return t.UniqueWhere
	case SetParam:
		return t.Set
	case OrderByParam:
		return t.OrderBy
	default:
		return t.With
	}
}

// Enums returns the parameter enums in emission order. Composites have no
// unique lookups and no eager loading.
func (t *Type) Enums() []*Enum {
	if t.IsComposite() {
		return []*Enum{t.Where, t.Set, t.OrderBy}
	}
	return []*Enum{t.Where, t.UniqueWhere, t.Set, t.OrderBy, t.With}
}

// Field returns the accessor of the named field.
func (t *Type) Field(name string) (*Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Names of generated declarations.

// ParamTypeName returns the interface name of a parameter enum of the named
// type, e.g. UserWhereParam.
func ParamTypeName(name string, k EnumKind) string { return pascal(name) + k.String() }

// CreateTypeName returns the name of the create input of a composite.
func CreateTypeName(name string) string { return pascal(name) + "Create" }

// EnumTypeName returns the Go type name of a user enum.
func EnumTypeName(name string) string { return pascal(name) }

// ParamType returns the interface name of a parameter enum of t.
func (t *Type) ParamType(k EnumKind) string { return ParamTypeName(t.Name, k) }

// VariantType returns the struct name of a variant, e.g. userWhereParamPostsSome.
func (t *Type) VariantType(k EnumKind, tag string) string {
	return camel(t.Name) + k.String() + tag
}

// ActionsVar returns the name of the exported value holding the accessors.
func (t *Type) ActionsVar() string { return pascal(t.Name) }

// ActionsType returns the struct name of the actions value.
func (t *Type) ActionsType() string { return camel(t.Name) + "Actions" }

// ModelVar returns the name of the runtime.Model descriptor.
func (t *Type) ModelVar() string { return camel(t.Name) + "Model" }

// ModelType returns the name of the result struct.
func (t *Type) ModelType() string { return pascal(t.Name) + "Model" }

// CreateType returns the name of a composite create input.
func (t *Type) CreateType() string { return CreateTypeName(t.Name) }

// AccessorType returns the struct name of a field accessor.
func (f *Field) AccessorType() string { return camel(f.Owner.Name) + f.Accessor + "Field" }

// DualType returns the exported name of a dual equality value.
func (f *Field) DualType() string { return pascal(f.Owner.Name) + f.Accessor + "Equals" }

// FetchType returns the exported name of an eager-load value.
func (f *Field) FetchType() string { return pascal(f.Owner.Name) + f.Accessor + "Fetch" }

// AccessorType returns the struct name of a compound accessor.
func (c *Compound) AccessorType(owner *Type) string { return camel(owner.Name) + c.Accessor + "Field" }

// Builder returns the named builder.
func (f *Field) Builder(name string) (*Builder, bool) {
	for _, b := range f.Builders {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// add records a variant in enum e and the builder constructing it.
func (f *Field) add(e *Enum, name string, v *Variant) (*Builder, error) {
	if _, ok := f.Builder(name); ok {
		return nil, NewSchemaError(f.Owner.Name, f.Name, fmt.Sprintf("accessor %s defines %s twice", f.Accessor, name), ErrReservedName)
	}
	if err := e.Add(v); err != nil {
		return nil, err
	}
	b := &Builder{Name: name, Variant: v, Returns: e.Kind}
	f.Builders = append(f.Builders, b)
	return b, nil
}

// valueRef returns the payload type of the field's own value: the element
// type wrapped by the arity.
func valueRef(f *schema.Field) TypeRef {
	elem := elemRef(f)
	switch f.Arity {
	case schema.List:
		return ListOf(elem)
	case schema.Optional:
		return OptionalOf(elem)
	default:
		return elem
	}
}

// elemRef returns the element type of a scalar or composite field.
func elemRef(f *schema.Field) TypeRef {
	switch {
	case f.Kind == schema.KindComposite:
		return CreateRef(string(f.Type))
	case f.Enum:
		return EnumRef(string(f.Type))
	default:
		return ScalarRef(f.Type)
	}
}

// wrap applies the field arity to t.
func wrap(f *schema.Field, t TypeRef) TypeRef {
	switch f.Arity {
	case schema.List:
		return ListOf(t)
	case schema.Optional:
		return OptionalOf(t)
	default:
		return t
	}
}
