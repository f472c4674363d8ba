package schema

import (
	"slices"
)

// Kind classifies how a field is stored and filtered.
type Kind uint8

// Field kinds.
const (
	// KindScalar is a plain value field: a scalar type or an enum.
	KindScalar Kind = iota
	// KindRelation points at another entity.
	KindRelation
	// KindComposite holds a structured value described by a Composite.
	KindComposite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRelation:
		return "relation"
	case KindComposite:
		return "composite"
	default:
		return "invalid"
	}
}

// Arity tells whether a field holds one required value, an optional value
// or a list of values.
type Arity uint8

// Field arities.
const (
	Required Arity = iota
	Optional
	List
)

// String returns the arity name.
func (a Arity) String() string {
	switch a {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case List:
		return "list"
	default:
		return "invalid"
	}
}

// ScalarType names a builtin scalar type of the data model.
type ScalarType string

// Builtin scalar types.
const (
	TypeString      ScalarType = "String"
	TypeInt         ScalarType = "Int"
	TypeBigInt      ScalarType = "BigInt"
	TypeFloat       ScalarType = "Float"
	TypeDecimal     ScalarType = "Decimal"
	TypeBoolean     ScalarType = "Boolean"
	TypeDateTime    ScalarType = "DateTime"
	TypeJSON        ScalarType = "Json"
	TypeBytes       ScalarType = "Bytes"
	TypeUnsupported ScalarType = "Unsupported"
)

// Builtin reports whether t is one of the builtin scalar types other than
// TypeUnsupported.
func (t ScalarType) Builtin() bool {
	switch t {
	case TypeString, TypeInt, TypeBigInt, TypeFloat, TypeDecimal,
		TypeBoolean, TypeDateTime, TypeJSON, TypeBytes:
		return true
	}
	return false
}

type (
	// Field describes one field of an entity or composite type.
	Field struct {
		// Name is the field name as declared in the data model.
		Name string
		// Kind is the storage kind of the field.
		Kind Kind
		// Arity is required, optional or list.
		Arity Arity
		// Type is the scalar type, the enum name, the composite name or
		// the related entity name, depending on Kind and Enum.
		Type ScalarType
		// Enum is set when a scalar field holds an enum value. Type then
		// names the enum.
		Enum bool
		// IsUnique is set by a single-field unique constraint on the field.
		IsUnique bool
		// IsPrimaryKey is set when the field is (part of) the primary key.
		IsPrimaryKey bool
		// HasDefault is set when the data model provides a default value.
		HasDefault bool
		// RelationMethods lists the relation filters available on a
		// relation field (is, isNot, every, some, none).
		RelationMethods []string
	}

	// Entity is a modeled data type backed by storage.
	Entity struct {
		Name   string
		Fields []*Field
		// PrimaryKey lists the primary key field names, in order.
		PrimaryKey []string
		// UniqueIndexes lists the unique indexes, each as field names.
		UniqueIndexes [][]string
	}

	// Composite is a structured value type embedded in entities.
	Composite struct {
		Name   string
		Fields []*Field
	}

	// Enum is a named set of values.
	Enum struct {
		Name   string
		Values []string
	}
)

// Optional reports whether the field is optional.
func (f *Field) Optional() bool { return f.Arity == Optional }

// IsList reports whether the field holds a list.
func (f *Field) IsList() bool { return f.Arity == List }

// Required reports whether the field is a required single value.
func (f *Field) Required() bool { return f.Arity == Required }

// RequiredOnCreate reports whether a value must be supplied when a record
// holding this field is created.
func (f *Field) RequiredOnCreate() bool {
	return f.Arity == Required && !f.HasDefault
}

// RelatedEntity returns the entity a relation field points at, or "".
func (f *Field) RelatedEntity() string {
	if f.Kind != KindRelation {
		return ""
	}
	return string(f.Type)
}

// Field returns the field with the given name.
func (e *Entity) Field(name string) (*Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// SolePrimaryKey reports whether name is the only primary key field.
func (e *Entity) SolePrimaryKey(name string) bool {
	pk := e.Key()
	return len(pk) == 1 && pk[0] == name
}

// Key returns the field names of the primary key. Without an explicit
// key it falls back to the fields flagged as part of the primary key.
func (e *Entity) Key() []string {
	if len(e.PrimaryKey) > 0 {
		return e.PrimaryKey
	}
	var pk []string
	for _, f := range e.Fields {
		if f.IsPrimaryKey {
			pk = append(pk, f.Name)
		}
	}
	return pk
}

// SingleUnique reports whether the field is covered by a single-field
// unique constraint, either on the field itself or as a one-column index.
func (e *Entity) SingleUnique(name string) bool {
	if f, ok := e.Field(name); ok && f.IsUnique {
		return true
	}
	return slices.ContainsFunc(e.UniqueIndexes, func(idx []string) bool {
		return len(idx) == 1 && idx[0] == name
	})
}

// Field returns the field with the given name.
func (c *Composite) Field(name string) (*Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Walker exposes a resolved data model to the generator.
type Walker interface {
	// Entities returns all entities in declaration order.
	Entities() []*Entity
	// Composites returns all composite types in declaration order.
	Composites() []*Composite
	// Enums returns all enums in declaration order.
	Enums() []*Enum
	// Entity looks up an entity by name.
	Entity(name string) (*Entity, bool)
	// Composite looks up a composite type by name.
	Composite(name string) (*Composite, bool)
	// Enum looks up an enum by name.
	Enum(name string) (*Enum, bool)
	// Catalogue returns the filter methods available for a field.
	Catalogue(f *Field) (*Catalogue, bool)
}

// Schema is the in-memory Walker.
type Schema struct {
	entities   []*Entity
	composites []*Composite
	enums      []*Enum
	catalogues map[ScalarType]*Catalogue
}

// New returns a Schema over the given descriptors using the default filter
// catalogues.
func New(entities []*Entity, composites []*Composite, enums []*Enum) *Schema {
	return &Schema{
		entities:   entities,
		composites: composites,
		enums:      enums,
		catalogues: DefaultCatalogues(),
	}
}

// WithCatalogue overrides the filter catalogue of a scalar type.
func (s *Schema) WithCatalogue(t ScalarType, c *Catalogue) *Schema {
	s.catalogues[t] = c
	return s
}

// Entities implements Walker.
func (s *Schema) Entities() []*Entity { return s.entities }

// Composites implements Walker.
func (s *Schema) Composites() []*Composite { return s.composites }

// Enums implements Walker.
func (s *Schema) Enums() []*Enum { return s.enums }

// Entity implements Walker.
func (s *Schema) Entity(name string) (*Entity, bool) {
	for _, e := range s.entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Composite implements Walker.
func (s *Schema) Composite(name string) (*Composite, bool) {
	for _, c := range s.composites {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Enum implements Walker.
func (s *Schema) Enum(name string) (*Enum, bool) {
	for _, e := range s.enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Catalogue implements Walker. Enum fields share the enum catalogue.
func (s *Schema) Catalogue(f *Field) (*Catalogue, bool) {
	if f.Kind != KindScalar {
		return nil, false
	}
	if f.Enum {
		if _, ok := s.Enum(string(f.Type)); !ok {
			return nil, false
		}
		return s.catalogues[enumCatalogue], true
	}
	c, ok := s.catalogues[f.Type]
	return c, ok
}

var _ Walker = (*Schema)(nil)
