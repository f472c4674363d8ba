package gen

import (
	"fmt"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// EnumKind names one of the parameter enums generated per type.
type EnumKind uint8

// Parameter enums.
const (
	WhereParam EnumKind = iota
	UniqueWhereParam
	SetParam
	OrderByParam
	WithParam
)

func (k EnumKind) String() string {
	switch k {
	case WhereParam:
		return "WhereParam"
	case UniqueWhereParam:
		return "UniqueWhereParam"
	case SetParam:
		return "SetParam"
	case OrderByParam:
		return "OrderByParam"
	case WithParam:
		return "WithParam"
	default:
		return fmt.Sprintf("EnumKind(%d)", k)
	}
}

// TypeRefKind tags a TypeRef.
type TypeRefKind uint8

// Type reference kinds.
const (
	RefScalar TypeRefKind = iota
	RefEnum
	RefParam
	RefCreate
	RefList
	RefOptional
	RefString
	RefBool
	RefSortOrder
)

// TypeRef is a language-neutral reference to a payload type.
type TypeRef struct {
	Kind TypeRefKind
	// Scalar is set for RefScalar.
	Scalar schema.ScalarType
	// Name is the enum, entity or composite name for RefEnum, RefParam
	// and RefCreate.
	Name string
	// Param is the referenced parameter enum for RefParam.
	Param EnumKind
	// Elem is the element type of RefList and RefOptional.
	Elem *TypeRef
}

// ScalarRef references a builtin scalar type.
func ScalarRef(t schema.ScalarType) TypeRef { return TypeRef{Kind: RefScalar, Scalar: t} }

// EnumRef references a user enum.
func EnumRef(name string) TypeRef { return TypeRef{Kind: RefEnum, Name: name} }

// ParamRef references a parameter enum of an entity or composite.
func ParamRef(name string, k EnumKind) TypeRef { return TypeRef{Kind: RefParam, Name: name, Param: k} }

// CreateRef references the create input of a composite.
func CreateRef(name string) TypeRef { return TypeRef{Kind: RefCreate, Name: name} }

// ListOf wraps a type in a list.
func ListOf(t TypeRef) TypeRef { return TypeRef{Kind: RefList, Elem: &t} }

// OptionalOf wraps a type in a nullable.
func OptionalOf(t TypeRef) TypeRef { return TypeRef{Kind: RefOptional, Elem: &t} }

var (
	// StringRef is a plain string payload.
	StringRef = TypeRef{Kind: RefString}
	// BoolRef is a plain boolean payload.
	BoolRef = TypeRef{Kind: RefBool}
	// SortOrderRef is a sort direction payload.
	SortOrderRef = TypeRef{Kind: RefSortOrder}
)

// String returns a readable form of the reference, e.g. "[]Post.WhereParam".
func (t TypeRef) String() string {
	switch t.Kind {
	case RefScalar:
		return string(t.Scalar)
	case RefEnum:
		return t.Name
	case RefParam:
		return t.Name + "." + t.Param.String()
	case RefCreate:
		return t.Name + ".Create"
	case RefList:
		return "[]" + t.Elem.String()
	case RefOptional:
		return "*" + t.Elem.String()
	case RefString:
		return "string"
	case RefBool:
		return "bool"
	case RefSortOrder:
		return "SortOrder"
	default:
		return "?"
	}
}

// IsList reports whether t is a list.
func (t TypeRef) IsList() bool { return t.Kind == RefList }

// Payload is one named argument of a variant.
type Payload struct {
	Name string
	Type TypeRef
}

// RuleKind selects the serialization of a variant. Every kind maps to one
// function of the runtime package.
type RuleKind uint8

// Serialization rules.
const (
	RuleIsNull RuleKind = iota
	RuleIsSet
	RuleFlag
	RuleWhere
	RuleWhereList
	RuleWhereEach
	RuleMethod
	RuleData
	RuleValue
	RuleUpsert
	RuleUpdateMany
	RuleDeleteMany
	RuleCompound
	RuleFetch
)

var ruleFuncs = [...]string{
	RuleIsNull:     "IsNull",
	RuleIsSet:      "IsSet",
	RuleFlag:       "Flag",
	RuleWhere:      "Where",
	RuleWhereList:  "WhereList",
	RuleWhereEach:  "WhereEach",
	RuleMethod:     "Method",
	RuleData:       "Data",
	RuleValue:      "SetValue",
	RuleUpsert:     "UpsertField",
	RuleUpdateMany: "UpdateManyField",
	RuleDeleteMany: "DeleteManyField",
	RuleCompound:   "Data",
	RuleFetch:      "NewFetch",
}

// Rule is the serialization rule of a variant.
type Rule struct {
	Kind RuleKind
	// Method is the engine method name for rules that take one.
	Method string
}

// Func returns the runtime function implementing the rule.
func (r Rule) Func() string { return ruleFuncs[r.Kind] }

// HasMethod reports whether the runtime function takes a method argument.
func (r Rule) HasMethod() bool {
	switch r.Kind {
	case RuleFlag, RuleWhere, RuleWhereList, RuleWhereEach, RuleMethod, RuleData, RuleCompound:
		return true
	}
	return false
}

// Variant is one member of a parameter enum.
type Variant struct {
	// Tag is unique within the enum, e.g. PostsSome or UnsetAddress.
	Tag string
	// Field is the data model name of the field the variant serializes
	// under.
	Field   string
	Payload []Payload
	Rule    Rule
}

// Enum is an ordered, tag-unique set of variants.
type Enum struct {
	Kind  EnumKind
	Owner string

	variants []*Variant
	tags     map[string]EnumKind
}

func newEnum(owner string, kind EnumKind, tags map[string]EnumKind) *Enum {
	if tags == nil {
		tags = make(map[string]EnumKind)
	}
	return &Enum{Kind: kind, Owner: owner, tags: tags}
}

// Add appends a variant. Adding a tag that is already present fails with a
// SchemaError wrapping ErrDuplicateTag. WhereParam and UniqueWhereParam of
// one type share their tag space.
func (e *Enum) Add(v *Variant) error {
	if k, ok := e.tags[v.Tag]; ok {
		return NewSchemaError(e.Owner, v.Field, fmt.Sprintf("%s %s already defines %s", e.Owner, k, v.Tag), ErrDuplicateTag)
	}
	e.tags[v.Tag] = e.Kind
	e.variants = append(e.variants, v)
	return nil
}

// Variants returns the variants in insertion order.
func (e *Enum) Variants() []*Variant { return e.variants }

// Lookup returns the variant with the given tag.
func (e *Enum) Lookup(tag string) (*Variant, bool) {
	for _, v := range e.variants {
		if v.Tag == tag {
			return v, true
		}
	}
	return nil, false
}

// Len returns the number of variants.
func (e *Enum) Len() int { return len(e.variants) }

// Builder is a method of a field accessor that constructs one variant.
type Builder struct {
	// Name is the method name, e.g. Some or Equals.
	Name    string
	Variant *Variant
	// Returns is the enum the built value belongs to.
	Returns EnumKind
	// Dual is set when the value is both a WhereParam and a
	// UniqueWhereParam and the caller decides which one it uses.
	Dual bool
}

// Params returns the builder parameters.
func (b *Builder) Params() []Payload { return b.Variant.Payload }

// Variadic reports whether the last parameter is spread. Lists of
// parameters and create inputs are spread, scalar lists are not.
func (b *Builder) Variadic() bool {
	ps := b.Variant.Payload
	if len(ps) == 0 {
		return false
	}
	last := ps[len(ps)-1].Type
	if last.Kind != RefList {
		return false
	}
	switch last.Elem.Kind {
	case RefParam, RefCreate, RefList:
		return true
	}
	return false
}
