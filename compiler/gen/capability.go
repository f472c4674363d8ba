package gen

import (
	"strings"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// Uniqueness classifies the uniqueness of a scalar field.
type Uniqueness uint8

// Uniqueness levels.
const (
	NotUnique Uniqueness = iota
	UniqueIndex
	PrimaryKey
)

func (u Uniqueness) String() string {
	switch u {
	case UniqueIndex:
		return "unique"
	case PrimaryKey:
		return "id"
	default:
		return "none"
	}
}

// uniqueness returns the uniqueness of a field within its entity.
// Composite fields are never unique.
func uniqueness(e *schema.Entity, f *schema.Field) Uniqueness {
	if e == nil || f.Kind != schema.KindScalar {
		return NotUnique
	}
	switch {
	case e.SolePrimaryKey(f.Name):
		return PrimaryKey
	case e.SingleUnique(f.Name):
		return UniqueIndex
	default:
		return NotUnique
	}
}

// Capability is a set of variant families a field supports.
type Capability uint32

// Capabilities. Each bit gates one family of variants.
const (
	// CapIsNull is the null check of an optional relation.
	CapIsNull Capability = 1 << iota
	// CapRelationFilter is the relation filter family (every, some, is, ...).
	CapRelationFilter
	// CapIsSet is the presence check of an optional composite.
	CapIsSet
	// CapCompositeListFilter is every, some, none, equals and isEmpty.
	CapCompositeListFilter
	// CapCompositeFilter is equals, is and isNot.
	CapCompositeFilter
	// CapScalarFilter is the filter catalogue of the scalar type.
	CapScalarFilter
	// CapUniqueEquals turns equality into a unique lookup.
	CapUniqueEquals
	// CapDualEquals makes equality usable both as a filter and as a unique
	// lookup.
	CapDualEquals
	// CapScalarNull is the null check of an optional scalar with dual
	// equality.
	CapScalarNull
	CapSet
	CapUnset
	CapUpdate
	CapUpsert
	CapPush
	CapUpdateMany
	CapDeleteMany
	CapOrderBy
	CapConnect
	CapDisconnect
	CapFetch
)

var capabilityNames = []string{
	"isNull", "relationFilter", "isSet", "compositeListFilter", "compositeFilter",
	"scalarFilter", "uniqueEquals", "dualEquals", "scalarNull", "set", "unset",
	"update", "upsert", "push", "updateMany", "deleteMany", "orderBy",
	"connect", "disconnect", "fetch",
}

// Has reports whether all bits of o are set.
func (c Capability) Has(o Capability) bool { return c&o == o }

func (c Capability) String() string {
	var names []string
	for i, n := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

type (
	arityMask  uint8
	uniqueMask uint8
)

const (
	required  arityMask = 1 << schema.Required
	optional  arityMask = 1 << schema.Optional
	list      arityMask = 1 << schema.List
	single              = required | optional
	anyArity            = required | optional | list
	anyUnique uniqueMask = 1<<NotUnique | 1<<UniqueIndex | 1<<PrimaryKey
)

func only(u Uniqueness) uniqueMask { return 1 << u }

// capabilityTable is the decision table of the synthesizers. The
// capabilities of a field are the union of all matching rows.
var capabilityTable = []struct {
	kind   schema.Kind
	arity  arityMask
	unique uniqueMask
	caps   Capability
}{
	{schema.KindScalar, anyArity, anyUnique, CapScalarFilter | CapSet},
	{schema.KindScalar, single, anyUnique, CapOrderBy},
	{schema.KindScalar, single, only(PrimaryKey), CapUniqueEquals},
	{schema.KindScalar, required, only(UniqueIndex), CapUniqueEquals},
	{schema.KindScalar, optional, only(UniqueIndex), CapDualEquals | CapScalarNull},

	{schema.KindRelation, anyArity, anyUnique, CapRelationFilter | CapConnect | CapFetch},
	{schema.KindRelation, optional, anyUnique, CapIsNull | CapDisconnect},
	{schema.KindRelation, list, anyUnique, CapDisconnect},

	{schema.KindComposite, anyArity, anyUnique, CapSet},
	{schema.KindComposite, optional, anyUnique, CapIsSet | CapUnset | CapUpsert},
	{schema.KindComposite, single, anyUnique, CapCompositeFilter | CapUpdate | CapOrderBy},
	{schema.KindComposite, list, anyUnique, CapCompositeListFilter | CapPush | CapUpdateMany | CapDeleteMany},
}

// Capabilities returns the variant families available to a field of the
// given kind, arity and uniqueness. CapSet and CapPush on composites are
// further gated by whether the composite can be created.
func Capabilities(kind schema.Kind, arity schema.Arity, u Uniqueness) Capability {
	var caps Capability
	for _, row := range capabilityTable {
		if row.kind == kind && row.arity&(1<<arity) != 0 && row.unique&(1<<u) != 0 {
			caps |= row.caps
		}
	}
	return caps
}
