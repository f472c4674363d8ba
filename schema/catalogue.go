package schema

// ArgKind is the declared payload shape of a filter method.
type ArgKind uint8

// Filter argument kinds.
const (
	// ArgValue takes the field's own type. Optional fields take a
	// nullable value.
	ArgValue ArgKind = iota
	// ArgElement takes a single (non-null) element of the field's type.
	ArgElement
	// ArgList takes a list of elements of the field's type.
	ArgList
	// ArgText takes a string regardless of the field type.
	ArgText
	// ArgBool takes a boolean.
	ArgBool
)

// FilterMethod is one entry of a filter catalogue.
type FilterMethod struct {
	// Name is the engine-side method name, e.g. "startsWith".
	Name string
	Arg  ArgKind
}

// Catalogue lists the filter methods of a scalar type, separately for
// single-valued fields and list fields.
type Catalogue struct {
	Scalar []FilterMethod
	List   []FilterMethod
}

// Methods returns the methods applicable to f.
func (c *Catalogue) Methods(f *Field) []FilterMethod {
	if f.IsList() {
		return c.List
	}
	return c.Scalar
}

// Filter method names shared by the default catalogues.
const (
	MethodEquals     = "equals"
	MethodNot        = "not"
	MethodIn         = "in"
	MethodNotIn      = "notIn"
	MethodLt         = "lt"
	MethodLte        = "lte"
	MethodGt         = "gt"
	MethodGte        = "gte"
	MethodContains   = "contains"
	MethodStartsWith = "startsWith"
	MethodEndsWith   = "endsWith"
	MethodHas        = "has"
	MethodHasSome    = "hasSome"
	MethodHasEvery   = "hasEvery"
	MethodIsEmpty    = "isEmpty"
)

// enumCatalogue keys the catalogue shared by all enums.
const enumCatalogue ScalarType = "$enum"

// DefaultCatalogues returns a fresh copy of the builtin catalogues.
func DefaultCatalogues() map[ScalarType]*Catalogue {
	var (
		equality = []FilterMethod{
			{Name: MethodEquals, Arg: ArgValue},
			{Name: MethodNot, Arg: ArgValue},
		}
		membership = []FilterMethod{
			{Name: MethodIn, Arg: ArgList},
			{Name: MethodNotIn, Arg: ArgList},
		}
		ordering = []FilterMethod{
			{Name: MethodLt, Arg: ArgElement},
			{Name: MethodLte, Arg: ArgElement},
			{Name: MethodGt, Arg: ArgElement},
			{Name: MethodGte, Arg: ArgElement},
		}
		text = []FilterMethod{
			{Name: MethodContains, Arg: ArgText},
			{Name: MethodStartsWith, Arg: ArgText},
			{Name: MethodEndsWith, Arg: ArgText},
		}
	)
	list := func() []FilterMethod {
		return []FilterMethod{
			{Name: MethodEquals, Arg: ArgList},
			{Name: MethodHas, Arg: ArgElement},
			{Name: MethodHasSome, Arg: ArgList},
			{Name: MethodHasEvery, Arg: ArgList},
			{Name: MethodIsEmpty, Arg: ArgBool},
		}
	}
	join := func(groups ...[]FilterMethod) []FilterMethod {
		var out []FilterMethod
		for _, g := range groups {
			out = append(out, g...)
		}
		return out
	}
	numeric := func() *Catalogue {
		return &Catalogue{Scalar: join(equality, membership, ordering), List: list()}
	}
	return map[ScalarType]*Catalogue{
		TypeString:   {Scalar: join(equality, membership, ordering, text), List: list()},
		TypeInt:      numeric(),
		TypeBigInt:   numeric(),
		TypeFloat:    numeric(),
		TypeDecimal:  numeric(),
		TypeDateTime: numeric(),
		TypeBoolean:  {Scalar: join(equality), List: list()},
		TypeJSON:     {Scalar: join(equality), List: list()},
		TypeBytes:    {Scalar: join(equality, membership), List: list()},
		enumCatalogue: {Scalar: join(equality, membership), List: list()},
	}
}
