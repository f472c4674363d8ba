package gen

import (
	"fmt"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// Default relation filter methods by arity.
var (
	listRelationMethods   = []string{"every", "some", "none"}
	singleRelationMethods = []string{"is", "isNot"}
)

// whereVariants synthesizes the filter variants of a field.
func (g *Graph) whereVariants(f *Field) error {
	switch f.Kind {
	case schema.KindRelation:
		return g.relationWhere(f)
	case schema.KindComposite:
		return g.compositeWhere(f)
	default:
		return g.scalarWhere(f)
	}
}

func (g *Graph) relationWhere(f *Field) error {
	t := f.Owner
	related := f.RelatedEntity()
	if _, ok := g.Schema.Entity(related); !ok {
		return &RelationError{From: t.Name, To: related, Field: f.Name}
	}
	if f.Caps.Has(CapIsNull) {
		v := &Variant{Tag: VariantTag(f.Name, "isNull"), Field: f.Name, Rule: Rule{Kind: RuleIsNull}}
		if _, err := f.add(t.Where, "IsNull", v); err != nil {
			return err
		}
	}
	methods := f.RelationMethods
	if len(methods) == 0 {
		methods = singleRelationMethods
		if f.IsList() {
			methods = listRelationMethods
		}
	}
	for _, m := range methods {
		v := &Variant{
			Tag:     VariantTag(f.Name, m),
			Field:   f.Name,
			Payload: []Payload{{Name: "params", Type: ListOf(ParamRef(related, WhereParam))}},
			Rule:    Rule{Kind: RuleWhere, Method: m},
		}
		if _, err := f.add(t.Where, BuilderName(m), v); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) compositeWhere(f *Field) error {
	t := f.Owner
	name := string(f.Type)
	if _, ok := g.Schema.Composite(name); !ok {
		return NewSchemaError(t.Name, f.Name, fmt.Sprintf("unknown composite type %q", name), nil)
	}
	params := ListOf(ParamRef(name, WhereParam))
	var err error
	add := func(builder string, v *Variant) {
		if err == nil {
			_, err = f.add(t.Where, builder, v)
		}
	}
	if f.Caps.Has(CapIsSet) {
		add("IsSet", &Variant{Tag: VariantTag(f.Name, "isSet"), Field: f.Name, Rule: Rule{Kind: RuleIsSet}})
	}
	if f.Caps.Has(CapCompositeListFilter) {
		for _, m := range listRelationMethods {
			add(BuilderName(m), &Variant{
				Tag:     VariantTag(f.Name, m),
				Field:   f.Name,
				Payload: []Payload{{Name: "params", Type: params}},
				Rule:    Rule{Kind: RuleWhere, Method: m},
			})
		}
		add("Equals", &Variant{
			Tag:     VariantTag(f.Name, schema.MethodEquals),
			Field:   f.Name,
			Payload: []Payload{{Name: "params", Type: ListOf(params)}},
			Rule:    Rule{Kind: RuleWhereList, Method: schema.MethodEquals},
		})
		add("IsEmpty", &Variant{
			Tag:   VariantTag(f.Name, schema.MethodIsEmpty),
			Field: f.Name,
			Rule:  Rule{Kind: RuleFlag, Method: schema.MethodIsEmpty},
		})
	}
	if f.Caps.Has(CapCompositeFilter) {
		for _, m := range []string{schema.MethodEquals, "is", "isNot"} {
			add(BuilderName(m), &Variant{
				Tag:     VariantTag(f.Name, m),
				Field:   f.Name,
				Payload: []Payload{{Name: "params", Type: params}},
				Rule:    Rule{Kind: RuleWhere, Method: m},
			})
		}
	}
	return err
}

func (g *Graph) scalarWhere(f *Field) error {
	t := f.Owner
	cat, ok := g.Schema.Catalogue(f.Field)
	if !ok {
		return NewSchemaError(t.Name, f.Name, fmt.Sprintf("no filters for type %s", f.Type), ErrUnsupportedType)
	}
	elem := elemRef(f.Field)
	for _, m := range cat.Methods(f.Field) {
		v := &Variant{
			Tag:     VariantTag(f.Name, m.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "value", Type: argRef(f.Field, elem, m.Arg)}},
			Rule:    Rule{Kind: RuleMethod, Method: m.Name},
		}
		enum, dual := t.Where, false
		if m.Name == schema.MethodEquals && !f.IsList() {
			switch {
			case f.Caps.Has(CapUniqueEquals):
				enum = t.UniqueWhere
				v.Payload[0].Type = elem
			case f.Caps.Has(CapDualEquals):
				enum, dual = t.UniqueWhere, true
				v.Payload[0].Type = elem
			}
		}
		b, err := f.add(enum, BuilderName(m.Name), v)
		if err != nil {
			return err
		}
		b.Dual = dual
	}
	if f.Caps.Has(CapScalarNull) {
		v := &Variant{Tag: VariantTag(f.Name, "isNull"), Field: f.Name, Rule: Rule{Kind: RuleIsNull}}
		if _, err := f.add(t.Where, "IsNull", v); err != nil {
			return err
		}
	}
	return nil
}

// argRef returns the payload type of a catalogue argument.
func argRef(f *schema.Field, elem TypeRef, arg schema.ArgKind) TypeRef {
	switch arg {
	case schema.ArgElement:
		return elem
	case schema.ArgList:
		return ListOf(elem)
	case schema.ArgText:
		return StringRef
	case schema.ArgBool:
		return BoolRef
	default:
		return wrap(f, elem)
	}
}
