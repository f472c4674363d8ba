package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
)

var paramDocs = map[gen.EnumKind]string{
	gen.WhereParam:       "%s is a filter on %s.",
	gen.UniqueWhereParam: "%s selects a single %s. Every unique lookup is also a filter.",
	gen.SetParam:         "%s sets a field of %s.",
	gen.OrderByParam:     "%s orders %s records.",
	gen.WithParam:        "%s eager-loads a relation of %s.",
}

// inputs maps a parameter enum to the runtime interface it implements and
// the method serializing it.
var inputs = map[gen.EnumKind]struct{ iface, method, fields string }{
	gen.WhereParam:       {"WhereInput", "WhereField", "WhereFields"},
	gen.UniqueWhereParam: {"WhereInput", "WhereField", "WhereFields"},
	gen.SetParam:         {"SetInput", "SetField", "SetFields"},
	gen.OrderByParam:     {"OrderByInput", "OrderByField", "OrderByFields"},
	gen.WithParam:        {"WithInput", "WithSelection", "WithSelections"},
}

func marker(iface string) string { return "is" + iface }

// markers returns the marker methods a variant of kind k implements.
func markers(t *gen.Type, k gen.EnumKind) []string {
	if k == gen.UniqueWhereParam {
		return []string{marker(t.ParamType(gen.WhereParam)), marker(t.ParamType(k))}
	}
	return []string{marker(t.ParamType(k))}
}

// params emits the parameter interfaces of t and one struct per variant.
// Eager-load variants are emitted with their accessor.
func (x *emitter) params(t *gen.Type) error {
	for _, e := range t.Enums() {
		x.paramInterface(t, e.Kind)
	}
	duals := make(map[*gen.Variant]string)
	for _, f := range t.Fields {
		for _, b := range f.Builders {
			if b.Dual {
				duals[b.Variant] = f.DualType()
			}
		}
	}
	for _, e := range t.Enums() {
		if e.Kind == gen.WithParam {
			continue
		}
		for _, v := range e.Variants() {
			name, dual := duals[v]
			if !dual {
				name = t.VariantType(e.Kind, v.Tag)
			}
			if err := x.variant(t, e.Kind, v, name, dual); err != nil {
				return err
			}
		}
	}
	return nil
}

func (x *emitter) paramInterface(t *gen.Type, k gen.EnumKind) {
	name := t.ParamType(k)
	embed := x.qual(inputs[k].iface)
	if k == gen.UniqueWhereParam {
		embed = jen.Id(t.ParamType(gen.WhereParam))
	}
	x.file.Commentf(paramDocs[k], name, t.Name)
	x.file.Type().Id(name).Interface(
		embed,
		jen.Id(marker(name)).Params(),
	)
}

// variantName returns the struct constructed by a builder.
func variantName(f *gen.Field, b *gen.Builder) string {
	if b.Dual {
		return f.DualType()
	}
	return f.Owner.VariantType(b.Returns, b.Variant.Tag)
}

func (x *emitter) variant(t *gen.Type, k gen.EnumKind, v *gen.Variant, name string, dual bool) error {
	fields := make([]jen.Code, len(v.Payload))
	for i, p := range v.Payload {
		typ, err := x.typeOf(p.Type)
		if err != nil {
			return fmt.Errorf("golang: %s.%s: %w", t.Name, v.Tag, err)
		}
		fields[i] = jen.Id(gen.ParamName(p.Name)).Add(typ)
	}
	if dual {
		x.file.Commentf("%s is both a %s and a %s.", name, t.ParamType(gen.WhereParam), t.ParamType(gen.UniqueWhereParam))
	}
	x.file.Type().Id(name).Struct(fields...)
	for _, m := range markers(t, k) {
		x.file.Func().Params(jen.Id(name)).Id(m).Params().Block()
	}
	body, err := x.serialize(v)
	if err != nil {
		return fmt.Errorf("golang: %s.%s: %w", t.Name, v.Tag, err)
	}
	recv := jen.Id(name)
	if len(v.Payload) > 0 {
		recv = jen.Id("p").Id(name)
	}
	x.file.Func().Params(recv).Id(inputs[k].method).Params().Add(x.qual("Field")).Block(
		jen.Return(body),
	)
	return nil
}

// serialize returns the runtime call implementing the rule of v.
func (x *emitter) serialize(v *gen.Variant) (jen.Code, error) {
	var (
		r      = v.Rule
		field  = jen.Lit(v.Field)
		method = jen.Lit(r.Method)
	)
	arg := func(i int) *jen.Statement {
		return jen.Id("p").Dot(gen.ParamName(v.Payload[i].Name))
	}
	fields := func(i int) (jen.Code, error) {
		return x.fields(v.Payload[i].Type, arg(i))
	}
	switch r.Kind {
	case gen.RuleIsNull, gen.RuleIsSet:
		return x.qual(r.Func()).Call(field), nil
	case gen.RuleFlag:
		return x.qual(r.Func()).Call(field, method), nil
	case gen.RuleWhere, gen.RuleWhereEach, gen.RuleData:
		fs, err := fields(0)
		if err != nil {
			return nil, err
		}
		return x.qual(r.Func()).Call(field, method, fs), nil
	case gen.RuleWhereList:
		return x.qual(r.Func()).Call(field, method, x.qual("WhereGroups").Call(arg(0))), nil
	case gen.RuleMethod:
		return x.qual(r.Func()).Call(field, method, arg(0)), nil
	case gen.RuleValue:
		return x.qual(r.Func()).Call(field, arg(0)), nil
	case gen.RuleUpsert:
		update, err := fields(1)
		if err != nil {
			return nil, err
		}
		return x.qual(r.Func()).Call(field, arg(0), update), nil
	case gen.RuleUpdateMany:
		where, err := fields(0)
		if err != nil {
			return nil, err
		}
		data, err := fields(1)
		if err != nil {
			return nil, err
		}
		return x.qual(r.Func()).Call(field, where, data), nil
	case gen.RuleDeleteMany:
		where, err := fields(0)
		if err != nil {
			return nil, err
		}
		return x.qual(r.Func()).Call(field, where), nil
	case gen.RuleCompound:
		values := make([]jen.Code, len(v.Payload))
		for i, p := range v.Payload {
			values[i] = x.qual("SetValue").Call(jen.Lit(p.Name), arg(i))
		}
		return x.qual(r.Func()).Call(field, jen.Lit(""), jen.Index().Add(x.qual("Field")).Values(values...)), nil
	default:
		return nil, fmt.Errorf("rule %s has no field serialization", r.Func())
	}
}

// fields returns the expression serializing a parameter payload into
// []runtime.Field.
func (x *emitter) fields(ref gen.TypeRef, expr *jen.Statement) (jen.Code, error) {
	switch {
	case ref.Kind == gen.RefList && ref.Elem.Kind == gen.RefParam:
		return x.qual(inputs[ref.Elem.Param].fields).Call(expr), nil
	case ref.Kind == gen.RefParam:
		return jen.Index().Add(x.qual("Field")).Values(expr.Dot(inputs[ref.Param].method).Call()), nil
	default:
		return nil, fmt.Errorf("payload of type %s is not a parameter list", ref)
	}
}
