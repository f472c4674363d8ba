package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
)

// accessors emits the accessor struct of every field and compound unique
// lookup of t, with its builder methods.
func (x *emitter) accessors(t *gen.Type) error {
	for _, f := range t.Fields {
		name := f.AccessorType()
		x.file.Type().Id(name).Struct()
		for _, b := range f.Builders {
			var err error
			if b.Variant.Rule.Kind == gen.RuleFetch {
				err = x.fetch(f, b)
			} else {
				err = x.builder(t, name, variantName(f, b), builderDoc(f, b), b, f.DualType())
			}
			if err != nil {
				return err
			}
		}
	}
	for _, c := range t.Compounds {
		name := c.AccessorType(t)
		x.file.Type().Id(name).Struct()
		doc := fmt.Sprintf("Equals selects the %s with the given %s.", t.Name, c.Name)
		if err := x.builder(t, name, t.VariantType(gen.UniqueWhereParam, c.Builder.Variant.Tag), doc, c.Builder, ""); err != nil {
			return err
		}
	}
	return nil
}

func builderDoc(f *gen.Field, b *gen.Builder) string {
	switch b.Returns {
	case gen.UniqueWhereParam:
		return fmt.Sprintf("%s selects the %s with the given %s.", b.Name, f.Owner.Name, f.Name)
	case gen.SetParam:
		return fmt.Sprintf("%s mutates %s.", b.Name, f.Name)
	case gen.OrderByParam:
		return fmt.Sprintf("%s orders by %s.", b.Name, f.Name)
	}
	if b.Variant.Rule.Method == "" {
		return fmt.Sprintf("%s filters on %s.", b.Name, f.Name)
	}
	return fmt.Sprintf("%s filters %s with %s.", b.Name, f.Name, b.Variant.Rule.Method)
}

// builder emits a method of an accessor returning the variant struct.
func (x *emitter) builder(t *gen.Type, accessor, variant, doc string, b *gen.Builder, dual string) error {
	var (
		ps     = b.Params()
		params = make([]jen.Code, len(ps))
		values = jen.Dict{}
	)
	for i, p := range ps {
		n := gen.ParamName(p.Name)
		typ := p.Type
		variadic := i == len(ps)-1 && b.Variadic()
		if variadic {
			typ = *typ.Elem
		}
		code, err := x.typeOf(typ)
		if err != nil {
			return fmt.Errorf("golang: %s.%s: %w", accessor, b.Name, err)
		}
		if variadic {
			params[i] = jen.Id(n).Op("...").Add(code)
		} else {
			params[i] = jen.Id(n).Add(code)
		}
		values[jen.Id(n)] = jen.Id(n)
	}
	ret := jen.Id(t.ParamType(b.Returns))
	if b.Dual {
		ret = jen.Id(dual)
	}
	x.file.Comment(doc)
	x.file.Func().Params(jen.Id(accessor)).Id(b.Name).Params(params...).Add(ret).Block(
		jen.Return(jen.Id(variant).Values(values)),
	)
	return nil
}

// fetch emits the eager-load type of a relation and its Fetch builder.
func (x *emitter) fetch(f *gen.Field, b *gen.Builder) error {
	var (
		t       = f.Owner
		name    = f.FetchType()
		related = f.RelatedEntity()
	)
	target, ok := x.graph.Type(related)
	if !ok {
		return fmt.Errorf("golang: unknown relation target %s of %s.%s", related, t.Name, f.Name)
	}
	param := func(k gen.EnumKind) jen.Code { return jen.Id(target.ParamType(k)) }
	x.file.Commentf("%s eager-loads %s of %s.", name, f.Name, t.Name)
	x.file.Type().Id(name).Struct(jen.Id("fetch").Op("*").Add(x.qual("Fetch")))
	x.file.Func().Params(jen.Id(name)).Id(marker(t.ParamType(gen.WithParam))).Params().Block()
	x.file.Func().Params(jen.Id("f").Id(name)).Id("WithSelection").Params().Add(x.qual("Selection")).Block(
		jen.Return(jen.Id("f").Dot("fetch").Dot("Selection").Call()),
	)
	chain := func(method string, p jen.Code, call string, arg jen.Code) {
		x.file.Func().Params(jen.Id("f").Id(name)).Id(method).Params(p).Id(name).Block(
			jen.Id("f").Dot("fetch").Dot(call).Call(arg),
			jen.Return(jen.Id("f")),
		)
	}
	spread := func(helper string) jen.Code {
		return x.qual(helper).Call(jen.Id("params")).Op("...")
	}
	if f.IsList() {
		chain("Where", jen.Id("params").Op("...").Add(param(gen.WhereParam)), "AddWhere", spread("WhereFields"))
		chain("OrderBy", jen.Id("params").Op("...").Add(param(gen.OrderByParam)), "AddOrderBy", spread("OrderByFields"))
		chain("Cursor", jen.Id("params").Op("...").Add(param(gen.UniqueWhereParam)), "AddCursor", spread("WhereFields"))
		chain("Skip", jen.Id("n").Int64(), "SetSkip", jen.Id("n"))
		chain("Take", jen.Id("n").Int64(), "SetTake", jen.Id("n"))
	}
	chain("With", jen.Id("params").Op("...").Add(param(gen.WithParam)), "AddWith", spread("WithSelections"))

	var (
		params []jen.Code
		where  jen.Code = jen.Nil()
	)
	if f.IsList() {
		params = []jen.Code{jen.Id("params").Op("...").Add(param(gen.WhereParam))}
		where = x.qual("WhereFields").Call(jen.Id("params"))
	}
	x.file.Commentf("%s eager-loads %s.", b.Name, f.Name)
	x.file.Func().Params(jen.Id(f.AccessorType())).Id(b.Name).Params(params...).Id(name).Block(
		jen.Return(jen.Id(name).Values(jen.Dict{
			jen.Id("fetch"): x.qual("NewFetch").Call(jen.Lit(f.Name), jen.Id(target.ModelVar()), where),
		})),
	)
	return nil
}
