package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/schema"
)

func (x *emitter) composite(t *gen.Type) error {
	if err := x.params(t); err != nil {
		return err
	}
	if err := x.accessors(t); err != nil {
		return err
	}
	x.actions(t)
	if err := x.createInput(t); err != nil {
		return err
	}
	return x.resultModel(t)
}

// createInput emits the create input of a composite and its constructor.
// Fields that cannot be represented are left out; a composite whose
// required fields cannot all be represented has no constructor.
func (x *emitter) createInput(t *gen.Type) error {
	var (
		name     = t.CreateType()
		fields   []jen.Code
		required []*schema.Field
		stmts    []jen.Code
	)
	for _, f := range t.Composite.Fields {
		elem, ok, err := x.createElem(f)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var (
			value = jen.Id("c").Dot(gen.AccessorName(f.Name))
			set   = jen.Id("fields").Op("=").Append(jen.Id("fields"), x.qual("SetValue").Call(jen.Lit(f.Name), value))
		)
		switch {
		case f.IsList():
			fields = append(fields, jen.Id(gen.AccessorName(f.Name)).Index().Add(elem))
			stmts = append(stmts, jen.If(value.Clone().Op("!=").Nil()).Block(set))
		case f.RequiredOnCreate():
			fields = append(fields, jen.Id(gen.AccessorName(f.Name)).Add(elem))
			required = append(required, f)
			stmts = append(stmts, set)
		default:
			fields = append(fields, jen.Id(gen.AccessorName(f.Name)).Op("*").Add(elem))
			stmts = append(stmts, jen.If(value.Clone().Op("!=").Nil()).Block(set))
		}
	}
	x.file.Commentf("%s is the create input of %s.", name, t.Name)
	x.file.Type().Id(name).Struct(fields...)
	x.file.Comment("WireValue implements runtime.Valuer.")
	x.file.Func().Params(jen.Id("c").Id(name)).Id("WireValue").Params().Add(x.qual("Value")).Block(
		append(append(
			[]jen.Code{jen.Var().Id("fields").Index().Add(x.qual("Field"))},
			stmts...),
			jen.Return(x.qual("Object").Call(jen.Id("fields").Op("..."))),
		)...,
	)
	if !t.Creatable {
		return nil
	}
	var (
		params = make([]jen.Code, len(required))
		values = jen.Dict{}
	)
	for i, f := range required {
		elem, _, err := x.createElem(f)
		if err != nil {
			return err
		}
		n := gen.ParamName(f.Name)
		params[i] = jen.Id(n).Add(elem)
		values[jen.Id(gen.AccessorName(f.Name))] = jen.Id(n)
	}
	x.file.Commentf("Create returns a %s holding the required fields. Optional fields are set on the result.", name)
	x.file.Func().Params(jen.Id(t.ActionsType())).Id("Create").Params(params...).Id(name).Block(
		jen.Return(jen.Id(name).Values(values)),
	)
	return nil
}

// createElem returns the element type of a create input field, and false
// when the field cannot be represented.
func (x *emitter) createElem(f *schema.Field) (jen.Code, bool, error) {
	switch {
	case f.Kind == schema.KindComposite:
		t, ok := x.graph.Type(string(f.Type))
		if !ok || !t.Creatable {
			return nil, false, nil
		}
		return jen.Id(t.CreateType()), true, nil
	case f.Kind == schema.KindRelation:
		return nil, false, nil
	case f.Enum:
		if _, ok := x.graph.Schema.Enum(string(f.Type)); !ok {
			return nil, false, nil
		}
		return jen.Id(gen.EnumTypeName(string(f.Type))), true, nil
	case !f.Type.Builtin():
		return nil, false, nil
	default:
		s, err := scalar(f.Type)
		return s, err == nil, err
	}
}
