package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/schema"
)

func (x *emitter) entity(t *gen.Type) error {
	if err := x.params(t); err != nil {
		return err
	}
	if err := x.accessors(t); err != nil {
		return err
	}
	x.actions(t)
	x.operations(t)
	x.modelVar(t)
	return x.resultModel(t)
}

// actions emits the actions struct holding one accessor per field and the
// package-level value exposing it.
func (x *emitter) actions(t *gen.Type) {
	fields := make([]jen.Code, 0, len(t.Fields)+len(t.Compounds))
	for _, f := range t.Fields {
		fields = append(fields, jen.Id(f.Accessor).Id(f.AccessorType()))
	}
	for _, c := range t.Compounds {
		fields = append(fields, jen.Id(c.Accessor).Id(c.AccessorType(t)))
	}
	x.file.Type().Id(t.ActionsType()).Struct(fields...)
	if t.IsComposite() {
		x.file.Commentf("%s builds filters and mutations of the %s composite type.", t.ActionsVar(), t.Name)
	} else {
		x.file.Commentf("%s is the entry point of %s queries.", t.ActionsVar(), t.Name)
	}
	x.file.Var().Id(t.ActionsVar()).Id(t.ActionsType())
}

// operations emits the query methods of an entity actions value.
func (x *emitter) operations(t *gen.Type) {
	var (
		recv    = jen.Id(t.ActionsType())
		model   = jen.Id(t.ModelVar())
		where   = jen.Id(t.ParamType(gen.WhereParam))
		unique  = jen.Id(t.ParamType(gen.UniqueWhereParam))
		set     = jen.Id(t.ParamType(gen.SetParam))
		orderBy = jen.Id(t.ParamType(gen.OrderByParam))
		with    = jen.Id(t.ParamType(gen.WithParam))
		many    = gen.Plural(t.Name)
	)
	whereFields := func(id string) jen.Code { return x.qual("WhereFields").Call(jen.Id(id)) }
	setFields := func(id string) jen.Code { return x.qual("SetFields").Call(jen.Id(id)) }
	uniqueField := jen.Index().Add(x.qual("Field")).Values(jen.Id("where").Dot("WhereField").Call())
	method := func(doc, name string, params []jen.Code, query string, types []jen.Code, args ...jen.Code) {
		x.file.Comment(doc)
		x.file.Func().Params(recv).Id(name).Params(params...).Op("*").Add(x.qual(query)).Types(types...).Block(
			jen.Return(x.qual("New"+query).Types(types...).Call(append([]jen.Code{model}, args...)...)),
		)
	}
	variadic := func(name string, typ jen.Code) jen.Code { return jen.Id(name).Op("...").Add(typ) }

	read := []jen.Code{where, orderBy, unique, with}
	method(fmt.Sprintf("FindUnique finds the %s selected by a unique lookup.", t.Name),
		"FindUnique", []jen.Code{jen.Id("where").Add(unique)}, "FindUnique", []jen.Code{with}, uniqueField)
	method(fmt.Sprintf("FindFirst finds the first %s matching the filters.", t.Name),
		"FindFirst", []jen.Code{variadic("params", where)}, "FindFirst", read, whereFields("params"))
	method(fmt.Sprintf("FindMany finds the %s matching the filters.", many),
		"FindMany", []jen.Code{variadic("params", where)}, "FindMany", read, whereFields("params"))
	method(fmt.Sprintf("Count counts the %s matching the filters.", many),
		"Count", []jen.Code{variadic("params", where)}, "Count", []jen.Code{where, orderBy, unique}, whereFields("params"))
	method(fmt.Sprintf("CreateOne creates a %s.", t.Name),
		"CreateOne", []jen.Code{variadic("params", set)}, "Create", []jen.Code{set, with}, setFields("params"))
	method(fmt.Sprintf("CreateMany creates one %s per row.", t.Name),
		"CreateMany", []jen.Code{variadic("rows", jen.Index().Add(set))}, "CreateMany", []jen.Code{set},
		x.qual("SetRows").Call(jen.Id("rows")))
	method(fmt.Sprintf("UpdateOne updates the %s selected by a unique lookup.", t.Name),
		"UpdateOne", []jen.Code{jen.Id("where").Add(unique), variadic("params", set)}, "Update", []jen.Code{set, with},
		uniqueField, setFields("params"))
	method(fmt.Sprintf("UpdateMany updates the %s matching the filters.", many),
		"UpdateMany", []jen.Code{jen.Id("where").Index().Add(where), variadic("params", set)}, "UpdateMany", []jen.Code{where, set},
		whereFields("where"), setFields("params"))
	method(fmt.Sprintf("DeleteOne deletes the %s selected by a unique lookup.", t.Name),
		"DeleteOne", []jen.Code{jen.Id("where").Add(unique)}, "Delete", []jen.Code{with}, uniqueField)
	method(fmt.Sprintf("DeleteMany deletes the %s matching the filters.", many),
		"DeleteMany", []jen.Code{variadic("params", where)}, "DeleteMany", []jen.Code{where}, whereFields("params"))
	method(fmt.Sprintf("UpsertOne updates the %s selected by a unique lookup, or creates it.", t.Name),
		"UpsertOne", []jen.Code{jen.Id("where").Add(unique), jen.Id("create").Index().Add(set), jen.Id("update").Index().Add(set)},
		"Upsert", []jen.Code{set, with}, uniqueField, setFields("create"), setFields("update"))
}

// modelVar emits the model descriptor: the engine name and the default
// selection of scalar and composite fields.
func (x *emitter) modelVar(t *gen.Type) {
	x.file.Var().Id(t.ModelVar()).Op("=").Add(x.qual("Model")).Values(jen.Dict{
		jen.Id("Name"):       jen.Lit(t.Name),
		jen.Id("Selections"): jen.Index().Add(x.qual("Selection")).Values(x.selections(t.Entity.Fields, map[string]bool{})...),
	})
}

// selections returns the default selections of fields. Composite fields
// select their own fields; a composite already being expanded is skipped.
func (x *emitter) selections(fields []*schema.Field, expanding map[string]bool) []jen.Code {
	var out []jen.Code
	for _, f := range fields {
		switch f.Kind {
		case schema.KindRelation:
			continue
		case schema.KindComposite:
			name := string(f.Type)
			c, ok := x.graph.Schema.Composite(name)
			if !ok || expanding[name] {
				continue
			}
			expanding[name] = true
			nested := x.selections(c.Fields, expanding)
			delete(expanding, name)
			out = append(out, jen.Values(jen.Dict{
				jen.Id("Name"):   jen.Lit(f.Name),
				jen.Id("Nested"): jen.Index().Add(x.qual("Selection")).Values(nested...),
			}))
		default:
			out = append(out, jen.Values(jen.Dict{jen.Id("Name"): jen.Lit(f.Name)}))
		}
	}
	return out
}

// resultModel emits the struct the engine response of t decodes into.
func (x *emitter) resultModel(t *gen.Type) error {
	var fields []jen.Code
	for _, f := range t.Fields {
		elem, err := x.elemType(f.Field)
		if err != nil {
			return err
		}
		tag := f.Name
		if !f.Required() || f.Kind == schema.KindRelation {
			tag += ",omitempty"
		}
		typ := x.fieldType(f.Field, elem)
		if f.Required() && f.Kind == schema.KindComposite && x.reaches(string(f.Type), t.Name, map[string]bool{}) {
			typ = jen.Op("*").Add(elem)
		}
		fields = append(fields, jen.Id(f.Accessor).Add(typ).Tag(map[string]string{"json": tag}))
	}
	x.file.Commentf("%s is a %s returned by the engine.", t.ModelType(), t.Name)
	x.file.Type().Id(t.ModelType()).Struct(fields...)
	return nil
}

// reaches reports whether the composite from embeds the composite to by
// value, directly or through other required composite fields. Such fields
// are held by pointer to keep the result types finite.
func (x *emitter) reaches(from, to string, seen map[string]bool) bool {
	if from == to {
		return true
	}
	if seen[from] {
		return false
	}
	seen[from] = true
	c, ok := x.graph.Schema.Composite(from)
	if !ok {
		return false
	}
	for _, f := range c.Fields {
		if f.Kind == schema.KindComposite && f.Required() && x.reaches(string(f.Type), to, seen) {
			return true
		}
	}
	return false
}
