package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/schema"
)

// enum emits a string type with one constant per value.
func (x *emitter) enum(e *schema.Enum) {
	name := gen.EnumTypeName(e.Name)
	x.file.Commentf("%s is the %s enum.", name, e.Name)
	x.file.Type().Id(name).String()
	if len(e.Values) == 0 {
		return
	}
	consts := make([]jen.Code, len(e.Values))
	for i, v := range e.Values {
		consts[i] = jen.Id(gen.EnumValueName(e.Name, v)).Id(name).Op("=").Lit(v)
	}
	x.file.Const().Defs(consts...)
}
