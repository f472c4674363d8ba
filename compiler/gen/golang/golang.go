// Package golang renders a synthesized graph into a Go client package with
// jennifer.
//
// For every entity the generated file holds:
//
//	type UserWhereParam interface        # filters (closed by a marker method)
//	type UserUniqueWhereParam interface  # unique lookups, also filters
//	type UserSetParam interface          # mutations
//	type UserOrderByParam interface      # ordering
//	type UserWithParam interface         # eager loading
//	type userWhereParamEmailEquals ...   # one struct per variant
//	type userEmailField struct{}         # accessor exposing the builders
//	var User = userActions{...}          # User.Email.Equals(..), User.FindMany(..)
//	var userModel = runtime.Model{...}   # model descriptor
//	type UserModel struct{...}           # result model
//
// Composite types get the same parameter enums minus unique lookups and
// eager loading, a create input and a result model. Enums become string
// types with one constant per value.
//
// Usage:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithOutput("db/db_gen.go"),
//	    gen.WithEmitter(golang.New()),
//	)
//	err = gen.NewGenerator(cfg, logger).Generate(ctx, walker)
package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/schema"
)

// Emitter renders Go source.
type Emitter struct{}

// New returns a Go emitter.
func New() *Emitter { return &Emitter{} }

// Name implements gen.Emitter.
func (*Emitter) Name() string { return "golang" }

// Emit implements gen.Emitter.
func (*Emitter) Emit(g *gen.Graph) (*jen.File, error) {
	x := &emitter{graph: g, file: g.NewFile(), rt: g.Runtime()}
	for _, e := range g.Enums {
		x.enum(e)
	}
	for _, t := range g.Composites {
		if err := x.composite(t); err != nil {
			return nil, err
		}
	}
	for _, t := range g.Nodes {
		if err := x.entity(t); err != nil {
			return nil, err
		}
	}
	return x.file, nil
}

var _ gen.Emitter = (*Emitter)(nil)

// emitter holds the state of one Emit call.
type emitter struct {
	graph *gen.Graph
	file  *jen.File
	rt    string
}

// qual references a declaration of the runtime package.
func (x *emitter) qual(name string) *jen.Statement { return jen.Qual(x.rt, name) }

// scalar returns the Go type of a builtin scalar.
func scalar(t schema.ScalarType) (*jen.Statement, error) {
	switch t {
	case schema.TypeString:
		return jen.String(), nil
	case schema.TypeInt:
		return jen.Int(), nil
	case schema.TypeBigInt:
		return jen.Int64(), nil
	case schema.TypeFloat, schema.TypeDecimal:
		return jen.Float64(), nil
	case schema.TypeBoolean:
		return jen.Bool(), nil
	case schema.TypeDateTime:
		return jen.Qual("time", "Time"), nil
	case schema.TypeJSON:
		return jen.Qual("encoding/json", "RawMessage"), nil
	case schema.TypeBytes:
		return jen.Index().Byte(), nil
	default:
		return nil, fmt.Errorf("golang: no Go type for scalar %s", t)
	}
}

// typeOf returns the Go type of a payload type.
func (x *emitter) typeOf(ref gen.TypeRef) (*jen.Statement, error) {
	switch ref.Kind {
	case gen.RefScalar:
		return scalar(ref.Scalar)
	case gen.RefEnum:
		return jen.Id(gen.EnumTypeName(ref.Name)), nil
	case gen.RefParam:
		return jen.Id(gen.ParamTypeName(ref.Name, ref.Param)), nil
	case gen.RefCreate:
		return jen.Id(gen.CreateTypeName(ref.Name)), nil
	case gen.RefList:
		elem, err := x.typeOf(*ref.Elem)
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case gen.RefOptional:
		elem, err := x.typeOf(*ref.Elem)
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil
	case gen.RefString:
		return jen.String(), nil
	case gen.RefBool:
		return jen.Bool(), nil
	case gen.RefSortOrder:
		return x.qual("SortOrder"), nil
	default:
		return nil, fmt.Errorf("golang: unknown type reference %s", ref)
	}
}

// fieldType returns the Go type holding a field value in a result model or
// create input.
func (x *emitter) fieldType(f *schema.Field, elem jen.Code) *jen.Statement {
	switch {
	case f.IsList():
		return jen.Index().Add(elem)
	case f.Optional() || f.Kind == schema.KindRelation:
		return jen.Op("*").Add(elem)
	default:
		return jen.Add(elem)
	}
}

// elemType returns the element Go type of a field in a result model.
func (x *emitter) elemType(f *schema.Field) (jen.Code, error) {
	switch {
	case f.Kind == schema.KindRelation || f.Kind == schema.KindComposite:
		t, ok := x.graph.Type(string(f.Type))
		if !ok {
			return nil, fmt.Errorf("golang: unknown type %s of field %s", f.Type, f.Name)
		}
		return jen.Id(t.ModelType()), nil
	case f.Enum:
		return jen.Id(gen.EnumTypeName(string(f.Type))), nil
	default:
		return scalar(f.Type)
	}
}
