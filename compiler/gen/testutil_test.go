package gen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// fixture returns a data model covering every field kind and arity:
//
//	enum Role { USER ADMIN }
//	type Geo { lat Float, lng Float }
//	type Address { street String, city String?, geo Geo?, lines String[] }
//	type Tree { label String?, node Tree }
//	model User { id, email @unique, nickname @unique?, name?, role, age?,
//	             tags[], address?, addresses[], tree?, posts[] }
//	model Post { id Int, title, authorId, author User, editor User? }
//	model Membership { userId, groupId, role, @@id([userId, groupId]),
//	                   @@unique([userId, role]) }
func fixture() *schema.Schema {
	var (
		str = func(name string, a schema.Arity) *schema.Field {
			return &schema.Field{Name: name, Kind: schema.KindScalar, Arity: a, Type: schema.TypeString}
		}
		composite = func(name string, a schema.Arity, typ string) *schema.Field {
			return &schema.Field{Name: name, Kind: schema.KindComposite, Arity: a, Type: schema.ScalarType(typ)}
		}
		relation = func(name string, a schema.Arity, typ string) *schema.Field {
			return &schema.Field{Name: name, Kind: schema.KindRelation, Arity: a, Type: schema.ScalarType(typ)}
		}
	)
	user := &schema.Entity{
		Name: "User",
		Fields: []*schema.Field{
			{Name: "id", Kind: schema.KindScalar, Type: schema.TypeString, IsPrimaryKey: true, HasDefault: true},
			{Name: "email", Kind: schema.KindScalar, Type: schema.TypeString, IsUnique: true},
			{Name: "nickname", Kind: schema.KindScalar, Arity: schema.Optional, Type: schema.TypeString, IsUnique: true},
			str("name", schema.Optional),
			{Name: "role", Kind: schema.KindScalar, Type: "Role", Enum: true, HasDefault: true},
			{Name: "age", Kind: schema.KindScalar, Arity: schema.Optional, Type: schema.TypeInt},
			str("tags", schema.List),
			composite("address", schema.Optional, "Address"),
			composite("addresses", schema.List, "Address"),
			composite("tree", schema.Optional, "Tree"),
			relation("posts", schema.List, "Post"),
		},
		PrimaryKey: []string{"id"},
	}
	post := &schema.Entity{
		Name: "Post",
		Fields: []*schema.Field{
			{Name: "id", Kind: schema.KindScalar, Type: schema.TypeInt, IsPrimaryKey: true},
			str("title", schema.Required),
			str("authorId", schema.Required),
			relation("author", schema.Required, "User"),
			relation("editor", schema.Optional, "User"),
		},
	}
	membership := &schema.Entity{
		Name: "Membership",
		Fields: []*schema.Field{
			str("userId", schema.Required),
			str("groupId", schema.Required),
			{Name: "role", Kind: schema.KindScalar, Type: "Role", Enum: true},
		},
		PrimaryKey:    []string{"userId", "groupId"},
		UniqueIndexes: [][]string{{"userId", "role"}},
	}
	address := &schema.Composite{
		Name: "Address",
		Fields: []*schema.Field{
			str("street", schema.Required),
			str("city", schema.Optional),
			composite("geo", schema.Optional, "Geo"),
			str("lines", schema.List),
		},
	}
	geo := &schema.Composite{
		Name: "Geo",
		Fields: []*schema.Field{
			{Name: "lat", Kind: schema.KindScalar, Type: schema.TypeFloat},
			{Name: "lng", Kind: schema.KindScalar, Type: schema.TypeFloat},
		},
	}
	tree := &schema.Composite{
		Name: "Tree",
		Fields: []*schema.Field{
			str("label", schema.Optional),
			composite("node", schema.Required, "Tree"),
		},
	}
	return schema.New(
		[]*schema.Entity{user, post, membership},
		[]*schema.Composite{address, geo, tree},
		[]*schema.Enum{{Name: "Role", Values: []string{"USER", "ADMIN"}}},
	)
}

func newTestGraph(t testing.TB, w schema.Walker) *Graph {
	t.Helper()
	g, err := NewGraph(context.Background(), MustNewConfig(WithWorkers(2)), w)
	require.NoError(t, err)
	return g
}

func mustType(t testing.TB, g *Graph, name string) *Type {
	t.Helper()
	typ, ok := g.Type(name)
	require.True(t, ok, "type %s", name)
	return typ
}

func mustField(t testing.TB, g *Graph, typ, field string) *Field {
	t.Helper()
	f, ok := mustType(t, g, typ).Field(field)
	require.True(t, ok, "field %s.%s", typ, field)
	return f
}

// builders returns the builder names of a field in order.
func builders(f *Field) []string {
	names := make([]string, len(f.Builders))
	for i, b := range f.Builders {
		names[i] = b.Name
	}
	return names
}

// tags returns the variant tags of an enum in order.
func tags(e *Enum) []string {
	names := make([]string, e.Len())
	for i, v := range e.Variants() {
		names[i] = v.Tag
	}
	return names
}
