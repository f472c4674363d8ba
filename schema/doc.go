// Package schema describes the resolved data model the client generator
// compiles from.
//
// The package is the contract between the schema database that owns parsing
// and validation and the synthesis core in compiler/gen. It holds read-only
// descriptors only:
//
//   - [Entity]: a model with fields, primary key and unique indexes
//   - [Composite]: a structured value type embedded in entities
//   - [Enum]: a named set of string values
//   - [Field]: name, kind, arity, type and uniqueness of one field
//   - [Catalogue]: the filter methods a scalar type supports
//
// A [Walker] exposes all of the above. [Schema] is the in-memory
// implementation produced by compiler/load:
//
//	s := schema.New(
//	    []*schema.Entity{{
//	        Name:       "User",
//	        PrimaryKey: []string{"id"},
//	        Fields: []*schema.Field{
//	            {Name: "id", Kind: schema.KindScalar, Type: schema.TypeInt, IsPrimaryKey: true},
//	            {Name: "posts", Kind: schema.KindRelation, Arity: schema.List, Type: "Post"},
//	        },
//	    }},
//	    nil, nil,
//	)
//
// Descriptors are never mutated once a Walker has been handed to the
// generator.
package schema
