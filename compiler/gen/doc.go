// Package gen synthesizes the query-builder API of a data model and drives
// its emission as Go source.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Data model (schema.Walker)
//	        ↓
//	   NewGraph: capability table per field
//	        ↓
//	   Graph: one Type per entity and composite, each holding five
//	   parameter enums and one accessor per field
//	        ↓
//	   Emitter (compiler/gen/golang)
//	        ↓
//	   writeFile: goimports, then a single output file
//
// # Parameter Enums
//
// Every entity gets five enums. Composite types get the first, third and
// fourth.
//
//   - WhereParam: filters
//   - UniqueWhereParam: unique lookups; every member is also a filter
//   - SetParam: mutations
//   - OrderByParam: ordering
//   - WithParam: eager loading of relations
//
// Each enum member is a Variant: a tag unique within the enum, the field it
// serializes under, a payload and a serialization Rule. WhereParam and
// UniqueWhereParam share their tag space.
//
// # Capabilities
//
// Which variants a field gets depends only on its kind (scalar, relation,
// composite), its arity (required, optional, list) and its uniqueness. The
// mapping is the table returned by Capabilities:
//
//	posts  Post[]   => Every Some None | Connect Disconnect | Fetch
//	author User     => Is IsNot        | Connect            | Fetch
//	email  String @unique   => Equals is a unique lookup
//	handle String? @unique  => Equals is both a filter and a unique lookup
//
// Composite mutations that need a create input (Set, Upsert, Push) are
// only synthesized when the composite can be created, i.e. every field it
// requires on create can be represented.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: a data model the synthesizer rejects
//   - ConfigError: an invalid option
//   - RelationError: a relation to an unknown entity
//   - GenerationError: a failure while emitting or writing the output
//
// Example error handling:
//
//	if err := gen.Generate(ctx, w, opts...); err != nil {
//	    var schemaErr *gen.SchemaError
//	    if errors.As(err, &schemaErr) {
//	        log.Printf("schema error in %s.%s: %s",
//	            schemaErr.Type, schemaErr.Field, schemaErr.Message)
//	    }
//	    if errors.Is(err, gen.ErrDuplicateTag) {
//	        // two variants of one enum share a tag
//	    }
//	}
//
// # Usage
//
//	cfg, err := gen.NewConfig(
//	    gen.WithOutput("db/db_gen.go"),
//	    gen.WithPackage("db"),
//	    gen.WithEmitter(golang.New()),
//	)
//	if err != nil {
//	    return err
//	}
//	return gen.NewGenerator(cfg, slog.Default()).Generate(ctx, walker)
package gen
