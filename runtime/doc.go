// Package runtime holds the types generated clients are built on.
//
// It has two halves. The wire model ([Value], [Field], [Selection],
// [Operation]) is the tagged-value protocol understood by the query engine.
// The capability model ([ModelOperation], [ModelQuery] and the generic query
// types) decides which builder methods a query value exposes, so that an
// operation that does not support ordering has no OrderBy method at all.
//
// Generated code never builds wire values by hand. Each variant of a
// generated filter or mutation parameter serializes through one of the rule
// functions in this package ([IsNull], [Where], [Method], [Upsert], ...), so
// the generator and the generated client agree on the exact shape.
package runtime
