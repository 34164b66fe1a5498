// Package middleware exposes an HTTP dispatch adapter for hosts that route
// contract method calls over HTTP: it resolves the caller account from a
// signed bearer token and runs the method's policy check before the handler
// executes.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. Identity comes
// from the token's subject claim; all authorization decisions are delegated
// to Engine.Check.
//
// # What this package must NOT do
//
//   - Mutate membership state.
//   - Make authorization decisions beyond pass/reject from Engine.Check.
package middleware
