// Package store provides membership store backends for goACL: an in-memory
// map for hosts that keep contract state resident, and a Redis backend for
// hosts that externalize it.
//
// # Design
//
// The store is an abstract account → blob mapping. It never interprets the
// blob (the engine owns the mask codec) and it never fails on unknown
// accounts: an absent account is an empty permission set. Authorization is
// enforced by the engine, not here.
//
// # What this package must NOT do
//
//   - Decide whether a mutation is permitted.
//   - Decode mask blobs or depend on their layout.
//   - Import goACL (the engine imports this package, never the reverse).
package store
