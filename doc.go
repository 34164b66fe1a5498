// Package goACL provides an embeddable access-control engine for contract
// hosts: a closed role registry, a persistent per-role membership store with
// admin-gated grants, and a declarative policy check evaluated before a
// guarded method executes.
//
// The package is designed to sit behind a host framework's method dispatch:
// the host supplies the caller identity per call (see [WithCaller]), invokes
// [Engine.Check] or wraps methods with [Engine.Guarded] before running a
// method body, and seeds the initial admin set exactly once at contract
// initialization through [Builder] or the unchecked bootstrap operations.
//
// # Architecture boundaries
//
// goACL is the public surface. It exposes [Engine], [Builder], [Config],
// [Policy], and the audit/metrics value types. Bitmask layout lives in
// role/, persistence backends in store/, host-dispatch adapters in
// middleware/.
//
// # What this package must NOT do
//
//   - Expose store backends or mask encodings in Engine method signatures.
//   - Perform I/O before [Builder.Build] (construction is allocation-only;
//     Build seeds the configured admins and is the one init-phase write).
//   - Retry or locally recover authorization failures: ErrUnauthorized and
//     ErrAuthorizationDenied are terminal for the current call.
//
// # Performance contract
//
// Check is the hot path. It performs exactly one store read per call (the
// caller's mask snapshot) and evaluates the policy with short-circuiting;
// admin-gated mutations are allowed one read per involved account (the
// caller's mask for the gate, the target's for the flip) plus one write.
package goACL
