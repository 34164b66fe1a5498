// Package role provides the closed role registry and the fixed-size
// permission bitmasks used by goACL authorization checks.
//
// # Bit layout
//
// Bit 0 is reserved for the super-admin flag. A role registered at index i
// owns two independent bits: the member bit at position 2i+1 and the admin
// bit at position 2i+2. Granting admin never implies membership and vice
// versa.
//
// # Mask sizes
//
// Supported widths: 64 and 128 bits, selected at registry construction time
// and immutable thereafter. A 64-bit mask holds up to 31 roles, a 128-bit
// mask up to 63.
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O. It provides
// the codec (EncodeMask/DecodeMask) used by the membership store backends.
//
// # What this package must NOT do
//
//   - Access Redis, databases, or the network.
//   - Import goACL, store, or middleware.
//   - Accept new registrations after Freeze.
package role
