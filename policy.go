package goACL

// PolicyKind selects how a policy's role set is evaluated.
type PolicyKind uint8

const (
	// PolicySingle requires one designated role. Behaviorally identical to
	// PolicyAnyOf with a singleton set.
	PolicySingle PolicyKind = iota
	// PolicyAnyOf requires at least one of the listed roles.
	PolicyAnyOf
	// PolicyAllOf requires every listed role.
	PolicyAllOf
)

// Policy is the resolved authorization requirement of one guarded method.
// The host's code-generation or dispatch layer produces it at build time;
// the engine only sees the resolved value at call time.
//
// By default a policy gates on membership. Setting Admin gates on admin
// status instead (membership and admin bits are independent).
type Policy struct {
	Kind  PolicyKind
	Roles []string
	Admin bool
}

// Single declares a policy requiring membership of exactly one role.
func Single(role string) Policy {
	return Policy{Kind: PolicySingle, Roles: []string{role}}
}

// AnyOf declares a policy satisfied by membership of at least one role.
// Role order affects evaluation cost only, never the result.
func AnyOf(roles ...string) Policy {
	return Policy{Kind: PolicyAnyOf, Roles: roles}
}

// AllOf declares a policy requiring membership of every listed role.
func AllOf(roles ...string) Policy {
	return Policy{Kind: PolicyAllOf, Roles: roles}
}

// RequireAdmin returns a copy of the policy that gates on admin bits
// instead of member bits. A super-admin satisfies every admin-gated policy.
func (p Policy) RequireAdmin() Policy {
	p.Admin = true
	return p
}
