package role

import (
	"errors"
	"sync"
)

// Role is an opaque handle to a registered role. The zero value is not a
// valid role; obtain handles from [Registry.Register] or [Registry.Lookup].
type Role struct {
	name  string
	index int
}

// Name returns the role's registered name.
func (r Role) Name() string {
	return r.name
}

// MemberBit returns the mask bit position holding membership of the role.
func (r Role) MemberBit() int {
	return 2*r.index + 1
}

// AdminBit returns the mask bit position holding admin status for the role.
func (r Role) AdminBit() int {
	return 2*r.index + 2
}

// Registry holds the closed set of roles for one contract. Roles are
// registered during initialization and the set is frozen before first use;
// the role set never changes afterwards.
type Registry struct {
	maxBits int

	mu          sync.RWMutex
	nameToIndex map[string]int
	names       []string
	frozen      bool
}

// NewRegistry creates a role [Registry]. maxBits selects the mask width
// (64 or 128); capacity is (maxBits-1)/2 roles because every role owns a
// member bit and an admin bit, and bit 0 is reserved for super-admin.
func NewRegistry(maxBits int) (*Registry, error) {
	if maxBits != 64 && maxBits != 128 {
		return nil, errors.New("invalid maxBits")
	}

	return &Registry{
		maxBits:     maxBits,
		nameToIndex: make(map[string]int),
	}, nil
}

// Register assigns the next available index to the named role. Must be
// called before [Registry.Freeze].
func (r *Registry) Register(name string) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return Role{}, errors.New("registry frozen")
	}

	if name == "" {
		return Role{}, errors.New("role name cannot be empty")
	}

	if _, exists := r.nameToIndex[name]; exists {
		return Role{}, errors.New("role already registered")
	}

	next := len(r.names)
	if next >= r.capacity() {
		return Role{}, errors.New("role limit exceeded")
	}

	r.nameToIndex[name] = next
	r.names = append(r.names, name)

	return Role{name: name, index: next}, nil
}

// Lookup returns the handle for the named role, or false if not registered.
func (r *Registry) Lookup(name string) (Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	index, ok := r.nameToIndex[name]
	if !ok {
		return Role{}, false
	}
	return Role{name: name, index: index}, true
}

// Roles enumerates the full registered set in registration order. Used by
// all-of policies that gate on the whole registry.
func (r *Registry) Roles() []Role {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Role, 0, len(r.names))
	for i, name := range r.names {
		out = append(out, Role{name: name, index: i})
	}
	return out
}

// Freeze prevents further registrations. Must be called before the registry
// is used for authorization decisions.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Count returns the number of registered roles.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Capacity returns the maximum number of roles the mask width allows.
func (r *Registry) Capacity() int {
	return r.capacity()
}

func (r *Registry) capacity() int {
	return (r.maxBits - 1) / 2
}

// NewMask allocates an empty mask of the registry's configured width.
func (r *Registry) NewMask() Mask {
	if r.maxBits == 128 {
		return &Mask128{}
	}
	m := Mask64(0)
	return &m
}
