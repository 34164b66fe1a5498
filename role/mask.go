package role

// SuperAdminBit is the reserved bit position for the super-admin flag.
// A super-admin passes every admin check but never a membership check.
const SuperAdminBit = 0

// Mask is the interface satisfied by all bitmask widths ([Mask64], [Mask128]).
type Mask interface {
	Has(bit int) bool
	Set(bit int)
	Clear(bit int)
	IsZero() bool
	Bits() int
}

// Mask64 is a 64-bit permission mask.
type Mask64 uint64

func (m *Mask64) Has(bit int) bool {
	if bit < 0 || bit >= 64 {
		return false
	}
	return (*m & (1 << bit)) != 0
}

func (m *Mask64) Set(bit int) {
	if bit < 0 || bit >= 64 {
		return
	}
	*m |= (1 << bit)
}

func (m *Mask64) Clear(bit int) {
	if bit < 0 || bit >= 64 {
		return
	}
	*m &^= (1 << bit)
}

func (m *Mask64) IsZero() bool {
	return *m == 0
}

func (m *Mask64) Bits() int {
	return 64
}

// Mask128 is a 128-bit permission mask stored as two big-endian words.
type Mask128 struct {
	A uint64 // bits 64..127
	B uint64 // bits 0..63
}

func (m *Mask128) Has(bit int) bool {
	switch {
	case bit < 0 || bit >= 128:
		return false
	case bit < 64:
		return (m.B & (1 << bit)) != 0
	default:
		return (m.A & (1 << (bit - 64))) != 0
	}
}

func (m *Mask128) Set(bit int) {
	switch {
	case bit < 0 || bit >= 128:
	case bit < 64:
		m.B |= 1 << bit
	default:
		m.A |= 1 << (bit - 64)
	}
}

func (m *Mask128) Clear(bit int) {
	switch {
	case bit < 0 || bit >= 128:
	case bit < 64:
		m.B &^= 1 << bit
	default:
		m.A &^= 1 << (bit - 64)
	}
}

func (m *Mask128) IsZero() bool {
	return m.A == 0 && m.B == 0
}

func (m *Mask128) Bits() int {
	return 128
}
