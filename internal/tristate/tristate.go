// Package tristate provides a boolean that may also be left unset so that it
// inherits its value from a broader configuration scope.
package tristate

import "beanmap/internal/common"

// Bool is a three-valued boolean. The zero value is Inherit.
type Bool uint8

const (
	// Inherit defers to the next broader scope.
	Inherit Bool = iota
	// Yes is an explicit true.
	Yes
	// No is an explicit false.
	No
)

// Of converts a plain bool into an explicit tri-state value.
func Of(b bool) Bool {
	if b {
		return Yes
	}

	return No
}

// FromPtr maps nil to Inherit and a non-nil pointer to its explicit value.
func FromPtr(b *bool) Bool {
	if b == nil {
		return Inherit
	}

	return Of(*b)
}

// Ptr is the inverse of FromPtr.
func (b Bool) Ptr() *bool {
	if b == Inherit {
		return nil
	}

	v := b == Yes

	return &v
}

// IsSet reports whether the value was given explicitly.
func (b Bool) IsSet() bool {
	return b == Yes || b == No
}

// Or returns b when it is set, otherwise next.
func (b Bool) Or(next Bool) Bool {
	if b.IsSet() {
		return b
	}

	return next
}

// Resolve returns the explicit value, or fallback when b is Inherit.
func (b Bool) Resolve(fallback bool) bool {
	switch b {
	case Yes:
		return true
	case No:
		return false
	default:
		return fallback
	}
}

// String returns a human-readable representation.
func (b Bool) String() string {
	switch b {
	case Inherit:
		return "inherit"
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return common.UnknownStr
	}
}
