package shared

import "reflect"

// ValueObject is the immutable base of every value object. It owns its props
// by value and compares structurally.
//
// Concrete types keep a ValueObject in an unexported field and expose only a
// Create factory, so the guarded factory is the one way to build them.
type ValueObject[P any] struct {
	props P
}

// NewValueObject wraps props. Only value object factories call it, after
// their guards have passed.
func NewValueObject[P any](props P) ValueObject[P] {
	return ValueObject[P]{props: props}
}

// Props returns a copy of the wrapped props.
func (v ValueObject[P]) Props() P {
	return v.props
}

// Equals reports whether both value objects hold deeply equal props.
func (v ValueObject[P]) Equals(other ValueObject[P]) bool {
	return reflect.DeepEqual(v.props, other.props)
}
