// Package optional provides an explicit present/absent value.
//
// Route arguments and catalog lookups may legitimately have nothing to carry.
// Value makes that visible in the type instead of relying on empty strings or
// nil pointers.
package optional

import "fmt"

// Value holds either a present value of type T or nothing.
// The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a present Value wrapping v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromString treats the empty string as absent.
func FromString(s string) Value[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// FromPointer treats nil as absent and otherwise copies the pointee.
func FromPointer[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// OrElse returns the held value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if !v.present {
		return fallback
	}
	return v.value
}

func (v Value[T]) String() string {
	if !v.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", v.value)
}
