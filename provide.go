/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package dynprops

// Creates a new subject with no properties registered
func NewSubject[T Extend]() *Subject[T] {
	return &Subject[T]{}
}

// Registers a new property on the subject whose values are initialized to a
// fresh copy of the given value. For reference-typed P the copies share the
// backing data of value.
func NewPropConst[T Extend, P any](s *Subject[T], value P) Property[T, P] {
	return register(s, InitKind_Const, func(T) P { return value })
}

// Registers a new property on the subject whose values are initialized to the
// zero value of P:
//
//	prop := dynprops.NewPropDefault[*Dynamic, uint32](subject)
func NewPropDefault[T Extend, P any](s *Subject[T]) Property[T, P] {
	return register(s, InitKind_Default, func(T) (p P) { return })
}

// Registers a new property on the subject whose values are initialized by the
// given function. The function receives the live object and may read its other
// properties, including not yet realized ones.
func NewPropFn[T Extend, P any](s *Subject[T], init func(obj T) P) Property[T, P] {
	return register(s, InitKind_Func, init)
}

// Creates an Extended wrapper owning the given base value, with empty
// PropertyData bound to the subject
func NewExtended[B any](s *Subject[*Extended[B]], value B) *Extended[B] {
	return &Extended[B]{Value: value, data: s.NewData()}
}
