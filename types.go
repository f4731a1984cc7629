/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package dynprops

import (
	"strconv"
	"strings"
	"sync"
)

// Subject identifies a category of objects and the dynamic set of properties
// that applies to those objects.
//
// A subject may be shared between goroutines: registration is serialized by an
// internal lock, initializer lookup takes a read lock only. Registrations are
// append-only, property indices are never reused or reordered.
type Subject[T Extend] struct {
	mu    sync.RWMutex
	inits []initEntry[T]
}

type initEntry[T Extend] struct {
	kind InitKind
	// produces *P boxed into any, see register()
	fn func(obj T) any
}

// Property identifies one property registered on a Subject[T] and carries the
// value type P. A property is only valid against PropertyData bound to the
// subject it was registered on; use against another subject panics with
// ErrSubjectMismatchError.
type Property[T Extend, P any] struct {
	subject *Subject[T]
	index   int
	kind    InitKind
}

// InitKind specifies how a property value is produced on first access
type InitKind uint8

const (
	// null - no-value kind, zero Property only
	InitKind_null InitKind = iota

	InitKind_Const
	InitKind_Default
	InitKind_Func

	InitKind_count
)

func (k InitKind) String() string {
	switch k {
	case InitKind_Const:
		return "InitKind_Const"
	case InitKind_Default:
		return "InitKind_Default"
	case InitKind_Func:
		return "InitKind_Func"
	case InitKind_null:
		return "InitKind_null"
	}
	return "InitKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Renders an InitKind in human-readable form, without "InitKind_" prefix,
// suitable for debugging or error messages
func (k InitKind) TrimString() string {
	const pref = "InitKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// PropertyData encapsulates the realized property values of one object.
//
// Not safe for concurrent use: one PropertyData belongs to one object and is
// accessed from one goroutine at a time, unless the application locks around
// it. The zero value is ready to use and binds itself to the subject of the
// first property that touches it; Subject.NewData binds explicitly.
type PropertyData struct {
	subject any // *Subject[T], nil until bound
	slots   []slot
}

type slot struct {
	state slotState
	value any // *P
}

type slotState uint8

const (
	slotState_Free slotState = iota
	slotState_Realizing
	slotState_Realized
)

// Extended pairs an owned base value with PropertyData bound to a subject, for
// types that can not (or should not) embed PropertyData themselves. The
// subject must outlive the wrapper.
type Extended[B any] struct {
	Value B

	data PropertyData
}

func (e *Extended[B]) PropData() *PropertyData { return &e.data }
