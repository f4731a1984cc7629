/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package dynprops

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

// register appends an initializer to the subject registry and returns the
// property bound to the new index. Never fails; indices strictly increase.
func register[T Extend, P any](s *Subject[T], kind InitKind, init func(obj T) P) Property[T, P] {
	fn := func(obj T) any {
		v := init(obj)
		return &v
	}
	s.mu.Lock()
	idx := len(s.inits)
	s.inits = append(s.inits, initEntry[T]{kind: kind, fn: fn})
	s.mu.Unlock()
	return Property[T, P]{subject: s, index: idx, kind: kind}
}

// initFor returns the initializer registered for the given property index
func (s *Subject[T]) initFor(idx int) func(obj T) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inits[idx].fn
}

// Returns the count of properties registered so far
func (s *Subject[T]) PropCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inits)
}

// NewData creates empty PropertyData bound to this subject
func (s *Subject[T]) NewData() PropertyData {
	return PropertyData{subject: s}
}

// Returns the index of this property within its subject registry.
// Indices are dense, stable and strictly increasing in registration order.
func (p Property[T, P]) Index() int { return p.index }

// Returns how values of this property are initialized on first access
func (p Property[T, P]) InitKind() InitKind { return p.kind }

// Gets the value of this property on the given object, realizing it first if
// needed. Realization of a func-initialized property may read sibling
// properties on the same object, realizing them transitively; a property that
// (transitively) reads itself panics with ErrCyclicInitError.
func (p Property[T, P]) Get(obj T) P {
	return *p.GetRef(obj)
}

// GetRef gets a mutable reference to the value of this property on the given
// object, realizing it first if needed. Mutations through the reference are
// seen by subsequent Get calls.
func (p Property[T, P]) GetRef(obj T) *P {
	d := obj.PropData()
	d.bind(p.subject)
	d.grow(p.index)
	if sl := &d.slots[p.index]; sl.state == slotState_Realized {
		return sl.value.(*P)
	}
	return p.realize(obj, d)
}

// Sets the value of this property on the given object. The slot is marked
// realized, the initializer is not invoked.
func (p Property[T, P]) Set(obj T, value P) {
	d := obj.PropData()
	d.bind(p.subject)
	d.grow(p.index)
	sl := &d.slots[p.index]
	sl.state = slotState_Realized
	sl.value = &value
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("property #%d overwritten", p.index))
	}
}

// Returns whether this property is already realized on the given object.
// Never triggers initialization.
func (p Property[T, P]) IsRealized(obj T) bool {
	d := obj.PropData()
	d.bind(p.subject)
	return p.index < len(d.slots) && d.slots[p.index].state == slotState_Realized
}

func (p Property[T, P]) realize(obj T, d *PropertyData) *P {
	sl := &d.slots[p.index]
	if sl.state == slotState_Realizing {
		panic(ErrCyclicInit("property #%d is read from its own initializer", p.index))
	}
	sl.state = slotState_Realizing

	committed := false
	defer func() {
		if !committed {
			// initializer panicked, leave the slot retryable
			if sl := &d.slots[p.index]; sl.state == slotState_Realizing {
				sl.state = slotState_Free
			}
		}
	}()

	v := p.subject.initFor(p.index)(obj)

	// the initializer may have realized siblings and grown the slot table,
	// or even Set this very property; reacquire and let a Set value win
	sl = &d.slots[p.index]
	if sl.state != slotState_Realized {
		sl.state = slotState_Realized
		sl.value = v
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("property #%d (%s) realized", p.index, p.kind.TrimString()))
		}
	}
	committed = true
	return sl.value.(*P)
}

// bind attaches the data to the subject on first touch and rejects properties
// of a foreign subject afterwards
func (d *PropertyData) bind(subject any) {
	if d.subject == nil {
		d.subject = subject
		return
	}
	if d.subject != subject {
		panic(ErrSubjectMismatch("property of a foreign subject used against this object"))
	}
}

// grow extends the slot table to serve the given property index. Properties
// registered after the data was created get their slots here on demand.
func (d *PropertyData) grow(idx int) {
	if idx < len(d.slots) {
		return
	}
	n := idx + 1 - len(d.slots)
	if cap(d.slots) == 0 && n < initialSlotsCap {
		n = initialSlotsCap
	}
	d.slots = slices.Grow(d.slots, n)
	d.slots = d.slots[:idx+1]
}
