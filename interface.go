/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Creating and extending objects with typed dynamic properties
package dynprops

// Extend is the capability to carry values of arbitrary properties.
//
// A struct opts in by embedding a PropertyData field and exposing it:
//
//	type Tire struct {
//		Kind  *TireKind
//		props dynprops.PropertyData
//	}
//
//	func (t *Tire) PropData() *dynprops.PropertyData { return &t.props }
//
// Types that can not be changed are wrapped with Extended instead.
type Extend interface {

	// Returns the property data of this object.
	// Must return the same PropertyData every time it is called.
	PropData() *PropertyData
}
