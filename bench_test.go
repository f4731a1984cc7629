/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package dynprops_test

import (
	"testing"

	"github.com/untillpro/dynprops"
)

func BenchmarkGetRealized(b *testing.B) {
	subject := dynprops.NewSubject[*Dynamic]()
	prop := dynprops.NewPropConst(subject, 42)

	obj := &Dynamic{}
	_ = prop.Get(obj)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prop.Get(obj)
	}
}

func BenchmarkRealize(b *testing.B) {
	subject := dynprops.NewSubject[*Dynamic]()
	prop := dynprops.NewPropConst(subject, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obj := &Dynamic{}
		_ = prop.Get(obj)
	}
}

func BenchmarkSet(b *testing.B) {
	subject := dynprops.NewSubject[*Dynamic]()
	prop := dynprops.NewPropDefault[*Dynamic, int](subject)

	obj := &Dynamic{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prop.Set(obj, i)
	}
}

func BenchmarkChainedRealize(b *testing.B) {
	subject := dynprops.NewSubject[*Dynamic]()
	base := dynprops.NewPropConst(subject, 1)
	derived := dynprops.NewPropFn(subject, func(o *Dynamic) int { return base.Get(o) + 1 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obj := &Dynamic{}
		_ = derived.Get(obj)
	}
}
