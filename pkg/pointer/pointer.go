// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Update payloads use pointers to tell "absent" from "empty"; these helpers
keep that distinction from spreading nil checks through the services.
*/
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Apply calls set with *p when p is non-nil.
func Apply[T any](p *T, set func(T)) {
	if p != nil {
		set(*p)
	}
}
