// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"cmp"

	"code.hybscloud.com/kont"
)

// Match extracts a value of type V from a ready value of type T.
// Returning false rejects the value: the branch is completed without firing
// and is never polled again.
type Match[T, V any] func(T) (V, bool)

// Any matches every value.
func Any[T any]() Match[T, T] {
	return func(v T) (T, bool) { return v, true }
}

// Equal matches values equal to want.
func Equal[T comparable](want T) Match[T, T] {
	return func(v T) (T, bool) { return v, v == want }
}

// OneOf matches values equal to any of alts.
func OneOf[T comparable](alts ...T) Match[T, T] {
	return func(v T) (T, bool) {
		for _, a := range alts {
			if v == a {
				return v, true
			}
		}
		return v, false
	}
}

// InRange matches values in the closed interval [lo, hi].
func InRange[T cmp.Ordered](lo, hi T) Match[T, T] {
	return func(v T) (T, bool) { return v, lo <= v && v <= hi }
}

// Where matches values satisfying pred.
func Where[T any](pred func(T) bool) Match[T, T] {
	return func(v T) (T, bool) { return v, pred(v) }
}

// RightOf matches the Right side of an Either and binds its value.
func RightOf[E, A any]() Match[kont.Either[E, A], A] {
	return func(e kont.Either[E, A]) (A, bool) { return e.GetRight() }
}

// LeftOf matches the Left side of an Either and binds its value.
func LeftOf[E, A any]() Match[kont.Either[E, A], E] {
	return func(e kont.Either[E, A]) (E, bool) { return e.GetLeft() }
}

// Ok matches a delivered Received value and binds it.
// A Received from a closed channel is rejected.
func Ok[T any]() Match[Received[T], T] {
	return func(r Received[T]) (T, bool) { return r.Value, r.OK }
}
