// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

// Step represents a browser test step as a state-transforming computation.
// Step[E, A] takes an immutable environment of type E and the current
// [State], and produces a value of type A paired with a new State.
//
// A Step holds no mutable fields of its own and may be run any number of
// times; composition produces new Steps and never mutates existing ones.
//
// Every Step observes the short-circuit rule: entered with a State that
// already carries an error, it performs no work, returns the zero value
// of A, and passes the State through untouched. The only exceptions are
// [Get] and [Put], which exist precisely to inspect and recover from a
// failed State.
type Step[E, A any] func(env E, st State) (A, State)

// Pure lifts a value into a step that always succeeds.
// The resulting step returns the value and leaves State unchanged.
func Pure[E, A any](a A) Step[E, A] {
	return func(_ E, st State) (A, State) {
		if st.HasErr {
			var zero A
			return zero, st
		}
		return a, st
	}
}

// Fail produces a step that always fails with the given message.
// The State's error slot becomes the message; the accumulated log is
// preserved. Entered with an already-failed State, the original error
// is propagated untouched.
func Fail[E, A any](message string) Step[E, A] {
	return func(_ E, st State) (A, State) {
		var zero A
		if st.HasErr {
			return zero, st
		}
		return zero, st.withError(message)
	}
}
