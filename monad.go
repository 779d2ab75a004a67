// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

// Monad operations for steps.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map, Then and BindMap are derived operations kept as conveniences to
// avoid intermediate Pure wrappers at call sites.

// Bind sequences two steps (monadic bind).
// Entered with a failed State, neither step runs. Otherwise m runs first,
// and only if its resulting State is error-free does f receive m's value
// and produce the continuation step, which runs against that State.
func Bind[E, A, B any](m Step[E, A], f func(A) Step[E, B]) Step[E, B] {
	return func(env E, st State) (B, State) {
		var zero B
		if st.HasErr {
			return zero, st
		}
		a, next := m(env, st)
		if next.HasErr {
			return zero, next
		}
		return f(a)(env, next)
	}
}

// Map applies a pure function to the result of a step.
// If the underlying step fails, f is not invoked and the result is the
// zero value of B alongside the failed State.
func Map[E, A, B any](m Step[E, A], f func(A) B) Step[E, B] {
	return func(env E, st State) (B, State) {
		var zero B
		if st.HasErr {
			return zero, st
		}
		a, next := m(env, st)
		if next.HasErr {
			return zero, next
		}
		return f(a), next
	}
}

// Then sequences two steps, discarding the first result.
// Equivalent to Bind(m, func(_ A) Step[E, B] { return n }) without the
// closure capture.
func Then[E, A, B any](m Step[E, A], n Step[E, B]) Step[E, B] {
	return func(env E, st State) (B, State) {
		var zero B
		if st.HasErr {
			return zero, st
		}
		_, next := m(env, st)
		if next.HasErr {
			return zero, next
		}
		return n(env, next)
	}
}

// BindMap sequences m with the step produced by f, then combines both
// results with project when both succeed. This is the projection form of
// Bind: the analogue of a two-source query comprehension.
func BindMap[E, A, B, C any](m Step[E, A], f func(A) Step[E, B], project func(A, B) C) Step[E, C] {
	return func(env E, st State) (C, State) {
		var zero C
		if st.HasErr {
			return zero, st
		}
		a, next := m(env, st)
		if next.HasErr {
			return zero, next
		}
		b, final := f(a)(env, next)
		if final.HasErr {
			return zero, final
		}
		return project(a, b), final
	}
}
