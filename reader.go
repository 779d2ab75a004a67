// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

// Environment access.
// The environment is an arbitrary caller-supplied immutable value (test
// fixture data, base URLs, credentials) passed alongside State into every
// step invocation. The core never mutates it; its lifetime is one run.

// Ask returns the environment as the step's value, State unchanged.
func Ask[E any]() Step[E, E] {
	return func(env E, st State) (E, State) {
		if st.HasErr {
			var zero E
			return zero, st
		}
		return env, st
	}
}

// Asks returns a projection of the environment, State unchanged.
// Equivalent to Map(Ask, f) without the intermediate step.
func Asks[E, A any](f func(E) A) Step[E, A] {
	return func(env E, st State) (A, State) {
		if st.HasErr {
			var zero A
			return zero, st
		}
		return f(env), st
	}
}
