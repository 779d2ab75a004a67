// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import "fmt"

// Failure conversion at the driver boundary.
//
// The error taxonomy is a single descriptive string per State: not-found,
// timeout, exception-wrapped, aggregated and explicit failures all render
// as messages. Driver calls must never throw past the step boundary, so
// the lifting helpers here convert returned errors and recovered panics
// into state-carried failures.

// Attempt lifts a raw driver call into a step. The call receives the
// State's driver handle; a returned error or a recovered panic becomes
// the failure message. With no driver attached the step fails without
// invoking f.
func Attempt[E, A any](f func(Driver) (A, error)) Step[E, A] {
	return AttemptAs[E]("", f)
}

// AttemptAs is [Attempt] with a custom label prefixed to the failure
// message.
func AttemptAs[E, A any](label string, f func(Driver) (A, error)) Step[E, A] {
	return func(_ E, st State) (A, State) {
		var zero A
		if st.HasErr {
			return zero, st
		}
		if st.Driver == nil {
			return zero, st.withError(decorate(label, "no driver attached"))
		}
		v, err := protect(f, st.Driver)
		if err != nil {
			return zero, st.withError(decorate(label, err.Error()))
		}
		return v, st
	}
}

// protect invokes f, converting a panic into a returned error.
func protect[A any](f func(Driver) (A, error), d Driver) (v A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return f(d)
}

func decorate(label, message string) string {
	if label == "" {
		return message
	}
	return label + ": " + message
}
