// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import "strings"

// errorSeparator joins the failure messages aggregated by Collect.
const errorSeparator = " | "

// Sequence executes the steps strictly in order, threading State from
// one to the next. It stops at the first step whose resulting State
// carries an error; the remaining steps never run and the error State is
// returned as-is. On full success it returns the produced values in
// order.
//
// Sequence models steps with strict prerequisites: log in before
// navigating to the dashboard.
func Sequence[E, A any](steps []Step[E, A]) Step[E, []A] {
	return func(env E, st State) ([]A, State) {
		if st.HasErr {
			return nil, st
		}
		out := make([]A, 0, len(steps))
		for _, m := range steps {
			var v A
			v, st = m(env, st)
			if st.HasErr {
				return nil, st
			}
			out = append(out, v)
		}
		return out, st
	}
}

// Collect executes every step, recording each failure instead of
// stopping, and joins all failure messages with " | " in execution
// order. Steps are not isolated: each one starts from the State as
// mutated by the previous, minus its error. Values produced by failed
// steps are the zero value in their slot.
//
// The log forms a window around the loop: it is cleared on entry and the
// caller's pre-collect log is restored on return, so per-step logs
// recorded inside the window are discarded. Callers needing them must
// capture them from within the steps themselves.
//
// Collect models independent assertions where the tester wants the full
// failure report rather than the first broken check.
func Collect[E, A any](steps []Step[E, A]) Step[E, []A] {
	return func(env E, st State) ([]A, State) {
		if st.HasErr {
			return nil, st
		}
		snapshot := st.Log
		st.Log = Log{}
		out := make([]A, 0, len(steps))
		var failures []string
		for _, m := range steps {
			var v A
			v, st = m(env, st)
			out = append(out, v)
			if st.HasErr {
				failures = append(failures, st.Err)
				st = st.clearError()
			}
		}
		st.Log = snapshot
		if len(failures) > 0 {
			return out, st.withError(strings.Join(failures, errorSeparator))
		}
		return out, st
	}
}
