// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import (
	"fmt"
	"time"
)

// Retry engine.
//
// All repetition is driven by explicit loops, never recursion, so attempt
// count puts no pressure on the stack. Time comes from the Settings
// [Clock]: a single start timestamp is captured before the first attempt
// and never reset. Sleeping is a blocking pause of the calling goroutine;
// it is not cancellable mid-sleep, only naturally bounded by the deadline
// check on the next iteration.
//
// In every combinator the condition answers "keep retrying?": true means
// run again, false means accept the current value and stop.

// WaitUntil polls m with the Settings default interval and wait deadline.
// See [WaitUntilWith].
func WaitUntil[E, A any](m Step[E, A], keepWaiting func(A) bool) Step[E, A] {
	return WaitUntilWith(m, keepWaiting, NullDuration{}, NullDuration{})
}

// WaitUntilWith repeatedly runs m, inspecting each produced value with
// keepWaiting. While keepWaiting reports true it sleeps for interval and
// tries again; once it reports false the value is returned immediately.
// When the cumulative elapsed time since the first attempt reaches the
// wait deadline the step fails with a timeout error instead of retrying
// further. The first attempt is always made, so a zero wait means exactly
// one attempt.
//
// Null interval and wait arguments resolve to the Settings defaults. A
// failure inside m stops the loop and propagates.
func WaitUntilWith[E, A any](m Step[E, A], keepWaiting func(A) bool, interval, wait NullDuration) Step[E, A] {
	return func(env E, st State) (A, State) {
		var zero A
		if st.HasErr {
			return zero, st
		}
		every := interval.or(st.Settings.Interval)
		deadline := wait.or(st.Settings.Wait)
		clk := st.Settings.clock()
		start := clk.Now()
		for {
			var v A
			v, st = m(env, st)
			if st.HasErr {
				return zero, st
			}
			if !keepWaiting(v) {
				return v, st
			}
			if clk.Now().Sub(start) >= deadline {
				return zero, st.withError(fmt.Sprintf("timed out after %s waiting for condition", deadline))
			}
			clk.Sleep(every)
		}
	}
}

// DoWhile runs m while keepGoing reports true, at most maxRepeats times.
// Exhausting the budget returns the zero value without failing — silent
// truncation. Callers relying on a definite outcome must combine DoWhile
// with an explicit check, or use [DoWhileOrFail].
func DoWhile[E, A any](m Step[E, A], keepGoing func(A) bool, maxRepeats int) Step[E, A] {
	return func(env E, st State) (A, State) {
		var zero A
		if st.HasErr {
			return zero, st
		}
		for range maxRepeats {
			var v A
			v, st = m(env, st)
			if st.HasErr {
				return zero, st
			}
			if !keepGoing(v) {
				return v, st
			}
		}
		return zero, st
	}
}

// DoWhileOrFail is [DoWhile] with a definite outcome: exhausting the
// attempt budget fails with failureMessage.
func DoWhileOrFail[E, A any](m Step[E, A], keepGoing func(A) bool, failureMessage string, maxRepeats int) Step[E, A] {
	return DoWhileOrFailEvery(m, keepGoing, failureMessage, maxRepeats, 0)
}

// DoWhileOrFailEvery is [DoWhileOrFail] sleeping for interval between
// attempts. No sleep follows the final attempt.
func DoWhileOrFailEvery[E, A any](m Step[E, A], keepGoing func(A) bool, failureMessage string, maxRepeats int, interval time.Duration) Step[E, A] {
	return func(env E, st State) (A, State) {
		var zero A
		if st.HasErr {
			return zero, st
		}
		clk := st.Settings.clock()
		for i := range maxRepeats {
			var v A
			v, st = m(env, st)
			if st.HasErr {
				return zero, st
			}
			if !keepGoing(v) {
				return v, st
			}
			if interval > 0 && i < maxRepeats-1 {
				clk.Sleep(interval)
			}
		}
		return zero, st.withError(failureMessage)
	}
}

// Pause blocks the executing goroutine for d via the Settings clock,
// leaving State unchanged.
func Pause[E any](d time.Duration) Step[E, struct{}] {
	return func(_ E, st State) (struct{}, State) {
		if st.HasErr {
			return struct{}{}, st
		}
		st.Settings.clock().Sleep(d)
		return struct{}{}, st
	}
}
