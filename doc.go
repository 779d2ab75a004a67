// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package isotope provides a computation abstraction for sequencing
// browser-driven UI test steps.
//
// The core type [Step] represents a deferred, possibly-failing,
// state-transforming operation: a function from an immutable environment
// and a [State] to a result value paired with a new State. Steps compose
// through a small set of combinators, short-circuit on the first failure,
// and can be retried until a condition or deadline is met.
//
// # Design Philosophy
//
// isotope provides:
//   - A single composition protocol: func(env, state) -> (value, state)
//   - Failure as data — an optional message on State, never a thrown error
//   - Explicit retry loops with wall-clock deadlines and attempt budgets
//   - A tree-shaped log trace with balanced, labelled contexts
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: Lift a value into a step that always succeeds
//   - [Bind]: Sequence two steps, short-circuiting on failure
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Pure(f(a)))
//   - [Then]: Sequence, discarding first result
//   - [BindMap]: Bind with a projection combining both results
//
// State and environment access:
//
//   - [Get] / [Put]: Read or wholesale-replace the threaded State
//   - [Ask] / [Asks]: Read the immutable environment, optionally projected
//   - [Configure] / [ConfigValue]: Bulk-set and query the string configuration
//
// Failure:
//
//   - [Fail]: Record a failure message on State
//   - [Attempt] / [AttemptAs]: Lift a raw driver call, converting errors
//     and recovered panics into failure messages
//
// # Aggregation
//
//   - [Sequence]: Run steps strictly in order, stopping at the first failure
//   - [Collect]: Run every step, merging state and joining all failure
//     messages with " | " for a full report
//
// # Retry Engine
//
// The retry combinators use explicit loops bounded by wall-clock time or
// attempt count. Time is read through the [Clock] on [Settings], so tests
// can substitute a fake clock and never sleep for real.
//
//   - [WaitUntil] / [WaitUntilWith]: Poll until the condition stops asking
//     to retry or the deadline elapses, then fail with a timeout
//   - [DoWhile]: Bounded repetition; exhausting the budget truncates silently
//   - [DoWhileOrFail] / [DoWhileOrFailEvery]: Bounded repetition that fails
//     with a caller-supplied message on exhaustion
//   - [Pause]: Block for a fixed duration
//
// # Logging
//
//   - [WriteLog]: Append a flat message to the current context
//   - [PushLog] / [PopLog]: Open and close a named nested context
//   - [Context]: push → run → pop, closing the context even on failure
//
// Every recorded message is also passed to the Settings logging action.
//
// # Execution
//
//   - [Run] / [RunWith]: Execute a step against an initial State, disposing
//     the driver handle when Settings ask for it; never panics
//   - [MustRun] / [MustRunWith]: Like Run, but a failed final State invokes
//     the Settings failure action and panics with a [*FailureError]
//
// # Failure Semantics
//
// Failure is purely state-carried: once State holds an error, every
// combinator refuses to perform work and passes the error through
// untouched, returning the zero value of its result type. Recovery is
// only possible explicitly, by inspecting with [Get] and replacing with
// [Put]. [Collect] is the one built-in that clears errors internally,
// recording each one into its aggregate instead.
package isotope
