// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

// FailureError is the hard failure raised by [MustRun] and [MustRunWith]
// when the final State carries an error. It wraps the failure message
// together with the accumulated log trace.
type FailureError struct {
	Message string
	Log     Log
}

func (e *FailureError) Error() string { return e.Message }

// Run executes m against an initial empty State with [DefaultSettings]
// and no driver. It returns the produced value and the final State and
// never panics; callers inspect State.Failed for the outcome.
func Run[E, A any](m Step[E, A], env E) (A, State) {
	return RunWith(m, env, nil, DefaultSettings())
}

// RunWith executes m against an initial State pre-seeded with the given
// driver handle and settings. If the Settings in force at completion have
// DisposeOnCompletion set, the driver handle is released exactly once
// afterwards, regardless of success or failure; disposal errors are
// discarded, the run result stands. RunWith never panics.
func RunWith[E, A any](m Step[E, A], env E, driver Driver, settings Settings) (A, State) {
	st := NewState(settings)
	st.Driver = driver
	v, final := m(env, st)
	if final.Settings.DisposeOnCompletion && final.Driver != nil {
		_ = final.Driver.Close()
		final.Driver = nil
	}
	return v, final
}

// MustRun is [Run] for callers that want immediate termination on
// failure: after disposal, a failed final State first invokes the
// Settings failure action with the message and log, then panics with a
// [*FailureError].
func MustRun[E, A any](m Step[E, A], env E) (A, State) {
	return MustRunWith(m, env, nil, DefaultSettings())
}

// MustRunWith is [RunWith] with the failure behavior of [MustRun].
func MustRunWith[E, A any](m Step[E, A], env E, driver Driver, settings Settings) (A, State) {
	v, final := RunWith(m, env, driver, settings)
	if final.HasErr {
		if final.Settings.FailureAction != nil {
			final.Settings.FailureAction(final.Err, final.Log)
		}
		panic(&FailureError{Message: final.Err, Log: final.Log})
	}
	return v, final
}
