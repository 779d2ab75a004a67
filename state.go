// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import (
	"fmt"
	"maps"
)

// State is the bag of data threaded through a step chain: an optional
// driver handle, an optional error, the hierarchical log, the settings in
// force, and a string-keyed configuration mapping.
//
// State is mutable by replacement only: steps receive a State by value
// and return a new one. Exactly one chain owns a given State at a time,
// so there is no concurrent mutation to guard against.
//
// Once Err is populated, no step clears it implicitly — only an explicit
// [Put] with a fresh State may do so.
type State struct {
	// Driver is the exclusively-owned external browser handle, or nil
	// when no driver is attached.
	Driver Driver
	// Err holds the failure message when HasErr is true.
	Err    string
	HasErr bool
	// Log is the tree-shaped trace of executed steps.
	Log Log
	// Settings are the options in force for this run.
	Settings Settings
	// Configuration is the string-keyed lookup table set via [Configure].
	Configuration map[string]string
}

// NewState constructs an empty State with the given settings: no driver,
// no error, an empty log and no configuration.
func NewState(settings Settings) State {
	return State{Settings: settings}
}

// Failed reports whether the State carries an error.
func (s State) Failed() bool { return s.HasErr }

// withError returns s with the error slot set. The log is preserved.
func (s State) withError(message string) State {
	s.Err = message
	s.HasErr = true
	return s
}

// clearError returns s with the error slot emptied. Internal to Collect;
// the public recovery path is Get followed by Put.
func (s State) clearError() State {
	s.Err = ""
	s.HasErr = false
	return s
}

// Get returns the current State as the step's value, leaving it
// unchanged. Get does not short-circuit: a failed State must remain
// inspectable, as it is the first half of the explicit recovery path.
func Get[E any]() Step[E, State] {
	return func(_ E, st State) (State, State) {
		return st, st
	}
}

// Put discards the current State and replaces it wholesale with newState.
// Put does not short-circuit: replacing a failed State with a fresh one
// is the only sanctioned way to clear an error.
func Put[E any](newState State) Step[E, struct{}] {
	return func(_ E, _ State) (struct{}, State) {
		return struct{}{}, newState
	}
}

// Configure merges the given values into the State's configuration
// mapping, replacing existing keys. The mapping is copied, never mutated
// in place.
func Configure[E any](values map[string]string) Step[E, struct{}] {
	return func(_ E, st State) (struct{}, State) {
		if st.HasErr {
			return struct{}{}, st
		}
		merged := make(map[string]string, len(st.Configuration)+len(values))
		maps.Copy(merged, st.Configuration)
		maps.Copy(merged, values)
		st.Configuration = merged
		return struct{}{}, st
	}
}

// ConfigValue looks up a single configuration key, failing with a
// key-not-found error when absent.
func ConfigValue[E any](key string) Step[E, string] {
	return func(_ E, st State) (string, State) {
		if st.HasErr {
			return "", st
		}
		v, ok := st.Configuration[key]
		if !ok {
			return "", st.withError(fmt.Sprintf("configuration key not found: %q", key))
		}
		return v, st
	}
}
