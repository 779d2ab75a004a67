// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import (
	"slices"
	"strings"
)

// LogEntry is one node of the log trace: a message, optionally carrying
// nested entries recorded while its context was open.
type LogEntry struct {
	Message string
	Nested  []LogEntry
}

// Log is the ordered, nestable trace of executed steps. It grows
// monotonically within one step chain and is replaced, never mutated in
// place: every append copies the spine to the insertion point, so old
// State snapshots keep their view of the log.
//
// The zero Log is empty with no open context.
type Log struct {
	entries []LogEntry
	open    []int // index path to the innermost open context
}

// entriesAt walks the index path and returns the entries at that level.
func entriesAt(entries []LogEntry, path []int) []LogEntry {
	for _, i := range path {
		entries = entries[i].Nested
	}
	return entries
}

// appendEntry appends e under the context addressed by path, copying the
// spine along the way.
func appendEntry(entries []LogEntry, path []int, e LogEntry) []LogEntry {
	if len(path) == 0 {
		out := make([]LogEntry, len(entries), len(entries)+1)
		copy(out, entries)
		return append(out, e)
	}
	out := slices.Clone(entries)
	out[path[0]].Nested = appendEntry(out[path[0]].Nested, path[1:], e)
	return out
}

// record appends a flat message to the innermost open context.
func (l Log) record(message string) Log {
	l.entries = appendEntry(l.entries, l.open, LogEntry{Message: message})
	return l
}

// push appends a message and opens it as a nested context.
func (l Log) push(message string) Log {
	idx := len(entriesAt(l.entries, l.open))
	l.entries = appendEntry(l.entries, l.open, LogEntry{Message: message})
	l.open = append(slices.Clone(l.open), idx)
	return l
}

// pop closes the innermost open context. Popping with no open context is
// a no-op, so unbalanced pops cannot corrupt the trace.
func (l Log) pop() Log {
	if len(l.open) == 0 {
		return l
	}
	l.open = slices.Clone(l.open[:len(l.open)-1])
	return l
}

// Empty reports whether the log holds no entries.
func (l Log) Empty() bool { return len(l.entries) == 0 }

// Entries returns the top-level log entries in recording order.
func (l Log) Entries() []LogEntry { return slices.Clone(l.entries) }

// OpenDepth returns the number of currently open contexts.
func (l Log) OpenDepth() int { return len(l.open) }

// Flatten returns every message in recording order, depth-first.
func (l Log) Flatten() []string {
	var out []string
	var walk func([]LogEntry)
	walk = func(entries []LogEntry) {
		for _, e := range entries {
			out = append(out, e.Message)
			walk(e.Nested)
		}
	}
	walk(l.entries)
	return out
}

// String renders the trace as an indented tree, two spaces per level.
func (l Log) String() string {
	var b strings.Builder
	var walk func([]LogEntry, int)
	walk = func(entries []LogEntry, depth int) {
		for _, e := range entries {
			for range depth {
				b.WriteString("  ")
			}
			b.WriteString(e.Message)
			b.WriteByte('\n')
			walk(e.Nested, depth+1)
		}
	}
	walk(l.entries, 0)
	return b.String()
}

// recordLog appends a flat message and feeds it to the logging action.
func (s State) recordLog(message string) State {
	s.Log = s.Log.record(message)
	if s.Settings.LoggingAction != nil {
		s.Settings.LoggingAction(message)
	}
	return s
}

// pushLog opens a named context and feeds the label to the logging action.
func (s State) pushLog(message string) State {
	s.Log = s.Log.push(message)
	if s.Settings.LoggingAction != nil {
		s.Settings.LoggingAction(message)
	}
	return s
}

// popLog closes the innermost open context.
func (s State) popLog() State {
	s.Log = s.Log.pop()
	return s
}

// WriteLog appends a flat message to the current log context. The
// Settings logging action is invoked with the message as a side effect.
func WriteLog[E any](message string) Step[E, struct{}] {
	return func(_ E, st State) (struct{}, State) {
		if st.HasErr {
			return struct{}{}, st
		}
		return struct{}{}, st.recordLog(message)
	}
}

// PushLog appends a message and opens a nested log context under it.
func PushLog[E any](message string) Step[E, struct{}] {
	return func(_ E, st State) (struct{}, State) {
		if st.HasErr {
			return struct{}{}, st
		}
		return struct{}{}, st.pushLog(message)
	}
}

// PopLog closes the most recently opened log context. PopLog does not
// short-circuit: contexts must close even after a failure, so traces
// stay balanced for post-mortem inspection.
func PopLog[E any]() Step[E, struct{}] {
	return func(_ E, st State) (struct{}, State) {
		return struct{}{}, st.popLog()
	}
}

// Context runs m inside a named log context: push, run, pop. The pop
// runs whether or not m failed, so the trace remains balanced; m's error,
// if any, is propagated unchanged.
func Context[E, A any](label string, m Step[E, A]) Step[E, A] {
	return func(env E, st State) (A, State) {
		if st.HasErr {
			var zero A
			return zero, st
		}
		v, next := m(env, st.pushLog(label))
		return v, next.popLog()
	}
}
