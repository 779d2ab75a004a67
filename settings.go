// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import (
	"strconv"
	"time"

	"github.com/mstoykov/envconfig"
	"gopkg.in/guregu/null.v3"
)

// Clock supplies time to the retry engine. Tests substitute a fake to
// control deadlines and intervals without real sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the wall clock backed by package time.
func SystemClock() Clock { return systemClock{} }

// Default poll budget and spacing used when Settings leave them unset.
const (
	DefaultWait     = 5 * time.Second
	DefaultInterval = 250 * time.Millisecond
)

// Settings are the options in force for a run. They are immutable once
// constructed; [InitSettings] or [Put] replace them wholesale.
type Settings struct {
	// Wait is the default poll deadline for [WaitUntil].
	Wait time.Duration
	// Interval is the default poll spacing for the retry engine.
	Interval time.Duration
	// DisposeOnCompletion makes the run entry points release the driver
	// handle after execution, regardless of success or failure.
	DisposeOnCompletion bool
	// FailureAction is the sink invoked by MustRun on terminal failure,
	// receiving the message and the accumulated log. May be nil.
	FailureAction func(message string, log Log)
	// LoggingAction is the sink invoked per recorded log message. May be nil.
	LoggingAction func(message string)
	// Clock supplies time to the retry engine; nil means the system clock.
	Clock Clock
}

// DefaultSettings returns Settings with the default poll budget, driver
// disposal enabled, no sinks, and the system clock.
func DefaultSettings() Settings {
	return Settings{
		Wait:                DefaultWait,
		Interval:            DefaultInterval,
		DisposeOnCompletion: true,
		Clock:               systemClock{},
	}
}

func (s Settings) clock() Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return systemClock{}
}

// InitSettings replaces the Settings in force wholesale, leaving the
// rest of the State untouched.
func InitSettings[E any](settings Settings) Step[E, struct{}] {
	return func(_ E, st State) (struct{}, State) {
		if st.HasErr {
			return struct{}{}, st
		}
		st.Settings = settings
		return struct{}{}, st
	}
}

// Duration is an alias for time.Duration that unmarshals from
// human-readable strings; bare numbers are taken as milliseconds.
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalText converts text data to a Duration.
func (d *Duration) UnmarshalText(data []byte) error {
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		*d = Duration(f * float64(time.Millisecond))
		return nil
	}
	v, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// NullDuration is a nullable Duration, in the same vein as the nullable
// types provided by package gopkg.in/guregu/null.v3. The zero value is
// null; retry combinators taking a NullDuration argument fall back to
// the Settings default when it is null.
type NullDuration struct {
	Duration
	Valid bool
}

// NullDurationFrom returns a valid NullDuration wrapping d.
func NullDurationFrom(d time.Duration) NullDuration {
	return NullDuration{Duration(d), true}
}

// UnmarshalText converts text data to a valid NullDuration; empty input
// yields null.
func (d *NullDuration) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = NullDuration{}
		return nil
	}
	if err := d.Duration.UnmarshalText(data); err != nil {
		return err
	}
	d.Valid = true
	return nil
}

// or returns the wrapped duration when valid, def otherwise.
func (d NullDuration) or(def time.Duration) time.Duration {
	if d.Valid {
		return time.Duration(d.Duration)
	}
	return def
}

// SettingsPatch is a partial Settings where every field is nullable.
// Unset fields leave the corresponding Settings field untouched when the
// patch is applied.
type SettingsPatch struct {
	Wait                NullDuration `envconfig:"ISOTOPE_WAIT"`
	Interval            NullDuration `envconfig:"ISOTOPE_INTERVAL"`
	DisposeOnCompletion null.Bool    `envconfig:"ISOTOPE_DISPOSE_ON_COMPLETION"`
}

// Apply merges the valid fields of patch over s and returns the result.
func (s Settings) Apply(patch SettingsPatch) Settings {
	if patch.Wait.Valid {
		s.Wait = time.Duration(patch.Wait.Duration)
	}
	if patch.Interval.Valid {
		s.Interval = time.Duration(patch.Interval.Duration)
	}
	if patch.DisposeOnCompletion.Valid {
		s.DisposeOnCompletion = patch.DisposeOnCompletion.Bool
	}
	return s
}

// SettingsFromEnv reads a SettingsPatch from the ISOTOPE_* environment
// variables. Unset variables yield null fields.
func SettingsFromEnv() (SettingsPatch, error) {
	var p SettingsPatch
	if err := envconfig.Process("", &p); err != nil {
		return SettingsPatch{}, err
	}
	return p, nil
}
