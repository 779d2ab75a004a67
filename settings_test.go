// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"code.hybscloud.com/isotope"
)

func TestDefaultSettings(t *testing.T) {
	s := isotope.DefaultSettings()
	assert.Equal(t, isotope.DefaultWait, s.Wait)
	assert.Equal(t, isotope.DefaultInterval, s.Interval)
	assert.True(t, s.DisposeOnCompletion)
	assert.NotNil(t, s.Clock)
}

func TestSettingsApply(t *testing.T) {
	s := isotope.DefaultSettings()
	patched := s.Apply(isotope.SettingsPatch{
		Wait:                isotope.NullDurationFrom(2 * time.Second),
		DisposeOnCompletion: null.BoolFrom(false),
	})
	assert.Equal(t, 2*time.Second, patched.Wait)
	assert.Equal(t, isotope.DefaultInterval, patched.Interval, "null fields leave the target untouched")
	assert.False(t, patched.DisposeOnCompletion)
}

func TestSettingsApplyEmptyPatch(t *testing.T) {
	s := isotope.DefaultSettings()
	require.Equal(t, s.Wait, s.Apply(isotope.SettingsPatch{}).Wait)
	require.Equal(t, s.DisposeOnCompletion, s.Apply(isotope.SettingsPatch{}).DisposeOnCompletion)
}

func TestNullDurationUnmarshalText(t *testing.T) {
	var d isotope.NullDuration

	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.True(t, d.Valid)
	assert.Equal(t, isotope.Duration(250*time.Millisecond), d.Duration)

	require.NoError(t, d.UnmarshalText([]byte("300")))
	assert.Equal(t, isotope.Duration(300*time.Millisecond), d.Duration, "bare numbers are milliseconds")

	require.NoError(t, d.UnmarshalText(nil))
	assert.False(t, d.Valid, "empty input is null")

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestDurationString(t *testing.T) {
	assert.Equal(t, "1.5s", isotope.Duration(1500*time.Millisecond).String())
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("ISOTOPE_WAIT", "3s")
	t.Setenv("ISOTOPE_INTERVAL", "150ms")
	t.Setenv("ISOTOPE_DISPOSE_ON_COMPLETION", "false")

	patch, err := isotope.SettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, isotope.NullDurationFrom(3*time.Second), patch.Wait)
	assert.Equal(t, isotope.NullDurationFrom(150*time.Millisecond), patch.Interval)
	require.True(t, patch.DisposeOnCompletion.Valid)
	assert.False(t, patch.DisposeOnCompletion.Bool)

	s := isotope.DefaultSettings().Apply(patch)
	assert.Equal(t, 3*time.Second, s.Wait)
	assert.Equal(t, 150*time.Millisecond, s.Interval)
	assert.False(t, s.DisposeOnCompletion)
}

func TestSettingsFromEnvUnset(t *testing.T) {
	patch, err := isotope.SettingsFromEnv()
	require.NoError(t, err)
	assert.False(t, patch.Wait.Valid)
	assert.False(t, patch.Interval.Valid)
	assert.False(t, patch.DisposeOnCompletion.Valid)
}
