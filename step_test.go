// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/isotope"
)

func TestPureReturnsValue(t *testing.T) {
	v, st := isotope.Run(isotope.Pure[struct{}]("hello"), struct{}{})
	require.Equal(t, "hello", v)
	require.False(t, st.Failed())
	require.True(t, st.Log.Empty())
}

func TestFailSetsError(t *testing.T) {
	v, st := isotope.Run(isotope.Fail[struct{}, int]("element missing"), struct{}{})
	require.Zero(t, v)
	require.True(t, st.Failed())
	require.Equal(t, "element missing", st.Err)
}

func TestFailPreservesLog(t *testing.T) {
	m := isotope.Then(
		isotope.WriteLog[struct{}]("before"),
		isotope.Fail[struct{}, int]("boom"),
	)
	_, st := isotope.Run(m, struct{}{})
	require.True(t, st.Failed())
	require.Equal(t, []string{"before"}, st.Log.Flatten())
}

func TestShortCircuitOnEntry(t *testing.T) {
	// A failed chain keeps its original error; later failures do not
	// overwrite it and later pure values are not produced.
	m := isotope.Then(
		isotope.Fail[struct{}, int]("first"),
		isotope.Then(
			isotope.Fail[struct{}, int]("second"),
			isotope.Pure[struct{}](99),
		),
	)
	v, st := isotope.Run(m, struct{}{})
	require.Zero(t, v)
	require.Equal(t, "first", st.Err)
}

func TestStepReusableAcrossRuns(t *testing.T) {
	m := isotope.Map(isotope.Ask[int](), func(e int) int { return e * 2 })
	for env := range 3 {
		v, st := isotope.Run(m, env)
		require.Equal(t, env*2, v)
		require.False(t, st.Failed())
	}
}
