// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/isotope"
)

// fakeClock advances instantly on Sleep so retry tests never block.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
}

func retrySettings(clk *fakeClock, wait, interval time.Duration) isotope.Settings {
	s := isotope.DefaultSettings()
	s.Clock = clk
	s.Wait = wait
	s.Interval = interval
	s.DisposeOnCompletion = false
	return s
}

// attempts returns a step that counts invocations and reports whether
// the counter has reached target.
func attempts(n *int, target int) isotope.Step[struct{}, bool] {
	return isotope.Step[struct{}, bool](func(_ struct{}, st isotope.State) (bool, isotope.State) {
		if st.Failed() {
			return false, st
		}
		*n++
		return *n >= target, st
	})
}

func TestWaitUntilRespectsTimeout(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	never := attempts(&n, 1 << 30)
	m := isotope.WaitUntil(never, func(done bool) bool { return !done })

	v, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, 200*time.Millisecond, 50*time.Millisecond))
	require.False(t, v)
	require.True(t, st.Failed())
	require.Contains(t, st.Err, "timed out after 200ms")
	require.GreaterOrEqual(t, n, 1)
	require.LessOrEqual(t, n, 200/50+1)
}

func TestWaitUntilImmediateSatisfaction(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	m := isotope.WaitUntil(attempts(&n, 1), func(done bool) bool { return !done })

	v, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, 200*time.Millisecond, 50*time.Millisecond))
	require.True(t, v)
	require.False(t, st.Failed())
	require.Equal(t, 1, n)
	require.Empty(t, clk.sleeps, "no sleep when the first attempt satisfies")
}

func TestWaitUntilZeroWaitSingleAttempt(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	never := attempts(&n, 1 << 30)
	m := isotope.WaitUntil(never, func(done bool) bool { return !done })

	_, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, 0, 50*time.Millisecond))
	require.True(t, st.Failed())
	require.Equal(t, 1, n, "a zero wait still makes the first attempt")
}

func TestWaitUntilSucceedsAfterRetries(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	m := isotope.WaitUntil(attempts(&n, 3), func(done bool) bool { return !done })

	v, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, time.Second, 50*time.Millisecond))
	require.True(t, v)
	require.False(t, st.Failed())
	require.Equal(t, 3, n)
	require.Equal(t, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}, clk.sleeps)
}

func TestWaitUntilWithExplicitDurations(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	never := attempts(&n, 1 << 30)
	m := isotope.WaitUntilWith(never, func(done bool) bool { return !done },
		isotope.NullDurationFrom(10*time.Millisecond),
		isotope.NullDurationFrom(30*time.Millisecond),
	)

	// Settings defaults would allow many more attempts; the explicit
	// arguments must win.
	_, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, time.Hour, time.Hour))
	require.True(t, st.Failed())
	require.Contains(t, st.Err, "timed out after 30ms")
	require.Equal(t, 4, n)
}

func TestWaitUntilPropagatesInnerFailure(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	m := isotope.WaitUntil(isotope.Fail[struct{}, bool]("driver gone"), func(bool) bool { return true })

	_, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, time.Second, 50*time.Millisecond))
	require.Equal(t, "driver gone", st.Err)
	require.Empty(t, clk.sleeps, "a failed step is not retried")
}

func TestDoWhileSilentTruncation(t *testing.T) {
	n := 0
	always := attempts(&n, 1 << 30)
	m := isotope.DoWhile(always, func(done bool) bool { return !done }, 3)

	v, st := isotope.Run(m, struct{}{})
	require.False(t, v, "exhaustion returns the zero value")
	require.False(t, st.Failed(), "exhaustion does not fail")
	require.Equal(t, 3, n)
}

func TestDoWhileStopsWhenSatisfied(t *testing.T) {
	n := 0
	m := isotope.DoWhile(attempts(&n, 2), func(done bool) bool { return !done }, 10)
	v, st := isotope.Run(m, struct{}{})
	require.True(t, v)
	require.False(t, st.Failed())
	require.Equal(t, 2, n)
}

func TestDoWhileOrFailExhaustion(t *testing.T) {
	n := 0
	always := attempts(&n, 1 << 30)
	m := isotope.DoWhileOrFail(always, func(done bool) bool { return !done }, "button never enabled", 3)

	v, st := isotope.Run(m, struct{}{})
	require.False(t, v)
	require.True(t, st.Failed())
	require.Equal(t, "button never enabled", st.Err)
	require.Equal(t, 3, n)
}

func TestDoWhileOrFailEverySleepsBetweenAttempts(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	n := 0
	always := attempts(&n, 1 << 30)
	m := isotope.DoWhileOrFailEvery(always, func(done bool) bool { return !done }, "nope", 3, 20*time.Millisecond)

	_, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, time.Second, time.Second))
	require.True(t, st.Failed())
	require.Equal(t, 3, n)
	require.Len(t, clk.sleeps, 2, "no sleep after the final attempt")
}

func TestPause(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	m := isotope.Then(isotope.Pause[struct{}](75*time.Millisecond), isotope.Pure[struct{}](1))

	v, st := isotope.RunWith(m, struct{}{}, nil, retrySettings(clk, time.Second, time.Second))
	require.Equal(t, 1, v)
	require.False(t, st.Failed())
	require.Equal(t, []time.Duration{75 * time.Millisecond}, clk.sleeps)
}
