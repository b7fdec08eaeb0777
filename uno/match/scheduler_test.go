package match_test

import (
	"testing"
	"time"

	"github.com/ratel-online/duel/uno/match"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler(t *testing.T) {
	t.Run("runs_callbacks_in_due_order", func(t *testing.T) {
		scheduler := match.NewManualScheduler()
		var order []string
		scheduler.AfterFunc(20*time.Millisecond, func() { order = append(order, "late") })
		scheduler.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })
		scheduler.AfterFunc(10*time.Millisecond, func() { order = append(order, "early_second") })

		require.Equal(t, 3, scheduler.RunAll(10))
		require.Equal(t, []string{"early", "early_second", "late"}, order)
	})

	t.Run("advance_only_runs_what_is_due", func(t *testing.T) {
		scheduler := match.NewManualScheduler()
		ran := 0
		scheduler.AfterFunc(10*time.Millisecond, func() {
			ran++
			scheduler.AfterFunc(10*time.Millisecond, func() { ran++ })
		})

		require.Equal(t, 0, scheduler.Advance(5*time.Millisecond))
		require.Equal(t, 1, scheduler.Advance(10*time.Millisecond))
		require.Equal(t, 1, scheduler.Pending())

		delay, ok := scheduler.NextDelay()
		require.True(t, ok)
		require.Equal(t, 5*time.Millisecond, delay)

		require.Equal(t, 1, scheduler.Advance(5*time.Millisecond))
		require.Equal(t, 2, ran)
	})

	t.Run("stopped_callbacks_never_run", func(t *testing.T) {
		scheduler := match.NewManualScheduler()
		ran := false
		timer := scheduler.AfterFunc(time.Millisecond, func() { ran = true })
		require.True(t, timer.Stop())
		require.False(t, timer.Stop())
		require.False(t, scheduler.RunNext())
		require.False(t, ran)
	})
}
