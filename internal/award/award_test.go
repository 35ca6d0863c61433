package award

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vedran77/levellore/internal/domain"
)

func TestGrantIfEligibleOncePerDay(t *testing.T) {
	acc := &domain.Account{Username: "bob"}

	first := GrantIfEligible(acc, DailyLogin, "2026-08-28")
	require.True(t, first.Awarded)
	require.Equal(t, 10, first.XP)
	require.Equal(t, 1, first.Level)

	// Same day: no-op, N identical confirmations.
	for range 3 {
		again := GrantIfEligible(acc, DailyLogin, "2026-08-28")
		require.False(t, again.Awarded)
		require.Equal(t, 10, again.XP)
	}
	require.Equal(t, 10, acc.XP)

	next := GrantIfEligible(acc, DailyLogin, "2026-08-29")
	require.True(t, next.Awarded)
	require.Equal(t, 20, next.XP)
}

func TestGrantKindsAreIndependent(t *testing.T) {
	acc := &domain.Account{Username: "bob"}
	today := "2026-08-28"

	login := GrantIfEligible(acc, DailyLogin, today)
	require.True(t, login.Awarded)

	quiz := GrantIfEligible(acc, DailyQuiz, today)
	require.True(t, quiz.Awarded, "quiz eligibility must not be consumed by the login award")
	require.Equal(t, 60, acc.XP)

	require.NotNil(t, acc.LastLoginDate)
	require.NotNil(t, acc.LastQuizDate)
	require.Equal(t, today, *acc.LastLoginDate)
	require.Equal(t, today, *acc.LastQuizDate)
}

func TestGrantCrossesLevelThreshold(t *testing.T) {
	acc := &domain.Account{Username: "bob", XP: 95}

	res := GrantIfEligible(acc, DailyLogin, "2026-08-28")
	require.True(t, res.Awarded)
	require.Equal(t, 105, res.XP)
	require.Equal(t, 2, res.Level)
}

func TestAmounts(t *testing.T) {
	require.Equal(t, 10, DailyLogin.Amount())
	require.Equal(t, 50, DailyQuiz.Amount())
	require.Equal(t, 0, Kind("bogus").Amount())
}

func TestToday(t *testing.T) {
	ts := time.Date(2026, time.August, 28, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "2026-08-28", Today(ts))
}
