// Package award implements the daily XP awards: at most one grant per
// calendar day per award kind per account, gated by the account's
// last-awarded date for that kind.
package award

import (
	"time"

	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/leveling"
)

// Kind identifies an award type. Each kind has independent eligibility and
// its own amount.
type Kind string

const (
	DailyLogin Kind = "dailyLogin"
	DailyQuiz  Kind = "dailyQuiz"
)

const (
	dailyLoginXP = 10
	dailyQuizXP  = 50
)

// DateLayout is the day-granularity format stored on accounts.
const DateLayout = "2006-01-02"

// Today formats a moment as the calendar date used for eligibility checks.
// The server's local zone decides where the day boundary falls.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Amount returns the XP granted by this kind. Unknown kinds grant nothing.
func (k Kind) Amount() int {
	switch k {
	case DailyLogin:
		return dailyLoginXP
	case DailyQuiz:
		return dailyQuizXP
	default:
		return 0
	}
}

// Result reports the account's XP and derived level after an eligibility
// check, and whether this call performed the grant.
type Result struct {
	XP      int
	Level   int
	Awarded bool
}

// GrantIfEligible grants the kind's amount to acc unless it was already
// claimed on today's date. The mutation happens in place; the caller is
// responsible for persisting acc. Calling it again on the same day is a
// no-op that reports Awarded=false with unchanged XP.
//
// The quiz kind is deliberately not gated on answering correctly: the grant
// rewards the daily attempt.
func GrantIfEligible(acc *domain.Account, kind Kind, today string) Result {
	last := lastDate(acc, kind)
	awarded := last == nil || *last != today
	if awarded {
		acc.XP += kind.Amount()
		setDate(acc, kind, today)
	}

	return Result{
		XP:      acc.XP,
		Level:   leveling.Compute(acc.XP).Level,
		Awarded: awarded,
	}
}

func lastDate(acc *domain.Account, kind Kind) *string {
	if kind == DailyQuiz {
		return acc.LastQuizDate
	}
	return acc.LastLoginDate
}

func setDate(acc *domain.Account, kind Kind, date string) {
	if kind == DailyQuiz {
		acc.LastQuizDate = &date
		return
	}
	acc.LastLoginDate = &date
}
