package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vedran77/levellore/internal/award"
	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/store"
)

// XPService applies daily awards. The clock is injectable so tests can pin
// the calendar day.
type XPService struct {
	store store.Store
	now   func() time.Time
}

func NewXPService(st store.Store) *XPService {
	return &XPService{
		store: st,
		now:   time.Now,
	}
}

// ClaimDailyLogin grants the daily login XP if it has not been claimed today.
func (s *XPService) ClaimDailyLogin(ctx context.Context, username string) (award.Result, error) {
	return s.claim(ctx, username, award.DailyLogin)
}

// ClaimDailyQuiz grants the daily quiz XP if it has not been claimed today.
// Correctness of the answer is deliberately not a condition.
func (s *XPService) ClaimDailyQuiz(ctx context.Context, username string) (award.Result, error) {
	return s.claim(ctx, username, award.DailyQuiz)
}

func (s *XPService) claim(ctx context.Context, username string, kind award.Kind) (award.Result, error) {
	today := award.Today(s.now())

	var res award.Result
	_, err := s.store.UpdateAccount(ctx, username, func(acc *domain.Account) error {
		res = award.GrantIfEligible(acc, kind, today)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return award.Result{}, ErrUnknownUser
		}
		return award.Result{}, fmt.Errorf("claiming %s award: %w", kind, err)
	}
	return res, nil
}
