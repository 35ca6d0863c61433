package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/vedran77/levellore/internal/domain"
	"github.com/vedran77/levellore/internal/leveling"
	"github.com/vedran77/levellore/internal/store"
)

type LeaderboardEntry struct {
	Username   string `json:"username"`
	Level      int    `json:"level"`
	XP         int    `json:"xp"`
	ProfilePic string `json:"profilePic"`
}

// LeaderboardService is a read-only view over the store's accounts.
type LeaderboardService struct {
	store store.Store
}

func NewLeaderboardService(st store.Store) *LeaderboardService {
	return &LeaderboardService{store: st}
}

// Top returns every account ranked by XP descending. Ties sort by username
// ascending so the output is deterministic.
func (s *LeaderboardService) Top(ctx context.Context) ([]LeaderboardEntry, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(accounts))
	for _, acc := range accounts {
		pic := acc.ProfilePic
		if pic == "" {
			pic = domain.DefaultAvatar
		}
		entries = append(entries, LeaderboardEntry{
			Username:   acc.Username,
			Level:      leveling.Compute(acc.XP).Level,
			XP:         acc.XP,
			ProfilePic: pic,
		})
	}

	slices.SortFunc(entries, func(a, b LeaderboardEntry) int {
		if c := cmp.Compare(b.XP, a.XP); c != 0 {
			return c
		}
		return cmp.Compare(a.Username, b.Username)
	})

	return entries, nil
}
