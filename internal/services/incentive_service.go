package services

import (
	"context"

	"rms-backend/internal/metrics"
	"rms-backend/internal/repositories"
	"rms-backend/internal/timeutil"
)

// Coin adjustments are flat, not proportional: the daily target is a binary
// goal signal on a displayed leaderboard, so coins never go negative.
const (
	dailyTargetReward  = 5
	dailyTargetPenalty = 1
)

// IncentiveService maintains each collector's running and daily collection
// totals and translates daily target attainment into coin adjustments. It
// runs once per successful payment, for the recording user.
type IncentiveService struct {
	Users *repositories.UserRepository
}

func NewIncentiveService(users *repositories.UserRepository) *IncentiveService {
	return &IncentiveService{Users: users}
}

// Apply credits amount to the collector's totals and re-evaluates the daily
// target. Every payment re-runs the threshold test against the cumulative
// daily figure, so several qualifying payments in one day each earn the
// reward and several short ones each pay the penalty. A missing user is a
// no-op.
func (s *IncentiveService) Apply(ctx context.Context, userID string, amount float64) error {
	users, err := s.Users.All(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	u := &users[idx]
	today := timeutil.Today()

	// A payment on a new calendar day zeroes the daily tracker first.
	if u.LastCollectionDate != today {
		u.DailyCollected = 0
		u.LastCollectionDate = today
	}

	u.TotalCollected += amount
	u.DailyCollected += amount

	switch {
	case u.DailyTarget > 0 && u.DailyCollected >= u.DailyTarget:
		u.Coins += dailyTargetReward
		metrics.CoinsAwarded.Add(dailyTargetReward)
	case u.DailyTarget > 0 && u.DailyCollected < u.DailyTarget:
		if u.Coins > 0 {
			u.Coins -= dailyTargetPenalty
			metrics.CoinsForfeited.Add(dailyTargetPenalty)
		}
		if u.Coins < 0 {
			u.Coins = 0
		}
	}

	return s.Users.Save(ctx, users)
}
