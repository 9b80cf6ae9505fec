package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/repository"
	"github.com/jadebook/jadebook/pkg/entity"
)

const streakDateLayout = "2006-01-02"

// StreakTracker maintains each user's consecutive-day activity streak and
// its historical maximum. Update is expected to run after a journal entry
// was successfully recorded for the user.
type StreakTracker struct {
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

type StreakOutcome struct {
	Updated       bool `json:"updated"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
}

func NewStreakTracker(usersRepo repository.UsersRepositoryI) *StreakTracker {
	return NewStreakTrackerWithClock(usersRepo, time.Now)
}

// NewStreakTrackerWithClock lets tests pin "today".
func NewStreakTrackerWithClock(usersRepo repository.UsersRepositoryI, now func() time.Time) *StreakTracker {
	if usersRepo == nil {
		log.Fatal("on streak tracker provided nil users repo")
	}
	if now == nil {
		now = time.Now
	}
	return &StreakTracker{
		usersRepo: usersRepo,
		now:       now,
	}
}

// Update credits the current UTC calendar day to the user's streak.
// A day already credited leaves the row untouched; a day consecutive to the
// last credited one extends the streak; any longer gap restarts it at 1.
// The wall-clock date is always used, even when the triggering entry was
// backdated. Failures map to fixed sentinel errors and never leave a
// partial write behind.
func (st *StreakTracker) Update(ctx context.Context, uid uuid.UUID) (*StreakOutcome, error) {
	state, err := st.usersRepo.FetchStreakFields(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrStreakUser
		}
		return nil, errorvalues.ErrStreakFetch
	}

	now := st.now().UTC()
	today := now.Format(streakDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(streakDateLayout)

	var lastEntryDate *string
	if state.LastEntryDate != nil {
		formatted := state.LastEntryDate.UTC().Format(streakDateLayout)
		lastEntryDate = &formatted
	}

	updated, current, longest := nextStreak(today, yesterday, state.CurrentStreak, state.LongestStreak, lastEntryDate)
	if !updated {
		return &StreakOutcome{
			Updated:       false,
			CurrentStreak: current,
			LongestStreak: longest,
		}, nil
	}

	todayDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	err = st.usersRepo.WriteStreakFields(ctx, uid, &entity.StreakState{
		CurrentStreak: current,
		LongestStreak: longest,
		LastEntryDate: &todayDate,
	}, now)
	if err != nil {
		return nil, errorvalues.ErrStreakWrite
	}
	return &StreakOutcome{
		Updated:       true,
		CurrentStreak: current,
		LongestStreak: longest,
	}, nil
}

func (st *StreakTracker) Current(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error) {
	state, err := st.usersRepo.FetchStreakFields(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrStreakUser
		}
		return nil, errorvalues.ErrStreakFetch
	}
	return state, nil
}

// nextStreak is the pure transition: dates are UTC calendar days formatted
// YYYY-MM-DD, lastEntryDate is nil for a user with no credited activity.
// Guarantees longest >= current on every updated result.
func nextStreak(today, yesterday string, current, longest int, lastEntryDate *string) (updated bool, newCurrent, newLongest int) {
	if lastEntryDate != nil && *lastEntryDate == today {
		return false, current, longest
	}
	newCurrent = 1
	if lastEntryDate != nil && *lastEntryDate == yesterday {
		newCurrent = current + 1
	}
	newLongest = longest
	if newCurrent > newLongest {
		newLongest = newCurrent
	}
	return true, newCurrent, newLongest
}
