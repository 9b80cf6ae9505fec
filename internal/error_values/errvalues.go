package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrEntryNotFound = errors.New("entry doesn't exist")
	ErrEntryExists   = errors.New("entry with such id already exists")
	ErrGoalNotFound  = errors.New("goal doesn't exist")
	ErrGoalExists    = errors.New("goal with such id already exists")
	ErrLogNotFound   = errors.New("goal log doesn't exist")
	ErrWrongOwner    = errors.New("resource has different owner")

	// Streak failures keep fixed messages, callers surface them verbatim.
	ErrStreakFetch = errors.New("Failed to fetch user profile")
	ErrStreakUser  = errors.New("User profile not found")
	ErrStreakWrite = errors.New("Failed to update streak data")
)
