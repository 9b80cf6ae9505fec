package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jadebook/jadebook/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateEntryRequest struct {
	Title     string   `validate:"required,max=200"`
	Content   string   `validate:"required"`
	Tags      []string `validate:"max=10,dive,min=1,max=50"`
	EntryDate time.Time
}

type UpdateEntryRequest struct {
	Title   string   `validate:"required,max=200"`
	Content string   `validate:"required"`
	Tags    []string `validate:"max=10,dive,min=1,max=50"`
}

type CreateGoalRequest struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
}

type UpdateGoalRequest struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Pinned      bool
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type EntriesServiceI interface {
	CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateEntryRequest) (*entity.Entry, error)
	GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.Entry, error)
	GetUserEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Entry, error)
	UpdateEntry(ctx context.Context, entryID, userID uuid.UUID, req *UpdateEntryRequest) (*entity.Entry, error)
	SetPinned(ctx context.Context, entryID, userID uuid.UUID, pinned bool) error
	DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error
	// Merges full-text and tag matches, deduplicated by entry id
	SearchEntries(ctx context.Context, uid uuid.UUID, query string) ([]*entity.Entry, error)
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error)
	SetGoalStatus(ctx context.Context, goalID, userID uuid.UUID, status string) error
	DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error
	AddGoalLog(ctx context.Context, goalID, userID uuid.UUID, content string) (*entity.GoalLog, error)
	GetGoalLogs(ctx context.Context, goalID, userID uuid.UUID) ([]entity.GoalLog, error)
	DeleteGoalLog(ctx context.Context, logID int, goalID, userID uuid.UUID) error
}

type StreakTrackerI interface {
	// Credits today's activity to the user's streak. Second call on the
	// same UTC day is a no-op returning the stored counters
	Update(ctx context.Context, uid uuid.UUID) (*StreakOutcome, error)
	// Reads the stored counters without mutating them
	Current(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error)
}

type ExportServiceI interface {
	Export(ctx context.Context, uid uuid.UUID) (*Archive, error)
	Import(ctx context.Context, uid uuid.UUID, archive *Archive) (*ImportSummary, error)
}
