package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jadebook/jadebook/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database with zeroed streak counters
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
	// Reads the streak counters and last credited entry date of uid
	FetchStreakFields(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error)
	// Persists new streak counters for uid as a single update
	WriteStreakFields(ctx context.Context, uid uuid.UUID, state *entity.StreakState, updatedAt time.Time) error
}

type EntriesRepositoryI interface {
	// Creates new journal entry. UserID, Title, Content, Tags, EntryDate are used
	Create(ctx context.Context, entry *entity.Entry) (uuid.UUID, error)
	// Searches entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	// Lists entries owned by user, pinned first then newest. Requires pagination params
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Entry, error)
	// Updates title, content and tags of entry by ID (ID in entry is necessary)
	Update(ctx context.Context, entry *entity.Entry) error
	// Pins or unpins entry
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	// Deletes entry with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Full-text search over title and content, scoped to uid
	Search(ctx context.Context, uid uuid.UUID, query string) ([]*entity.Entry, error)
	// Lists entries of uid carrying the given tag
	GetByTag(ctx context.Context, uid uuid.UUID, tag string) ([]*entity.Entry, error)
}

type GoalsRepositoryI interface {
	// Creates new goal. UserID, Title, Description are used
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user, pinned first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Goal, error)
	// Updates title, description and pinned flag of goal by ID
	Update(ctx context.Context, goal *entity.Goal) error
	// Toggles only the pinned flag of goal with id
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	// Switches goal status between active and completed
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	// Deletes goal with id, its logs follow by FK cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalLogsRepositoryI interface {
	// Appends a log note to goal with goalID
	Create(ctx context.Context, goalID uuid.UUID, content string) (int, error)
	// Lists logs of goalID, newest first
	GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]entity.GoalLog, error)
	// Deletes log with id belonging to goalID
	Delete(ctx context.Context, id int, goalID uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
