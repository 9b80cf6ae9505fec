package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/repository"
	"github.com/jadebook/jadebook/pkg/entity"
)

// exportPageSize bounds a single listing query while draining all of a
// user's records.
const exportPageSize = 100

type Archive struct {
	UserID   string             `json:"user_id"`
	Username string             `json:"username"`
	Streak   entity.StreakState `json:"streak"`
	Entries  []*entity.Entry    `json:"entries"`
	Goals    []*entity.Goal     `json:"goals"`
	GoalLogs []entity.GoalLog   `json:"goal_logs"`
}

type ImportSummary struct {
	EntriesCreated int `json:"entries_created"`
	GoalsCreated   int `json:"goals_created"`
	LogsCreated    int `json:"logs_created"`
}

type ExportService struct {
	usersRepo   repository.UsersRepositoryI
	entriesRepo repository.EntriesRepositoryI
	goalsRepo   repository.GoalsRepositoryI
	logsRepo    repository.GoalLogsRepositoryI
}

func NewExportService(
	usersRepo repository.UsersRepositoryI,
	entriesRepo repository.EntriesRepositoryI,
	goalsRepo repository.GoalsRepositoryI,
	logsRepo repository.GoalLogsRepositoryI,
) *ExportService {
	if usersRepo == nil || entriesRepo == nil || goalsRepo == nil || logsRepo == nil {
		log.Fatal("on export service provided nil repos")
	}
	return &ExportService{
		usersRepo:   usersRepo,
		entriesRepo: entriesRepo,
		goalsRepo:   goalsRepo,
		logsRepo:    logsRepo,
	}
}

func (xs *ExportService) Export(ctx context.Context, uid uuid.UUID) (*Archive, error) {
	user, err := xs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	streak, err := xs.usersRepo.FetchStreakFields(ctx, uid)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}

	entries := make([]*entity.Entry, 0)
	for offset := 0; ; offset += exportPageSize {
		page, err := xs.entriesRepo.GetByUserID(ctx, uid, exportPageSize, offset)
		if err != nil {
			return nil, errors.New("entries repository error: " + err.Error())
		}
		entries = append(entries, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	goals := make([]*entity.Goal, 0)
	for offset := 0; ; offset += exportPageSize {
		page, err := xs.goalsRepo.GetByUserID(ctx, uid, exportPageSize, offset)
		if err != nil {
			return nil, errors.New("goals repository error: " + err.Error())
		}
		goals = append(goals, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	goalLogs := make([]entity.GoalLog, 0)
	for _, goal := range goals {
		logs, err := xs.logsRepo.GetByGoalID(ctx, goal.ID)
		if err != nil {
			return nil, errors.New("goal logs repository error: " + err.Error())
		}
		goalLogs = append(goalLogs, logs...)
	}

	return &Archive{
		UserID:   user.ID.String(),
		Username: user.Name,
		Streak:   *streak,
		Entries:  entries,
		Goals:    goals,
		GoalLogs: goalLogs,
	}, nil
}

// Import inserts archive records under uid with fresh server-side ids.
// Goal logs follow their goal through the id remap; logs pointing at a
// goal missing from the archive are skipped.
func (xs *ExportService) Import(ctx context.Context, uid uuid.UUID, archive *Archive) (*ImportSummary, error) {
	if archive == nil {
		return nil, errors.New("validation error: archive is nil")
	}
	summary := ImportSummary{}
	for _, entry := range archive.Entries {
		newID, err := xs.entriesRepo.Create(ctx, &entity.Entry{
			UserID:    uid,
			Title:     entry.Title,
			Content:   entry.Content,
			Tags:      entry.Tags,
			EntryDate: entry.EntryDate,
		})
		if err != nil {
			return nil, errors.New("importing entry error: " + err.Error())
		}
		if entry.Pinned {
			if err := xs.entriesRepo.SetPinned(ctx, newID, true); err != nil {
				return nil, errors.New("importing entry error: " + err.Error())
			}
		}
		summary.EntriesCreated++
	}

	goalIDs := make(map[uuid.UUID]uuid.UUID, len(archive.Goals))
	for _, goal := range archive.Goals {
		newID, err := xs.goalsRepo.Create(ctx, &entity.Goal{
			UserID:      uid,
			Title:       goal.Title,
			Description: goal.Description,
		})
		if err != nil {
			return nil, errors.New("importing goal error: " + err.Error())
		}
		// Create always inserts active goals, archived status and pin
		// flags are restored afterwards
		if goal.Status == entity.GoalStatusCompleted {
			if err := xs.goalsRepo.SetStatus(ctx, newID, goal.Status); err != nil {
				return nil, errors.New("importing goal error: " + err.Error())
			}
		}
		if goal.Pinned {
			if err := xs.goalsRepo.SetPinned(ctx, newID, true); err != nil {
				return nil, errors.New("importing goal error: " + err.Error())
			}
		}
		goalIDs[goal.ID] = newID
		summary.GoalsCreated++
	}

	for _, goalLog := range archive.GoalLogs {
		newGoalID, ok := goalIDs[goalLog.GoalID]
		if !ok {
			continue
		}
		_, err := xs.logsRepo.Create(ctx, newGoalID, goalLog.Content)
		if err != nil {
			return nil, errors.New("importing goal log error: " + err.Error())
		}
		summary.LogsCreated++
	}
	return &summary, nil
}
