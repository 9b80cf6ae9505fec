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

type GoalsService struct {
	goalsRepo repository.GoalsRepositoryI
	logsRepo  repository.GoalLogsRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, logsRepo repository.GoalLogsRepositoryI) *GoalsService {
	if goalsRepo == nil || logsRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	return &GoalsService{
		goalsRepo: goalsRepo,
		logsRepo:  logsRepo,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	g := entity.Goal{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
	}
	id, err := gs.goalsRepo.Create(ctx, &g)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrGoalExists):
			return nil, errorvalues.ErrGoalExists
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal, err := gs.goalsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	return gs.getOwned(ctx, goalID, userID)
}

func (gs *GoalsService) GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error) {
	goals, err := gs.goalsRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	goal, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	goal.Title = req.Title
	goal.Description = req.Description
	goal.Pinned = req.Pinned
	err = gs.goalsRepo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) SetGoalStatus(ctx context.Context, goalID, userID uuid.UUID, status string) error {
	if status != entity.GoalStatusActive && status != entity.GoalStatusCompleted {
		return errors.New("unknown goal status: " + status)
	}
	_, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return err
	}
	err = gs.goalsRepo.SetStatus(ctx, goalID, status)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	_, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return err
	}
	err = gs.goalsRepo.Delete(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) AddGoalLog(ctx context.Context, goalID, userID uuid.UUID, content string) (*entity.GoalLog, error) {
	if content == "" {
		return nil, errors.New("validation error: log content is empty")
	}
	_, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	id, err := gs.logsRepo.Create(ctx, goalID, content)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goal logs repository error: " + err.Error())
	}
	return &entity.GoalLog{
		ID:      id,
		GoalID:  goalID,
		Content: content,
	}, nil
}

func (gs *GoalsService) GetGoalLogs(ctx context.Context, goalID, userID uuid.UUID) ([]entity.GoalLog, error) {
	_, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	logs, err := gs.logsRepo.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, errors.New("goal logs repository error: " + err.Error())
	}
	return logs, nil
}

func (gs *GoalsService) DeleteGoalLog(ctx context.Context, logID int, goalID, userID uuid.UUID) error {
	_, err := gs.getOwned(ctx, goalID, userID)
	if err != nil {
		return err
	}
	err = gs.logsRepo.Delete(ctx, logID, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("goal logs repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) getOwned(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}
