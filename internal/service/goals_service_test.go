package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/repository/mocks"
	"github.com/jadebook/jadebook/internal/service"
	"github.com/jadebook/jadebook/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalsService(t *testing.T) (*service.GoalsService, *mocks.MockGoalsRepositoryI, *mocks.MockGoalLogsRepositoryI) {
	ctrl := gomock.NewController(t)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)
	logsRepo := mocks.NewMockGoalLogsRepositoryI(ctrl)
	return service.NewGoalsService(goalsRepo, logsRepo), goalsRepo, logsRepo
}

func TestCreateGoal(t *testing.T) {
	t.Parallel()
	goalsService, goalsRepo, _ := newGoalsService(t)

	uid := uuid.New()
	goalID := uuid.New()
	req := service.CreateGoalRequest{
		Title:       "read more",
		Description: "one book a month",
	}
	stored := entity.Goal{
		ID:          goalID,
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.GoalStatusActive,
	}

	t.Run("successful", func(t *testing.T) {
		goalsRepo.EXPECT().Create(gomock.Any(), &entity.Goal{
			UserID:      uid,
			Title:       req.Title,
			Description: req.Description,
		}).Return(goalID, nil)
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&stored, nil)
		result, err := goalsService.CreateGoal(context.Background(), uid, &req)
		require.NoError(t, err)
		assert.Equal(t, &stored, result)
	})
	t.Run("validation error", func(t *testing.T) {
		result, err := goalsService.CreateGoal(context.Background(), uid, &service.CreateGoalRequest{})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
	t.Run("unexist user", func(t *testing.T) {
		goalsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserNotFound)
		result, err := goalsService.CreateGoal(context.Background(), uid, &req)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.Nil(t, result)
	})
}

func TestSetGoalStatus(t *testing.T) {
	t.Parallel()
	goalsService, goalsRepo, _ := newGoalsService(t)

	uid := uuid.New()
	goalID := uuid.New()
	goal := entity.Goal{
		ID:     goalID,
		UserID: uid,
		Status: entity.GoalStatusActive,
	}

	t.Run("completed", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		goalsRepo.EXPECT().SetStatus(gomock.Any(), goalID, entity.GoalStatusCompleted).Return(nil)
		assert.NoError(t, goalsService.SetGoalStatus(context.Background(), goalID, uid, entity.GoalStatusCompleted))
	})
	t.Run("unknown status", func(t *testing.T) {
		err := goalsService.SetGoalStatus(context.Background(), goalID, uid, "paused")
		assert.EqualError(t, err, "unknown goal status: paused")
	})
	t.Run("wrong owner", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		err := goalsService.SetGoalStatus(context.Background(), goalID, uuid.New(), entity.GoalStatusCompleted)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Parallel()
	goalsService, goalsRepo, _ := newGoalsService(t)

	uid := uuid.New()
	goalID := uuid.New()
	req := service.UpdateGoalRequest{
		Title:       "read even more",
		Description: "two books a month",
		Pinned:      true,
	}

	t.Run("successful", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{
			ID:     goalID,
			UserID: uid,
			Title:  "read more",
			Status: entity.GoalStatusActive,
		}, nil)
		goalsRepo.EXPECT().Update(gomock.Any(), &entity.Goal{
			ID:          goalID,
			UserID:      uid,
			Title:       req.Title,
			Description: req.Description,
			Status:      entity.GoalStatusActive,
			Pinned:      true,
		}).Return(nil)
		result, err := goalsService.UpdateGoal(context.Background(), goalID, uid, &req)
		require.NoError(t, err)
		assert.Equal(t, req.Title, result.Title)
		assert.True(t, result.Pinned)
	})
	t.Run("missing goal", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(nil, errorvalues.ErrGoalNotFound)
		result, err := goalsService.UpdateGoal(context.Background(), goalID, uid, &req)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
		assert.Nil(t, result)
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Parallel()
	goalsService, goalsRepo, _ := newGoalsService(t)

	uid := uuid.New()
	goalID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{ID: goalID, UserID: uid}, nil)
		goalsRepo.EXPECT().Delete(gomock.Any(), goalID).Return(nil)
		assert.NoError(t, goalsService.DeleteGoal(context.Background(), goalID, uid))
	})
	t.Run("wrong owner", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.Goal{ID: goalID, UserID: uuid.New()}, nil)
		assert.ErrorIs(t, goalsService.DeleteGoal(context.Background(), goalID, uid), errorvalues.ErrWrongOwner)
	})
}

func TestGoalLogs(t *testing.T) {
	t.Parallel()
	goalsService, goalsRepo, logsRepo := newGoalsService(t)

	uid := uuid.New()
	goalID := uuid.New()
	goal := entity.Goal{
		ID:     goalID,
		UserID: uid,
		Status: entity.GoalStatusActive,
	}

	t.Run("add log", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		logsRepo.EXPECT().Create(gomock.Any(), goalID, "ran 5k").Return(7, nil)
		result, err := goalsService.AddGoalLog(context.Background(), goalID, uid, "ran 5k")
		require.NoError(t, err)
		assert.Equal(t, 7, result.ID)
		assert.Equal(t, goalID, result.GoalID)
	})
	t.Run("add empty log", func(t *testing.T) {
		result, err := goalsService.AddGoalLog(context.Background(), goalID, uid, "")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
	t.Run("add log to foreign goal", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		result, err := goalsService.AddGoalLog(context.Background(), goalID, uuid.New(), "ran 5k")
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		assert.Nil(t, result)
	})
	t.Run("get logs", func(t *testing.T) {
		logs := []entity.GoalLog{
			{ID: 2, GoalID: goalID, Content: "second"},
			{ID: 1, GoalID: goalID, Content: "first"},
		}
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		logsRepo.EXPECT().GetByGoalID(gomock.Any(), goalID).Return(logs, nil)
		result, err := goalsService.GetGoalLogs(context.Background(), goalID, uid)
		require.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("delete log", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		logsRepo.EXPECT().Delete(gomock.Any(), 1, goalID).Return(nil)
		assert.NoError(t, goalsService.DeleteGoalLog(context.Background(), 1, goalID, uid))
	})
	t.Run("delete missing log", func(t *testing.T) {
		goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&goal, nil)
		logsRepo.EXPECT().Delete(gomock.Any(), 9, goalID).Return(errorvalues.ErrLogNotFound)
		assert.ErrorIs(t, goalsService.DeleteGoalLog(context.Background(), 9, goalID, uid), errorvalues.ErrLogNotFound)
	})
}
