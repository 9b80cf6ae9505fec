package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/repository"
	"github.com/jadebook/jadebook/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoalLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewGoalLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO goal_logs (goal_id, content) VALUES ($1, $2) RETURNING id;`)
	goalID := uuid.New()
	content := "ran 5k today"
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(goalID, content).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrGoalNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(goalID, content).
					WillReturnError(&pgconn.PgError{
						Code: "23503",
					})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating goal log error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(goalID, content).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			id, err := logsRepo.Create(ctx, goalID, content)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, id)
			}
		})
	}
}

func TestGetGoalLogsByGoalID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewGoalLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, goal_id, content, created_at FROM goal_logs WHERE goal_id = $1 ORDER BY created_at DESC;`)
	goalID := uuid.New()
	now := time.Now()
	returnedLogs := []entity.GoalLog{
		{
			ID:        2,
			GoalID:    goalID,
			Content:   "second note",
			CreatedAt: now,
		},
		{
			ID:        1,
			GoalID:    goalID,
			Content:   "first note",
			CreatedAt: now.Add(-time.Hour),
		},
	}
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "goal_id", "content", "created_at"})
		for _, l := range returnedLogs {
			rows.AddRow(l.ID, l.GoalID, l.Content, l.CreatedAt)
		}
		mock.ExpectQuery(query).WithArgs(goalID).WillReturnRows(rows)
		result, err := logsRepo.GetByGoalID(context.Background(), goalID)
		assert.NoError(t, err)
		assert.Equal(t, returnedLogs, result)
	})
	t.Run("no logs", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(goalID).WillReturnRows(pgxmock.NewRows([]string{"id", "goal_id", "content", "created_at"}))
		result, err := logsRepo.GetByGoalID(context.Background(), goalID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(goalID).WillReturnError(errors.New("db error"))
		result, err := logsRepo.GetByGoalID(context.Background(), goalID)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDeleteGoalLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewGoalLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM goal_logs WHERE id = $1 AND goal_id = $2;`)
	goalID := uuid.New()
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(1, goalID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, logsRepo.Delete(context.Background(), 1, goalID))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(1, goalID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, logsRepo.Delete(context.Background(), 1, goalID), errorvalues.ErrLogNotFound)
	})
}
