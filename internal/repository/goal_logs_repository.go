package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/pkg/cleanup"
	"github.com/jadebook/jadebook/pkg/entity"
)

type GoalLogsRepository struct {
	conn PgConnection
}

func NewGoalLogsRepo(cfg DBConfig) *GoalLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalLogsRepository{
		conn: pool,
	}
}

func NewGoalLogsRepoWithConn(conn PgConnection) *GoalLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalLogsRepo: " + err.Error())
	}
	return &GoalLogsRepository{
		conn: conn,
	}
}

func (lr *GoalLogsRepository) Create(ctx context.Context, goalID uuid.UUID, content string) (int, error) {
	var id int
	row := lr.conn.QueryRow(
		ctx,
		`INSERT INTO goal_logs (goal_id, content) VALUES ($1, $2) RETURNING id;`,
		goalID,
		content,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrGoalNotFound
			}
		}
		return 0, errors.New("creating goal log error: " + err.Error())
	}
	return id, nil
}

func (lr *GoalLogsRepository) GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]entity.GoalLog, error) {
	rows, err := lr.conn.Query(
		ctx,
		`SELECT id, goal_id, content, created_at FROM goal_logs WHERE goal_id = $1 ORDER BY created_at DESC;`,
		goalID,
	)
	if err != nil {
		return nil, errors.New("getting goal logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.GoalLog, 0)
	for rows.Next() {
		l := entity.GoalLog{}
		err = rows.Scan(&l.ID, &l.GoalID, &l.Content, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling goal log error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return logs, nil
}

func (lr *GoalLogsRepository) Delete(ctx context.Context, id int, goalID uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM goal_logs WHERE id = $1 AND goal_id = $2;`, id, goalID)
	if err != nil {
		return errors.New("error deleting goal log: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}
