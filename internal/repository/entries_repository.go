package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/pkg/cleanup"
	"github.com/jadebook/jadebook/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.Entry) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO entries (user_id, title, content, tags, entry_date) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.Tags,
		entry.EntryDate,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrEntryExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating entry db error: " + err.Error())
	}
	return id, nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entry entity.Entry
	entry.ID = id
	row := er.conn.QueryRow(
		ctx,
		`SELECT user_id, title, content, tags, pinned, entry_date, created_at, updated_at FROM entries WHERE id = $1;`,
		id,
	)
	err := row.Scan(&entry.UserID, &entry.Title, &entry.Content, &entry.Tags, &entry.Pinned, &entry.EntryDate, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by id error: " + err.Error())
	}
	return &entry, nil
}

func (er *EntriesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Entry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, user_id, title, content, tags, pinned, entry_date, created_at, updated_at
		FROM entries WHERE user_id = $1 ORDER BY pinned DESC, entry_date DESC LIMIT $2 OFFSET $3;`,
		uid,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("getting entries by uid error: " + err.Error())
	}
	return scanEntries(rows)
}

func (er *EntriesRepository) Update(ctx context.Context, entry *entity.Entry) error {
	ct, err := er.conn.Exec(
		ctx,
		`UPDATE entries SET title = $1, content = $2, tags = $3, updated_at = NOW() WHERE id = $4;`,
		entry.Title,
		entry.Content,
		entry.Tags,
		entry.ID,
	)
	if err != nil {
		return errors.New("error updating entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	ct, err := er.conn.Exec(ctx, `UPDATE entries SET pinned = $1, updated_at = NOW() WHERE id = $2;`, pinned, id)
	if err != nil {
		return errors.New("error pinning entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) Search(ctx context.Context, uid uuid.UUID, query string) ([]*entity.Entry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, user_id, title, content, tags, pinned, entry_date, created_at, updated_at
		FROM entries WHERE user_id = $1
		AND to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', $2)
		ORDER BY entry_date DESC;`,
		uid,
		query,
	)
	if err != nil {
		return nil, errors.New("searching entries error: " + err.Error())
	}
	return scanEntries(rows)
}

func (er *EntriesRepository) GetByTag(ctx context.Context, uid uuid.UUID, tag string) ([]*entity.Entry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, user_id, title, content, tags, pinned, entry_date, created_at, updated_at
		FROM entries WHERE user_id = $1 AND $2 = ANY(tags) ORDER BY entry_date DESC;`,
		uid,
		tag,
	)
	if err != nil {
		return nil, errors.New("getting entries by tag error: " + err.Error())
	}
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]*entity.Entry, error) {
	defer rows.Close()
	entries := make([]*entity.Entry, 0)
	for rows.Next() {
		e := entity.Entry{}
		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Tags, &e.Pinned, &e.EntryDate, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling entry error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}
