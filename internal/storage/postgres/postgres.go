package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventsAPI/internal/config"
	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"

	"github.com/lib/pq"
)

const (
	uniqueViolation = "23505"

	eventsNameKey = "events_name_key"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// violatedConstraint returns the constraint name of a unique violation.
func violatedConstraint(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (name, start_at, end_at, description)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id`

	err := s.DB.QueryRowContext(ctx, query, event.Name, event.Start, event.End, event.Description).Scan(&event.ID)
	if err != nil {
		if name, ok := violatedConstraint(err); ok && name == eventsNameKey {
			return fmt.Errorf("%s: %w", op, storage.ErrEventExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Event returns the event together with its participants.
func (s *Storage) Event(ctx context.Context, id int64) (*models.Event, error) {
	const op = "storage.postgres.Event"

	event, err := getEvent(ctx, s.DB, id, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	participants, err := s.Participants().members(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	event.Participants = participants

	return event, nil
}

func (s *Storage) EventExists(ctx context.Context, id int64) (bool, error) {
	const op = "storage.postgres.EventExists"

	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	event, err := getEvent(ctx, tx, id, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patch.Apply(event)
	if err = event.ValidateSchedule(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updateQuery := `
		UPDATE events
		SET name = $2, start_at = $3, end_at = $4, description = NULLIF($5, '')
		WHERE id = $1`

	_, err = tx.ExecContext(ctx, updateQuery, event.ID, event.Name, event.Start, event.End, event.Description)
	if err != nil {
		if name, ok := violatedConstraint(err); ok && name == eventsNameKey {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return event, nil
}

// DeleteEvent removes the event; membership rows go with it.
func (s *Storage) DeleteEvent(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteEvent"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}

func (s *Storage) ListEvents(
	ctx context.Context,
	filter models.EventFilter,
	now time.Time,
	page, limit int,
) (models.Page[models.Event], error) {
	const op = "storage.postgres.ListEvents"

	result := models.Page[models.Event]{Page: page, Limit: limit}

	query, args := eventsQuery(filter, now, page, limit)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, limit+1)
	for rows.Next() {
		var event models.Event
		if err = rows.Scan(&event.ID, &event.Name, &event.Start, &event.End, &event.Description); err != nil {
			return result, fmt.Errorf("%s: scan event: %w", op, err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return result, fmt.Errorf("%s: iterating events: %w", op, err)
	}

	return models.NewPage(events, page, limit), nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getEvent(ctx context.Context, q queryRower, id int64, forUpdate bool) (*models.Event, error) {
	query := `
		SELECT id, name, start_at, end_at, COALESCE(description, '')
		FROM events
		WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var event models.Event
	err := q.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Start,
		&event.End,
		&event.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}
