package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"

	"github.com/google/uuid"
)

// Members is the profile table and event join table of one member kind.
type Members struct {
	db        *sql.DB
	kind      models.MemberKind
	table     string
	joinTable string
}

func (s *Storage) Guests() *Members {
	return &Members{db: s.DB, kind: models.KindGuest, table: "guests", joinTable: "guest_event"}
}

func (s *Storage) Participants() *Members {
	return &Members{db: s.DB, kind: models.KindParticipant, table: "participants", joinTable: "participant_event"}
}

func (m *Members) op(name string) string {
	return "storage.postgres." + string(m.kind) + "." + name
}

func (m *Members) Member(ctx context.Context, id int64) (*models.Member, error) {
	op := m.op("Member")

	var member models.Member
	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE id = $1`, m.table)

	err := m.db.QueryRowContext(ctx, query, id).Scan(&member.ID, &member.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrMemberNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &member, nil
}

// SaveMember creates the profile or renames an existing one.
func (m *Members) SaveMember(ctx context.Context, member *models.Member) error {
	op := m.op("SaveMember")

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`, m.table)

	if _, err := m.db.ExecContext(ctx, query, member.ID, member.Name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Members) DeleteMember(ctx context.Context, id int64) error {
	op := m.op("DeleteMember")

	res, err := m.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, m.table), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrMemberNotFound)
	}

	return nil
}

func (m *Members) IsRegistered(ctx context.Context, eventID, memberID int64) (bool, error) {
	op := m.op("IsRegistered")

	query := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1 FROM %s
			WHERE event_id = $1 AND member_id = $2
		)`, m.joinTable)

	var registered bool
	if err := m.db.QueryRowContext(ctx, query, eventID, memberID).Scan(&registered); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return registered, nil
}

func (m *Members) Register(ctx context.Context, eventID, memberID int64) error {
	op := m.op("Register")

	query := fmt.Sprintf(`
		INSERT INTO %s (id, member_id, event_id)
		VALUES ($1, $2, $3)`, m.joinTable)

	_, err := m.db.ExecContext(ctx, query, uuid.New(), memberID, eventID)
	if err != nil {
		if name, ok := violatedConstraint(err); ok && name == m.joinTable+"_member_event_key" {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyRegistered)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Members) Unregister(ctx context.Context, eventID, memberID int64) error {
	op := m.op("Unregister")

	query := fmt.Sprintf(`DELETE FROM %s WHERE event_id = $1 AND member_id = $2`, m.joinTable)

	res, err := m.db.ExecContext(ctx, query, eventID, memberID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotRegistered)
	}

	return nil
}

// ListByEvent pages through the members of an event ordered by id.
func (m *Members) ListByEvent(ctx context.Context, eventID int64, page, limit int) (models.Page[models.Member], error) {
	op := m.op("ListByEvent")

	result := models.Page[models.Member]{Page: page, Limit: limit}

	query := fmt.Sprintf(`
		SELECT m.id, m.name
		FROM %s m
		JOIN %s j ON j.member_id = m.id
		WHERE j.event_id = $1
		ORDER BY m.id ASC
		LIMIT $2 OFFSET $3`, m.table, m.joinTable)

	members, err := m.scan(ctx, query, eventID, limit+1, (page-1)*limit)
	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewPage(members, page, limit), nil
}

// members returns every member of an event.
func (m *Members) members(ctx context.Context, eventID int64) ([]models.Member, error) {
	query := fmt.Sprintf(`
		SELECT m.id, m.name
		FROM %s m
		JOIN %s j ON j.member_id = m.id
		WHERE j.event_id = $1
		ORDER BY m.id ASC`, m.table, m.joinTable)

	return m.scan(ctx, query, eventID)
}

func (m *Members) scan(ctx context.Context, query string, args ...any) ([]models.Member, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %ss: %w", m.kind, err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var member models.Member
		if err = rows.Scan(&member.ID, &member.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", m.kind, err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %ss: %w", m.kind, err)
	}

	return members, nil
}
