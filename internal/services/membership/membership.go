// Package membership keeps the guest and participant sets of events in
// sync with the books service profiles.
package membership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/models"
	"eventsAPI/internal/storage"
)

// ErrProfileUnavailable is returned when the books service cannot provide
// a member profile.
var ErrProfileUnavailable = errors.New("member profile unavailable")

// BatchError reports the member a batch operation stopped at. Members
// handled before it stay committed.
type BatchError struct {
	MemberID int64
	Err      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("member %d: %s", e.MemberID, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventChecker
type EventChecker interface {
	EventExists(ctx context.Context, id int64) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberStorage
type MemberStorage interface {
	Member(ctx context.Context, id int64) (*models.Member, error)
	SaveMember(ctx context.Context, member *models.Member) error
	DeleteMember(ctx context.Context, id int64) error
	IsRegistered(ctx context.Context, eventID, memberID int64) (bool, error)
	Register(ctx context.Context, eventID, memberID int64) error
	Unregister(ctx context.Context, eventID, memberID int64) error
	ListByEvent(ctx context.Context, eventID int64, page, limit int) (models.Page[models.Member], error)
}

// FetchName loads a profile name from the books service.
type FetchName func(ctx context.Context, id int64) (string, error)

type Service struct {
	log     *slog.Logger
	events  EventChecker
	members MemberStorage
	fetch   FetchName
}

func New(
	log *slog.Logger,
	kind models.MemberKind,
	events EventChecker,
	members MemberStorage,
	fetch FetchName,
) *Service {
	return &Service{
		log:     log.With(slog.String("member_kind", string(kind))),
		events:  events,
		members: members,
		fetch:   fetch,
	}
}

// Add attaches the member to the event, creating the local profile from
// the books service on first sight. Adding twice fails.
func (s *Service) Add(ctx context.Context, eventID, memberID int64) error {
	const op = "services.membership.Add"

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.add(ctx, eventID, memberID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Remove detaches the member from the event.
func (s *Service) Remove(ctx context.Context, eventID, memberID int64) error {
	const op = "services.membership.Remove"

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.remove(ctx, eventID, memberID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddBatch adds members one by one and stops at the first failure,
// returning the ids added so far.
func (s *Service) AddBatch(ctx context.Context, eventID int64, memberIDs []int64) ([]int64, error) {
	const op = "services.membership.AddBatch"

	return s.batch(ctx, op, eventID, memberIDs, s.add)
}

// RemoveBatch removes members one by one and stops at the first failure,
// returning the ids removed so far.
func (s *Service) RemoveBatch(ctx context.Context, eventID int64, memberIDs []int64) ([]int64, error) {
	const op = "services.membership.RemoveBatch"

	return s.batch(ctx, op, eventID, memberIDs, s.remove)
}

// Upsert refreshes the local profile from the books service.
func (s *Service) Upsert(ctx context.Context, id int64) (*models.Member, error) {
	const op = "services.membership.Upsert"

	name, err := s.fetch(ctx, id)
	if err != nil {
		s.log.Error("failed to fetch profile", slog.Int64("member_id", id), sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrProfileUnavailable, err)
	}

	member := &models.Member{ID: id, Name: name}
	if err = s.members.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return member, nil
}

func (s *Service) Member(ctx context.Context, id int64) (*models.Member, error) {
	const op = "services.membership.Member"

	member, err := s.members.Member(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return member, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "services.membership.Delete"

	if err := s.members.DeleteMember(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// List pages through the members of an event.
func (s *Service) List(ctx context.Context, eventID int64, page, limit int) (models.Page[models.Member], error) {
	const op = "services.membership.List"

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return models.Page[models.Member]{}, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.members.ListByEvent(ctx, eventID, page, limit)
	if err != nil {
		return models.Page[models.Member]{}, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

func (s *Service) ensureEvent(ctx context.Context, eventID int64) error {
	exists, err := s.events.EventExists(ctx, eventID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrEventNotFound
	}
	return nil
}

func (s *Service) add(ctx context.Context, eventID, memberID int64) error {
	_, err := s.members.Member(ctx, memberID)
	switch {
	case errors.Is(err, storage.ErrMemberNotFound):
		name, fetchErr := s.fetch(ctx, memberID)
		if fetchErr != nil {
			s.log.Error("failed to fetch profile", slog.Int64("member_id", memberID), sl.Err(fetchErr))
			return fmt.Errorf("%w: %w", ErrProfileUnavailable, fetchErr)
		}

		if err = s.members.SaveMember(ctx, &models.Member{ID: memberID, Name: name}); err != nil {
			return err
		}

		s.log.Info("profile created", slog.Int64("member_id", memberID))
	case err != nil:
		return err
	}

	registered, err := s.members.IsRegistered(ctx, eventID, memberID)
	if err != nil {
		return err
	}
	if registered {
		return storage.ErrAlreadyRegistered
	}

	return s.members.Register(ctx, eventID, memberID)
}

func (s *Service) remove(ctx context.Context, eventID, memberID int64) error {
	_, err := s.members.Member(ctx, memberID)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			return storage.ErrNotRegistered
		}
		return err
	}

	registered, err := s.members.IsRegistered(ctx, eventID, memberID)
	if err != nil {
		return err
	}
	if !registered {
		return storage.ErrNotRegistered
	}

	return s.members.Unregister(ctx, eventID, memberID)
}

func (s *Service) batch(
	ctx context.Context,
	op string,
	eventID int64,
	memberIDs []int64,
	apply func(ctx context.Context, eventID, memberID int64) error,
) ([]int64, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	done := make([]int64, 0, len(memberIDs))
	for _, id := range memberIDs {
		if err := apply(ctx, eventID, id); err != nil {
			return done, fmt.Errorf("%s: %w", op, &BatchError{MemberID: id, Err: err})
		}
		done = append(done, id)
	}

	return done, nil
}
