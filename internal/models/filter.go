package models

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

var ErrInvalidFilter = errors.New("invalid filter")

const (
	FilterStatus      = "status"
	FilterParticipant = "participant"
	FilterGuest       = "guest"
)

// EventFilter is a conjunction of event listing filters. Unknown filter
// keys are kept in Unsupported and make the whole listing empty.
type EventFilter struct {
	Status        Status
	ParticipantID *int64
	GuestID       *int64
	Unsupported   []string
}

func (f EventFilter) MatchesNothing() bool {
	return len(f.Unsupported) > 0
}

// ParseEventFilter reads filters from query values that no longer hold
// page and limit.
func ParseEventFilter(values url.Values) (EventFilter, error) {
	var f EventFilter

	for key := range values {
		value := values.Get(key)

		switch key {
		case FilterStatus:
			s := Status(value)
			if !s.Valid() {
				return EventFilter{}, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, key, value)
			}
			f.Status = s
		case FilterParticipant:
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return EventFilter{}, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, key, value)
			}
			f.ParticipantID = &id
		case FilterGuest:
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return EventFilter{}, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, key, value)
			}
			f.GuestID = &id
		default:
			f.Unsupported = append(f.Unsupported, key)
		}
	}

	sort.Strings(f.Unsupported)

	return f, nil
}
