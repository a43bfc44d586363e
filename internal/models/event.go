package models

import (
	"errors"
	"time"
)

// ErrInvalidSchedule is returned when an event ends before it starts.
var ErrInvalidSchedule = errors.New("event end is before its start")

type Status string

const (
	StatusPast     Status = "past"
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPast, StatusUpcoming, StatusOngoing:
		return true
	}
	return false
}

type Event struct {
	ID           int64
	Name         string
	Start        time.Time
	End          time.Time
	Description  string
	Participants []Member
}

// Status derives the event status at the given moment.
func (e *Event) Status(now time.Time) Status {
	switch {
	case e.End.Before(now):
		return StatusPast
	case e.Start.After(now):
		return StatusUpcoming
	default:
		return StatusOngoing
	}
}

func (e *Event) ValidateSchedule() error {
	if e.End.Before(e.Start) {
		return ErrInvalidSchedule
	}
	return nil
}

// EventPatch is a partial update; nil fields are left untouched.
type EventPatch struct {
	Name        *string
	Start       *time.Time
	End         *time.Time
	Description *string
}

func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}

// EventView is the wire representation of an event.
type EventView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Description  string    `json:"description,omitempty"`
	Status       Status    `json:"status"`
	Participants []Member  `json:"participants,omitempty"`
}

func (e *Event) View(now time.Time) EventView {
	return EventView{
		ID:           e.ID,
		Name:         e.Name,
		Start:        e.Start,
		End:          e.End,
		Description:  e.Description,
		Status:       e.Status(now),
		Participants: e.Participants,
	}
}

// Views serializes a listing. Participants are never included.
func Views(events []Event, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for i := range events {
		v := events[i].View(now)
		v.Participants = nil
		views = append(views, v)
	}
	return views
}
