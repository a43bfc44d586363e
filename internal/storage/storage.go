package storage

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventExists       = errors.New("event already exists")
	ErrMemberNotFound    = errors.New("member not found")
	ErrAlreadyRegistered = errors.New("member already registered for event")
	ErrNotRegistered     = errors.New("member not registered for event")
)
