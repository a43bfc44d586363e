package models

// MemberKind tells guests and participants apart. Both are profiles
// mirrored from the books service and attached to events.
type MemberKind string

const (
	KindGuest       MemberKind = "guest"
	KindParticipant MemberKind = "participant"
)

type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
