package postgres

import (
	"fmt"
	"strings"
	"time"

	"eventsAPI/internal/models"
)

// eventsQuery composes the listing query. Conditions are ANDed, rows are
// ordered by id and one row past the page is fetched to detect a next page.
func eventsQuery(filter models.EventFilter, now time.Time, page, limit int) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.MatchesNothing() {
		conds = append(conds, "FALSE")
	}

	switch filter.Status {
	case models.StatusPast:
		conds = append(conds, "e.end_at < "+arg(now))
	case models.StatusUpcoming:
		conds = append(conds, "e.start_at > "+arg(now))
	case models.StatusOngoing:
		p := arg(now)
		conds = append(conds, "e.start_at <= "+p+" AND e.end_at >= "+p)
	}

	if filter.ParticipantID != nil {
		conds = append(conds, "EXISTS (SELECT 1 FROM participant_event pe WHERE pe.event_id = e.id AND pe.member_id = "+arg(*filter.ParticipantID)+")")
	}

	if filter.GuestID != nil {
		conds = append(conds, "EXISTS (SELECT 1 FROM guest_event ge WHERE ge.event_id = e.id AND ge.member_id = "+arg(*filter.GuestID)+")")
	}

	var b strings.Builder
	b.WriteString("SELECT e.id, e.name, e.start_at, e.end_at, COALESCE(e.description, '') FROM events e")
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY e.id ASC LIMIT ")
	b.WriteString(arg(limit + 1))
	b.WriteString(" OFFSET ")
	b.WriteString(arg((page - 1) * limit))

	return b.String(), args
}
