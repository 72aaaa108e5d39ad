package models

import "time"

// Score holds milestone and attendance marks for one student, keyed
// uniquely by booking id.
type Score struct {
	ID         int64      `db:"id" json:"id"`
	BookingID  string     `db:"booking_id" json:"booking_id"`
	Mile1      *float64   `db:"mile1" json:"mile1"`
	Mile2      *float64   `db:"mile2" json:"mile2"`
	Mile3      *float64   `db:"mile3" json:"mile3"`
	IRC        *float64   `db:"irc" json:"irc"`
	EpicStatus *string    `db:"epic_status" json:"epic_status"`
	Attendance *float64   `db:"attendance" json:"attendance"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updated_at"`
}
