package models

import "time"

// KeyedLabel is a key+label reference row (domains, EPIC levels, user types).
type KeyedLabel struct {
	ID    int64  `db:"id" json:"id"`
	Key   string `db:"key" json:"key"`
	Label string `db:"label" json:"label"`
}

// Label is a label-only reference row (eligibility statuses, batch
// statuses, placement statuses).
type Label struct {
	ID        int64      `db:"id" json:"id"`
	Label     string     `db:"label" json:"label"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
}
