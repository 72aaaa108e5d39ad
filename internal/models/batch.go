package models

import "time"

// Batch represents a training batch. batch_no is the business key the
// dashboard addresses batches by; batch_name is a longer display name.
type Batch struct {
	ID          int64      `db:"id" json:"id"`
	BatchNo     string     `db:"batch_no" json:"batch_no"`
	BatchName   string     `db:"batch_name" json:"batch_name"`
	Status      string     `db:"status" json:"status"`
	Mode        string     `db:"mode" json:"mode"`
	StartDate   *time.Time `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date"`
	Domain      string     `db:"domain" json:"domain"`
	Sections    *string    `db:"sections" json:"sections,omitempty"`
	TrainerName *string    `db:"trainer_name" json:"trainer_name,omitempty"`
	TotalCount  *int       `db:"total_count" json:"total_count,omitempty"`
	StartTime   *string    `db:"start_time" json:"start_time,omitempty"`
	EndTime     *string    `db:"end_time" json:"end_time,omitempty"`
}

// BatchFilter captures the optional search parameters for listing batches.
type BatchFilter struct {
	BatchName string
	StartDate string
	EndDate   string
	Mode      string
}

// BatchChange is an append-only audit record of a student moving between
// batches. Rows are never updated or deleted.
type BatchChange struct {
	ID            int64     `db:"id" json:"id"`
	BookingID     string    `db:"booking_id" json:"booking_id"`
	FromBatch     string    `db:"from_batch" json:"from_batch"`
	ToBatch       string    `db:"to_batch" json:"to_batch"`
	Domain        string    `db:"domain" json:"domain"`
	Reason        string    `db:"reason" json:"reason"`
	AttachmentURL string    `db:"attachment_url" json:"attachment_url"`
	RequestedBy   string    `db:"requested_by" json:"requested_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
