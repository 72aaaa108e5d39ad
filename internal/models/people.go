package models

import "time"

// TeamLeader is a placement team leader account. The stored password is
// never serialised.
type TeamLeader struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
	Role     string `db:"role" json:"role"`
	Password string `db:"password" json:"-"`
}

// User is a dashboard login account. The password hash column is only
// touched at creation time and never selected into list responses.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Role         string    `db:"role" json:"role"`
	PasswordHash string    `db:"password" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Spoc is a company single point of contact.
type Spoc struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Company string `db:"company" json:"company"`
	Address string `db:"address" json:"address"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
}

// Trainer is a roster entry for batch training staff.
type Trainer struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

// TrainerAssignment records a trainer covering a batch for a time slot.
// Assignments accumulate; a batch can hold several.
type TrainerAssignment struct {
	ID          int64     `db:"id" json:"id"`
	BatchNo     string    `db:"batch_no" json:"batch_no"`
	TrainerID   int64     `db:"trainer_id" json:"trainer_id"`
	TrainerName string    `db:"trainer_name" json:"trainer_name"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	AssignedAt  time.Time `db:"assigned_at" json:"assigned_at"`
}
