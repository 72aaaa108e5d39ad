package models

import "time"

// Opportunity is a company placement drive.
type Opportunity struct {
	ID            int64      `db:"id" json:"id"`
	CompanyName   string     `db:"company_name" json:"company_name"`
	DriveDate     *time.Time `db:"drive_date" json:"drive_date"`
	DriveRole     string     `db:"drive_role" json:"drive_role"`
	Package       *float64   `db:"package" json:"package"`
	SelectedBatch string     `db:"selected_batch" json:"selected_batch"`
	Domain        string     `db:"domain" json:"domain"`
	CreatedDomain string     `db:"created_domain" json:"created_domain"`
}

// OpportunityStudent is a junction row assigning a student (by booking id)
// to an opportunity.
type OpportunityStudent struct {
	OpportunityID    int64  `db:"opportunity_id" json:"opportunity_id"`
	StudentBookingID string `db:"student_booking_id" json:"student_booking_id"`
}
