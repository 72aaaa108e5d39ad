package models

import "time"

// Student is a placement candidate. booking_id is the business key every
// mutation addresses students by; batch linkage is carried both as the
// batch_id surrogate foreign key and the batch_no natural key.
type Student struct {
	ID        int64   `db:"id" json:"id"`
	BookingID string  `db:"booking_id" json:"booking_id"`
	BatchID   *int64  `db:"batch_id" json:"batch_id"`
	BatchName string  `db:"batch_name" json:"batch_name"`
	BatchNo   string  `db:"batch_no" json:"batch_no"`
	Domain    string  `db:"domain" json:"domain"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Phone     string  `db:"phone" json:"phone"`
	AltPhone  *string `db:"alternate_phone" json:"alternate_phone"`
	Mode      string  `db:"mode" json:"mode"`
	Gender    *string `db:"gender" json:"gender"`
	DOB       *string `db:"dob" json:"dob"`
	Address   *string `db:"address" json:"address"`
	Pincode   *string `db:"pincode" json:"pincode"`
	City      *string `db:"city" json:"city"`
	State     *string `db:"state" json:"state"`
	PhotoURL  *string `db:"photo_url" json:"photo_url"`
	CVURL     *string `db:"cv_url" json:"cv_url"`

	TenthPercentage   *float64 `db:"tenth_percentage" json:"tenth_percentage"`
	TenthYear         *int     `db:"tenth_year" json:"tenth_year"`
	TwelfthPercentage *float64 `db:"twelfth_percentage" json:"twelfth_percentage"`
	TwelfthYear       *int     `db:"twelfth_year" json:"twelfth_year"`
	UGPercentage      *float64 `db:"ug_percentage" json:"ug_percentage"`
	UGMode            *string  `db:"ug_mode" json:"ug_mode"`
	UGSpecialization  *string  `db:"ug_specialization" json:"ug_specialization"`
	UGYear            *int     `db:"ug_year" json:"ug_year"`
	UGCertificate     bool     `db:"ug_certificate_available" json:"ug_certificate_available"`
	UGArrearsPending  *string  `db:"ug_arrears_pending" json:"ug_arrears_pending"`
	PGPercentage      *float64 `db:"pg_percentage" json:"pg_percentage"`
	PGSpecialization  *string  `db:"pg_specialization" json:"pg_specialization"`
	PGYear            *int     `db:"pg_year" json:"pg_year"`
	PGCertificate     bool     `db:"pg_certificate_available" json:"pg_certificate_available"`
	PGArrearsPending  *string  `db:"pg_arrears_pending" json:"pg_arrears_pending"`
	GapInEducation    *string  `db:"gap_in_education" json:"gap_in_education"`
	GapReason         *string  `db:"gap_reason" json:"gap_reason"`
	WorkExpYears      *int     `db:"work_experience_years" json:"work_experience_years"`
	WorkExpMonths     *int     `db:"work_experience_months" json:"work_experience_months"`
	PreviousOrg       *string  `db:"previous_organisation" json:"previous_organisation"`
	WillingToRelocate bool     `db:"willing_to_relocate" json:"willing_to_relocate"`
	LanguagesWrite    *string  `db:"languages_write" json:"languages_write"`
	LanguagesRead     *string  `db:"languages_read" json:"languages_read"`
	LanguagesSpeak    *string  `db:"languages_speak" json:"languages_speak"`

	CertificateReceived string     `db:"certificate_received" json:"certificate_received"`
	EpicStatus          string     `db:"epic_status" json:"epic_status"`
	Placement           string     `db:"placement" json:"placement"`
	Status              string     `db:"status" json:"status"`
	TrainerName         *string    `db:"trainer_name" json:"trainer_name"`
	Company             *string    `db:"company" json:"company"`
	Designation         *string    `db:"designation" json:"designation"`
	Salary              *float64   `db:"salary" json:"salary"`
	PlacedMonth         *time.Time `db:"placed_month" json:"placed_month"`
	DomainScore         *float64   `db:"domain_score" json:"domain_score"`
	AptitudeScore       *float64   `db:"aptitude_score" json:"aptitude_score"`
	CommunicationScore  *float64   `db:"communication_score" json:"communication_score"`
	Attendance          *float64   `db:"attendance" json:"attendance"`
	Mile1               *float64   `db:"mile1" json:"mile1"`
	Mile2               *float64   `db:"mile2" json:"mile2"`
	Mile3               *float64   `db:"mile3" json:"mile3"`
	IRC                 *float64   `db:"irc" json:"irc"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Placement states a student can be in.
const (
	PlacementPlaced      = "Placed"
	PlacementYetToPlace  = "Yet to Place"
	PlacementNotPlaced   = "Not Placed"
	PlacementNotRequired = "Not Required"
	PlacementIneligible  = "Ineligible"
)

// StatusOngoing is the default lifecycle status for freshly imported
// students. The odd spacing is load-bearing: dashboards filter on it.
const StatusOngoing = "on going"

// EpicStatuses is the fixed EPIC proficiency ladder. An empty stored value
// is displayed as Capable at query time, never rewritten.
var EpicStatuses = []string{"Excellent", "Proficient", "Ideal", "Capable"}

// StudentFilter captures the optional equality filters on student listings.
type StudentFilter struct {
	BatchID   string
	BatchName string
	Status    string
	Placement string
}
