package models

// DomainCountRow is one grouped row of a per-domain count query. Domain
// holds whatever grouping expression the query used: a raw label, a
// canonical key derived from a batch number prefix, or NULL.
type DomainCountRow struct {
	Domain *string `db:"domain"`
	Count  int     `db:"count"`
}

// PlacementStats is the /students/stats payload: four per-domain count
// maps, each seeded with all six canonical keys.
type PlacementStats struct {
	TotalBatchesPerDomain      map[string]int `json:"totalBatchesPerDomain"`
	UpcomingBatchesPerDomain   map[string]int `json:"upcomingBatchesPerDomain"`
	PlacedStudentsPerDomain    map[string]int `json:"placedStudentsPerDomain"`
	YetToPlaceStudentsPerDomain map[string]int `json:"yetToPlaceStudentsPerDomain"`
}

// MonthlyPlacementRow is one grouped month of placement outcomes.
type MonthlyPlacementRow struct {
	Month        int      `db:"month"`
	StudentCount int      `db:"student_count"`
	AvgPackage   *float64 `db:"avg_package"`
}

// GraphPoint is a single named value on a dashboard chart.
type GraphPoint struct {
	Name       string   `json:"name"`
	Value      int      `json:"value"`
	AvgPackage *float64 `json:"avgPackage,omitempty"`
}

// PlacementGraphs is the /students/graphs payload: twelve months for the
// previous and current calendar year, Jan through Dec.
type PlacementGraphs struct {
	PreviousData []GraphPoint `json:"previousData"`
	CurrentData  []GraphPoint `json:"currentData"`
}

// OwnerCounts is the /owner/dashboard/counts payload.
type OwnerCounts struct {
	OngoingBatchesPerDomain map[string]int `json:"ongoingBatchesPerDomain"`
	LiveStudentsPerDomain   map[string]int `json:"liveStudentsPerDomain"`
	TrainerCountPerDomain   map[string]int `json:"trainerCountPerDomain"`
}

// DomainGraphPoint is a per-domain bar on the owner dashboard charts.
type DomainGraphPoint struct {
	Name     string `json:"name"`
	Students int    `json:"students"`
}

// OwnerGraphs is the /owner/dashboard/graphs payload, all six domains
// present in both series.
type OwnerGraphs struct {
	PlacedData     []DomainGraphPoint `json:"placedData"`
	YetToPlaceData []DomainGraphPoint `json:"yetToPlaceData"`
}

// EpicBatchRow is one grouped row of the SME EPIC histogram query, the
// empty-string to Capable display default already applied.
type EpicBatchRow struct {
	BatchNo    string `db:"batch_no"`
	EpicStatus string `db:"epic_status"`
	Count      int    `db:"count"`
}

// SmeDashboard is the per-domain SME overview payload.
type SmeDashboard struct {
	TotalBatches   int            `json:"totalBatches"`
	TotalStudents  int            `json:"totalStudents"`
	OngoingCount   int            `json:"ongoingCount"`
	CompletedCount int            `json:"completedCount"`
	Placed         int            `json:"placed"`
	YetToPlace     int            `json:"yetToPlace"`
	NotPlaced      int            `json:"notPlaced"`
	EpicCountMap   map[string]int `json:"epicCountMap"`
}

// SmeDashboardRow is the slim student projection the SME dashboard
// aggregates in process.
type SmeDashboardRow struct {
	BatchNo    string `db:"batch_no"`
	Status     string `db:"status"`
	Placement  string `db:"placement"`
	EpicStatus string `db:"epic_status"`
}

// DomainSummary pairs batch and student counts for one raw domain label.
type DomainSummary struct {
	BatchCount   int `db:"batch_count" json:"batchCount"`
	StudentCount int `db:"student_count" json:"studentCount"`
}

// DomainSummaryRow is the grouped form of DomainSummary.
type DomainSummaryRow struct {
	Domain       string `db:"domain"`
	BatchCount   int    `db:"batch_count"`
	StudentCount int    `db:"student_count"`
}

// BatchReportRow is one line of the owner batch report.
type BatchReportRow struct {
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Batch     string `db:"batch" json:"batch"`
	Placement string `db:"placement" json:"placement"`
	BookingID string `db:"booking_id" json:"booking_id"`
}

// PlacementReportRow is one line of the owner placement report.
type PlacementReportRow struct {
	Name        string   `db:"name" json:"name"`
	Company     *string  `db:"company" json:"company"`
	Designation *string  `db:"designation" json:"designation"`
	Salary      *float64 `db:"salary" json:"salary"`
	Batch       string   `db:"batch" json:"batch"`
	BookingID   string   `db:"booking_id" json:"booking_id"`
}

// EpicReportRow is one line of the owner EPIC report and the
// yet-to-place report.
type EpicReportRow struct {
	Name       string   `db:"name" json:"name"`
	Email      string   `db:"email" json:"email"`
	Phone      string   `db:"phone" json:"phone"`
	Batch      string   `db:"batch" json:"batch"`
	Attendance *float64 `db:"attendance" json:"attendance"`
	EpicStatus string   `db:"epic_status" json:"epicStatus"`
	BookingID  string   `db:"booking_id" json:"booking_id"`
}

// StudentReportDetail is the single-student owner report projection.
type StudentReportDetail struct {
	Name               string   `db:"name" json:"name"`
	Email              string   `db:"email" json:"email"`
	Phone              string   `db:"phone" json:"phone"`
	Batch              string   `db:"batch" json:"batch"`
	Placement          string   `db:"placement" json:"placement"`
	EpicStatus         string   `db:"epic_status" json:"epicStatus"`
	Attendance         *float64 `db:"attendance" json:"attendance"`
	Company            *string  `db:"company" json:"company"`
	Designation        *string  `db:"designation" json:"designation"`
	Salary             *float64 `db:"salary" json:"salary"`
	Mode               string   `db:"mode" json:"mode"`
	TrainerName        *string  `db:"trainer_name" json:"trainerName"`
	DomainScore        *float64 `db:"domain_score" json:"domainScore"`
	AptitudeScore      *float64 `db:"aptitude_score" json:"aptitudeScore"`
	CommunicationScore *float64 `db:"communication_score" json:"communicationScore"`
}

// BatchByDomainRow is one line of the owner batches-by-domain dropdown.
type BatchByDomainRow struct {
	BatchNo     string  `db:"batch_no" json:"batchNo"`
	TrainerName *string `db:"trainer_name" json:"trainerName"`
	Mode        string  `db:"mode" json:"mode"`
	Status      string  `db:"status" json:"status"`
}

// DomainOption is a dropdown entry for the owner reports screen.
type DomainOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
