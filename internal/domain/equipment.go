package domain

import "time"

type Equipment struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	VesselID int64   `gorm:"index;not null" json:"vessel_id"`
	Vessel   *Vessel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Maker    string  `gorm:"size:100" json:"maker"`
}

// MaintenanceJob is a planned-maintenance entry against one equipment item.
type MaintenanceJob struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	EquipmentID   int64      `gorm:"index;not null" json:"equipment_id"`
	Equipment     *Equipment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	JobTitle      string     `gorm:"size:200;not null" json:"job_title"`
	IntervalDays  int        `gorm:"not null" json:"interval_days"`
	LastPerformed time.Time  `gorm:"not null" json:"last_performed"`
}

func (j MaintenanceJob) NextDueDate() time.Time {
	return dateOnly(j.LastPerformed).AddDate(0, 0, j.IntervalDays)
}

// IsOverdue is strict: a job falling due today is not overdue yet.
func (j MaintenanceJob) IsOverdue(today time.Time) bool {
	return dateOnly(today).After(j.NextDueDate())
}
