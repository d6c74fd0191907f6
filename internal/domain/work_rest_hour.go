package domain

import "time"

// WorkRestHour is one day of recorded working hours for a seafarer.
type WorkRestHour struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	SeafarerID int64     `gorm:"index;not null" json:"seafarer_id"`
	Seafarer   *Seafarer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date       time.Time `gorm:"not null" json:"date"`
	WorkHours  float64   `gorm:"not null" json:"work_hours"`
}

func (w WorkRestHour) RestHours() float64 {
	return 24 - w.WorkHours
}

// IsViolation applies the STCW minimum of 10 rest hours; exactly 10 is compliant.
func (w WorkRestHour) IsViolation() bool {
	return w.RestHours() < 10
}
