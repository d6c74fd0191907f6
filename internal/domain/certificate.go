package domain

import "time"

type Certificate struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	VesselID   int64     `gorm:"index;not null" json:"vessel_id"`
	Vessel     *Vessel   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`
}

// DaysLeft is signed; negative means the certificate already expired.
func (c Certificate) DaysLeft(today time.Time) int {
	return int(dateOnly(c.ExpiryDate).Sub(dateOnly(today)).Hours() / 24)
}

// IsExpiringSoon flags certificates expiring within 30 days. An already
// expired certificate (days_left <= 0) is deliberately not flagged.
func (c Certificate) IsExpiringSoon(today time.Time) bool {
	d := c.DaysLeft(today)
	return d > 0 && d <= 30
}
