package domain

import (
	"math"
	"time"
)

// NoonReport is a vessel's daily position/performance log entry.
type NoonReport struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	VesselID        int64     `gorm:"index;not null" json:"vessel_id"`
	Vessel          *Vessel   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportDate      time.Time `gorm:"not null" json:"report_date"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	SOG             float64   `gorm:"column:sog" json:"sog"`
	Distance        float64   `json:"distance"`
	FuelConsumption float64   `json:"fuel_consumption"`
}

// CIIScore is the simplified fuel-per-distance indicator, not the regulatory
// CII formula. A zero-distance report scores 0 rather than erroring.
// Rounding is math.Round (half away from zero) to two decimals.
func (r NoonReport) CIIScore() float64 {
	if r.Distance == 0 {
		return 0
	}
	return math.Round(r.FuelConsumption/r.Distance*1000*100) / 100
}
