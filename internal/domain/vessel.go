package domain

import "time"

type VesselType string

const (
	VesselContainer VesselType = "CONTAINER"
	VesselBulk      VesselType = "BULK"
	VesselLNG       VesselType = "LNG"
	VesselTanker    VesselType = "TANKER"
)

// Default position for a newly registered vessel: Busan outer anchorage.
const (
	DefaultLatitude  = 35.10
	DefaultLongitude = 129.04
)

func ValidVesselTypes() []VesselType {
	return []VesselType{VesselContainer, VesselBulk, VesselLNG, VesselTanker}
}

func (t VesselType) Valid() bool {
	for _, v := range ValidVesselTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Display returns the human label shown next to the raw enum value.
func (t VesselType) Display() string {
	switch t {
	case VesselContainer:
		return "Container Ship"
	case VesselBulk:
		return "Bulk Carrier"
	case VesselLNG:
		return "LNG Carrier"
	case VesselTanker:
		return "Oil Tanker"
	default:
		return string(t)
	}
}

type Vessel struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	IMONumber  string     `gorm:"column:imo_number;size:20;uniqueIndex;not null" json:"imo_number"`
	VesselType VesselType `gorm:"size:20;not null" json:"vessel_type"`
	BuiltYear  int        `json:"built_year"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	CreatedAt  time.Time  `json:"created_at"`
}
