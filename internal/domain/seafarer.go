package domain

type Rank string

const (
	RankCaptain       Rank = "CAPTAIN"
	RankChiefMate     Rank = "CHIEF_MATE"
	RankChiefEngineer Rank = "CHIEF_ENGINEER"
	RankAbleSeaman    Rank = "ABLE_SEAMAN"
)

func ValidRanks() []Rank {
	return []Rank{RankCaptain, RankChiefMate, RankChiefEngineer, RankAbleSeaman}
}

func (r Rank) Valid() bool {
	for _, v := range ValidRanks() {
		if r == v {
			return true
		}
	}
	return false
}

func (r Rank) Display() string {
	switch r {
	case RankCaptain:
		return "Captain"
	case RankChiefMate:
		return "Chief Mate"
	case RankChiefEngineer:
		return "Chief Engineer"
	case RankAbleSeaman:
		return "Able Seaman"
	default:
		return string(r)
	}
}

// Seafarer keeps its row when the vessel goes away; only the assignment is cleared.
type Seafarer struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:50;not null" json:"name"`
	Rank        Rank    `gorm:"size:20;not null" json:"rank"`
	Nationality string  `gorm:"size:50" json:"nationality"`
	VesselID    *int64  `gorm:"index" json:"vessel_id"`
	Vessel      *Vessel `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
