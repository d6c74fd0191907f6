package fleet

import (
	"encoding/json"
	"time"

	"fleetms/internal/domain"
)

type CreateVesselRequest struct {
	Name       string            `json:"name" binding:"required"`
	IMONumber  string            `json:"imo_number" binding:"required"`
	VesselType domain.VesselType `json:"vessel_type" binding:"required"`
	BuiltYear  int               `json:"built_year" binding:"required"`
	Latitude   *float64          `json:"latitude"`
	Longitude  *float64          `json:"longitude"`
}

type PatchVesselRequest struct {
	Name       *string            `json:"name"`
	IMONumber  *string            `json:"imo_number"`
	VesselType *domain.VesselType `json:"vessel_type"`
	BuiltYear  *int               `json:"built_year"`
	Latitude   *float64           `json:"latitude"`
	Longitude  *float64           `json:"longitude"`
}

type VesselResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	IMONumber   string            `json:"imo_number"`
	VesselType  domain.VesselType `json:"vessel_type"`
	TypeDisplay string            `json:"type_display"`
	BuiltYear   int               `json:"built_year"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	CrewCount   int64             `json:"crew_count"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toVesselResponse(v *domain.Vessel, crewCount int64) VesselResponse {
	return VesselResponse{
		ID:          v.ID,
		Name:        v.Name,
		IMONumber:   v.IMONumber,
		VesselType:  v.VesselType,
		TypeDisplay: v.VesselType.Display(),
		BuiltYear:   v.BuiltYear,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		CrewCount:   crewCount,
		CreatedAt:   v.CreatedAt,
	}
}

type CreateSeafarerRequest struct {
	Name        string      `json:"name" binding:"required"`
	Rank        domain.Rank `json:"rank" binding:"required"`
	Nationality string      `json:"nationality" binding:"required"`
	VesselID    *int64      `json:"vessel_id"`
}

type PatchSeafarerRequest struct {
	Name        *string      `json:"name"`
	Rank        *domain.Rank `json:"rank"`
	Nationality *string      `json:"nationality"`
	// An explicit null clears the assignment; an absent field leaves it alone.
	VesselID NullableID `json:"vessel_id"`
}

// NullableID tells an absent JSON field apart from an explicit null, which
// a plain pointer cannot.
type NullableID struct {
	Set   bool
	Value *int64
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

type SeafarerResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Rank        domain.Rank `json:"rank"`
	RankDisplay string      `json:"rank_display"`
	Nationality string      `json:"nationality"`
	VesselID    *int64      `json:"vessel_id"`
	VesselName  string      `json:"vessel_name,omitempty"`
}

func toSeafarerResponse(s *domain.Seafarer) SeafarerResponse {
	resp := SeafarerResponse{
		ID:          s.ID,
		Name:        s.Name,
		Rank:        s.Rank,
		RankDisplay: s.Rank.Display(),
		Nationality: s.Nationality,
		VesselID:    s.VesselID,
	}
	if s.Vessel != nil {
		resp.VesselName = s.Vessel.Name
	}
	return resp
}
