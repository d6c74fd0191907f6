package voyage

import (
	"time"

	"fleetms/internal/domain"
)

type CreateNoonReportRequest struct {
	VesselID int64 `json:"vessel_id" binding:"required"`
	// Defaults to today when omitted.
	ReportDate      string   `json:"report_date"`
	Latitude        *float64 `json:"latitude" binding:"required"`
	Longitude       *float64 `json:"longitude" binding:"required"`
	SOG             float64  `json:"sog"`
	Distance        float64  `json:"distance"`
	FuelConsumption float64  `json:"fuel_consumption"`
}

type PatchNoonReportRequest struct {
	VesselID        *int64   `json:"vessel_id"`
	ReportDate      *string  `json:"report_date"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	SOG             *float64 `json:"sog"`
	Distance        *float64 `json:"distance"`
	FuelConsumption *float64 `json:"fuel_consumption"`
}

type NoonReportResponse struct {
	ID              int64   `json:"id"`
	VesselID        int64   `json:"vessel_id"`
	VesselName      string  `json:"vessel_name,omitempty"`
	ReportDate      string  `json:"report_date"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	SOG             float64 `json:"sog"`
	Distance        float64 `json:"distance"`
	FuelConsumption float64 `json:"fuel_consumption"`
	CIIScore        float64 `json:"cii_score"`
}

func toNoonReportResponse(r *domain.NoonReport) NoonReportResponse {
	resp := NoonReportResponse{
		ID:              r.ID,
		VesselID:        r.VesselID,
		ReportDate:      r.ReportDate.Format(domain.DateFormat),
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		SOG:             r.SOG,
		Distance:        r.Distance,
		FuelConsumption: r.FuelConsumption,
		CIIScore:        r.CIIScore(),
	}
	if r.Vessel != nil {
		resp.VesselName = r.Vessel.Name
	}
	return resp
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}
