package compliance

import (
	"time"

	"fleetms/internal/domain"
)

type CreateCertificateRequest struct {
	VesselID   int64  `json:"vessel_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
}

type PatchCertificateRequest struct {
	VesselID   *int64  `json:"vessel_id"`
	Name       *string `json:"name"`
	ExpiryDate *string `json:"expiry_date"`
}

type CertificateResponse struct {
	ID             int64  `json:"id"`
	VesselID       int64  `json:"vessel_id"`
	VesselName     string `json:"vessel_name,omitempty"`
	Name           string `json:"name"`
	ExpiryDate     string `json:"expiry_date"`
	DaysLeft       int    `json:"days_left"`
	IsExpiringSoon bool   `json:"is_expiring_soon"`
}

func toCertificateResponse(c *domain.Certificate, today time.Time) CertificateResponse {
	resp := CertificateResponse{
		ID:             c.ID,
		VesselID:       c.VesselID,
		Name:           c.Name,
		ExpiryDate:     c.ExpiryDate.Format(domain.DateFormat),
		DaysLeft:       c.DaysLeft(today),
		IsExpiringSoon: c.IsExpiringSoon(today),
	}
	if c.Vessel != nil {
		resp.VesselName = c.Vessel.Name
	}
	return resp
}

type CreateWorkRestHourRequest struct {
	SeafarerID int64 `json:"seafarer_id" binding:"required"`
	// Defaults to today when omitted.
	Date      string   `json:"date"`
	WorkHours *float64 `json:"work_hours" binding:"required"`
}

type PatchWorkRestHourRequest struct {
	SeafarerID *int64   `json:"seafarer_id"`
	Date       *string  `json:"date"`
	WorkHours  *float64 `json:"work_hours"`
}

type WorkRestHourResponse struct {
	ID           int64   `json:"id"`
	SeafarerID   int64   `json:"seafarer_id"`
	SeafarerName string  `json:"seafarer_name,omitempty"`
	Date         string  `json:"date"`
	WorkHours    float64 `json:"work_hours"`
	RestHours    float64 `json:"rest_hours"`
	IsViolation  bool    `json:"is_violation"`
}

func toWorkRestHourResponse(w *domain.WorkRestHour) WorkRestHourResponse {
	resp := WorkRestHourResponse{
		ID:          w.ID,
		SeafarerID:  w.SeafarerID,
		Date:        w.Date.Format(domain.DateFormat),
		WorkHours:   w.WorkHours,
		RestHours:   w.RestHours(),
		IsViolation: w.IsViolation(),
	}
	if w.Seafarer != nil {
		resp.SeafarerName = w.Seafarer.Name
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
