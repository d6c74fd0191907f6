package pms

import (
	"time"

	"fleetms/internal/domain"
)

type CreateEquipmentRequest struct {
	VesselID int64  `json:"vessel_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Maker    string `json:"maker"`
}

type PatchEquipmentRequest struct {
	VesselID *int64  `json:"vessel_id"`
	Name     *string `json:"name"`
	Maker    *string `json:"maker"`
}

type EquipmentResponse struct {
	ID         int64  `json:"id"`
	VesselID   int64  `json:"vessel_id"`
	VesselName string `json:"vessel_name,omitempty"`
	Name       string `json:"name"`
	Maker      string `json:"maker"`
}

func toEquipmentResponse(e *domain.Equipment) EquipmentResponse {
	resp := EquipmentResponse{
		ID:       e.ID,
		VesselID: e.VesselID,
		Name:     e.Name,
		Maker:    e.Maker,
	}
	if e.Vessel != nil {
		resp.VesselName = e.Vessel.Name
	}
	return resp
}

type CreateMaintenanceJobRequest struct {
	EquipmentID   int64  `json:"equipment_id" binding:"required"`
	JobTitle      string `json:"job_title" binding:"required"`
	IntervalDays  int    `json:"interval_days" binding:"required,gt=0"`
	LastPerformed string `json:"last_performed" binding:"required"`
}

type PatchMaintenanceJobRequest struct {
	EquipmentID   *int64  `json:"equipment_id"`
	JobTitle      *string `json:"job_title"`
	IntervalDays  *int    `json:"interval_days"`
	LastPerformed *string `json:"last_performed"`
}

type MaintenanceJobResponse struct {
	ID            int64  `json:"id"`
	EquipmentID   int64  `json:"equipment_id"`
	EquipmentName string `json:"equipment_name,omitempty"`
	VesselName    string `json:"vessel_name,omitempty"`
	JobTitle      string `json:"job_title"`
	IntervalDays  int    `json:"interval_days"`
	LastPerformed string `json:"last_performed"`
	NextDueDate   string `json:"next_due_date"`
	IsOverdue     bool   `json:"is_overdue"`
}

func toMaintenanceJobResponse(j *domain.MaintenanceJob, today time.Time) MaintenanceJobResponse {
	resp := MaintenanceJobResponse{
		ID:            j.ID,
		EquipmentID:   j.EquipmentID,
		JobTitle:      j.JobTitle,
		IntervalDays:  j.IntervalDays,
		LastPerformed: j.LastPerformed.Format(domain.DateFormat),
		NextDueDate:   j.NextDueDate().Format(domain.DateFormat),
		IsOverdue:     j.IsOverdue(today),
	}
	if j.Equipment != nil {
		resp.EquipmentName = j.Equipment.Name
		if j.Equipment.Vessel != nil {
			resp.VesselName = j.Equipment.Vessel.Name
		}
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
