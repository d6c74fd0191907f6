package pms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetms/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	equipments := rg.Group("/equipments")
	{
		equipments.GET("", h.ListEquipments)
		equipments.GET("/:id", h.GetEquipment)
		equipments.POST("", h.CreateEquipment)
		equipments.PUT("/:id", h.UpdateEquipment)
		equipments.PATCH("/:id", h.PatchEquipment)
		equipments.DELETE("/:id", h.DeleteEquipment)
	}

	jobs := rg.Group("/maintenance-jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("", h.CreateJob)
		jobs.PUT("/:id", h.UpdateJob)
		jobs.PATCH("/:id", h.PatchJob)
		jobs.DELETE("/:id", h.DeleteJob)
	}
}

/* ---------- EQUIPMENT ---------- */

func (h *Handler) ListEquipments(c *gin.Context) {
	equipments, err := h.service.ListEquipments(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipments": equipments})
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	equipment, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": equipment})
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	equipment, err := h.service.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"equipment": equipment})
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	equipment, err := h.service.UpdateEquipment(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": equipment})
}

func (h *Handler) PatchEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	equipment, err := h.service.PatchEquipment(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": equipment})
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Deleted(c)
}

/* ---------- MAINTENANCE JOBS ---------- */

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenance_jobs": jobs})
}

func (h *Handler) GetJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenance_job": job})
}

func (h *Handler) CreateJob(c *gin.Context) {
	var req CreateMaintenanceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	job, err := h.service.CreateJob(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"maintenance_job": job})
}

func (h *Handler) UpdateJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateMaintenanceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	job, err := h.service.UpdateJob(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenance_job": job})
}

func (h *Handler) PatchJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchMaintenanceJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	job, err := h.service.PatchJob(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenance_job": job})
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteJob(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Deleted(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrVesselNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_PARENT", "Referenced vessel does not exist")
	case errors.Is(err, ErrEquipmentNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_PARENT", "Referenced equipment does not exist")
	case errors.Is(err, ErrBadDate):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid date, want YYYY-MM-DD")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
