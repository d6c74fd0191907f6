package compliance

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
	certs := rg.Group("/certificates")
	{
		certs.GET("", h.ListCertificates)
		certs.GET("/:id", h.GetCertificate)
		certs.POST("", h.CreateCertificate)
		certs.PUT("/:id", h.UpdateCertificate)
		certs.PATCH("/:id", h.PatchCertificate)
		certs.DELETE("/:id", h.DeleteCertificate)
	}

	workHours := rg.Group("/work-hours")
	{
		workHours.GET("", h.ListWorkHours)
		workHours.GET("/:id", h.GetWorkHour)
		workHours.POST("", h.CreateWorkHour)
		workHours.PUT("/:id", h.UpdateWorkHour)
		workHours.PATCH("/:id", h.PatchWorkHour)
		workHours.DELETE("/:id", h.DeleteWorkHour)
	}
}

/* ---------- CERTIFICATES ---------- */

func (h *Handler) ListCertificates(c *gin.Context) {
	certs, err := h.service.ListCertificates(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"certificates": certs})
}

func (h *Handler) GetCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cert, err := h.service.GetCertificate(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"certificate": cert})
}

func (h *Handler) CreateCertificate(c *gin.Context) {
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	cert, err := h.service.CreateCertificate(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"certificate": cert})
}

func (h *Handler) UpdateCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	cert, err := h.service.UpdateCertificate(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"certificate": cert})
}

func (h *Handler) PatchCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	cert, err := h.service.PatchCertificate(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"certificate": cert})
}

func (h *Handler) DeleteCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCertificate(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Deleted(c)
}

/* ---------- WORK/REST HOURS ---------- */

func (h *Handler) ListWorkHours(c *gin.Context) {
	entries, err := h.service.ListWorkHours(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_hours": entries})
}

func (h *Handler) GetWorkHour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.service.GetWorkHour(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_hour": entry})
}

func (h *Handler) CreateWorkHour(c *gin.Context) {
	var req CreateWorkRestHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	entry, err := h.service.CreateWorkHour(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"work_hour": entry})
}

func (h *Handler) UpdateWorkHour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateWorkRestHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	entry, err := h.service.UpdateWorkHour(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_hour": entry})
}

func (h *Handler) PatchWorkHour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchWorkRestHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	entry, err := h.service.PatchWorkHour(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_hour": entry})
}

func (h *Handler) DeleteWorkHour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteWorkHour(c.Request.Context(), id); err != nil {
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
	case errors.Is(err, ErrSeafarerNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_PARENT", "Referenced seafarer does not exist")
	case errors.Is(err, ErrBadDate):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid date, want YYYY-MM-DD")
	case errors.Is(err, ErrBadWorkHours):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Work hours must be between 0 and 24")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
