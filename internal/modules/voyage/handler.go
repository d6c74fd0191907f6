package voyage

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
	reports := rg.Group("/noon-reports")
	{
		reports.GET("", h.ListReports)
		reports.GET("/:id", h.GetReport)
		reports.POST("", h.CreateReport)
		reports.PUT("/:id", h.UpdateReport)
		reports.PATCH("/:id", h.PatchReport)
		reports.DELETE("/:id", h.DeleteReport)
	}
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"noon_reports": reports})
}

func (h *Handler) GetReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	report, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"noon_report": report})
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateNoonReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	report, err := h.service.CreateReport(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"noon_report": report})
}

func (h *Handler) UpdateReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateNoonReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	report, err := h.service.UpdateReport(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"noon_report": report})
}

func (h *Handler) PatchReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchNoonReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	report, err := h.service.PatchReport(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"noon_report": report})
}

func (h *Handler) DeleteReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteReport(c.Request.Context(), id); err != nil {
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
	case errors.Is(err, ErrBadDate):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid date, want YYYY-MM-DD")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
