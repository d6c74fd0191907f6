package fleet

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
	vessels := rg.Group("/vessels")
	{
		vessels.GET("", h.ListVessels)
		vessels.GET("/:id", h.GetVessel)
		vessels.POST("", h.CreateVessel)
		vessels.PUT("/:id", h.UpdateVessel)
		vessels.PATCH("/:id", h.PatchVessel)
		vessels.DELETE("/:id", h.DeleteVessel)
	}

	seafarers := rg.Group("/seafarers")
	{
		seafarers.GET("", h.ListSeafarers)
		seafarers.GET("/:id", h.GetSeafarer)
		seafarers.POST("", h.CreateSeafarer)
		seafarers.PUT("/:id", h.UpdateSeafarer)
		seafarers.PATCH("/:id", h.PatchSeafarer)
		seafarers.DELETE("/:id", h.DeleteSeafarer)
	}
}

/* ---------- VESSELS ---------- */

func (h *Handler) ListVessels(c *gin.Context) {
	vessels, err := h.service.ListVessels(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vessels": vessels})
}

func (h *Handler) GetVessel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	vessel, err := h.service.GetVessel(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vessel": vessel})
}

func (h *Handler) CreateVessel(c *gin.Context) {
	var req CreateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	vessel, err := h.service.CreateVessel(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"vessel": vessel})
}

func (h *Handler) UpdateVessel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	vessel, err := h.service.UpdateVessel(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vessel": vessel})
}

func (h *Handler) PatchVessel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	vessel, err := h.service.PatchVessel(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vessel": vessel})
}

func (h *Handler) DeleteVessel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteVessel(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Deleted(c)
}

/* ---------- SEAFARERS ---------- */

func (h *Handler) ListSeafarers(c *gin.Context) {
	seafarers, err := h.service.ListSeafarers(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seafarers": seafarers})
}

func (h *Handler) GetSeafarer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	seafarer, err := h.service.GetSeafarer(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seafarer": seafarer})
}

func (h *Handler) CreateSeafarer(c *gin.Context) {
	var req CreateSeafarerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	seafarer, err := h.service.CreateSeafarer(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"seafarer": seafarer})
}

func (h *Handler) UpdateSeafarer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CreateSeafarerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	seafarer, err := h.service.UpdateSeafarer(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seafarer": seafarer})
}

func (h *Handler) PatchSeafarer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PatchSeafarerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	seafarer, err := h.service.PatchSeafarer(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seafarer": seafarer})
}

func (h *Handler) DeleteSeafarer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSeafarer(c.Request.Context(), id); err != nil {
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
	case errors.Is(err, ErrDuplicateIMO):
		response.Error(c, http.StatusConflict, "DUPLICATE_IMO", "IMO number already registered")
	case errors.Is(err, ErrInvalidVesselType):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid vessel type")
	case errors.Is(err, ErrInvalidRank):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid rank")
	case errors.Is(err, ErrVesselNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_PARENT", "Referenced vessel does not exist")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
