package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// SpocHandler wires company SPOC services to HTTP routes.
type SpocHandler struct {
	spocs *service.SpocService
}

// NewSpocHandler constructs a new SpocHandler.
func NewSpocHandler(spocs *service.SpocService) *SpocHandler {
	return &SpocHandler{spocs: spocs}
}

// List godoc
// @Summary List company contacts
// @Tags Spocs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /spocs [get]
func (h *SpocHandler) List(c *gin.Context) {
	spocs, err := h.spocs.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, spocs)
}

// Get godoc
// @Summary Get a company contact
// @Tags Spocs
// @Produce json
// @Param id path int true "SPOC ID"
// @Success 200 {object} response.Envelope
// @Router /spocs/{id} [get]
func (h *SpocHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	spoc, err := h.spocs.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, spoc)
}

// Create godoc
// @Summary Create a company contact
// @Tags Spocs
// @Accept json
// @Produce json
// @Param payload body service.SpocRequest true "SPOC payload"
// @Success 201 {object} response.Envelope
// @Router /spocs [post]
func (h *SpocHandler) Create(c *gin.Context) {
	var req service.SpocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	spoc, err := h.spocs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, spoc)
}

// Update godoc
// @Summary Update a company contact
// @Tags Spocs
// @Accept json
// @Produce json
// @Param id path int true "SPOC ID"
// @Param payload body service.SpocRequest true "SPOC payload"
// @Success 200 {object} response.Envelope
// @Router /spocs/{id} [put]
func (h *SpocHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.SpocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.spocs.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a company contact
// @Tags Spocs
// @Param id path int true "SPOC ID"
// @Success 204 "No Content"
// @Router /spocs/{id} [delete]
func (h *SpocHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.spocs.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
