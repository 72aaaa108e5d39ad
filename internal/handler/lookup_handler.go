package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// KeyedLookupHandler serves a keyed lookup table (domains, EPIC levels).
type KeyedLookupHandler struct {
	lookups *service.LookupService
}

// NewKeyedLookupHandler constructs a handler over a keyed lookup service.
func NewKeyedLookupHandler(lookups *service.LookupService) *KeyedLookupHandler {
	return &KeyedLookupHandler{lookups: lookups}
}

// List godoc
// @Summary List keyed lookup entries
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /domain [get]
func (h *KeyedLookupHandler) List(c *gin.Context) {
	entries, err := h.lookups.ListKeyed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Create godoc
// @Summary Create a keyed lookup entry
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body service.KeyedLabelRequest true "Entry payload"
// @Success 201 {object} response.Envelope
// @Router /domain [post]
func (h *KeyedLookupHandler) Create(c *gin.Context) {
	var req service.KeyedLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.lookups.CreateKeyed(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Update godoc
// @Summary Update a keyed lookup entry
// @Tags Lookups
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param payload body service.KeyedLabelRequest true "Entry payload"
// @Success 200 {object} response.Envelope
// @Router /domain/{id} [put]
func (h *KeyedLookupHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.KeyedLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.lookups.UpdateKeyed(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a keyed lookup entry
// @Tags Lookups
// @Param id path int true "Entry ID"
// @Success 204 "No Content"
// @Router /domain/{id} [delete]
func (h *KeyedLookupHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.lookups.DeleteKeyed(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// LabelLookupHandler serves a plain label table (eligibility, batch status, placement).
type LabelLookupHandler struct {
	lookups *service.LookupService
}

// NewLabelLookupHandler constructs a handler over a label lookup service.
func NewLabelLookupHandler(lookups *service.LookupService) *LabelLookupHandler {
	return &LabelLookupHandler{lookups: lookups}
}

// List godoc
// @Summary List label entries
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /eligibilityStatus [get]
func (h *LabelLookupHandler) List(c *gin.Context) {
	entries, err := h.lookups.ListLabels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Create godoc
// @Summary Create a label entry
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body service.LabelRequest true "Label payload"
// @Success 201 {object} response.Envelope
// @Router /eligibilityStatus [post]
func (h *LabelLookupHandler) Create(c *gin.Context) {
	var req service.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.lookups.CreateLabel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Update godoc
// @Summary Update a label entry
// @Tags Lookups
// @Accept json
// @Produce json
// @Param id path int true "Label ID"
// @Param payload body service.LabelRequest true "Label payload"
// @Success 200 {object} response.Envelope
// @Router /eligibilityStatus/{id} [put]
func (h *LabelLookupHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.lookups.UpdateLabel(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a label entry
// @Tags Lookups
// @Param id path int true "Label ID"
// @Success 204 "No Content"
// @Router /eligibilityStatus/{id} [delete]
func (h *LabelLookupHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.lookups.DeleteLabel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
