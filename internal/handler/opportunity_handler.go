package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// OpportunityHandler wires opportunity services to HTTP routes.
type OpportunityHandler struct {
	opportunities *service.OpportunityService
}

// NewOpportunityHandler constructs a new OpportunityHandler.
func NewOpportunityHandler(opportunities *service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunities: opportunities}
}

// List godoc
// @Summary List placement opportunities
// @Tags Opportunities
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	opportunities, err := h.opportunities.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, opportunities)
}

// Get godoc
// @Summary Get an opportunity with its assigned students
// @Tags Opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} response.Envelope
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := h.opportunities.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Create godoc
// @Summary Create an opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param payload body service.OpportunityRequest true "Opportunity payload"
// @Success 201 {object} response.Envelope
// @Router /opportunities [post]
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req service.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	opportunity, err := h.opportunities.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, opportunity)
}

// Update godoc
// @Summary Update an opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param payload body service.OpportunityRequest true "Opportunity payload"
// @Success 200 {object} response.Envelope
// @Router /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.opportunities.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete an opportunity and its assignments
// @Tags Opportunities
// @Param id path int true "Opportunity ID"
// @Success 204 "No Content"
// @Router /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.opportunities.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AppendStudents godoc
// @Summary Add students to an opportunity, keeping existing assignments
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param payload body service.AssignStudentsRequest true "Booking IDs"
// @Success 200 {object} response.Envelope
// @Router /opportunities/{id}/students [post]
func (h *OpportunityHandler) AppendStudents(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.opportunities.AppendStudents(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"assigned": len(req.BookingIDs)})
}

// AssignStudents godoc
// @Summary Replace the student roster of an opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param payload body service.AssignStudentsRequest true "Booking IDs"
// @Success 200 {object} response.Envelope
// @Router /opportunities/{id}/students [put]
func (h *OpportunityHandler) AssignStudents(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.opportunities.AssignStudents(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"assigned": len(req.BookingIDs)})
}
