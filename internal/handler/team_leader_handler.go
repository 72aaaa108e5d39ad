package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// TeamLeaderHandler wires team leader services to HTTP routes.
type TeamLeaderHandler struct {
	leaders *service.TeamLeaderService
}

// NewTeamLeaderHandler constructs a new TeamLeaderHandler.
func NewTeamLeaderHandler(leaders *service.TeamLeaderService) *TeamLeaderHandler {
	return &TeamLeaderHandler{leaders: leaders}
}

// List godoc
// @Summary List team leaders
// @Tags TeamLeaders
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teamLeader [get]
func (h *TeamLeaderHandler) List(c *gin.Context) {
	leaders, err := h.leaders.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leaders)
}

// Get godoc
// @Summary Get a team leader
// @Tags TeamLeaders
// @Produce json
// @Param id path string true "Team leader ID"
// @Success 200 {object} response.Envelope
// @Router /teamLeader/{id} [get]
func (h *TeamLeaderHandler) Get(c *gin.Context) {
	leader, err := h.leaders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leader)
}

// Create godoc
// @Summary Create a team leader
// @Tags TeamLeaders
// @Accept json
// @Produce json
// @Param payload body service.CreateTeamLeaderRequest true "Team leader payload"
// @Success 201 {object} response.Envelope
// @Router /teamLeader [post]
func (h *TeamLeaderHandler) Create(c *gin.Context) {
	var req service.CreateTeamLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	leader, err := h.leaders.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, leader)
}

// Update godoc
// @Summary Update a team leader
// @Tags TeamLeaders
// @Accept json
// @Produce json
// @Param id path string true "Team leader ID"
// @Param payload body service.UpdateTeamLeaderRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /teamLeader/{id} [put]
func (h *TeamLeaderHandler) Update(c *gin.Context) {
	var req service.UpdateTeamLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.leaders.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a team leader
// @Tags TeamLeaders
// @Param id path string true "Team leader ID"
// @Success 204 "No Content"
// @Router /teamLeader/{id} [delete]
func (h *TeamLeaderHandler) Delete(c *gin.Context) {
	if err := h.leaders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
