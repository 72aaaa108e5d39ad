package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// TrainerHandler wires trainer roster and assignment services to HTTP routes.
type TrainerHandler struct {
	trainers *service.TrainerService
}

// NewTrainerHandler constructs a new TrainerHandler.
func NewTrainerHandler(trainers *service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainers: trainers}
}

// List godoc
// @Summary List active trainers
// @Tags Trainers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sme/trainers [get]
func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.trainers.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, trainers)
}

// Assignments godoc
// @Summary List trainer assignments for a batch
// @Tags Trainers
// @Produce json
// @Param batchNo path string true "Batch number"
// @Success 200 {object} response.Envelope
// @Router /sme/trainers/assignments/{batchNo} [get]
func (h *TrainerHandler) Assignments(c *gin.Context) {
	assignments, err := h.trainers.Assignments(c.Request.Context(), c.Param("batchNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// Assign godoc
// @Summary Assign a trainer to a batch with a time slot
// @Tags Trainers
// @Accept json
// @Produce json
// @Param batchNo path string true "Batch number"
// @Param payload body service.AssignTrainerRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /sme/trainers/assignments/{batchNo} [post]
func (h *TrainerHandler) Assign(c *gin.Context) {
	var req service.AssignTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assignment, err := h.trainers.Assign(c.Request.Context(), c.Param("batchNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}
