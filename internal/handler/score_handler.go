package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// ScoreHandler wires score services to HTTP routes.
type ScoreHandler struct {
	scores *service.ScoreService
}

// NewScoreHandler constructs a new ScoreHandler.
func NewScoreHandler(scores *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

// List godoc
// @Summary List milestone scores
// @Tags Scores
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /scores [get]
func (h *ScoreHandler) List(c *gin.Context) {
	scores, err := h.scores.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scores)
}

// Get godoc
// @Summary Get a student's score card
// @Tags Scores
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Envelope
// @Router /scores/{bookingId} [get]
func (h *ScoreHandler) Get(c *gin.Context) {
	score, err := h.scores.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, score)
}

// Submit godoc
// @Summary Submit milestone scores (insert or overwrite)
// @Tags Scores
// @Accept json
// @Produce json
// @Param payload body service.ScoreRequest true "Score payload"
// @Success 201 {object} response.Envelope
// @Router /scores [post]
func (h *ScoreHandler) Submit(c *gin.Context) {
	var req service.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	score, err := h.scores.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, score)
}

// Update godoc
// @Summary Update an existing score card
// @Tags Scores
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param payload body service.ScoreRequest true "Score payload"
// @Success 200 {object} response.Envelope
// @Router /scores/{bookingId} [put]
func (h *ScoreHandler) Update(c *gin.Context) {
	var req service.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.BookingID = c.Param("bookingId")
	score, err := h.scores.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, score)
}
