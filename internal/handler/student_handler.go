package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/placement-success/placement-api/internal/models"
	"github.com/placement-success/placement-api/internal/service"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
	"github.com/placement-success/placement-api/pkg/response"
)

// StudentHandler wires student services to HTTP routes.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs a new StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List every student
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/allStudents [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), models.StudentFilter{})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Filter godoc
// @Summary Filter students by batch id or placement
// @Tags Students
// @Produce json
// @Param batchId query string false "Batch id"
// @Param placement query string false "Placement status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) Filter(c *gin.Context) {
	filter := models.StudentFilter{
		BatchID:   strings.TrimSpace(c.Query("batchId")),
		Placement: strings.TrimSpace(c.Query("placement")),
	}
	if filter.BatchID == "" && filter.Placement == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "provide either batchId or placement as query parameters"))
		return
	}

	students, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// FilterByBatch godoc
// @Summary Filter students by batch name, status or placement
// @Tags Students
// @Produce json
// @Param batchName query string false "Batch name"
// @Param status query string false "Student status"
// @Param placement query string false "Placement status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/filter [get]
func (h *StudentHandler) FilterByBatch(c *gin.Context) {
	filter := models.StudentFilter{
		BatchName: strings.TrimSpace(c.Query("batchName")),
		Status:    strings.TrimSpace(c.Query("status")),
		Placement: strings.TrimSpace(c.Query("placement")),
	}
	if filter.BatchName == "" && filter.Status == "" && filter.Placement == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "provide at least one of batchName, status or placement"))
		return
	}

	students, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// SearchByBatchNo godoc
// @Summary Search students by batch number fragment
// @Tags Students
// @Produce json
// @Param query query string false "Batch number fragment"
// @Success 200 {object} response.Envelope
// @Router /sme/students/search [get]
func (h *StudentHandler) SearchByBatchNo(c *gin.Context) {
	students, err := h.students.SearchByBatchNo(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// ByBatchNo godoc
// @Summary List students of one batch number
// @Tags Students
// @Produce json
// @Param batchNo path string true "Batch number"
// @Success 200 {object} response.Envelope
// @Router /sme/students/batch/{batchNo} [get]
func (h *StudentHandler) ByBatchNo(c *gin.Context) {
	students, err := h.students.ListByBatchNo(c.Request.Context(), c.Param("batchNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get a student by booking id
// @Tags Students
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Envelope
// @Router /students/{bookingId} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// ByBatch godoc
// @Summary List students belonging to a batch
// @Tags Students
// @Produce json
// @Param batchName path string true "Batch name"
// @Success 200 {object} response.Envelope
// @Router /students/batch/{batchName} [get]
func (h *StudentHandler) ByBatch(c *gin.Context) {
	students, err := h.students.ListByBatch(c.Request.Context(), c.Param("batchName"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// EpicByBatch godoc
// @Summary List EPIC standings for a batch
// @Tags Students
// @Produce json
// @Param batchName path string true "Batch name"
// @Success 200 {object} response.Envelope
// @Router /students/epic/{batchName} [get]
func (h *StudentHandler) EpicByBatch(c *gin.Context) {
	students, err := h.students.EpicByBatch(c.Request.Context(), c.Param("batchName"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Placed godoc
// @Summary List placed students
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/placed [get]
func (h *StudentHandler) Placed(c *gin.Context) {
	students, err := h.students.ListPlaced(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Create godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param payload body service.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /students/{bookingId} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.students.Update(c.Request.Context(), c.Param("bookingId"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// SetPlacementFlag godoc
// @Summary Flag a student as Not Required or Ineligible for placement
// @Tags Students
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param payload body handler.placementFlagRequest true "Placement flag"
// @Success 200 {object} response.Envelope
// @Router /students/{bookingId}/placement [put]
func (h *StudentHandler) SetPlacementFlag(c *gin.Context) {
	var req placementFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.students.SetPlacementFlag(c.Request.Context(), c.Param("bookingId"), req.Placement); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

type placementFlagRequest struct {
	Placement string `json:"placement"`
}

// Delete godoc
// @Summary Delete a student
// @Tags Students
// @Param bookingId path string true "Booking ID"
// @Success 204 "No Content"
// @Router /students/{bookingId} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("bookingId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// BulkImport godoc
// @Summary Bulk import students into a batch
// @Tags Students
// @Accept json
// @Produce json
// @Param batchName path string true "Target batch name"
// @Param payload body []service.BulkStudentRow true "Rows to import"
// @Success 201 {object} response.Envelope
// @Router /students/bulkAdd/{batchName} [post]
func (h *StudentHandler) BulkImport(c *gin.Context) {
	var rows []service.BulkStudentRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.students.BulkImport(c.Request.Context(), c.Param("batchName"), rows)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
