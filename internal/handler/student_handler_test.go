package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStudentHandlerFilterRequiresAQueryParameter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students", nil)

	handler.Filter(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHandlerFilterByBatchRequiresAQueryParameter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/filter", nil)

	handler.FilterByBatch(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
