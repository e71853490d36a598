package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "Invalid quantity")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"Invalid quantity"}`, rec.Body.String())
}

func TestJSONOmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, Response{Success: true, Data: map[string]int{"count": 2}})

	assert.JSONEq(t, `{"success":true,"data":{"count":2}}`, rec.Body.String())
}
