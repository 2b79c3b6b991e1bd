package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h3llo-cms/logging"
	"h3llo-cms/models"
)

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper(logging.Discard())

	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.ErrorValidation{Message: "x"}, http.StatusBadRequest},
		{models.ErrorUnprocessable{Message: "x"}, http.StatusUnprocessableEntity},
		{models.ErrorConflict{Message: "x"}, http.StatusConflict},
		{models.ErrorNotFound{Message: "x"}, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", models.ErrorNotFound{Message: "x"}), http.StatusNotFound},
		{models.ErrorStorage{Message: "x", Err: errors.New("db")}, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, h.GetStatusCode(tc.err), "%v", tc.err)
	}
}

func TestSendErrorHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper(logging.Discard())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/articles", nil)

	h.SendError(c, models.ErrorStorage{Message: "Failed to store article", Err: errors.New("dial tcp: refused")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to store article"}`, w.Body.String())
}

func TestSendErrorIncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper(logging.Discard())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PUT", "/api/articles/a1", nil)

	h.SendError(c, models.ErrorConflict{Message: "Conflict", Details: "Slug 'a' is already in use."})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Conflict","details":"Slug 'a' is already in use."}`, w.Body.String())
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	h := NewHTTPHelper(logging.Discard())

	err := h.ValidateStruct(&models.RegisterDemoUserRequest{Name: "Ida", Email: "nope"})
	var validation models.ErrorValidation
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "Invalid data format", validation.Message)

	details, ok := validation.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "email")

	err = h.ValidateStruct(&models.CreateArticleRequest{Title: "A"})
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "Missing required fields", validation.Message)
	raw, _ := json.Marshal(validation.Details)
	assert.Contains(t, string(raw), "rawContent")
}

func TestGeneratePagination(t *testing.T) {
	h := NewHTTPHelper(logging.Discard())

	assert.Equal(t, models.Pagination{Page: 1, Limit: 10, TotalPages: 3, TotalItems: 21}, h.GeneratePagination(1, 10, 21))
	assert.Equal(t, models.Pagination{Page: 1, Limit: 10, TotalPages: 0, TotalItems: 0}, h.GeneratePagination(1, 10, 0))
}
