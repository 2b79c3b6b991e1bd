package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"reflect"
	"strings"

	"h3llo-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Logger     *slog.Logger
}

func NewHTTPHelper(logger *slog.Logger) *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Warn("register validation translations", "error", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans, Logger: logger}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	var (
		validationErr    models.ErrorValidation
		unprocessableErr models.ErrorUnprocessable
		conflictErr      models.ErrorConflict
		notFoundErr      models.ErrorNotFound
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &unprocessableErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// BindJSON decodes the request body into obj and runs the struct
// validations. Failures come back as models.ErrorValidation.
func (u *HTTPHelper) BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindError(err)
	}
	return u.ValidateStruct(obj)
}

// ValidateStruct ...
func (u *HTTPHelper) ValidateStruct(obj interface{}) error {
	err := u.Validate.Struct(obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.ErrorValidation{Message: "Invalid request body", Details: err.Error()}
	}

	details := map[string]string{}
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = fieldErr.Translate(u.Translator)
	}

	message := "Invalid data format"
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			message = "Missing required fields"
			break
		}
	}
	return models.ErrorValidation{Message: message, Details: details}
}

func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return models.ErrorValidation{
			Message: "Invalid data format",
			Details: fmt.Sprintf("Field '%s' must be of type '%s'.", typeErr.Field, jsonTypeName(typeErr.Type)),
		}
	}
	if errors.Is(err, io.EOF) {
		return models.ErrorValidation{Message: "Request body is missing"}
	}
	return models.ErrorValidation{Message: "Invalid JSON format", Details: err.Error()}
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Ptr:
		return jsonTypeName(t.Elem())
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array of " + jsonTypeName(t.Elem())
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}

// SendError writes the error body with the status for err. Server-side
// failures are logged with their cause and answered with the public message
// only.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	c.AbortWithStatusJSON(status, u.errorResponse(c, status, err))
}

func (u *HTTPHelper) errorResponse(c *gin.Context, status int, err error) ErrorResponse {
	var (
		validationErr    models.ErrorValidation
		unprocessableErr models.ErrorUnprocessable
		conflictErr      models.ErrorConflict
		notFoundErr      models.ErrorNotFound
		storageErr       models.ErrorStorage
		internalErr      models.ErrorInternalServer
	)

	switch {
	case errors.As(err, &validationErr):
		return ErrorResponse{Error: validationErr.Message, Details: validationErr.Details}
	case errors.As(err, &unprocessableErr):
		return ErrorResponse{Error: unprocessableErr.Message, Details: unprocessableErr.Details}
	case errors.As(err, &conflictErr):
		return ErrorResponse{Error: conflictErr.Message, Details: conflictErr.Details}
	case errors.As(err, &notFoundErr):
		return ErrorResponse{Error: notFoundErr.Message, Details: notFoundErr.Details}
	}

	message := http.StatusText(status)
	switch {
	case errors.As(err, &storageErr):
		message = storageErr.Message
	case errors.As(err, &internalErr):
		message = internalErr.Message
	}
	u.Logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"error", err,
	)
	return ErrorResponse{Error: message}
}

// GeneratePagination ...
func (u *HTTPHelper) GeneratePagination(page, limit int, totalItems int64) models.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}
	return models.Pagination{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}
