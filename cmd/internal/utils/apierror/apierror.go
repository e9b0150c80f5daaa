package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON body every failing store route answers with.
type ErrorResponse interface {
	Code() int
	Message() string
}

type simpleError struct {
	StatusCode int      `json:"code"`
	Msg        string   `json:"message"`
	Fields     []string `json:"fields,omitempty"`
}

func (e *simpleError) Code() int       { return e.StatusCode }
func (e *simpleError) Message() string { return e.Msg }

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{StatusCode: code, Msg: message}
}

func NewMissingParamError(param string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter '%s'", param))
}

func NewInvalidParamTypeError(param, kind string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter '%s' must be of type %s", param, kind))
}

// FromValidationError flattens validator errors into a single 400 response
// listing the offending JSON fields.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return &simpleError{
		StatusCode: http.StatusBadRequest,
		Msg:        "Validation failed: " + strings.Join(fields, ", "),
		Fields:     fields,
	}
}

var (
	InternalServerError    = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError     = NewSimple(http.StatusBadRequest, "Malformed request body")
	NotFoundError          = NewSimple(http.StatusNotFound, "Resource not found")
	InvalidTransitionError = NewSimple(http.StatusConflict, "Appointment status can only move from pending to done")
)
