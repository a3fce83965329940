package errors

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// NewValidationResponse converts a validator error into a 400 response
// body with per-field details. Non-validator errors produce the generic
// validation message without details.
func NewValidationResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Error: "validation error",
		Code:  "VALIDATION_ERROR",
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
		resp.Details = details
	}
	return resp
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "username":
		return "must contain only lowercase letters, digits and hyphens"
	default:
		return "is invalid"
	}
}
