package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/job-board/pkg/util"
)

var validate = validator.New()

// Validate runs struct tag validation and maps failures to a 400 with the
// offending fields listed in details.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return apperrors.NewValidationError("missing or invalid fields", map[string]any{
		"fields": fields,
	})
}
