package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidYear is returned when a report year is missing or not numeric.
	ErrInvalidYear = errors.New("invalid year")
	// ErrNoSessionDates is returned when a register request expands to no dates.
	ErrNoSessionDates = errors.New("no session dates in range")
	// ErrNoData is returned by exports when the store is empty.
	ErrNoData = errors.New("no data")
	// ErrNoReport is returned when a chart export is requested before any
	// report was rendered.
	ErrNoReport = errors.New("no report rendered yet")
	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs struct tag validation and folds the field errors into
// one message wrapping base.
func validateRequest(req any, base error) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", base, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", base, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "numeric":
		return fmt.Sprintf("%s must be numeric, got %q", fe.Field(), fe.Value())
	case "len":
		return fmt.Sprintf("%s must have %s digits, got %q", fe.Field(), fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
