package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return validate
}

// check runs struct validation and converts the first failure into a
// *ValidationError carrying the form field name.
func (s *Service) check(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	var message string
	switch fe.Tag() {
	case "required":
		message = label + " is required"
	case "datetime":
		message = label + " must be a date (YYYY-MM-DD)"
	case "oneof":
		message = fmt.Sprintf("%s must be one of %s", label, fe.Param())
	case "gt":
		message = label + " must be selected"
	default:
		message = label + " is invalid"
	}
	return invalid(fe.Field(), message)
}

// ParseDuration validates an HH:MM duration. Hours are accepted in [0,24),
// minutes in [0,60).
func ParseDuration(value string) (hours, minutes int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, durationError()
	}

	hourText, minuteText := parts[0], parts[1]
	if !isDigits(hourText, 1, 2) || !isDigits(minuteText, 2, 2) {
		return 0, 0, durationError()
	}

	hours, _ = strconv.Atoi(hourText)
	minutes, _ = strconv.Atoi(minuteText)
	if hours < 0 || hours >= 24 || minutes < 0 || minutes >= 60 {
		return 0, 0, durationError()
	}
	return hours, minutes, nil
}

func durationError() error {
	return &ValidationError{
		Field:   "time_duration",
		Message: ErrInvalidDuration.Error(),
		Err:     ErrInvalidDuration,
	}
}

func isDigits(value string, minLen, maxLen int) bool {
	if len(value) < minLen || len(value) > maxLen {
		return false
	}
	for idx := 0; idx < len(value); idx++ {
		if value[idx] < '0' || value[idx] > '9' {
			return false
		}
	}
	return true
}

// checkNotPast rejects dates before today in the service clock's location.
func (s *Service) checkNotPast(field, value string) error {
	now := s.now()
	date, err := time.ParseInLocation(DateLayout, value, now.Location())
	if err != nil {
		return invalid(field, strings.ReplaceAll(field, "_", " ")+" must be a date (YYYY-MM-DD)")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return invalid(field, "quiz date must be today or later")
	}
	return nil
}
