package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ClockLayout is the wire and storage format for times of day.
const ClockLayout = "15:04"

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range errs {
			errorMessages = append(errorMessages, e.Error())
		}
		return strings.Join(errorMessages, ", ")
	}
	return err.Error()
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		BadRequest(c, "Validation failed: "+FormatValidationError(err))
		return false
	}
	return true
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseClockTime parses an HH:MM time of day. Times are ordered and
// compared as strings, so only the canonical zero-padded form is
// accepted; "9:00" would sort after "14:00".
func ParseClockTime(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil || s != t.Format(ClockLayout) {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t, nil
}

// ValidDateString reports whether s is a well-formed YYYY-MM-DD date.
func ValidDateString(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ValidClockString reports whether s is a well-formed HH:MM time.
func ValidClockString(s string) bool {
	_, err := ParseClockTime(s)
	return err == nil
}
