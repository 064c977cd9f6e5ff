package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// First returns the first message, or "" when there are none.
func (v ValidationErrors) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// CCCD validation (Vietnamese citizen ID)
func IsValidCCCD(cccd string) bool {
	return len(cccd) == 12 && IsNumeric(cccd)
}

var sheetNameRegex = regexp.MustCompile(`^\d{6}$`)

// IsValidSheetName checks the fixed YYYYMM period key.
func IsValidSheetName(sheetName string) bool {
	return sheetNameRegex.MatchString(sheetName)
}

// DateTimeLayout is the backend's check-in timestamp layout.
const DateTimeLayout = "2006-01-02 15:04:05"

// ParseDateTime parses a backend check-in timestamp.
func ParseDateTime(s string) (time.Time, bool) {
	t, err := time.Parse(DateTimeLayout, s)
	return t, err == nil
}

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// IsValidYear checks the 4-digit prefix of a period key.
func IsValidYear(year string) bool {
	return yearRegex.MatchString(year)
}

var structValidator = newStructValidator()

func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cccd", func(fl playground.FieldLevel) bool {
		return IsValidCCCD(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct runs tag-based validation and converts failures into ValidationErrors.
// messages maps "field.tag" to a user-facing message.
func Struct(s any, messages map[string]string) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " failed " + fe.Tag() + " validation"
		}
		errs = append(errs, ValidationError{Field: fe.Field(), Message: msg})
	}
	return errs
}
