package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/classware/studentms/internal/app/models/dto"
	"github.com/classware/studentms/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Passport number pattern - one uppercase letter followed by 7 digits
	PassportNumberPattern = `^[A-Z][0-9]{7}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Age bounds
	AgeMin = 16
	AgeMax = 100

	// Graduation year bounds
	GraduationYearMin = 2020
	GraduationYearMax = 2030
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	PassportNumber *regexp.Regexp
}{
	PassportNumber: regexp.MustCompile(PassportNumberPattern),
}

// validate is the shared validator instance. Field names are resolved from
// json tags so violation messages use wire naming.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// passport enforces the external identifier format
	_ = v.RegisterValidation("passport", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.PassportNumber.MatchString(fl.Field().String())
	})

	return v
}

// fieldMessages maps field name and violated rule to the message reported to
// clients. Unlisted combinations fall back to a generic message.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
		"min":      "Name must be between 2 and 100 characters",
		"max":      "Name must be between 2 and 100 characters",
	},
	"passportNumber": {
		"required": "Passport number is required",
		"passport": "Passport number must be in format: one letter followed by 7 digits (e.g., A1234567)",
	},
	"age": {
		"required": "Age is required",
		"min":      "Student must be at least 16 years old",
		"max":      "Age cannot exceed 100",
	},
	"email": {
		"email": "Please provide a valid email address",
	},
	"graduationYear": {
		"min": "Graduation year must be 2020 or later",
		"max": "Graduation year cannot exceed 2030",
	},
}

// ValidateStudent checks every field constraint on the request and returns a
// ValidationError carrying one message per violated field. All constraints
// are evaluated; the check never stops at the first failure. Returns nil when
// the request is valid.
func ValidateStudent(req *dto.StudentRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	vErr := &apperrors.ValidationError{}
	for _, fe := range invalid {
		vErr.Add(fe.Field(), messageFor(fe.Field(), fe.Tag()))
	}

	return vErr
}

func messageFor(field, tag string) string {
	if byTag, ok := fieldMessages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return "invalid value"
}
