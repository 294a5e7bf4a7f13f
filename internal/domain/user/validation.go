package user

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldPANNumber   = "pan_number"
)

type Rule string

const (
	RuleRequiredField Rule = "RequiredField"
	RuleInvalidFormat Rule = "InvalidFormat"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "emailaddr", emailPattern)
	mustRegister(v, "pan", panPattern)
	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Fields holds the five user-editable attributes exactly as submitted.
type Fields struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,emailaddr"`
	PhoneNumber string `json:"phone_number" validate:"required,len=10,number"`
	PANNumber   string `json:"pan_number" validate:"required,pan"`
}

// Normalize trims every field and upper-cases the PAN. The canonical PAN form
// is upper-case on every entry path.
func (f *Fields) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.PANNumber = strings.ToUpper(strings.TrimSpace(f.PANNumber))
}

type Violation struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

var violationMessages = map[string][2]string{
	FieldFirstName:   {"First name is required", ""},
	FieldLastName:    {"Last name is required", ""},
	FieldEmail:       {"Email is required", "Invalid email format"},
	FieldPhoneNumber: {"Phone number is required", "Phone number must be 10 digits"},
	FieldPANNumber:   {"PAN number is required", "Invalid PAN format (ABCDE1234F)"},
}

// ValidateFields applies every field rule and returns the violations in field
// order, at most one per field. Fields are checked as given; callers that want
// trimming and PAN upper-casing call Normalize first.
func ValidateFields(f Fields) []Violation {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		panic(err)
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := RuleInvalidFormat
		if fe.Tag() == "required" {
			rule = RuleRequiredField
		}
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    rule,
			Message: violationMessage(fe.Field(), rule),
		})
	}
	return violations
}

func violationMessage(field string, rule Rule) string {
	messages := violationMessages[field]
	if rule == RuleRequiredField {
		return messages[0]
	}
	return messages[1]
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return ErrInvalidUser.Error() + ": " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidUser
}
