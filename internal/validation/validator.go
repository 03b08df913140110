package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/model"
)

var contactRegexp = regexp.MustCompile(`^[\d\s\-+()]{10,15}$`)

// Violation describes single field validation failure
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError is raised when provided data failed validation
type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	messages := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, "\n")
}

// Violation appends violation to the error
func (e *PayloadError) Violation(v Violation) {
	e.violations = append(e.violations, v)
}

// Violations returns all collected violations
func (e *PayloadError) Violations() []Violation {
	return e.violations
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// Validator validates structs according to validate tags and translates failures to PayloadError
type Validator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds validator with english translations and CRM-specific tags registered
func New() (*Validator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations for validator")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	custom := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{tag: "complaint_category", fn: validCategory, message: "{0} must be one of: " + joinCategories()},
		{tag: "complaint_status", fn: validStatus, message: "{0} must be one of: pending, in-progress, resolved, closed"},
		{tag: "priority", fn: validPriority, message: "{0} must be one of: low, medium, high, critical"},
		{tag: "task_status", fn: validTaskStatus, message: "{0} must be one of: pending, in-progress, completed"},
		{tag: "contact", fn: validContact, message: "{0} must be 10-15 characters of digits, spaces and +-()"},
	}

	for _, c := range custom {
		if err := v.RegisterValidation(c.tag, c.fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation - %w", c.tag, err)
		}

		if err := v.RegisterTranslation(c.tag, trans, registerMessage(c.tag, c.message), translateField); err != nil {
			return nil, fmt.Errorf("failed to register %s translation - %w", c.tag, err)
		}
	}

	return &Validator{validator: v, translator: trans}, nil
}

// Validate validates struct, implements echo.Validator
func (v *Validator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *Validator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]Violation, 0, len(ve))}
	for _, e := range ve {
		pldErr.Violation(Violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

func jsonFieldName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "" {
		tag = fld.Tag.Get("param")
	}

	name := strings.SplitN(tag, ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func registerMessage(tag, msg string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, msg, true)
	}
}

func translateField(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}
	return msg
}

func joinCategories() string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func validCategory(fl validator.FieldLevel) bool {
	return model.Category(fl.Field().String()).Valid()
}

func validStatus(fl validator.FieldLevel) bool {
	return model.Status(fl.Field().String()).Valid()
}

func validPriority(fl validator.FieldLevel) bool {
	return model.Priority(fl.Field().String()).Valid()
}

func validTaskStatus(fl validator.FieldLevel) bool {
	return model.TaskStatus(fl.Field().String()).Valid()
}

func validContact(fl validator.FieldLevel) bool {
	return contactRegexp.MatchString(fl.Field().String())
}
