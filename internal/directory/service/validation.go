package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var (
	validate = newValidator()

	slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	// Like "email", but also allows addresses at localhost.
	_ = v.RegisterValidation("login_email", func(fl validator.FieldLevel) bool {
		addr := fl.Field().String()
		if local, host, ok := strings.Cut(addr, "@"); ok && local != "" && strings.EqualFold(host, "localhost") {
			addr = local + "@localhost.localdomain"
		}
		return v.Var(addr, "email") == nil
	})
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := ParseLocale(fl.Field().String())
		return err == nil
	})
	return v
}

// ParseLocale accepts BCP 47 tags and POSIX-style tags such as "en_GB".
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, errors.New("empty locale")
	}
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}

// ValidationError lists the invalid fields of a request and why.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(keys, ", "))
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{
		Message: "validation failed",
		Fields:  map[string]string{field: msg},
	}
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return &ValidationError{Message: "validation failed", Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email", "login_email":
		return "must be a valid email address"
	case "e164":
		return "must be an E.164 phone number such as +61412345678"
	case "slug":
		return "may only contain letters, numbers, underscores and hyphens"
	case "locale":
		return "must be a locale such as en_GB or en-AU"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "failed the " + fe.Tag() + " check"
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
