// Package validation registers the project's binding rules into gin's
// validator and renders validation failures per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"blogpost/pkg/slug"
)

var (
	registerOnce sync.Once
	registerErr  error

	tagColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Register installs the custom tags (notblank, slug, tagcolor) and JSON
// field naming on gin's default validator. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("slug", validSlug); err != nil {
		return err
	}
	return v.RegisterValidation("tagcolor", tagColor)
}

func jsonName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// validSlug accepts the empty string so optional slug fields can use it
// without omitempty.
func validSlug(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || slug.Valid(s)
}

func tagColor(fl validator.FieldLevel) bool {
	return tagColorPattern.MatchString(fl.Field().String())
}

// Fields maps each failed field to a readable message. It returns nil when
// err is not a validator error.
func Fields(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = message(e)
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "uuid":
		return "must be a valid UUID"
	case "slug":
		return "must contain only letters, numbers, underscores or hyphens"
	case "tagcolor":
		return "must be a hex color like #007bff"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
