// Package validation wraps a shared validator instance for request bodies.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// hata mesajlarında Go alan adı yerine json adını kullan
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// okunabilir layout adları; bilinmeyen layout olduğu gibi gösterilir
var layoutNames = map[string]string{
	"2006-01-02":  "YYYY-MM-DD",
	time.RFC3339:  "RFC3339 (YYYY-MM-DDThh:mm:ssZ)",
	time.DateTime: "YYYY-MM-DD hh:mm:ss",
}

func layoutName(layout string) string {
	if name, ok := layoutNames[layout]; ok {
		return name
	}
	return layout
}

// nefield/gtefield parametresi Go alan adıdır, mesajda json adını göster
func paramField(s any, goField string) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return goField
	}
	f, ok := t.FieldByName(goField)
	if !ok {
		return goField
	}
	if name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
		return name
	}
	return goField
}

// Struct validates s and returns the first violation as a readable error.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "datetime":
		return fmt.Errorf("%s must be in %s format", fe.Field(), layoutName(fe.Param()))
	case "oneof":
		return fmt.Errorf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "email":
		return fmt.Errorf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
	case "nefield":
		return fmt.Errorf("%s must differ from %s", fe.Field(), paramField(s, fe.Param()))
	case "gtefield":
		return fmt.Errorf("%s must not be less than %s", fe.Field(), paramField(s, fe.Param()))
	default:
		return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
