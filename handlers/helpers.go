package handlers

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Tharushi-Umesha/school-management-system/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report field errors under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// checkPayload validates p and returns a field → message map, or nil when
// the payload is valid.
func checkPayload(p any) map[string]string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return map[string]string{"payload": "invalid payload"}
	}
	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "dateonly":
		return "must be a date in YYYY-MM-DD format"
	case "status":
		return "must be one of: present, absent"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "invalid value"
	}
}
