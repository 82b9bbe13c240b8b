package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Shrihari6/medflow-nova/internal/model"
)

// RegisterValidators installs domain validators on gin's binding engine.
// Called once at startup; safe to call again in tests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// Report field names from json tags so binding errors match the
	// wire format clients actually send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	return v.RegisterValidation("patientstatus", func(fl validator.FieldLevel) bool {
		return model.PatientStatus(fl.Field().String()).Valid()
	})
}
