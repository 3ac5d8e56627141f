package handlers

import (
	"errors"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"solarys/internal/models"
)

// RegisterValidators teaches gin's validator that a zero Date or Timestamp
// is an absent value, so "required" rejects it.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	v.RegisterCustomTypeFunc(timeValue, models.Date{}, models.Timestamp{})
	return nil
}

func timeValue(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case models.Date:
		if v.IsZero() {
			return nil
		}
		return v.Time
	case models.Timestamp:
		if v.IsZero() {
			return nil
		}
		return v.Time
	}
	return nil
}
