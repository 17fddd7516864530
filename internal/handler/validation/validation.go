package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"bus-seat-booking/internal/domain/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var registerOnce sync.Once

// Register installs the custom tags on gin's validator. Safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err = v.RegisterValidation("journeydate", validateJourneyDate); err != nil {
			return
		}
		err = v.RegisterValidation("seatnumber", validateSeatNumber)
	})
	return err
}

func validateJourneyDate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseJourneyDate(fl.Field().String())
	return err == nil
}

func validateSeatNumber(fl validator.FieldLevel) bool {
	return schedule.IsValidSeatNumber(strings.TrimSpace(fl.Field().String()))
}

func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FieldErrors turns binding errors into a client friendly list. Non validation errors yield nil.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "journeydate":
		return "must be a date in YYYY-MM-DD format"
	case "seatnumber":
		return "must be a seat label such as A1"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
