package web

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mem-bank/pkg/moneypkg"
)

// ErrValidatorEngine indicates that gin uses an unexpected validator engine.
var ErrValidatorEngine = errors.New("unsupported validator engine")

// RegisterValidators makes gin's validator report json field names,
// validate decimal amounts as numbers and provides the money tag.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrValidatorEngine
	}

	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(moneypkg.DecimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("money", validMoney); err != nil {
		return fmt.Errorf("cannot register money validation: %w", err)
	}

	return nil
}

// validMoney accepts decimals that moneypkg.DecimalValue exposed as a number.
func validMoney(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Float64 {
		return false
	}

	return !math.IsNaN(field.Float())
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return fld.Name
	}

	return name
}

// GetErrorMsg returns human readable message for the field validation error.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " field is required"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "money":
		return fmt.Sprintf("%s must have at most %d integer digits and %d decimal places",
			fe.Field(), moneypkg.MaxIntegerDigits, moneypkg.MaxScale)
	}

	return fe.Field() + " is invalid"
}

// BindErrorMsg returns the message for an error returned by gin binding.
func BindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return GetErrorMsg(ve[0])
	}

	return err.Error()
}
