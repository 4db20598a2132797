// Package moneypkg provides common money related functionality for apps.
package moneypkg

import (
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

const (
	// MaxIntegerDigits is the number of digits allowed before the decimal point.
	MaxIntegerDigits = 15
	// MaxScale is the number of digits allowed after the decimal point.
	MaxScale = 8
)

// InRange reports whether d fits in MaxIntegerDigits integer digits and
// MaxScale fractional digits. Only the exponent and coefficient length are
// inspected before any rescaling, so huge exponents are rejected cheaply.
func InRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}

	exp := int64(d.Exponent())
	digits := int64(d.NumDigits())

	if digits+exp > MaxIntegerDigits {
		return false
	}

	if exp >= -MaxScale {
		return true
	}

	// Most significant digit is already past the last allowed place.
	if digits+exp <= -MaxScale {
		return false
	}

	return d.Equal(d.Truncate(MaxScale))
}

// Normalize returns d with zero values reset to a plain zero, so their
// exponent does not travel with the amount.
func Normalize(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d
}

// DecimalValue is a validator custom type func that exposes decimal.Decimal
// as float64, so numeric tags like gte and gt apply to amounts.
// Amounts outside InRange are exposed as NaN and fail the money tag.
func DecimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	switch {
	case d.IsZero():
		return float64(0)
	case !InRange(d):
		return math.NaN()
	}

	return d.InexactFloat64()
}

// UseJSONNumbers makes decimals marshal as JSON numbers instead of strings.
func UseJSONNumbers() {
	decimal.MarshalJSONWithoutQuotes = true
}
