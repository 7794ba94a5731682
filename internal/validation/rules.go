// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PositiveAmount validates that a decimal amount is greater than zero.
var PositiveAmount = validation.By(func(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a decimal amount")
	}
	if !amount.IsPositive() {
		return validation.NewError("validation_amount_positive", "must be greater than zero")
	}
	return nil
})

// MaxScale validates that a decimal amount has at most places fractional digits.
func MaxScale(places int32) validation.Rule {
	return validation.By(func(value interface{}) error {
		amount, ok := value.(decimal.Decimal)
		if !ok {
			return validation.NewError("validation_amount_type", "must be a decimal amount")
		}
		if !amount.Equal(amount.Truncate(places)) {
			return validation.NewError(
				"validation_amount_scale",
				fmt.Sprintf("must not have more than %d decimal places", places),
			)
		}
		return nil
	})
}
