package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a token cannot be parsed or a form fails validation.
var ErrInvalidInput = errors.New("invalid input")

type savingsForm struct {
	Number string `validate:"required"`
	Holder string `validate:"required"`
	Rate   decimal.Decimal
}

type checkingForm struct {
	Number         string          `validate:"required"`
	Holder         string          `validate:"required"`
	OverdraftLimit decimal.Decimal `validate:"gte=0"`
}

type fixedDepositForm struct {
	Number     string `validate:"required"`
	Holder     string `validate:"required"`
	TermMonths int    `validate:"gte=0"`
	Rate       decimal.Decimal
}

type amountForm struct {
	Number string `validate:"required"`
	Amount decimal.Decimal
}

// newValidator returns a validator that compares decimals as float64.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func (m *Menu) check(form any) error {
	if err := m.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func parseDecimal(token string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, token)
	}
	return d, nil
}

func parseInt(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, token)
	}
	return n, nil
}
