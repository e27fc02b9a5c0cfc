package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces matches the scale of every NUMERIC(14,2) money column.
const MoneyPlaces = 2

// maxMoney is the first value a NUMERIC(14,2) column cannot hold.
var maxMoney = decimal.New(1, 12)

// ValidateMoney accepts positive amounts the store keeps exactly. Anything
// with a finer scale would be rounded on write and break the ledger sums.
func ValidateMoney(amount decimal.Decimal, what string) error {
	switch {
	case !amount.IsPositive():
		return &InvalidArgumentsError{Msg: fmt.Sprintf("%s must be positive", what)}
	case !amount.Equal(amount.Truncate(MoneyPlaces)):
		return &InvalidArgumentsError{Msg: fmt.Sprintf("%s must have at most %d decimal places", what, MoneyPlaces)}
	case amount.GreaterThanOrEqual(maxMoney):
		return &InvalidArgumentsError{Msg: fmt.Sprintf("%s must be below %s", what, maxMoney.String())}
	}

	return nil
}
