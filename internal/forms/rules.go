package forms

import (
	"strings"
	"unicode/utf8"

	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/shopspring/decimal"
)

// maxAmount is the smallest amount with more than 8 integer digits.
var maxAmount = decimal.New(1, 8)

// DescriptionError returns the message describing why the description is
// invalid. Surrounding whitespace is ignored. Valid descriptions return "".
func DescriptionError(description string) string {
	length := utf8.RuneCountInString(strings.TrimSpace(description))
	if length < 3 {
		return MsgDescriptionTooShort
	} else if length > 200 {
		return MsgDescriptionTooLong
	}

	return ""
}

// AmountError returns the message describing why the amount does not fit
// into a positive DECIMAL(10,2). Valid amounts return "".
func AmountError(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return MsgAmountNotPositive
	}

	if !amount.Equal(amount.Round(2)) || amount.GreaterThanOrEqual(maxAmount) {
		return MsgAmountDigits
	}

	return ""
}

// DateError returns MsgDateInFuture for dates after Today, "" otherwise.
func DateError(date types.Date) string {
	if date.After(Today()) {
		return MsgDateInFuture
	}

	return ""
}
