package forms

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

// Messages for invalid fields.
const (
	MsgAmountNotPositive   = "amount must be greater than zero."
	MsgAmountInvalid       = "enter a valid amount."
	MsgAmountDigits        = "amount must have at most 10 digits and 2 decimal places."
	MsgDescriptionTooShort = "description must be at least 3 characters."
	MsgDescriptionTooLong  = "description must be at most 200 characters."
	MsgDateInFuture        = "date cannot be in the future."
	MsgDateInvalid         = "enter a valid date."
	MsgCategoryInvalid     = "select a valid category."
	MsgRecurrenceInvalid   = "select a valid recurrence."
	msgRequiredFormat      = "%s is required"
	msgInvalidFormat       = "%s is not valid"
)

// Errors maps form fields to the messages describing why their value is invalid.
type Errors map[string][]string

// Add appends a message for the field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether the field has at least one error.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], " ")))
	}

	return strings.Join(parts, "; ")
}
