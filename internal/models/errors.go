package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrCategoryNameEmpty        = errors.New("the category name must not be empty")
	ErrCategoryDoesNotExist     = errors.New("there is no category with the specified ID")
	ErrExpenseAmountNotPositive = errors.New("the amount of an expense must be greater than zero")
	ErrRecurrenceInvalid        = errors.New("the recurrence must be one of none, weekly, monthly or yearly")
)
