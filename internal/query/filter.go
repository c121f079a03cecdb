// Package query builds the filtered, sorted and paginated views on expenses.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"gorm.io/gorm"
)

// Query parameters that carry filters.
const (
	ParamCategory   = "categoria"
	ParamRecurrence = "recorrencia"
	ParamFrom       = "data_inicio"
	ParamTo         = "data_fim"
	ParamYear       = "ano"
	ParamPage       = "page"
)

// Warnings returned for malformed filter input with PolicyWarn.
const (
	WarnCategory   = "Invalid category."
	WarnRecurrence = "Invalid recurrence."
	WarnFrom       = "Invalid start date."
	WarnTo         = "Invalid end date."
	WarnYear       = "Invalid year. Using the current year."
)

var ErrBadFilterInput = errors.New("invalid filter input")

// Policy decides what happens with malformed filter input.
type Policy int

const (
	// PolicyWarn ignores the malformed filter and returns a warning.
	PolicyWarn Policy = iota

	// PolicyIgnore silently ignores the malformed filter.
	PolicyIgnore

	// PolicyAbort fails with ErrBadFilterInput on the first malformed filter.
	PolicyAbort
)

// ExpenseFilter restricts expenses. All set fields are combined with AND,
// unset fields do not filter.
type ExpenseFilter struct {
	CategoryID *uint
	Recurrence *models.Recurrence
	From       *types.Date // inclusive
	To         *types.Date // inclusive
}

type field struct {
	param   string
	warning string
	parse   func(string, *ExpenseFilter) error
}

var (
	categoryField = field{ParamCategory, WarnCategory, func(s string, f *ExpenseFilter) error {
		id, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return err
		}

		u := uint(id)
		f.CategoryID = &u
		return nil
	}}

	recurrenceField = field{ParamRecurrence, WarnRecurrence, func(s string, f *ExpenseFilter) error {
		r, err := models.ParseRecurrence(s)
		if err != nil {
			return err
		}

		f.Recurrence = &r
		return nil
	}}

	fromField = field{ParamFrom, WarnFrom, func(s string, f *ExpenseFilter) error {
		d, err := types.ParseDate(s)
		if err != nil {
			return err
		}

		f.From = &d
		return nil
	}}

	toField = field{ParamTo, WarnTo, func(s string, f *ExpenseFilter) error {
		d, err := types.ParseDate(s)
		if err != nil {
			return err
		}

		f.To = &d
		return nil
	}}
)

// ParseExpenseFilter reads the category, recurrence and date range filters.
//
// With PolicyWarn, one warning is returned for every malformed parameter.
func ParseExpenseFilter(values url.Values, policy Policy) (ExpenseFilter, []string, error) {
	return parse(values, policy, categoryField, recurrenceField, fromField, toField)
}

// ParseCategoryFilter reads only the category filter.
func ParseCategoryFilter(values url.Values, policy Policy) (ExpenseFilter, []string, error) {
	return parse(values, policy, categoryField)
}

func parse(values url.Values, policy Policy, fields ...field) (ExpenseFilter, []string, error) {
	var filter ExpenseFilter
	warnings := []string{}

	for _, fd := range fields {
		raw := strings.TrimSpace(values.Get(fd.param))
		if raw == "" {
			continue
		}

		err := fd.parse(raw, &filter)
		if err == nil {
			continue
		}

		switch policy {
		case PolicyAbort:
			return ExpenseFilter{}, nil, fmt.Errorf("%w: %s=%q", ErrBadFilterInput, fd.param, raw)
		case PolicyWarn:
			warnings = append(warnings, fd.warning)
		}
	}

	return filter, warnings, nil
}

// Apply restricts the query to the expenses matching the filter.
func (f ExpenseFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.CategoryID != nil {
		db = db.Where("expenses.category_id = ?", *f.CategoryID)
	}

	if f.Recurrence != nil {
		db = db.Where("expenses.recurrence = ?", *f.Recurrence)
	}

	if f.From != nil {
		db = db.Where("expenses.date >= ?", *f.From)
	}

	if f.To != nil {
		db = db.Where("expenses.date <= ?", *f.To)
	}

	return db
}

// InYear returns a copy of the filter restricted to the calendar year.
func (f ExpenseFilter) InYear(year int) ExpenseFilter {
	from := types.NewDate(year, 1, 1)
	to := types.NewDate(year, 12, 31)

	f.From = &from
	f.To = &to

	return f
}

// Values returns the filter as query parameters. Unset fields are omitted.
func (f ExpenseFilter) Values() url.Values {
	values := url.Values{}

	if f.CategoryID != nil {
		values.Set(ParamCategory, strconv.FormatUint(uint64(*f.CategoryID), 10))
	}

	if f.Recurrence != nil {
		values.Set(ParamRecurrence, string(*f.Recurrence))
	}

	if f.From != nil {
		values.Set(ParamFrom, f.From.String())
	}

	if f.To != nil {
		values.Set(ParamTo, f.To.String())
	}

	return values
}

// Newest orders expenses by date, newest first. Expenses on the same day
// are ordered by their ID, last created first.
func Newest(db *gorm.DB) *gorm.DB {
	return db.Order("expenses.date DESC").Order("expenses.id DESC")
}

// Limit returns a scope that selects at most n expenses.
func Limit(n int) models.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}

// ParseYear parses the year parameter. It falls back to the current year
// if the parameter is missing or not an integer. ok is false only for
// malformed input.
func ParseYear(values url.Values, today types.Date) (year int, ok bool) {
	raw := strings.TrimSpace(values.Get(ParamYear))
	if raw == "" {
		return today.Year(), true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return today.Year(), false
	}

	return year, true
}
