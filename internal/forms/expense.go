// Package forms validates submitted expenses.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Form field names.
const (
	FieldDescription = "descricao"
	FieldCategory    = "categoria"
	FieldAmount      = "valor"
	FieldRecurrence  = "recorrencia"
	FieldDate        = "data_gasto"
	FieldEditID      = "edit_gasto_id"
)

// Today returns the current date. Dates after it are rejected.
var Today = types.Today

var labels = map[string]string{
	FieldDescription: "description",
	FieldCategory:    "category",
	FieldAmount:      "amount",
	FieldRecurrence:  "recurrence",
	FieldDate:        "date",
}

// ExpenseForm is the raw input for creating or editing an expense.
//
// All values are kept as submitted so that they can be shown again
// when validation fails.
type ExpenseForm struct {
	Description string  `form:"descricao" json:"descricao" binding:"required" example:"Supermercado"`
	Category    string  `form:"categoria" json:"categoria" binding:"required" example:"1"`
	Amount      string  `form:"valor" json:"valor" binding:"required" example:"100.00"`
	Recurrence  string  `form:"recorrencia" json:"recorrencia" example:"none"`
	Date        string  `form:"data_gasto" json:"data_gasto" binding:"required" example:"2024-05-17"`
	EditID      *string `form:"edit_gasto_id" json:"edit_gasto_id,omitempty" example:"12"` // Set when an existing expense is edited
}

// FromExpense returns the form pre-filled with the values of the expense.
func FromExpense(e models.Expense) ExpenseForm {
	return ExpenseForm{
		Description: e.Description,
		Category:    strconv.FormatUint(uint64(e.CategoryID), 10),
		Amount:      e.Amount.StringFixed(2),
		Recurrence:  string(e.Recurrence),
		Date:        e.Date.String(),
	}
}

// IsEdit reports whether the form edits an existing expense.
func (f ExpenseForm) IsEdit() bool {
	return f.EditID != nil
}

// Bind reads the form from the request body. JSON bodies are supported, all
// other bodies are read as form data.
//
// Missing required fields are returned as Errors. The form then contains
// all other submitted values.
func Bind(c *gin.Context) (ExpenseForm, error) {
	var form ExpenseForm

	b := binding.FormPost
	if c.ContentType() == binding.MIMEJSON {
		b = binding.JSON
	}

	err := c.ShouldBindWith(&form, b)
	if err == nil {
		return form, nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errs := Errors{}
		for _, e := range validationErrors {
			field := fieldName(e.StructField())
			errs.Add(field, validationErrorToText(field, e))
		}
		return form, errs
	}

	return form, fmt.Errorf("%w: %s", ErrInvalidBody, err.Error())
}

func fieldName(structField string) string {
	f, ok := reflect.TypeOf(ExpenseForm{}).FieldByName(structField)
	if !ok {
		return structField
	}

	return f.Tag.Get("form")
}

func validationErrorToText(field string, e validator.FieldError) string {
	label, ok := labels[field]
	if !ok {
		label = field
	}

	if e.Tag() == "required" {
		return fmt.Sprintf(msgRequiredFormat, label)
	}

	return fmt.Sprintf(msgInvalidFormat, label)
}

// Validate checks all fields and returns the expense they describe.
//
// errs are the errors found while binding the form. Fields that already
// have an error are not checked again. If any field is invalid, the
// returned error is of type Errors. Database errors are returned as is.
func (f ExpenseForm) Validate(db *gorm.DB, errs Errors) (models.Expense, error) {
	if errs == nil {
		errs = Errors{}
	}

	var expense models.Expense

	if !errs.Has(FieldDescription) {
		expense.Description = strings.TrimSpace(f.Description)
		if msg := DescriptionError(expense.Description); msg != "" {
			errs.Add(FieldDescription, msg)
		}
	}

	if !errs.Has(FieldAmount) {
		amount, msg := parseAmount(f.Amount)
		if msg != "" {
			errs.Add(FieldAmount, msg)
		}
		expense.Amount = amount
	}

	if !errs.Has(FieldDate) {
		date, err := types.ParseDate(f.Date)
		if err != nil {
			errs.Add(FieldDate, MsgDateInvalid)
		} else if msg := DateError(date); msg != "" {
			errs.Add(FieldDate, msg)
		}
		expense.Date = date
	}

	if !errs.Has(FieldRecurrence) {
		expense.Recurrence = models.RecurrenceNone
		if raw := strings.TrimSpace(f.Recurrence); raw != "" {
			recurrence, err := models.ParseRecurrence(raw)
			if err != nil {
				errs.Add(FieldRecurrence, MsgRecurrenceInvalid)
			}
			expense.Recurrence = recurrence
		}
	}

	if !errs.Has(FieldCategory) {
		category, err := findCategory(db, f.Category)
		if errors.Is(err, models.ErrResourceNotFound) {
			errs.Add(FieldCategory, MsgCategoryInvalid)
		} else if err != nil {
			return models.Expense{}, err
		}
		expense.CategoryID = category.ID
		expense.Category = category
	}

	if len(errs) > 0 {
		return models.Expense{}, errs
	}

	return expense, nil
}

// parseAmount parses the amount. A comma is accepted as decimal separator.
// msg describes why the amount is invalid.
func parseAmount(raw string) (amount decimal.Decimal, msg string) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, MsgAmountInvalid
	}

	return amount, AmountError(amount)
}

func findCategory(db *gorm.DB, raw string) (models.Category, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || id == 0 {
		return models.Category{}, fmt.Errorf("%w category with ID %q", models.ErrResourceNotFound, raw)
	}

	var category models.Category
	err = db.First(&category, uint(id)).Error
	return category, err
}
