package expenses

import (
	"fmt"
	"time"

	"github.com/controle-financeiro/gastos/internal/forms"
	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Notification levels
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Notification is a message for the user about the outcome of the request.
type Notification struct {
	Level   string `json:"level" example:"success" enums:"success,warning,error"` // Severity of the message
	Message string `json:"message" example:"Expense added successfully!"`         // Human readable message
}

func warnings(messages []string) []Notification {
	notifications := make([]Notification, 0, len(messages))
	for _, m := range messages {
		notifications = append(notifications, Notification{Level: LevelWarning, Message: m})
	}

	return notifications
}

type Category struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Alimentação"`
}

func newCategories(list []models.Category) []Category {
	categories := make([]Category, 0, len(list))
	for _, m := range list {
		categories = append(categories, Category{ID: m.ID, Name: m.Name})
	}

	return categories
}

type RecurrenceOption struct {
	Value models.Recurrence `json:"value" example:"monthly"` // Value to submit
	Label string            `json:"label" example:"Mensal"`  // Human readable name
}

func recurrenceOptions() []RecurrenceOption {
	options := make([]RecurrenceOption, 0, len(models.Recurrences))
	for _, r := range models.Recurrences {
		options = append(options, RecurrenceOption{Value: r, Label: r.Label()})
	}

	return options
}

type ExpenseLinks struct {
	Edit   string `json:"edit" example:"https://example.com/api/?editar=12"`   // Recent expenses with the expense loaded for editing
	Delete string `json:"delete" example:"https://example.com/api/apagar/12/"` // Confirmation and deletion of the expense
}

type Expense struct {
	ID              uint              `json:"id" example:"12"`
	Description     string            `json:"description" example:"Supermercado"`
	Category        Category          `json:"category"`
	Amount          decimal.Decimal   `json:"amount" example:"100.00"`
	Recurrence      models.Recurrence `json:"recurrence" example:"none"`
	RecurrenceLabel string            `json:"recurrenceLabel" example:"Nenhuma"`
	Date            types.Date        `json:"date" swaggertype:"string" example:"2024-05-17"`
	CreatedAt       time.Time         `json:"createdAt" example:"2024-05-17T18:43:00.271152Z"`
	Links           ExpenseLinks      `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := httputil.BaseURL(c)

	return Expense{
		ID:          model.ID,
		Description: model.Description,
		Category: Category{
			ID:   model.CategoryID,
			Name: model.Category.Name,
		},
		Amount:          model.Amount.Round(2),
		Recurrence:      model.Recurrence,
		RecurrenceLabel: model.Recurrence.Label(),
		Date:            model.Date,
		CreatedAt:       model.CreatedAt,
		Links: ExpenseLinks{
			Edit:   fmt.Sprintf("%s/?editar=%d", url, model.ID),
			Delete: fmt.Sprintf("%s/apagar/%d/", url, model.ID),
		},
	}
}

func newExpenses(c *gin.Context, list []models.Expense) []Expense {
	expenses := make([]Expense, 0, len(list))
	for _, m := range list {
		expenses = append(expenses, newExpense(c, m))
	}

	return expenses
}

type IndexResponse struct {
	Expenses         []Expense          `json:"expenses"`                     // The most recent expenses
	Categories       []Category         `json:"categories"`                   // All categories
	SelectedCategory string             `json:"selectedCategory" example:"1"` // The category filter as submitted
	Recurrences      []RecurrenceOption `json:"recurrences"`                  // Choices for the recurrence
	Form             forms.ExpenseForm  `json:"form"`                         // Values for the expense form
	Errors           forms.Errors       `json:"errors,omitempty"`             // Errors per form field
	Edit             *Expense           `json:"edit"`                         // The expense being edited, if any
	Messages         []Notification     `json:"messages"`                     // Notifications for the user
}

type MutationResponse struct {
	Data         *Expense     `json:"data"`                                        // The created or updated expense
	Notification Notification `json:"notification"`                                // Outcome of the request
	Redirect     string       `json:"redirect" example:"https://example.com/api/"` // The view to continue with
}

type DeleteLinks struct {
	Confirm string `json:"confirm" example:"https://example.com/api/apagar/12/"` // POST here to delete the expense
	Cancel  string `json:"cancel" example:"https://example.com/api/"`            // The view to return to without deleting
}

type DeleteResponse struct {
	Data  Expense     `json:"data"` // The expense to delete
	Links DeleteLinks `json:"links"`
}

type MonthTotal struct {
	Month int             `json:"month" example:"1"`       // Month of the year, 1 to 12
	Name  string          `json:"name" example:"Jan"`      // Abbreviated month name
	Total decimal.Decimal `json:"total" example:"1523.75"` // Sum of all expenses in the month
}

type CategoryTotal struct {
	Category string          `json:"category" example:"Alimentação"` // Name of the category
	Total    decimal.Decimal `json:"total" example:"842.10"`         // Sum of all expenses in the category
}

type DashboardResponse struct {
	Year             int             `json:"year" example:"2024"`
	Total            decimal.Decimal `json:"total" example:"18234.90"` // Sum of all expenses in the year
	Monthly          []MonthTotal    `json:"monthly"`                  // Totals per month, only months with expenses
	Categories       []CategoryTotal `json:"categories"`               // Totals per category, only categories with expenses
	CategoryOptions  []Category      `json:"categoryOptions"`          // All categories
	SelectedCategory string          `json:"selectedCategory" example:"1"`
	Messages         []Notification  `json:"messages"`
}

type ChartMonth struct {
	Month string  `json:"mes" example:"Jan"`
	Total float64 `json:"total" example:"1523.75"`
}

type ChartCategory struct {
	Category string  `json:"categoria" example:"Alimentação"`
	Total    float64 `json:"total" example:"842.1"`
}

type ChartDataResponse struct {
	Monthly    []ChartMonth    `json:"mensal"`
	Categories []ChartCategory `json:"categoria"`
}

type HistoryFilter struct {
	Category   string `json:"categoria" example:"1"`
	Recurrence string `json:"recorrencia" example:"monthly"`
	From       string `json:"data_inicio" example:"2024-01-01"`
	To         string `json:"data_fim" example:"2024-01-31"`
}

type HistoryLinks struct {
	Export   string `json:"export" example:"https://example.com/api/exportar-gastos/?recorrencia=monthly"` // CSV export of all filtered expenses
	Previous string `json:"previous" example:"https://example.com/api/historico/?page=1"`                  // The previous page. Empty on the first page
	Next     string `json:"next" example:"https://example.com/api/historico/?page=3"`                      // The next page. Empty on the last page
}

type HistoryResponse struct {
	Expenses    []Expense          `json:"expenses"`                // Expenses on the current page
	Total       decimal.Decimal    `json:"total" example:"3200.50"` // Sum of all filtered expenses on all pages
	Pagination  query.Page         `json:"pagination"`              // Pagination information
	Filter      HistoryFilter      `json:"filter"`                  // The filters as submitted
	Recurrences []RecurrenceOption `json:"recurrences"`             // Choices for the recurrence filter
	Categories  []Category         `json:"categories"`              // Choices for the category filter
	Messages    []Notification     `json:"messages"`
	Links       HistoryLinks       `json:"links"`
}
