package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/controle-financeiro/gastos/internal/export"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
)

// Columns of an export
const (
	Date int = iota
	Description
	Category
	Amount
	Recurrence
)

// ParseCSV parses a CSV file written by export.WriteCSV.
func ParseCSV(f io.Reader) ([]ExpensePreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return []ExpensePreview{}, nil
	} else if err != nil {
		return []ExpensePreview{}, fmt.Errorf("could not read header of the CSV: %w", err)
	}

	if !slices.Equal(header, export.Header) {
		return []ExpensePreview{}, ErrInvalidHeader
	}

	previews := []ExpensePreview{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return []ExpensePreview{}, fmt.Errorf("could not read line in CSV: %w", err)
		}

		line, _ := reader.FieldPos(0)

		if isTotal(record) {
			break
		}

		preview, err := parseRecord(record)
		if err != nil {
			return csvReadError(line, err)
		}

		preview.Line = line
		previews = append(previews, preview)
	}

	return previews, nil
}

// ParseXLSX parses an Excel workbook written by export.WriteXLSX.
func ParseXLSX(f io.Reader) ([]ExpensePreview, error) {
	workbook, err := excelize.OpenReader(f)
	if err != nil {
		return []ExpensePreview{}, fmt.Errorf("could not open workbook: %w", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(export.SheetName)
	if err != nil {
		return []ExpensePreview{}, fmt.Errorf("could not read sheet %s: %w", export.SheetName, err)
	}

	if len(rows) == 0 {
		return []ExpensePreview{}, nil
	}

	if !slices.Equal(rows[0], export.Header) {
		return []ExpensePreview{}, ErrInvalidHeader
	}

	previews := []ExpensePreview{}
	for i, row := range rows[1:] {
		line := i + 2

		if isTotal(row) {
			break
		}

		// Trailing empty cells are not returned
		for len(row) < len(export.Header) {
			row = append(row, "")
		}

		preview, err := parseRecord(row)
		if err != nil {
			return []ExpensePreview{}, fmt.Errorf("error in row %d of the workbook: %w", line, err)
		}

		preview.Line = line
		previews = append(previews, preview)
	}

	return previews, nil
}

// isTotal reports whether the record is the trailing total row of an export.
func isTotal(record []string) bool {
	return len(record) > Description && record[Date] == "" && record[Description] == "Total"
}

func parseRecord(record []string) (ExpensePreview, error) {
	if len(record) != len(export.Header) {
		return ExpensePreview{}, fmt.Errorf("expected %d columns, got %d", len(export.Header), len(record))
	}

	date, err := time.Parse(export.DateLayout, strings.TrimSpace(record[Date]))
	if err != nil {
		return ExpensePreview{}, fmt.Errorf("could not parse date: %w", err)
	}

	description := strings.TrimSpace(record[Description])
	if description == "" {
		return ExpensePreview{}, errors.New("the description must not be empty")
	}

	category := strings.TrimSpace(record[Category])
	if category == "" {
		return ExpensePreview{}, errors.New("the category must not be empty")
	}

	amount, err := export.ParseCurrency(record[Amount])
	if err != nil {
		return ExpensePreview{}, fmt.Errorf("amount could not be parsed to a decimal: %w", err)
	}

	if !amount.IsPositive() {
		return ExpensePreview{}, models.ErrExpenseAmountNotPositive
	}

	recurrence := models.RecurrenceNone
	if raw := strings.TrimSpace(record[Recurrence]); raw != "" {
		recurrence, err = models.ParseRecurrence(raw)
		if err != nil {
			return ExpensePreview{}, err
		}
	}

	preview := ExpensePreview{
		Expense: models.Expense{
			Description: description,
			Amount:      amount,
			Recurrence:  recurrence,
			Date:        types.DateOf(date),
		},
		Category: category,
	}

	err = preview.Validate()
	if err != nil {
		return ExpensePreview{}, err
	}

	return preview, nil
}

// csvReadError returns the error including the line of the input it occurred in.
func csvReadError(line int, err error) ([]ExpensePreview, error) {
	return []ExpensePreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
