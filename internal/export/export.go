// Package export writes expenses to spreadsheet files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the layout of the date column.
const DateLayout = "02/01/2006"

// SheetName is the name of the worksheet of Excel exports.
const SheetName = "Gastos"

// Header is the first row of every export.
var Header = []string{"Date", "Description", "Category", "Amount", "Recurrence"}

// FormatCurrency formats an amount as Brazilian Real, e.g. "R$ 1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}

	integer, fraction, _ := strings.Cut(amount.Abs().StringFixed(2), ".")
	units, err := strconv.ParseInt(integer, 10, 64)
	if err != nil {
		return fmt.Sprintf("R$ %s%s,%s", sign, integer, fraction)
	}

	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprintf("R$ %s%d,%s", sign, units, fraction)
}

// ParseCurrency parses an amount formatted by FormatCurrency.
func ParseCurrency(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	return decimal.NewFromString(s)
}

// Rows returns the header, one row per expense in the given order and
// a trailing row with the total of all expenses.
func Rows(expenses []models.Expense) [][]string {
	rows := make([][]string, 0, len(expenses)+2)
	rows = append(rows, Header)

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
		rows = append(rows, []string{
			e.Date.Format(DateLayout),
			e.Description,
			e.Category.Name,
			FormatCurrency(e.Amount),
			string(e.Recurrence),
		})
	}

	return append(rows, []string{"", "Total", "", FormatCurrency(total), ""})
}

// WriteCSV writes the expenses as comma separated values.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	writer := csv.NewWriter(w)

	err := writer.WriteAll(Rows(expenses))
	if err != nil {
		return fmt.Errorf("could not write CSV: %w", err)
	}

	return nil
}

// WriteXLSX writes the expenses as an Excel workbook with a single sheet.
func WriteXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", SheetName)
	if err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}

	rows := Rows(expenses)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}

		err = f.SetSheetRow(SheetName, cell, &values)
		if err != nil {
			return fmt.Errorf("could not write row %d: %w", i+1, err)
		}
	}

	err = f.SetCellStyle(SheetName, "A1", "E1", headerStyle)
	if err != nil {
		return fmt.Errorf("could not style header: %w", err)
	}

	err = f.SetColWidth(SheetName, "B", "C", 30)
	if err != nil {
		return err
	}

	err = f.SetColWidth(SheetName, "D", "D", 18)
	if err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	if err != nil {
		return fmt.Errorf("could not write XLSX: %w", err)
	}

	return nil
}
