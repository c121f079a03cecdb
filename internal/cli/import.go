package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/controle-financeiro/gastos/internal/export"
	"github.com/controle-financeiro/gastos/internal/importer"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) importCmd() *cobra.Command {
	var (
		dryRun         bool
		skipDuplicates bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import expenses from an export file",
		Long: `Imports expenses from a CSV or Excel file as written by the export.
Categories are matched by name and created if they do not exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			parse := importer.ParseCSV
			if strings.EqualFold(filepath.Ext(args[0]), ".xlsx") {
				parse = importer.ParseXLSX
			}

			previews, err := parse(f)
			if err != nil {
				return fmt.Errorf("could not parse %s: %w", args[0], err)
			}

			err = a.connect()
			if err != nil {
				return err
			}

			err = importer.FindDuplicates(models.DB, previews)
			if err != nil {
				return err
			}

			if dryRun {
				printPreviews(cmd.OutOrStdout(), previews)
				return nil
			}

			create := previews
			if skipDuplicates {
				create = make([]importer.ExpensePreview, 0, len(previews))
				for _, p := range previews {
					if !p.IsDuplicate() {
						create = append(create, p)
					}
				}
			}

			expenses, err := importer.Create(models.DB, create)
			if err != nil {
				return err
			}

			log.Debug().Str("file", args[0]).Int("count", len(expenses)).Msg("Import")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expenses, skipped %d duplicates\n", len(expenses), len(previews)-len(create))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only show the expenses that would be imported")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "do not import expenses that are already stored")

	return cmd
}

func printPreviews(out io.Writer, previews []importer.ExpensePreview) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "Line\tDate\tDescription\tCategory\tAmount\tRecurrence\tDuplicate")
	for _, p := range previews {
		duplicate := ""
		if p.IsDuplicate() {
			duplicate = "yes"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Line,
			p.Expense.Date.Format(export.DateLayout),
			p.Expense.Description,
			p.Category,
			export.FormatCurrency(p.Expense.Amount),
			p.Expense.Recurrence.Label(),
			duplicate,
		)
	}
}
