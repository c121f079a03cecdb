package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add and delete the categories expenses are grouped by.`,
	}

	cmd.AddCommand(a.listCategoriesCmd())
	cmd.AddCommand(a.addCategoriesCmd())
	cmd.AddCommand(a.deleteCategoryCmd())

	return cmd
}

func (a *app) listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.connect()
			if err != nil {
				return err
			}

			categories, err := models.Categories(models.DB)
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories found. Use 'gastos categories add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tName\tExpenses")
			for _, c := range categories {
				count, err := c.Expenses(models.DB)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d\t%s\t%d\n", c.ID, c.Name, count)
			}

			return nil
		},
	}
}

func (a *app) addCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Add categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.connect()
			if err != nil {
				return err
			}

			for _, name := range args {
				category := models.Category{Name: name}
				err := category.Create(models.DB)
				if err != nil {
					return fmt.Errorf("could not add category %q: %w", name, err)
				}

				log.Debug().Uint("id", category.ID).Str("name", category.Name).Msg("Category added")
				fmt.Fprintf(cmd.OutOrStdout(), "Added category %d: %s\n", category.ID, category.Name)
			}

			return nil
		},
	}
}

func (a *app) deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and all its expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 0)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid category ID %q", args[0])
			}

			err = a.connect()
			if err != nil {
				return err
			}

			category, err := models.FindCategory(models.DB, uint(id))
			if err != nil {
				return err
			}

			count, err := category.Expenses(models.DB)
			if err != nil {
				return err
			}

			err = models.DeleteCategory(models.DB, category.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %d: %s with %d expenses\n", category.ID, category.Name, count)
			return nil
		},
	}
}
