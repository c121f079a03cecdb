// Package cli implements the gastos command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/controle-financeiro/gastos/internal/config"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by all commands.
type app struct {
	v       *viper.Viper
	envFile string
	config  config.Config
}

// NewRootCmd returns the gastos command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:               "gastos",
		Short:             "Personal expense tracker",
		Long:              `gastos records personal expenses and serves the views to list, filter, summarize and export them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "file to read environment variables from")
	cmd.PersistentFlags().String("db", "data/gastos.db", "path of the SQLite database")
	cmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format (human, json)")

	_ = a.v.BindPFlag(config.KeyDBPath, cmd.PersistentFlags().Lookup("db"))
	_ = a.v.BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(a.serveCmd())
	cmd.AddCommand(a.categoriesCmd())
	cmd.AddCommand(a.importCmd())

	return cmd
}

// Execute runs the gastos command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	err := config.LoadEnvFile(a.envFile)
	if err != nil {
		return err
	}

	a.config, err = config.Load(a.v)
	if err != nil {
		return err
	}

	gin.SetMode(a.config.GinMode)
	a.config.SetupLogging(cmd.ErrOrStderr())

	return nil
}

// connect opens the database, creating its directory if needed.
func (a *app) connect() error {
	err := os.MkdirAll(filepath.Dir(a.config.DBPath), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(a.config.DBPath)
}
