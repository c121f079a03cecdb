package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/controle-financeiro/gastos/internal/config"
	"github.com/controle-financeiro/gastos/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// shutdownTimeout is the time open requests get to finish on shutdown.
const shutdownTimeout = 5 * time.Second

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Starts the HTTP server. It stops gracefully on SIGINT and SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.connect()
			if err != nil {
				return err
			}

			r, teardown, err := router.Config(a.config.APIURL)
			defer teardown()
			if err != nil {
				return err
			}
			router.AttachRoutes(r.Group("/"))

			ln, err := net.Listen("tcp", a.config.Addr())
			if err != nil {
				return fmt.Errorf("could not listen on %s: %w", a.config.Addr(), err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, ln, r)
		},
	}

	cmd.Flags().Int("port", 8080, "port to listen on")
	_ = a.v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))

	return cmd
}

// serve handles requests on the listener until the context is done, then
// shuts down the server gracefully.
func serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", ln.Addr().String()).Msg("Listening")
		errs <- srv.Serve(ln)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	err = <-errs
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
