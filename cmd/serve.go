package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"hirs/internal/bootstrap"
	"hirs/internal/bootstrap/logging"
	"hirs/internal/errs"
	"hirs/internal/handler/httpapi"
	usecasehazard "hirs/internal/usecase/hazard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the hazard engine over HTTP",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		if seed, _ := cmd.Flags().GetBool("seed"); seed {
			if _, err := svc.SeedSampleData(ctx, "Admin"); err != nil {
				return errs.Wrap(err, "load sample data")
			}
		}

		addr := app.Config.Server.Addr
		server := &http.Server{
			Addr:              addr,
			Handler:           httpapi.NewServer(svc, app.Taxonomy).Router(),
			ReadHeaderTimeout: 5 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		}

		errCh := make(chan error, 1)
		go func() {
			logging.Info(ctx, "http server listening", slog.String("addr", addr))
			errCh <- server.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return errs.Wrap(err, "shutdown http server")
			}
			return nil
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return errs.Wrap(err, "serve http")
		}
	}),
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("seed", false, "Load demonstration reports before serving")
}
