package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/tokenfactory/app"
	"github.com/cosmos/tokenfactory/x/tokenfactory/client/cli"
	"github.com/cosmos/tokenfactory/x/tokenfactory/client/rest"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(v *viper.Viper, open cli.AppOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contract entry points and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, a, v.GetString(flagListenAddr))
		},
	}

	cmd.Flags().String(flagListenAddr, app.DefaultListenAddr, "address the HTTP server listens on")
	return cmd
}

func newRouter(a *app.App) *mux.Router {
	r := mux.NewRouter()
	rest.NewServer(a.Keeper, a.Env(), a.Keeper.Logger()).RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func runServer(ctx context.Context, a *app.App, addr string) error {
	logger := a.Keeper.Logger()
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
