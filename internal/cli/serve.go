package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"timegrid/internal/app"
	"timegrid/internal/shared/configs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [FILE...]",
		Short: "Serve grids over HTTP",
		Long: `Start an HTTP server that builds a fresh report for every request.

  GET /grid?date=2009-12-18&all=true&exclude=ADDR&exclude-agent=TEXT&mode=plain&summary=true
  GET /metrics

FILE arguments replace server.files from the config.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *configPath, args)
		},
	}
	cmd.Flags().Int("port", 8080, "port to listen on")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, args []string) error {
	cfg, err := configs.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Server.Files = args
	}
	if len(cfg.Server.Files) == 0 {
		return errNoInputFiles()
	}

	application, err := app.New(cfg, app.WithLogWriter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Start()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errServerFailed(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		return errServerFailed(err)
	}
	return nil
}
