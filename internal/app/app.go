package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"timegrid/internal/aggregators"
	internalhttp "timegrid/internal/http"
	"timegrid/internal/models"
	"timegrid/internal/parsers"
	"timegrid/internal/renderers"
	"timegrid/internal/reports"
	"timegrid/internal/shared/configs"
	"timegrid/internal/shared/filestorages"
	"timegrid/internal/shared/loggers"
	"timegrid/internal/shared/metrics"
	"timegrid/internal/streams"
)

const appName = "timegrid"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	fileStorage    filestorages.FileStorage
	reportService  reports.ReportService
	reportRenderer renderers.ReportRenderer
}

type Option func(*options)

type options struct {
	logWriter io.Writer
}

// WithLogWriter sends logs to w instead of stderr.
func WithLogWriter(w io.Writer) Option {
	return func(o *options) {
		o.logWriter = w
	}
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts ...Option) (*App, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var appLogger loggers.Logger
	var err error
	if o.logWriter != nil {
		appLogger, err = loggers.NewWithWriter(config.Log.Level, o.logWriter)
	} else {
		appLogger, err = loggers.New(config.Log.Level)
	}
	if err != nil {
		return nil, errInitFailed("logger", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.Input.StorageRoot)
	if err != nil {
		return nil, errInitFailed("storage", err)
	}

	format := models.LogFormat(config.Input.Format)
	parser, err := parsers.NewLineParser(format, config.Input.Strict)
	if err != nil {
		return nil, err
	}
	recordStream := streams.NewRecordStream(fileStorage, parser)
	reportService := reports.NewReportService(fileStorage, recordStream, aggregators.NewBucketAggregator(), format)

	mode := models.RenderMode(config.Render.Mode)
	gridRenderer, err := renderers.NewGridRenderer(mode, renderers.WithColor(config.Render.Color))
	if err != nil {
		return nil, err
	}

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, internalhttp.GridDefaults{
		Files:            config.Server.Files,
		Mode:             mode,
		Summary:          config.Render.Summary,
		ExcludeAddresses: config.Filters.ExcludeAddresses,
		ExcludeAgents:    config.Filters.ExcludeAgents,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		fileStorage:    fileStorage,
		reportService:  reportService,
		reportRenderer: renderers.NewReportRenderer(gridRenderer, config.Render.Summary),
	}, nil
}

// RunOptions describe a one-shot run.
type RunOptions struct {
	Paths     []string
	Selection models.DateSelection
	// Output is a file to write the report to; empty means stdout.
	Output string
	Stdout io.Writer
}

// Run builds one report, renders it and, when configured, dumps the metrics
// textfile. The textfile is written for failed runs too.
func (app *App) Run(ctx context.Context, opts RunOptions) (err error) {
	ctx = app.appLogger.With().Str(loggers.FieldComponent, "cli").Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	if path := app.config.Metrics.Textfile; path != "" {
		defer func() {
			if writeErr := metrics.WriteTextfile(path); writeErr != nil {
				logger.Warn().Err(writeErr).Str(loggers.FieldFile, path).Msg("failed to write metrics textfile")
				if err == nil {
					err = errMetricsTextfile(path, writeErr)
				}
			}
		}()
	}

	report, err := app.reportService.Build(ctx, &reports.Query{
		Paths:            opts.Paths,
		Selection:        opts.Selection,
		ExcludeAddresses: app.config.Filters.ExcludeAddresses,
		ExcludeAgents:    app.config.Filters.ExcludeAgents,
	})
	if err != nil {
		return err
	}

	if opts.Output == "" {
		return app.reportRenderer.Render(opts.Stdout, report)
	}

	var buf bytes.Buffer
	if err := app.reportRenderer.Render(&buf, report); err != nil {
		return err
	}
	if _, err := app.fileStorage.Put(ctx, opts.Output, &buf, filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return errOutputWrite(opts.Output, err)
	}
	logger.Debug().Str(loggers.FieldFile, opts.Output).Msg("report written")
	return nil
}

// Handler exposes the HTTP routes, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting timegrid server on port %d (log_level=%s, format=%s, files=%v)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Input.Format,
			app.config.Server.Files)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
