package reports

import (
	"context"
	"errors"
	"time"

	"timegrid/internal/aggregators"
	"timegrid/internal/filters"
	"timegrid/internal/models"
	"timegrid/internal/shared/filestorages"
	"timegrid/internal/shared/loggers"
	"timegrid/internal/shared/metrics"
	"timegrid/internal/shared/svcerrors"
	"timegrid/internal/shared/ulid"
	"timegrid/internal/shared/validators"
	"timegrid/internal/streams"
)

const topAgents = 5

// ReportService runs the whole pipeline for a query: expand the inputs,
// stream their records, filter, fold into minute buckets.
//
//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	Build(ctx context.Context, query *Query) (*models.Report, error)
}

type reportService struct {
	fileStorage  filestorages.FileStorage
	recordStream streams.RecordStream
	aggregator   aggregators.BucketAggregator
	format       models.LogFormat
	validate     *validators.Validate
}

// NewReportService wires the pipeline stages. format must be the format the
// record stream parses, so that agent filters can be checked against it.
func NewReportService(fileStorage filestorages.FileStorage, recordStream streams.RecordStream, aggregator aggregators.BucketAggregator, format models.LogFormat) ReportService {
	return &reportService{
		fileStorage:  fileStorage,
		recordStream: recordStream,
		aggregator:   aggregator,
		format:       format,
		validate:     validators.New(),
	}
}

func (s *reportService) Build(ctx context.Context, query *Query) (*models.Report, error) {
	started := time.Now()
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	paths, svcErr := s.validateQuery(query)
	if svcErr != nil {
		return nil, s.fail(svcErr)
	}

	logger.Debug().
		Strs("files", paths).
		Str("selection", query.Selection.Label()).
		Str(loggers.FieldFormat, string(s.format)).
		Msg("started building report")

	summarizer := aggregators.NewAgentSummarizer()

	seq := s.recordStream.Records(ctx, paths)
	if !query.Selection.All {
		seq = filters.ByDate(seq, query.Selection.Date)
	}
	seq = filters.ExcludeAddresses(seq, query.ExcludeAddresses)
	seq = filters.ExcludeAgents(seq, query.ExcludeAgents)
	seq = filters.Tap(seq, summarizer.Observe)

	buckets, err := s.aggregator.Fold(nil, seq)
	if err != nil {
		return nil, s.fail(classifyPipelineError(err))
	}

	report := models.NewReport(runID, query.Selection, paths, buckets, summarizer.Top(topAgents))

	logger.Debug().
		Int64("total_requests", report.TotalRequests).
		Int("active_minutes", report.ActiveMinutes).
		Dur(loggers.FieldDuration, time.Since(started)).
		Msg("finished building report")
	metricReportsBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricReportBuildSeconds.WithLabelValues(string(s.format)).Observe(time.Since(started).Seconds())
	return report, nil
}

// validateQuery checks the query and expands glob patterns into file keys.
func (s *reportService) validateQuery(query *Query) ([]string, *svcerrors.ServiceError) {
	if query == nil {
		return nil, errNoInputFiles()
	}
	if err := s.validate.Struct(query); err != nil {
		return nil, errNoInputFiles()
	}
	if len(query.ExcludeAgents) > 0 && !s.format.HasAgent() {
		return nil, errAgentFilterUnsupported(s.format)
	}

	paths, err := s.fileStorage.Expand(query.Paths)
	if err != nil {
		if errors.Is(err, filestorages.ErrNoMatches) {
			return nil, errNoMatchingFiles(err)
		}
		return nil, errInvalidInputPath(err)
	}
	return paths, nil
}

func (s *reportService) fail(svcErr *svcerrors.ServiceError) error {
	metricReportsBuiltTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}

// classifyPipelineError keeps service errors raised by the stages as they
// are. Errors wrapped on the way, such as a strict timestamp failure carrying
// its file and line, keep their full message under a report code.
func classifyPipelineError(err error) *svcerrors.ServiceError {
	if svcErr, ok := err.(*svcerrors.ServiceError); ok {
		return svcErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errCancelled(err)
	}
	if _, ok := svcerrors.AsServiceError(err); ok {
		return errMalformedLogLine(err)
	}
	return svcerrors.NewInternalErrorUndefined(err)
}
