package streams

import (
	"bufio"
	"context"
	"fmt"

	"timegrid/internal/models"
	"timegrid/internal/parsers"
	"timegrid/internal/shared/filestorages"
	"timegrid/internal/shared/loggers"
	"timegrid/internal/shared/metrics"
)

const (
	initialLineBytes = 64 * 1024
	maxLineBytes     = 1024 * 1024

	// cancellation is checked once per this many lines
	ctxCheckInterval = 1024
)

// RecordStream produces the records of a list of log files lazily: files in
// the given order, lines in file order, one line in memory at a time.
//
// Every range over the returned sequence starts again from the first file.
// Each file is closed before the next one is opened, including when the
// consumer stops early. A file that cannot be opened or read ends the
// sequence with a file access error; nothing is skipped silently.
//
//go:generate mockgen -source=record_stream.go -destination=./mocks/record_stream_mock.go -package=mocks
type RecordStream interface {
	Records(ctx context.Context, paths []string) models.RecordSeq
}

type recordStream struct {
	fileStorage filestorages.FileStorage
	parser      parsers.LineParser
}

func NewRecordStream(fileStorage filestorages.FileStorage, parser parsers.LineParser) RecordStream {
	return &recordStream{
		fileStorage: fileStorage,
		parser:      parser,
	}
}

func (s *recordStream) Records(ctx context.Context, paths []string) models.RecordSeq {
	return func(yield func(models.Record, error) bool) {
		for _, path := range paths {
			if !s.streamFile(ctx, path, yield) {
				return
			}
		}
	}
}

// streamFile yields the records of one file. It returns false when the
// consumer stopped or an error was yielded.
func (s *recordStream) streamFile(ctx context.Context, path string, yield func(models.Record, error) bool) bool {
	logger := loggers.Ctx(ctx)

	readCloser, err := s.fileStorage.Get(ctx, path)
	if err != nil {
		svcErr := errFileAccess(path, err)
		metricFilesReadTotal.WithLabelValues(svcErr.Code).Inc()
		yield(models.Record{}, svcErr)
		return false
	}
	defer readCloser.Close()

	logger.Debug().Str(loggers.FieldFile, path).Msg("reading log file")

	scanner := bufio.NewScanner(readCloser)
	scanner.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	lineNumber, matched := 0, 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				yield(models.Record{}, err)
				return false
			}
		}

		record, ok, err := s.parser.Parse(scanner.Text())
		if err != nil {
			metricFilesReadTotal.WithLabelValues(codeInvalidTimestamp).Inc()
			yield(models.Record{}, fmt.Errorf("%s:%d: %w", path, lineNumber, err))
			return false
		}
		if !ok {
			continue
		}
		matched++
		if !yield(record, nil) {
			return false
		}
	}
	if err := scanner.Err(); err != nil {
		svcErr := errFileRead(path, err)
		metricFilesReadTotal.WithLabelValues(svcErr.Code).Inc()
		yield(models.Record{}, svcErr)
		return false
	}

	logger.Debug().
		Str(loggers.FieldFile, path).
		Int("lines", lineNumber).
		Int("matched", matched).
		Msg("finished reading log file")
	metricFilesReadTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return true
}
