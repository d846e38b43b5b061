package parsers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"timegrid/internal/dates"
	"timegrid/internal/models"
)

const (
	// address ident user [DD/Mon/YYYY:HH:MM:SS +ZZZZ]
	commonPrefix = `^(\S+) \S+ \S+ \[\s*(\d{1,2})/((?i:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec))/(\d{4}):([01]\d|2[0-3]):([0-5]\d):[0-5]\d [-+]\d{4}\]`
	// "request" status size "referrer" "agent"
	combinedSuffix = ` "[^"]*" \d{3} (?:\d+|-) "[^"]*" "([^"]*)"`
)

// Parser groups, in order.
const (
	groupAddress = iota + 1
	groupDay
	groupMonth
	groupYear
	groupHour
	groupMinute
	groupAgent
)

// LineParser turns one access log line into a Record.
//
// Parse returns ok=false for lines that do not have the expected shape; that
// is routine and never an error. A line whose timestamp names an impossible
// date (31/Feb) is skipped the same way unless the parser is strict, in which
// case the dates error is returned and the caller aborts the run.
type LineParser interface {
	Parse(line string) (record models.Record, ok bool, err error)
	Format() models.LogFormat
}

type lineParser struct {
	format models.LogFormat
	strict bool
	re     *regexp.Regexp
}

func NewLineParser(format models.LogFormat, strict bool) (LineParser, error) {
	var pattern string
	switch format {
	case models.FormatCommon:
		pattern = commonPrefix
	case models.FormatCombined:
		pattern = commonPrefix + combinedSuffix
	default:
		return nil, errUnsupportedFormat(format)
	}
	return &lineParser{
		format: format,
		strict: strict,
		re:     regexp.MustCompile(pattern),
	}, nil
}

func (p *lineParser) Format() models.LogFormat {
	return p.format
}

func (p *lineParser) Parse(line string) (models.Record, bool, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		metricLinesParsedTotal.WithLabelValues(string(p.format), reasonNoMatch).Inc()
		return models.Record{}, false, nil
	}

	// The pattern only admits digits of bounded width here.
	day, _ := strconv.Atoi(m[groupDay])
	year, _ := strconv.Atoi(m[groupYear])
	hour, _ := strconv.Atoi(m[groupHour])
	minute, _ := strconv.Atoi(m[groupMinute])

	date, err := dates.FromParts(year, m[groupMonth], day)
	if err != nil {
		var invalid *dates.InvalidDateError
		if !p.strict && errors.As(err, &invalid) {
			metricLinesParsedTotal.WithLabelValues(string(p.format), reasonInvalidDate).Inc()
			return models.Record{}, false, nil
		}
		return models.Record{}, false, fmt.Errorf("parse timestamp: %w", err)
	}

	record := models.Record{
		Address: m[groupAddress],
		Date:    date,
		Hour:    hour,
		Minute:  minute,
	}
	if p.format.HasAgent() {
		record.Agent = m[groupAgent]
		record.HasAgent = true
	}

	metricLinesParsedTotal.WithLabelValues(string(p.format), reasonMatched).Inc()
	return record, true, nil
}
