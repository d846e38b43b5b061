package renderers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rulerHeader   = "      [00        10        20        30        40        50        ]"
	emptyRulerRow = "          :         :         :         :         :         "
)

func render(t *testing.T, mode models.RenderMode, buckets models.BucketMap, opts ...GridOption) []string {
	t.Helper()
	renderer, err := NewGridRenderer(mode, opts...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, buckets))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestGridRenderer_RulerEmptyGrid(t *testing.T) {
	t.Parallel()

	lines := render(t, models.RenderRuler, models.NewBucketMap())
	require.Len(t, lines, 25)

	assert.Equal(t, rulerHeader, lines[0])
	for h := 0; h < 24; h++ {
		assert.Equal(t, fmt.Sprintf("%02d:00 [%s]", h, emptyRulerRow), lines[h+1])
	}
	for _, line := range lines {
		assert.Len(t, line, len(rulerHeader), "every line has the same width")
	}
}

func TestGridRenderer_PlainEmptyGrid(t *testing.T) {
	t.Parallel()

	lines := render(t, models.RenderPlain, nil)
	require.Len(t, lines, 24)

	for h, line := range lines {
		assert.Equal(t, fmt.Sprintf("%02d:00 [%s]", h, strings.Repeat(" ", 60)), line)
	}
}

func TestGridRenderer_MarksHits(t *testing.T) {
	t.Parallel()

	buckets := models.BucketMap{
		{Hour: 16, Minute: 17}: 2,
		{Hour: 0, Minute: 0}:   1,
		{Hour: 23, Minute: 59}: 7,
		{Hour: 5, Minute: 30}:  1,
		{Hour: 6, Minute: 6}:   0,
	}

	lines := render(t, models.RenderRuler, buckets)

	row := func(h int) string {
		line := lines[h+1]
		return line[len("HH:00 [") : len(line)-1]
	}

	assert.Equal(t, byte('#'), row(16)[17])
	assert.Equal(t, 1, strings.Count(row(16), "#"))
	assert.Equal(t, byte('#'), row(0)[0])
	assert.Equal(t, byte('#'), row(23)[59])
	assert.Equal(t, byte('#'), row(5)[30], "hits replace the ten-minute mark")
	assert.Equal(t, emptyRulerRow, row(6), "zero counts render as empty")
	assert.Equal(t, 4, strings.Count(strings.Join(lines, "\n"), "#"))
}

func TestGridRenderer_PlainHasNoMarks(t *testing.T) {
	t.Parallel()

	lines := render(t, models.RenderPlain, models.BucketMap{{Hour: 16, Minute: 17}: 1})
	all := strings.Join(lines, "\n")

	assert.NotContains(t, strings.ReplaceAll(all, ":00 [", ""), ":")
	assert.Equal(t, "16:00 ["+strings.Repeat(" ", 17)+"#"+strings.Repeat(" ", 42)+"]", lines[16])
}

func TestGridRenderer_Color(t *testing.T) {
	t.Parallel()

	buckets := models.BucketMap{{Hour: 16, Minute: 17}: 1}

	colored := strings.Join(render(t, models.RenderRuler, buckets, WithColor(true)), "\n")
	plain := strings.Join(render(t, models.RenderRuler, buckets), "\n")

	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
	assert.Equal(t, 1, strings.Count(colored, "#"))
}

func TestNewGridRenderer_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	_, err := NewGridRenderer(models.RenderMode("fancy"))
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeUnsupportedMode, svcErr.Code)
	assert.Equal(t, 2, svcErr.ExitCode())
}

func TestGridRenderer_WriteError(t *testing.T) {
	t.Parallel()

	renderer, err := NewGridRenderer(models.RenderRuler)
	require.NoError(t, err)

	err = renderer.Render(failingWriter{}, models.NewBucketMap())
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeWriteFailed, svcErr.Code)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}
