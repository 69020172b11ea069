package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ExtractCorrelationID(ctx))

	ctx = EnsureCorrelationID(ctx)
	id := ExtractCorrelationID(ctx)
	assert.Len(t, id, 36)

	// an existing id is kept
	assert.Equal(t, id, ExtractCorrelationID(EnsureCorrelationID(ctx)))
	assert.NotEqual(t, id, GenerateCorrelationID())
}

func TestRepoLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := GlobalLogger
	defer SetGlobalLogger(prev)
	SetGlobalLogger(NewLogger(&buf, "debug"))

	l := NewRepoLogger("users")
	ctx := WithCorrelationID(context.Background(), "abc-123")

	l.LogRead(ctx, "FindByID", 1, map[string]interface{}{"id": 7})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "repository read", rec["msg"])
	assert.Equal(t, "users", rec["table"])
	assert.Equal(t, "FindByID", rec["operation"])
	assert.Equal(t, float64(1), rec["rows"])
	assert.Equal(t, float64(7), rec["id"])
	assert.Equal(t, "abc-123", rec["correlation_id"])

	buf.Reset()
	l.LogError(ctx, errors.New("boom"), "All")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}

func TestRepoLogger_InfoLevelDropsReads(t *testing.T) {
	var buf bytes.Buffer
	prev := GlobalLogger
	defer SetGlobalLogger(prev)
	SetGlobalLogger(NewLogger(&buf, "info"))

	NewRepoLogger("users").LogRead(context.Background(), "All", 3, nil)
	assert.Zero(t, buf.Len())
}

func TestDatabaseMetrics(t *testing.T) {
	m := NewDatabaseMetrics("metrics_test_table")

	m.TrackQuery("All")()
	m.RecordError("All")
	m.RecordError("All")
	m.RecordRows(3)
	m.RecordRows(0)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(DatabaseQueryLatency), 1)
	assert.Equal(t, float64(2), testutil.ToFloat64(DatabaseQueryErrors.WithLabelValues("All", "metrics_test_table")))
	assert.Equal(t, float64(3), testutil.ToFloat64(RowsDecoded.WithLabelValues("metrics_test_table")))
}

func TestTraceRepositoryMethod(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	layer := NewTraceLayer(tp.Tracer("test"))

	_, span := layer.TraceRepositoryMethod(context.Background(), "FindByID", "users", "sqlite")
	RecordSpanError(span, errors.New("no such table: users"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "repository.FindByID", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("db.table", "users"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("db.system", "sqlite"))
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "aaquestions-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, Tracer)
}
