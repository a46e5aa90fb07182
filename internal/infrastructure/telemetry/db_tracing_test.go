package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type tracedSize struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;uniqueIndex"`
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedSize{}))
	return db
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{}, zap.NewNop()))
	assert.Nil(t, db.Callback().Query().Get("telemetry:after_query"))
}

func TestRegisterDBTracing_Enabled(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBName: "storefront"}, zap.NewNop()))

	assert.NotNil(t, db.Callback().Create().Get("telemetry:before_create"))
	assert.NotNil(t, db.Callback().Query().Get("telemetry:after_query"))
	assert.NotNil(t, db.Callback().Raw().Get("telemetry:after_raw"))

	var count int64
	require.NoError(t, db.Model(&tracedSize{}).Count(&count).Error)
}

func TestAnnotateStatement(t *testing.T) {
	db := openTestDB(t)
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, span := tp.Tracer("test").Start(context.Background(), "insert size")
	ok := db.WithContext(context.WithValue(ctx, startTimeKey{}, time.Now().Add(-time.Second))).
		Create(&tracedSize{Name: "XL"})
	require.NoError(t, ok.Error)
	annotateStatement(ok, 100*time.Millisecond)

	dup := db.WithContext(ctx).Create(&tracedSize{Name: "XL"})
	require.Error(t, dup.Error)
	annotateStatement(dup, time.Hour)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]

	table, found := spanAttr(got, "db.sql.table")
	require.True(t, found)
	assert.Equal(t, "traced_sizes", table.AsString())

	slow, found := spanAttr(got, "db.slow_query")
	require.True(t, found)
	assert.True(t, slow.AsBool())

	assert.Equal(t, codes.Error, got.Status().Code)
}

func TestAnnotateStatement_NonRecordingSpan(t *testing.T) {
	db := openTestDB(t)
	tx := db.Session(&gorm.Session{})
	tx.Statement.Context = context.Background()
	assert.NotPanics(t, func() { annotateStatement(tx, 0) })

	tx.Statement.Context = nil
	assert.NotPanics(t, func() { annotateStatement(tx, 0) })
}
