package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include bound variables in db.statement (never in production)
	SlowQueryThresh time.Duration // queries slower than this are flagged on their span
	DBSystem        string
	// TracerProvider overrides the global provider; used by tests.
	TracerProvider trace.TracerProvider
}

// DBTracingPlugin registers otelgorm plus slow-query and error annotation callbacks.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a new database tracing plugin with the given configuration.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	if cfg.DBSystem == "" {
		cfg.DBSystem = "postgresql"
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

type queryStartKey struct{}

// Register installs the plugin on db. It is a no-op when tracing is disabled.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if p.config.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(p.config.TracerProvider))
	}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if err := registerTimingCallbacks(db, p.annotateSpan); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("db_system", p.config.DBSystem),
	)
	return nil
}

// registerTimingCallbacks wraps every GORM operation with markQueryStart and
// after. after runs before otelgorm ends the span so its attributes land on it.
func registerTimingCallbacks(db *gorm.DB, after func(*gorm.DB)) error {
	type registrar interface {
		Register(name string, fn func(*gorm.DB)) error
	}
	cb := db.Callback()
	hooks := []struct {
		at   registrar
		name string
		fn   func(*gorm.DB)
	}{
		{cb.Create().Before("gorm:create"), "before_create", markQueryStart},
		{cb.Query().Before("gorm:query"), "before_query", markQueryStart},
		{cb.Update().Before("gorm:update"), "before_update", markQueryStart},
		{cb.Delete().Before("gorm:delete"), "before_delete", markQueryStart},
		{cb.Row().Before("gorm:row"), "before_row", markQueryStart},
		{cb.Raw().Before("gorm:raw"), "before_raw", markQueryStart},
		{cb.Create().After("gorm:create").Before("otel:after:create"), "after_create", after},
		{cb.Query().After("gorm:query").Before("otel:after:query"), "after_query", after},
		{cb.Update().After("gorm:update").Before("otel:after:update"), "after_update", after},
		{cb.Delete().After("gorm:delete").Before("otel:after:delete"), "after_delete", after},
		{cb.Row().After("gorm:row").Before("otel:after:row"), "after_row", after},
		{cb.Raw().After("gorm:raw").Before("otel:after:raw"), "after_raw", after},
	}
	for _, h := range hooks {
		if err := h.at.Register("shop_timing:"+h.name, h.fn); err != nil {
			return err
		}
	}
	return nil
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

// annotateSpan records rows affected, table, errors and slowness on the span
// opened by otelgorm.
func (p *DBTracingPlugin) annotateSpan(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > p.config.SlowQueryThresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
			span.AddEvent("slow_query_warning", trace.WithAttributes(
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
			))
		}
	}
}
