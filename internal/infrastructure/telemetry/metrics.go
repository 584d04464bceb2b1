package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ExportInterval    time.Duration
	ServiceName       string
	Insecure          bool
}

// MeterProvider wraps the OpenTelemetry MeterProvider with lifecycle management.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
	config   MetricsConfig
}

// NewMeterProvider creates and configures a new MeterProvider.
// If metrics are disabled, meters come from the global no-op provider.
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{
		logger: logger,
		config: cfg,
	}

	if !cfg.Enabled {
		logger.Info("Metrics disabled, using no-op meter provider")
		return mp, nil
	}

	exportInterval := cfg.ExportInterval
	if exportInterval == 0 {
		exportInterval = 60 * time.Second
	}

	exporterOpts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint),
	}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(exportInterval))),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", exportInterval),
	)

	return mp, nil
}

// Shutdown flushes pending metrics and stops the exporter.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		mp.logger.Error("Error shutting down meter provider", zap.Error(err))
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}

// Meter returns a named meter from the provider.
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled returns whether metrics are enabled.
func (mp *MeterProvider) IsEnabled() bool {
	return mp.config.Enabled && mp.provider != nil
}

// Attribute keys shared by work order instruments
const (
	AttrCompanyID = attribute.Key("company_id")
	AttrStatus    = attribute.Key("status")
)

// WorkOrderMetrics counts work order lifecycle events.
type WorkOrderMetrics struct {
	created       metric.Int64Counter
	statusChanges metric.Int64Counter
	tasksAdded    metric.Int64Counter
	partsAdded    metric.Int64Counter
	partUnits     metric.Int64Counter
}

// NewWorkOrderMetrics registers the work order instruments on meter.
func NewWorkOrderMetrics(meter metric.Meter) (*WorkOrderMetrics, error) {
	m := &WorkOrderMetrics{}
	var err error

	if m.created, err = meter.Int64Counter("work_orders_created_total",
		metric.WithDescription("Work orders created"),
		metric.WithUnit("{order}")); err != nil {
		return nil, fmt.Errorf("failed to create work_orders_created_total: %w", err)
	}
	if m.statusChanges, err = meter.Int64Counter("work_order_status_changes_total",
		metric.WithDescription("Work order status updates by target status"),
		metric.WithUnit("{change}")); err != nil {
		return nil, fmt.Errorf("failed to create work_order_status_changes_total: %w", err)
	}
	if m.tasksAdded, err = meter.Int64Counter("work_order_tasks_added_total",
		metric.WithDescription("Tasks added to existing work orders"),
		metric.WithUnit("{task}")); err != nil {
		return nil, fmt.Errorf("failed to create work_order_tasks_added_total: %w", err)
	}
	if m.partsAdded, err = meter.Int64Counter("work_order_parts_added_total",
		metric.WithDescription("Part lines added to work orders"),
		metric.WithUnit("{part}")); err != nil {
		return nil, fmt.Errorf("failed to create work_order_parts_added_total: %w", err)
	}
	if m.partUnits, err = meter.Int64Counter("work_order_part_units_total",
		metric.WithDescription("Inventory units referenced by work order parts"),
		metric.WithUnit("{unit}")); err != nil {
		return nil, fmt.Errorf("failed to create work_order_part_units_total: %w", err)
	}
	return m, nil
}

// WorkOrderCreated records a new order with its nested line counts.
func (m *WorkOrderMetrics) WorkOrderCreated(ctx context.Context, companyID string, tasks, parts, units int) {
	attrs := metric.WithAttributes(AttrCompanyID.String(companyID))
	m.created.Add(ctx, 1, attrs)
	if tasks > 0 {
		m.tasksAdded.Add(ctx, int64(tasks), attrs)
	}
	if parts > 0 {
		m.partsAdded.Add(ctx, int64(parts), attrs)
		m.partUnits.Add(ctx, int64(units), attrs)
	}
}

// StatusChanged records a status update.
func (m *WorkOrderMetrics) StatusChanged(ctx context.Context, companyID, status string) {
	m.statusChanges.Add(ctx, 1, metric.WithAttributes(AttrCompanyID.String(companyID), AttrStatus.String(status)))
}

// TaskAdded records a task appended to an existing order.
func (m *WorkOrderMetrics) TaskAdded(ctx context.Context, companyID string) {
	m.tasksAdded.Add(ctx, 1, metric.WithAttributes(AttrCompanyID.String(companyID)))
}

// PartsAdded records a batch of part lines appended to an existing order.
func (m *WorkOrderMetrics) PartsAdded(ctx context.Context, companyID string, parts, units int) {
	attrs := metric.WithAttributes(AttrCompanyID.String(companyID))
	m.partsAdded.Add(ctx, int64(parts), attrs)
	m.partUnits.Add(ctx, int64(units), attrs)
}
