package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/repairshop/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "repairshop-backend",
		Enabled:     true,
	}
}

// Tracing returns OpenTelemetry tracing middleware with default configuration.
func Tracing() []gin.HandlerFunc {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig returns the otelgin middleware followed by a handler that
// enriches the server span. Register both with engine.Use(TracingWithConfig(cfg)...).
//
// The span name follows the format "HTTP METHOD route_pattern".
// Attributes added: request_id, company_id and user_id once JWT has run.
// Error responses (4xx/5xx) are marked with codes.Error status.
func TracingWithConfig(cfg TracingConfig) []gin.HandlerFunc {
	if !cfg.Enabled {
		return []gin.HandlerFunc{func(c *gin.Context) { c.Next() }}
	}
	return []gin.HandlerFunc{otelgin.Middleware(cfg.ServiceName), enrichSpan}
}

// enrichSpan runs inside the otelgin span, so attributes set after c.Next
// land before otelgin ends it.
func enrichSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		c.Next()
		return
	}

	if requestID := GetRequestID(c); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}

	c.Next()

	if tc, ok := GetTenantContext(c); ok {
		span.SetAttributes(
			attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID),
			attribute.String("user_id", tc.UserID),
		)
	}
	markSpanStatus(span, c.Writer.Status())
}

func markSpanStatus(span trace.Span, statusCode int) {
	if statusCode < http.StatusBadRequest {
		return
	}

	var errorMessage string
	switch {
	case statusCode >= http.StatusInternalServerError:
		errorMessage = "Internal Server Error"
	case statusCode == http.StatusUnauthorized:
		errorMessage = "Unauthorized"
	case statusCode == http.StatusNotFound:
		errorMessage = "Not Found"
	case statusCode == http.StatusConflict:
		errorMessage = "Conflict"
	default:
		errorMessage = "Client Error"
	}
	span.SetStatus(codes.Error, errorMessage)
}
