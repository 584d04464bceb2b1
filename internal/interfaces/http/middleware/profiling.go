package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/repairshop/backend/internal/infrastructure/telemetry"
)

// ProfilingConfig holds configuration for the profiling middleware.
type ProfilingConfig struct {
	// Enabled controls whether profiling labels are added to requests.
	Enabled bool
}

// Profiling returns profiling middleware with profiling labels enabled.
func Profiling() gin.HandlerFunc {
	return ProfilingWithConfig(ProfilingConfig{Enabled: true})
}

// ProfilingWithConfig returns middleware that runs the rest of the chain under
// Pyroscope labels for route, method and company_id.
//
// Mount it after JWT so the company is known.
func ProfilingWithConfig(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		var companyID string
		if tc, ok := GetTenantContext(c); ok {
			companyID = tc.CompanyID
		}
		labels := telemetry.HTTPRequestLabels(c.FullPath(), c.Request.Method, companyID)

		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
