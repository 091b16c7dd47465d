package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/offline-pay/token-ledger/internal/api/middleware"
	"github.com/offline-pay/token-ledger/internal/ratelimit"
)

// SetupRoutes configures all REST API routes; a nil limiter disables throttling
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Tenant scoped routes (tenant JWT or operator API key)
	tenantMiddleware := []gin.HandlerFunc{middleware.Auth(authCfg), middleware.TenantScope()}
	if limiter != nil {
		tenantMiddleware = append(tenantMiddleware, middleware.RateLimit(limiter))
	}
	tenant := v1.Group("/tenants/:tenant_id", tenantMiddleware...)
	{
		tenant.POST("/tokens", handler.IssueToken)
		tenant.GET("/tokens/:token_uid", handler.GetToken)
		tenant.GET("/tokens/:token_uid/transactions", handler.GetTransactions)
		tenant.GET("/tokens/:token_uid/conflicts", handler.GetMergeConflicts)
		tenant.POST("/tokens/:token_uid/snapshots", handler.MergeSnapshot)
		tenant.POST("/transactions/batch", handler.MergeBatch)
	}

	// Operator routes (requires API key authentication only)
	operator := v1.Group("/tenants/:tenant_id", middleware.APIKeyAuth(authCfg))
	{
		operator.POST("/tokens/:token_uid/archive", handler.ArchiveToken)
		operator.POST("/devices", handler.RegisterDevice)
		operator.POST("/devices/:device_uid/approve", handler.ApproveDevice)
	}
}
