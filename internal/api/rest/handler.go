package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/offline-pay/token-ledger/internal/api/shared/dto"
	"github.com/offline-pay/token-ledger/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// IssueToken registers a new physical token
	// POST /api/v1/tenants/:tenant_id/tokens
	IssueToken(c *gin.Context)

	// GetToken retrieves the ledger state of a token
	// GET /api/v1/tenants/:tenant_id/tokens/:token_uid
	GetToken(c *gin.Context)

	// GetTransactions retrieves ledger rows of a token, ordinary rows by counter position then the adjustment
	// GET /api/v1/tenants/:tenant_id/tokens/:token_uid/transactions?limit=<limit>&offset=<offset>
	GetTransactions(c *gin.Context)

	// GetMergeConflicts retrieves the recorded batch conflicts of a token
	// GET /api/v1/tenants/:tenant_id/tokens/:token_uid/conflicts
	GetMergeConflicts(c *gin.Context)

	// MergeSnapshot merges a signed token state read by a device
	// POST /api/v1/tenants/:tenant_id/tokens/:token_uid/snapshots
	MergeSnapshot(c *gin.Context)

	// MergeBatch merges signed transaction descriptors uploaded by a device
	// POST /api/v1/tenants/:tenant_id/transactions/batch
	MergeBatch(c *gin.Context)

	// ArchiveToken retires a token (requires API key)
	// POST /api/v1/tenants/:tenant_id/tokens/:token_uid/archive
	ArchiveToken(c *gin.Context)

	// RegisterDevice registers a signing device key (requires API key)
	// POST /api/v1/tenants/:tenant_id/devices
	RegisterDevice(c *gin.Context)

	// ApproveDevice marks a signing device key as trusted (requires API key)
	// POST /api/v1/tenants/:tenant_id/devices/:device_uid/approve
	ApproveDevice(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// IssueToken registers a new physical token
func (h *handler) IssueToken(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid token")
		return
	}

	token, err := h.executor.IssueToken(c.Request.Context(), c.Param("tenant_id"), &req)
	if err != nil {
		respondError(c, err, "Failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, token)
}

// GetToken retrieves the ledger state of a token
func (h *handler) GetToken(c *gin.Context) {
	tokenUID := c.Param("token_uid")
	if tokenUID == "" {
		respondBadRequest(c, "token_uid is required")
		return
	}

	token, err := h.executor.GetToken(c.Request.Context(), c.Param("tenant_id"), tokenUID)
	if err != nil {
		respondError(c, err, "Failed to get token")
		return
	}

	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, token)
}

// GetTransactions retrieves ledger rows of a token
func (h *handler) GetTransactions(c *gin.Context) {
	queryParams, err := ParseGetTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	transactions, err := h.executor.GetTransactions(
		c.Request.Context(),
		c.Param("tenant_id"),
		c.Param("token_uid"),
		queryParams.Limit,
		queryParams.Offset,
	)
	if err != nil {
		respondError(c, err, "Failed to get transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetMergeConflicts retrieves the recorded batch conflicts of a token
func (h *handler) GetMergeConflicts(c *gin.Context) {
	conflicts, err := h.executor.GetMergeConflicts(c.Request.Context(), c.Param("tenant_id"), c.Param("token_uid"))
	if err != nil {
		respondError(c, err, "Failed to get merge conflicts")
		return
	}

	c.JSON(http.StatusOK, conflicts)
}

// MergeSnapshot merges a signed token state read by a device
func (h *handler) MergeSnapshot(c *gin.Context) {
	var req dto.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid snapshot")
		return
	}

	result, err := h.executor.MergeSnapshot(c.Request.Context(), c.Param("tenant_id"), c.Param("token_uid"), &req)
	if err != nil {
		respondError(c, err, "Failed to merge snapshot")
		return
	}

	c.JSON(http.StatusOK, result)
}

// MergeBatch merges signed transaction descriptors uploaded by a device
func (h *handler) MergeBatch(c *gin.Context) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid batch")
		return
	}

	result, err := h.executor.MergeBatch(c.Request.Context(), c.Param("tenant_id"), &req)
	if err != nil {
		respondError(c, err, "Failed to merge batch")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ArchiveToken retires a token
func (h *handler) ArchiveToken(c *gin.Context) {
	token, err := h.executor.ArchiveToken(c.Request.Context(), c.Param("tenant_id"), c.Param("token_uid"))
	if err != nil {
		respondError(c, err, "Failed to archive token")
		return
	}

	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, token)
}

// RegisterDevice registers a signing device key
func (h *handler) RegisterDevice(c *gin.Context) {
	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid signing device")
		return
	}

	device, err := h.executor.RegisterDevice(c.Request.Context(), c.Param("tenant_id"), &req)
	if err != nil {
		respondError(c, err, "Failed to register signing device")
		return
	}

	c.JSON(http.StatusCreated, device)
}

// ApproveDevice marks a signing device key as trusted
func (h *handler) ApproveDevice(c *gin.Context) {
	device, err := h.executor.ApproveDevice(c.Request.Context(), c.Param("tenant_id"), c.Param("device_uid"))
	if err != nil {
		respondError(c, err, "Failed to approve signing device")
		return
	}

	c.JSON(http.StatusOK, device)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "token-ledger-api",
	})
}
