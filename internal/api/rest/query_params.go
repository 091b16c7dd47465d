package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/offline-pay/token-ledger/internal/api/shared/constants"
)

// GetTransactionsQueryParams holds query parameters for GET /tokens/:token_uid/transactions
type GetTransactionsQueryParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ParseGetTransactionsQuery parses query parameters for GET /tokens/:token_uid/transactions
func ParseGetTransactionsQuery(c *gin.Context) (*GetTransactionsQueryParams, error) {
	var params GetTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *GetTransactionsQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}
