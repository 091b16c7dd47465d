package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/api/shared/constants"
	"github.com/offline-pay/token-ledger/internal/api/shared/dto"
	apierrors "github.com/offline-pay/token-ledger/internal/api/shared/errors"
	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/provenance"
	"github.com/offline-pay/token-ledger/internal/reconciler"
	"github.com/offline-pay/token-ledger/internal/store"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// IssueToken registers a new physical token with balance 0 and counter 0
	IssueToken(ctx context.Context, tenantID string, req *dto.IssueTokenRequest) (*dto.TokenResponse, error)

	// GetToken retrieves the ledger state of a token, nil when it does not exist
	GetToken(ctx context.Context, tenantID, tokenUID string) (*dto.TokenResponse, error)

	// GetTransactions retrieves a page of ledger rows of a token
	GetTransactions(ctx context.Context, tenantID, tokenUID string, limit, offset int) (*dto.TransactionListResponse, error)

	// GetMergeConflicts retrieves the recorded conflicts of a token, newest first
	GetMergeConflicts(ctx context.Context, tenantID, tokenUID string) (*dto.MergeConflictListResponse, error)

	// ArchiveToken retires a token
	ArchiveToken(ctx context.Context, tenantID, tokenUID string) (*dto.TokenResponse, error)

	// MergeSnapshot merges a signed token state
	MergeSnapshot(ctx context.Context, tenantID, tokenUID string, req *dto.SnapshotRequest) (*dto.SnapshotResponse, error)

	// MergeBatch merges signed transaction descriptors of one device
	MergeBatch(ctx context.Context, tenantID string, req *dto.BatchRequest) (*dto.BatchResponse, error)

	// RegisterDevice registers an unapproved signing device key
	RegisterDevice(ctx context.Context, tenantID string, req *dto.RegisterDeviceRequest) (*dto.DeviceResponse, error)

	// ApproveDevice marks a signing device key as trusted
	ApproveDevice(ctx context.Context, tenantID, deviceUID string) (*dto.DeviceResponse, error)
}

type executor struct {
	store      store.Store
	reconciler reconciler.Reconciler
	base64     adapter.Base64
}

func NewExecutor(store store.Store, reconciler reconciler.Reconciler, base64 adapter.Base64) Executor {
	return &executor{store: store, reconciler: reconciler, base64: base64}
}

func (e *executor) IssueToken(ctx context.Context, tenantID string, req *dto.IssueTokenRequest) (*dto.TokenResponse, error) {
	token, err := e.store.CreateToken(ctx, store.CreateTokenInput{
		TenantID:           tenantID,
		ExternalUID:        req.TokenUID,
		DiscountPercentage: req.DiscountPercentage,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.MapTokenToDTO(token)
	return &resp, nil
}

func (e *executor) GetToken(ctx context.Context, tenantID, tokenUID string) (*dto.TokenResponse, error) {
	token, err := e.store.GetTokenByExternalUID(ctx, tenantID, tokenUID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	resp := dto.MapTokenToDTO(token)
	return &resp, nil
}

func (e *executor) GetTransactions(ctx context.Context, tenantID, tokenUID string, limit, offset int) (*dto.TransactionListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_TRANSACTIONS_LIMIT
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}
	if offset < 0 {
		offset = constants.DEFAULT_OFFSET
	}

	token, err := e.requireToken(ctx, tenantID, tokenUID)
	if err != nil {
		return nil, err
	}

	transactions, total, err := e.store.GetTransactionsByTokenID(ctx, token.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.TransactionListResponse{
		Transactions: dto.MapTransactionsToDTO(transactions),
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	}, nil
}

func (e *executor) GetMergeConflicts(ctx context.Context, tenantID, tokenUID string) (*dto.MergeConflictListResponse, error) {
	token, err := e.requireToken(ctx, tenantID, tokenUID)
	if err != nil {
		return nil, err
	}

	conflicts, err := e.store.GetMergeConflictsByTokenID(ctx, token.ID)
	if err != nil {
		return nil, err
	}

	return dto.MapMergeConflictsToDTO(conflicts), nil
}

func (e *executor) ArchiveToken(ctx context.Context, tenantID, tokenUID string) (*dto.TokenResponse, error) {
	if err := e.store.ArchiveToken(ctx, tenantID, tokenUID); err != nil {
		return nil, err
	}

	return e.GetToken(ctx, tenantID, tokenUID)
}

func (e *executor) MergeSnapshot(ctx context.Context, tenantID, tokenUID string, req *dto.SnapshotRequest) (*dto.SnapshotResponse, error) {
	report, err := req.ToReport(e.base64, tenantID, tokenUID)
	if err != nil {
		return nil, err
	}

	result, err := e.reconciler.MergeSnapshot(ctx, report)
	if err != nil {
		return nil, err
	}

	return dto.MapSnapshotResultToDTO(result), nil
}

func (e *executor) MergeBatch(ctx context.Context, tenantID string, req *dto.BatchRequest) (*dto.BatchResponse, error) {
	report, err := req.ToReport(e.base64, tenantID)
	if err != nil {
		return nil, err
	}

	result, err := e.reconciler.MergeBatch(ctx, report)
	if err != nil {
		return nil, err
	}

	return dto.MapBatchResultToDTO(result), nil
}

func (e *executor) RegisterDevice(ctx context.Context, tenantID string, req *dto.RegisterDeviceRequest) (*dto.DeviceResponse, error) {
	publicKey, err := e.base64.Decode(req.PublicKey)
	if err != nil {
		return nil, apierrors.NewValidationError("public_key must be base64 encoded")
	}
	if _, err := provenance.ParsePublicKey(req.Curve, publicKey); err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("public_key is not a valid %s key", req.Curve), err.Error())
	}

	device, err := e.store.CreateSigningDevice(ctx, store.CreateSigningDeviceInput{
		TenantID:  tenantID,
		DeviceUID: req.DeviceUID,
		Curve:     req.Curve,
		PublicKey: publicKey,
	})
	if err != nil {
		return nil, err
	}

	return dto.MapDeviceToDTO(device), nil
}

func (e *executor) ApproveDevice(ctx context.Context, tenantID, deviceUID string) (*dto.DeviceResponse, error) {
	if err := e.store.ApproveSigningDevice(ctx, tenantID, deviceUID); err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			return nil, apierrors.NewNotFoundError("Signing device not found", deviceUID)
		}
		return nil, err
	}

	device, err := e.store.GetSigningDevice(ctx, tenantID, deviceUID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, apierrors.NewNotFoundError("Signing device not found", deviceUID)
	}

	return dto.MapDeviceToDTO(device), nil
}

// requireToken resolves a token or fails with domain.ErrTokenNotFound
func (e *executor) requireToken(ctx context.Context, tenantID, tokenUID string) (*schema.Token, error) {
	token, err := e.store.GetTokenByExternalUID(ctx, tenantID, tokenUID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotFound, tokenUID)
	}
	return token, nil
}
