package provenance

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"fmt"
	"math/big"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/domain"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/store/schema"
)

const (
	DEFAULT_WORKER_POOL_SIZE = 8
	sha256Size               = 32
	secp256k1CompressedSize  = 33
)

// DeviceRegistry looks up registered signing device keys
//
//go:generate mockgen -source=verifier.go -destination=../mocks/provenance.go -package=mocks -mock_names=DeviceRegistry=MockDeviceRegistry,Verifier=MockVerifier
type DeviceRegistry interface {
	// GetSigningDevice retrieves a signing device, nil when it is not registered
	GetSigningDevice(ctx context.Context, tenantID, deviceUID string) (*schema.SigningDevice, error)
}

// Verifier checks that reports were signed by an approved signing device
type Verifier interface {
	// VerifySnapshot verifies the signature of a snapshot report and returns the signing device
	VerifySnapshot(ctx context.Context, report *domain.SnapshotReport) (*schema.SigningDevice, error)
	// VerifyBatch verifies every entry signature of a batch and returns the signing device.
	// A single bad signature rejects the whole batch.
	VerifyBatch(ctx context.Context, report *domain.BatchReport) (*schema.SigningDevice, error)
	// Close stops the verification worker pool
	Close()
}

// Config holds the verifier configuration
type Config struct {
	WorkerPoolSize int
}

type verifier struct {
	registry DeviceRegistry
	json     adapter.JSON
	jcs      adapter.JCS
	pool     pond.Pool
}

// NewVerifier creates a new provenance verifier
func NewVerifier(registry DeviceRegistry, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, cfg Config) Verifier {
	size := cfg.WorkerPoolSize
	if size <= 0 {
		size = DEFAULT_WORKER_POOL_SIZE
	}

	return &verifier{
		registry: registry,
		json:     jsonAdapter,
		jcs:      jcsAdapter,
		pool:     pond.NewPool(size),
	}
}

// VerifySnapshot verifies the signature of a snapshot report
func (v *verifier) VerifySnapshot(ctx context.Context, report *domain.SnapshotReport) (*schema.SigningDevice, error) {
	device, err := v.approvedDevice(ctx, report.TenantID, report.DeviceUID)
	if err != nil {
		return nil, err
	}

	digest, err := Digest(v.json, v.jcs, NewSnapshotPayload(report))
	if err != nil {
		return nil, err
	}

	if !Verify(device.Curve, device.PublicKey, digest, report.Signature) {
		logger.WarnCtx(ctx, "Rejected snapshot signature",
			zap.String("tenant_id", report.TenantID),
			zap.String("token_uid", report.TokenUID),
			zap.String("device_uid", report.DeviceUID))
		return nil, fmt.Errorf("%w: bad snapshot signature from device %s", domain.ErrAuthenticationFailed, report.DeviceUID)
	}

	return device, nil
}

// VerifyBatch verifies every entry signature of a batch concurrently
func (v *verifier) VerifyBatch(ctx context.Context, report *domain.BatchReport) (*schema.SigningDevice, error) {
	device, err := v.approvedDevice(ctx, report.TenantID, report.DeviceUID)
	if err != nil {
		return nil, err
	}

	group := v.pool.NewGroup()
	for i, entry := range report.Entries {
		group.SubmitErr(func() error {
			digest, err := Digest(v.json, v.jcs, NewBatchEntryPayload(report.TenantID, report.DeviceUID, entry))
			if err != nil {
				return err
			}
			if !Verify(device.Curve, device.PublicKey, digest, entry.Signature) {
				return fmt.Errorf("%w: bad signature on entry %d (token %s position %d) from device %s",
					domain.ErrAuthenticationFailed, i, entry.TokenUID, entry.CounterPosition, report.DeviceUID)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.WarnCtx(ctx, "Rejected batch signatures",
			zap.String("tenant_id", report.TenantID),
			zap.String("device_uid", report.DeviceUID),
			zap.Int("entries", len(report.Entries)),
			zap.Error(err))
		return nil, err
	}

	return device, nil
}

// Close stops the verification worker pool
func (v *verifier) Close() {
	v.pool.StopAndWait()
}

// approvedDevice resolves the signer and rejects unknown or unapproved devices
func (v *verifier) approvedDevice(ctx context.Context, tenantID, deviceUID string) (*schema.SigningDevice, error) {
	device, err := v.registry.GetSigningDevice(ctx, tenantID, deviceUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get signing device: %w", err)
	}
	if device == nil {
		return nil, fmt.Errorf("%w: unknown signing device %s", domain.ErrAuthenticationFailed, deviceUID)
	}
	if !device.Approved {
		return nil, fmt.Errorf("%w: signing device %s is not approved", domain.ErrAuthenticationFailed, deviceUID)
	}
	return device, nil
}

// Verify checks a 64-byte r||s signature over digest
func Verify(curve domain.Curve, publicKey, digest, signature []byte) bool {
	if len(signature) != domain.SIGNATURE_SIZE || len(digest) != sha256Size {
		return false
	}

	switch curve {
	case domain.CurveSecp256k1:
		// Rejects high-S signatures
		return crypto.VerifySignature(publicKey, digest, signature)
	case domain.CurveP256:
		return verifyP256(publicKey, digest, signature)
	default:
		return false
	}
}

// ParsePublicKey decodes a device public key for curve: a SEC1 point for
// secp256k1 (compressed or uncompressed) or a PKIX DER key for p256
func ParsePublicKey(curve domain.Curve, publicKey []byte) (*ecdsa.PublicKey, error) {
	switch curve {
	case domain.CurveSecp256k1:
		if len(publicKey) == secp256k1CompressedSize {
			return crypto.DecompressPubkey(publicKey)
		}
		return crypto.UnmarshalPubkey(publicKey)
	case domain.CurveP256:
		parsed, err := x509.ParsePKIXPublicKey(publicKey)
		if err != nil {
			return nil, err
		}
		pub, ok := parsed.(*ecdsa.PublicKey)
		if !ok || pub.Curve != elliptic.P256() {
			return nil, fmt.Errorf("not a p256 public key")
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("unsupported curve: %s", curve)
	}
}

// verifyP256 checks a NIST P-256 signature against a PKIX DER encoded public key
func verifyP256(publicKey, digest, signature []byte) bool {
	pub, err := ParsePublicKey(domain.CurveP256, publicKey)
	if err != nil {
		return false
	}

	half := domain.SIGNATURE_SIZE / 2
	r := new(big.Int).SetBytes(signature[:half])
	s := new(big.Int).SetBytes(signature[half:])
	return ecdsa.Verify(pub, digest, r, s)
}
