package service

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/mfacrypt"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/internal/totp"
)

// mfaService implements [MfaService]: TOTP seed provisioning and the
// verify-to-enable handshake. Accounts are addressed by their provisioning
// uuid so setup can run from a flow that never sees internal ids.
type mfaService struct {
	userRepository store.UserRepository
	mfaRepository  store.MfaRepository
	activity       store.ActivityRepository
	secretCodec    *mfacrypt.Codec
	issuer         string
	logger         *logger.Logger
}

// NewMfaService constructs an [MfaService]. issuer labels the provisioning
// URI shown to authenticator apps.
func NewMfaService(users store.UserRepository, mfa store.MfaRepository, activity store.ActivityRepository, codec *mfacrypt.Codec, issuer string, logger *logger.Logger) MfaService {
	return &mfaService{
		userRepository: users,
		mfaRepository:  mfa,
		activity:       activity,
		secretCodec:    codec,
		issuer:         issuer,
		logger:         logger,
	}
}

// Setup generates a fresh TOTP seed for the account identified by userUUID,
// stores it encrypted with enabled=false and returns the otpauth
// provisioning URL. Re-running setup replaces any previous seed and drops
// the enabled flag.
//
// The plaintext seed exists only in the returned URL; storage sees the
// encrypted envelope exclusively.
func (m *mfaService) Setup(ctx context.Context, userUUID string) (string, error) {
	log := logger.FromContext(ctx)

	if userUUID == "" {
		return "", fmt.Errorf("%w: user uuid is required", ErrInvalidDataProvided)
	}

	user, err := m.userRepository.FindUserByUUID(ctx, userUUID)
	if err != nil {
		return "", err
	}

	seed, err := totp.GenerateSecret()
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("totp secret generation failed")
		return "", fmt.Errorf("totp secret generation failed: %w", err)
	}

	sealed, err := m.secretCodec.Encrypt(seed)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("totp secret encryption failed")
		return "", fmt.Errorf("totp secret encryption failed: %w", err)
	}

	if err := m.mfaRepository.UpsertSecret(ctx, user.ID, sealed); err != nil {
		return "", err
	}

	return totp.ProvisioningURL(seed, m.issuer, user.Email), nil
}

// VerifySetup completes enrollment: a valid code against the stored seed
// flips the configuration to enabled and stamps verified_at. Verifying an
// already-enabled configuration succeeds without touching storage again.
func (m *mfaService) VerifySetup(ctx context.Context, userUUID, code string) error {
	log := logger.FromContext(ctx)

	if !totp.ValidFormat(code) {
		return totp.ErrInvalidCodeFormat
	}

	user, err := m.userRepository.FindUserByUUID(ctx, userUUID)
	if err != nil {
		return err
	}

	cfg, err := m.mfaRepository.GetConfig(ctx, user.ID)
	if err != nil {
		return ErrMfaNotConfigured
	}

	seed, err := m.secretCodec.Decrypt(cfg.Secret)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored mfa secret failed to decrypt")
		return err
	}

	if err := totp.Verify(code, seed); err != nil {
		return err
	}

	if cfg.Enabled {
		return nil
	}

	if err := m.mfaRepository.Enable(ctx, user.ID); err != nil {
		return err
	}

	if err := m.activity.Insert(ctx, user.ID, "mfa_enabled", nil); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("activity record insert failed")
	}

	return nil
}
