// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/happytails/happytails/internal/config"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/mfacrypt"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/internal/totp"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the accounts were originally hashed with, so
// fresh hashes stay comparable in work factor.
const bcryptCost = 10

var (
	phonePattern    = regexp.MustCompile(`^\d{7,10}$`)
	documentPattern = regexp.MustCompile(`^\d{5,15}$`)
	digitPattern    = regexp.MustCompile(`\d`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
)

// reservedEmailDomain is the admin-only address space; public registration
// may not claim addresses under it.
const reservedEmailDomain = "@administrador.com"

// authService implements [AuthService]: public registration, password
// verification and the two-step MFA login state machine.
//
// The service is safe for concurrent use; all state is read-only after
// construction.
type authService struct {
	userRepository store.UserRepository
	mfaRepository  store.MfaRepository
	activity       store.ActivityRepository
	secretCodec    *mfacrypt.Codec
	security       config.Security
	logger         *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and populated with security parameters from cfg.
func NewAuthService(users store.UserRepository, mfa store.MfaRepository, activity store.ActivityRepository, codec *mfacrypt.Codec, cfg config.Security, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: users,
		mfaRepository:  mfa,
		activity:       activity,
		secretCodec:    codec,
		security:       cfg,
		logger:         logger,
	}
}

// Register creates a new public account with role "user".
//
// The full validation set runs before any storage access: every field
// required, password strength, phone and document shape, username shape and
// the reserved admin email domain. Uniqueness violations surface as the
// store sentinels so the handler can answer 409 naming the field.
func (a *authService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(in); err != nil {
		log.Error().Err(err).Str("email", in.Email).Msg("registration rejected by validation")
		return models.User{}, err
	}

	if err := a.userRepository.CheckConflicts(ctx, in.Email, in.Username, in.DocumentNumber); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UUID:           uuid.NewString(),
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Role:           models.RoleUser,
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", in.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.audit(ctx, registered.ID, "register", nil)

	return registered, nil
}

// Login runs step 1 of the authentication state machine.
//
// Lookup failure surfaces as [store.ErrUserNotFound] and a bcrypt mismatch
// as [ErrWrongPassword]; the two are deliberately distinguishable. When the
// account has a verified MFA configuration the result carries
// MfaRequired=true plus a signed challenge token (when configured) and no
// session may be issued until step 2 succeeds.
func (a *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Error().Int64("id", user.ID).Str("email", email).Msg("wrong password")
		return LoginResult{}, ErrWrongPassword
	}

	cfg, err := a.mfaRepository.GetConfig(ctx, user.ID)
	if err != nil && !errors.Is(err, store.ErrMfaConfigNotFound) {
		return LoginResult{}, err
	}

	if err == nil && cfg.Enabled {
		result := LoginResult{User: user, MfaRequired: true}
		if a.security.ChallengeSignKey != "" {
			challenge, err := utils.GenerateChallengeToken(a.security.ChallengeIssuer, user.ID, a.security.ChallengeDuration, a.security.ChallengeSignKey)
			if err != nil {
				log.Err(err).Int64("id", user.ID).Msg("challenge token generation failed")
				return LoginResult{}, fmt.Errorf("challenge token generation failed: %w", err)
			}
			result.Challenge = challenge
		}
		return result, nil
	}

	a.audit(ctx, user.ID, "login", nil)

	return LoginResult{User: user}, nil
}

// VerifyMfaLogin runs step 2 of the authentication state machine.
//
// The code format is checked before any storage or crypto work. The stored
// secret is decrypted and the code verified against the skew window; only a
// valid code yields the account for session issuance. When
// Security.RequireMfaChallenge is set the step-1 challenge token is
// mandatory and must match userID.
func (a *authService) VerifyMfaLogin(ctx context.Context, userID int64, code, challenge string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !totp.ValidFormat(code) {
		return models.User{}, totp.ErrInvalidCodeFormat
	}

	if a.security.RequireMfaChallenge {
		subject, err := utils.ValidateChallengeToken(challenge, a.security.ChallengeSignKey, a.security.ChallengeIssuer)
		if err != nil || subject != userID {
			log.Error().Int64("id", userID).Msg("mfa challenge rejected")
			return models.User{}, ErrInvalidChallenge
		}
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	cfg, err := a.mfaRepository.GetConfig(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrMfaConfigNotFound) {
			return models.User{}, ErrMfaNotConfigured
		}
		return models.User{}, err
	}
	if !cfg.Enabled {
		return models.User{}, ErrMfaNotEnabled
	}

	seed, err := a.secretCodec.Decrypt(cfg.Secret)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored mfa secret failed to decrypt")
		return models.User{}, err
	}

	if err := totp.Verify(code, seed); err != nil {
		return models.User{}, err
	}

	a.audit(ctx, user.ID, "login_mfa", nil)

	return user, nil
}

// GetUserByID returns a fresh storage snapshot of one account.
func (a *authService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, id)
}

// audit appends an activity record; failures are logged and swallowed.
func (a *authService) audit(ctx context.Context, userID int64, action string, meta []byte) {
	if err := a.activity.Insert(ctx, userID, action, meta); err != nil {
		logger.FromContext(ctx).Err(err).Str("action", action).Msg("activity record insert failed")
	}
}

// validateRegistration applies the public registration rule set.
// Every violation wraps [ErrInvalidDataProvided] with a field-naming message.
func validateRegistration(in RegisterInput) error {
	switch "" {
	case in.Username, in.FirstName, in.LastName, in.Phone, in.DocumentType, in.DocumentNumber, in.Email, in.Password:
		return fmt.Errorf("%w: all fields are required", ErrInvalidDataProvided)
	}

	if len(in.Username) < 3 || strings.ContainsAny(in.Username, " \t\n") {
		return fmt.Errorf("%w: username must have at least 3 characters and no whitespace", ErrInvalidDataProvided)
	}
	if !phonePattern.MatchString(in.Phone) {
		return fmt.Errorf("%w: phone must be 7 to 10 digits", ErrInvalidDataProvided)
	}
	if !documentPattern.MatchString(in.DocumentNumber) {
		return fmt.Errorf("%w: document number must be 5 to 15 digits", ErrInvalidDataProvided)
	}
	if strings.HasSuffix(strings.ToLower(in.Email), reservedEmailDomain) {
		return fmt.Errorf("%w: email domain is reserved", ErrInvalidDataProvided)
	}
	if err := validatePasswordStrength(in.Password); err != nil {
		return err
	}

	return nil
}

// validatePasswordStrength enforces length 8+ with at least one uppercase
// letter, one lowercase letter and one digit.
func validatePasswordStrength(password string) error {
	if len(password) < 8 ||
		!upperPattern.MatchString(password) ||
		!lowerPattern.MatchString(password) ||
		!digitPattern.MatchString(password) {
		return fmt.Errorf("%w: password must have at least 8 characters including uppercase, lowercase and a digit", ErrInvalidDataProvided)
	}

	return nil
}
