// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package service

import "errors"

var (
	// ErrInvalidDataProvided signals a request body that fails the
	// service-level validation rules. The wrapped message names the field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword signals a bcrypt mismatch at login.
	ErrWrongPassword = errors.New("wrong password")

	// ErrMfaNotConfigured signals a step-2 verification for an account that
	// never ran MFA setup.
	ErrMfaNotConfigured = errors.New("mfa not configured")

	// ErrMfaNotEnabled signals a step-2 verification against a stored but
	// never-verified secret.
	ErrMfaNotEnabled = errors.New("mfa not enabled")

	// ErrInvalidChallenge signals a missing, expired or mismatched MFA
	// challenge token when challenge validation is enforced.
	ErrInvalidChallenge = errors.New("invalid mfa challenge")

	// ErrSuperadminProtected signals an attempt to edit, demote or delete a
	// superadmin account.
	ErrSuperadminProtected = errors.New("superadmin account is protected")

	// ErrCannotDeleteSelf signals an admin trying to delete its own account.
	ErrCannotDeleteSelf = errors.New("cannot delete own account")

	// ErrSuperadminExists rejects creation of a second superadmin.
	ErrSuperadminExists = errors.New("a superadmin already exists")

	// ErrAdminRequiresSuperadmin rejects admin creation or promotion by a
	// non-superadmin actor.
	ErrAdminRequiresSuperadmin = errors.New("only a superadmin may manage admin accounts")

	// ErrNotAnAdmin signals an admin-management operation aimed at an
	// account whose role is not admin.
	ErrNotAnAdmin = errors.New("target account is not an admin")
)
