package http

import (
	"errors"
	"net/http"

	"github.com/happytails/happytails/internal/mfacrypt"
	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/internal/totp"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrMfaNotConfigured:        http.StatusBadRequest,
	service.ErrMfaNotEnabled:           http.StatusBadRequest,
	service.ErrInvalidChallenge:        http.StatusUnauthorized,
	service.ErrSuperadminProtected:     http.StatusForbidden,
	service.ErrCannotDeleteSelf:        http.StatusBadRequest,
	service.ErrSuperadminExists:        http.StatusForbidden,
	service.ErrAdminRequiresSuperadmin: http.StatusForbidden,
	service.ErrNotAnAdmin:              http.StatusBadRequest,

	totp.ErrInvalidCodeFormat: http.StatusBadRequest,
	totp.ErrInvalidCode:       http.StatusUnauthorized,

	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrDocumentAlreadyExists: http.StatusConflict,
	store.ErrMfaConfigNotFound:     http.StatusBadRequest,
	store.ErrPetNotFound:           http.StatusNotFound,
	store.ErrAdoptionNotFound:      http.StatusNotFound,
	store.ErrRequestNotFound:       http.StatusNotFound,
	store.ErrReminderNotFound:      http.StatusNotFound,
	store.ErrReminderTypeNotFound:  http.StatusNotFound,
	store.ErrNotificationNotFound:  http.StatusNotFound,
}

func statusFromError(err error) int {
	// crypto faults never leak detail to clients
	if errors.Is(err, mfacrypt.ErrDecryptionFailed) || errors.Is(err, mfacrypt.ErrMisconfiguredKey) {
		return http.StatusInternalServerError
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage picks the client-facing message: mapped errors surface their
// sentinel text, everything else collapses to a generic message so internal
// detail stays in the server logs.
func errorMessage(err error) string {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}
