// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package http

import (
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/utils"
)

// writeServiceError logs err and answers with the mapped status and the
// uniform {"error": ...} body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, context string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(context)
	} else {
		log.Error().Err(err).Msg(context)
	}

	utils.WriteError(w, errorMessage(err), status)
}

// writeGroupError is the reminder/notification-group variant of
// [writeServiceError]: those endpoints answer errors with an explicit
// {"ok":false,"error":...} body.
func writeGroupError(w http.ResponseWriter, r *http.Request, err error, context string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(context)
	} else {
		log.Error().Err(err).Msg(context)
	}

	_, _ = utils.WriteJSON(w, map[string]any{"ok": false, "error": errorMessage(err)}, status)
}
