// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package http

import (
	"context"
	"net/http"

	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/session"
	"github.com/happytails/happytails/internal/utils"
	"github.com/happytails/happytails/models"
)

// withSession decodes the ht_session cookie and stores the identity snapshot
// in the request context. A missing or undecodable cookie answers 401.
//
// The cookie payload is unsigned, so the snapshot is client-asserted; every
// sensitive read still goes through storage with the ids it names.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		value, ok := session.FromRequest(r)
		if !ok {
			utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
			return
		}

		s, err := session.Decode(value)
		if err != nil {
			log.Error().Err(err).Msg("session cookie failed to decode")
			utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRoles gates a route group to sessions whose role is in roles.
// Runs downstream of withSession.
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := utils.GetSessionFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
				return
			}

			if _, ok := allowed[s.Role]; !ok {
				logger.FromRequest(r).Error().
					Str("role", string(s.Role)).
					Str("uri", r.RequestURI).
					Msg("role not allowed")
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
