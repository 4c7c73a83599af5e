// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package models

import "time"

// ActivityEntry is an audit record of a security-relevant action (login,
// MFA enablement, admin mutations). Meta carries free-form JSON context.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Meta      []byte    `json:"meta,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ActivityEntry model.
func (a ActivityEntry) TableName() string {
	return "activity_log"
}
