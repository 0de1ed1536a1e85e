// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationKind classifies a toast as a success or a failure report.
type NotificationKind int

const (
	NotificationSuccess NotificationKind = iota
	NotificationError
)

func (k NotificationKind) String() string {
	if k == NotificationError {
		return "error"
	}
	return "success"
}

// Notification is a transient user-facing message. At most one exists at a
// time; it disappears on its own at ExpiresAt.
type Notification struct {
	Title     string
	Body      string
	Kind      NotificationKind
	ExpiresAt time.Time
}
