// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-dag-signer/models"

//go:generate mockgen -source=dependencies.go -destination=../mock/service_deps_mock.go -package=mock

// Notifier reports outcomes to the user.
type Notifier interface {
	Show(title, body string, kind models.NotificationKind)
}

// NotificationSource exposes the notification currently shown.
type NotificationSource interface {
	Current() (models.Notification, bool)
}

// Notifications is the notification center as seen by [ClientServices].
type Notifications interface {
	Notifier
	NotificationSource
}

// FieldSource provides the entries to sign.
type FieldSource interface {
	Entries() []models.FieldEntry
}
