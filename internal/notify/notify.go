// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify keeps the single transient notification shown to the user.
package notify

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/models"
)

// DefaultDuration is how long a notification stays visible when no other
// duration is configured.
const DefaultDuration = 3 * time.Second

// Center holds at most one notification and clears it after a fixed
// duration. Every Show re-arms the timer; a timer armed by an earlier Show
// never clears a newer notification.
type Center struct {
	mu       sync.Mutex
	duration time.Duration
	current  *models.Notification
	timer    *time.Timer
	gen      uint64
	hooks    []func()

	logger *logger.Logger
}

// NewCenter creates a Center. A non-positive duration falls back to
// [DefaultDuration].
func NewCenter(duration time.Duration, log *logger.Logger) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{duration: duration, logger: log}
}

// Show replaces the current notification and restarts the expiry timer.
func (c *Center) Show(title, body string, kind models.NotificationKind) {
	c.mu.Lock()
	c.stopTimer()
	c.gen++
	gen := c.gen
	c.current = &models.Notification{
		Title:     title,
		Body:      body,
		Kind:      kind,
		ExpiresAt: time.Now().Add(c.duration),
	}
	c.timer = time.AfterFunc(c.duration, func() { c.expire(gen) })
	c.mu.Unlock()

	c.logger.Debug().
		Str("title", title).
		Str("kind", kind.String()).
		Dur("duration", c.duration).
		Msg("notification shown")
	c.notify()
}

// Clear removes the current notification immediately.
func (c *Center) Clear() {
	c.mu.Lock()
	had := c.current != nil
	c.stopTimer()
	c.gen++
	c.current = nil
	c.mu.Unlock()

	if had {
		c.notify()
	}
}

// Current returns the visible notification, if any.
func (c *Center) Current() (models.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return models.Notification{}, false
	}
	return *c.current, true
}

// Subscribe registers fn to run after every change, including expiry on
// the timer goroutine. fn must not call back into the Center synchronously.
func (c *Center) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hooks = append(c.hooks, fn)
}

// Duration returns the configured visibility window.
func (c *Center) Duration() time.Duration {
	return c.duration
}

func (c *Center) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.current == nil {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.timer = nil
	c.mu.Unlock()

	c.logger.Debug().Msg("notification expired")
	c.notify()
}

// stopTimer must be called with mu held.
func (c *Center) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Center) notify() {
	c.mu.Lock()
	hooks := make([]func(), len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
