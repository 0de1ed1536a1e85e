// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/models"
)

func TestNewCenter_DefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultDuration, NewCenter(0, logger.Nop()).Duration())
	assert.Equal(t, DefaultDuration, NewCenter(-time.Second, logger.Nop()).Duration())
	assert.Equal(t, time.Second, NewCenter(time.Second, logger.Nop()).Duration())
}

func TestShow_SetsCurrent(t *testing.T) {
	// Arrange
	c := NewCenter(time.Minute, logger.Nop())
	before := time.Now()

	// Act
	c.Show("Data Signed", "Your data has been successfully signed.", models.NotificationSuccess)

	// Assert
	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "Data Signed", n.Title)
	assert.Equal(t, "Your data has been successfully signed.", n.Body)
	assert.Equal(t, models.NotificationSuccess, n.Kind)
	assert.WithinDuration(t, before.Add(time.Minute), n.ExpiresAt, time.Second)
}

func TestShow_ReplacesPrevious(t *testing.T) {
	c := NewCenter(time.Minute, logger.Nop())

	c.Show("first", "1", models.NotificationSuccess)
	c.Show("second", "2", models.NotificationError)

	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Title)
	assert.Equal(t, models.NotificationError, n.Kind)
}

func TestShow_ExpiresAfterDuration(t *testing.T) {
	c := NewCenter(20*time.Millisecond, logger.Nop())

	c.Show("Error", "Failed to connect wallet", models.NotificationError)

	require.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestShow_StaleTimerDoesNotClearNewer(t *testing.T) {
	// Arrange
	c := NewCenter(60*time.Millisecond, logger.Nop())
	c.Show("first", "", models.NotificationSuccess)
	time.Sleep(40 * time.Millisecond)

	// Act
	c.Show("second", "", models.NotificationSuccess)
	time.Sleep(35 * time.Millisecond)

	// Assert: the first timer would have fired by now
	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Title)

	require.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestClear(t *testing.T) {
	c := NewCenter(time.Minute, logger.Nop())
	c.Show("t", "b", models.NotificationSuccess)

	c.Clear()

	_, ok := c.Current()
	assert.False(t, ok)
}

// ── Subscribe ──

func TestSubscribe_CalledOnShowClearAndExpiry(t *testing.T) {
	// Arrange
	c := NewCenter(20*time.Millisecond, logger.Nop())
	var calls atomic.Int32
	c.Subscribe(func() { calls.Add(1) })

	// Act & Assert
	c.Show("t", "b", models.NotificationSuccess)
	assert.Equal(t, int32(1), calls.Load())

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	c.Clear()
	assert.Equal(t, int32(2), calls.Load(), "clearing nothing is not a change")

	c.Show("t", "b", models.NotificationSuccess)
	c.Clear()
	assert.Equal(t, int32(4), calls.Load())
}
