// Package store provides the key-value persistence layer for engine state.
// Four records are persisted: the caregiver profile, the completion log,
// the claimed badge set, and the notification log. Each record is saved
// whole after every mutation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record keys.
const (
	KeyProfile       = "profile"
	KeyCompletionLog = "completion_log"
	KeyClaimedBadges = "claimed_badges"
	KeyNotifications = "notifications"
)

// RecordKeys lists every persisted record, in reset order.
func RecordKeys() []string {
	return []string{KeyProfile, KeyCompletionLog, KeyClaimedBadges, KeyNotifications}
}

// Store is the persistence contract. Get returns domain.ErrKeyNotFound for
// an absent key so callers can fall back to defaults.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// GetJSON loads and unmarshals a record into dest.
func GetJSON(ctx context.Context, s Store, key string, dest any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

// SetJSON marshals and saves a record.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
