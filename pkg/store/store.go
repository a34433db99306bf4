// Package store provides the key-value persistence port backing the pantry
// records. Each record (inventory, saved recipes, read alert IDs) is a single
// JSON blob under its own key; records persist independently so losing one
// never corrupts another.
package store

import (
	"context"
	"errors"
)

// Record keys. Schema-versionless serialized lists, one key per record.
const (
	KeyInventory    = "inventory"
	KeySavedRecipes = "saved_recipes"
	KeyReadAlerts   = "read_alerts"
)

var ErrKeyNotFound = errors.New("key not found")

type KeyValue interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
