// Package store persists the application's document collections. Every
// collection is one JSON array; reads and writes are whole-collection
// read-modify-write with no version token, so the last writer wins.
package store

import (
	"context"
	"errors"
)

// Collection names used across the application.
const (
	CollectionEquipment = "equipment"
	CollectionQuotes    = "quotes"
	CollectionLeads     = "leads"
	CollectionCrew      = "crew"
	CollectionSettings  = "settings"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrNotConfigured marks a collaborator whose configuration resolved to a
// placeholder; it fails loudly on first use instead of at startup.
var ErrNotConfigured = errors.New("not configured")

// Store reads and writes whole collections. out must be a pointer to a
// slice (or struct, for the singleton settings collection); a missing
// collection loads as the zero value rather than an error.
type Store interface {
	Load(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, in any) error
}
