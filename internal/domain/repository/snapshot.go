// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Snapshot keys, one per aggregate. The alert state and the trend history
// share a key, as they always change together.
const (
	KeyHotspots     = "krvt_hotspots"
	KeyEvents       = "krvt_events"
	KeyParticipants = "krvt_people"
	KeyRewards      = "krvt_rewards"
	KeyAlerts       = "krvt_alerts"
)

// SnapshotStore persists whole-collection snapshots under opaque keys.
// Each aggregate serializes its entire collection on every state change;
// there is no partial update and no cross-key transaction.
type SnapshotStore interface {
	// Load deserializes the snapshot stored under key into dest.
	// It reports found=false when no snapshot exists; a decode failure is an
	// error, which callers degrade to their built-in defaults.
	Load(ctx context.Context, key string, dest any) (found bool, err error)

	// Save serializes value and stores it under key, replacing any previous
	// snapshot.
	Save(ctx context.Context, key string, value any) error
}
