package storage

import (
	"context"
	"encoding/json"
)

// Keys of the durable key-value store. Each holds one JSON document.
const (
	KeySettings = "ezana_settings"
	KeySession  = "ezana_user"
	KeyUsers    = "ezana_users"
	KeyCourses  = "ezana_courses"
)

// Store is the uniform persistence contract for the platform. Two
// implementations exist: a local Postgres-backed key-value store and a
// remote adapter that forwards each operation to the legacy API as a tagged
// action. Callers are mode-blind; the implementation is picked once at
// composition time.
//
// Read returns (nil, false, nil) when the key is absent. Implementations
// must treat malformed stored data and transport failures as absence rather
// than surfacing them, so callers only ever branch on "present or not".
type Store interface {
	Read(ctx context.Context, key string) (json.RawMessage, bool, error)
	Write(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}
