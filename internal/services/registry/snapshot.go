package registry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/auspexlabs/auspex/internal/interfaces"
)

// CachedSnapshot reports the cached snapshot's symbol count and fetch time
// without touching the network. Returns ErrKeyNotFound from the store when
// no snapshot has been cached yet.
func CachedSnapshot(ctx context.Context, kvStorage interfaces.KeyValueStorage) (int, time.Time, error) {
	value, err := kvStorage.Get(ctx, SnapshotKey)
	if err != nil {
		return 0, time.Time{}, err
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return 0, time.Time{}, err
	}

	return len(snap.Symbols), snap.FetchedAt, nil
}
