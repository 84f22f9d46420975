package store

import (
	"errors"
	"fmt"
)

// ErrStalePersistence signals that a mutation was applied in memory but the
// flush to the storage medium failed: the state is live, the saved copy is
// stale. It always wraps the underlying storage error.
var ErrStalePersistence = errors.New("state not persisted")

// NotFoundError reports an update that referenced an id absent from its
// collection. Updates fail loudly; removals stay no-ops.
type NotFoundError struct {
	Collection string
	ID         int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s record %d not found", e.Collection, e.ID)
}
