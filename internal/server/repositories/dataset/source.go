// Package dataset provides read-only access to the static grid dataset
// served by /getTable. The payload is opaque JSON relayed as-is.
package dataset

import "context"

// Source loads the raw JSON bytes of the dataset.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}
