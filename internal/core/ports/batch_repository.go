package ports

import (
	"context"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
)

// BatchRepository defines persistence operations for the Batch aggregate.
type BatchRepository interface {
	// Add saves a new batch.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update saves an existing batch.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch by ID, member shipment ids included.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
}
