package interfaces

import (
	"context"

	"print3d_quote/internal/domain/entities"
)

// IQuoteCache is an out-of-process snapshot cache of formatted quotes.
//
// Get returns the plain-array raw shape, or (nil, nil) on a miss. Cache
// failures are never fatal to the caller.
type IQuoteCache interface {
	Get(ctx context.Context, id string) (*entities.RawDraftOrder, error)
	Put(ctx context.Context, q entities.Quote) error
	Delete(ctx context.Context, id string) error
}
